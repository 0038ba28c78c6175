package minilang

import (
	"fmt"
)

// LexIssue reports an illegal character in MiniLang source code.
// Lexical issues are non-fatal: the tokenizer skips the offending
// byte and continues, so a program with issues may still parse.
type LexIssue struct {
	Line int    // 1-based line number
	Char string // The offending character
}

func (i LexIssue) String() string {
	return fmt.Sprintf("illegal character %q at line %d", i.Char, i.Line)
}

// ParseError represents a syntax error in MiniLang source code.
// Parsing halts at the first syntax error.
type ParseError struct {
	Line    int    // 1-based line number
	Column  int    // 1-based column number
	Message string // Error description
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("syntax error at %d:%d: %s", e.Line, e.Column, e.Message)
}

// SemanticError represents a validation error in a parsed program,
// such as a duplicate top-level identifier or a missing entry point.
type SemanticError struct {
	Line    int    // 1-based line number (0 if not tied to a location)
	Message string // Error description
}

func (e *SemanticError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("semantic error at line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("semantic error: %s", e.Message)
}
