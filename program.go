package minilang

import (
	"github.com/kolkov/minilang/ast"
	"github.com/kolkov/minilang/internal/semantic"
)

// Program represents a parsed MiniLang program.
// It is safe for concurrent use; Validate creates an independent
// symbol table on every call.
type Program struct {
	tree   *ast.Program
	source string // Original source for debugging
	issues []LexIssue
}

// AST returns the root of the parsed syntax tree.
func (p *Program) AST() *ast.Program {
	return p.tree
}

// Source returns the original MiniLang source code.
func (p *Program) Source() string {
	return p.source
}

// Issues returns the non-fatal lexical issues recorded while the
// source was tokenized. An empty slice means the source was lexically
// clean.
func (p *Program) Issues() []LexIssue {
	return p.issues
}

// Validate checks the program's top-level declarations: duplicate
// identifiers and the VOID "main" entry-point rule. It can be called
// any number of times; each call runs a fresh validation pass.
func (p *Program) Validate() error {
	if _, err := semantic.Check(p.tree); err != nil {
		if se, ok := err.(*semantic.Error); ok {
			return &SemanticError{
				Line:    se.Pos.Line,
				Message: se.Message,
			}
		}
		return &SemanticError{Message: err.Error()}
	}
	return nil
}

// Summary reports the size of a parsed program.
type Summary struct {
	Consts      int // Constant declarations
	Vars        int // Global variable declarations
	Subroutines int // Subroutine declarations
	Statements  int // Statements across all subroutine bodies
}

// Summary walks the syntax tree and counts its declarations and
// statements.
func (p *Program) Summary() Summary {
	var s Summary
	s.Consts = len(p.tree.Consts)
	s.Vars = len(p.tree.Vars)
	s.Subroutines = len(p.tree.Subs)
	ast.Walk(p.tree, func(n ast.Node) bool {
		if _, ok := n.(ast.Stmt); ok {
			s.Statements++
		}
		return true
	})
	return s
}
