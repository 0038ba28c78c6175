package minilang

import (
	"github.com/kolkov/minilang/internal/lexer"
	"github.com/kolkov/minilang/internal/parser"
)

// Version is the minilang version string.
const Version = "0.1.0"

// Parse tokenizes and parses a MiniLang program.
// The returned Program holds the syntax tree plus any non-fatal
// lexical issues; a syntax error aborts parsing and is returned as
// a *ParseError.
//
// Example:
//
//	prog, err := minilang.Parse(`SUBROUTINE VOID main() DO END`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(prog.Summary().Subroutines)
func Parse(src string) (*Program, error) {
	return ParseBytes([]byte(src), nil)
}

// ParseBytes parses a MiniLang program from a byte slice.
// Options may be nil for defaults.
func ParseBytes(src []byte, opts *Options) (*Program, error) {
	o := opts.normalize()

	var l *lexer.Lexer
	if o.Filename != "" {
		l = lexer.NewFile(src, o.Filename)
	} else {
		l = lexer.New(src)
	}

	tree, err := parser.New(l).ParseProgram()
	if err != nil {
		// Convert parser error to public type
		if pe, ok := err.(*parser.ParseError); ok {
			return nil, &ParseError{
				Line:    pe.Pos.Line,
				Column:  pe.Pos.Column,
				Message: pe.Message,
			}
		}
		return nil, &ParseError{Message: err.Error()}
	}
	tree.Filename = o.Filename

	prog := &Program{
		tree:   tree,
		source: string(src),
	}
	for _, issue := range l.Issues() {
		prog.issues = append(prog.issues, LexIssue{
			Line: issue.Pos.Line,
			Char: string(issue.Char),
		})
	}
	return prog, nil
}

// Check parses and validates a MiniLang program in one step.
// On a semantic error the parsed Program is returned alongside the
// error so callers can still inspect the tree.
//
// Example:
//
//	prog, err := minilang.Check(source)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Check(src string) (*Program, error) {
	prog, err := Parse(src)
	if err != nil {
		return nil, err
	}
	if err := prog.Validate(); err != nil {
		return prog, err
	}
	return prog, nil
}

// MustParse is like Parse but panics if the program cannot be parsed.
// It simplifies initialization of global program variables.
//
// Example:
//
//	var boot = minilang.MustParse(`SUBROUTINE VOID main() DO END`)
func MustParse(src string) *Program {
	prog, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return prog
}
