// Package minilang provides a compiler front-end for the MiniLang
// language: a tokenizer, a recursive descent parser producing a typed
// syntax tree, and a semantic validator over the top-level
// declarations.
//
// MiniLang programs consist of three ordered sections: constant
// declarations, global variable declarations, and subroutine
// declarations. Execution is defined to start at a VOID subroutine
// named "main".
//
// # Quick Start
//
// Parse a program and inspect its tree:
//
//	prog, err := minilang.Parse(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, sub := range prog.AST().Subs {
//	    fmt.Println(sub.Name)
//	}
//
// Parse and validate in one step:
//
//	prog, err := minilang.Check(src)
//
// # Error Handling
//
// Errors are returned as specific types for detailed handling:
//   - [LexIssue]: non-fatal illegal characters, carried on the Program
//   - [ParseError]: syntax errors; parsing halts at the first one
//   - [SemanticError]: duplicate identifiers and entry-point violations
//
// # Thread Safety
//
// Parsed [Program] objects are safe for concurrent use. Each call to
// [Program.Validate] runs an independent validation pass.
package minilang
