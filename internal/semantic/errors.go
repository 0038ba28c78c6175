// Package semantic provides semantic validation for MiniLang programs.
//
// The validator performs a single pass over the top-level declarations:
//   - Name registration: constants, variables, and subroutines are
//     declared into the global scope, in source order
//   - Duplicate detection: the first colliding top-level name aborts
//     the run
//   - Entry-point validation: a subroutine named "main" must exist and
//     must return VOID
//
// Identifiers inside subroutine bodies and parameter lists are not
// checked: the symbol table supports nested scopes, but the current
// validator only populates and queries the global scope.
package semantic

import (
	"fmt"

	"github.com/kolkov/minilang/token"
)

// Error represents a semantic validation error with source location.
type Error struct {
	Pos     token.Position
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return e.Message
}

// errorf creates a new semantic error.
func errorf(pos token.Position, format string, args ...any) *Error {
	return &Error{
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	}
}

// Validation failure messages.
const (
	errDuplicateIdent = "duplicate identifier %q"
	errMissingMain    = "missing entry point: subroutine \"main\" not found"
	errMainNotVoid    = "entry point \"main\" must be VOID"
)
