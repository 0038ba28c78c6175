package ast

import "github.com/kolkov/minilang/token"

// -----------------------------------------------------------------------------
// Literals
// -----------------------------------------------------------------------------

// IntLit represents an unsigned decimal integer literal.
// Examples: 0, 42
type IntLit struct {
	BaseExpr
	Value int64  // Parsed numeric value
	Raw   string // Original source text
}

// StringLit represents a double-quoted string literal.
// The value is the raw inter-quote text: backslash escapes are accepted
// by the scanner but not interpreted.
type StringLit struct {
	BaseExpr
	Value string
}

// BoolLit represents the TRUE or FALSE keyword.
type BoolLit struct {
	BaseExpr
	Value bool
}

// -----------------------------------------------------------------------------
// References
// -----------------------------------------------------------------------------

// VarRef represents a bare identifier in expression position.
// An identifier followed by "(" is a CallExpr, never a VarRef.
type VarRef struct {
	BaseExpr
	Name string
}

// -----------------------------------------------------------------------------
// Operations
// -----------------------------------------------------------------------------

// BinaryExpr represents a binary operation.
// Examples: a + b, x == y, p AND q
type BinaryExpr struct {
	BaseExpr
	Left  Expr        // Left operand
	Op    token.Token // Operator token
	Right Expr        // Right operand
}

// UnaryExpr represents a unary operation (NOT).
type UnaryExpr struct {
	BaseExpr
	Op   token.Token // Operator token (NOT)
	Expr Expr        // Operand
}

// -----------------------------------------------------------------------------
// Calls
// -----------------------------------------------------------------------------

// CallExpr represents a subroutine call.
// The same node shape is reachable both as a sub-expression and, wrapped
// in a CallStmt, as a standalone statement.
// Example: f(1, g(2))
type CallExpr struct {
	BaseExpr
	Name    string         // Subroutine name
	NamePos token.Position // Name position for error messages
	Args    []Expr         // Arguments, in source order (may be empty)
}

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

// Ensure all expression types implement Expr interface.
var (
	_ Expr = (*IntLit)(nil)
	_ Expr = (*StringLit)(nil)
	_ Expr = (*BoolLit)(nil)
	_ Expr = (*VarRef)(nil)
	_ Expr = (*BinaryExpr)(nil)
	_ Expr = (*UnaryExpr)(nil)
	_ Expr = (*CallExpr)(nil)
)
