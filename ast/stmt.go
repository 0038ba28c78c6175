package ast

import "github.com/kolkov/minilang/token"

// -----------------------------------------------------------------------------
// Basic statements
// -----------------------------------------------------------------------------

// AssignStmt represents an assignment statement.
// Example: x = f(1) + 2;
type AssignStmt struct {
	BaseStmt
	Target    string         // Target variable name
	TargetPos token.Position // Target position for error messages
	Value     Expr           // Right-hand side expression
}

// ReturnStmt represents a return statement.
// Example: RETURN x + 1;
type ReturnStmt struct {
	BaseStmt
	Value Expr // Return expression (always present)
}

// PrintStmt represents a print statement.
// Example: PRINT(x);
type PrintStmt struct {
	BaseStmt
	Value Expr // Printed expression
}

// CallStmt represents a subroutine call in statement position.
// Example: log(x);
// It wraps the same CallExpr node shape produced in expression position.
type CallStmt struct {
	BaseStmt
	Call *CallExpr
}

// -----------------------------------------------------------------------------
// Control flow statements
// -----------------------------------------------------------------------------

// IfStmt represents an if statement.
// Example: IF (x > 0) THEN y = 1; ELSE y = 2; END
// Else is the empty slice when the ELSE clause is absent.
type IfStmt struct {
	BaseStmt
	Cond Expr   // Condition expression
	Then []Stmt // Then-block statements
	Else []Stmt // Else-block statements (empty if no ELSE)
}

// WhileStmt represents a while loop.
// Example: WHILE (i < n) DO i = i + 1; END
type WhileStmt struct {
	BaseStmt
	Cond Expr   // Loop condition
	Body []Stmt // Loop body statements
}

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

// Ensure all statement types implement Stmt interface.
var (
	_ Stmt = (*AssignStmt)(nil)
	_ Stmt = (*ReturnStmt)(nil)
	_ Stmt = (*PrintStmt)(nil)
	_ Stmt = (*CallStmt)(nil)
	_ Stmt = (*IfStmt)(nil)
	_ Stmt = (*WhileStmt)(nil)
)
