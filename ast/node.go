// Package ast defines the abstract syntax tree for MiniLang programs.
//
// The AST is a single rooted tree: the Program node owns its declaration
// lists, and every nested node is owned by its parent. Nodes are built once
// by the parser and never mutated afterwards.
//
// Node hierarchy:
//
//	Node (interface)
//	├── Expr (interface) - expressions that produce values
//	│   ├── IntLit, StringLit, BoolLit - literals
//	│   ├── VarRef - references
//	│   ├── BinaryExpr, UnaryExpr - operations
//	│   └── CallExpr - subroutine calls (also usable as a statement)
//	├── Stmt (interface) - statements that perform actions
//	│   ├── AssignStmt, ReturnStmt, PrintStmt - basic
//	│   ├── IfStmt, WhileStmt - control flow
//	│   └── CallStmt - a CallExpr in statement position
//	└── Program, ConstDecl, VarDecl, Subroutine, Param - top-level structures
package ast

import "github.com/kolkov/minilang/token"

// Node is the interface implemented by all AST nodes.
// It provides source position information for error reporting.
type Node interface {
	// Pos returns the position of the first character belonging to this node.
	Pos() token.Position

	// End returns the position of the first character immediately after this node.
	End() token.Position
}

// Expr is the interface for all expression nodes.
// Expressions are AST nodes that evaluate to a value.
type Expr interface {
	Node
	exprNode() // marker method to prevent external implementations
}

// Stmt is the interface for all statement nodes.
// Statements are AST nodes that perform actions.
type Stmt interface {
	Node
	stmtNode() // marker method to prevent external implementations
}

// Decl is the interface for top-level declarations.
type Decl interface {
	Node
	declNode() // marker method to prevent external implementations
}

// BaseExpr provides common fields for all expression nodes.
// Embedded in concrete expression types for position tracking.
type BaseExpr struct {
	StartPos token.Position // Position of first token
	EndPos   token.Position // Position after last token
}

func (b *BaseExpr) Pos() token.Position { return b.StartPos }
func (b *BaseExpr) End() token.Position { return b.EndPos }
func (b *BaseExpr) exprNode()           {}

// BaseStmt provides common fields for all statement nodes.
type BaseStmt struct {
	StartPos token.Position // Position of first token
	EndPos   token.Position // Position after last token
}

func (b *BaseStmt) Pos() token.Position { return b.StartPos }
func (b *BaseStmt) End() token.Position { return b.EndPos }
func (b *BaseStmt) stmtNode()           {}

// BaseDecl provides common fields for declaration nodes.
type BaseDecl struct {
	StartPos token.Position
	EndPos   token.Position
}

func (b *BaseDecl) Pos() token.Position { return b.StartPos }
func (b *BaseDecl) End() token.Position { return b.EndPos }
func (b *BaseDecl) declNode()           {}

// -----------------------------------------------------------------------------
// Constructor helpers
// -----------------------------------------------------------------------------

// MakeBaseExpr creates a BaseExpr with the given positions.
func MakeBaseExpr(start, end token.Position) BaseExpr {
	return BaseExpr{StartPos: start, EndPos: end}
}

// MakeBaseStmt creates a BaseStmt with the given positions.
func MakeBaseStmt(start, end token.Position) BaseStmt {
	return BaseStmt{StartPos: start, EndPos: end}
}

// MakeBaseDecl creates a BaseDecl with the given positions.
func MakeBaseDecl(start, end token.Position) BaseDecl {
	return BaseDecl{StartPos: start, EndPos: end}
}

// -----------------------------------------------------------------------------
// Types
// -----------------------------------------------------------------------------

// Type is a MiniLang declared type.
// VOID is a valid spelling wherever a type keyword is expected.
type Type uint8

const (
	Void Type = iota
	Int
	Bool
	String
)

// String returns the MiniLang spelling of the type.
func (t Type) String() string {
	switch t {
	case Void:
		return "VOID"
	case Int:
		return "INT"
	case Bool:
		return "BOOL"
	case String:
		return "STRING"
	default:
		return "<invalid>"
	}
}

// TypeOf returns the Type for a type keyword token.
// The second result is false if the token is not a type keyword.
func TypeOf(tok token.Token) (Type, bool) {
	switch tok {
	case token.VOID:
		return Void, true
	case token.INT:
		return Int, true
	case token.BOOL:
		return Bool, true
	case token.STRING:
		return String, true
	default:
		return Void, false
	}
}
