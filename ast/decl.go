package ast

import "github.com/kolkov/minilang/token"

// Program represents a complete MiniLang program.
// Declarations appear in a fixed order enforced by the grammar:
// constants first, then variables, then subroutines. Each section
// may be empty.
type Program struct {
	// Source file name (for error messages)
	Filename string

	// Constant declarations, in source order.
	Consts []*ConstDecl

	// Variable declarations, in source order.
	Vars []*VarDecl

	// Subroutine declarations, in source order.
	Subs []*Subroutine

	// Position information for the entire program.
	StartPos token.Position
	EndPos   token.Position
}

// Pos returns the position of the first token in the program.
func (p *Program) Pos() token.Position { return p.StartPos }

// End returns the position after the last token in the program.
func (p *Program) End() token.Position { return p.EndPos }

// ConstDecl represents a constant declaration.
// Example: CONST INT limit = 10;
type ConstDecl struct {
	BaseDecl
	Type    Type           // Declared type
	Name    string         // Constant name
	NamePos token.Position // Name position for error messages
	Value   Expr           // Initializer expression (always present)
}

// VarDecl represents a variable declaration.
// Examples:
//
//	INT x;
//	BOOL done = FALSE;
type VarDecl struct {
	BaseDecl
	Type    Type           // Declared type
	Name    string         // Variable name
	NamePos token.Position // Name position for error messages
	Value   Expr           // Initializer expression (nil if absent)
}

// Subroutine represents a subroutine declaration.
// Example: SUBROUTINE INT add(INT a, INT b) DO ... END
type Subroutine struct {
	BaseDecl
	ReturnType Type           // VOID, INT, BOOL, or STRING
	Name       string         // Subroutine name
	NamePos    token.Position // Name position for error messages
	Params     []*Param       // Parameters, in source order (may be empty)
	Body       []Stmt         // Statement list (may be empty)
}

// Param represents one subroutine parameter.
type Param struct {
	Type     Type           // Declared type
	Name     string         // Parameter name
	StartPos token.Position // Position of the type keyword
	EndPos   token.Position // Position after the name
}

// Pos returns the position of the parameter's type keyword.
func (p *Param) Pos() token.Position { return p.StartPos }

// End returns the position after the parameter name.
func (p *Param) End() token.Position { return p.EndPos }

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

var (
	_ Node = (*Program)(nil)
	_ Node = (*Param)(nil)
	_ Decl = (*ConstDecl)(nil)
	_ Decl = (*VarDecl)(nil)
	_ Decl = (*Subroutine)(nil)
)
