package semantic

import (
	"github.com/kolkov/minilang/ast"
	"github.com/kolkov/minilang/token"
)

// ParamInfo records one parameter of a declared subroutine.
type ParamInfo struct {
	Type ast.Type
	Name string
}

// Symbol holds information about a declared identifier.
type Symbol struct {
	Name       string         // Identifier name
	Type       ast.Type       // Declared type (return type for subroutines)
	Const      bool           // True for constant declarations
	Subroutine bool           // True for subroutine declarations
	Params     []ParamInfo    // Parameters, in source order (subroutines only)
	Pos        token.Position // Declaration position
}

// Scope is one lexical region of declarations.
// Scopes are parent-linked; lookups walk outwards.
type Scope struct {
	parent  *Scope
	symbols map[string]*Symbol
	name    string // Scope name (e.g., subroutine name or "global")
}

// newScope creates a scope with the given parent.
func newScope(parent *Scope, name string) *Scope {
	return &Scope{
		parent:  parent,
		symbols: make(map[string]*Symbol),
		name:    name,
	}
}

// Name returns the scope name.
func (s *Scope) Name() string {
	return s.name
}

// Count returns the number of symbols declared in this scope alone.
func (s *Scope) Count() int {
	return len(s.symbols)
}

// ForEach iterates over the symbols declared in this scope alone.
func (s *Scope) ForEach(fn func(name string, sym *Symbol)) {
	for name, sym := range s.symbols {
		fn(name, sym)
	}
}

// SymbolTable is a stack of nested scopes. The stack always contains at
// least the global scope. The current validator only ever populates the
// global scope; nested scopes are a general capability.
type SymbolTable struct {
	global  *Scope
	current *Scope
}

// NewSymbolTable creates a symbol table holding a fresh global scope.
func NewSymbolTable() *SymbolTable {
	g := newScope(nil, "global")
	return &SymbolTable{global: g, current: g}
}

// Global returns the outermost scope.
func (st *SymbolTable) Global() *Scope {
	return st.global
}

// PushScope enters a new innermost scope with the given name.
func (st *SymbolTable) PushScope(name string) {
	st.current = newScope(st.current, name)
}

// PopScope leaves the innermost scope.
// Popping the global scope is a programmer error and panics.
func (st *SymbolTable) PopScope() {
	if st.current.parent == nil {
		panic("semantic: cannot pop the global scope")
	}
	st.current = st.current.parent
}

// Declare inserts a symbol into the innermost scope.
// Returns false if the name is already declared in that scope.
// Shadowing an outer scope's name is allowed.
func (st *SymbolTable) Declare(sym *Symbol) bool {
	if _, exists := st.current.symbols[sym.Name]; exists {
		return false
	}
	st.current.symbols[sym.Name] = sym
	return true
}

// Lookup searches scopes innermost to outermost and returns the first
// match. It never mutates the table.
func (st *SymbolTable) Lookup(name string) (*Symbol, bool) {
	for scope := st.current; scope != nil; scope = scope.parent {
		if sym, ok := scope.symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// LookupLocal searches only the innermost scope.
func (st *SymbolTable) LookupLocal(name string) (*Symbol, bool) {
	sym, ok := st.current.symbols[name]
	return sym, ok
}
