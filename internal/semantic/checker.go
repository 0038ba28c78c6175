package semantic

import (
	"github.com/kolkov/minilang/ast"
	"github.com/kolkov/minilang/token"
)

// Check validates a parsed program and returns the populated symbol
// table. Validation stops at the first error.
//
// Two classes of errors are detected: duplicate identifiers among the
// top-level declarations (constants, globals, and subroutines share one
// namespace), and entry point problems (a VOID subroutine named "main"
// must exist). Subroutine bodies are not descended into.
func Check(prog *ast.Program) (*SymbolTable, error) {
	c := &checker{table: NewSymbolTable()}
	if err := c.checkProgram(prog); err != nil {
		return nil, err
	}
	return c.table, nil
}

type checker struct {
	table *SymbolTable
}

func (c *checker) checkProgram(prog *ast.Program) error {
	for _, decl := range prog.Consts {
		if err := c.declareConst(decl); err != nil {
			return err
		}
	}
	for _, decl := range prog.Vars {
		if err := c.declareVar(decl); err != nil {
			return err
		}
	}
	for _, sub := range prog.Subs {
		if err := c.declareSubroutine(sub); err != nil {
			return err
		}
	}
	return c.checkEntryPoint(prog)
}

func (c *checker) declareConst(decl *ast.ConstDecl) error {
	sym := &Symbol{
		Name:  decl.Name,
		Type:  decl.Type,
		Const: true,
		Pos:   decl.NamePos,
	}
	if !c.table.Declare(sym) {
		return errorf(decl.NamePos, errDuplicateIdent, decl.Name)
	}
	return nil
}

func (c *checker) declareVar(decl *ast.VarDecl) error {
	sym := &Symbol{
		Name: decl.Name,
		Type: decl.Type,
		Pos:  decl.NamePos,
	}
	if !c.table.Declare(sym) {
		return errorf(decl.NamePos, errDuplicateIdent, decl.Name)
	}
	return nil
}

func (c *checker) declareSubroutine(sub *ast.Subroutine) error {
	params := make([]ParamInfo, 0, len(sub.Params))
	for _, p := range sub.Params {
		params = append(params, ParamInfo{Type: p.Type, Name: p.Name})
	}
	sym := &Symbol{
		Name:       sub.Name,
		Type:       sub.ReturnType,
		Subroutine: true,
		Params:     params,
		Pos:        sub.NamePos,
	}
	if !c.table.Declare(sym) {
		return errorf(sub.NamePos, errDuplicateIdent, sub.Name)
	}
	return nil
}

func (c *checker) checkEntryPoint(prog *ast.Program) error {
	for _, sub := range prog.Subs {
		if sub.Name != "main" {
			continue
		}
		if sub.ReturnType != ast.Void {
			return errorf(sub.NamePos, errMainNotVoid)
		}
		return nil
	}
	return errorf(token.NoPos, errMissingMain)
}
