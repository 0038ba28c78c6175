package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/kolkov/minilang/token"
)

// Printer provides pretty-printing for AST nodes.
// It outputs a source-shaped representation suitable for debugging.
type Printer struct {
	w      io.Writer
	indent int
	err    error
}

// NewPrinter creates a new Printer that writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes a pretty-printed representation of the node to the writer.
func (p *Printer) Print(node Node) error {
	p.printNode(node)
	return p.err
}

// Sprint returns the pretty-printed representation of a node as a string.
func Sprint(node Node) string {
	var sb strings.Builder
	_ = NewPrinter(&sb).Print(node)
	return sb.String()
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) writeIndent() {
	if p.err != nil {
		return
	}
	for i := 0; i < p.indent; i++ {
		_, p.err = io.WriteString(p.w, "    ")
	}
}

func (p *Printer) printNode(node Node) {
	if node == nil {
		p.printf("<nil>")
		return
	}

	switch n := node.(type) {
	case *Program:
		p.printProgram(n)
	case *ConstDecl:
		p.printConstDecl(n)
	case *VarDecl:
		p.printVarDecl(n)
	case *Subroutine:
		p.printSubroutine(n)
	case *Param:
		p.printf("%s %s", n.Type, n.Name)
	case Expr:
		p.printExpr(n)
	case Stmt:
		p.printStmt(n)
	default:
		p.printf("<%T>", node)
	}
}

func (p *Printer) printProgram(prog *Program) {
	for _, c := range prog.Consts {
		p.printConstDecl(c)
		p.printf("\n")
	}
	if len(prog.Consts) > 0 {
		p.printf("\n")
	}

	for _, v := range prog.Vars {
		p.printVarDecl(v)
		p.printf("\n")
	}
	if len(prog.Vars) > 0 {
		p.printf("\n")
	}

	for _, s := range prog.Subs {
		p.printSubroutine(s)
		p.printf("\n\n")
	}
}

func (p *Printer) printConstDecl(c *ConstDecl) {
	p.printf("CONST %s %s = ", c.Type, c.Name)
	p.printExpr(c.Value)
	p.printf(";")
}

func (p *Printer) printVarDecl(v *VarDecl) {
	p.printf("%s %s", v.Type, v.Name)
	if v.Value != nil {
		p.printf(" = ")
		p.printExpr(v.Value)
	}
	p.printf(";")
}

func (p *Printer) printSubroutine(s *Subroutine) {
	p.printf("SUBROUTINE %s %s(", s.ReturnType, s.Name)
	for i, param := range s.Params {
		if i > 0 {
			p.printf(", ")
		}
		p.printf("%s %s", param.Type, param.Name)
	}
	p.printf(") DO\n")
	p.indent++
	p.printBlock(s.Body)
	p.indent--
	p.writeIndent()
	p.printf("END")
}

func (p *Printer) printBlock(stmts []Stmt) {
	for _, s := range stmts {
		p.writeIndent()
		p.printStmt(s)
		p.printf("\n")
	}
}

func (p *Printer) printStmt(s Stmt) {
	switch n := s.(type) {
	case *AssignStmt:
		p.printf("%s = ", n.Target)
		p.printExpr(n.Value)
		p.printf(";")

	case *ReturnStmt:
		p.printf("RETURN ")
		p.printExpr(n.Value)
		p.printf(";")

	case *PrintStmt:
		p.printf("PRINT(")
		p.printExpr(n.Value)
		p.printf(");")

	case *CallStmt:
		p.printExpr(n.Call)
		p.printf(";")

	case *IfStmt:
		p.printf("IF (")
		p.printExpr(n.Cond)
		p.printf(") THEN\n")
		p.indent++
		p.printBlock(n.Then)
		p.indent--
		if len(n.Else) > 0 {
			p.writeIndent()
			p.printf("ELSE\n")
			p.indent++
			p.printBlock(n.Else)
			p.indent--
		}
		p.writeIndent()
		p.printf("END")

	case *WhileStmt:
		p.printf("WHILE (")
		p.printExpr(n.Cond)
		p.printf(") DO\n")
		p.indent++
		p.printBlock(n.Body)
		p.indent--
		p.writeIndent()
		p.printf("END")

	default:
		p.printf("<%T>", s)
	}
}

func (p *Printer) printExpr(e Expr) {
	switch n := e.(type) {
	case *IntLit:
		p.printf("%d", n.Value)

	case *StringLit:
		p.printf("%q", n.Value)

	case *BoolLit:
		if n.Value {
			p.printf("TRUE")
		} else {
			p.printf("FALSE")
		}

	case *VarRef:
		p.printf("%s", n.Name)

	case *BinaryExpr:
		p.printf("(")
		p.printExpr(n.Left)
		p.printf(" %s ", opString(n.Op))
		p.printExpr(n.Right)
		p.printf(")")

	case *UnaryExpr:
		p.printf("(%s ", opString(n.Op))
		p.printExpr(n.Expr)
		p.printf(")")

	case *CallExpr:
		p.printf("%s(", n.Name)
		for i, arg := range n.Args {
			if i > 0 {
				p.printf(", ")
			}
			p.printExpr(arg)
		}
		p.printf(")")

	default:
		p.printf("<%T>", e)
	}
}

// opString returns the source spelling of an operator token.
func opString(t token.Token) string {
	switch t {
	case token.ADD:
		return "+"
	case token.SUB:
		return "-"
	case token.MUL:
		return "*"
	case token.DIV:
		return "/"
	case token.EQUALS:
		return "=="
	case token.NOT_EQUALS:
		return "!="
	case token.GREATER:
		return ">"
	case token.LESS:
		return "<"
	case token.AND:
		return "AND"
	case token.OR:
		return "OR"
	case token.NOT:
		return "NOT"
	default:
		return "<op>"
	}
}
