package parser_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/kolkov/minilang/ast"
	"github.com/kolkov/minilang/internal/parser"
	"github.com/kolkov/minilang/token"
)

// ignorePos drops position fields so tests compare tree shape only.
var ignorePos = cmpopts.IgnoreTypes(token.Position{})

func intLit(v int64, raw string) *ast.IntLit {
	return &ast.IntLit{Value: v, Raw: raw}
}

func varRef(name string) *ast.VarRef {
	return &ast.VarRef{Name: name}
}

func binary(op token.Token, left, right ast.Expr) *ast.BinaryExpr {
	return &ast.BinaryExpr{Left: left, Op: op, Right: right}
}

// TestParseEmpty tests parsing an empty program.
func TestParseEmpty(t *testing.T) {
	prog, err := parser.Parse("")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if prog == nil {
		t.Fatal("Parse() returned nil program")
	}
	if len(prog.Consts) != 0 {
		t.Errorf("Consts = %d, want 0", len(prog.Consts))
	}
	if len(prog.Vars) != 0 {
		t.Errorf("Vars = %d, want 0", len(prog.Vars))
	}
	if len(prog.Subs) != 0 {
		t.Errorf("Subs = %d, want 0", len(prog.Subs))
	}
}

// TestParseProgram tests parsing complete programs.
func TestParseProgram(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		wantConsts int
		wantVars   int
		wantSubs   int
		wantErr    bool
	}{
		{
			name:       "const only",
			src:        "CONST INT LIMIT = 10;",
			wantConsts: 1,
		},
		{
			name:     "var only",
			src:      "INT x;",
			wantVars: 1,
		},
		{
			name:     "var with initializer",
			src:      "INT x = 1;",
			wantVars: 1,
		},
		{
			name:     "subroutine only",
			src:      "SUBROUTINE VOID main() DO END",
			wantSubs: 1,
		},
		{
			name:       "all sections",
			src:        "CONST INT L = 1;\nINT x;\nSUBROUTINE VOID main() DO END",
			wantConsts: 1,
			wantVars:   1,
			wantSubs:   1,
		},
		{
			name:       "multiple per section",
			src:        "CONST INT A = 1; CONST BOOL B = TRUE;\nINT x; STRING s;\nSUBROUTINE VOID f() DO END SUBROUTINE VOID main() DO END",
			wantConsts: 2,
			wantVars:   2,
			wantSubs:   2,
		},
		{
			name:    "const after vars",
			src:     "INT x; CONST INT A = 1;",
			wantErr: true,
		},
		{
			name:    "var after subroutine",
			src:     "SUBROUTINE VOID main() DO END INT x;",
			wantErr: true,
		},
		{
			name:    "missing semicolon",
			src:     "INT x",
			wantErr: true,
		},
		{
			name:    "const without initializer",
			src:     "CONST INT A;",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := parser.Parse(tt.src)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if prog == nil {
				t.Fatal("Parse() returned nil")
			}
			if len(prog.Consts) != tt.wantConsts {
				t.Errorf("Consts = %d, want %d", len(prog.Consts), tt.wantConsts)
			}
			if len(prog.Vars) != tt.wantVars {
				t.Errorf("Vars = %d, want %d", len(prog.Vars), tt.wantVars)
			}
			if len(prog.Subs) != tt.wantSubs {
				t.Errorf("Subs = %d, want %d", len(prog.Subs), tt.wantSubs)
			}
		})
	}
}

// TestParseExprPrecedence tests the operator precedence ladder.
func TestParseExprPrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want ast.Expr
	}{
		{
			// Multiplication binds tighter than addition.
			src: "1 + 2 * 3",
			want: binary(token.ADD,
				intLit(1, "1"),
				binary(token.MUL, intLit(2, "2"), intLit(3, "3"))),
		},
		{
			src: "1 * 2 + 3",
			want: binary(token.ADD,
				binary(token.MUL, intLit(1, "1"), intLit(2, "2")),
				intLit(3, "3")),
		},
		{
			// Same-level operators associate left.
			src: "1 - 2 - 3",
			want: binary(token.SUB,
				binary(token.SUB, intLit(1, "1"), intLit(2, "2")),
				intLit(3, "3")),
		},
		{
			// Parentheses override precedence without a wrapper node.
			src: "(1 + 2) * 3",
			want: binary(token.MUL,
				binary(token.ADD, intLit(1, "1"), intLit(2, "2")),
				intLit(3, "3")),
		},
		{
			// Comparison binds looser than arithmetic.
			src: "a + 1 > b * 2",
			want: binary(token.GREATER,
				binary(token.ADD, varRef("a"), intLit(1, "1")),
				binary(token.MUL, varRef("b"), intLit(2, "2"))),
		},
		{
			// AND binds looser than comparison.
			src: "a == b AND c != d",
			want: binary(token.AND,
				binary(token.EQUALS, varRef("a"), varRef("b")),
				binary(token.NOT_EQUALS, varRef("c"), varRef("d"))),
		},
		{
			// OR binds loosest.
			src: "a OR b AND c",
			want: binary(token.OR,
				varRef("a"),
				binary(token.AND, varRef("b"), varRef("c"))),
		},
		{
			// NOT binds tighter than AND.
			src: "NOT a AND b",
			want: binary(token.AND,
				&ast.UnaryExpr{Op: token.NOT, Expr: varRef("a")},
				varRef("b")),
		},
		{
			// NOT is right-associative.
			src: "NOT NOT a",
			want: &ast.UnaryExpr{
				Op:   token.NOT,
				Expr: &ast.UnaryExpr{Op: token.NOT, Expr: varRef("a")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := parser.ParseExpr(tt.src)
			if err != nil {
				t.Fatalf("ParseExpr(%q) error = %v", tt.src, err)
			}
			if diff := cmp.Diff(tt.want, got, ignorePos); diff != "" {
				t.Errorf("ParseExpr(%q) mismatch (-want +got):\n%s", tt.src, diff)
			}
		})
	}
}

// TestParseExprLiterals tests literal and reference expressions.
func TestParseExprLiterals(t *testing.T) {
	tests := []struct {
		src  string
		want ast.Expr
	}{
		{"0", intLit(0, "0")},
		{"42", intLit(42, "42")},
		{`"hello"`, &ast.StringLit{Value: "hello"}},
		{`"with\nescape"`, &ast.StringLit{Value: `with\nescape`}},
		{"TRUE", &ast.BoolLit{Value: true}},
		{"FALSE", &ast.BoolLit{Value: false}},
		{"counter", varRef("counter")},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := parser.ParseExpr(tt.src)
			if err != nil {
				t.Fatalf("ParseExpr(%q) error = %v", tt.src, err)
			}
			if diff := cmp.Diff(tt.want, got, ignorePos); diff != "" {
				t.Errorf("ParseExpr(%q) mismatch (-want +got):\n%s", tt.src, diff)
			}
		})
	}
}

// TestParseCallDuality verifies that one call shape serves both
// expression and statement position.
func TestParseCallDuality(t *testing.T) {
	// Call in expression position, with a nested call argument.
	expr, err := parser.ParseExpr("f(1, g(2))")
	if err != nil {
		t.Fatalf("ParseExpr() error = %v", err)
	}
	wantExpr := &ast.CallExpr{
		Name: "f",
		Args: []ast.Expr{
			intLit(1, "1"),
			&ast.CallExpr{Name: "g", Args: []ast.Expr{intLit(2, "2")}},
		},
	}
	if diff := cmp.Diff(ast.Expr(wantExpr), expr, ignorePos); diff != "" {
		t.Errorf("call expression mismatch (-want +got):\n%s", diff)
	}

	// The same call as a standalone statement.
	prog, err := parser.Parse("SUBROUTINE VOID main() DO f(1, g(2)); END")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	body := prog.Subs[0].Body
	if len(body) != 1 {
		t.Fatalf("body statements = %d, want 1", len(body))
	}
	call, ok := body[0].(*ast.CallStmt)
	if !ok {
		t.Fatalf("statement is %T, want *ast.CallStmt", body[0])
	}
	if diff := cmp.Diff(wantExpr, call.Call, ignorePos); diff != "" {
		t.Errorf("call statement mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCallNoArgs(t *testing.T) {
	expr, err := parser.ParseExpr("ready()")
	if err != nil {
		t.Fatalf("ParseExpr() error = %v", err)
	}
	call, ok := expr.(*ast.CallExpr)
	if !ok {
		t.Fatalf("expression is %T, want *ast.CallExpr", expr)
	}
	if len(call.Args) != 0 {
		t.Errorf("Args = %d, want 0", len(call.Args))
	}
}

// TestParseStmt tests individual statement forms.
func TestParseStmt(t *testing.T) {
	tests := []struct {
		name string
		body string
		want ast.Stmt
	}{
		{
			name: "assignment",
			body: "x = 1;",
			want: &ast.AssignStmt{Target: "x", Value: intLit(1, "1")},
		},
		{
			name: "return",
			body: "RETURN x + 1;",
			want: &ast.ReturnStmt{
				Value: binary(token.ADD, varRef("x"), intLit(1, "1")),
			},
		},
		{
			name: "print",
			body: `PRINT("hi");`,
			want: &ast.PrintStmt{Value: &ast.StringLit{Value: "hi"}},
		},
		{
			name: "while",
			body: "WHILE (i < 10) DO i = i + 1; END",
			want: &ast.WhileStmt{
				Cond: binary(token.LESS, varRef("i"), intLit(10, "10")),
				Body: []ast.Stmt{
					&ast.AssignStmt{
						Target: "i",
						Value:  binary(token.ADD, varRef("i"), intLit(1, "1")),
					},
				},
			},
		},
		{
			name: "if with else",
			body: "IF (x > 0) THEN PRINT(x); ELSE PRINT(0); END",
			want: &ast.IfStmt{
				Cond: binary(token.GREATER, varRef("x"), intLit(0, "0")),
				Then: []ast.Stmt{&ast.PrintStmt{Value: varRef("x")}},
				Else: []ast.Stmt{&ast.PrintStmt{Value: intLit(0, "0")}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := parser.Parse("SUBROUTINE VOID main() DO " + tt.body + " END")
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			body := prog.Subs[0].Body
			if len(body) != 1 {
				t.Fatalf("body statements = %d, want 1", len(body))
			}
			if diff := cmp.Diff(tt.want, body[0], ignorePos); diff != "" {
				t.Errorf("statement mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestParseEmptyElse verifies that a missing ELSE clause yields an
// empty, non-nil else-block.
func TestParseEmptyElse(t *testing.T) {
	prog, err := parser.Parse("SUBROUTINE VOID main() DO IF (x > 0) THEN PRINT(x); END END")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	stmt, ok := prog.Subs[0].Body[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("statement is %T, want *ast.IfStmt", prog.Subs[0].Body[0])
	}
	if stmt.Else == nil {
		t.Error("Else is nil, want empty slice")
	}
	if len(stmt.Else) != 0 {
		t.Errorf("Else statements = %d, want 0", len(stmt.Else))
	}
	if len(stmt.Then) != 1 {
		t.Errorf("Then statements = %d, want 1", len(stmt.Then))
	}
}

func TestParseSubroutineParams(t *testing.T) {
	prog, err := parser.Parse("SUBROUTINE INT add(INT a, INT b) DO RETURN a + b; END")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	sub := prog.Subs[0]
	if sub.Name != "add" {
		t.Errorf("Name = %q, want add", sub.Name)
	}
	if sub.ReturnType != ast.Int {
		t.Errorf("ReturnType = %v, want INT", sub.ReturnType)
	}
	if len(sub.Params) != 2 {
		t.Fatalf("Params = %d, want 2", len(sub.Params))
	}
	if sub.Params[0].Name != "a" || sub.Params[1].Name != "b" {
		t.Errorf("param names = %q %q, want a b", sub.Params[0].Name, sub.Params[1].Name)
	}
	if sub.Params[0].Type != ast.Int {
		t.Errorf("param type = %v, want INT", sub.Params[0].Type)
	}
}

// VOID is a valid spelling in every type position, including
// declarations, matching the grammar's single type rule.
func TestParseVoidEverywhere(t *testing.T) {
	if _, err := parser.Parse("VOID x;"); err != nil {
		t.Errorf("VOID variable: unexpected error %v", err)
	}
	if _, err := parser.Parse("CONST VOID V = 0;"); err != nil {
		t.Errorf("VOID constant: unexpected error %v", err)
	}
	if _, err := parser.Parse("SUBROUTINE VOID f(VOID p) DO END"); err != nil {
		t.Errorf("VOID parameter: unexpected error %v", err)
	}
}

// TestParseErrors tests that malformed programs fail.
func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"stray token", "x"},
		{"missing close paren", "SUBROUTINE VOID main( DO END"},
		{"missing DO", "SUBROUTINE VOID main() END"},
		{"missing END", "SUBROUTINE VOID main() DO"},
		{"statement outside body", "PRINT(1);"},
		{"if without THEN", "SUBROUTINE VOID main() DO IF (x) PRINT(x); END END"},
		{"if without paren", "SUBROUTINE VOID main() DO IF x THEN PRINT(x); END END"},
		{"while without paren", "SUBROUTINE VOID main() DO WHILE x DO END END"},
		{"chained comparison", "SUBROUTINE VOID main() DO x = a < b < c; END"},
		{"chained comparison in call", "SUBROUTINE VOID main() DO x = f(a > b > c); END"},
		{"unterminated call operand", "SUBROUTINE VOID main() DO x = 1 + f("},
		{"trailing comma in call", "SUBROUTINE VOID main() DO f(1,); END"},
		{"trailing comma in params", "SUBROUTINE VOID f(INT a,) DO END"},
		{"bare name statement", "SUBROUTINE VOID main() DO x; END"},
		{"return without value", "SUBROUTINE VOID main() DO RETURN; END"},
		{"print without parens", "SUBROUTINE VOID main() DO PRINT 1; END"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.src)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.src)
			}
			if _, ok := err.(*parser.ParseError); !ok {
				t.Errorf("error is %T, want *parser.ParseError", err)
			}
		})
	}
}

// TestParseFirstErrorOnly verifies parsing halts at the first error.
func TestParseFirstErrorOnly(t *testing.T) {
	// Both declarations are malformed; only the first is reported.
	_, err := parser.Parse("INT ;\nBOOL ;")
	if err == nil {
		t.Fatal("Parse() succeeded, want error")
	}
	pe, ok := err.(*parser.ParseError)
	if !ok {
		t.Fatalf("error is %T, want *parser.ParseError", err)
	}
	if pe.Pos.Line != 1 {
		t.Errorf("error line = %d, want 1", pe.Pos.Line)
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := parser.Parse("CONST INT A = ;")
	if err == nil {
		t.Fatal("Parse() succeeded, want error")
	}
	pe, ok := err.(*parser.ParseError)
	if !ok {
		t.Fatalf("error is %T, want *parser.ParseError", err)
	}
	if pe.Pos.Line != 1 || pe.Pos.Column != 15 {
		t.Errorf("error position = %d:%d, want 1:15", pe.Pos.Line, pe.Pos.Column)
	}
	if !strings.Contains(pe.Message, "expected expression") {
		t.Errorf("message = %q, want expected-expression", pe.Message)
	}
}

// Nested control flow exercises the statement list terminators.
func TestParseNested(t *testing.T) {
	src := `
SUBROUTINE VOID main()
DO
    WHILE (i < 10) DO
        IF (i > 5) THEN
            PRINT(i);
        ELSE
            i = i + 2;
        END
        i = i + 1;
    END
END
`
	prog, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	loop, ok := prog.Subs[0].Body[0].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("statement is %T, want *ast.WhileStmt", prog.Subs[0].Body[0])
	}
	if len(loop.Body) != 2 {
		t.Fatalf("loop body statements = %d, want 2", len(loop.Body))
	}
	if _, ok := loop.Body[0].(*ast.IfStmt); !ok {
		t.Errorf("first loop statement is %T, want *ast.IfStmt", loop.Body[0])
	}
}
