package parser

import (
	"strconv"

	"github.com/kolkov/minilang/ast"
	"github.com/kolkov/minilang/internal/lexer"
	"github.com/kolkov/minilang/token"
)

// tokenName returns a human-readable name for a token type.
func tokenName(t token.Token) string {
	switch t {
	case token.ILLEGAL:
		return "illegal"
	case token.EOF:
		return "end of input"
	case token.ADD:
		return "+"
	case token.SUB:
		return "-"
	case token.MUL:
		return "*"
	case token.DIV:
		return "/"
	case token.ASSIGN:
		return "="
	case token.EQUALS:
		return "=="
	case token.NOT_EQUALS:
		return "!="
	case token.GREATER:
		return ">"
	case token.LESS:
		return "<"
	case token.LPAREN:
		return "("
	case token.RPAREN:
		return ")"
	case token.SEMICOLON:
		return ";"
	case token.COMMA:
		return ","
	case token.CONST:
		return "CONST"
	case token.SUBROUTINE:
		return "SUBROUTINE"
	case token.DO:
		return "DO"
	case token.END:
		return "END"
	case token.IF:
		return "IF"
	case token.THEN:
		return "THEN"
	case token.ELSE:
		return "ELSE"
	case token.WHILE:
		return "WHILE"
	case token.RETURN:
		return "RETURN"
	case token.PRINT:
		return "PRINT"
	case token.TRUE:
		return "TRUE"
	case token.FALSE:
		return "FALSE"
	case token.VOID:
		return "VOID"
	case token.INT:
		return "INT"
	case token.BOOL:
		return "BOOL"
	case token.STRING:
		return "STRING"
	case token.AND:
		return "AND"
	case token.OR:
		return "OR"
	case token.NOT:
		return "NOT"
	case token.NAME:
		return "identifier"
	case token.INT_LIT:
		return "integer literal"
	case token.STRING_LIT:
		return "string literal"
	default:
		return "unknown"
	}
}

// Parser is a recursive descent parser for MiniLang programs.
// Parsing halts at the first syntax error; no recovery is attempted.
type Parser struct {
	lexer *lexer.Lexer // Lexer instance
	tok   lexer.Token  // Current token
	err   *ParseError  // First syntax error, nil while the parse is healthy
}

// New creates a Parser reading tokens from the given lexer.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{lexer: l}
	p.next() // Initialize first token
	return p
}

// Parse parses a MiniLang program from source code.
// Returns the AST, or the first syntax error encountered.
func Parse(src string) (*ast.Program, error) {
	return ParseBytes([]byte(src))
}

// ParseBytes parses a MiniLang program from a byte slice.
func ParseBytes(src []byte) (*ast.Program, error) {
	return New(lexer.New(src)).ParseProgram()
}

// ParseProgram parses a complete program from the parser's token stream.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := p.parseProgram()
	if p.err != nil {
		return nil, p.err
	}
	return prog, nil
}

// ParseExpr parses a single expression (useful for testing).
func ParseExpr(src string) (ast.Expr, error) {
	p := New(lexer.New([]byte(src)))
	expr := p.parseExpr()
	if p.err != nil {
		return nil, p.err
	}
	return expr, nil
}

// -----------------------------------------------------------------------------
// Token handling
// -----------------------------------------------------------------------------

// next advances to the next token.
func (p *Parser) next() {
	p.tok = p.lexer.Scan()
}

// expect checks that the current token is tok and advances.
// If not, it records a syntax error.
func (p *Parser) expect(tok token.Token) bool {
	if p.err != nil {
		return false
	}
	if p.tok.Type != tok {
		p.error(expectedError(p.tok.Pos, tokenName(tok), p.tokenDesc()))
		return false
	}
	p.next()
	return true
}

// expectName expects a NAME token and returns its value and position.
func (p *Parser) expectName() (string, token.Position) {
	name := p.tok.Value
	pos := p.tok.Pos
	if !p.expect(token.NAME) {
		return "", pos
	}
	return name, pos
}

// match returns true if current token matches any of the given types.
func (p *Parser) match(types ...token.Token) bool {
	for _, t := range types {
		if p.tok.Type == t {
			return true
		}
	}
	return false
}

// tokenDesc returns a description of the current token for error messages.
func (p *Parser) tokenDesc() string {
	switch p.tok.Type {
	case token.NAME, token.INT_LIT:
		return "'" + p.tok.Value + "'"
	case token.STRING_LIT:
		return "string literal"
	case token.EOF:
		return "end of input"
	default:
		return "'" + tokenName(p.tok.Type) + "'"
	}
}

// error records the first parse error; later errors are discarded
// because parsing stops unwinding as soon as err is set.
func (p *Parser) error(err *ParseError) {
	if p.err == nil {
		p.err = err
	}
}

// errorf records a formatted parse error at the current position.
func (p *Parser) errorf(format string, args ...any) {
	p.error(errorf(p.tok.Pos, format, args...))
}

// -----------------------------------------------------------------------------
// Program parsing
// -----------------------------------------------------------------------------

// parseProgram parses a complete MiniLang program.
// Section order is fixed: constants, then variables, then subroutines.
// Each section is zero-or-more; a declaration out of order surfaces as
// an unexpected-token error here.
func (p *Parser) parseProgram() *ast.Program {
	startPos := p.tok.Pos
	prog := &ast.Program{StartPos: startPos}

	for p.err == nil && p.tok.Type == token.CONST {
		if c := p.parseConstDecl(); c != nil {
			prog.Consts = append(prog.Consts, c)
		}
	}

	for p.err == nil && p.tok.Type.IsType() {
		if v := p.parseVarDecl(); v != nil {
			prog.Vars = append(prog.Vars, v)
		}
	}

	for p.err == nil && p.tok.Type == token.SUBROUTINE {
		if s := p.parseSubroutine(); s != nil {
			prog.Subs = append(prog.Subs, s)
		}
	}

	if p.err == nil && p.tok.Type != token.EOF {
		p.errorf("expected declaration, got %s", p.tokenDesc())
	}

	prog.EndPos = p.tok.Pos
	return prog
}

// parseConstDecl parses: CONST type name = expression ;
func (p *Parser) parseConstDecl() *ast.ConstDecl {
	startPos := p.tok.Pos
	p.expect(token.CONST)

	typ := p.parseType()
	name, namePos := p.expectName()
	p.expect(token.ASSIGN)
	value := p.parseExpr()
	p.expect(token.SEMICOLON)

	if p.err != nil {
		return nil
	}
	return &ast.ConstDecl{
		BaseDecl: ast.MakeBaseDecl(startPos, p.tok.Pos),
		Type:     typ,
		Name:     name,
		NamePos:  namePos,
		Value:    value,
	}
}

// parseVarDecl parses: type name [= expression] ;
func (p *Parser) parseVarDecl() *ast.VarDecl {
	startPos := p.tok.Pos

	typ := p.parseType()
	name, namePos := p.expectName()

	var value ast.Expr
	if p.tok.Type == token.ASSIGN {
		p.next()
		value = p.parseExpr()
	}
	p.expect(token.SEMICOLON)

	if p.err != nil {
		return nil
	}
	return &ast.VarDecl{
		BaseDecl: ast.MakeBaseDecl(startPos, p.tok.Pos),
		Type:     typ,
		Name:     name,
		NamePos:  namePos,
		Value:    value,
	}
}

// parseSubroutine parses:
// SUBROUTINE type name ( param-list ) DO statement-list END
func (p *Parser) parseSubroutine() *ast.Subroutine {
	startPos := p.tok.Pos
	p.expect(token.SUBROUTINE)

	typ := p.parseType()
	name, namePos := p.expectName()

	p.expect(token.LPAREN)
	var params []*ast.Param
	for p.err == nil && !p.match(token.RPAREN, token.EOF) {
		if len(params) > 0 {
			p.expect(token.COMMA)
		}
		if param := p.parseParam(); param != nil {
			params = append(params, param)
		}
	}
	p.expect(token.RPAREN)

	p.expect(token.DO)
	body := p.parseStmtList()
	p.expect(token.END)

	if p.err != nil {
		return nil
	}
	return &ast.Subroutine{
		BaseDecl:   ast.MakeBaseDecl(startPos, p.tok.Pos),
		ReturnType: typ,
		Name:       name,
		NamePos:    namePos,
		Params:     params,
		Body:       body,
	}
}

// parseParam parses one parameter: type name
func (p *Parser) parseParam() *ast.Param {
	startPos := p.tok.Pos
	typ := p.parseType()
	name, _ := p.expectName()
	if p.err != nil {
		return nil
	}
	return &ast.Param{
		Type:     typ,
		Name:     name,
		StartPos: startPos,
		EndPos:   p.tok.Pos,
	}
}

// parseType parses a type keyword. VOID is accepted wherever a type is
// expected, matching the grammar's single type rule.
func (p *Parser) parseType() ast.Type {
	typ, ok := ast.TypeOf(p.tok.Type)
	if !ok {
		p.errorf("expected type, got %s", p.tokenDesc())
		return ast.Void
	}
	p.next()
	return typ
}

// -----------------------------------------------------------------------------
// Statement parsing
// -----------------------------------------------------------------------------

// parseStmtList parses zero or more statements up to END, ELSE, or
// end of input. The result is never nil: an absent else-block is an
// empty statement list, not a missing one.
func (p *Parser) parseStmtList() []ast.Stmt {
	stmts := []ast.Stmt{}
	for p.err == nil && !p.match(token.END, token.ELSE, token.EOF) {
		stmt := p.parseStmt()
		if stmt == nil {
			break
		}
		stmts = append(stmts, stmt)
	}
	return stmts
}

// parseStmt parses any statement.
func (p *Parser) parseStmt() ast.Stmt {
	startPos := p.tok.Pos

	switch p.tok.Type {
	case token.IF:
		return p.parseIfStmt()

	case token.WHILE:
		return p.parseWhileStmt()

	case token.RETURN:
		p.next()
		value := p.parseExpr()
		p.expect(token.SEMICOLON)
		if p.err != nil {
			return nil
		}
		return &ast.ReturnStmt{
			BaseStmt: ast.MakeBaseStmt(startPos, p.tok.Pos),
			Value:    value,
		}

	case token.PRINT:
		p.next()
		p.expect(token.LPAREN)
		value := p.parseExpr()
		p.expect(token.RPAREN)
		p.expect(token.SEMICOLON)
		if p.err != nil {
			return nil
		}
		return &ast.PrintStmt{
			BaseStmt: ast.MakeBaseStmt(startPos, p.tok.Pos),
			Value:    value,
		}

	case token.NAME:
		// assignment (name = ...) or call statement (name(...))
		name, namePos := p.expectName()
		switch p.tok.Type {
		case token.ASSIGN:
			p.next()
			value := p.parseExpr()
			p.expect(token.SEMICOLON)
			if p.err != nil {
				return nil
			}
			return &ast.AssignStmt{
				BaseStmt:  ast.MakeBaseStmt(startPos, p.tok.Pos),
				Target:    name,
				TargetPos: namePos,
				Value:     value,
			}

		case token.LPAREN:
			call := p.parseCall(name, namePos)
			p.expect(token.SEMICOLON)
			if p.err != nil {
				return nil
			}
			return &ast.CallStmt{
				BaseStmt: ast.MakeBaseStmt(startPos, p.tok.Pos),
				Call:     call,
			}

		default:
			p.errorf("expected '=' or '(' after %q, got %s", name, p.tokenDesc())
			return nil
		}

	default:
		p.errorf("expected statement, got %s", p.tokenDesc())
		return nil
	}
}

// parseIfStmt parses:
// IF ( expression ) THEN statement-list [ELSE statement-list] END
func (p *Parser) parseIfStmt() ast.Stmt {
	startPos := p.tok.Pos
	p.next() // consume 'IF'

	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)
	p.expect(token.THEN)

	then := p.parseStmtList()

	elseStmts := []ast.Stmt{}
	if p.tok.Type == token.ELSE {
		p.next()
		elseStmts = p.parseStmtList()
	}
	p.expect(token.END)

	if p.err != nil {
		return nil
	}
	return &ast.IfStmt{
		BaseStmt: ast.MakeBaseStmt(startPos, p.tok.Pos),
		Cond:     cond,
		Then:     then,
		Else:     elseStmts,
	}
}

// parseWhileStmt parses:
// WHILE ( expression ) DO statement-list END
func (p *Parser) parseWhileStmt() ast.Stmt {
	startPos := p.tok.Pos
	p.next() // consume 'WHILE'

	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)
	p.expect(token.DO)

	body := p.parseStmtList()
	p.expect(token.END)

	if p.err != nil {
		return nil
	}
	return &ast.WhileStmt{
		BaseStmt: ast.MakeBaseStmt(startPos, p.tok.Pos),
		Cond:     cond,
		Body:     body,
	}
}

// -----------------------------------------------------------------------------
// Expression parsing
// -----------------------------------------------------------------------------

// Precedence, lowest to highest:
//
//	OR            left-associative
//	AND           left-associative
//	== != > <     non-associative (one comparison per expression)
//	+ -           left-associative
//	* /           left-associative
//	NOT           right-associative
//
// parseExpr parses a full expression.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseOr()
}

// parseOr parses OR expressions.
func (p *Parser) parseOr() ast.Expr {
	return p.parseBinaryLeft(p.parseAnd, token.OR)
}

// parseAnd parses AND expressions.
func (p *Parser) parseAnd() ast.Expr {
	return p.parseBinaryLeft(p.parseCompare, token.AND)
}

// parseCompare parses comparison expressions.
// Comparisons do not associate: "a < b < c" is a syntax error.
func (p *Parser) parseCompare() ast.Expr {
	expr := p.parseAdd()
	if expr == nil {
		return nil
	}

	if p.err == nil && p.match(token.EQUALS, token.NOT_EQUALS, token.GREATER, token.LESS) {
		op := p.tok.Type
		p.next()
		right := p.parseAdd() // Not associative
		if right == nil {
			return expr
		}
		return &ast.BinaryExpr{
			BaseExpr: ast.MakeBaseExpr(expr.Pos(), right.End()),
			Left:     expr,
			Op:       op,
			Right:    right,
		}
	}
	return expr
}

// parseAdd parses + and - expressions.
func (p *Parser) parseAdd() ast.Expr {
	return p.parseBinaryLeft(p.parseMul, token.ADD, token.SUB)
}

// parseMul parses * and / expressions.
func (p *Parser) parseMul() ast.Expr {
	return p.parseBinaryLeft(p.parseUnary, token.MUL, token.DIV)
}

// parseUnary parses NOT expressions (right-associative).
func (p *Parser) parseUnary() ast.Expr {
	if p.tok.Type == token.NOT {
		startPos := p.tok.Pos
		p.next()
		expr := p.parseUnary() // Right-associative
		if expr == nil {
			return nil
		}
		return &ast.UnaryExpr{
			BaseExpr: ast.MakeBaseExpr(startPos, expr.End()),
			Op:       token.NOT,
			Expr:     expr,
		}
	}
	return p.parsePrimary()
}

// parsePrimary parses primary expressions.
func (p *Parser) parsePrimary() ast.Expr {
	startPos := p.tok.Pos

	switch p.tok.Type {
	case token.INT_LIT:
		raw := p.tok.Value
		n, _ := strconv.ParseInt(raw, 10, 64) // overflow behavior is undefined
		p.next()
		return &ast.IntLit{
			BaseExpr: ast.MakeBaseExpr(startPos, p.tok.Pos),
			Value:    n,
			Raw:      raw,
		}

	case token.STRING_LIT:
		s := p.tok.Value
		p.next()
		return &ast.StringLit{
			BaseExpr: ast.MakeBaseExpr(startPos, p.tok.Pos),
			Value:    s,
		}

	case token.TRUE, token.FALSE:
		value := p.tok.Type == token.TRUE
		p.next()
		return &ast.BoolLit{
			BaseExpr: ast.MakeBaseExpr(startPos, p.tok.Pos),
			Value:    value,
		}

	case token.NAME:
		name, namePos := p.expectName()

		// Call: name(args). A bare identifier is always a variable
		// reference, never a call. A failed call must come back as a
		// true nil interface, not a typed nil pointer.
		if p.tok.Type == token.LPAREN {
			if call := p.parseCall(name, namePos); call != nil {
				return call
			}
			return nil
		}

		return &ast.VarRef{
			BaseExpr: ast.MakeBaseExpr(namePos, p.tok.Pos),
			Name:     name,
		}

	case token.LPAREN:
		p.next()
		expr := p.parseExpr()
		p.expect(token.RPAREN)
		// Parentheses only group; no wrapper node is produced.
		return expr

	default:
		p.errorf("expected expression, got %s", p.tokenDesc())
		return nil
	}
}

// parseCall parses a call's argument list: ( [expr {, expr}] )
// The same node shape serves calls in statement and expression position.
func (p *Parser) parseCall(name string, namePos token.Position) *ast.CallExpr {
	p.expect(token.LPAREN)

	var args []ast.Expr
	if p.err == nil && p.tok.Type != token.RPAREN {
		if arg := p.parseExpr(); arg != nil {
			args = append(args, arg)
		}
		for p.err == nil && p.tok.Type == token.COMMA {
			p.next()
			arg := p.parseExpr()
			if arg == nil {
				break
			}
			args = append(args, arg)
		}
	}
	p.expect(token.RPAREN)

	if p.err != nil {
		return nil
	}
	return &ast.CallExpr{
		BaseExpr: ast.MakeBaseExpr(namePos, p.tok.Pos),
		Name:     name,
		NamePos:  namePos,
		Args:     args,
	}
}

// -----------------------------------------------------------------------------
// Helper functions
// -----------------------------------------------------------------------------

// parseBinaryLeft parses left-associative binary operators.
func (p *Parser) parseBinaryLeft(higher func() ast.Expr, ops ...token.Token) ast.Expr {
	expr := higher()
	if expr == nil {
		return nil
	}

	for p.err == nil && p.match(ops...) {
		op := p.tok.Type
		p.next()
		right := higher()
		if right == nil {
			break
		}
		expr = &ast.BinaryExpr{
			BaseExpr: ast.MakeBaseExpr(expr.Pos(), right.End()),
			Left:     expr,
			Op:       op,
			Right:    right,
		}
	}
	return expr
}
