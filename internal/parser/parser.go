package parser

import (
	"fmt"

	"github.com/tinyrange/creducido/internal/ast"
	"github.com/tinyrange/creducido/internal/diag"
	"github.com/tinyrange/creducido/internal/lexer"
	"github.com/tinyrange/creducido/internal/types"
)

// SyntaxError is the first token the grammar could not accept. A Tok of
// type EOF means the input ended early.
type SyntaxError struct {
	File string
	Tok  lexer.Token
	Want string // what the grammar expected at this point, may be empty
}

func (e *SyntaxError) Error() string {
	return e.Diagnostic().Error()
}

// Diagnostic converts e to a diag.Diagnostic.
func (e *SyntaxError) Diagnostic() diag.Diagnostic {
	d := diag.Diagnostic{
		Kind: diag.Syntax,
		Code: diag.ESyntax,
		Pos:  diag.Pos{File: e.File, Line: e.Tok.Line, Col: e.Tok.Col},
		Msg:  fmt.Sprintf("unexpected %s", e.Tok),
	}
	if e.Want != "" {
		d.Hint = "expected " + e.Want
	}
	return d
}

type Parser struct {
	lx   *lexer.Lexer
	file string
	tok  lexer.Token
	peek lexer.Token
}

// ParseFile parses one translation unit. Lexical diagnostics go to sink,
// which may be nil; they do not stop the parse. The first syntax error is
// returned as a *SyntaxError together with a nil tree.
func ParseFile(filename, src string, sink diag.Sink) (*ast.File, error) {
	lx := lexer.New(src, sink)
	lx.SetFile(filename)
	return New(lx, filename).Parse()
}

// New returns a parser reading from lx.
func New(lx *lexer.Lexer, filename string) *Parser {
	p := &Parser{lx: lx, file: filename}
	p.tok = lx.Next()
	p.peek = lx.Next()
	return p
}

func (p *Parser) Parse() (*ast.File, error) {
	f := &ast.File{Name: p.file}
	if p.tok.Type == lexer.EOF {
		return nil, p.fail("declaration")
	}
	for p.tok.Type != lexer.EOF {
		d, err := p.parseExternal()
		if err != nil {
			return nil, err
		}
		f.Decls = append(f.Decls, d)
	}
	return f, nil
}

func (p *Parser) next() {
	p.tok = p.peek
	if p.tok.Type == lexer.EOF {
		return
	}
	p.peek = p.lx.Next()
}

func (p *Parser) fail(want string) error {
	return &SyntaxError{File: p.file, Tok: p.tok, Want: want}
}

func (p *Parser) expect(tt lexer.TokenType) (lexer.Token, error) {
	if p.tok.Type != tt {
		return lexer.Token{}, p.fail(tt.String())
	}
	t := p.tok
	p.next()
	return t, nil
}

func (p *Parser) atType() bool {
	return p.tok.Type == lexer.KW_INT || p.tok.Type == lexer.KW_CHAR
}

func (p *Parser) parseType() (types.Type, error) {
	switch p.tok.Type {
	case lexer.KW_INT:
		p.next()
		return types.IntT(), nil
	case lexer.KW_CHAR:
		p.next()
		return types.CharT(), nil
	default:
		return types.Type{}, p.fail("type")
	}
}

// external := funcdef | prototype | vardecl
func (p *Parser) parseExternal() (ast.Decl, error) {
	var ret types.Type
	switch p.tok.Type {
	case lexer.KW_VOID:
		p.next()
		ret = types.VoidT()
	case lexer.KW_INT, lexer.KW_CHAR:
		ret, _ = p.parseType()
	default:
		return nil, p.fail("declaration")
	}
	nameTok, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if p.tok.Type == lexer.LPAREN {
		return p.parseFunc(ret, nameTok.Lex)
	}
	if ret.K == types.Void {
		return nil, p.fail(lexer.LPAREN.String())
	}
	return p.parseVarDeclRest(ret, nameTok.Lex)
}

// parseVarDeclRest parses { ',' IDENT } ';' after the first name.
func (p *Parser) parseVarDeclRest(typ types.Type, first string) (*ast.VarDecl, error) {
	d := &ast.VarDecl{Typ: typ, Names: []string{first}}
	for p.tok.Type == lexer.COMMA {
		p.next()
		t, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		d.Names = append(d.Names, t.Lex)
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return d, nil
}

func (p *Parser) parseVarDecl() (*ast.VarDecl, error) {
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	t, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	return p.parseVarDeclRest(typ, t.Lex)
}

// parseFunc parses the parameter list and decides between a prototype and a
// definition from the token after ')'.
func (p *Parser) parseFunc(ret types.Type, name string) (ast.Decl, error) {
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	specs, err := p.parseParamSpecs()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	switch p.tok.Type {
	case lexer.SEMI:
		p.next()
		return &ast.FuncProto{Ret: ret, Name: name, Params: specs}, nil
	case lexer.LBRACE:
		params, ok := defParams(specs)
		if !ok {
			return nil, p.fail(lexer.SEMI.String())
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &ast.FuncDecl{
			Header: &ast.FuncHeader{Ret: ret, Name: name, Params: params},
			Body:   body,
		}, nil
	default:
		return nil, p.fail("';' or '{'")
	}
}

// defParams narrows prototype specs to the plain "type name" pairs a
// definition allows.
func defParams(specs []ast.ParamSpec) ([]*ast.Param, bool) {
	var params []*ast.Param
	for _, s := range specs {
		pr, ok := s.(*ast.Param)
		if !ok {
			return nil, false
		}
		params = append(params, pr)
	}
	return params, true
}

// params := 'void' | spec { ',' spec } [ ',' '...' ]
func (p *Parser) parseParamSpecs() ([]ast.ParamSpec, error) {
	if p.tok.Type == lexer.KW_VOID {
		p.next()
		return nil, nil
	}
	var specs []ast.ParamSpec
	for {
		s, err := p.parseParamSpec()
		if err != nil {
			return nil, err
		}
		specs = append(specs, s)
		if p.tok.Type != lexer.COMMA {
			return specs, nil
		}
		p.next()
		if p.tok.Type == lexer.ELLIPSIS {
			p.next()
			return append(specs, &ast.Ellipsis{}), nil
		}
	}
}

func (p *Parser) parseParamSpec() (ast.ParamSpec, error) {
	if p.tok.Type == lexer.KW_CHAR && p.peek.Type == lexer.STAR {
		p.next()
		p.next()
		t, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		return &ast.ParamPtr{Typ: types.PointerTo(types.CharT()), Name: t.Lex}, nil
	}
	if !p.atType() {
		return nil, p.fail("parameter type")
	}
	typ, _ := p.parseType()
	t, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	return &ast.Param{Typ: typ, Name: t.Lex}, nil
}

// block := '{' { vardecl } { stmt } '}'
func (p *Parser) parseBlock() (*ast.BlockStmt, error) {
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	b := &ast.BlockStmt{}
	for p.atType() {
		d, err := p.parseVarDecl()
		if err != nil {
			return nil, err
		}
		b.Locals = append(b.Locals, d)
	}
	for p.tok.Type != lexer.RBRACE {
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		b.Stmts = append(b.Stmts, s)
	}
	p.next()
	return b, nil
}

func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch p.tok.Type {
	case lexer.KW_RETURN:
		p.next()
		if p.tok.Type == lexer.SEMI {
			p.next()
			return &ast.ReturnStmt{}, nil
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.SEMI); err != nil {
			return nil, err
		}
		return &ast.ReturnStmt{Expr: e}, nil
	case lexer.KW_WHILE:
		p.next()
		cond, err := p.parseCond()
		if err != nil {
			return nil, err
		}
		body, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		return &ast.WhileStmt{Cond: cond, Body: body}, nil
	case lexer.KW_IF:
		p.next()
		cond, err := p.parseCond()
		if err != nil {
			return nil, err
		}
		then, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		s := &ast.IfStmt{Cond: cond, Then: then}
		// The innermost open if takes the else.
		if p.tok.Type == lexer.KW_ELSE {
			p.next()
			s.Else, err = p.parseStmt()
			if err != nil {
				return nil, err
			}
		}
		return s, nil
	case lexer.LBRACE:
		return p.parseBlock()
	default:
		if !startsExpr(p.tok.Type) {
			return nil, p.fail("statement")
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.SEMI); err != nil {
			return nil, err
		}
		return &ast.ExprStmt{X: e}, nil
	}
}

// parseCond parses '(' expr ')'.
func (p *Parser) parseCond() (ast.Expr, error) {
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return e, nil
}

func startsExpr(t lexer.TokenType) bool {
	switch t {
	case lexer.IDENT, lexer.INT, lexer.CHAR, lexer.STRING, lexer.LPAREN,
		lexer.PLUS, lexer.MINUS, lexer.KW_PRINTF, lexer.KW_SCANF:
		return true
	}
	return false
}

// Expr grammar, lowest precedence first:
// expr       = IDENT '=' expr | equality
// equality   = relational { (==|!=) relational }
// relational = additive { (<|<=|>|>=) additive }
// additive   = term { (+|-) term }
// term       = unary { (*|/) unary }
// unary      = (+|-) unary | primary
func (p *Parser) parseExpr() (ast.Expr, error) {
	if p.tok.Type == lexer.IDENT && p.peek.Type == lexer.ASSIGN {
		name := p.tok.Lex
		p.next()
		p.next()
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.AssignExpr{Name: name, Value: v}, nil
	}
	return p.parseEquality()
}

// binaryLevel parses one left-associative level: operand { op operand }.
func (p *Parser) binaryLevel(ops map[lexer.TokenType]ast.BinOp, operand func() (ast.Expr, error)) (ast.Expr, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := ops[p.tok.Type]
		if !ok {
			return left, nil
		}
		p.next()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
}

var (
	equalityOps   = map[lexer.TokenType]ast.BinOp{lexer.EQEQ: ast.OpEq, lexer.NEQ: ast.OpNe}
	relationalOps = map[lexer.TokenType]ast.BinOp{lexer.LT: ast.OpLt, lexer.LE: ast.OpLe, lexer.GT: ast.OpGt, lexer.GE: ast.OpGe}
	additiveOps   = map[lexer.TokenType]ast.BinOp{lexer.PLUS: ast.OpAdd, lexer.MINUS: ast.OpSub}
	termOps       = map[lexer.TokenType]ast.BinOp{lexer.STAR: ast.OpMul, lexer.SLASH: ast.OpDiv}
)

func (p *Parser) parseEquality() (ast.Expr, error) {
	return p.binaryLevel(equalityOps, p.parseRelational)
}

func (p *Parser) parseRelational() (ast.Expr, error) {
	return p.binaryLevel(relationalOps, p.parseAdditive)
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	return p.binaryLevel(additiveOps, p.parseTerm)
}

func (p *Parser) parseTerm() (ast.Expr, error) {
	return p.binaryLevel(termOps, p.parseUnary)
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	var op ast.UnOp
	switch p.tok.Type {
	case lexer.PLUS:
		op = ast.OpPos
	case lexer.MINUS:
		op = ast.OpNeg
	default:
		return p.parsePrimary()
	}
	p.next()
	x, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpr{Op: op, X: x}, nil
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	switch p.tok.Type {
	case lexer.INT:
		lit := &ast.IntLit{Value: p.tok.Val}
		p.next()
		return lit, nil
	case lexer.CHAR:
		lit := &ast.CharLit{Value: unquoteChar(p.tok.Lex)}
		p.next()
		return lit, nil
	case lexer.STRING:
		lit := &ast.StringLit{Value: unquoteString(p.tok.Lex)}
		p.next()
		return lit, nil
	case lexer.IDENT:
		if p.peek.Type == lexer.LPAREN {
			return p.parseCall(ast.CalleeIdent)
		}
		id := &ast.Ident{Name: p.tok.Lex}
		p.next()
		return id, nil
	case lexer.KW_PRINTF:
		return p.parseCall(ast.CalleePrintf)
	case lexer.KW_SCANF:
		return p.parseCall(ast.CalleeScanf)
	case lexer.LPAREN:
		p.next()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, p.fail("expression")
	}
}

// call := callee '(' [ expr { ',' expr } ] ')'
func (p *Parser) parseCall(kind ast.CalleeKind) (ast.Expr, error) {
	call := &ast.CallExpr{Fn: ast.Callee{Kind: kind, Name: p.tok.Lex}}
	p.next()
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	if p.tok.Type != lexer.RPAREN {
		for {
			a, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, a)
			if p.tok.Type != lexer.COMMA {
				break
			}
			p.next()
		}
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return call, nil
}
