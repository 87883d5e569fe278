package parse

import (
	"fmt"

	"github.com/veld-lang/veld/velderr"
)

// Parse reads a single statement from src.
func Parse(src string) (Stmt, error) {
	toks, err := newLexer(src).tokens()
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	stmt, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	if tk := p.peek(); tk.kind != tokenEOF {
		return nil, p.errf(tk, "unexpected %s after statement", tk.kind)
	}
	return stmt, nil
}

// ParseExpr reads a single expression from src, rejecting statements.
func ParseExpr(src string) (Expr, error) {
	stmt, err := Parse(src)
	if err != nil {
		return nil, err
	}
	es, ok := stmt.(*ExprStmt)
	if !ok {
		return nil, velderr.New(velderr.NewParse{
			Positioner:    stmt,
			ParserMessage: "expected an expression, found a statement",
		})
	}
	return es.X, nil
}

type parser struct {
	toks []token
	i    int
}

func (p *parser) peek() token {
	return p.toks[p.i]
}

// at peeks n tokens ahead, saturating at EOF.
func (p *parser) at(n int) token {
	if p.i+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.i+n]
}

func (p *parser) next() token {
	tk := p.toks[p.i]
	if tk.kind != tokenEOF {
		p.i++
	}
	return tk
}

func (p *parser) expect(kind tokenType) (token, error) {
	tk := p.peek()
	if tk.kind != kind {
		return token{}, p.errf(tk, "expected %q, found %s", kind, describe(tk))
	}
	return p.next(), nil
}

func (p *parser) errf(tk token, msg string, data ...any) error {
	return velderr.New(velderr.NewParse{
		Positioner:    tk.Loc,
		ParserMessage: fmt.Sprintf(msg, data...),
	})
}

func describe(tk token) string {
	switch tk.kind {
	case tokenIdent:
		return "identifier '" + tk.ident + "'"
	case tokenEOF:
		return "end of input"
	default:
		return "'" + string(tk.kind) + "'"
	}
}

// parseStmt dispatches on lookahead: an identifier followed by '=' (or by
// ': Tag =') is an assignment, an identifier followed by an all-parameter
// parenthesis group and '=' is a function definition, anything else is an
// expression.
func (p *parser) parseStmt() (Stmt, error) {
	if p.peek().kind == tokenIdent {
		switch {
		case p.at(1).kind == tokenAssign:
			return p.parseAssign()
		case p.at(1).kind == tokenColon && p.at(2).kind == tokenIdent && p.at(3).kind == tokenAssign:
			return p.parseAssign()
		case p.at(1).kind == tokenOpenParen && p.isFnDef():
			return p.parseFnDef()
		}
	}
	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ExprStmt{X: x}, nil
}

// isFnDef scans past a parenthesis group of bare identifiers to see whether
// an '=' follows, telling f(x) = ... apart from the call f(x).
func (p *parser) isFnDef() bool {
	i := p.i + 2 // past 'f('
	for ; i < len(p.toks); i++ {
		switch p.toks[i].kind {
		case tokenIdent, tokenComma:
		case tokenCloseParen:
			return i+1 < len(p.toks) && p.toks[i+1].kind == tokenAssign
		default:
			return false
		}
	}
	return false
}

func (p *parser) parseAssign() (Stmt, error) {
	name := p.next()
	out := &Assign{Loc: name.Loc, Name: name.ident}
	if p.peek().kind == tokenColon {
		p.next()
		tag, err := p.expect(tokenIdent)
		if err != nil {
			return nil, err
		}
		out.DeclaredTag = tag.ident
	}
	if _, err := p.expect(tokenAssign); err != nil {
		return nil, err
	}
	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	out.X = x
	return out, nil
}

func (p *parser) parseFnDef() (Stmt, error) {
	name := p.next()
	p.next() // '('
	out := &FnDef{Loc: name.Loc, Name: name.ident}
	for p.peek().kind != tokenCloseParen {
		param, err := p.expect(tokenIdent)
		if err != nil {
			return nil, err
		}
		out.Params = append(out.Params, param.ident)
		if p.peek().kind == tokenComma {
			p.next()
		}
	}
	p.next() // ')'
	if _, err := p.expect(tokenAssign); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	out.Body = body
	return out, nil
}

func (p *parser) parseExpr() (Expr, error) {
	return p.parseTernary()
}

func (p *parser) parseTernary() (Expr, error) {
	cond, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokenQuestion {
		return cond, nil
	}
	q := p.next()
	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenColon); err != nil {
		return nil, err
	}
	els, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &Ternary{Loc: q.Loc, Cond: cond, Then: then, Else: els}, nil
}

func (p *parser) parseOr() (Expr, error) {
	return p.parseBinaryLeft(p.parseAnd, tokenOr)
}

func (p *parser) parseAnd() (Expr, error) {
	return p.parseBinaryLeft(p.parseCmp, tokenAnd)
}

// parseCmp is non-associative: a < b < c is a parse error rather than a
// surprise.
func (p *parser) parseCmp() (Expr, error) {
	l, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	switch p.peek().kind {
	case tokenSubtype, tokenLt, tokenLte, tokenGt, tokenGte, tokenEq, tokenNeq:
		op := p.next()
		r, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		return &Binary{Loc: op.Loc, Op: string(op.kind), L: l, R: r}, nil
	}
	return l, nil
}

func (p *parser) parseSum() (Expr, error) {
	return p.parseBinaryLeft(p.parseProduct, tokenAdd, tokenMinus)
}

func (p *parser) parseProduct() (Expr, error) {
	return p.parseBinaryLeft(p.parsePower, tokenMultiply, tokenDivide, tokenModulo)
}

func (p *parser) parseBinaryLeft(operand func() (Expr, error), ops ...tokenType) (Expr, error) {
	l, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		kind := p.peek().kind
		matched := false
		for _, op := range ops {
			if kind == op {
				matched = true
				break
			}
		}
		if !matched {
			return l, nil
		}
		op := p.next()
		r, err := operand()
		if err != nil {
			return nil, err
		}
		l = &Binary{Loc: op.Loc, Op: string(op.kind), L: l, R: r}
	}
}

// parsePower is right-associative: 2^3^2 is 2^(3^2).
func (p *parser) parsePower() (Expr, error) {
	base, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokenExponent {
		return base, nil
	}
	op := p.next()
	exp, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	return &Binary{Loc: op.Loc, Op: string(op.kind), L: base, R: exp}, nil
}

func (p *parser) parseUnary() (Expr, error) {
	switch p.peek().kind {
	case tokenMinus, tokenNot:
		op := p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Unary{Loc: op.Loc, Op: string(op.kind), X: x}, nil
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() (Expr, error) {
	x, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tokenOpenParen:
			open := p.next()
			args, err := p.parseArgs(tokenCloseParen)
			if err != nil {
				return nil, err
			}
			x = &Call{Loc: open.Loc, Fn: x, Args: args}
		case tokenOpenCurly:
			open := p.next()
			args, err := p.parseArgs(tokenCloseCurly)
			if err != nil {
				return nil, err
			}
			x = &TypeApply{Loc: open.Loc, Base: x, Args: args}
		default:
			return x, nil
		}
	}
}

func (p *parser) parseArgs(closer tokenType) ([]Expr, error) {
	var args []Expr
	for p.peek().kind != closer {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.peek().kind != tokenComma {
			break
		}
		p.next()
	}
	if _, err := p.expect(closer); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *parser) parsePrimary() (Expr, error) {
	tk := p.peek()
	switch tk.kind {
	case tokenInt:
		p.next()
		return &IntLit{Loc: tk.Loc, V: tk.intVal}, nil
	case tokenFloat:
		p.next()
		return &FloatLit{Loc: tk.Loc, V: tk.floatVal}, nil
	case tokenString:
		p.next()
		return &StrLit{Loc: tk.Loc, V: tk.strVal}, nil
	case tokenChar:
		p.next()
		return &CharLit{Loc: tk.Loc, V: tk.charVal}, nil
	case tokenSymbol:
		p.next()
		return &SymLit{Loc: tk.Loc, Name: tk.ident}, nil
	case tokenIdent:
		p.next()
		return &Ident{Loc: tk.Loc, Name: tk.ident}, nil
	case tokenOpenParen:
		p.next()
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokenCloseParen); err != nil {
			return nil, err
		}
		return x, nil
	}
	return nil, p.errf(tk, "expected an expression, found %s", describe(tk))
}
