package parse

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/veld-lang/veld/velderr"
)

var escapeCodes = map[rune]rune{
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'0':  '\x00',
	'\\': '\\',
	'"':  '"',
	'\'': '\'',
}

type lexer struct {
	line   int
	col    int
	rdr    *bufio.Reader
	peeked rune
}

func newLexer(src string) *lexer {
	return &lexer{
		line: 1,
		rdr:  bufio.NewReader(strings.NewReader(src)),
	}
}

// pos is 1-based: the column of the next rune to be consumed.
func (lex *lexer) pos() velderr.Loc {
	return velderr.Loc{Line: lex.line, Column: lex.col + 1}
}

func (lex *lexer) errf(msg string, data ...any) error {
	return lex.errAt(lex.pos(), msg, data...)
}

func (lex *lexer) errAt(pos velderr.Loc, msg string, data ...any) error {
	return velderr.New(velderr.NewParse{
		Positioner:    pos,
		ParserMessage: fmt.Sprintf(msg, data...),
	})
}

func (lex *lexer) peek() rune {
	if lex.peeked != 0 {
		return lex.peeked
	}
	lex.peeked, _, _ = lex.rdr.ReadRune()
	return lex.peeked
}

func (lex *lexer) next() rune {
	if lex.peeked != 0 {
		ch := lex.peeked
		lex.col++
		lex.peeked = 0
		return ch
	}
	ch, _, err := lex.rdr.ReadRune()
	if err != nil {
		return 0
	}
	lex.col++
	return ch
}

func (lex *lexer) skipSpace() {
	for {
		switch lex.peek() {
		case ' ', '\t', '\r':
			lex.next()
		case '\n':
			lex.next()
			lex.line++
			lex.col = 0
		case '#': // line comment
			for ch := lex.peek(); ch != 0 && ch != '\n'; ch = lex.peek() {
				lex.next()
			}
		default:
			return
		}
	}
}

// tokens lexes the whole source; the parser works over the resulting slice
// so statement dispatch can look ahead freely.
func (lex *lexer) tokens() ([]token, error) {
	var out []token
	for {
		tk, err := lex.scan()
		if err != nil {
			return nil, err
		}
		out = append(out, tk)
		if tk.kind == tokenEOF {
			return out, nil
		}
	}
}

func (lex *lexer) scan() (token, error) {
	lex.skipSpace()
	pos := lex.pos()
	ch := lex.peek()
	switch {
	case ch == 0:
		return token{Loc: pos, kind: tokenEOF}, nil
	case unicode.IsDigit(ch):
		return lex.scanNumber(pos)
	case isIdentStart(ch):
		return lex.scanIdent(pos)
	case ch == '"':
		return lex.scanString(pos)
	case ch == '\'':
		return lex.scanChar(pos)
	}
	lex.next()
	switch ch {
	case '+':
		return token{Loc: pos, kind: tokenAdd}, nil
	case '-':
		return token{Loc: pos, kind: tokenMinus}, nil
	case '*':
		return token{Loc: pos, kind: tokenMultiply}, nil
	case '/':
		return token{Loc: pos, kind: tokenDivide}, nil
	case '%':
		return token{Loc: pos, kind: tokenModulo}, nil
	case '^':
		return token{Loc: pos, kind: tokenExponent}, nil
	case '?':
		return token{Loc: pos, kind: tokenQuestion}, nil
	case ',':
		return token{Loc: pos, kind: tokenComma}, nil
	case '(':
		return token{Loc: pos, kind: tokenOpenParen}, nil
	case ')':
		return token{Loc: pos, kind: tokenCloseParen}, nil
	case '{':
		return token{Loc: pos, kind: tokenOpenCurly}, nil
	case '}':
		return token{Loc: pos, kind: tokenCloseCurly}, nil
	case '=':
		if lex.peek() == '=' {
			lex.next()
			return token{Loc: pos, kind: tokenEq}, nil
		}
		return token{Loc: pos, kind: tokenAssign}, nil
	case '!':
		if lex.peek() == '=' {
			lex.next()
			return token{Loc: pos, kind: tokenNeq}, nil
		}
		return token{Loc: pos, kind: tokenNot}, nil
	case '<':
		switch lex.peek() {
		case '=':
			lex.next()
			return token{Loc: pos, kind: tokenLte}, nil
		case ':':
			lex.next()
			return token{Loc: pos, kind: tokenSubtype}, nil
		}
		return token{Loc: pos, kind: tokenLt}, nil
	case '>':
		if lex.peek() == '=' {
			lex.next()
			return token{Loc: pos, kind: tokenGte}, nil
		}
		return token{Loc: pos, kind: tokenGt}, nil
	case '&':
		if lex.peek() == '&' {
			lex.next()
			return token{Loc: pos, kind: tokenAnd}, nil
		}
		return token{}, lex.errAt(pos, "unexpected character '&'")
	case '|':
		if lex.peek() == '|' {
			lex.next()
			return token{Loc: pos, kind: tokenOr}, nil
		}
		return token{}, lex.errAt(pos, "unexpected character '|'")
	case ':':
		// a symbol literal is a colon glued to an identifier, :like_this;
		// with a space in between it is a plain colon
		if isIdentStart(lex.peek()) {
			id := lex.takeIdent()
			return token{Loc: pos, kind: tokenSymbol, ident: id}, nil
		}
		return token{Loc: pos, kind: tokenColon}, nil
	}
	return token{}, lex.errAt(pos, "unexpected character %q", ch)
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentPart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

func (lex *lexer) takeIdent() string {
	var sb strings.Builder
	for isIdentPart(lex.peek()) {
		sb.WriteRune(lex.next())
	}
	return sb.String()
}

func (lex *lexer) scanIdent(pos velderr.Loc) (token, error) {
	return token{Loc: pos, kind: tokenIdent, ident: lex.takeIdent()}, nil
}

func (lex *lexer) scanNumber(pos velderr.Loc) (token, error) {
	var sb strings.Builder
	isFloat := false
	for unicode.IsDigit(lex.peek()) || lex.peek() == '_' {
		if ch := lex.next(); ch != '_' {
			sb.WriteRune(ch)
		}
	}
	if lex.peek() == '.' {
		isFloat = true
		sb.WriteRune(lex.next())
		for unicode.IsDigit(lex.peek()) {
			sb.WriteRune(lex.next())
		}
	}
	if ch := lex.peek(); ch == 'e' || ch == 'E' {
		isFloat = true
		sb.WriteRune(lex.next())
		if ch := lex.peek(); ch == '+' || ch == '-' {
			sb.WriteRune(lex.next())
		}
		for unicode.IsDigit(lex.peek()) {
			sb.WriteRune(lex.next())
		}
	}
	if isFloat {
		f, err := strconv.ParseFloat(sb.String(), 64)
		if err != nil {
			return token{}, lex.errf("malformed number %q", sb.String())
		}
		return token{Loc: pos, kind: tokenFloat, floatVal: f}, nil
	}
	i, err := strconv.ParseInt(sb.String(), 10, 64)
	if err != nil {
		return token{}, lex.errf("malformed number %q", sb.String())
	}
	return token{Loc: pos, kind: tokenInt, intVal: i}, nil
}

func (lex *lexer) scanString(pos velderr.Loc) (token, error) {
	lex.next() // opening quote
	var sb strings.Builder
	for {
		ch := lex.next()
		switch ch {
		case 0, '\n':
			return token{}, lex.errf("unterminated string")
		case '"':
			return token{Loc: pos, kind: tokenString, strVal: sb.String()}, nil
		case '\\':
			esc, ok := escapeCodes[lex.next()]
			if !ok {
				return token{}, lex.errf("unknown escape sequence")
			}
			sb.WriteRune(esc)
		default:
			sb.WriteRune(ch)
		}
	}
}

func (lex *lexer) scanChar(pos velderr.Loc) (token, error) {
	lex.next() // opening quote
	ch := lex.next()
	if ch == 0 || ch == '\'' {
		return token{}, lex.errf("empty character literal")
	}
	if ch == '\\' {
		esc, ok := escapeCodes[lex.next()]
		if !ok {
			return token{}, lex.errf("unknown escape sequence")
		}
		ch = esc
	}
	if lex.next() != '\'' {
		return token{}, lex.errf("unterminated character literal")
	}
	return token{Loc: pos, kind: tokenChar, charVal: ch}, nil
}
