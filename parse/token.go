// Package parse turns a single cell source into a statement tree. The
// grammar is expressions-only: one statement per cell, no blocks.
package parse

import "github.com/veld-lang/veld/velderr"

type tokenType string

type token struct {
	velderr.Loc
	kind     tokenType
	ident    string
	strVal   string
	intVal   int64
	floatVal float64
	charVal  rune
}

const (
	tokenEOF    tokenType = "<eof>"
	tokenIdent  tokenType = "<ident>"
	tokenInt    tokenType = "<int>"
	tokenFloat  tokenType = "<float>"
	tokenString tokenType = "<string>"
	tokenChar   tokenType = "<char>"
	tokenSymbol tokenType = "<symbol>"

	tokenAdd        tokenType = "+"
	tokenMinus      tokenType = "-"
	tokenMultiply   tokenType = "*"
	tokenDivide     tokenType = "/"
	tokenModulo     tokenType = "%"
	tokenExponent   tokenType = "^"
	tokenNot        tokenType = "!"
	tokenAnd        tokenType = "&&"
	tokenOr         tokenType = "||"
	tokenLt         tokenType = "<"
	tokenLte        tokenType = "<="
	tokenGt         tokenType = ">"
	tokenGte        tokenType = ">="
	tokenEq         tokenType = "=="
	tokenNeq        tokenType = "!="
	tokenSubtype    tokenType = "<:"
	tokenQuestion   tokenType = "?"
	tokenColon      tokenType = ":"
	tokenAssign     tokenType = "="
	tokenComma      tokenType = ","
	tokenOpenParen  tokenType = "("
	tokenCloseParen tokenType = ")"
	tokenOpenCurly  tokenType = "{"
	tokenCloseCurly tokenType = "}"
)
