package parse

import "github.com/veld-lang/veld/velderr"

type Node interface {
	velderr.Positioner
}

// Stmt is one cell statement: a plain expression, an assignment, or a
// single-expression function definition.
type Stmt interface {
	Node
	stmt()
}

type Expr interface {
	Node
	expr()
}

type (
	ExprStmt struct {
		X Expr
	}

	// Assign covers both x = e and the declared form x: Float64 = e.
	// DeclaredTag is empty when no declaration is present.
	Assign struct {
		velderr.Loc
		Name        string
		DeclaredTag string
		X           Expr
	}

	// FnDef is a single-expression function definition, f(x, y) = body.
	FnDef struct {
		velderr.Loc
		Name   string
		Params []string
		Body   Expr
	}
)

func (s *ExprStmt) Pos() velderr.Loc { return s.X.Pos() }

func (s *ExprStmt) stmt() {}
func (s *Assign) stmt()   {}
func (s *FnDef) stmt()    {}

type (
	IntLit struct {
		velderr.Loc
		V int64
	}
	FloatLit struct {
		velderr.Loc
		V float64
	}
	StrLit struct {
		velderr.Loc
		V string
	}
	CharLit struct {
		velderr.Loc
		V rune
	}
	SymLit struct {
		velderr.Loc
		Name string
	}
	Ident struct {
		velderr.Loc
		Name string
	}
	Unary struct {
		velderr.Loc
		Op string
		X  Expr
	}
	Binary struct {
		velderr.Loc
		Op   string
		L, R Expr
	}
	Ternary struct {
		velderr.Loc
		Cond, Then, Else Expr
	}
	Call struct {
		velderr.Loc
		Fn   Expr
		Args []Expr
	}
	// TypeApply is curly-brace application, Array{Float64, 2} or
	// Union{Int64, Float64}.
	TypeApply struct {
		velderr.Loc
		Base Expr
		Args []Expr
	}
)

func (e *IntLit) expr()    {}
func (e *FloatLit) expr()  {}
func (e *StrLit) expr()    {}
func (e *CharLit) expr()   {}
func (e *SymLit) expr()    {}
func (e *Ident) expr()     {}
func (e *Unary) expr()     {}
func (e *Binary) expr()    {}
func (e *Ternary) expr()   {}
func (e *Call) expr()      {}
func (e *TypeApply) expr() {}
