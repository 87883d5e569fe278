package types

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// ConstKind discriminates the constant kinds allowed as type parameters.
type ConstKind int

const (
	IntKind ConstKind = iota
	StrKind
	BoolKind
)

// Const is a constant type parameter, as in the rank of Array{Float64, 2}.
// Constants compare by kind and value.
type Const struct {
	kind ConstKind
	i    int64
	s    string
	b    bool
}

func IntConst(v int64) Const   { return Const{kind: IntKind, i: v} }
func StrConst(v string) Const  { return Const{kind: StrKind, s: v} }
func BoolConst(v bool) Const   { return Const{kind: BoolKind, b: v} }
func (c Const) Kind() ConstKind { return c.kind }

func (c Const) String() string {
	switch c.kind {
	case IntKind:
		return strconv.FormatInt(c.i, 10)
	case StrKind:
		return strconv.Quote(c.s)
	default:
		return strconv.FormatBool(c.b)
	}
}

func (c Const) Hash() uint64 {
	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte{'c', byte(c.kind)})
	_, _ = hasher.Write([]byte(c.String()))
	return hasher.Sum64()
}

func (c Const) isTypeParam() {}

// Instance is a parametric type instance: a tag applied to a full parameter
// list. Instances are invariant in their parameters, so
// Array{Float64, 1} is not a subtype of Array{Real, 1} even though
// Float64 <: Real.
type Instance struct {
	tag    *Tag
	params []TypeParam
}

// NewInstance applies tag to params. The parameter list must match the tag's
// declared arity exactly; there is no partial application.
func NewInstance(tag *Tag, params ...TypeParam) (*Instance, error) {
	if tag.Arity() == 0 {
		return nil, fmt.Errorf("tag %s is not parametric", tag.Name())
	}
	if len(params) != tag.Arity() {
		return nil, fmt.Errorf("tag %s expects %d parameter(s), got %d", tag.Name(), tag.Arity(), len(params))
	}
	return &Instance{tag: tag, params: params}, nil
}

func (i *Instance) Tag() *Tag {
	return i.tag
}

func (i *Instance) Params() []TypeParam {
	return i.params
}

func (i *Instance) String() string {
	parts := make([]string, len(i.params))
	for n, p := range i.params {
		parts[n] = p.String()
	}
	return i.tag.Name() + "{" + strings.Join(parts, ", ") + "}"
}

func (i *Instance) Hash() uint64 {
	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte(i.String()))
	return hasher.Sum64()
}

func (i *Instance) isType()      {}
func (i *Instance) isTypeParam() {}

// TupleType models the argument list of a call. It is the one covariant
// combinator of the lattice: Tuple{Float64} <: Tuple{Real} holds element-wise
// for tuples of the same arity.
type TupleType struct {
	elems []Type
}

func Tuple(elems ...Type) *TupleType {
	return &TupleType{elems: elems}
}

func (t *TupleType) Elems() []Type {
	return t.elems
}

func (t *TupleType) String() string {
	parts := make([]string, len(t.elems))
	for n, e := range t.elems {
		parts[n] = e.String()
	}
	return "Tuple{" + strings.Join(parts, ", ") + "}"
}

func (t *TupleType) Hash() uint64 {
	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte(t.String()))
	return hasher.Sum64()
}

func (t *TupleType) isType()      {}
func (t *TupleType) isTypeParam() {}

// Singleton is a type inhabited by exactly one constant value. Its parent is
// the tag of that value, so Singleton(1) <: Int64 <: Signed and so on.
type Singleton struct {
	value  Const
	parent *Tag
}

func NewSingleton(value Const, parent *Tag) *Singleton {
	return &Singleton{value: value, parent: parent}
}

func (s *Singleton) Value() Const {
	return s.value
}

func (s *Singleton) Parent() *Tag {
	return s.parent
}

func (s *Singleton) String() string {
	return "Singleton(" + s.value.String() + ")"
}

func (s *Singleton) Hash() uint64 {
	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte{'s'})
	_, _ = hasher.Write([]byte(s.parent.Name()))
	_, _ = hasher.Write([]byte(s.value.String()))
	return hasher.Sum64()
}

func (s *Singleton) isType()      {}
func (s *Singleton) isTypeParam() {}
