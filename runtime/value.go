// Package runtime holds the tagged values the evaluator produces. A value
// knows its type tag, but the tag is derived from the value's own kind on
// demand and never stored alongside it.
package runtime

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/veld-lang/veld/conf"
	"github.com/veld-lang/veld/parse"
	"github.com/veld-lang/veld/types"
)

// Value is the runtime representation of every veld value.
type Value interface {
	fmt.Stringer
	Type() types.Type
	Val() any
}

// Env is the binding environment values close over. Persistent, so extending
// a scope never mutates the scope it extends.
type Env = immutable.Map[string, Value]

func NewEnv() *Env {
	return immutable.NewMap[string, Value](immutable.NewHasher(""))
}

// Apply calls a function value with arguments; the evaluator provides it so
// builtins like bench can invoke user functions without importing the
// evaluator.
type Apply func(fn Value, args []Value) (Value, error)

type (
	Nothing struct{}
	Bool    struct{ V bool }
	Int8    struct{ V int8 }
	Int16   struct{ V int16 }
	Int32   struct{ V int32 }
	Int64   struct{ V int64 }
	UInt8   struct{ V uint8 }
	UInt16  struct{ V uint16 }
	UInt32  struct{ V uint32 }
	UInt64  struct{ V uint64 }
	Float32 struct{ V float32 }
	Float64 struct{ V float64 }
	Str     struct{ V string }
	Char    struct{ V rune }
	Sym     struct{ Name string }

	// TypeVal is a first-class type: the value a bare type name evaluates to.
	TypeVal struct{ T types.Type }

	// Builtin is a function implemented in Go. Arity -1 means variadic.
	Builtin struct {
		Name  string
		Arity int
		Call  func(apply Apply, args []Value) (Value, error)
	}

	// Fn is a user-defined single-expression function closing over the
	// environment it was defined in.
	Fn struct {
		Name   string
		Params []string
		Body   parse.Expr
		Env    *Env
	}
)

func (v Nothing) Type() types.Type { return types.Nothing }
func (v Bool) Type() types.Type    { return types.Bool }
func (v Int8) Type() types.Type    { return types.Int8 }
func (v Int16) Type() types.Type   { return types.Int16 }
func (v Int32) Type() types.Type   { return types.Int32 }
func (v Int64) Type() types.Type   { return types.Int64 }
func (v UInt8) Type() types.Type   { return types.UInt8 }
func (v UInt16) Type() types.Type  { return types.UInt16 }
func (v UInt32) Type() types.Type  { return types.UInt32 }
func (v UInt64) Type() types.Type  { return types.UInt64 }
func (v Float32) Type() types.Type { return types.Float32 }
func (v Float64) Type() types.Type { return types.Float64 }
func (v Str) Type() types.Type     { return types.String }
func (v Char) Type() types.Type    { return types.Char }
func (v Sym) Type() types.Type     { return types.Symbol }
func (v TypeVal) Type() types.Type { return types.TypeTag }
func (v Builtin) Type() types.Type { return types.Function }
func (v Fn) Type() types.Type      { return types.Function }

func (v Nothing) Val() any { return nil }
func (v Bool) Val() any    { return v.V }
func (v Int8) Val() any    { return v.V }
func (v Int16) Val() any   { return v.V }
func (v Int32) Val() any   { return v.V }
func (v Int64) Val() any   { return v.V }
func (v UInt8) Val() any   { return v.V }
func (v UInt16) Val() any  { return v.V }
func (v UInt32) Val() any  { return v.V }
func (v UInt64) Val() any  { return v.V }
func (v Float32) Val() any { return v.V }
func (v Float64) Val() any { return v.V }
func (v Str) Val() any     { return v.V }
func (v Char) Val() any    { return v.V }
func (v Sym) Val() any     { return v.Name }
func (v TypeVal) Val() any { return v.T }
func (v Builtin) Val() any { return v.Name }
func (v Fn) Val() any      { return v.Name }

func (v Nothing) String() string { return "nothing" }
func (v Bool) String() string    { return strconv.FormatBool(v.V) }
func (v Int8) String() string    { return strconv.FormatInt(int64(v.V), 10) }
func (v Int16) String() string   { return strconv.FormatInt(int64(v.V), 10) }
func (v Int32) String() string   { return strconv.FormatInt(int64(v.V), 10) }
func (v Int64) String() string   { return strconv.FormatInt(v.V, 10) }
func (v UInt8) String() string   { return strconv.FormatUint(uint64(v.V), 10) }
func (v UInt16) String() string  { return strconv.FormatUint(uint64(v.V), 10) }
func (v UInt32) String() string  { return strconv.FormatUint(uint64(v.V), 10) }
func (v UInt64) String() string  { return strconv.FormatUint(v.V, 10) }
func (v Float32) String() string { return floatString(float64(v.V), 32) }
func (v Float64) String() string { return floatString(v.V, 64) }
func (v Str) String() string     { return strconv.Quote(v.V) }
func (v Char) String() string    { return strconv.QuoteRune(v.V) }
func (v Sym) String() string     { return ":" + v.Name }
func (v TypeVal) String() string { return v.T.String() }
func (v Builtin) String() string { return v.Name }
func (v Fn) String() string      { return v.Name }

// floatString keeps floats visibly floats: a value with no fractional part
// still renders with a trailing ".0".
func floatString(v float64, bits int) string {
	s := strconv.FormatFloat(v, 'g', conf.FLOATDISPLAYPREC, bits)
	if !strings.ContainsAny(s, ".eEnI") {
		s += ".0"
	}
	return s
}

// TypeOf derives the type tag of a value.
func TypeOf(v Value) types.Type {
	return v.Type()
}

// ToValue boxes a plain Go value.
func ToValue(in any) Value {
	switch v := in.(type) {
	case nil:
		return Nothing{}
	case bool:
		return Bool{V: v}
	case int:
		return Int64{V: int64(v)}
	case int64:
		return Int64{V: v}
	case float64:
		return Float64{V: v}
	case float32:
		return Float32{V: v}
	case string:
		return Str{V: v}
	case types.Type:
		return TypeVal{T: v}
	case Value:
		return v
	default:
		panic(fmt.Sprintf("cannot box value of Go type %T", in))
	}
}
