package runtime

import (
	"fmt"
	"math"

	"github.com/veld-lang/veld/types"
)

// numeric classification and promotion. Arithmetic follows the usual dynamic
// promotion rules: integer kinds compute in Int64, a Float32 operand promotes
// an integer operand to Float32, and Float64 wins over everything. Division
// always produces a Float64, which is itself a small type-stability lesson:
// 4/2 and 3/2 carry the same tag.

// AsInt reports v as an int64 when v is any integer kind (Bool included,
// since Bool sits in the numeric tower under Integer).
func AsInt(v Value) (int64, bool) {
	switch v := v.(type) {
	case Int8:
		return int64(v.V), true
	case Int16:
		return int64(v.V), true
	case Int32:
		return int64(v.V), true
	case Int64:
		return v.V, true
	case UInt8:
		return int64(v.V), true
	case UInt16:
		return int64(v.V), true
	case UInt32:
		return int64(v.V), true
	case UInt64:
		return int64(v.V), true
	case Bool:
		if v.V {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// AsFloat reports v as a float64 when v is any numeric kind.
func AsFloat(v Value) (float64, bool) {
	switch v := v.(type) {
	case Float32:
		return float64(v.V), true
	case Float64:
		return v.V, true
	}
	if i, ok := AsInt(v); ok {
		return float64(i), true
	}
	return 0, false
}

func IsNumeric(v Value) bool {
	_, ok := AsFloat(v)
	return ok
}

func isFloat32(v Value) bool {
	_, ok := v.(Float32)
	return ok
}

func isFloat64(v Value) bool {
	_, ok := v.(Float64)
	return ok
}

// Arith applies a binary arithmetic operator with promotion.
func Arith(op string, a, b Value) (Value, error) {
	af, aok := AsFloat(a)
	bf, bok := AsFloat(b)
	if !aok || !bok {
		return nil, fmt.Errorf("operator '%s' needs numeric operands, got %s and %s",
			op, TypeOf(a), TypeOf(b))
	}

	// division leaves the integers behind no matter what
	if op == "/" {
		if bf == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return Float64{V: af / bf}, nil
	}

	ai, aInt := AsInt(a)
	bi, bInt := AsInt(b)
	if aInt && bInt {
		switch op {
		case "+":
			return Int64{V: ai + bi}, nil
		case "-":
			return Int64{V: ai - bi}, nil
		case "*":
			return Int64{V: ai * bi}, nil
		case "%":
			if bi == 0 {
				return nil, fmt.Errorf("division by zero")
			}
			return Int64{V: ai % bi}, nil
		case "^":
			return powInt(ai, bi)
		}
		return nil, fmt.Errorf("unknown operator '%s'", op)
	}

	var out float64
	switch op {
	case "+":
		out = af + bf
	case "-":
		out = af - bf
	case "*":
		out = af * bf
	case "%":
		out = math.Mod(af, bf)
	case "^":
		out = math.Pow(af, bf)
	default:
		return nil, fmt.Errorf("unknown operator '%s'", op)
	}
	// Float64 contaminates; two Float32 operands (or Float32 with an
	// integer) stay Float32
	if !isFloat64(a) && !isFloat64(b) && (isFloat32(a) || isFloat32(b)) {
		return Float32{V: float32(out)}, nil
	}
	return Float64{V: out}, nil
}

func powInt(base, exp int64) (Value, error) {
	if exp < 0 {
		return nil, fmt.Errorf("integer '^' needs a non-negative exponent, got %d", exp)
	}
	out := int64(1)
	for ; exp > 0; exp-- {
		out *= base
	}
	return Int64{V: out}, nil
}

// Compare applies a binary comparison operator, producing a Bool.
// Ordering operators need numeric operands; equality works on everything.
func Compare(op string, a, b Value) (Value, error) {
	switch op {
	case "==":
		return Bool{V: ValueEqual(a, b)}, nil
	case "!=":
		return Bool{V: !ValueEqual(a, b)}, nil
	}
	af, aok := AsFloat(a)
	bf, bok := AsFloat(b)
	if !aok || !bok {
		return nil, fmt.Errorf("operator '%s' needs numeric operands, got %s and %s",
			op, TypeOf(a), TypeOf(b))
	}
	switch op {
	case "<":
		return Bool{V: af < bf}, nil
	case "<=":
		return Bool{V: af <= bf}, nil
	case ">":
		return Bool{V: af > bf}, nil
	case ">=":
		return Bool{V: af >= bf}, nil
	}
	return nil, fmt.Errorf("unknown operator '%s'", op)
}

// ValueEqual compares values the way == does in the language: numerically for
// numbers, so 1 == 1.0 even though the tags differ; structurally otherwise.
func ValueEqual(a, b Value) bool {
	if af, ok := AsFloat(a); ok {
		bf, ok := AsFloat(b)
		return ok && af == bf
	}
	switch a := a.(type) {
	case TypeVal:
		b, ok := b.(TypeVal)
		return ok && types.Equal(a.T, b.T)
	case Builtin:
		b, ok := b.(Builtin)
		return ok && a.Name == b.Name
	case Fn:
		b, ok := b.(Fn)
		return ok && a.Name == b.Name
	default:
		return types.Equal(TypeOf(a), TypeOf(b)) && a.Val() == b.Val()
	}
}

// ZeroOf builds the zero value carrying the given tag; the stable clamping
// policy is built on it.
func ZeroOf(t types.Type) (Value, error) {
	return constOf(t, 0)
}

// OneOf builds the multiplicative unit carrying the given tag.
func OneOf(t types.Type) (Value, error) {
	return constOf(t, 1)
}

func constOf(t types.Type, v int64) (Value, error) {
	tag, ok := t.(*types.Tag)
	if !ok {
		return nil, fmt.Errorf("%s has no numeric constants", t)
	}
	switch tag {
	case types.Int8:
		return Int8{V: int8(v)}, nil
	case types.Int16:
		return Int16{V: int16(v)}, nil
	case types.Int32:
		return Int32{V: int32(v)}, nil
	case types.Int64:
		return Int64{V: v}, nil
	case types.UInt8:
		return UInt8{V: uint8(v)}, nil
	case types.UInt16:
		return UInt16{V: uint16(v)}, nil
	case types.UInt32:
		return UInt32{V: uint32(v)}, nil
	case types.UInt64:
		return UInt64{V: uint64(v)}, nil
	case types.Float32:
		return Float32{V: float32(v)}, nil
	case types.Float64:
		return Float64{V: float64(v)}, nil
	case types.Bool:
		return Bool{V: v != 0}, nil
	}
	return nil, fmt.Errorf("%s has no numeric constants", t)
}
