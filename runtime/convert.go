package runtime

import (
	"fmt"
	"math"

	"github.com/veld-lang/veld/types"
)

// Convert produces a value equal to v carrying tag t, or fails when t cannot
// represent v. Declared assignment goes through here, which is where the
// "assigning a string to a Float64 variable fails" behavior lives: the check
// happens at the assignment site, not at use sites.
func Convert(v Value, t types.Type) (Value, error) {
	if types.Subtype(TypeOf(v), t) {
		return v, nil
	}
	tag, ok := t.(*types.Tag)
	if !ok {
		return nil, fmt.Errorf("no conversion to %s exists", t)
	}
	if tag.Abstract() {
		return nil, fmt.Errorf("%s is abstract and has no values of its own", tag)
	}

	switch tag {
	case types.Float64:
		if f, ok := AsFloat(v); ok {
			return Float64{V: f}, nil
		}
	case types.Float32:
		if f, ok := AsFloat(v); ok {
			return Float32{V: float32(f)}, nil
		}
	case types.Int8:
		return convertInt(v, tag, math.MinInt8, math.MaxInt8)
	case types.Int16:
		return convertInt(v, tag, math.MinInt16, math.MaxInt16)
	case types.Int32:
		return convertInt(v, tag, math.MinInt32, math.MaxInt32)
	case types.Int64:
		return convertInt(v, tag, math.MinInt64, math.MaxInt64)
	case types.UInt8:
		return convertInt(v, tag, 0, math.MaxUint8)
	case types.UInt16:
		return convertInt(v, tag, 0, math.MaxUint16)
	case types.UInt32:
		return convertInt(v, tag, 0, math.MaxUint32)
	case types.UInt64:
		return convertInt(v, tag, 0, math.MaxInt64)
	case types.Bool:
		if i, ok := AsInt(v); ok && (i == 0 || i == 1) {
			return Bool{V: i == 1}, nil
		}
	case types.Char:
		if i, ok := AsInt(v); ok && i >= 0 && i <= 0x10FFFF {
			return Char{V: rune(i)}, nil
		}
	}
	return nil, fmt.Errorf("no conversion from %s to %s exists", TypeOf(v), tag)
}

// convertInt narrows any numeric value into an integer tag, failing on a
// fractional part or a value outside the target range rather than truncating
// silently.
func convertInt(v Value, tag *types.Tag, min, max int64) (Value, error) {
	var i int64
	switch {
	case isFloat32(v) || isFloat64(v):
		f, _ := AsFloat(v)
		if math.Trunc(f) != f || math.IsInf(f, 0) || math.IsNaN(f) {
			return nil, fmt.Errorf("%s has a fractional part", v)
		}
		i = int64(f)
	default:
		var ok bool
		if i, ok = AsInt(v); !ok {
			if c, isChar := v.(Char); isChar {
				i = int64(c.V)
				break
			}
			return nil, fmt.Errorf("no conversion from %s to %s exists", TypeOf(v), tag)
		}
	}
	if i < min || i > max {
		return nil, fmt.Errorf("%d does not fit in %s", i, tag)
	}
	return constOfInt(tag, i), nil
}

func constOfInt(tag *types.Tag, i int64) Value {
	switch tag {
	case types.Int8:
		return Int8{V: int8(i)}
	case types.Int16:
		return Int16{V: int16(i)}
	case types.Int32:
		return Int32{V: int32(i)}
	case types.UInt8:
		return UInt8{V: uint8(i)}
	case types.UInt16:
		return UInt16{V: uint16(i)}
	case types.UInt32:
		return UInt32{V: uint32(i)}
	case types.UInt64:
		return UInt64{V: uint64(i)}
	default:
		return Int64{V: i}
	}
}
