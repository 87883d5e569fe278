package types

// Subtype reports whether a <: b. The relation is reflexive and transitive:
// over plain tags it follows the tree, Bottom is below everything, Any is
// above everything, unions behave as set-unions, parametric instances are
// invariant in their parameters and tuples are covariant in theirs.
func Subtype(a, b Type) bool {
	if Equal(a, b) {
		return true
	}
	// a union is below b exactly when all its members are; the empty union
	// (Bottom) is below everything vacuously
	if u, ok := a.(*UnionType); ok {
		for _, m := range u.members {
			if !Subtype(m, b) {
				return false
			}
		}
		return true
	}
	if t, ok := b.(*Tag); ok && t.IsRoot() {
		return true
	}
	// a non-union is below a union when it is below some member
	if u, ok := b.(*UnionType); ok {
		for _, m := range u.members {
			if Subtype(a, m) {
				return true
			}
		}
		return false
	}

	switch b := b.(type) {
	case *Tag:
		switch a := a.(type) {
		case *Tag:
			return a.hasAncestor(b.name)
		case *Instance:
			return a.tag == b || a.tag.hasAncestor(b.name)
		case *Singleton:
			return Subtype(a.parent, b)
		}
	case *Instance:
		a, ok := a.(*Instance)
		if !ok || a.tag != b.tag || len(a.params) != len(b.params) {
			return false
		}
		// invariance: parameters must match exactly
		for i, p := range a.params {
			if p.Hash() != b.params[i].Hash() {
				return false
			}
		}
		return true
	case *TupleType:
		a, ok := a.(*TupleType)
		if !ok || len(a.elems) != len(b.elems) {
			return false
		}
		// covariance, element-wise
		for i, e := range a.elems {
			if !Subtype(e, b.elems[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Supertypes returns the chain from t up to Any, starting at t itself.
func Supertypes(t Type) []Type {
	out := []Type{t}
	var tag *Tag
	switch t := t.(type) {
	case *Tag:
		tag = t.parent
	case *Instance:
		tag = t.tag
	case *Singleton:
		tag = t.parent
	default:
		// unions and tuples sit directly below the root
		tag = Any
	}
	for tag != nil {
		out = append(out, tag)
		tag = tag.parent
	}
	return out
}
