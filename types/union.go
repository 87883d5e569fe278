package types

import (
	"hash/fnv"
	"sort"
	"strings"

	xset "github.com/xtgo/set"
)

// UnionType is the set-union of its member types. Unions only ever exist in
// normal form: members are never themselves unions, no member is a subtype of
// another member, and members are kept in a canonical order. Construct them
// through Union, which normalizes.
type UnionType struct {
	members []Type
}

// Bottom is the canonical empty union: the type with no values, subtype of
// every type, and the neutral element of Union.
var Bottom = &UnionType{}

// Union builds the normalized union of members:
//
//	Union()     == Bottom
//	Union(T)    == T
//	Union(T, U) absorbs T when T <: U
//
// Nested unions are flattened first, so Union is associative by construction.
func Union(members ...Type) Type {
	var flat []Type
	var walk func(ts []Type)
	walk = func(ts []Type) {
		for _, t := range ts {
			if u, ok := t.(*UnionType); ok {
				walk(u.members)
				continue
			}
			flat = append(flat, t)
		}
	}
	walk(members)

	sort.Sort(byCanon(flat))
	flat = flat[:xset.Uniq(byCanon(flat))]

	// drop members subsumed by another member; after dedupe the relation is
	// antisymmetric over what is left
	kept := flat[:0]
	for i, t := range flat {
		subsumed := false
		for j, other := range flat {
			if i != j && Subtype(t, other) {
				subsumed = true
				break
			}
		}
		if !subsumed {
			kept = append(kept, t)
		}
	}

	switch len(kept) {
	case 0:
		return Bottom
	case 1:
		return kept[0]
	default:
		return &UnionType{members: kept}
	}
}

// byCanon orders types by their canonical rendering so that normalized
// unions of the same members print and hash equal regardless of the order
// they were written in.
type byCanon []Type

func (s byCanon) Len() int           { return len(s) }
func (s byCanon) Less(i, j int) bool { return s[i].String() < s[j].String() }
func (s byCanon) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// Members returns the member types in canonical order; empty for Bottom.
func (u *UnionType) Members() []Type {
	return u.members
}

func (u *UnionType) String() string {
	parts := make([]string, len(u.members))
	for i, m := range u.members {
		parts[i] = m.String()
	}
	return "Union{" + strings.Join(parts, ", ") + "}"
}

func (u *UnionType) Hash() uint64 {
	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte(u.String()))
	return hasher.Sum64()
}

func (u *UnionType) isType()      {}
func (u *UnionType) isTypeParam() {}

func isBottom(t Type) bool {
	u, ok := t.(*UnionType)
	return ok && len(u.members) == 0
}
