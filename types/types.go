// Package types implements the veld type lattice: nominal type tags arranged
// in a single-rooted tree, union combinators, parametric instances, covariant
// tuples and value singletons, together with the reflexive-transitive subtype
// relation over all of them.
//
// The lattice is queried, never mutated, by the evaluator: tags are declared
// once (most of them by this package's own universe) and are immutable
// afterwards. Values do not live here; see the runtime package for how a
// value derives its tag on demand.
package types

import (
	"fmt"

	set "github.com/hashicorp/go-set/v3"
	"github.com/veld-lang/veld/internal/log"
)

var logger = log.DefaultLogger.With("section", "types")

// TypeParam is a parameter of a parametric type instance: either a Type or a
// constant Const, as in the rank 2 of Array{Float64, 2}.
type TypeParam interface {
	fmt.Stringer
	Hash() uint64
	isTypeParam()
}

// Type is implemented by every type in the lattice.
type Type interface {
	TypeParam
	isType()
}

var (
	_ Type = (*Tag)(nil)
	_ Type = (*UnionType)(nil)
	_ Type = (*Instance)(nil)
	_ Type = (*TupleType)(nil)
	_ Type = (*Singleton)(nil)

	_ TypeParam = Const{}
)

// Equal can be used to compare Type and TypeParam instances for equality.
// Every type hashes its own structure, so equal hashes mean the same type;
// this also makes types usable in a set.HashSet directly.
func Equal[H, HH set.Hasher[uint64]](this H, other HH) bool {
	return this.Hash() == other.Hash()
}
