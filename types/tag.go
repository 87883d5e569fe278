package types

import (
	"fmt"
	"hash/fnv"
	"slices"
	"strings"

	set "github.com/hashicorp/go-set/v3"
)

// Tag is a nominal node in the type tree. Every tag except the root has
// exactly one parent, so the subtype relation restricted to tags is a tree.
// A tag is either abstract (may have children, has no direct values) or
// concrete (a leaf; values carry it as their runtime classification).
type Tag struct {
	name     string
	parent   *Tag
	abstract bool
	// params holds the formal type parameter names of a parametric tag,
	// such as [T N] for Array{T, N}. Empty for plain tags.
	params []string

	// ancestors are the names of all strict ancestors up to the root.
	// Precomputed at declaration so subtype queries are a set lookup.
	ancestors *set.Set[string]
	children  []*Tag
}

func (t *Tag) Name() string   { return t.name }
func (t *Tag) Parent() *Tag   { return t.parent }
func (t *Tag) Abstract() bool { return t.abstract }

// Arity is the number of formal type parameters; zero for plain tags.
func (t *Tag) Arity() int { return len(t.params) }

// IsRoot reports whether t is the top of the tree (the Any tag).
func (t *Tag) IsRoot() bool { return t.parent == nil }

func (t *Tag) String() string {
	if len(t.params) == 0 {
		return t.name
	}
	return t.name + "{" + strings.Join(t.params, ", ") + "}"
}

func (t *Tag) Hash() uint64 {
	const prime uint64 = 1299709
	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte(t.name))
	return prime ^ hasher.Sum64()
}

func (t *Tag) isType()      {}
func (t *Tag) isTypeParam() {}

// hasAncestor reports whether name is a strict ancestor of t.
func (t *Tag) hasAncestor(name string) bool {
	return t.ancestors.Contains(name)
}

// Children returns the direct subtypes of t, sorted by name.
func (t *Tag) Children() []*Tag {
	out := slices.Clone(t.children)
	slices.SortFunc(out, func(a, b *Tag) int { return strings.Compare(a.name, b.name) })
	return out
}

// registry holds every declared tag by name. Declaration happens in this
// package's init (the predeclared universe) and occasionally in tests;
// evaluation never declares tags, matching the read-only hierarchy the
// language model assumes.
var registry = map[string]*Tag{}

// TagOpts configures NewTag.
type TagOpts struct {
	// Abstract tags may be given children and cannot classify a value.
	Abstract bool
	// Params are the formal type parameter names of a parametric tag.
	Params []string
}

// NewTag declares a tag under parent and registers it by name.
// Only abstract tags accept children: concrete tags are leaves.
func NewTag(name string, parent *Tag, opts TagOpts) (*Tag, error) {
	if name == "" {
		return nil, fmt.Errorf("tag name must not be empty")
	}
	if _, taken := registry[name]; taken {
		return nil, fmt.Errorf("tag %s is already declared", name)
	}
	if parent == nil {
		return nil, fmt.Errorf("tag %s needs a parent: only the root has none", name)
	}
	if !parent.abstract {
		return nil, fmt.Errorf("cannot declare %s under concrete tag %s", name, parent.name)
	}
	ancestors := set.From(parent.ancestors.Slice())
	ancestors.Insert(parent.name)
	t := &Tag{
		name:      name,
		parent:    parent,
		abstract:  opts.Abstract,
		params:    slices.Clone(opts.Params),
		ancestors: ancestors,
	}
	parent.children = append(parent.children, t)
	registry[name] = t
	logger.Debug("declared tag", "name", name, "parent", parent.name, "abstract", opts.Abstract)
	return t, nil
}

// mustTag is NewTag for the predeclared universe, where failure is a bug.
func mustTag(name string, parent *Tag, opts TagOpts) *Tag {
	t, err := NewTag(name, parent, opts)
	if err != nil {
		panic(err)
	}
	return t
}

// newRootTag creates the single parentless tag. Called once by init.
func newRootTag(name string) *Tag {
	t := &Tag{
		name:      name,
		abstract:  true,
		ancestors: set.New[string](0),
	}
	registry[name] = t
	return t
}

// Lookup finds a declared tag by name.
func Lookup(name string) (*Tag, bool) {
	t, ok := registry[name]
	return t, ok
}

// All returns every declared tag, sorted by name.
func All() []*Tag {
	out := make([]*Tag, 0, len(registry))
	for _, t := range registry {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b *Tag) int { return strings.Compare(a.name, b.name) })
	return out
}
