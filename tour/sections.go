// Package tour is the narrated walk through the veld type system: a linear
// sequence of sections, each a piece of prose and the cells that back it up.
// Sections share one session and run strictly top to bottom; there is no
// dependency graph and no re-execution.
package tour

// Cell is one evaluated source line. WantErr marks cells whose whole point
// is the error they produce; the runner prints the error and moves on.
type Cell struct {
	Source  string
	WantErr bool
}

// Section is a titled piece of prose followed by the cells it talks about.
type Section struct {
	Title string
	Prose string
	Cells []Cell
}

// Sections returns the lessons in presentation order.
func Sections() []Section {
	return []Section{
		{
			Title: "Values and type tags",
			Prose: `Every value carries a type tag: its runtime classification. The tag is
derived from the value on demand, never stored with it. Integer literals
are Int64, float literals are Float64, and types themselves are values
whose tag is Type.`,
			Cells: []Cell{
				{Source: `typeof(1)`},
				{Source: `typeof(1.0)`},
				{Source: `typeof("hello")`},
				{Source: `typeof('a')`},
				{Source: `typeof(:symbol)`},
				{Source: `typeof(Float64)`},
				{Source: `typeof(nothing)`},
			},
		},
		{
			Title: "The subtype tree",
			Prose: `Tags form a single-rooted tree ordered by the subtype relation <:,
written here exactly as it is queried. The relation is reflexive and
transitive, Any sits at the top, and the empty union at the bottom is a
subtype of everything. Abstract tags like Real structure the tree but
classify no value of their own.`,
			Cells: []Cell{
				{Source: `Float64 <: Real`},
				{Source: `Int64 <: Signed`},
				{Source: `Signed <: Integer`},
				{Source: `Int64 <: AbstractFloat`},
				{Source: `Float64 <: Any`},
				{Source: `Float64 <: Float64`},
				{Source: `Union{} <: Float64`},
				{Source: `supertypes(Float64)`},
				{Source: `isa(1.0, Real)`},
				{Source: `isa(1, AbstractFloat)`},
			},
		},
		{
			Title: "Declared variables and conversion",
			Prose: `A plain assignment just binds. A declared assignment, x: Float64 = 1,
converts the value to the declared tag at the assignment site and the
declaration sticks: every later assignment to x re-checks. Assigning a
value the tag cannot represent fails right there, which is the closest
thing to a static check a dynamic system gives you.`,
			Cells: []Cell{
				{Source: `x: Float64 = 1`},
				{Source: `typeof(x)`},
				{Source: `x = 2`},
				{Source: `typeof(x)`},
				{Source: `x = "oops"`, WantErr: true},
				{Source: `convert(Int64, 3.0)`},
				{Source: `convert(Int64, 3.5)`, WantErr: true},
			},
		},
		{
			Title: "Parametric types and invariance",
			Prose: `A parametric tag applied to parameters is a type of its own:
Array{Float64, 2} is the tag of two-dimensional arrays of Float64, the
rank riding along as a constant parameter. Instances are invariant:
Array{Float64, 1} is not a subtype of Array{Real, 1}, even though
Float64 <: Real. The one covariant combinator is Tuple, which models the
argument list of a call.`,
			Cells: []Cell{
				{Source: `Array{Float64, 2}`},
				{Source: `Array{Float64, 1} <: Array{Real, 1}`},
				{Source: `Array{Float64, 1} <: Array{Float64, 1}`},
				{Source: `Array{Float64, 1} <: DenseArray`},
				{Source: `Tuple{Float64} <: Tuple{Real}`},
				{Source: `Tuple{Float64, Int64} <: Tuple{Real, Signed}`},
				{Source: `Tuple{Float64} <: Tuple{Float64, Float64}`},
			},
		},
		{
			Title: "Union types",
			Prose: `Union{A, B} is the set-union of its members. The combinator is
associative, absorbs subsumed members, and its neutral element is the
empty union, the bottom of the lattice. A union of one member is just
that member.`,
			Cells: []Cell{
				{Source: `Union{Int64, Float64}`},
				{Source: `Int64 <: Union{Int64, Float64}`},
				{Source: `Union{Int64, Float64} <: Real`},
				{Source: `Union{Int64, Signed}`},
				{Source: `Union{Float64}`},
				{Source: `Union{}`},
				{Source: `Union{Int64, Union{Float64, Char}}`},
				{Source: `Union{Int64, Union{}} == Union{Int64}`},
			},
		},
		{
			Title: "Singleton types",
			Prose: `A singleton type is inhabited by exactly one constant; its parent in
the tree is the tag of that constant. Singletons slot into the same
subtype relation as everything else.`,
			Cells: []Cell{
				{Source: `singleton(1)`},
				{Source: `singleton(1) <: Int64`},
				{Source: `singleton(1) <: Float64`},
				{Source: `singleton("a") <: AbstractString`},
				{Source: `singleton(1) <: Union{Int64, Float64}`},
			},
		},
		{
			Title: "Type stability",
			Prose: `Two clamping functions, numerically identical for the inputs that
matter, differ in one character: the zero they return for negative
input. unstable returns the integer constant 0, so its return tag
depends on the input's value. stable builds the zero in the input's own
tag, so the return tag is a function of the input tag alone. The probe
below shows the divergence, the aggregation shows they agree
numerically, and the timing shows what the divergence costs under
repeated dispatch.`,
			Cells: []Cell{
				{Source: `unstable(x) = x < 0 ? 0 : x`},
				{Source: `stable(x) = x < 0 ? zero(x) : x`},
				{Source: `unstable(1.0)`},
				{Source: `unstable(-1.0)`},
				{Source: `typeof(unstable(-1.0))`},
				{Source: `stable(-1.0)`},
				{Source: `typeof(stable(-1.0))`},
				{Source: `returntags(unstable, 1.0, -1.0)`},
				{Source: `returntags(stable, 1.0, -1.0)`},
				{Source: `sumpow(stable, 1.0, 10.0)`},
				{Source: `sumpow(unstable, 1.0, 10.0)`},
				{Source: `sumpow(stable, 1.0, 10.0) == sumpow(unstable, 1.0, 10.0)`},
				{Source: `bench(stable, -1.0, 100000)`},
				{Source: `bench(unstable, -1.0, 100000)`},
			},
		},
	}
}
