package types

// The predeclared universe. Tags are declared top-down so each var can name
// its parent; everything here is immutable after package initialization.
//
// The numeric tower mirrors the usual dynamic-language layout: Bool lives
// under Integer so that booleans participate in arithmetic promotion.
var (
	Any = newRootTag("Any")

	Number = mustTag("Number", Any, TagOpts{Abstract: true})
	Real   = mustTag("Real", Number, TagOpts{Abstract: true})

	AbstractFloat = mustTag("AbstractFloat", Real, TagOpts{Abstract: true})
	Float16       = mustTag("Float16", AbstractFloat, TagOpts{})
	Float32       = mustTag("Float32", AbstractFloat, TagOpts{})
	Float64       = mustTag("Float64", AbstractFloat, TagOpts{})

	Integer = mustTag("Integer", Real, TagOpts{Abstract: true})
	Bool    = mustTag("Bool", Integer, TagOpts{})

	Signed = mustTag("Signed", Integer, TagOpts{Abstract: true})
	Int8   = mustTag("Int8", Signed, TagOpts{})
	Int16  = mustTag("Int16", Signed, TagOpts{})
	Int32  = mustTag("Int32", Signed, TagOpts{})
	Int64  = mustTag("Int64", Signed, TagOpts{})

	Unsigned = mustTag("Unsigned", Integer, TagOpts{Abstract: true})
	UInt8    = mustTag("UInt8", Unsigned, TagOpts{})
	UInt16   = mustTag("UInt16", Unsigned, TagOpts{})
	UInt32   = mustTag("UInt32", Unsigned, TagOpts{})
	UInt64   = mustTag("UInt64", Unsigned, TagOpts{})

	AbstractString = mustTag("AbstractString", Any, TagOpts{Abstract: true})
	String         = mustTag("String", AbstractString, TagOpts{})

	AbstractChar = mustTag("AbstractChar", Any, TagOpts{Abstract: true})
	Char         = mustTag("Char", AbstractChar, TagOpts{})

	Symbol   = mustTag("Symbol", Any, TagOpts{})
	Nothing  = mustTag("Nothing", Any, TagOpts{})
	Function = mustTag("Function", Any, TagOpts{})
	// TypeTag classifies first-class types themselves: typeof(Float64) is Type.
	TypeTag = mustTag("Type", Any, TagOpts{})

	AbstractArray = mustTag("AbstractArray", Any, TagOpts{Abstract: true})
	DenseArray    = mustTag("DenseArray", AbstractArray, TagOpts{Abstract: true})
	Array         = mustTag("Array", DenseArray, TagOpts{Params: []string{"T", "N"}})
)
