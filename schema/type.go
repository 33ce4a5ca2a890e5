package schema

// Type is the recursive sum over everything a field, constructor parameter,
// or nested type argument may be.
type Type interface {
	typeNode()
}

// EmptyType is the nullary payload marker for sum-type constructors without
// arguments.
type EmptyType struct{}

func (EmptyType) typeNode() {}

// StringType is a field typed as an exact string literal, used for
// discriminator tags.
type StringType struct {
	Literal string
}

func (StringType) typeNode() {}

// ReferenceType wraps any named thing: built-in, open parameter, local,
// imported, or applied.
type ReferenceType struct {
	Reference TypeReference
}

func (ReferenceType) typeNode() {}

// ArrayType is a fixed-size array of Element.
type ArrayType struct {
	Size    uint64
	Element Type
}

func (ArrayType) typeNode() {}

// SliceType is a variable-length slice of Element.
type SliceType struct {
	Element Type
}

func (SliceType) typeNode() {}

// PointerType is a single indirection over Inner.
type PointerType struct {
	Inner Type
}

func (PointerType) typeNode() {}

// OptionalType marks Inner as possibly absent.
type OptionalType struct {
	Inner Type
}

func (OptionalType) typeNode() {}

// ReferenceAsType wraps a TypeReference produced by the Ref grammar
// production into the Type it occupies (array/slice element, pointer/
// optional inner, or a bare field type).
func ReferenceAsType(ref TypeReference) Type {
	return ReferenceType{Reference: ref}
}
