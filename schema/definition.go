package schema

// Definition is the closed sum of top-level, named entries in a module.
type Definition interface {
	DefinitionName() DefinitionName
	definition()
}

// Field is a single record member.
type Field struct {
	Name string
	Type Type
}

// PlainStructure is a non-generic record type.
type PlainStructure struct {
	Name   DefinitionName
	Fields []Field
}

func (s *PlainStructure) DefinitionName() DefinitionName { return s.Name }
func (*PlainStructure) definition()                      {}

// GenericStructure is a record type parameterized by one or more open
// names.
type GenericStructure struct {
	Name      DefinitionName
	OpenNames []string
	Fields    []Field
}

func (s *GenericStructure) DefinitionName() DefinitionName { return s.Name }
func (*GenericStructure) definition()                      {}

// Constructor is a single tagged-sum variant. Parameter is EmptyType{} for
// nullary constructors.
type Constructor struct {
	Tag       string
	Parameter Type
}

// PlainUnion is a non-generic tagged sum.
type PlainUnion struct {
	Name         DefinitionName
	TagField     string
	Constructors []Constructor
}

func (u *PlainUnion) DefinitionName() DefinitionName { return u.Name }
func (*PlainUnion) definition()                      {}

// GenericUnion is a tagged sum parameterized by one or more open names.
type GenericUnion struct {
	Name         DefinitionName
	OpenNames    []string
	TagField     string
	Constructors []Constructor
}

func (u *GenericUnion) DefinitionName() DefinitionName { return u.Name }
func (*GenericUnion) definition()                      {}

// EmbeddedConstructor is a tagged-sum variant whose tag is destined to be
// inlined into the fields of its payload record at codegen time. Parameter
// is nil for nullary constructors; otherwise it names the plain record the
// constructor's payload resolved to.
type EmbeddedConstructor struct {
	Tag       string
	Parameter *PlainStructure
}

// EmbeddedUnion is a tagged sum whose discriminator field is inlined into
// the payload record rather than wrapping it.
type EmbeddedUnion struct {
	Name         DefinitionName
	TagField     string
	Constructors []EmbeddedConstructor
}

func (u *EmbeddedUnion) DefinitionName() DefinitionName { return u.Name }
func (*EmbeddedUnion) definition()                      {}

// EnumValue is the value half of an enumeration's (tag, value) pair.
type EnumValue interface {
	enumValue()
}

// StringEnumValue is a string-literal enumeration value.
type StringEnumValue struct {
	Value string
}

func (StringEnumValue) enumValue() {}

// UnsignedEnumValue is an unsigned-integer enumeration value.
type UnsignedEnumValue struct {
	Value uint64
}

func (UnsignedEnumValue) enumValue() {}

// EnumField is a single (tag, value) pair in an Enumeration.
type EnumField struct {
	Tag   string
	Value EnumValue
}

// Enumeration is a closed set of (tag, value) pairs.
type Enumeration struct {
	Name   DefinitionName
	Fields []EnumField
}

func (e *Enumeration) DefinitionName() DefinitionName { return e.Name }
func (*Enumeration) definition()                      {}

// UntaggedUnion is a sum over existing named types with no discriminator.
type UntaggedUnion struct {
	Name   DefinitionName
	Values []TypeReference
}

func (u *UntaggedUnion) DefinitionName() DefinitionName { return u.Name }
func (*UntaggedUnion) definition()                      {}

// Import is a single `import NAME` or `import NAME = ALIAS` declaration.
// Alias defaults to Name when no explicit alias is given, and is what this
// Definition contributes as its own name within the module's namespace (so
// that a second `import` colliding on the same alias is caught by the same
// duplicate-definition check as every other Definition kind).
type Import struct {
	Name  DefinitionName
	Alias DefinitionName
}

func (i *Import) DefinitionName() DefinitionName { return i.Alias }
func (*Import) definition()                      {}
