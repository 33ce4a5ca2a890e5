package schema

// TypeReference is the resolved form of anything a field, constructor, or
// untagged-union value may name: a built-in, an open generic parameter, a
// same-module or imported definition, a generic application, or (only
// transiently, during parsing) a self-recursive placeholder.
type TypeReference interface {
	typeReference()
}

// BuiltinReference names one of the fixed scalar types.
type BuiltinReference struct {
	Builtin Builtin
}

func (BuiltinReference) typeReference() {}

// OpenReference names a generic parameter in scope.
type OpenReference struct {
	Name string
}

func (OpenReference) typeReference() {}

// DefinitionReference names a definition in the same module. Index is the
// position of the target in the owning Module's Definitions slice — a
// lightweight handle rather than a pointer, so that a definition can
// reference itself (directly or through Loose) without a cyclic ownership
// graph.
type DefinitionReference struct {
	Name  string
	Index int
}

func (DefinitionReference) typeReference() {}

// ExternalRef identifies a definition belonging to another module by name
// and by its index into that module's Definitions slice.
type ExternalRef struct {
	Module string
	Name   string
	Index  int
}

// ImportedDefinitionReference names a definition in another module, carrying
// the import alias actually used at the reference site.
type ImportedDefinitionReference struct {
	ImportName string
	Definition ExternalRef
}

func (ImportedDefinitionReference) typeReference() {}

// AppliedNameReference is a concrete application of a generic type to type
// arguments.
type AppliedNameReference struct {
	Reference         TypeReference
	OpenNameArguments []Type
}

func (AppliedNameReference) typeReference() {}

// LooseReference is a transient, unresolved placeholder emitted by the
// parser for a self-recursive reference (the name of the definition
// currently being parsed). OpenNames records the open-name arity of the
// enclosing definition at the point the reference was created, so that an
// AppliedNameReference wrapping a Loose target can still be arity-checked
// before the Loose reference is patched. Every Loose reference must be
// rewritten to a DefinitionReference by the end of the enclosing
// definition's parse; none should survive into a finished Module.
type LooseReference struct {
	Name      string
	OpenNames []string
}

func (LooseReference) typeReference() {}
