package parser_test

import (
	"testing"

	"github.com/GoNZooo/gotyno/internal/parser"
	"github.com/GoNZooo/gotyno/internal/testutil"
	"github.com/GoNZooo/gotyno/internal/types"
	"github.com/GoNZooo/gotyno/schema"
)

func parseModule(t *testing.T, source string) (*schema.Module, error) {
	t.Helper()
	p := parser.New("test.gotyno", []byte(source), nil, types.Logger{})
	return p.ParseModule("test")
}

func mustParse(t *testing.T, source string) *schema.Module {
	t.Helper()
	mod, err := parseModule(t, source)
	testutil.NoError(t, err, "parsing %q", source)
	return mod
}

func TestParsePlainStructure(t *testing.T) {
	mod := mustParse(t, "struct Person {\n    name: String\n    age: U8\n}\n")
	testutil.Len(t, mod.Definitions, 1)
	s, ok := mod.Definitions[0].(*schema.PlainStructure)
	testutil.True(t, ok, "expected *PlainStructure, got %T", mod.Definitions[0])
	testutil.Equal(t, "Person", s.Name.Value)
	testutil.Len(t, s.Fields, 2)
	testutil.Equal(t, "name", s.Fields[0].Name)
	ref, ok := s.Fields[0].Type.(schema.ReferenceType)
	testutil.True(t, ok, "expected ReferenceType")
	builtin, ok := ref.Reference.(schema.BuiltinReference)
	testutil.True(t, ok, "expected BuiltinReference")
	testutil.Equal(t, schema.BuiltinString, builtin.Builtin)
}

func TestParseGenericStructure(t *testing.T) {
	mod := mustParse(t, "struct Box<T> {\n    value: T\n}\n")
	s, ok := mod.Definitions[0].(*schema.GenericStructure)
	testutil.True(t, ok, "expected *GenericStructure, got %T", mod.Definitions[0])
	testutil.SliceEqual(t, []string{"T"}, s.OpenNames)
	ref := s.Fields[0].Type.(schema.ReferenceType)
	_, ok = ref.Reference.(schema.OpenReference)
	testutil.True(t, ok, "expected OpenReference for the open parameter")
}

func TestParsePlainUnion(t *testing.T) {
	mod := mustParse(t, "union Shape {\n    circle: F64\n    square\n}\n")
	u, ok := mod.Definitions[0].(*schema.PlainUnion)
	testutil.True(t, ok, "expected *PlainUnion, got %T", mod.Definitions[0])
	testutil.Equal(t, "type", u.TagField)
	testutil.Len(t, u.Constructors, 2)
	testutil.Equal(t, "circle", u.Constructors[0].Tag)
	testutil.Equal(t, "square", u.Constructors[1].Tag)
	_, nullary := u.Constructors[1].Parameter.(schema.EmptyType)
	testutil.True(t, nullary, "expected nullary constructor to carry EmptyType")
}

func TestParseUnionWithTagOption(t *testing.T) {
	mod := mustParse(t, "union(tag = kind) Shape {\n    circle: F64\n}\n")
	u := mod.Definitions[0].(*schema.PlainUnion)
	testutil.Equal(t, "kind", u.TagField)
}

func TestParseEmbeddedUnion(t *testing.T) {
	source := "struct Circle {\n    radius: F64\n}\n" +
		"union(embedded) Shape {\n    circle: Circle\n    point\n}\n"
	mod := mustParse(t, source)
	testutil.Len(t, mod.Definitions, 2)
	u, ok := mod.Definitions[1].(*schema.EmbeddedUnion)
	testutil.True(t, ok, "expected *EmbeddedUnion, got %T", mod.Definitions[1])
	testutil.NotNil(t, u.Constructors[0].Parameter)
	testutil.Equal(t, "Circle", u.Constructors[0].Parameter.Name.Value)
	testutil.Nil(t, u.Constructors[1].Parameter)
}

func TestEmbeddedUnionNonRecordPayloadIsInvalid(t *testing.T) {
	_, err := parseModule(t, "union(embedded) Bad {\n    value: String\n}\n")
	testutil.Error(t, err)
	pe, ok := err.(*schema.ParseError)
	testutil.True(t, ok, "expected *schema.ParseError, got %T", err)
	testutil.Equal(t, schema.ErrInvalidPayload, pe.Kind)
}

func TestParseEnum(t *testing.T) {
	mod := mustParse(t, "enum Color {\n    red = \"red\"\n    blue = \"blue\"\n}\n")
	e, ok := mod.Definitions[0].(*schema.Enumeration)
	testutil.True(t, ok, "expected *Enumeration, got %T", mod.Definitions[0])
	testutil.Len(t, e.Fields, 2)
	testutil.Equal(t, "red", e.Fields[0].Tag)
	sv, ok := e.Fields[0].Value.(schema.StringEnumValue)
	testutil.True(t, ok, "expected StringEnumValue")
	testutil.Equal(t, "red", sv.Value)
}

func TestParseEnumWithUnsignedValue(t *testing.T) {
	mod := mustParse(t, "enum Level {\n    low = 0\n    high = 1\n}\n")
	e := mod.Definitions[0].(*schema.Enumeration)
	uv, ok := e.Fields[0].Value.(schema.UnsignedEnumValue)
	testutil.True(t, ok, "expected UnsignedEnumValue")
	testutil.Equal(t, uint64(0), uv.Value)
}

func TestEmptyEnumBodyIsRejected(t *testing.T) {
	_, err := parseModule(t, "enum Empty {\n}\n")
	testutil.Error(t, err)
	pe, ok := err.(*schema.ParseError)
	testutil.True(t, ok, "expected *schema.ParseError, got %T", err)
	testutil.Equal(t, schema.ErrExpect, pe.Kind)
}

func TestParseUntaggedUnion(t *testing.T) {
	mod := mustParse(t, "untagged union StringOrU8 {\n    String\n    U8\n}\n")
	u, ok := mod.Definitions[0].(*schema.UntaggedUnion)
	testutil.True(t, ok, "expected *UntaggedUnion, got %T", mod.Definitions[0])
	testutil.Len(t, u.Values, 2)
}

func TestEmptyUntaggedUnionIsRejected(t *testing.T) {
	_, err := parseModule(t, "untagged union Empty {\n}\n")
	testutil.Error(t, err)
	pe, ok := err.(*schema.ParseError)
	testutil.True(t, ok, "expected *schema.ParseError, got %T", err)
	testutil.Equal(t, schema.ErrExpect, pe.Kind)
}

func TestSelfRecursiveReferenceIsPatched(t *testing.T) {
	mod := mustParse(t, "struct List {\n    next: *List\n}\n")
	s := mod.Definitions[0].(*schema.PlainStructure)
	ptr, ok := s.Fields[0].Type.(schema.PointerType)
	testutil.True(t, ok, "expected PointerType")
	ref, ok := ptr.Inner.(schema.ReferenceType)
	testutil.True(t, ok, "expected ReferenceType")
	defRef, ok := ref.Reference.(schema.DefinitionReference)
	testutil.True(t, ok, "expected self-reference to patch to DefinitionReference, got %T", ref.Reference)
	testutil.Equal(t, "List", defRef.Name)
	testutil.Equal(t, 0, defRef.Index)
}

func TestDuplicateDefinitionIsRejected(t *testing.T) {
	_, err := parseModule(t, "struct Dup {\n    a: String\n}\nstruct Dup {\n    b: String\n}\n")
	testutil.Error(t, err)
	pe, ok := err.(*schema.ParseError)
	testutil.True(t, ok, "expected *schema.ParseError, got %T", err)
	testutil.Equal(t, schema.ErrDuplicateDefinition, pe.Kind)
}

func TestUnknownReferenceIsRejected(t *testing.T) {
	_, err := parseModule(t, "struct Thing {\n    other: Nope\n}\n")
	testutil.Error(t, err)
	pe, ok := err.(*schema.ParseError)
	testutil.True(t, ok, "expected *schema.ParseError, got %T", err)
	testutil.Equal(t, schema.ErrUnknownReference, pe.Kind)
	testutil.Equal(t, "Nope", pe.Name)
}

func TestAppliedNameArityMismatchIsRejected(t *testing.T) {
	source := "struct Box<T> {\n    value: T\n}\n" +
		"struct Bad {\n    b: Box<String, U8>\n}\n"
	_, err := parseModule(t, source)
	testutil.Error(t, err)
	pe, ok := err.(*schema.ParseError)
	testutil.True(t, ok, "expected *schema.ParseError, got %T", err)
	testutil.Equal(t, schema.ErrAppliedNameCount, pe.Kind)
	testutil.Equal(t, 1, pe.ExpectedArity)
	testutil.Equal(t, 2, pe.ActualArity)
}

func TestArrayAndSliceTypes(t *testing.T) {
	mod := mustParse(t, "struct Thing {\n    fixed: [4]U8\n    variable: []U8\n}\n")
	s := mod.Definitions[0].(*schema.PlainStructure)
	arr, ok := s.Fields[0].Type.(schema.ArrayType)
	testutil.True(t, ok, "expected ArrayType")
	testutil.Equal(t, uint64(4), arr.Size)
	_, ok = s.Fields[1].Type.(schema.SliceType)
	testutil.True(t, ok, "expected SliceType")
}

func TestOptionalType(t *testing.T) {
	mod := mustParse(t, "struct Thing {\n    maybe: ?String\n}\n")
	s := mod.Definitions[0].(*schema.PlainStructure)
	_, ok := s.Fields[0].Type.(schema.OptionalType)
	testutil.True(t, ok, "expected OptionalType")
}

func TestImportWithoutSiblingIsUnknownModule(t *testing.T) {
	_, err := parseModule(t, "import other\n")
	testutil.Error(t, err)
	pe, ok := err.(*schema.ParseError)
	testutil.True(t, ok, "expected *schema.ParseError, got %T", err)
	testutil.Equal(t, schema.ErrUnknownModule, pe.Kind)
	testutil.Equal(t, "other", pe.Name)
}

func TestQualifiedReferenceAcrossModules(t *testing.T) {
	siblingSrc := "struct Point {\n    x: F64\n    y: F64\n}\n"
	siblingParser := parser.New("other.gotyno", []byte(siblingSrc), nil, types.Logger{})
	sibling, err := siblingParser.ParseModule("other")
	testutil.NoError(t, err)

	siblings := map[string]*schema.Module{"other": sibling}
	source := "import other\nstruct Line {\n    start: other.Point\n}\n"
	p := parser.New("line.gotyno", []byte(source), siblings, types.Logger{})
	mod, err := p.ParseModule("line")
	testutil.NoError(t, err)

	s := mod.Definitions[1].(*schema.PlainStructure)
	ref := s.Fields[0].Type.(schema.ReferenceType)
	imported, ok := ref.Reference.(schema.ImportedDefinitionReference)
	testutil.True(t, ok, "expected ImportedDefinitionReference, got %T", ref.Reference)
	testutil.Equal(t, "other", imported.ImportName)
	testutil.Equal(t, "Point", imported.Definition.Name)
	testutil.Equal(t, "other", imported.Definition.Module)
}

func TestImportWithAlias(t *testing.T) {
	siblingSrc := "struct Point {\n    x: F64\n}\n"
	siblingParser := parser.New("geometry.gotyno", []byte(siblingSrc), nil, types.Logger{})
	sibling, err := siblingParser.ParseModule("geometry")
	testutil.NoError(t, err)

	siblings := map[string]*schema.Module{"geometry": sibling}
	source := "import geometry = geo\nstruct Line {\n    start: geo.Point\n}\n"
	p := parser.New("line.gotyno", []byte(source), siblings, types.Logger{})
	mod, err := p.ParseModule("line")
	testutil.NoError(t, err)
	testutil.Equal(t, "geometry", mod.Imports["geo"])
}
