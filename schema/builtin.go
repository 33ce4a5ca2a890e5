package schema

// Builtin is one of the fixed scalar types the schema language recognizes
// without a definition.
type Builtin int

const (
	BuiltinString Builtin = iota
	BuiltinBoolean
	BuiltinU8
	BuiltinU16
	BuiltinU32
	BuiltinU64
	BuiltinU128
	BuiltinI8
	BuiltinI16
	BuiltinI32
	BuiltinI64
	BuiltinI128
	BuiltinF32
	BuiltinF64
)

func (b Builtin) String() string {
	switch b {
	case BuiltinString:
		return "String"
	case BuiltinBoolean:
		return "Boolean"
	case BuiltinU8:
		return "U8"
	case BuiltinU16:
		return "U16"
	case BuiltinU32:
		return "U32"
	case BuiltinU64:
		return "U64"
	case BuiltinU128:
		return "U128"
	case BuiltinI8:
		return "I8"
	case BuiltinI16:
		return "I16"
	case BuiltinI32:
		return "I32"
	case BuiltinI64:
		return "I64"
	case BuiltinI128:
		return "I128"
	case BuiltinF32:
		return "F32"
	case BuiltinF64:
		return "F64"
	default:
		return "Builtin(?)"
	}
}

// builtinsByName is the fixed name -> Builtin table consulted first during
// name resolution, before any local or imported definition.
var builtinsByName = map[string]Builtin{
	"String":  BuiltinString,
	"Boolean": BuiltinBoolean,
	"U8":      BuiltinU8,
	"U16":     BuiltinU16,
	"U32":     BuiltinU32,
	"U64":     BuiltinU64,
	"U128":    BuiltinU128,
	"I8":      BuiltinI8,
	"I16":     BuiltinI16,
	"I32":     BuiltinI32,
	"I64":     BuiltinI64,
	"I128":    BuiltinI128,
	"F32":     BuiltinF32,
	"F64":     BuiltinF64,
}

// LookupBuiltin returns the Builtin named by text, if any.
func LookupBuiltin(text string) (Builtin, bool) {
	b, ok := builtinsByName[text]
	return b, ok
}
