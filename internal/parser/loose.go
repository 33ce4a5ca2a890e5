package parser

import "github.com/GoNZooo/gotyno/schema"

// patchLooseType rewrites every LooseReference within t whose Name matches
// name to a DefinitionReference at index: a single sweep over each
// just-closed definition, rewriting Loose references whose name equals the
// definition being closed. Every LooseReference created by resolveBareName
// has a name equal to the enclosing definition's name by construction, so
// this always finds its target.
func patchLooseType(t schema.Type, name string, index int) schema.Type {
	switch v := t.(type) {
	case schema.ReferenceType:
		return schema.ReferenceType{Reference: patchLooseRef(v.Reference, name, index)}
	case schema.ArrayType:
		return schema.ArrayType{Size: v.Size, Element: patchLooseType(v.Element, name, index)}
	case schema.SliceType:
		return schema.SliceType{Element: patchLooseType(v.Element, name, index)}
	case schema.PointerType:
		return schema.PointerType{Inner: patchLooseType(v.Inner, name, index)}
	case schema.OptionalType:
		return schema.OptionalType{Inner: patchLooseType(v.Inner, name, index)}
	default:
		return t
	}
}

func patchLooseRef(r schema.TypeReference, name string, index int) schema.TypeReference {
	switch v := r.(type) {
	case schema.LooseReference:
		if v.Name == name {
			return schema.DefinitionReference{Name: name, Index: index}
		}
		return v
	case schema.AppliedNameReference:
		args := make([]schema.Type, len(v.OpenNameArguments))
		for i, a := range v.OpenNameArguments {
			args[i] = patchLooseType(a, name, index)
		}
		return schema.AppliedNameReference{
			Reference:         patchLooseRef(v.Reference, name, index),
			OpenNameArguments: args,
		}
	default:
		return r
	}
}

// patchLooseFields patches every field's Type in place.
func patchLooseFields(fields []schema.Field, name string, index int) {
	for i := range fields {
		fields[i].Type = patchLooseType(fields[i].Type, name, index)
	}
}

// patchLooseConstructors patches every constructor's Parameter in place.
func patchLooseConstructors(ctors []schema.Constructor, name string, index int) {
	for i := range ctors {
		ctors[i].Parameter = patchLooseType(ctors[i].Parameter, name, index)
	}
}

// patchLooseRefs patches a slice of bare TypeReferences (untagged union
// values) in place.
func patchLooseRefs(refs []schema.TypeReference, name string, index int) {
	for i := range refs {
		refs[i] = patchLooseRef(refs[i], name, index)
	}
}
