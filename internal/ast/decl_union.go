package ast

import "loom/internal/source"

// DeclUnionData describes a set of overlapping fields sharing the same
// storage; member layout follows the same StructField shape as a struct.
type DeclUnionData struct {
	Name     source.SymbolID
	Generics []TypeParam
	Fields   []StructField
	Pub      bool
}

func (d *Decls) NewUnion(span source.Span, data DeclUnionData) DeclID {
	data.Generics = append([]TypeParam(nil), data.Generics...)
	data.Fields = append([]StructField(nil), data.Fields...)
	payload := d.Unions.Allocate(data)
	return d.new(DeclUnion, span, PayloadID(payload))
}

func (d *Decls) Union(id DeclID) (*DeclUnionData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclUnion {
		return nil, false
	}
	return d.Unions.Get(uint32(decl.Payload)), true
}
