package ast

import "loom/internal/source"

// StructField is one field of a struct, enum struct-like variant, or union.
type StructField struct {
	Name    source.SymbolID
	Type    ExprID
	Default ExprID
	Pub     bool
}

// DeclStructData's Base is NoExprID when the struct declares no base type.
// Nested holds declarations written inside the struct body alongside its
// fields (nested fn, const, struct, enum, and so on).
type DeclStructData struct {
	Name     source.SymbolID
	Generics []TypeParam
	Base     ExprID
	Fields   []StructField
	Nested   []DeclID
	Pub      bool
}

func (d *Decls) NewStruct(span source.Span, data DeclStructData) DeclID {
	data.Generics = append([]TypeParam(nil), data.Generics...)
	data.Fields = append([]StructField(nil), data.Fields...)
	data.Nested = append([]DeclID(nil), data.Nested...)
	payload := d.Structs.Allocate(data)
	return d.new(DeclStruct, span, PayloadID(payload))
}

func (d *Decls) Struct(id DeclID) (*DeclStructData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclStruct {
		return nil, false
	}
	return d.Structs.Get(uint32(decl.Payload)), true
}
