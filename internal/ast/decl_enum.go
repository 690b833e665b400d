package ast

import "loom/internal/source"

// EnumVariantKind discriminates which of the four variant forms a
// EnumVariant uses.
type EnumVariantKind uint8

const (
	EnumVariantUnit   EnumVariantKind = iota
	EnumVariantTag                    // Name = expr
	EnumVariantTuple                  // Name(T, U, ...)
	EnumVariantStruct                 // Name { field: T, ... }
)

// EnumVariant's populated fields depend on Kind: Tag for EnumVariantTag,
// TupleTypes for EnumVariantTuple, Fields for EnumVariantStruct; a unit
// variant uses none of them.
type EnumVariant struct {
	Name       source.SymbolID
	Kind       EnumVariantKind
	Tag        ExprID
	TupleTypes []ExprID
	Fields     []StructField
}

// DeclEnumData's Underlying is NoExprID unless the enum declares an
// explicit backing type (`enum Color: u8 { ... }`).
type DeclEnumData struct {
	Name       source.SymbolID
	Generics   []TypeParam
	Underlying ExprID
	Variants   []EnumVariant
	Pub        bool
}

func (d *Decls) NewEnum(span source.Span, data DeclEnumData) DeclID {
	data.Generics = append([]TypeParam(nil), data.Generics...)
	data.Variants = append([]EnumVariant(nil), data.Variants...)
	payload := d.Enums.Allocate(data)
	return d.new(DeclEnum, span, PayloadID(payload))
}

func (d *Decls) Enum(id DeclID) (*DeclEnumData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclEnum {
		return nil, false
	}
	return d.Enums.Get(uint32(decl.Payload)), true
}
