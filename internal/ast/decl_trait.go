package ast

import "loom/internal/source"

// DeclTraitData's Members are fn declarations (with or without a default
// body); a trait may also declare super-traits it extends.
type DeclTraitData struct {
	Name        source.SymbolID
	Generics    []TypeParam
	SuperTraits []ExprID
	Members     []DeclID
	Pub         bool
}

func (d *Decls) NewTrait(span source.Span, data DeclTraitData) DeclID {
	data.Generics = append([]TypeParam(nil), data.Generics...)
	data.SuperTraits = append([]ExprID(nil), data.SuperTraits...)
	data.Members = append([]DeclID(nil), data.Members...)
	payload := d.Traits.Allocate(data)
	return d.new(DeclTrait, span, PayloadID(payload))
}

func (d *Decls) Trait(id DeclID) (*DeclTraitData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclTrait {
		return nil, false
	}
	return d.Traits.Get(uint32(decl.Payload)), true
}
