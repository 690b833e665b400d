package ast

import "loom/internal/source"

type DeclTypeAliasData struct {
	Name     source.SymbolID
	Generics []TypeParam
	Target   ExprID
	Pub      bool
}

func (d *Decls) NewTypeAlias(span source.Span, data DeclTypeAliasData) DeclID {
	data.Generics = append([]TypeParam(nil), data.Generics...)
	payload := d.TypeAlises.Allocate(data)
	return d.new(DeclTypeAlias, span, PayloadID(payload))
}

func (d *Decls) TypeAlias(id DeclID) (*DeclTypeAliasData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclTypeAlias {
		return nil, false
	}
	return d.TypeAlises.Get(uint32(decl.Payload)), true
}
