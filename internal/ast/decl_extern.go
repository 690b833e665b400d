package ast

import "loom/internal/source"

// DeclExternData's Members are fn/static declarations with no body,
// describing a foreign interface.
type DeclExternData struct {
	Members []DeclID
}

func (d *Decls) NewExtern(span source.Span, members []DeclID) DeclID {
	payload := d.Externs.Allocate(DeclExternData{Members: append([]DeclID(nil), members...)})
	return d.new(DeclExtern, span, PayloadID(payload))
}

func (d *Decls) Extern(id DeclID) (*DeclExternData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclExtern {
		return nil, false
	}
	return d.Externs.Get(uint32(decl.Payload)), true
}
