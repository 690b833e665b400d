package ast

import "loom/internal/source"

// GlobalVarKind distinguishes const, static, and static mut bindings.
type GlobalVarKind uint8

const (
	GlobalConst GlobalVarKind = iota
	GlobalStatic
	GlobalStaticMut
)

// DeclGlobalVarData's Type is NoExprID when the binding has no annotation.
type DeclGlobalVarData struct {
	Name  source.SymbolID
	Kind  GlobalVarKind
	Type  ExprID
	Value ExprID
	Pub   bool
}

func (d *Decls) NewGlobalVar(span source.Span, data DeclGlobalVarData) DeclID {
	payload := d.GlobalVars.Allocate(data)
	return d.new(DeclGlobalVar, span, PayloadID(payload))
}

func (d *Decls) GlobalVar(id DeclID) (*DeclGlobalVarData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclGlobalVar {
		return nil, false
	}
	return d.GlobalVars.Get(uint32(decl.Payload)), true
}
