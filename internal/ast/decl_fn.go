package ast

import "loom/internal/source"

// FnParam is one function parameter. IsSelf marks the receiver parameter
// (self / &self / &mut self); SelfRef and SelfMut refine it and Type is
// NoExprID in that case. BindingCast marks a `name: as Type` parameter,
// where the callee performs an implicit cast rather than requiring an exact
// type match.
type FnParam struct {
	Name        source.SymbolID
	Type        ExprID
	Default     ExprID
	BindingCast bool
	IsSelf      bool
	SelfRef     bool
	SelfMut     bool
}

// DeclFnData's Body is NoExprID for a signature with no body (a trait
// method requirement or an extern declaration). Variadic marks a trailing
// `...` parameter, legal only inside an extern block.
type DeclFnData struct {
	Name       source.SymbolID
	Generics   []TypeParam
	Params     []FnParam
	ReturnType ExprID
	Body       ExprID
	Pub        bool
	Variadic   bool
}

func (d *Decls) NewFn(span source.Span, data DeclFnData) DeclID {
	data.Generics = append([]TypeParam(nil), data.Generics...)
	data.Params = append([]FnParam(nil), data.Params...)
	payload := d.Fns.Allocate(data)
	return d.new(DeclFn, span, PayloadID(payload))
}

func (d *Decls) Fn(id DeclID) (*DeclFnData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclFn {
		return nil, false
	}
	return d.Fns.Get(uint32(decl.Payload)), true
}
