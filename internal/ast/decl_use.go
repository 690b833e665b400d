package ast

import "loom/internal/source"

// UseGroupItem is one member of a `use p.{a, b as c}` group. Alias is
// NoSymbolID when the member has no `as` rename.
type UseGroupItem struct {
	Segments []source.SymbolID
	Alias    source.SymbolID
}

// DeclUseData describes one `use` path. Relative counts the leading `.`/`..`
// segments (0 for an absolute path); Group holds the members of a
// `p.{a, b}` group import, empty otherwise; Glob marks a trailing `p.*`.
// Alias is NoSymbolID unless the path ends in `as Name`, which is only
// legal when Group is empty and Glob is false.
type DeclUseData struct {
	Pub      bool
	Relative int
	Segments []source.SymbolID
	Group    []UseGroupItem
	Glob     bool
	Alias    source.SymbolID
}

func (d *Decls) NewUse(span source.Span, data DeclUseData) DeclID {
	data.Segments = append([]source.SymbolID(nil), data.Segments...)
	data.Group = append([]UseGroupItem(nil), data.Group...)
	payload := d.Uses.Allocate(data)
	return d.new(DeclUse, span, PayloadID(payload))
}

func (d *Decls) Use(id DeclID) (*DeclUseData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclUse {
		return nil, false
	}
	return d.Uses.Get(uint32(decl.Payload)), true
}
