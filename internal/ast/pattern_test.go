package ast

import (
	"testing"

	"loom/internal/source"
)

func TestPatternsWildcardCarriesNoPayload(t *testing.T) {
	p := NewPatterns(0)
	id := p.NewWildcard(span(0, 1))
	pat := p.Get(id)
	if pat == nil || pat.Kind != PatWildcard {
		t.Fatalf("Get(%d) = %+v, want a populated PatWildcard", id, pat)
	}
	if pat.Payload != NoPayloadID {
		t.Fatalf("Payload = %d, want NoPayloadID", pat.Payload)
	}
}

func TestPatternsIdentMutFlag(t *testing.T) {
	p := NewPatterns(0)
	id := p.NewIdent(span(0, 3), source.SymbolID(4), true)
	data, ok := p.Ident(id)
	if !ok {
		t.Fatal("Ident() ok = false")
	}
	if !data.Mut {
		t.Fatal("Mut should be true")
	}
}

func TestPatternsStructDestructureRest(t *testing.T) {
	p := NewPatterns(0)
	e := NewExprs(0)
	typ := e.NewIdent(span(0, 5), source.SymbolID(1))
	inner := p.NewIdent(span(7, 8), source.SymbolID(2), false)

	id := p.NewStruct(span(0, 10), typ, []FieldPattern{
		{Name: source.SymbolID(2), Pattern: inner},
	}, true)

	data, ok := p.Struct(id)
	if !ok {
		t.Fatal("Struct() ok = false")
	}
	if !data.HasRest {
		t.Fatal("HasRest should be true")
	}
	if len(data.Fields) != 1 {
		t.Fatalf("len(Fields) = %d, want 1", len(data.Fields))
	}
}

func TestPatternsEnumUnqualifiedHasNoType(t *testing.T) {
	p := NewPatterns(0)
	id := p.NewEnum(span(0, 5), NoExprID, source.SymbolID(3), nil)
	data, ok := p.Enum(id)
	if !ok {
		t.Fatal("Enum() ok = false")
	}
	if data.Type.IsValid() {
		t.Fatal("unqualified enum pattern should have no Type")
	}
}
