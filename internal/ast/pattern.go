package ast

import "loom/internal/source"

// PatternKind discriminates the payload arena a Pattern's Payload indexes
// into.
type PatternKind uint8

const (
	PatWildcard PatternKind = iota // _
	PatLiteral                     // a literal expression used as a pattern
	PatLiteralRange                // lo..hi or lo..=hi as a pattern
	PatIdent                       // name, or mut name
	PatTuple                       // (p, q, ...)
	PatStruct                      // Type { field: p, ..., .. }
	PatEnum                        // [Type.]Variant or [Type.]Variant(p, ...)
)

// Pattern is the base node shared by every pattern kind.
type Pattern struct {
	Kind    PatternKind
	Span    source.Span
	Payload PayloadID
}

type PatternLiteralData struct {
	Value ExprID
}

type PatternLiteralRangeData struct {
	Low       ExprID
	High      ExprID
	Inclusive bool
}

type PatternIdentData struct {
	Name source.SymbolID
	Mut  bool
}

type PatternTupleData struct {
	Elems []PatternID
}

// FieldPattern is one field matcher inside a PatStruct. Shorthand marks the
// `field` form (equivalent to `field: field`), as opposed to `field: pat`.
type FieldPattern struct {
	Name      source.SymbolID
	Pattern   PatternID
	Mut       bool
	Shorthand bool
}

// PatternStructData's Type is the qualifying type path preceding the `{`;
// it is always present, matching the grammar's `Type { ... }` form. HasRest
// records whether the pattern ended with a bare `..`.
type PatternStructData struct {
	Type    ExprID
	Fields  []FieldPattern
	HasRest bool
}

// PatternEnumData's Type is NoExprID for the unqualified `.Variant(...)`
// shorthand form, populated when the variant is written fully qualified.
type PatternEnumData struct {
	Type    ExprID
	Variant source.SymbolID
	Args    []PatternID
}

// Patterns owns the pattern arena and every per-kind payload arena.
type Patterns struct {
	Arena *Arena[Pattern]

	Literals      *Arena[PatternLiteralData]
	LiteralRanges *Arena[PatternLiteralRangeData]
	Idents        *Arena[PatternIdentData]
	Tuples        *Arena[PatternTupleData]
	Structs       *Arena[PatternStructData]
	Enums         *Arena[PatternEnumData]
}

func NewPatterns(capHint uint) *Patterns {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Patterns{
		Arena:         NewArena[Pattern](capHint),
		Literals:      NewArena[PatternLiteralData](capHint),
		LiteralRanges: NewArena[PatternLiteralRangeData](capHint),
		Idents:        NewArena[PatternIdentData](capHint),
		Tuples:        NewArena[PatternTupleData](capHint),
		Structs:       NewArena[PatternStructData](capHint),
		Enums:         NewArena[PatternEnumData](capHint),
	}
}

func (p *Patterns) new(kind PatternKind, span source.Span, payload PayloadID) PatternID {
	return PatternID(p.Arena.Allocate(Pattern{Kind: kind, Span: span, Payload: payload}))
}

func (p *Patterns) Get(id PatternID) *Pattern {
	return p.Arena.Get(uint32(id))
}

// NewWildcard allocates a "_" pattern, which carries no payload.
func (p *Patterns) NewWildcard(span source.Span) PatternID {
	return p.new(PatWildcard, span, NoPayloadID)
}

func (p *Patterns) NewLiteral(span source.Span, value ExprID) PatternID {
	payload := p.Literals.Allocate(PatternLiteralData{Value: value})
	return p.new(PatLiteral, span, PayloadID(payload))
}

func (p *Patterns) Literal(id PatternID) (*PatternLiteralData, bool) {
	pat := p.Get(id)
	if pat == nil || pat.Kind != PatLiteral {
		return nil, false
	}
	return p.Literals.Get(uint32(pat.Payload)), true
}

func (p *Patterns) NewLiteralRange(span source.Span, low, high ExprID, inclusive bool) PatternID {
	payload := p.LiteralRanges.Allocate(PatternLiteralRangeData{Low: low, High: high, Inclusive: inclusive})
	return p.new(PatLiteralRange, span, PayloadID(payload))
}

func (p *Patterns) LiteralRange(id PatternID) (*PatternLiteralRangeData, bool) {
	pat := p.Get(id)
	if pat == nil || pat.Kind != PatLiteralRange {
		return nil, false
	}
	return p.LiteralRanges.Get(uint32(pat.Payload)), true
}

func (p *Patterns) NewIdent(span source.Span, name source.SymbolID, mut bool) PatternID {
	payload := p.Idents.Allocate(PatternIdentData{Name: name, Mut: mut})
	return p.new(PatIdent, span, PayloadID(payload))
}

func (p *Patterns) Ident(id PatternID) (*PatternIdentData, bool) {
	pat := p.Get(id)
	if pat == nil || pat.Kind != PatIdent {
		return nil, false
	}
	return p.Idents.Get(uint32(pat.Payload)), true
}

func (p *Patterns) NewTuple(span source.Span, elems []PatternID) PatternID {
	payload := p.Tuples.Allocate(PatternTupleData{Elems: append([]PatternID(nil), elems...)})
	return p.new(PatTuple, span, PayloadID(payload))
}

func (p *Patterns) Tuple(id PatternID) (*PatternTupleData, bool) {
	pat := p.Get(id)
	if pat == nil || pat.Kind != PatTuple {
		return nil, false
	}
	return p.Tuples.Get(uint32(pat.Payload)), true
}

func (p *Patterns) NewStruct(span source.Span, typ ExprID, fields []FieldPattern, hasRest bool) PatternID {
	payload := p.Structs.Allocate(PatternStructData{
		Type:    typ,
		Fields:  append([]FieldPattern(nil), fields...),
		HasRest: hasRest,
	})
	return p.new(PatStruct, span, PayloadID(payload))
}

func (p *Patterns) Struct(id PatternID) (*PatternStructData, bool) {
	pat := p.Get(id)
	if pat == nil || pat.Kind != PatStruct {
		return nil, false
	}
	return p.Structs.Get(uint32(pat.Payload)), true
}

func (p *Patterns) NewEnum(span source.Span, typ ExprID, variant source.SymbolID, args []PatternID) PatternID {
	payload := p.Enums.Allocate(PatternEnumData{Type: typ, Variant: variant, Args: append([]PatternID(nil), args...)})
	return p.new(PatEnum, span, PayloadID(payload))
}

func (p *Patterns) Enum(id PatternID) (*PatternEnumData, bool) {
	pat := p.Get(id)
	if pat == nil || pat.Kind != PatEnum {
		return nil, false
	}
	return p.Enums.Get(uint32(pat.Payload)), true
}
