package ast

import (
	"loom/internal/source"
	"loom/internal/token"
)

// Exprs owns the expression arena and every per-kind payload arena. A single
// Exprs is shared by every expression in a Module, including type-position
// expressions: the parser allocates a pointer type or a slice type exactly
// like any other expression, into this same arena.
type Exprs struct {
	Arena *Arena[Expr]

	Idents        *Arena[ExprIdentData]
	Literals      *Arena[ExprLiteralData]
	Binaries      *Arena[ExprBinaryData]
	Unaries       *Arena[ExprUnaryData]
	Assigns       *Arena[ExprAssignData]
	AddressOfs    *Arena[ExprAddressOfData]
	RawPtrTypes   *Arena[ExprRawPointerTypeData]
	Calls         *Arena[ExprCallData]
	Indices       *Arena[ExprIndexData]
	Members       *Arena[ExprMemberData]
	GenericInsts  *Arena[ExprGenericInstData]
	Propagates    *Arena[ExprPropagateData]
	Derefs        *Arena[ExprDerefData]
	MacroCalls    *Arena[ExprMacroCallData]
	Groups        *Arena[ExprGroupData]
	Tuples        *Arena[ExprTupleData]
	Arrays        *Arena[ExprArrayData]
	ArrayRepeats  *Arena[ExprArrayRepeatData]
	SliceTypes    *Arena[ExprSliceTypeData]
	ArrayTypes    *Arena[ExprArrayTypeData]
	OptionalTypes *Arena[ExprOptionalTypeData]
	FnTypes       *Arena[ExprFnTypeData]
	Ranges        *Arena[ExprRangeData]
	Ifs           *Arena[ExprIfData]
	Matches       *Arena[ExprMatchData]
	Blocks        *Arena[ExprBlockData]
	StructInits   *Arena[ExprStructInitData]
}

// NewExprs creates an Exprs with every per-kind arena preallocated using
// capHint as the initial capacity. capHint of 0 picks a modest default.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:         NewArena[Expr](capHint),
		Idents:        NewArena[ExprIdentData](capHint),
		Literals:      NewArena[ExprLiteralData](capHint),
		Binaries:      NewArena[ExprBinaryData](capHint),
		Unaries:       NewArena[ExprUnaryData](capHint),
		Assigns:       NewArena[ExprAssignData](capHint),
		AddressOfs:    NewArena[ExprAddressOfData](capHint),
		RawPtrTypes:   NewArena[ExprRawPointerTypeData](capHint),
		Calls:         NewArena[ExprCallData](capHint),
		Indices:       NewArena[ExprIndexData](capHint),
		Members:       NewArena[ExprMemberData](capHint),
		GenericInsts:  NewArena[ExprGenericInstData](capHint),
		Propagates:    NewArena[ExprPropagateData](capHint),
		Derefs:        NewArena[ExprDerefData](capHint),
		MacroCalls:    NewArena[ExprMacroCallData](capHint),
		Groups:        NewArena[ExprGroupData](capHint),
		Tuples:        NewArena[ExprTupleData](capHint),
		Arrays:        NewArena[ExprArrayData](capHint),
		ArrayRepeats:  NewArena[ExprArrayRepeatData](capHint),
		SliceTypes:    NewArena[ExprSliceTypeData](capHint),
		ArrayTypes:    NewArena[ExprArrayTypeData](capHint),
		OptionalTypes: NewArena[ExprOptionalTypeData](capHint),
		FnTypes:       NewArena[ExprFnTypeData](capHint),
		Ranges:        NewArena[ExprRangeData](capHint),
		Ifs:           NewArena[ExprIfData](capHint),
		Matches:       NewArena[ExprMatchData](capHint),
		Blocks:        NewArena[ExprBlockData](capHint),
		StructInits:   NewArena[ExprStructInitData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{Kind: kind, Span: span, Payload: payload}))
}

// Get returns the expression with the given ID, or nil for NoExprID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

func (e *Exprs) NewIdent(span source.Span, name source.SymbolID) ExprID {
	payload := e.Idents.Allocate(ExprIdentData{Name: name})
	return e.new(ExprIdent, span, PayloadID(payload))
}

func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewLiteral(span source.Span, kind ExprLitKind, text source.SymbolID) ExprID {
	payload := e.Literals.Allocate(ExprLiteralData{Kind: kind, Text: text})
	return e.new(ExprLit, span, PayloadID(payload))
}

func (e *Exprs) Literal(id ExprID) (*ExprLiteralData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLit {
		return nil, false
	}
	return e.Literals.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewBinary(span source.Span, op ExprBinaryOp, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewUnary(span source.Span, op ExprUnaryOp, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, span, PayloadID(payload))
}

func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewAssign(span source.Span, op ExprAssignOp, target, value ExprID) ExprID {
	payload := e.Assigns.Allocate(ExprAssignData{Op: op, Target: target, Value: value})
	return e.new(ExprAssign, span, PayloadID(payload))
}

func (e *Exprs) Assign(id ExprID) (*ExprAssignData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprAssign {
		return nil, false
	}
	return e.Assigns.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewAddressOf(span source.Span, operand ExprID, mut bool) ExprID {
	payload := e.AddressOfs.Allocate(ExprAddressOfData{Operand: operand, Mut: mut})
	return e.new(ExprAddressOf, span, PayloadID(payload))
}

func (e *Exprs) AddressOf(id ExprID) (*ExprAddressOfData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprAddressOf {
		return nil, false
	}
	return e.AddressOfs.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewRawPointerType(span source.Span, operand ExprID, mut bool) ExprID {
	payload := e.RawPtrTypes.Allocate(ExprRawPointerTypeData{Operand: operand, Mut: mut})
	return e.new(ExprRawPointerType, span, PayloadID(payload))
}

func (e *Exprs) RawPointerType(id ExprID) (*ExprRawPointerTypeData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprRawPointerType {
		return nil, false
	}
	return e.RawPtrTypes.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprID) ExprID {
	payload := e.Calls.Allocate(ExprCallData{Callee: callee, Args: append([]ExprID(nil), args...)})
	return e.new(ExprCall, span, PayloadID(payload))
}

func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewIndex(span source.Span, base, index ExprID) ExprID {
	payload := e.Indices.Allocate(ExprIndexData{Base: base, Index: index})
	return e.new(ExprIndex, span, PayloadID(payload))
}

func (e *Exprs) Index(id ExprID) (*ExprIndexData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIndex {
		return nil, false
	}
	return e.Indices.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewMember(span source.Span, base ExprID, name source.SymbolID) ExprID {
	payload := e.Members.Allocate(ExprMemberData{Base: base, Name: name})
	return e.new(ExprMember, span, PayloadID(payload))
}

func (e *Exprs) Member(id ExprID) (*ExprMemberData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprMember {
		return nil, false
	}
	return e.Members.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewGenericInst(span source.Span, base ExprID, args []ExprID) ExprID {
	payload := e.GenericInsts.Allocate(ExprGenericInstData{Base: base, Args: append([]ExprID(nil), args...)})
	return e.new(ExprGenericInst, span, PayloadID(payload))
}

func (e *Exprs) GenericInst(id ExprID) (*ExprGenericInstData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprGenericInst {
		return nil, false
	}
	return e.GenericInsts.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewPropagate(span source.Span, operand ExprID) ExprID {
	payload := e.Propagates.Allocate(ExprPropagateData{Operand: operand})
	return e.new(ExprPropagate, span, PayloadID(payload))
}

func (e *Exprs) Propagate(id ExprID) (*ExprPropagateData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprPropagate {
		return nil, false
	}
	return e.Propagates.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewDeref(span source.Span, operand ExprID) ExprID {
	payload := e.Derefs.Allocate(ExprDerefData{Operand: operand})
	return e.new(ExprDeref, span, PayloadID(payload))
}

func (e *Exprs) Deref(id ExprID) (*ExprDerefData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprDeref {
		return nil, false
	}
	return e.Derefs.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewMacroCall(span source.Span, callee ExprID, delim MacroCallDelim, tokens []token.Token) ExprID {
	payload := e.MacroCalls.Allocate(ExprMacroCallData{Callee: callee, Delim: delim, Tokens: tokens})
	return e.new(ExprMacroCall, span, PayloadID(payload))
}

func (e *Exprs) MacroCall(id ExprID) (*ExprMacroCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprMacroCall {
		return nil, false
	}
	return e.MacroCalls.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewGroup(span source.Span, inner ExprID) ExprID {
	payload := e.Groups.Allocate(ExprGroupData{Inner: inner})
	return e.new(ExprGroup, span, PayloadID(payload))
}

func (e *Exprs) Group(id ExprID) (*ExprGroupData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprGroup {
		return nil, false
	}
	return e.Groups.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewTuple(span source.Span, elems []ExprID) ExprID {
	payload := e.Tuples.Allocate(ExprTupleData{Elems: append([]ExprID(nil), elems...)})
	return e.new(ExprTuple, span, PayloadID(payload))
}

func (e *Exprs) Tuple(id ExprID) (*ExprTupleData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprTuple {
		return nil, false
	}
	return e.Tuples.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewArray(span source.Span, elems []ExprID) ExprID {
	payload := e.Arrays.Allocate(ExprArrayData{Elems: append([]ExprID(nil), elems...)})
	return e.new(ExprArray, span, PayloadID(payload))
}

func (e *Exprs) Array(id ExprID) (*ExprArrayData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprArray {
		return nil, false
	}
	return e.Arrays.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewArrayRepeat(span source.Span, value, count ExprID) ExprID {
	payload := e.ArrayRepeats.Allocate(ExprArrayRepeatData{Value: value, Count: count})
	return e.new(ExprArrayRepeat, span, PayloadID(payload))
}

func (e *Exprs) ArrayRepeat(id ExprID) (*ExprArrayRepeatData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprArrayRepeat {
		return nil, false
	}
	return e.ArrayRepeats.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewSliceType(span source.Span, elem ExprID) ExprID {
	payload := e.SliceTypes.Allocate(ExprSliceTypeData{Elem: elem})
	return e.new(ExprSliceType, span, PayloadID(payload))
}

func (e *Exprs) SliceType(id ExprID) (*ExprSliceTypeData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprSliceType {
		return nil, false
	}
	return e.SliceTypes.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewArrayType(span source.Span, elem, size ExprID) ExprID {
	payload := e.ArrayTypes.Allocate(ExprArrayTypeData{Elem: elem, Size: size})
	return e.new(ExprArrayType, span, PayloadID(payload))
}

func (e *Exprs) ArrayType(id ExprID) (*ExprArrayTypeData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprArrayType {
		return nil, false
	}
	return e.ArrayTypes.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewOptionalType(span source.Span, elem ExprID) ExprID {
	payload := e.OptionalTypes.Allocate(ExprOptionalTypeData{Elem: elem})
	return e.new(ExprOptionalType, span, PayloadID(payload))
}

func (e *Exprs) OptionalType(id ExprID) (*ExprOptionalTypeData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprOptionalType {
		return nil, false
	}
	return e.OptionalTypes.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewFnType(span source.Span, params []ExprID, ret ExprID) ExprID {
	payload := e.FnTypes.Allocate(ExprFnTypeData{Params: append([]ExprID(nil), params...), Ret: ret})
	return e.new(ExprFnType, span, PayloadID(payload))
}

func (e *Exprs) FnType(id ExprID) (*ExprFnTypeData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprFnType {
		return nil, false
	}
	return e.FnTypes.Get(uint32(expr.Payload)), true
}

// NewNeverType allocates a "!" never-type expression, which carries no
// payload of its own.
func (e *Exprs) NewNeverType(span source.Span) ExprID {
	return e.new(ExprNeverType, span, NoPayloadID)
}

func (e *Exprs) NewRange(span source.Span, low, high ExprID, inclusive bool) ExprID {
	payload := e.Ranges.Allocate(ExprRangeData{Low: low, High: high, Inclusive: inclusive})
	return e.new(ExprRange, span, PayloadID(payload))
}

func (e *Exprs) Range(id ExprID) (*ExprRangeData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprRange {
		return nil, false
	}
	return e.Ranges.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewIf(span source.Span, cond, then, els ExprID) ExprID {
	payload := e.Ifs.Allocate(ExprIfData{Cond: cond, Then: then, Else: els})
	return e.new(ExprIf, span, PayloadID(payload))
}

func (e *Exprs) If(id ExprID) (*ExprIfData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIf {
		return nil, false
	}
	return e.Ifs.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewMatch(span source.Span, scrutinee ExprID, arms []MatchArm) ExprID {
	payload := e.Matches.Allocate(ExprMatchData{Scrutinee: scrutinee, Arms: append([]MatchArm(nil), arms...)})
	return e.new(ExprMatch, span, PayloadID(payload))
}

func (e *Exprs) Match(id ExprID) (*ExprMatchData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprMatch {
		return nil, false
	}
	return e.Matches.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewBlock(span source.Span, stmts []StmtID, result ExprID) ExprID {
	payload := e.Blocks.Allocate(ExprBlockData{Stmts: append([]StmtID(nil), stmts...), Result: result})
	return e.new(ExprBlock, span, PayloadID(payload))
}

func (e *Exprs) Block(id ExprID) (*ExprBlockData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBlock {
		return nil, false
	}
	return e.Blocks.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewStructInit(span source.Span, typ ExprID, fields []StructInitField) ExprID {
	payload := e.StructInits.Allocate(ExprStructInitData{Type: typ, Fields: append([]StructInitField(nil), fields...)})
	return e.new(ExprStructInit, span, PayloadID(payload))
}

func (e *Exprs) StructInit(id ExprID) (*ExprStructInitData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprStructInit {
		return nil, false
	}
	return e.StructInits.Get(uint32(expr.Payload)), true
}
