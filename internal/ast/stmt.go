package ast

import "loom/internal/source"

// StmtKind discriminates the payload arena a Stmt's Payload indexes into.
type StmtKind uint8

const (
	StmtLet StmtKind = iota
	StmtDecl
	StmtExpr
	StmtFor
	StmtBreak
	StmtContinue
	StmtReturn
	StmtDefer
)

// Stmt is the base node shared by every statement kind.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// StmtLetData's Type is NoExprID when the binding has no type annotation.
type StmtLetData struct {
	Pattern PatternID
	Type    ExprID
	Value   ExprID
}

type StmtDeclData struct {
	Decl DeclID
}

// StmtExprData's HasSemi records whether the expression statement was
// terminated with a semicolon, distinguishing a discarded value from a
// block's trailing result expression.
type StmtExprData struct {
	Expr    ExprID
	HasSemi bool
}

// StmtForData unifies the three-part C-style loop and the for-in sugar
// behind a single IsForIn flag, following how the grammar desugars one into
// the other rather than giving them unrelated node shapes.
//
// When IsForIn is true: Binding and Iterable are populated; Init, Cond and
// Post are zero.
// When IsForIn is false: Init (NoStmtID if absent), Cond (NoExprID if
// absent) and Post (NoStmtID if absent) are populated; Binding is
// NoPatternID and Iterable is NoExprID.
type StmtForData struct {
	IsForIn  bool
	Binding  PatternID
	Iterable ExprID
	Init     StmtID
	Cond     ExprID
	Post     StmtID
	Body     ExprID // always an ExprBlock
}

// StmtReturnData's Value is NoExprID for a bare `return;`.
type StmtReturnData struct {
	Value ExprID
}

type StmtDeferData struct {
	Expr ExprID
}

// Stmts owns the statement arena and every per-kind payload arena.
type Stmts struct {
	Arena *Arena[Stmt]

	Lets    *Arena[StmtLetData]
	Decls   *Arena[StmtDeclData]
	Exprs   *Arena[StmtExprData]
	Fors    *Arena[StmtForData]
	Returns *Arena[StmtReturnData]
	Defers  *Arena[StmtDeferData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &Stmts{
		Arena:   NewArena[Stmt](capHint),
		Lets:    NewArena[StmtLetData](capHint),
		Decls:   NewArena[StmtDeclData](capHint),
		Exprs:   NewArena[StmtExprData](capHint),
		Fors:    NewArena[StmtForData](capHint),
		Returns: NewArena[StmtReturnData](capHint),
		Defers:  NewArena[StmtDeferData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{Kind: kind, Span: span, Payload: payload}))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) NewLet(span source.Span, pattern PatternID, typ, value ExprID) StmtID {
	payload := s.Lets.Allocate(StmtLetData{Pattern: pattern, Type: typ, Value: value})
	return s.new(StmtLet, span, PayloadID(payload))
}

func (s *Stmts) Let(id StmtID) (*StmtLetData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtLet {
		return nil, false
	}
	return s.Lets.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewDecl(span source.Span, decl DeclID) StmtID {
	payload := s.Decls.Allocate(StmtDeclData{Decl: decl})
	return s.new(StmtDecl, span, PayloadID(payload))
}

func (s *Stmts) Decl(id StmtID) (*StmtDeclData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtDecl {
		return nil, false
	}
	return s.Decls.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewExpr(span source.Span, expr ExprID, hasSemi bool) StmtID {
	payload := s.Exprs.Allocate(StmtExprData{Expr: expr, HasSemi: hasSemi})
	return s.new(StmtExpr, span, PayloadID(payload))
}

func (s *Stmts) Expr(id StmtID) (*StmtExprData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtExpr {
		return nil, false
	}
	return s.Exprs.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewFor(span source.Span, data StmtForData) StmtID {
	payload := s.Fors.Allocate(data)
	return s.new(StmtFor, span, PayloadID(payload))
}

func (s *Stmts) For(id StmtID) (*StmtForData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtFor {
		return nil, false
	}
	return s.Fors.Get(uint32(stmt.Payload)), true
}

// NewBreak allocates a "break;" statement, which carries no payload.
func (s *Stmts) NewBreak(span source.Span) StmtID {
	return s.new(StmtBreak, span, NoPayloadID)
}

// NewContinue allocates a "continue;" statement, which carries no payload.
func (s *Stmts) NewContinue(span source.Span) StmtID {
	return s.new(StmtContinue, span, NoPayloadID)
}

func (s *Stmts) NewReturn(span source.Span, value ExprID) StmtID {
	payload := s.Returns.Allocate(StmtReturnData{Value: value})
	return s.new(StmtReturn, span, PayloadID(payload))
}

func (s *Stmts) Return(id StmtID) (*StmtReturnData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtReturn {
		return nil, false
	}
	return s.Returns.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewDefer(span source.Span, expr ExprID) StmtID {
	payload := s.Defers.Allocate(StmtDeferData{Expr: expr})
	return s.new(StmtDefer, span, PayloadID(payload))
}

func (s *Stmts) Defer(id StmtID) (*StmtDeferData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtDefer {
		return nil, false
	}
	return s.Defers.Get(uint32(stmt.Payload)), true
}
