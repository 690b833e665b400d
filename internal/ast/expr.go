package ast

import "loom/internal/source"

// ExprKind discriminates the payload arena a Payload indexes into. Types are
// expressions: pointer, slice, array, optional, function and never-type
// syntax share this same kind space and arena family as value expressions,
// since the grammar does not distinguish a "type position" until a later
// compiler phase resolves it.
type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprLit
	ExprBinary
	ExprUnary
	ExprAssign
	ExprAddressOf // &expr, &mut T
	ExprRawPointerType
	ExprCall
	ExprIndex
	ExprMember
	ExprGenericInst // base.<Args,...>
	ExprPropagate   // expr.?
	ExprDeref       // expr.*
	ExprMacroCall
	ExprGroup
	ExprTuple
	ExprArray
	ExprArrayRepeat  // [value; count]
	ExprSliceType    // []Elem
	ExprArrayType    // [Size]Elem
	ExprOptionalType // ?Elem
	ExprFnType       // fn(Params...) Ret
	ExprNeverType    // !
	ExprRange
	ExprIf
	ExprMatch
	ExprBlock
	ExprStructInit
)

// Expr is the base node shared by every expression kind. Payload indexes
// into the per-kind arena named by Kind; nodes with no extra data (such as
// ExprNeverType) leave it as NoPayloadID.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// ExprLitKind distinguishes the literal forms carried by ExprLit.
type ExprLitKind uint8

const (
	LitInt ExprLitKind = iota
	LitFloat
	LitChar
	LitString
	LitBool
	LitUndef
	LitNull
	LitUnreachable
)

// ExprBinaryOp enumerates binary operator kinds, grouped by precedence tier.
type ExprBinaryOp uint8

const (
	BinAdd ExprBinaryOp = iota
	BinSub
	BinMul
	BinDiv
	BinRem
	BinShl
	BinShr
	BinBitAnd
	BinBitOr
	BinBitXor
	BinAnd // &&
	BinOr  // ||
	BinEq
	BinNe
	BinLt
	BinLe
	BinGt
	BinGe
	BinNullCoalesce // ??
)

// ExprUnaryOp enumerates prefix unary operator kinds.
type ExprUnaryOp uint8

const (
	UnaryNeg      ExprUnaryOp = iota // -expr
	UnaryNot                         // !expr
	UnaryBitNot                      // ~expr
	UnaryHash                        // #expr
	UnaryOptional                    // ?expr
)

// ExprAssignOp enumerates assignment operators, including the compound
// arithmetic/bitwise forms.
type ExprAssignOp uint8

const (
	AssignPlain ExprAssignOp = iota
	AssignAdd
	AssignSub
	AssignMul
	AssignDiv
	AssignRem
	AssignAnd
	AssignOr
	AssignXor
	AssignShl
	AssignShr
)

// MacroCallDelim records which bracket pair delimited a macro invocation's
// argument token tree.
type MacroCallDelim uint8

const (
	DelimParen MacroCallDelim = iota
	DelimBracket
	DelimBrace
)
