package parser

import (
	"loom/internal/ast"
	"loom/internal/token"
)

// Precedence tiers, lowest to highest. parseExpr's Pratt loop only
// recurses into an operator whose tier is at least the caller's minimum,
// so higher numbers bind tighter.
const (
	precLowest = iota
	precAssignment
	precRange
	precLogicalOr
	precLogicalAnd
	precEquality
	precComparison
	precBitwise
	precShift
	precTerm
	precFactor
	precPrefix
	precCall
)

// binaryPrec returns the precedence tier of k and whether it associates to
// the right. A kind that is not a binary or assignment operator returns
// (precLowest, false); callers check that separately via assignOp/binaryOp.
func binaryPrec(k token.Kind) (int, bool) {
	switch k {
	case token.Assign, token.PlusAssign, token.MinusAssign, token.StarAssign,
		token.SlashAssign, token.PercentAssign, token.AmpAssign, token.PipeAssign,
		token.CaretAssign, token.ShlAssign, token.ShrAssign:
		return precAssignment, true
	case token.DotDot, token.DotDotEq:
		return precRange, false
	case token.OrOr, token.QuestionQuestion:
		return precLogicalOr, false
	case token.AndAnd:
		return precLogicalAnd, false
	case token.EqEq, token.BangEq:
		return precEquality, false
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return precComparison, false
	case token.Amp, token.Pipe, token.Caret:
		return precBitwise, false
	case token.Shl, token.Shr:
		return precShift, false
	case token.Plus, token.Minus:
		return precTerm, false
	case token.Star, token.Slash, token.Percent:
		return precFactor, false
	default:
		return precLowest, false
	}
}

// isRangeOp reports whether k opens a range expression, and whether the
// range is inclusive of its upper bound.
func isRangeOp(k token.Kind) (inclusive, ok bool) {
	switch k {
	case token.DotDot:
		return false, true
	case token.DotDotEq:
		return true, true
	default:
		return false, false
	}
}

// assignOp maps an assignment token to its ast.ExprAssignOp. Plain '='
// maps to AssignPlain; the compound forms carry the paired arithmetic or
// bitwise operator.
func assignOp(k token.Kind) (ast.ExprAssignOp, bool) {
	switch k {
	case token.Assign:
		return ast.AssignPlain, true
	case token.PlusAssign:
		return ast.AssignAdd, true
	case token.MinusAssign:
		return ast.AssignSub, true
	case token.StarAssign:
		return ast.AssignMul, true
	case token.SlashAssign:
		return ast.AssignDiv, true
	case token.PercentAssign:
		return ast.AssignRem, true
	case token.AmpAssign:
		return ast.AssignAnd, true
	case token.PipeAssign:
		return ast.AssignOr, true
	case token.CaretAssign:
		return ast.AssignXor, true
	case token.ShlAssign:
		return ast.AssignShl, true
	case token.ShrAssign:
		return ast.AssignShr, true
	default:
		return 0, false
	}
}

// binaryOp maps a non-assignment binary operator token to its
// ast.ExprBinaryOp.
func binaryOp(k token.Kind) (ast.ExprBinaryOp, bool) {
	switch k {
	case token.Plus:
		return ast.BinAdd, true
	case token.Minus:
		return ast.BinSub, true
	case token.Star:
		return ast.BinMul, true
	case token.Slash:
		return ast.BinDiv, true
	case token.Percent:
		return ast.BinRem, true
	case token.Shl:
		return ast.BinShl, true
	case token.Shr:
		return ast.BinShr, true
	case token.Amp:
		return ast.BinBitAnd, true
	case token.Pipe:
		return ast.BinBitOr, true
	case token.Caret:
		return ast.BinBitXor, true
	case token.AndAnd:
		return ast.BinAnd, true
	case token.OrOr:
		return ast.BinOr, true
	case token.EqEq:
		return ast.BinEq, true
	case token.BangEq:
		return ast.BinNe, true
	case token.Lt:
		return ast.BinLt, true
	case token.LtEq:
		return ast.BinLe, true
	case token.Gt:
		return ast.BinGt, true
	case token.GtEq:
		return ast.BinGe, true
	case token.QuestionQuestion:
		return ast.BinNullCoalesce, true
	default:
		return 0, false
	}
}

// unaryOp maps a prefix operator token to its ast.ExprUnaryOp.
func unaryOp(k token.Kind) (ast.ExprUnaryOp, bool) {
	switch k {
	case token.Minus:
		return ast.UnaryNeg, true
	case token.Bang:
		return ast.UnaryNot, true
	case token.Tilde:
		return ast.UnaryBitNot, true
	case token.Hash:
		return ast.UnaryHash, true
	case token.Question:
		return ast.UnaryOptional, true
	default:
		return 0, false
	}
}
