package token

import (
	"loom/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is one of the five literal kinds:
// integer, float, character, string, or a boolean/undef/null/unreachable
// keyword literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, CharLit, StringLit, KwTrue, KwFalse, KwUndef, KwNull, KwUnreachable:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Percent, Assign, PlusAssign, MinusAssign, StarAssign,
		SlashAssign, PercentAssign, AmpAssign, PipeAssign, CaretAssign, ShlAssign, ShrAssign,
		EqEq, Bang, BangEq, Lt, LtEq, Gt, GtEq, Shl, Shr, Amp, Pipe, Caret, AndAnd, OrOr,
		Question, QuestionQuestion, Colon, Semicolon, Comma, Dot, DotDot, DotDotEq, DotDotDot,
		DotQuestion, DotStar, DotLt, FatArrow, LParen, RParen, LBrace, RBrace, LBracket,
		RBracket, At, Dollar, Hash, Tilde, Underscore:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwFn, KwLet, KwConst, KwMut, KwPub, KwIf, KwElse, KwFor, KwIn, KwReturn, KwDefer,
		KwBreak, KwContinue, KwStruct, KwEnum, KwUnion, KwTrait, KwImpl, KwMacro, KwUse,
		KwType, KwStatic, KwExtern, KwSelf, KwSelfType, KwTrue, KwFalse, KwMatch, KwAs,
		KwUndef, KwNull, KwUnreachable:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsDeclarationOpener reports whether the token is one of the keywords at
// which the parser's synchronize() recovery stops: fn, let, const, struct,
// enum, if, for and return. Other declaration keywords (impl, use, extern
// and so on) are not in the set.
func (t Token) IsDeclarationOpener() bool {
	switch t.Kind {
	case KwFn, KwLet, KwConst, KwStruct, KwEnum, KwIf, KwFor, KwReturn:
		return true
	default:
		return false
	}
}
