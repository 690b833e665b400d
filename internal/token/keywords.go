package token

var keywords = map[string]Kind{
	"fn":          KwFn,
	"let":         KwLet,
	"const":       KwConst,
	"mut":         KwMut,
	"pub":         KwPub,
	"if":          KwIf,
	"else":        KwElse,
	"for":         KwFor,
	"in":          KwIn,
	"return":      KwReturn,
	"defer":       KwDefer,
	"break":       KwBreak,
	"continue":    KwContinue,
	"struct":      KwStruct,
	"enum":        KwEnum,
	"union":       KwUnion,
	"trait":       KwTrait,
	"impl":        KwImpl,
	"macro":       KwMacro,
	"use":         KwUse,
	"type":        KwType,
	"static":      KwStatic,
	"extern":      KwExtern,
	"self":        KwSelf,
	"Self":        KwSelfType,
	"true":        KwTrue,
	"false":       KwFalse,
	"match":       KwMatch,
	"as":          KwAs,
	"undef":       KwUndef,
	"null":        KwNull,
	"unreachable": KwUnreachable,
}

// LookupKeyword reports the Kind for ident if it names a keyword. Keyword
// recognition is case-sensitive and is only ever invoked after a full
// identifier has already been scanned — this is what keeps an identifier
// like "functional" from falsely matching the "fn" prefix.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
