package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Illegal marks a byte sequence the lexer could not classify, or a
	// literal that failed its closing condition (unterminated string/char,
	// bad escape, oversized unicode escape).
	Illegal Kind = iota
	// Eof marks the end of the source input. Every next() call past the
	// last real token returns Eof with a zero-length span at the end
	// offset.
	Eof

	// Ident represents an identifier token.
	Ident
	// Underscore is '_' standing alone — the wildcard token.
	Underscore

	// IntLit represents an integer literal (decimal, hex, binary, or octal).
	IntLit // 42, 0x2A, 0b101010, 0o52
	// FloatLit represents a floating-point literal.
	FloatLit // 1.5, 1e10
	// CharLit represents a single-quoted character literal.
	CharLit // 'a', '\n', '\x41', '\u{1F600}'
	// StringLit represents a double-quoted string literal.
	StringLit

	// KwFn represents the 'fn' keyword.
	KwFn
	// KwLet represents the 'let' keyword.
	KwLet
	// KwConst represents the 'const' keyword.
	KwConst
	// KwMut represents the 'mut' keyword.
	KwMut
	// KwPub represents the 'pub' keyword.
	KwPub
	// KwIf represents the 'if' keyword.
	KwIf
	// KwElse represents the 'else' keyword.
	KwElse
	// KwFor represents the 'for' keyword.
	KwFor
	// KwIn represents the 'in' keyword.
	KwIn
	// KwReturn represents the 'return' keyword.
	KwReturn
	// KwDefer represents the 'defer' keyword.
	KwDefer
	// KwBreak represents the 'break' keyword.
	KwBreak
	// KwContinue represents the 'continue' keyword.
	KwContinue
	// KwStruct represents the 'struct' keyword.
	KwStruct
	// KwEnum represents the 'enum' keyword.
	KwEnum
	// KwUnion represents the 'union' keyword.
	KwUnion
	// KwTrait represents the 'trait' keyword.
	KwTrait
	// KwImpl represents the 'impl' keyword.
	KwImpl
	// KwMacro represents the 'macro' keyword.
	KwMacro
	// KwUse represents the 'use' keyword.
	KwUse
	// KwType represents the 'type' keyword (type alias).
	KwType
	// KwStatic represents the 'static' keyword.
	KwStatic
	// KwExtern represents the 'extern' keyword.
	KwExtern
	// KwSelf represents the lowercase 'self' receiver keyword.
	KwSelf
	// KwSelfType represents the uppercase 'Self' type keyword.
	KwSelfType
	// KwTrue represents the 'true' keyword.
	KwTrue
	// KwFalse represents the 'false' keyword.
	KwFalse
	// KwMatch represents the 'match' keyword.
	KwMatch
	// KwAs represents the 'as' keyword (casts, and the 'name: as T'
	// binding-cast parameter marker).
	KwAs
	// KwUndef represents the 'undef' literal keyword.
	KwUndef
	// KwNull represents the 'null' literal keyword.
	KwNull
	// KwUnreachable represents the 'unreachable' literal keyword.
	KwUnreachable

	// Plus represents '+'.
	Plus
	// Minus represents '-'.
	Minus
	// Star represents '*'.
	Star
	// Slash represents '/'.
	Slash
	// Percent represents '%'.
	Percent
	// Assign represents '='.
	Assign
	// PlusAssign represents '+='.
	PlusAssign
	// MinusAssign represents '-='.
	MinusAssign
	// StarAssign represents '*='.
	StarAssign
	// SlashAssign represents '/='.
	SlashAssign
	// PercentAssign represents '%='.
	PercentAssign
	// AmpAssign represents '&='.
	AmpAssign
	// PipeAssign represents '|='.
	PipeAssign
	// CaretAssign represents '^='.
	CaretAssign
	// ShlAssign represents '<<='.
	ShlAssign
	// ShrAssign represents '>>='.
	ShrAssign
	// EqEq represents '=='.
	EqEq
	// Bang represents '!'.
	Bang
	// BangEq represents '!='.
	BangEq
	// Lt represents '<'.
	Lt
	// LtEq represents '<='.
	LtEq
	// Gt represents '>'.
	Gt
	// GtEq represents '>='.
	GtEq
	// Shl represents '<<'.
	Shl
	// Shr represents '>>'.
	Shr
	// Amp represents '&'.
	Amp
	// Pipe represents '|'.
	Pipe
	// Caret represents '^'.
	Caret
	// AndAnd represents '&&'.
	AndAnd
	// OrOr represents '||'.
	OrOr
	// Question represents '?'.
	Question
	// QuestionQuestion represents '??'.
	QuestionQuestion
	// Colon represents ':'.
	Colon
	// Semicolon represents ';'.
	Semicolon
	// Comma represents ','.
	Comma
	// Dot represents '.'.
	Dot
	// DotDot represents '..'.
	DotDot
	// DotDotEq represents '..='.
	DotDotEq
	// DotDotDot represents '...' (extern variadic marker).
	DotDotDot
	// DotQuestion represents '.?' (propagate).
	DotQuestion
	// DotStar represents '.*' (dereference).
	DotStar
	// DotLt represents '.<' (generic-instantiation turbofish).
	DotLt
	// FatArrow represents '=>' (macro rule arms).
	FatArrow
	// LParen represents '('.
	LParen
	// RParen represents ')'.
	RParen
	// LBrace represents '{'.
	LBrace
	// RBrace represents '}'.
	RBrace
	// LBracket represents '['.
	LBracket
	// RBracket represents ']'.
	RBracket
	// At represents '@'.
	At
	// Dollar represents '$' (macro capture sigil).
	Dollar
	// Hash represents '#' (value-prefix unary operator).
	Hash
	// Tilde represents '~' (bitwise complement).
	Tilde
)
