package diag

import "fmt"

// Code is a stable numeric diagnostic identifier, organised by range:
// 1000s are lexical, 2000s syntactic, 2900s structural (recorded here
// because the front end is the sole producer of them; no semantic range
// exists in this pipeline — name resolution and type checking are
// out-of-pipeline collaborators).
type Code uint16

const (
	// UnknownCode is the zero-value placeholder; no component should emit it.
	UnknownCode Code = 0

	// Lexical errors (1000s).
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedChar         Code = 1003
	LexUnterminatedBlockComment Code = 1004
	LexBadEscape                Code = 1005
	LexUnicodeEscapeTooLong     Code = 1006
	LexBadNumber                Code = 1007
	LexTokenTooLong             Code = 1008

	// Syntactic errors (2000s) — raised by expect()/pattern dispatch.
	SynUnexpectedToken       Code = 2001
	SynExpectIdentifier      Code = 2002
	SynExpectExpression      Code = 2003
	SynExpectType            Code = 2004
	SynExpectSemicolon       Code = 2005
	SynExpectStatement       Code = 2006
	SynUnclosedParen         Code = 2007
	SynUnclosedBrace         Code = 2008
	SynUnclosedBracket       Code = 2009
	SynForBadHeader          Code = 2010
	SynUnknownFragmentSpec   Code = 2011
	SynExpectColon           Code = 2012
	SynExpectFatArrow        Code = 2013
	SynUpperRangeBoundNeeded Code = 2014

	// Structural errors (2900s) — caught by construction, not by expect().
	SynNestedImpl           Code = 2901
	SynInvalidExternMember  Code = 2902
	SynMacroDelimiterImbalance Code = 2903
)

var codeDescriptions = map[Code]string{
	UnknownCode: "unknown error",

	LexUnknownChar:              "unrecognized byte sequence",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedChar:         "unterminated character literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexBadEscape:                "invalid escape sequence",
	LexUnicodeEscapeTooLong:     "unicode escape exceeds 6 hex digits",
	LexBadNumber:                "malformed numeric literal",
	LexTokenTooLong:             "token exceeds the maximum length",

	SynUnexpectedToken:       "unexpected token",
	SynExpectIdentifier:      "expected identifier",
	SynExpectExpression:      "expected expression",
	SynExpectType:            "expected type",
	SynExpectSemicolon:       "expected ';'",
	SynExpectStatement:       "expected statement",
	SynUnclosedParen:         "unclosed '('",
	SynUnclosedBrace:         "unclosed '{'",
	SynUnclosedBracket:       "unclosed '['",
	SynForBadHeader:          "malformed for-loop header",
	SynUnknownFragmentSpec:   "unknown macro fragment specifier",
	SynExpectColon:           "expected ':'",
	SynExpectFatArrow:        "expected '=>'",
	SynUpperRangeBoundNeeded: "'..=' requires an upper bound",

	SynNestedImpl:              "nested 'impl' blocks are not allowed",
	SynInvalidExternMember:     "declaration not allowed inside 'extern' block",
	SynMacroDelimiterImbalance: "unbalanced delimiters in macro argument",
}

// ID renders the stable machine identifier for c, e.g. "LEX1002".
func (c Code) ID() string {
	switch n := int(c); {
	case n >= 1000 && n < 2000:
		return fmt.Sprintf("LEX%04d", n)
	case n >= 2000 && n < 3000:
		return fmt.Sprintf("SYN%04d", n)
	}
	return "E0000"
}

// Title returns the fixed phrase associated with c.
func (c Code) Title() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return codeDescriptions[UnknownCode]
}

func (c Code) String() string {
	return fmt.Sprintf("[%s] %s", c.ID(), c.Title())
}
