package token

import "loom/internal/source"

// Directive captures a parsed `/// @module:name payload` doc-comment
// directive. Directives are recorded but never executed by the front end.
type Directive struct {
	Module  string
	Name    string
	Payload string
}

// TriviaKind distinguishes the shapes of non-token material the lexer
// skips between real tokens.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
	TriviaDocLine
	TriviaDocBlock
	TriviaDirective
)

// Trivia is whitespace or a comment attached as leading context to the
// token that follows it. Trivia carries no weight in the token stream
// itself — it never affects Span monotonicity or token-completeness
// coverage of the source.
type Trivia struct {
	Kind      TriviaKind
	Span      source.Span
	Text      string
	Directive *Directive // non-nil only when Kind == TriviaDirective
}

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	case TriviaDocLine:
		return "DocLine"
	case TriviaDocBlock:
		return "DocBlock"
	case TriviaDirective:
		return "Directive"
	default:
		return "Unknown"
	}
}
