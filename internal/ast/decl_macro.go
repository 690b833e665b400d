package ast

import (
	"loom/internal/source"
	"loom/internal/token"
)

// FragSpec names the kind of fragment a macro matcher capture accepts.
type FragSpec uint8

const (
	FragExpr FragSpec = iota
	FragIdent
	FragType
	FragStmt
	FragBlock
	FragPath
	FragLiteral
	FragTokenTree
)

// RepOp is the repetition operator following a `$( ... )` matcher group.
type RepOp uint8

const (
	RepNone  RepOp = iota // no repetition: the group matches exactly once
	RepStar               // *
	RepPlus               // +
	RepOnce               // ?
)

// MacroMatcherKind discriminates the three forms a macro rule's matcher can
// take: a literal token that must match exactly, a `$name:spec` capture, or
// a `$( sub )sep? op` repetition over a sub-sequence of matchers.
type MacroMatcherKind uint8

const (
	MacroMatchLiteral MacroMatcherKind = iota
	MacroMatchCapture
	MacroMatchRepetition
)

// MacroMatcher is one element of a macro rule's matcher sequence. Populated
// fields depend on Kind: LiteralTok for MacroMatchLiteral, CaptureName and
// CaptureSpec for MacroMatchCapture, and Sub/Sep/Op for MacroMatchRepetition.
type MacroMatcher struct {
	Kind        MacroMatcherKind
	LiteralTok  token.Token
	CaptureName source.SymbolID
	CaptureSpec FragSpec
	Sub         []MacroMatcher
	Sep         *token.Token
	Op          RepOp
}

// MacroRule pairs one matcher sequence with the raw token tree it expands
// to. Body is captured unexpanded, the same as ExprMacroCallData.Tokens;
// recursive expansion is a later phase's concern.
type MacroRule struct {
	Matchers []MacroMatcher
	Body     []token.Token
}

type DeclMacroData struct {
	Name  source.SymbolID
	Rules []MacroRule
}

func (d *Decls) NewMacro(span source.Span, name source.SymbolID, rules []MacroRule) DeclID {
	payload := d.Macros.Allocate(DeclMacroData{Name: name, Rules: append([]MacroRule(nil), rules...)})
	return d.new(DeclMacro, span, PayloadID(payload))
}

func (d *Decls) Macro(id DeclID) (*DeclMacroData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclMacro {
		return nil, false
	}
	return d.Macros.Get(uint32(decl.Payload)), true
}
