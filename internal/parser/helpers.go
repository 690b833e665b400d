package parser

import (
	"loom/internal/diag"
	"loom/internal/source"
	"loom/internal/token"
)

// expect consumes the next token if it has kind k, otherwise reports code
// at the current position and returns the zero token with ok=false. A
// failed expect does not advance the stream; callers that need to skip
// past the offending token do so explicitly (usually via synchronize).
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.errorAt(code, p.peek().Span, msg)
	return token.Token{}, false
}

// errorAt reports an error at sp. Subsequent errors are suppressed by the
// diag.Context's panic mode until the parser resynchronizes, so call
// sites do not need to check InPanicMode themselves.
func (p *Parser) errorAt(code diag.Code, sp source.Span, msg string) {
	p.ctx.Error(code, sp, msg).Emit()
}

// errorHere reports an error at the current token's span.
func (p *Parser) errorHere(code diag.Code, msg string) {
	p.ctx.Error(code, p.peek().Span, msg).Emit()
}

// warnHere reports a warning at the current token's span.
func (p *Parser) warnHere(code diag.Code, msg string) {
	p.ctx.Warn(code, p.peek().Span, msg).Emit()
}
