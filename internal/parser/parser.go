package parser

import (
	"loom/internal/ast"
	"loom/internal/diag"
	"loom/internal/lexer"
	"loom/internal/source"
	"loom/internal/token"
)

// Parser holds the state needed to turn one source file into an
// *ast.Module. It wraps a lexer.Lexer with the bounded lookahead buffer
// from stream.go, and reports every diagnostic through a shared
// diag.Context rather than returning errors, so that one syntax mistake
// never aborts the whole file.
type Parser struct {
	lx       *lexer.Lexer
	ctx      *diag.Context
	interner source.Interner

	mod *ast.Module
	buf []token.Token

	lastSpan source.Span

	// noStructInit disables struct-literal parsing in expression position
	// while > 0. It is incremented around if-conditions, match scrutinees
	// and for-loop headers (the for-in iterable and the C-style condition
	// and post-clause), where a bare '{' must open a block/body
	// rather than be read as the start of `Name { field: value }`.
	noStructInit int
}

// New creates a Parser over file, reporting diagnostics through ctx and
// interning identifier and literal text through interner.
func New(file *source.SourceFile, ctx *diag.Context, interner source.Interner) *Parser {
	return &Parser{
		lx:       lexer.New(file, ctx),
		ctx:      ctx,
		interner: interner,
		mod:      ast.NewModule(file.ID),
	}
}

// Parse consumes the entire token stream and returns the resulting
// module. It never fails outright: a declaration that cannot be parsed is
// skipped by synchronizeDecl and parsing continues, so the returned
// module is always usable even when ctx.HasErrors() is true.
func (p *Parser) Parse() *ast.Module {
	start := p.peek().Span
	for !p.at(token.Eof) {
		beforeSpan := p.peek().Span
		if decl, ok := p.parseTopLevelDecl(); ok {
			p.mod.Decls = append(p.mod.Decls, decl)
			continue
		}
		p.synchronizeDecl()
		if p.at(token.Eof) {
			break
		}
		// synchronizeDecl is supposed to make progress; if the offending
		// token itself was a declaration opener that still failed to
		// parse, force an advance so a single bad token cannot loop.
		if p.peek().Span == beforeSpan {
			p.advance()
		}
	}
	p.mod.Span = start.Cover(p.lastSpan)
	return p.mod
}

// synchronizeDecl discards tokens until the next declaration opener or a
// statement-terminating ';', then clears panic mode so the next
// declaration gets its own chance to report an error.
func (p *Parser) synchronizeDecl() {
	for !p.at(token.Eof) {
		if p.at(token.Semicolon) {
			p.advance()
			break
		}
		if p.peek().IsDeclarationOpener() {
			break
		}
		p.advance()
	}
	p.ctx.Synchronized()
}
