package parser

import (
	"loom/internal/ast"
	"loom/internal/diag"
	"loom/internal/source"
	"loom/internal/token"
)

// parseUseDecl parses a `use` path: an optional run of leading '.' or '..'
// tokens marking relativity (each '..' counts as two), a dotted segment chain, and a trailing
// group ('.{a, b as c}'), glob ('.*') or alias ('as Name') form.
func (p *Parser) parseUseDecl(startSpan source.Span, pub bool) (ast.DeclID, bool) {
	p.advance() // 'use'

	relative := 0
	for p.atAny(token.Dot, token.DotDot) {
		if p.advance().Kind == token.DotDot {
			relative += 2
		} else {
			relative++
		}
	}

	var segments []source.SymbolID
	for {
		nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a path segment in use declaration")
		if !ok {
			return ast.NoDeclID, false
		}
		segments = append(segments, p.interner.Intern(nameTok.Text))

		if !p.at(token.Dot) {
			break
		}
		if p.peekAt(1).Kind == token.LBrace || p.peekAt(1).Kind == token.Star {
			p.advance()
			break
		}
		p.advance()
	}

	var group []ast.UseGroupItem
	glob := false
	alias := source.NoSymbolID

	switch p.peek().Kind {
	case token.LBrace:
		p.advance()
		for !p.at(token.RBrace) && !p.at(token.Eof) {
			item, ok := p.parseUseGroupItem()
			if !ok {
				return ast.NoDeclID, false
			}
			group = append(group, item)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
			if p.at(token.RBrace) {
				break
			}
		}
		if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close use group"); !ok {
			return ast.NoDeclID, false
		}
	case token.Star, token.DotStar:
		p.advance()
		glob = true
	case token.KwAs:
		p.advance()
		aliasTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected an alias name after 'as'")
		if !ok {
			return ast.NoDeclID, false
		}
		alias = p.interner.Intern(aliasTok.Text)
	}

	semiTok, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after use declaration")
	if !ok {
		return ast.NoDeclID, false
	}

	return p.mod.Decl.NewUse(startSpan.Cover(semiTok.Span), ast.DeclUseData{
		Pub:      pub,
		Relative: relative,
		Segments: segments,
		Group:    group,
		Glob:     glob,
		Alias:    alias,
	}), true
}

func (p *Parser) parseUseGroupItem() (ast.UseGroupItem, bool) {
	var segments []source.SymbolID
	for {
		nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a path segment in use group")
		if !ok {
			return ast.UseGroupItem{}, false
		}
		segments = append(segments, p.interner.Intern(nameTok.Text))
		if !p.at(token.Dot) {
			break
		}
		p.advance()
	}

	alias := source.NoSymbolID
	if p.at(token.KwAs) {
		p.advance()
		aliasTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected an alias name after 'as'")
		if !ok {
			return ast.UseGroupItem{}, false
		}
		alias = p.interner.Intern(aliasTok.Text)
	}

	return ast.UseGroupItem{Segments: segments, Alias: alias}, true
}
