package parser

import (
	"loom/internal/ast"
	"loom/internal/diag"
	"loom/internal/source"
	"loom/internal/token"
)

func (p *Parser) parseTraitDecl(startSpan source.Span, pub bool) (ast.DeclID, bool) {
	p.advance() // 'trait'
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected trait name")
	if !ok {
		return ast.NoDeclID, false
	}
	name := p.interner.Intern(nameTok.Text)

	generics, ok := p.parseGenerics()
	if !ok {
		return ast.NoDeclID, false
	}

	var superTraits []ast.ExprID
	if p.at(token.Colon) {
		p.advance()
		for {
			t, ok := p.parseType()
			if !ok {
				return ast.NoDeclID, false
			}
			superTraits = append(superTraits, t)
			if !p.at(token.Plus) {
				break
			}
			p.advance()
		}
	}

	if _, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' to open trait body"); !ok {
		return ast.NoDeclID, false
	}

	var members []ast.DeclID
	for !p.at(token.RBrace) && !p.at(token.Eof) {
		memberStart := p.peek().Span
		memberPub := false
		if p.at(token.KwPub) {
			p.advance()
			memberPub = true
		}
		if !p.at(token.KwFn) {
			p.errorHere(diag.SynExpectStatement, "expected a function signature in trait body")
			p.synchronizeMember()
			continue
		}
		member, ok := p.parseFnDecl(memberStart, memberPub)
		if !ok {
			p.synchronizeMember()
			continue
		}
		members = append(members, member)
	}

	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close trait body")
	if !ok {
		return ast.NoDeclID, false
	}

	return p.mod.Decl.NewTrait(startSpan.Cover(closeTok.Span), ast.DeclTraitData{
		Name:        name,
		Generics:    generics,
		SuperTraits: superTraits,
		Members:     members,
		Pub:         pub,
	}), true
}

// parseImplDecl parses `impl [<G>] Target { ... }` or
// `impl [<G>] Trait for Target { ... }`, rejecting a nested 'impl' inside
// the body directly rather than deferring that check to a later pass.
func (p *Parser) parseImplDecl(startSpan source.Span) (ast.DeclID, bool) {
	p.advance() // 'impl'

	generics, ok := p.parseGenerics()
	if !ok {
		return ast.NoDeclID, false
	}

	first, ok := p.parseType()
	if !ok {
		return ast.NoDeclID, false
	}

	target := first
	trait := ast.NoExprID
	if p.at(token.KwFor) {
		p.advance()
		t, ok := p.parseType()
		if !ok {
			return ast.NoDeclID, false
		}
		trait = first
		target = t
	}

	if _, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' to open impl body"); !ok {
		return ast.NoDeclID, false
	}

	var members []ast.DeclID
	for !p.at(token.RBrace) && !p.at(token.Eof) {
		if p.at(token.KwImpl) {
			p.errorAt(diag.SynNestedImpl, p.peek().Span, "'impl' cannot be nested inside another 'impl'")
			p.synchronizeMember()
			continue
		}
		member, ok := p.parseTopLevelDecl()
		if !ok {
			p.synchronizeMember()
			continue
		}
		members = append(members, member)
	}

	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close impl body")
	if !ok {
		return ast.NoDeclID, false
	}

	return p.mod.Decl.NewImpl(startSpan.Cover(closeTok.Span), ast.DeclImplData{
		Generics: generics,
		Target:   target,
		Trait:    trait,
		Members:  members,
	}), true
}
