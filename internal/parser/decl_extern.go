package parser

import (
	"loom/internal/ast"
	"loom/internal/diag"
	"loom/internal/source"
	"loom/internal/token"
)

// parseExternDecl parses an `extern { ... }` block of foreign fn and static
// declarations. A function member is flagged, but not rejected outright,
// when it carries a body — one bad member should not make the whole block
// unusable.
func (p *Parser) parseExternDecl(startSpan source.Span) (ast.DeclID, bool) {
	p.advance() // 'extern'

	if _, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' to open extern block"); !ok {
		return ast.NoDeclID, false
	}

	var members []ast.DeclID
	for !p.at(token.RBrace) && !p.at(token.Eof) {
		memberStart := p.peek().Span
		switch p.peek().Kind {
		case token.KwFn:
			member, ok := p.parseFnDecl(memberStart, false)
			if !ok {
				p.synchronizeMember()
				continue
			}
			if fn, _ := p.mod.Decl.Fn(member); fn.Body.IsValid() {
				p.errorAt(diag.SynInvalidExternMember, memberStart, "extern function cannot have a body")
			}
			members = append(members, member)
		case token.KwStatic:
			member, ok := p.parseExternStaticDecl(memberStart)
			if !ok {
				p.synchronizeMember()
				continue
			}
			members = append(members, member)
		default:
			p.errorAt(diag.SynInvalidExternMember, memberStart, "expected 'fn' or 'static' inside 'extern' block")
			p.synchronizeMember()
		}
	}

	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close extern block")
	if !ok {
		return ast.NoDeclID, false
	}

	return p.mod.Decl.NewExtern(startSpan.Cover(closeTok.Span), members), true
}

// parseExternStaticDecl parses a foreign `static [mut] name: Type;` member.
// Unlike an ordinary static binding, an extern static never carries an
// initializer: its value comes from outside the module.
func (p *Parser) parseExternStaticDecl(startSpan source.Span) (ast.DeclID, bool) {
	p.advance() // 'static'
	kind := ast.GlobalStatic
	if p.at(token.KwMut) {
		p.advance()
		kind = ast.GlobalStaticMut
	}

	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a name")
	if !ok {
		return ast.NoDeclID, false
	}
	name := p.interner.Intern(nameTok.Text)

	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after extern static name"); !ok {
		return ast.NoDeclID, false
	}
	typ, ok := p.parseType()
	if !ok {
		return ast.NoDeclID, false
	}

	semiTok, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after extern static declaration")
	if !ok {
		return ast.NoDeclID, false
	}

	return p.mod.Decl.NewGlobalVar(startSpan.Cover(semiTok.Span), ast.DeclGlobalVarData{
		Name: name,
		Kind: kind,
		Type: typ,
	}), true
}
