package parser

import (
	"loom/internal/ast"
	"loom/internal/diag"
	"loom/internal/source"
	"loom/internal/token"
)

func (p *Parser) parseStructDecl(startSpan source.Span, pub bool) (ast.DeclID, bool) {
	p.advance() // 'struct'
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected struct name")
	if !ok {
		return ast.NoDeclID, false
	}
	name := p.interner.Intern(nameTok.Text)

	generics, ok := p.parseGenerics()
	if !ok {
		return ast.NoDeclID, false
	}

	base := ast.NoExprID
	if p.at(token.Colon) {
		p.advance()
		b, ok := p.parseType()
		if !ok {
			return ast.NoDeclID, false
		}
		base = b
	}

	if _, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' to open struct body"); !ok {
		return ast.NoDeclID, false
	}

	var fields []ast.StructField
	var nested []ast.DeclID
	for !p.at(token.RBrace) && !p.at(token.Eof) {
		if p.atMemberDeclStart() {
			decl, ok := p.parseTopLevelDecl()
			if !ok {
				p.synchronizeMember()
				continue
			}
			nested = append(nested, decl)
			continue
		}
		field, ok := p.parseStructField()
		if !ok {
			p.synchronizeMember()
			continue
		}
		fields = append(fields, field)
		if p.at(token.Comma) {
			p.advance()
		}
	}

	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close struct body")
	if !ok {
		return ast.NoDeclID, false
	}

	return p.mod.Decl.NewStruct(startSpan.Cover(closeTok.Span), ast.DeclStructData{
		Name:     name,
		Generics: generics,
		Base:     base,
		Fields:   fields,
		Nested:   nested,
		Pub:      pub,
	}), true
}

func (p *Parser) parseUnionDecl(startSpan source.Span, pub bool) (ast.DeclID, bool) {
	p.advance() // 'union'
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected union name")
	if !ok {
		return ast.NoDeclID, false
	}
	name := p.interner.Intern(nameTok.Text)

	generics, ok := p.parseGenerics()
	if !ok {
		return ast.NoDeclID, false
	}

	if _, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' to open union body"); !ok {
		return ast.NoDeclID, false
	}

	var fields []ast.StructField
	for !p.at(token.RBrace) && !p.at(token.Eof) {
		field, ok := p.parseStructField()
		if !ok {
			p.synchronizeMember()
			continue
		}
		fields = append(fields, field)
		if p.at(token.Comma) {
			p.advance()
		}
	}

	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close union body")
	if !ok {
		return ast.NoDeclID, false
	}

	return p.mod.Decl.NewUnion(startSpan.Cover(closeTok.Span), ast.DeclUnionData{
		Name:     name,
		Generics: generics,
		Fields:   fields,
		Pub:      pub,
	}), true
}

// atMemberDeclStart looks past an optional leading 'pub' to decide whether
// a struct/union body's next member is a nested declaration rather than a
// plain field, since both can start with 'pub'.
func (p *Parser) atMemberDeclStart() bool {
	i := 0
	if p.peekAt(0).Kind == token.KwPub {
		i = 1
	}
	switch p.peekAt(i).Kind {
	case token.KwFn, token.KwStruct, token.KwEnum, token.KwUnion, token.KwTrait,
		token.KwImpl, token.KwMacro, token.KwUse, token.KwType, token.KwConst, token.KwStatic:
		return true
	default:
		return false
	}
}

func (p *Parser) synchronizeMember() {
	for !p.at(token.Eof) && !p.at(token.RBrace) {
		if p.at(token.Comma) {
			p.advance()
			break
		}
		p.advance()
	}
	p.ctx.Synchronized()
}

func (p *Parser) parseStructField() (ast.StructField, bool) {
	pub := false
	if p.at(token.KwPub) {
		p.advance()
		pub = true
	}

	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected field name")
	if !ok {
		return ast.StructField{}, false
	}
	name := p.interner.Intern(nameTok.Text)

	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after field name"); !ok {
		return ast.StructField{}, false
	}
	typ, ok := p.parseType()
	if !ok {
		return ast.StructField{}, false
	}

	def := ast.NoExprID
	if p.at(token.Assign) {
		p.advance()
		d, ok := p.parseExpr()
		if !ok {
			return ast.StructField{}, false
		}
		def = d
	}

	return ast.StructField{Name: name, Type: typ, Default: def, Pub: pub}, true
}
