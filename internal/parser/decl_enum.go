package parser

import (
	"loom/internal/ast"
	"loom/internal/diag"
	"loom/internal/source"
	"loom/internal/token"
)

func (p *Parser) parseEnumDecl(startSpan source.Span, pub bool) (ast.DeclID, bool) {
	p.advance() // 'enum'
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected enum name")
	if !ok {
		return ast.NoDeclID, false
	}
	name := p.interner.Intern(nameTok.Text)

	generics, ok := p.parseGenerics()
	if !ok {
		return ast.NoDeclID, false
	}

	underlying := ast.NoExprID
	if p.at(token.Colon) {
		p.advance()
		u, ok := p.parseType()
		if !ok {
			return ast.NoDeclID, false
		}
		underlying = u
	}

	if _, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' to open enum body"); !ok {
		return ast.NoDeclID, false
	}

	var variants []ast.EnumVariant
	for !p.at(token.RBrace) && !p.at(token.Eof) {
		variant, ok := p.parseEnumVariant()
		if !ok {
			p.synchronizeMember()
			continue
		}
		variants = append(variants, variant)
		if p.at(token.Comma) {
			p.advance()
		}
	}

	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close enum body")
	if !ok {
		return ast.NoDeclID, false
	}

	return p.mod.Decl.NewEnum(startSpan.Cover(closeTok.Span), ast.DeclEnumData{
		Name:       name,
		Generics:   generics,
		Underlying: underlying,
		Variants:   variants,
		Pub:        pub,
	}), true
}

// parseEnumVariant dispatches on what follows the variant name: '=' for an
// explicit tag value, '(' for a tuple variant, '{' for a struct variant,
// and a unit variant otherwise.
func (p *Parser) parseEnumVariant() (ast.EnumVariant, bool) {
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected variant name")
	if !ok {
		return ast.EnumVariant{}, false
	}
	name := p.interner.Intern(nameTok.Text)

	switch {
	case p.at(token.Assign):
		p.advance()
		tag, ok := p.parseExpr()
		if !ok {
			return ast.EnumVariant{}, false
		}
		return ast.EnumVariant{Name: name, Kind: ast.EnumVariantTag, Tag: tag}, true

	case p.at(token.LParen):
		p.advance()
		var types []ast.ExprID
		if !p.at(token.RParen) {
			for {
				t, ok := p.parseType()
				if !ok {
					return ast.EnumVariant{}, false
				}
				types = append(types, t)
				if !p.at(token.Comma) {
					break
				}
				p.advance()
				if p.at(token.RParen) {
					break
				}
			}
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close tuple variant"); !ok {
			return ast.EnumVariant{}, false
		}
		return ast.EnumVariant{Name: name, Kind: ast.EnumVariantTuple, TupleTypes: types}, true

	case p.at(token.LBrace):
		p.advance()
		var fields []ast.StructField
		for !p.at(token.RBrace) && !p.at(token.Eof) {
			field, ok := p.parseStructField()
			if !ok {
				return ast.EnumVariant{}, false
			}
			fields = append(fields, field)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
		if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close struct variant"); !ok {
			return ast.EnumVariant{}, false
		}
		return ast.EnumVariant{Name: name, Kind: ast.EnumVariantStruct, Fields: fields}, true

	default:
		return ast.EnumVariant{Name: name, Kind: ast.EnumVariantUnit}, true
	}
}
