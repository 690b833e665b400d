package parser

import (
	"loom/internal/ast"
	"loom/internal/diag"
	"loom/internal/source"
	"loom/internal/token"
)

// parseTopLevelDecl parses one declaration, at the top level or nested
// inside a struct, trait, impl or block body. An optional leading 'pub'
// is consumed before the dispatch on the declaration's own keyword.
func (p *Parser) parseTopLevelDecl() (ast.DeclID, bool) {
	startSpan := p.peek().Span
	pub := false
	if p.at(token.KwPub) {
		p.advance()
		pub = true
	}

	switch p.peek().Kind {
	case token.KwFn:
		return p.parseFnDecl(startSpan, pub)
	case token.KwStruct:
		return p.parseStructDecl(startSpan, pub)
	case token.KwUnion:
		return p.parseUnionDecl(startSpan, pub)
	case token.KwEnum:
		return p.parseEnumDecl(startSpan, pub)
	case token.KwTrait:
		return p.parseTraitDecl(startSpan, pub)
	case token.KwImpl:
		if pub {
			p.errorAt(diag.SynUnexpectedToken, startSpan, "'impl' cannot be 'pub'")
		}
		return p.parseImplDecl(startSpan)
	case token.KwMacro:
		if pub {
			p.errorAt(diag.SynUnexpectedToken, startSpan, "'macro' cannot be 'pub'")
		}
		return p.parseMacroDecl(startSpan)
	case token.KwUse:
		return p.parseUseDecl(startSpan, pub)
	case token.KwExtern:
		if pub {
			p.errorAt(diag.SynUnexpectedToken, startSpan, "'extern' cannot be 'pub'")
		}
		return p.parseExternDecl(startSpan)
	case token.KwType:
		return p.parseTypeAliasDecl(startSpan, pub)
	case token.KwConst:
		p.advance()
		return p.parseGlobalVarBody(startSpan, pub, ast.GlobalConst)
	case token.KwStatic:
		return p.parseStaticDecl(startSpan, pub)
	default:
		p.errorHere(diag.SynExpectStatement, "expected a declaration")
		return ast.NoDeclID, false
	}
}

// parseGenerics parses an optional '<Name [: Bound + Bound...], ...>'
// generic parameter list, returning nil, true when there is no '<'.
func (p *Parser) parseGenerics() ([]ast.TypeParam, bool) {
	if !p.at(token.Lt) {
		return nil, true
	}
	p.advance()

	var params []ast.TypeParam
	if !p.at(token.Gt) {
		for {
			nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected generic parameter name")
			if !ok {
				return nil, false
			}
			name := p.interner.Intern(nameTok.Text)

			var bounds []ast.ExprID
			if p.at(token.Colon) {
				p.advance()
				for {
					bound, ok := p.parseType()
					if !ok {
						return nil, false
					}
					bounds = append(bounds, bound)
					if !p.at(token.Plus) {
						break
					}
					p.advance()
				}
			}

			params = append(params, ast.TypeParam{Name: name, Bounds: bounds})
			if !p.at(token.Comma) {
				break
			}
			p.advance()
			if p.at(token.Gt) {
				break
			}
		}
	}

	if _, ok := p.expect(token.Gt, diag.SynUnexpectedToken, "expected '>' to close generic parameter list"); !ok {
		return nil, false
	}
	return params, true
}

func (p *Parser) parseFnDecl(startSpan source.Span, pub bool) (ast.DeclID, bool) {
	p.advance() // 'fn'
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected function name")
	if !ok {
		return ast.NoDeclID, false
	}
	name := p.interner.Intern(nameTok.Text)

	generics, ok := p.parseGenerics()
	if !ok {
		return ast.NoDeclID, false
	}

	params, variadic, ok := p.parseFnParams()
	if !ok {
		return ast.NoDeclID, false
	}

	returnType := ast.NoExprID
	if !p.at(token.Semicolon) && !p.at(token.LBrace) {
		rt, ok := p.parseType()
		if !ok {
			return ast.NoDeclID, false
		}
		returnType = rt
	}

	body := ast.NoExprID
	var endSpan source.Span
	if p.at(token.LBrace) {
		b, ok := p.parseBlock()
		if !ok {
			return ast.NoDeclID, false
		}
		body = b
		endSpan = p.exprSpan(body)
	} else {
		semiTok, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' or a body after function signature")
		if !ok {
			return ast.NoDeclID, false
		}
		endSpan = semiTok.Span
	}

	return p.mod.Decl.NewFn(startSpan.Cover(endSpan), ast.DeclFnData{
		Name:       name,
		Generics:   generics,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
		Pub:        pub,
		Variadic:   variadic,
	}), true
}

func (p *Parser) parseFnParams() ([]ast.FnParam, bool, bool) {
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' to start parameter list"); !ok {
		return nil, false, false
	}

	var params []ast.FnParam
	variadic := false

	if !p.at(token.RParen) {
		for {
			if p.at(token.DotDotDot) {
				p.advance()
				variadic = true
				break
			}

			param, ok := p.parseFnParam()
			if !ok {
				return nil, false, false
			}
			params = append(params, param)

			if !p.at(token.Comma) {
				break
			}
			p.advance()
			if p.at(token.RParen) {
				break
			}
		}
	}

	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close parameter list"); !ok {
		return nil, false, false
	}
	return params, variadic, true
}

// parseFnParam parses one parameter: a self receiver in one of its three
// forms (self, &self, &mut self), or a name: Type parameter with an
// optional 'as' binding-cast marker and an optional default value.
func (p *Parser) parseFnParam() (ast.FnParam, bool) {
	if p.at(token.KwSelf) {
		p.advance()
		return ast.FnParam{IsSelf: true}, true
	}
	if p.at(token.Amp) {
		isSelfRef := p.peekAt(1).Kind == token.KwSelf ||
			(p.peekAt(1).Kind == token.KwMut && p.peekAt(2).Kind == token.KwSelf)
		if isSelfRef {
			p.advance()
			mut := false
			if p.at(token.KwMut) {
				p.advance()
				mut = true
			}
			p.advance() // 'self'
			return ast.FnParam{IsSelf: true, SelfRef: true, SelfMut: mut}, true
		}
	}

	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected parameter name")
	if !ok {
		return ast.FnParam{}, false
	}
	name := p.interner.Intern(nameTok.Text)

	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after parameter name"); !ok {
		return ast.FnParam{}, false
	}

	bindingCast := false
	if p.at(token.KwAs) {
		p.advance()
		bindingCast = true
	}

	typ, ok := p.parseType()
	if !ok {
		return ast.FnParam{}, false
	}

	def := ast.NoExprID
	if p.at(token.Assign) {
		p.advance()
		d, ok := p.parseExpr()
		if !ok {
			return ast.FnParam{}, false
		}
		def = d
	}

	return ast.FnParam{Name: name, Type: typ, Default: def, BindingCast: bindingCast}, true
}

func (p *Parser) parseTypeAliasDecl(startSpan source.Span, pub bool) (ast.DeclID, bool) {
	p.advance() // 'type'
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected type alias name")
	if !ok {
		return ast.NoDeclID, false
	}
	name := p.interner.Intern(nameTok.Text)

	generics, ok := p.parseGenerics()
	if !ok {
		return ast.NoDeclID, false
	}

	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' in type alias"); !ok {
		return ast.NoDeclID, false
	}

	target, ok := p.parseType()
	if !ok {
		return ast.NoDeclID, false
	}

	semiTok, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after type alias")
	if !ok {
		return ast.NoDeclID, false
	}

	return p.mod.Decl.NewTypeAlias(startSpan.Cover(semiTok.Span), ast.DeclTypeAliasData{
		Name:     name,
		Generics: generics,
		Target:   target,
		Pub:      pub,
	}), true
}

func (p *Parser) parseStaticDecl(startSpan source.Span, pub bool) (ast.DeclID, bool) {
	p.advance() // 'static'
	kind := ast.GlobalStatic
	if p.at(token.KwMut) {
		p.advance()
		kind = ast.GlobalStaticMut
	}
	return p.parseGlobalVarBody(startSpan, pub, kind)
}

func (p *Parser) parseGlobalVarBody(startSpan source.Span, pub bool, kind ast.GlobalVarKind) (ast.DeclID, bool) {
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a name")
	if !ok {
		return ast.NoDeclID, false
	}
	name := p.interner.Intern(nameTok.Text)

	typ := ast.NoExprID
	if p.at(token.Colon) {
		p.advance()
		t, ok := p.parseType()
		if !ok {
			return ast.NoDeclID, false
		}
		typ = t
	}

	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' in global binding"); !ok {
		return ast.NoDeclID, false
	}
	value, ok := p.parseExpr()
	if !ok {
		return ast.NoDeclID, false
	}

	semiTok, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after global binding")
	if !ok {
		return ast.NoDeclID, false
	}

	return p.mod.Decl.NewGlobalVar(startSpan.Cover(semiTok.Span), ast.DeclGlobalVarData{
		Name:  name,
		Kind:  kind,
		Type:  typ,
		Value: value,
		Pub:   pub,
	}), true
}
