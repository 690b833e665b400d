package parser

import (
	"loom/internal/ast"
	"loom/internal/diag"
	"loom/internal/source"
	"loom/internal/token"
)

// parsePattern parses one pattern: a wildcard, a literal or literal range,
// a (possibly mut) binding, a tuple, or a type-qualified struct/enum
// pattern. Which of the latter two a leading identifier starts is decided
// by what follows it ('{' opens a struct pattern, '(' an enum-tuple
// pattern, a dotted path with neither is a qualified enum pattern, and a
// lone identifier with neither is a plain binding).
func (p *Parser) parsePattern() (ast.PatternID, bool) {
	switch p.peek().Kind {
	case token.Underscore:
		tok := p.advance()
		return p.mod.Patterns.NewWildcard(tok.Span), true

	case token.KwMut:
		mutTok := p.advance()
		nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected identifier after 'mut'")
		if !ok {
			return ast.NoPatternID, false
		}
		name := p.interner.Intern(nameTok.Text)
		return p.mod.Patterns.NewIdent(mutTok.Span.Cover(nameTok.Span), name, true), true

	case token.LParen:
		return p.parseTuplePattern()

	case token.Dot:
		return p.parseDotVariantPattern()

	case token.Ident:
		return p.parsePatternFromIdent()

	case token.IntLit, token.FloatLit, token.CharLit, token.StringLit,
		token.KwTrue, token.KwFalse, token.KwUndef, token.KwNull, token.Minus:
		return p.parseLiteralPattern()

	default:
		p.errorHere(diag.SynExpectExpression, "expected pattern")
		return ast.NoPatternID, false
	}
}

// parsePatternFromIdent disambiguates an identifier-led pattern. A bare
// identifier with nothing special following is a binding; a dotted path
// (Type.Variant, with or without '(args)') or a single name followed by '('
// is the enum form;
// '{' after either opens a struct pattern.
func (p *Parser) parsePatternFromIdent() (ast.PatternID, bool) {
	startTok := p.advance()
	startName := p.interner.Intern(startTok.Text)
	pathSpan := startTok.Span

	typ := ast.NoExprID
	variant := startName
	pathExpr := p.mod.Exprs.NewIdent(startTok.Span, startName)
	hasSegments := false

	for p.at(token.Dot) && p.peekAt(1).Kind == token.Ident {
		hasSegments = true
		p.advance()
		segTok := p.advance()
		variant = p.interner.Intern(segTok.Text)
		pathSpan = pathSpan.Cover(segTok.Span)
		typ = pathExpr
		pathExpr = p.mod.Exprs.NewMember(pathSpan, pathExpr, variant)
	}

	switch p.peek().Kind {
	case token.LBrace:
		return p.parseStructPatternBody(pathExpr, pathSpan)
	case token.LParen:
		return p.parseEnumArgsPattern(typ, variant, pathSpan)
	default:
		if hasSegments {
			return p.mod.Patterns.NewEnum(pathSpan, typ, variant, nil), true
		}
		return p.mod.Patterns.NewIdent(pathSpan, startName, false), true
	}
}

// parseDotVariantPattern parses the unqualified '.Variant' or
// '.Variant(args...)' enum pattern form.
func (p *Parser) parseDotVariantPattern() (ast.PatternID, bool) {
	dotTok := p.advance()
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected variant name after '.'")
	if !ok {
		return ast.NoPatternID, false
	}
	variant := p.interner.Intern(nameTok.Text)
	span := dotTok.Span.Cover(nameTok.Span)

	if !p.at(token.LParen) {
		return p.mod.Patterns.NewEnum(span, ast.NoExprID, variant, nil), true
	}
	return p.parseEnumArgsPattern(ast.NoExprID, variant, span)
}

// parseEnumArgsPattern parses the optional '(pat, ...)' argument list that
// follows an enum variant name, already identified as typ/variant/startSpan.
func (p *Parser) parseEnumArgsPattern(typ ast.ExprID, variant source.SymbolID, startSpan source.Span) (ast.PatternID, bool) {
	if !p.at(token.LParen) {
		return p.mod.Patterns.NewEnum(startSpan, typ, variant, nil), true
	}
	p.advance()

	var args []ast.PatternID
	if !p.at(token.RParen) {
		for {
			arg, ok := p.parsePattern()
			if !ok {
				return ast.NoPatternID, false
			}
			args = append(args, arg)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
			if p.at(token.RParen) {
				break
			}
		}
	}
	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close enum variant pattern")
	if !ok {
		return ast.NoPatternID, false
	}
	return p.mod.Patterns.NewEnum(startSpan.Cover(closeTok.Span), typ, variant, args), true
}

func (p *Parser) parseTuplePattern() (ast.PatternID, bool) {
	openTok := p.advance()
	var elems []ast.PatternID
	if !p.at(token.RParen) {
		for {
			elem, ok := p.parsePattern()
			if !ok {
				return ast.NoPatternID, false
			}
			elems = append(elems, elem)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
			if p.at(token.RParen) {
				break
			}
		}
	}
	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close tuple pattern")
	if !ok {
		return ast.NoPatternID, false
	}
	return p.mod.Patterns.NewTuple(openTok.Span.Cover(closeTok.Span), elems), true
}

// parseStructPatternBody parses the '{ field: pat, ..., .. }' body of a
// struct pattern, given the already-parsed qualifying type path typ.
func (p *Parser) parseStructPatternBody(typ ast.ExprID, startSpan source.Span) (ast.PatternID, bool) {
	p.advance() // '{'

	var fields []ast.FieldPattern
	hasRest := false

	for !p.at(token.RBrace) && !p.at(token.Eof) {
		if p.at(token.DotDot) {
			p.advance()
			hasRest = true
			break
		}

		mut := false
		if p.at(token.KwMut) {
			p.advance()
			mut = true
		}
		nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected field name in struct pattern")
		if !ok {
			return ast.NoPatternID, false
		}
		name := p.interner.Intern(nameTok.Text)

		if p.at(token.Colon) {
			p.advance()
			fieldPat, ok := p.parsePattern()
			if !ok {
				return ast.NoPatternID, false
			}
			fields = append(fields, ast.FieldPattern{Name: name, Pattern: fieldPat, Mut: mut})
		} else {
			shorthand := p.mod.Patterns.NewIdent(nameTok.Span, name, mut)
			fields = append(fields, ast.FieldPattern{Name: name, Pattern: shorthand, Mut: mut, Shorthand: true})
		}

		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}

	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close struct pattern")
	if !ok {
		return ast.NoPatternID, false
	}
	return p.mod.Patterns.NewStruct(startSpan.Cover(closeTok.Span), typ, fields, hasRest), true
}

func (p *Parser) parseLiteralPattern() (ast.PatternID, bool) {
	low, ok := p.parseLiteralOperand()
	if !ok {
		return ast.NoPatternID, false
	}
	lowSpan := p.mod.Exprs.Get(low).Span

	if inclusive, isRange := isRangeOp(p.peek().Kind); isRange {
		p.advance()
		high, ok := p.parseLiteralOperand()
		if !ok {
			return ast.NoPatternID, false
		}
		highSpan := p.mod.Exprs.Get(high).Span
		return p.mod.Patterns.NewLiteralRange(lowSpan.Cover(highSpan), low, high, inclusive), true
	}

	return p.mod.Patterns.NewLiteral(lowSpan, low), true
}

// parseLiteralOperand parses a single literal, including an optional
// leading '-' for negative numeric bounds, as used by pattern literals and
// literal ranges.
func (p *Parser) parseLiteralOperand() (ast.ExprID, bool) {
	if p.at(token.Minus) {
		minusTok := p.advance()
		operand, ok := p.parseLiteralOperand()
		if !ok {
			return ast.NoExprID, false
		}
		span := minusTok.Span.Cover(p.mod.Exprs.Get(operand).Span)
		return p.mod.Exprs.NewUnary(span, ast.UnaryNeg, operand), true
	}
	return p.parseLiteralExpr()
}
