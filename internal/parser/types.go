package parser

import (
	"loom/internal/ast"
	"loom/internal/diag"
	"loom/internal/source"
	"loom/internal/token"
)

// parseType parses a type expression, then a trailing '..'/'..=' range
// suffix if one follows (spec §4.4.4's type-level range T .. T / T ..= T),
// reusing the same ExprRange node value expressions use since types are
// expressions in this arena.
func (p *Parser) parseType() (ast.ExprID, bool) {
	low, ok := p.parseTypeNoRange()
	if !ok {
		return ast.NoExprID, false
	}
	inclusive, isRange := isRangeOp(p.peek().Kind)
	if !isRange {
		return low, true
	}
	p.advance()
	high, ok := p.parseTypeNoRange()
	if !ok {
		return ast.NoExprID, false
	}
	span := p.mod.Exprs.Get(low).Span.Cover(p.mod.Exprs.Get(high).Span)
	return p.mod.Exprs.NewRange(span, low, high, inclusive), true
}

// parseTypeNoRange parses a type expression without its optional trailing
// range suffix. Types are expressions: pointer, slice, array, optional,
// function and never-type syntax are allocated into the same Exprs arena
// as value expressions, via a dedicated entry point that never falls into
// value-only productions like binary operators or calls.
//
// Every type constructor is a prefix ('&', '&mut', '*', '?', '[]', '[N]')
// written before the type it wraps, so '?[]i32' is an optional slice of
// i32.
func (p *Parser) parseTypeNoRange() (ast.ExprID, bool) {
	switch p.peek().Kind {
	case token.Amp:
		ampTok := p.advance()
		mut := false
		if p.at(token.KwMut) {
			p.advance()
			mut = true
		}
		inner, ok := p.parseType()
		if !ok {
			return ast.NoExprID, false
		}
		span := ampTok.Span.Cover(p.mod.Exprs.Get(inner).Span)
		return p.mod.Exprs.NewAddressOf(span, inner, mut), true

	case token.Star:
		starTok := p.advance()
		mut := false
		if p.at(token.KwMut) {
			p.advance()
			mut = true
		}
		inner, ok := p.parseType()
		if !ok {
			return ast.NoExprID, false
		}
		span := starTok.Span.Cover(p.mod.Exprs.Get(inner).Span)
		return p.mod.Exprs.NewRawPointerType(span, inner, mut), true

	case token.Question:
		qTok := p.advance()
		inner, ok := p.parseType()
		if !ok {
			return ast.NoExprID, false
		}
		span := qTok.Span.Cover(p.mod.Exprs.Get(inner).Span)
		return p.mod.Exprs.NewOptionalType(span, inner), true

	case token.Bang:
		tok := p.advance()
		return p.mod.Exprs.NewNeverType(tok.Span), true

	case token.LBracket:
		return p.parseArrayOrSliceType()

	case token.KwFn:
		return p.parseFnType()

	default:
		return p.parseTypePrimary()
	}
}

func (p *Parser) parseArrayOrSliceType() (ast.ExprID, bool) {
	openTok := p.advance()

	if p.at(token.RBracket) {
		closeTok := p.advance()
		elem, ok := p.parseType()
		if !ok {
			return ast.NoExprID, false
		}
		span := openTok.Span.Cover(closeTok.Span).Cover(p.mod.Exprs.Get(elem).Span)
		return p.mod.Exprs.NewSliceType(span, elem), true
	}

	size, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after array size"); !ok {
		return ast.NoExprID, false
	}
	elem, ok := p.parseType()
	if !ok {
		return ast.NoExprID, false
	}
	span := openTok.Span.Cover(p.mod.Exprs.Get(elem).Span)
	return p.mod.Exprs.NewArrayType(span, elem, size), true
}

func (p *Parser) parseFnType() (ast.ExprID, bool) {
	fnTok := p.advance()
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'fn' in function type"); !ok {
		return ast.NoExprID, false
	}

	var params []ast.ExprID
	if !p.at(token.RParen) {
		for {
			param, ok := p.parseType()
			if !ok {
				return ast.NoExprID, false
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
	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close function type parameters")
	if !ok {
		return ast.NoExprID, false
	}

	ret, ok := p.parseType()
	if !ok {
		return ast.NoExprID, false
	}
	span := fnTok.Span.Cover(closeTok.Span).Cover(p.mod.Exprs.Get(ret).Span)
	return p.mod.Exprs.NewFnType(span, params, ret), true
}

// parseTypePrimary parses a path type (Ident('.'Ident)*), optionally
// followed by a '<...>' generic-argument list, with no turbofish needed
// since '<' unambiguously opens generic arguments in type position.
func (p *Parser) parseTypePrimary() (ast.ExprID, bool) {
	if p.at(token.KwSelfType) {
		tok := p.advance()
		name := p.interner.Intern(tok.Text)
		expr := p.mod.Exprs.NewIdent(tok.Span, name)
		return p.parseTypeGenericArgsAndPath(expr, tok.Span)
	}

	nameTok, ok := p.expect(token.Ident, diag.SynExpectType, "expected type")
	if !ok {
		return ast.NoExprID, false
	}
	name := p.interner.Intern(nameTok.Text)
	expr := p.mod.Exprs.NewIdent(nameTok.Span, name)
	span := nameTok.Span

	for p.at(token.Dot) && p.peekAt(1).Kind == token.Ident {
		p.advance()
		segTok := p.advance()
		segName := p.interner.Intern(segTok.Text)
		span = span.Cover(segTok.Span)
		expr = p.mod.Exprs.NewMember(span, expr, segName)
	}

	return p.parseTypeGenericArgsAndPath(expr, span)
}

func (p *Parser) parseTypeGenericArgsAndPath(base ast.ExprID, span source.Span) (ast.ExprID, bool) {
	if !p.at(token.Lt) {
		return base, true
	}
	p.advance()

	var args []ast.ExprID
	if !p.at(token.Gt) {
		for {
			arg, ok := p.parseType()
			if !ok {
				return ast.NoExprID, false
			}
			args = append(args, arg)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
			if p.at(token.Gt) {
				break
			}
		}
	}
	closeTok, ok := p.expect(token.Gt, diag.SynUnexpectedToken, "expected '>' to close generic argument list")
	if !ok {
		return ast.NoExprID, false
	}
	return p.mod.Exprs.NewGenericInst(span.Cover(closeTok.Span), base, args), true
}
