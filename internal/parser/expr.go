package parser

import (
	"loom/internal/ast"
	"loom/internal/diag"
	"loom/internal/source"
	"loom/internal/token"
)

// exprSpan returns the span of an already-allocated expression.
func (p *Parser) exprSpan(id ast.ExprID) source.Span {
	return p.mod.Exprs.Get(id).Span
}

// parseExpr is the entry point for expression parsing: Pratt parsing over
// binary, assignment and range operators, built on top of parseUnaryExpr
// and parsePostfixExpr for prefix/postfix forms and parsePrimaryExpr for
// atoms.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseBinaryExpr(precLowest)
}

func (p *Parser) parseBinaryExpr(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		opTok := p.peek()
		prec, rightAssoc := binaryPrec(opTok.Kind)
		if prec == precLowest || prec < minPrec {
			break
		}
		p.advance()

		nextMin := prec + 1
		if rightAssoc {
			nextMin = prec
		}

		if aop, isAssign := assignOp(opTok.Kind); isAssign {
			right, ok := p.parseBinaryExpr(nextMin)
			if !ok {
				p.errorHere(diag.SynExpectExpression, "expected expression after assignment operator")
				return ast.NoExprID, false
			}
			span := p.exprSpan(left).Cover(p.exprSpan(right))
			left = p.mod.Exprs.NewAssign(span, aop, left, right)
			continue
		}

		if inclusive, isRange := isRangeOp(opTok.Kind); isRange {
			if tokenStartsExpr(p.peek().Kind) {
				right, ok := p.parseBinaryExpr(nextMin)
				if !ok {
					return ast.NoExprID, false
				}
				span := p.exprSpan(left).Cover(p.exprSpan(right))
				left = p.mod.Exprs.NewRange(span, left, right, inclusive)
			} else {
				span := p.exprSpan(left).Cover(opTok.Span)
				left = p.mod.Exprs.NewRange(span, left, ast.NoExprID, inclusive)
			}
			continue
		}

		bop, ok := binaryOp(opTok.Kind)
		if !ok {
			// binaryPrec and binaryOp/assignOp/isRangeOp must stay in sync;
			// this is reachable only if they drift.
			p.errorHere(diag.SynUnexpectedToken, "internal: unhandled binary operator")
			return ast.NoExprID, false
		}
		right, ok := p.parseBinaryExpr(nextMin)
		if !ok {
			p.errorHere(diag.SynExpectExpression, "expected expression after binary operator")
			return ast.NoExprID, false
		}
		span := p.exprSpan(left).Cover(p.exprSpan(right))
		left = p.mod.Exprs.NewBinary(span, bop, left, right)
	}

	return left, true
}

// parseUnaryExpr collects leading prefix operators, parses the postfix
// expression they apply to, then wraps it right to left.
func (p *Parser) parseUnaryExpr() (ast.ExprID, bool) {
	if p.at(token.Amp) {
		ampTok := p.advance()
		mut := false
		if p.at(token.KwMut) {
			p.advance()
			mut = true
		}
		operand, ok := p.parseUnaryExpr()
		if !ok {
			return ast.NoExprID, false
		}
		span := ampTok.Span.Cover(p.exprSpan(operand))
		return p.mod.Exprs.NewAddressOf(span, operand, mut), true
	}

	if op, ok := unaryOp(p.peek().Kind); ok {
		opTok := p.advance()
		operand, ok := p.parseUnaryExpr()
		if !ok {
			return ast.NoExprID, false
		}
		span := opTok.Span.Cover(p.exprSpan(operand))
		return p.mod.Exprs.NewUnary(span, op, operand), true
	}

	return p.parsePostfixExpr()
}

// parsePostfixExpr parses a primary expression followed by zero or more
// call, index, member, propagate, dereference, generic-instantiation or
// macro-invocation suffixes.
func (p *Parser) parsePostfixExpr() (ast.ExprID, bool) {
	expr, ok := p.parsePrimaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		switch p.peek().Kind {
		case token.LParen:
			expr, ok = p.parseCallExpr(expr)
		case token.LBracket:
			expr, ok = p.parseIndexExpr(expr)
		case token.Dot:
			expr, ok = p.parseMemberExpr(expr)
		case token.DotQuestion:
			tok := p.advance()
			expr = p.mod.Exprs.NewPropagate(p.exprSpan(expr).Cover(tok.Span), expr)
		case token.DotStar:
			tok := p.advance()
			expr = p.mod.Exprs.NewDeref(p.exprSpan(expr).Cover(tok.Span), expr)
		case token.DotLt:
			expr, ok = p.parseGenericInstExpr(expr)
		case token.Bang:
			expr, ok = p.parseMacroCallExpr(expr)
		default:
			return expr, true
		}
		if !ok {
			return ast.NoExprID, false
		}
	}
}

func (p *Parser) parseCallExpr(target ast.ExprID) (ast.ExprID, bool) {
	p.advance() // '('
	var args []ast.ExprID
	if !p.at(token.RParen) {
		for {
			arg, ok := p.parseExpr()
			if !ok {
				return ast.NoExprID, false
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
	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after call arguments")
	if !ok {
		return ast.NoExprID, false
	}
	return p.mod.Exprs.NewCall(p.exprSpan(target).Cover(closeTok.Span), target, args), true
}

func (p *Parser) parseIndexExpr(target ast.ExprID) (ast.ExprID, bool) {
	p.advance() // '['
	index, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after index expression")
	if !ok {
		return ast.NoExprID, false
	}
	return p.mod.Exprs.NewIndex(p.exprSpan(target).Cover(closeTok.Span), target, index), true
}

func (p *Parser) parseMemberExpr(target ast.ExprID) (ast.ExprID, bool) {
	p.advance() // '.'
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected field name after '.'")
	if !ok {
		return ast.NoExprID, false
	}
	name := p.interner.Intern(nameTok.Text)
	return p.mod.Exprs.NewMember(p.exprSpan(target).Cover(nameTok.Span), target, name), true
}

func (p *Parser) parseGenericInstExpr(target ast.ExprID) (ast.ExprID, bool) {
	p.advance() // '.<'
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
	return p.mod.Exprs.NewGenericInst(p.exprSpan(target).Cover(closeTok.Span), target, args), true
}

func (p *Parser) parseMacroCallExpr(target ast.ExprID) (ast.ExprID, bool) {
	bangTok := p.advance() // '!'

	var delim ast.MacroCallDelim
	var closeKind token.Kind
	switch p.peek().Kind {
	case token.LParen:
		delim, closeKind = ast.DelimParen, token.RParen
	case token.LBracket:
		delim, closeKind = ast.DelimBracket, token.RBracket
	case token.LBrace:
		delim, closeKind = ast.DelimBrace, token.RBrace
	default:
		p.errorHere(diag.SynUnexpectedToken, "expected '(', '[' or '{' after macro invocation '!'")
		return ast.NoExprID, false
	}

	toks, closeTok, ok := p.captureDelimited(closeKind)
	if !ok {
		return ast.NoExprID, false
	}
	span := p.exprSpan(target).Cover(bangTok.Span).Cover(closeTok.Span)
	return p.mod.Exprs.NewMacroCall(span, target, delim, toks), true
}

// parsePrimaryExpr parses an atomic expression: a literal, identifier,
// parenthesized/tuple form, array literal, block, or one of the
// expression-position keyword forms (if, match).
func (p *Parser) parsePrimaryExpr() (ast.ExprID, bool) {
	switch p.peek().Kind {
	case token.Ident:
		return p.parseIdentOrStructInit()
	case token.KwSelf:
		tok := p.advance()
		name := p.interner.Intern(tok.Text)
		return p.mod.Exprs.NewIdent(tok.Span, name), true
	case token.IntLit, token.FloatLit, token.CharLit, token.StringLit,
		token.KwTrue, token.KwFalse, token.KwUndef, token.KwNull, token.KwUnreachable:
		return p.parseLiteralExpr()
	case token.LParen:
		return p.parseParenOrTupleExpr()
	case token.LBracket:
		return p.parseArrayExpr()
	case token.LBrace:
		return p.parseBlock()
	case token.KwIf:
		return p.parseIfExpr()
	case token.KwMatch:
		return p.parseMatchExpr()
	case token.DotDot, token.DotDotEq:
		return p.parseLeadingRangeExpr()
	default:
		p.errorHere(diag.SynExpectExpression, "expected expression")
		return ast.NoExprID, false
	}
}

// parseLeadingRangeExpr parses a range expression with an absent lower
// bound: '..' high or '..=' high, or a fully open range when high is also
// absent. Reachable from parsePrimaryExpr, so this form parses wherever an
// expression does, including at statement start.
func (p *Parser) parseLeadingRangeExpr() (ast.ExprID, bool) {
	opTok := p.advance()
	inclusive := opTok.Kind == token.DotDotEq
	if !tokenStartsExpr(p.peek().Kind) {
		return p.mod.Exprs.NewRange(opTok.Span, ast.NoExprID, ast.NoExprID, inclusive), true
	}
	high, ok := p.parseBinaryExpr(precRange + 1)
	if !ok {
		return ast.NoExprID, false
	}
	span := opTok.Span.Cover(p.exprSpan(high))
	return p.mod.Exprs.NewRange(span, ast.NoExprID, high, inclusive), true
}

// parseLiteralExpr parses a single literal token into an ExprLit. It is
// also used directly by pattern.go for literal and literal-range patterns.
func (p *Parser) parseLiteralExpr() (ast.ExprID, bool) {
	tok := p.peek()
	var kind ast.ExprLitKind
	switch tok.Kind {
	case token.IntLit:
		kind = ast.LitInt
	case token.FloatLit:
		kind = ast.LitFloat
	case token.CharLit:
		kind = ast.LitChar
	case token.StringLit:
		kind = ast.LitString
	case token.KwTrue, token.KwFalse:
		kind = ast.LitBool
	case token.KwUndef:
		kind = ast.LitUndef
	case token.KwNull:
		kind = ast.LitNull
	case token.KwUnreachable:
		kind = ast.LitUnreachable
	default:
		p.errorHere(diag.SynExpectExpression, "expected literal")
		return ast.NoExprID, false
	}
	p.advance()
	text := p.interner.Intern(tok.Text)
	return p.mod.Exprs.NewLiteral(tok.Span, kind, text), true
}

// parseIdentOrStructInit parses a bare identifier, or, when struct-literal
// parsing is enabled (noStructInit == 0) and a '{' immediately follows,
// the `Name { field: value, ... }` struct-initializer form.
func (p *Parser) parseIdentOrStructInit() (ast.ExprID, bool) {
	tok := p.advance()
	name := p.interner.Intern(tok.Text)
	expr := p.mod.Exprs.NewIdent(tok.Span, name)
	if p.noStructInit == 0 && p.at(token.LBrace) {
		return p.parseStructInitBody(expr, tok.Span)
	}
	return expr, true
}

func (p *Parser) parseStructInitBody(typ ast.ExprID, startSpan source.Span) (ast.ExprID, bool) {
	p.advance() // '{'
	var fields []ast.StructInitField

	for !p.at(token.RBrace) && !p.at(token.Eof) {
		nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected field name in struct literal")
		if !ok {
			return ast.NoExprID, false
		}
		name := p.interner.Intern(nameTok.Text)

		if p.at(token.Colon) {
			p.advance()
			val, ok := p.parseExpr()
			if !ok {
				return ast.NoExprID, false
			}
			fields = append(fields, ast.StructInitField{Name: name, Value: val})
		} else {
			val := p.mod.Exprs.NewIdent(nameTok.Span, name)
			fields = append(fields, ast.StructInitField{Name: name, Value: val, Shorthand: true})
		}

		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}

	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close struct literal")
	if !ok {
		return ast.NoExprID, false
	}
	return p.mod.Exprs.NewStructInit(startSpan.Cover(closeTok.Span), typ, fields), true
}

// parseParenOrTupleExpr parses '()', a parenthesized group '(expr)', or a
// tuple literal '(e1, e2, ...)' including the one-element trailing-comma
// form '(e,)' that disambiguates it from a group.
func (p *Parser) parseParenOrTupleExpr() (ast.ExprID, bool) {
	openTok := p.advance()
	if p.at(token.RParen) {
		closeTok := p.advance()
		return p.mod.Exprs.NewTuple(openTok.Span.Cover(closeTok.Span), nil), true
	}

	first, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}

	if !p.at(token.Comma) {
		closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close grouped expression")
		if !ok {
			return ast.NoExprID, false
		}
		return p.mod.Exprs.NewGroup(openTok.Span.Cover(closeTok.Span), first), true
	}

	elems := []ast.ExprID{first}
	for p.at(token.Comma) {
		p.advance()
		if p.at(token.RParen) {
			break
		}
		elem, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		elems = append(elems, elem)
	}
	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close tuple expression")
	if !ok {
		return ast.NoExprID, false
	}
	return p.mod.Exprs.NewTuple(openTok.Span.Cover(closeTok.Span), elems), true
}

// parseArrayExpr parses '[]', a comma-separated array literal, or the
// '[value; count]' repeat form.
func (p *Parser) parseArrayExpr() (ast.ExprID, bool) {
	openTok := p.advance()
	if p.at(token.RBracket) {
		closeTok := p.advance()
		return p.mod.Exprs.NewArray(openTok.Span.Cover(closeTok.Span), nil), true
	}

	first, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}

	if p.at(token.Semicolon) {
		p.advance()
		count, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' to close repeated array literal")
		if !ok {
			return ast.NoExprID, false
		}
		return p.mod.Exprs.NewArrayRepeat(openTok.Span.Cover(closeTok.Span), first, count), true
	}

	elems := []ast.ExprID{first}
	for p.at(token.Comma) {
		p.advance()
		if p.at(token.RBracket) {
			break
		}
		elem, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		elems = append(elems, elem)
	}
	closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' to close array literal")
	if !ok {
		return ast.NoExprID, false
	}
	return p.mod.Exprs.NewArray(openTok.Span.Cover(closeTok.Span), elems), true
}

// parseIfExpr parses an 'if' expression. The condition is parsed with
// struct-literal parsing suspended so a bare '{' opens the then-block
// rather than being read as the start of a struct initializer.
func (p *Parser) parseIfExpr() (ast.ExprID, bool) {
	ifTok := p.advance()

	p.noStructInit++
	cond, ok := p.parseExpr()
	p.noStructInit--
	if !ok {
		return ast.NoExprID, false
	}

	then, ok := p.parseBlock()
	if !ok {
		return ast.NoExprID, false
	}

	span := ifTok.Span.Cover(p.exprSpan(then))
	elseExpr := ast.NoExprID

	if p.at(token.KwElse) {
		p.advance()
		if p.at(token.KwIf) {
			elseExpr, ok = p.parseIfExpr()
		} else {
			elseExpr, ok = p.parseBlock()
		}
		if !ok {
			return ast.NoExprID, false
		}
		span = span.Cover(p.exprSpan(elseExpr))
	}

	return p.mod.Exprs.NewIf(span, cond, then, elseExpr), true
}

// parseMatchExpr parses a 'match' expression and its brace-delimited arms.
// A failing arm is skipped up to the next ',' or the closing '}' so one bad
// arm does not abort the whole match.
func (p *Parser) parseMatchExpr() (ast.ExprID, bool) {
	matchTok := p.advance()

	p.noStructInit++
	scrutinee, ok := p.parseExpr()
	p.noStructInit--
	if !ok {
		return ast.NoExprID, false
	}

	if _, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' to open match body"); !ok {
		return ast.NoExprID, false
	}

	var arms []ast.MatchArm
	for !p.at(token.RBrace) && !p.at(token.Eof) {
		pat, ok := p.parsePattern()
		if !ok {
			p.synchronizeMatchArm()
			continue
		}

		guard := ast.NoExprID
		if p.at(token.KwIf) {
			p.advance()
			g, ok := p.parseExpr()
			if !ok {
				p.synchronizeMatchArm()
				continue
			}
			guard = g
		}

		if _, ok := p.expect(token.FatArrow, diag.SynExpectFatArrow, "expected '=>' after match pattern"); !ok {
			p.synchronizeMatchArm()
			continue
		}

		body, ok := p.parseExpr()
		if !ok {
			p.synchronizeMatchArm()
			continue
		}

		arms = append(arms, ast.MatchArm{Pattern: pat, Guard: guard, Body: body})
		if p.at(token.Comma) {
			p.advance()
		}
	}

	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close match body")
	if !ok {
		return ast.NoExprID, false
	}
	return p.mod.Exprs.NewMatch(matchTok.Span.Cover(closeTok.Span), scrutinee, arms), true
}

func (p *Parser) synchronizeMatchArm() {
	for !p.at(token.Comma) && !p.at(token.RBrace) && !p.at(token.Eof) {
		p.advance()
	}
	if p.at(token.Comma) {
		p.advance()
	}
	p.ctx.Synchronized()
}

// tokenStartsExpr reports whether k can open an expression, used to tell a
// range's open-ended upper bound ('lo..') apart from one that has an upper
// bound following.
func tokenStartsExpr(k token.Kind) bool {
	switch k {
	case token.Ident, token.IntLit, token.FloatLit, token.CharLit, token.StringLit,
		token.KwTrue, token.KwFalse, token.KwUndef, token.KwNull, token.KwUnreachable,
		token.KwSelf, token.LParen, token.LBracket, token.LBrace, token.KwIf, token.KwMatch,
		token.Minus, token.Bang, token.Tilde, token.Amp, token.Hash, token.Question:
		return true
	default:
		return false
	}
}
