package parser

import (
	"loom/internal/ast"
	"loom/internal/diag"
	"loom/internal/token"
)

// parseBlock parses a brace-delimited block. Blocks are expressions, not
// statements: a trailing statement with no semicolon becomes the block's
// Result rather than being kept in Stmts, matching ExprBlockData's split
// between executed statements and the value the block evaluates to.
func (p *Parser) parseBlock() (ast.ExprID, bool) {
	openTok, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' to open block")
	if !ok {
		return ast.NoExprID, false
	}

	var stmts []ast.StmtID
	for !p.at(token.RBrace) && !p.at(token.Eof) {
		stmt, ok := p.parseStmt()
		if !ok {
			p.synchronizeStmt()
			continue
		}
		stmts = append(stmts, stmt)
	}

	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close block")
	if !ok {
		return ast.NoExprID, false
	}

	result := ast.NoExprID
	if n := len(stmts); n > 0 {
		if data, isExpr := p.mod.Stmts.Expr(stmts[n-1]); isExpr && !data.HasSemi {
			result = data.Expr
			stmts = stmts[:n-1]
		}
	}

	return p.mod.Exprs.NewBlock(openTok.Span.Cover(closeTok.Span), stmts, result), true
}

func (p *Parser) synchronizeStmt() {
	for !p.at(token.Eof) && !p.at(token.RBrace) {
		if p.at(token.Semicolon) {
			p.advance()
			break
		}
		p.advance()
	}
	p.ctx.Synchronized()
}

func (p *Parser) parseStmt() (ast.StmtID, bool) {
	switch p.peek().Kind {
	case token.KwLet:
		return p.parseLetStmt()
	case token.KwFor:
		return p.parseForStmt()
	case token.KwBreak:
		return p.parseBreakStmt()
	case token.KwContinue:
		return p.parseContinueStmt()
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.KwDefer:
		return p.parseDeferStmt()
	case token.KwPub, token.KwFn, token.KwStruct, token.KwEnum, token.KwUnion,
		token.KwTrait, token.KwImpl, token.KwMacro, token.KwUse, token.KwExtern,
		token.KwType, token.KwConst, token.KwStatic:
		return p.parseNestedDeclStmt()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseLetStmt() (ast.StmtID, bool) {
	letTok := p.advance()
	pat, ok := p.parsePattern()
	if !ok {
		return ast.NoStmtID, false
	}

	typ := ast.NoExprID
	if p.at(token.Colon) {
		p.advance()
		t, ok := p.parseType()
		if !ok {
			return ast.NoStmtID, false
		}
		typ = t
	}

	value := ast.NoExprID
	if p.at(token.Assign) {
		p.advance()
		v, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		value = v
	}

	semiTok, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after let statement")
	if !ok {
		return ast.NoStmtID, false
	}
	return p.mod.Stmts.NewLet(letTok.Span.Cover(semiTok.Span), pat, typ, value), true
}

// parseSimpleStmt parses the restricted statement form allowed in a
// C-style for-loop's init/post clauses: a let-binding or bare expression,
// with no trailing semicolon of its own (the loop header supplies those).
func (p *Parser) parseSimpleStmt() (ast.StmtID, bool) {
	if p.at(token.KwLet) {
		letTok := p.advance()
		pat, ok := p.parsePattern()
		if !ok {
			return ast.NoStmtID, false
		}

		typ := ast.NoExprID
		if p.at(token.Colon) {
			p.advance()
			t, ok := p.parseType()
			if !ok {
				return ast.NoStmtID, false
			}
			typ = t
		}

		value := ast.NoExprID
		span := letTok.Span
		if p.at(token.Assign) {
			p.advance()
			v, ok := p.parseExpr()
			if !ok {
				return ast.NoStmtID, false
			}
			value = v
			span = span.Cover(p.exprSpan(value))
		} else if typ.IsValid() {
			span = span.Cover(p.exprSpan(typ))
		}
		return p.mod.Stmts.NewLet(span, pat, typ, value), true
	}

	expr, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	return p.mod.Stmts.NewExpr(p.exprSpan(expr), expr, false), true
}

// looksLikeForIn scans the bounded lookahead window for a 'in' keyword
// before the next ';', '{' or end of input, distinguishing `for x in xs`
// from the bare C-style `for init; cond; post`.
func (p *Parser) looksLikeForIn() bool {
	for i := 0; i < maxLookahead; i++ {
		switch p.peekAt(i).Kind {
		case token.KwIn:
			return true
		case token.Semicolon, token.LBrace, token.Eof:
			return false
		}
	}
	return false
}

func (p *Parser) parseForStmt() (ast.StmtID, bool) {
	forTok := p.advance()

	if p.looksLikeForIn() {
		pat, ok := p.parsePattern()
		if !ok {
			return ast.NoStmtID, false
		}
		if _, ok := p.expect(token.KwIn, diag.SynForBadHeader, "expected 'in' in for-in loop"); !ok {
			return ast.NoStmtID, false
		}
		p.noStructInit++
		iterable, ok := p.parseExpr()
		p.noStructInit--
		if !ok {
			return ast.NoStmtID, false
		}
		body, ok := p.parseBlock()
		if !ok {
			return ast.NoStmtID, false
		}
		span := forTok.Span.Cover(p.exprSpan(body))
		return p.mod.Stmts.NewFor(span, ast.StmtForData{
			IsForIn:  true,
			Binding:  pat,
			Iterable: iterable,
			Init:     ast.NoStmtID,
			Post:     ast.NoStmtID,
			Body:     body,
		}), true
	}

	initStmt := ast.NoStmtID
	if !p.at(token.Semicolon) {
		s, ok := p.parseSimpleStmt()
		if !ok {
			return ast.NoStmtID, false
		}
		initStmt = s
	}
	if _, ok := p.expect(token.Semicolon, diag.SynForBadHeader, "expected ';' after for-loop initializer"); !ok {
		return ast.NoStmtID, false
	}

	cond := ast.NoExprID
	if !p.at(token.Semicolon) {
		p.noStructInit++
		c, ok := p.parseExpr()
		p.noStructInit--
		if !ok {
			return ast.NoStmtID, false
		}
		cond = c
	}
	if _, ok := p.expect(token.Semicolon, diag.SynForBadHeader, "expected ';' after for-loop condition"); !ok {
		return ast.NoStmtID, false
	}

	postStmt := ast.NoStmtID
	if !p.at(token.LBrace) {
		p.noStructInit++
		s, ok := p.parseSimpleStmt()
		p.noStructInit--
		if !ok {
			return ast.NoStmtID, false
		}
		postStmt = s
	}

	body, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}
	span := forTok.Span.Cover(p.exprSpan(body))
	return p.mod.Stmts.NewFor(span, ast.StmtForData{
		Binding:  ast.NoPatternID,
		Iterable: ast.NoExprID,
		Init:     initStmt,
		Cond:     cond,
		Post:     postStmt,
		Body:     body,
	}), true
}

func (p *Parser) parseBreakStmt() (ast.StmtID, bool) {
	breakTok := p.advance()
	semiTok, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after 'break'")
	if !ok {
		return ast.NoStmtID, false
	}
	return p.mod.Stmts.NewBreak(breakTok.Span.Cover(semiTok.Span)), true
}

func (p *Parser) parseContinueStmt() (ast.StmtID, bool) {
	continueTok := p.advance()
	semiTok, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after 'continue'")
	if !ok {
		return ast.NoStmtID, false
	}
	return p.mod.Stmts.NewContinue(continueTok.Span.Cover(semiTok.Span)), true
}

func (p *Parser) parseReturnStmt() (ast.StmtID, bool) {
	returnTok := p.advance()
	value := ast.NoExprID
	if !p.at(token.Semicolon) {
		v, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		value = v
	}
	semiTok, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after return statement")
	if !ok {
		return ast.NoStmtID, false
	}
	return p.mod.Stmts.NewReturn(returnTok.Span.Cover(semiTok.Span), value), true
}

func (p *Parser) parseDeferStmt() (ast.StmtID, bool) {
	deferTok := p.advance()
	expr, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	semiTok, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after defer statement")
	if !ok {
		return ast.NoStmtID, false
	}
	return p.mod.Stmts.NewDefer(deferTok.Span.Cover(semiTok.Span), expr), true
}

// parseNestedDeclStmt parses a declaration appearing inside a block (a
// local fn, struct, use, etc.) and wraps it as a statement.
func (p *Parser) parseNestedDeclStmt() (ast.StmtID, bool) {
	decl, ok := p.parseTopLevelDecl()
	if !ok {
		return ast.NoStmtID, false
	}
	span := p.mod.Decl.Get(decl).Span
	return p.mod.Stmts.NewDecl(span, decl), true
}

func (p *Parser) parseExprStmt() (ast.StmtID, bool) {
	expr, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	if p.at(token.Semicolon) {
		semiTok := p.advance()
		return p.mod.Stmts.NewExpr(p.exprSpan(expr).Cover(semiTok.Span), expr, true), true
	}
	return p.mod.Stmts.NewExpr(p.exprSpan(expr), expr, false), true
}
