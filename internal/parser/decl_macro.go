package parser

import (
	"loom/internal/ast"
	"loom/internal/diag"
	"loom/internal/source"
	"loom/internal/token"
)

// parseMacroDecl parses `macro Name { (matcher) => { body }; ... }`: a
// named set of rules, each pairing a matcher sequence with the raw token
// tree it expands to.
func (p *Parser) parseMacroDecl(startSpan source.Span) (ast.DeclID, bool) {
	p.advance() // 'macro'
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected macro name")
	if !ok {
		return ast.NoDeclID, false
	}
	name := p.interner.Intern(nameTok.Text)

	if _, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' to open macro body"); !ok {
		return ast.NoDeclID, false
	}

	var rules []ast.MacroRule
	for !p.at(token.RBrace) && !p.at(token.Eof) {
		rule, ok := p.parseMacroRule()
		if !ok {
			p.synchronizeMember()
			continue
		}
		rules = append(rules, rule)
		if p.at(token.Semicolon) {
			p.advance()
		}
	}

	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close macro body")
	if !ok {
		return ast.NoDeclID, false
	}

	return p.mod.Decl.NewMacro(startSpan.Cover(closeTok.Span), name, rules), true
}

func (p *Parser) parseMacroRule() (ast.MacroRule, bool) {
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' to open macro matcher"); !ok {
		return ast.MacroRule{}, false
	}
	matchers, ok := p.parseMacroMatcherSeq(token.RParen)
	if !ok {
		return ast.MacroRule{}, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close macro matcher"); !ok {
		return ast.MacroRule{}, false
	}

	if _, ok := p.expect(token.FatArrow, diag.SynExpectFatArrow, "expected '=>' after macro matcher"); !ok {
		return ast.MacroRule{}, false
	}

	if !p.at(token.LBrace) {
		p.errorHere(diag.SynUnexpectedToken, "expected '{' to open macro rule body")
		return ast.MacroRule{}, false
	}
	body, _, ok := p.captureDelimited(token.RBrace)
	if !ok {
		return ast.MacroRule{}, false
	}

	return ast.MacroRule{Matchers: matchers, Body: body}, true
}

func (p *Parser) parseMacroMatcherSeq(end token.Kind) ([]ast.MacroMatcher, bool) {
	var matchers []ast.MacroMatcher
	for !p.at(end) && !p.at(token.Eof) {
		m, ok := p.parseMacroMatcher()
		if !ok {
			return nil, false
		}
		matchers = append(matchers, m)
	}
	return matchers, true
}

// parseMacroMatcher parses one matcher element: a literal token, a
// '$name:spec' capture, or a '$( sub )sep? op' repetition group.
func (p *Parser) parseMacroMatcher() (ast.MacroMatcher, bool) {
	if p.at(token.Dollar) {
		if p.peekAt(1).Kind == token.LParen {
			return p.parseMacroRepetition()
		}
		return p.parseMacroCapture()
	}
	tok := p.advance()
	return ast.MacroMatcher{Kind: ast.MacroMatchLiteral, LiteralTok: tok}, true
}

func (p *Parser) parseMacroCapture() (ast.MacroMatcher, bool) {
	p.advance() // '$'
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a capture name after '$'")
	if !ok {
		return ast.MacroMatcher{}, false
	}
	name := p.interner.Intern(nameTok.Text)

	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after macro capture name"); !ok {
		return ast.MacroMatcher{}, false
	}
	var specTok token.Token
	if p.at(token.KwType) {
		specTok = p.advance()
	} else if specTok, ok = p.expect(token.Ident, diag.SynUnknownFragmentSpec, "expected a fragment specifier"); !ok {
		return ast.MacroMatcher{}, false
	}
	spec, ok := macroFragSpec(specTok.Text)
	if !ok {
		p.errorAt(diag.SynUnknownFragmentSpec, specTok.Span, "unknown macro fragment specifier")
		return ast.MacroMatcher{}, false
	}

	return ast.MacroMatcher{Kind: ast.MacroMatchCapture, CaptureName: name, CaptureSpec: spec}, true
}

func (p *Parser) parseMacroRepetition() (ast.MacroMatcher, bool) {
	p.advance() // '$'
	p.advance() // '('
	sub, ok := p.parseMacroMatcherSeq(token.RParen)
	if !ok {
		return ast.MacroMatcher{}, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close macro repetition group"); !ok {
		return ast.MacroMatcher{}, false
	}

	var sep *token.Token
	if !p.atAny(token.Star, token.Plus, token.Question) {
		sepTok := p.advance()
		sep = &sepTok
	}

	var op ast.RepOp
	switch p.peek().Kind {
	case token.Star:
		op = ast.RepStar
	case token.Plus:
		op = ast.RepPlus
	case token.Question:
		op = ast.RepOnce
	default:
		p.errorHere(diag.SynUnexpectedToken, "expected '*', '+' or '?' after macro repetition group")
		return ast.MacroMatcher{}, false
	}
	p.advance()

	return ast.MacroMatcher{Kind: ast.MacroMatchRepetition, Sub: sub, Sep: sep, Op: op}, true
}

func macroFragSpec(text string) (ast.FragSpec, bool) {
	switch text {
	case "expr":
		return ast.FragExpr, true
	case "ident":
		return ast.FragIdent, true
	case "ty", "type":
		return ast.FragType, true
	case "stmt":
		return ast.FragStmt, true
	case "block":
		return ast.FragBlock, true
	case "path":
		return ast.FragPath, true
	case "literal":
		return ast.FragLiteral, true
	case "tt":
		return ast.FragTokenTree, true
	default:
		return 0, false
	}
}
