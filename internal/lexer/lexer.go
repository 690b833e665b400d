package lexer

import (
	"loom/internal/diag"
	"loom/internal/source"
	"loom/internal/token"
)

// maxTokenLength bounds the byte length of a single scanned token (ident,
// number, string, char or macro-raw fragment). It exists to fail fast on
// pathological or adversarial input rather than let one runaway token
// exhaust memory.
const maxTokenLength = 1 << 16

// Lexer turns one source file into a stream of significant tokens, each
// carrying its accumulated leading trivia. It reports lexical errors
// through a diag.Context rather than returning them, matching how the
// parser built on top of it accumulates diagnostics.
type Lexer struct {
	file   *source.SourceFile
	cursor Cursor
	ctx    *diag.Context
	look   *token.Token   // one-token lookahead buffer
	hold   []token.Trivia // trivia accumulated ahead of the next significant token
}

// New creates a Lexer over file. ctx may be nil, in which case lexical
// errors are silently dropped but scanning still proceeds on a best-effort
// basis.
func New(file *source.SourceFile, ctx *diag.Context) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		ctx:    ctx,
	}
}

// Next returns the next significant token, with Leading already populated.
// Once EOF is reached it keeps returning an EOF token.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.Eof,
			Span: lx.emptySpan(),
			Text: "",
		}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == '_':
		b0, b1, ok := lx.cursor.Peek2()
		if ok && b0 == '_' && isIdentContinueByte(b1) {
			tok = lx.scanIdentOrKeyword()
		} else {
			tok = lx.scanOperatorOrPunct()
		}

	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()

	case ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '"':
		tok = lx.scanString()

	case ch == '\'':
		tok = lx.scanChar()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok = lx.enforceTokenLimit(tok)

	tok.Leading = lx.hold
	lx.hold = nil

	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// enforceTokenLimit reports and truncates the scan when a token exceeds
// maxTokenLength. On overflow the cursor is moved to the end of the file, so
// scanning stops there, and an Illegal token is returned in place of tok so the caller never looks at
// a Text longer than the limit.
func (lx *Lexer) enforceTokenLimit(tok token.Token) token.Token {
	if tok.Span.End-tok.Span.Start <= maxTokenLength {
		return tok
	}
	lx.errLex(diag.LexTokenTooLong, tok.Span, "token exceeds the maximum length")
	lx.cursor.Off = lx.cursor.limit()
	return token.Token{Kind: token.Illegal, Span: tok.Span, Text: ""}
}

// errLex reports a lexical error through ctx, if one was provided.
func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.ctx == nil {
		return
	}
	lx.ctx.Error(code, sp, msg).Emit()
}
