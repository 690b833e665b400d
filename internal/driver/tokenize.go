package driver

import (
	"loom/internal/diag"
	"loom/internal/lexer"
	"loom/internal/source"
	"loom/internal/token"
)

// TokenizeResult is the output of Tokenize: every token the lexer produced
// for one file, up to and including its final Eof.
type TokenizeResult struct {
	SourceManager *source.SourceManager
	FileID        source.FileID
	Tokens        []token.Token
	Bag           *diag.Bag
}

// Tokenize loads path and drives the lexer to completion, collecting every
// token (including the terminal Eof) and any lexical diagnostics.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	sm, id, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	ctx := newContext(maxDiagnostics)
	lx := lexer.New(sm.Get(id), ctx)

	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.Eof {
			break
		}
	}
	ctx.Bag().Sort()
	return &TokenizeResult{SourceManager: sm, FileID: id, Tokens: toks, Bag: ctx.Bag()}, nil
}
