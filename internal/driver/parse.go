package driver

import (
	"loom/internal/ast"
	"loom/internal/diag"
	"loom/internal/parser"
	"loom/internal/source"
)

// ParseResult is the output of Parse: one file's Module, the interner its
// identifiers and literal text were interned into, and the diagnostics
// collected while parsing it.
type ParseResult struct {
	SourceManager *source.SourceManager
	FileID        source.FileID
	Module        *ast.Module
	Interner      source.Interner
	Bag           *diag.Bag
}

// Parse loads path and runs it through the parser to completion. Per
// spec.md §7, a syntax error never aborts parsing: the returned Module is
// always usable, and callers should check Bag.HasErrors() before treating
// it as a clean compilation.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	sm, id, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	ctx := newContext(maxDiagnostics)
	interner := source.NewStringInterner()
	p := parser.New(sm.Get(id), ctx, interner)
	mod := p.Parse()
	ctx.Bag().Sort()
	return &ParseResult{
		SourceManager: sm,
		FileID:        id,
		Module:        mod,
		Interner:      interner,
		Bag:           ctx.Bag(),
	}, nil
}
