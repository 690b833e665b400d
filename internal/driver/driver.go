// Package driver wires source loading, the lexer, and the parser together
// into the small set of end-to-end operations cmd/loom exposes. It is a
// thin harness (spec.md §1's "CLI orchestration" stays out of scope): it
// never decides whether to invoke a back end, it only runs the front end
// and hands back its tokens, AST, and diagnostics.
package driver

import (
	"fmt"

	"loom/internal/diag"
	"loom/internal/source"
)

// DefaultMaxDiagnostics bounds a Context's Bag when the caller passes 0.
const DefaultMaxDiagnostics = 100

func maxDiagnosticsOrDefault(max int) int {
	if max <= 0 {
		return DefaultMaxDiagnostics
	}
	return max
}

// loadFile loads path into a fresh single-file SourceManager, the shape
// every single-file driver operation (Tokenize, Parse) starts from.
func loadFile(path string) (*source.SourceManager, source.FileID, error) {
	sm := source.NewSourceManager()
	id, err := sm.LoadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("load %s: %w", path, err)
	}
	return sm, id, nil
}

func newContext(maxDiagnostics int) *diag.Context {
	return diag.NewContext(maxDiagnosticsOrDefault(maxDiagnostics))
}
