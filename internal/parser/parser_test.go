package parser_test

import (
	"testing"

	"loom/internal/ast"
	"loom/internal/diag"
	"loom/internal/parser"
	"loom/internal/source"
)

// parseModule parses input as a virtual file and returns the resulting
// module along with the diagnostics context it reported through.
func parseModule(t *testing.T, input string) (*ast.Module, *diag.Context, *source.StringInterner) {
	t.Helper()
	mgr := source.NewSourceManager()
	id, err := mgr.AddVirtual("test.lm", []byte(input))
	if err != nil {
		t.Fatalf("AddVirtual: %v", err)
	}
	ctx := diag.NewContext(64)
	interner := source.NewStringInterner()
	p := parser.New(mgr.Get(id), ctx, interner)
	return p.Parse(), ctx, interner
}

func parseModuleOK(t *testing.T, input string) (*ast.Module, *source.StringInterner) {
	t.Helper()
	mod, ctx, interner := parseModule(t, input)
	if ctx.HasErrors() {
		t.Fatalf("unexpected errors parsing %q", input)
	}
	return mod, interner
}

func TestParseEmptyModule(t *testing.T) {
	mod, ctx, _ := parseModule(t, "")
	if ctx.HasErrors() {
		t.Fatalf("unexpected errors parsing empty module")
	}
	if len(mod.Decls) != 0 {
		t.Fatalf("expected no decls in an empty module, got %d", len(mod.Decls))
	}
}

func TestParseMultipleTopLevelDecls(t *testing.T) {
	mod, _ := parseModuleOK(t, `
		fn a() {}
		fn b() {}
		struct S { x: i32 }
	`)
	if len(mod.Decls) != 3 {
		t.Fatalf("expected 3 decls, got %d", len(mod.Decls))
	}
}

func TestParseRecoversFromBadTopLevelDecl(t *testing.T) {
	mod, ctx, _ := parseModule(t, `
		fn good1() {}
		123 + 456;
		fn good2() {}
	`)
	if !ctx.HasErrors() {
		t.Fatalf("expected errors from the malformed declaration")
	}
	var fns int
	for _, id := range mod.Decls {
		if _, ok := mod.Decl.Fn(id); ok {
			fns++
		}
	}
	if fns != 2 {
		t.Fatalf("expected parsing to recover and still find 2 fn decls, got %d", fns)
	}
}
