package lexer

import (
	"strings"
	"testing"

	"loom/internal/diag"
	"loom/internal/token"
)

func TestTokenTooLongTriggersDiagnosticAndStops(t *testing.T) {
	content := strings.Repeat("a", maxTokenLength+1)
	file := createFile(content)

	ctx := diag.NewContext(4)
	lx := New(file, ctx)

	tok := lx.Next()
	if tok.Kind != token.Illegal {
		t.Fatalf("expected illegal token, got %v", tok.Kind)
	}
	if !ctx.HasErrors() {
		t.Fatalf("expected diagnostics for long token")
	}
	items := ctx.Bag().Items()
	if items[0].Code != diag.LexTokenTooLong {
		t.Fatalf("expected LexTokenTooLong, got %v", items[0].Code)
	}

	if next := lx.Next(); next.Kind != token.Eof {
		t.Fatalf("expected EOF after long token, got %v", next.Kind)
	}
}

func TestTokenAtLimitAllowed(t *testing.T) {
	content := strings.Repeat("b", maxTokenLength)
	file := createFile(content)

	ctx := diag.NewContext(1)
	lx := New(file, ctx)

	tok := lx.Next()
	if tok.Kind != token.Ident {
		t.Fatalf("expected ident token, got %v", tok.Kind)
	}
	if ctx.HasErrors() {
		t.Fatalf("did not expect diagnostics, got %v", ctx.Bag().Items())
	}
}
