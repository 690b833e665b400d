package driver_test

import (
	"os"
	"path/filepath"
	"testing"

	"loom/internal/driver"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestTokenizeCollectsEveryTokenThroughEof(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "a.lm", "let x = 1;")

	result, err := driver.Tokenize(path, 0)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(result.Tokens) == 0 {
		t.Fatal("expected at least one token")
	}
	if result.Tokens[len(result.Tokens)-1].Kind.String() != "Eof" {
		t.Fatalf("last token kind = %s, want Eof", result.Tokens[len(result.Tokens)-1].Kind.String())
	}
	if result.Bag.HasErrors() {
		t.Fatalf("unexpected lexical errors: %v", result.Bag.Items())
	}
}

func TestParseSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "a.lm", "fn main() {}")

	result, err := driver.Parse(path, 0)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if result.Bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", result.Bag.Items())
	}
	if len(result.Module.Decls) != 1 {
		t.Fatalf("expected 1 decl, got %d", len(result.Module.Decls))
	}
}

func TestParseNonexistentFileReturnsError(t *testing.T) {
	if _, err := driver.Parse(filepath.Join(t.TempDir(), "missing.lm"), 0); err == nil {
		t.Fatal("expected an error loading a nonexistent file")
	}
}
