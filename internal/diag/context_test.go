package diag

import (
	"testing"

	"loom/internal/source"
)

func TestContextPanicModeSuppressesCascadingErrors(t *testing.T) {
	ctx := NewContext(16)
	span := source.Span{Start: 0, End: 1}

	ctx.Error(SynUnexpectedToken, span, "first error").Emit()
	if !ctx.InPanicMode() {
		t.Fatal("reporting an error must enter panic mode")
	}
	if ctx.ErrorCount() != 1 {
		t.Fatalf("ErrorCount() = %d, want 1", ctx.ErrorCount())
	}

	ctx.Error(SynExpectSemicolon, span, "cascading error").Emit()
	if ctx.ErrorCount() != 1 {
		t.Fatalf("ErrorCount() = %d, want 1 (cascading error must be suppressed)", ctx.ErrorCount())
	}
	if ctx.Bag().Len() != 1 {
		t.Fatalf("Bag().Len() = %d, want 1", ctx.Bag().Len())
	}

	ctx.Synchronized()
	if ctx.InPanicMode() {
		t.Fatal("Synchronized() must clear panic mode")
	}

	ctx.Error(SynExpectSemicolon, span, "second independent error").Emit()
	if ctx.ErrorCount() != 2 {
		t.Fatalf("ErrorCount() = %d, want 2 after resynchronizing", ctx.ErrorCount())
	}
}

func TestContextWarningsNeverEnterPanicMode(t *testing.T) {
	ctx := NewContext(16)
	span := source.Span{Start: 0, End: 1}

	ctx.Warn(UnknownCode, span, "a warning").Emit()
	if ctx.InPanicMode() {
		t.Fatal("a warning must not enter panic mode")
	}
	ctx.Warn(UnknownCode, span, "another warning").Emit()
	if ctx.Bag().Len() != 2 {
		t.Fatalf("Bag().Len() = %d, want 2 (warnings are never suppressed)", ctx.Bag().Len())
	}
}

func TestContextHasErrors(t *testing.T) {
	ctx := NewContext(16)
	if ctx.HasErrors() {
		t.Fatal("a fresh Context must report no errors")
	}
	ctx.Error(SynUnexpectedToken, source.Span{}, "boom").Emit()
	if !ctx.HasErrors() {
		t.Fatal("HasErrors() should be true once an error is recorded")
	}
}
