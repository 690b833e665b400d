package diag

import "loom/internal/source"

// Reporter is the minimal contract for emitting diagnostics from any
// pipeline phase. Context is the only implementation in this codebase: it
// owns the Bag directly and folds panic-mode suppression into Report
// itself, rather than delegating to a separate adapter chain.
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string, notes []Note, fixes []Fix)
}
