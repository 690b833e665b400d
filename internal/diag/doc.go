// Package diag defines the diagnostic data model shared by every front-end
// phase, plus the panic-mode Context that gates cascade-error suppression
// during parsing.
//
// # Data model
//
//   - Severity — Error, Warning, or Note.
//   - Code — a stable numeric identifier (see codes.go) with a fixed
//     message template.
//   - Diagnostic — the (severity, code, span, message) tuple, plus optional
//     Notes and Fix suggestions.
//   - Bag — a bounded, sortable, deduplicable collection of Diagnostics.
//
// Producers emit through the Reporter interface rather than writing to a
// Bag directly, so lexer/parser code does not need to know where its
// diagnostics end up. Context is the Reporter every driver phase actually
// constructs; Bag's own Dedup/Sort handle exact-repeat suppression and
// stable ordering once a parse completes, rather than a separate adapter
// chain in front of Report.
//
// # Panic mode
//
// Context tracks whether the parser is currently in panic mode: once an
// error is reported, further errors are suppressed until Synchronized()
// clears the flag. This bounds cascades to at most one reported error
// per synchronization boundary while still allowing multiple independent
// diagnostics across a file.
//
// Package diag performs no formatting or IO. Rendering Diagnostics for a
// terminal or machine-readable output lives in internal/diagfmt.
package diag
