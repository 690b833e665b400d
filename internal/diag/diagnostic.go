package diag

import (
	"loom/internal/source"
)

// Note is a secondary span/message attached to a Diagnostic, giving
// additional context (e.g. "earlier declaration here").
type Note struct {
	Span source.Span
	Msg  string
}

// FixEdit is a single textual replacement over a span, part of a Fix.
type FixEdit struct {
	Span    source.Span
	NewText string
}

// Fix is a suggested automated correction; front-end phases only ever
// attach them, never apply them.
type Fix struct {
	Title string
	Edits []FixEdit
}

// Diagnostic is the (severity, span, message) tuple the spec requires,
// plus optional notes and fix suggestions.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}
