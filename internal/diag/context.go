package diag

import "loom/internal/source"

// Context is the shared, single-owner diagnostic sink for one parsing
// attempt. It implements Reporter, accumulates into an internal Bag, and
// tracks panic mode: once an error is reported, further SevError reports
// are suppressed until the parser calls Synchronized(), bounding error
// cascades to at most one reported error per synchronization boundary.
//
// Context only owns the flag and the accumulation; the actual token
// skipping performed by synchronize() is a parser concern (it needs the
// token stream, which this package does not depend on). The parser calls
// InPanicMode() to decide whether to recover, does its own skipping, and
// calls Synchronized() when a plausible boundary has been reached.
type Context struct {
	bag        *Bag
	panicMode  bool
	errorCount int
}

// NewContext creates a Context whose Bag holds at most max diagnostics.
func NewContext(max int) *Context {
	return &Context{bag: NewBag(max)}
}

// Bag returns the accumulated diagnostics.
func (c *Context) Bag() *Bag { return c.bag }

// InPanicMode reports whether further errors are currently suppressed.
func (c *Context) InPanicMode() bool { return c.panicMode }

// Synchronized clears panic mode. Called by the parser once it has
// discarded tokens up to a plausible statement or declaration boundary.
func (c *Context) Synchronized() { c.panicMode = false }

// ErrorCount returns the number of SevError diagnostics actually recorded
// (suppressed duplicates during panic mode do not count).
func (c *Context) ErrorCount() int { return c.errorCount }

// HasErrors reports whether any error has been recorded.
func (c *Context) HasErrors() bool { return c.errorCount > 0 }

// Report implements Reporter. A SevError report made while already in
// panic mode is dropped entirely (not even counted); any report that gets
// through and is itself a SevError puts the context into panic mode.
func (c *Context) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note, fixes []Fix) {
	if sev == SevError && c.panicMode {
		return
	}
	c.bag.Add(Diagnostic{
		Severity: sev, Code: code, Message: msg,
		Primary: primary, Notes: notes, Fixes: fixes,
	})
	if sev == SevError {
		c.panicMode = true
		c.errorCount++
	}
}

// Error is a shortcut for Report(code, SevError, ...) that also returns a
// ReportBuilder for chaining Notes/Fixes before Emit — useful at call
// sites that want to attach a note only when the error actually lands.
func (c *Context) Error(code Code, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(c, SevError, code, primary, msg)
}

// Warn is a shortcut for Report(code, SevWarning, ...).
func (c *Context) Warn(code Code, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(c, SevWarning, code, primary, msg)
}

// Note is a shortcut for Report(code, SevNote, ...).
func (c *Context) Note(code Code, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(c, SevNote, code, primary, msg)
}
