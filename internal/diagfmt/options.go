// Package diagfmt renders diagnostics, tokens, and parsed modules for the
// loom CLI. It is a driver concern: the front end itself never colorizes or
// formats output (spec.md §6.3), it only produces spans and messages.
package diagfmt

// PathMode controls how a source path is displayed in rendered output.
type PathMode uint8

const (
	// PathModeAuto shows a path relative to the SourceManager's base
	// directory when possible, falling back to the stored path.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always renders the file's stored (canonical) path.
	PathModeAbsolute
)

// PrettyOpts configures Pretty's human-readable diagnostic rendering.
type PrettyOpts struct {
	Color    bool
	Context  int // lines of source shown above/below the caret; 0 = caret line only
	PathMode PathMode
}

// JSONOpts configures FormatDiagnosticsJSON.
type JSONOpts struct {
	PathMode     PathMode
	IncludeNotes bool
	IncludeFixes bool
}
