package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"loom/internal/diag"
	"loom/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	noteColor    = color.New(color.FgCyan, color.Bold)
	pathColor    = color.New(color.FgWhite, color.Bold)
	caretColor   = color.New(color.FgRed, color.Bold)
)

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return noteColor
	}
}

func displayPath(file *source.SourceFile, opts PrettyOpts, sm *source.SourceManager) string {
	if opts.PathMode == PathModeAbsolute {
		return file.Path
	}
	base := sm.BaseDir()
	if base == "" {
		return file.Path
	}
	if rel, ok := strings.CutPrefix(file.Path, base+"/"); ok {
		return rel
	}
	return file.Path
}

// Pretty renders bag's diagnostics as
//
//	<path>:<line>:<col>: <severity>: <message>
//
// per spec.md §6.3, followed by a source snippet with a caret line under
// the primary span, then any Notes with the same treatment. Diagnostics
// should be Sort()ed beforehand for a stable, deterministic report order.
func Pretty(w io.Writer, bag *diag.Bag, sm *source.SourceManager, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeOne(w, d.Severity, d.Primary, d.Message, sm, opts)
		for _, n := range d.Notes {
			writeOne(w, diag.SevNote, n.Span, n.Msg, sm, opts)
		}
	}
}

func writeOne(w io.Writer, sev diag.Severity, span source.Span, msg string, sm *source.SourceManager, opts PrettyOpts) {
	file := sm.Get(span.File)
	start, _ := sm.Resolve(span)
	path := displayPath(file, opts, sm)

	sevLabel := sev.String()
	if opts.Color {
		sevLabel = severityColor(sev).Sprint(sevLabel)
	}
	locPrefix := fmt.Sprintf("%s:%d:%d", path, start.Line, start.Col)
	if opts.Color {
		locPrefix = pathColor.Sprint(locPrefix)
	}
	fmt.Fprintf(w, "%s: %s: %s\n", locPrefix, sevLabel, msg)

	writeSnippet(w, file, span, start, opts)
}

// writeSnippet prints opts.Context lines of source above and below the
// primary line, then a caret line whose column accounts for wide/combining
// runes via go-runewidth so the caret lands under the right byte even when
// the line contains multi-column glyphs.
func writeSnippet(w io.Writer, file *source.SourceFile, span source.Span, start source.LineCol, opts PrettyOpts) {
	lineNo := int(start.Line)
	lines := splitLines(file.Content)
	if lineNo < 1 || lineNo > len(lines) {
		return
	}

	first := lineNo - opts.Context
	if first < 1 {
		first = 1
	}
	last := lineNo + opts.Context
	if last > len(lines) {
		last = len(lines)
	}

	gutterWidth := len(fmt.Sprintf("%d", last))
	for l := first; l <= last; l++ {
		fmt.Fprintf(w, " %*d | %s\n", gutterWidth, l, lines[l-1])
		if l == lineNo {
			writeCaret(w, lines[l-1], int(start.Col), span, gutterWidth, opts)
		}
	}
}

func writeCaret(w io.Writer, line string, col int, span source.Span, gutterWidth int, opts PrettyOpts) {
	// col is a 1-based byte column, so the prefix is cut by bytes.
	n := col - 1
	if n < 0 {
		n = 0
	}
	if n > len(line) {
		n = len(line)
	}
	visualCol := runewidth.StringWidth(line[:n])

	caretLen := int(span.Len())
	if caretLen < 1 {
		caretLen = 1
	}
	caret := strings.Repeat("^", caretLen)
	if opts.Color {
		caret = caretColor.Sprint(caret)
	}
	fmt.Fprintf(w, " %*s | %s%s\n", gutterWidth, "", strings.Repeat(" ", visualCol), caret)
}

// runeSliceByRunes returns the first n runes of s (n may exceed len(s) in
// runes; the whole string is returned in that case).
func runeSliceByRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if n > len(runes) {
		n = len(runes)
	}
	return string(runes[:n])
}

func splitLines(content []byte) []string {
	if len(content) == 0 {
		return []string{""}
	}
	return strings.Split(string(content), "\n")
}
