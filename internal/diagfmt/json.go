package diagfmt

import (
	"encoding/json"
	"io"

	"loom/internal/diag"
	"loom/internal/source"
)

// NoteOutput mirrors diag.Note for JSON rendering.
type NoteOutput struct {
	Path    string `json:"path"`
	Line    uint32 `json:"line"`
	Col     uint32 `json:"col"`
	Message string `json:"message"`
}

// DiagnosticOutput is the JSON shape of one diag.Diagnostic.
type DiagnosticOutput struct {
	Severity string       `json:"severity"`
	Code     uint16       `json:"code"`
	Path     string       `json:"path"`
	Line     uint32       `json:"line"`
	Col      uint32       `json:"col"`
	Message  string       `json:"message"`
	Notes    []NoteOutput `json:"notes,omitempty"`
}

// FormatDiagnosticsJSON writes bag's diagnostics as a JSON array, one object
// per diagnostic in Bag.Items() order.
func FormatDiagnosticsJSON(w io.Writer, bag *diag.Bag, sm *source.SourceManager, opts JSONOpts) error {
	out := make([]DiagnosticOutput, 0, bag.Len())
	for _, d := range bag.Items() {
		out = append(out, toDiagnosticOutput(d, sm, opts))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func toDiagnosticOutput(d diag.Diagnostic, sm *source.SourceManager, opts JSONOpts) DiagnosticOutput {
	file := sm.Get(d.Primary.File)
	start, _ := sm.Resolve(d.Primary)
	out := DiagnosticOutput{
		Severity: d.Severity.String(),
		Code:     uint16(d.Code),
		Path:     displayPath(file, PrettyOpts{PathMode: opts.PathMode}, sm),
		Line:     start.Line,
		Col:      start.Col,
		Message:  d.Message,
	}
	if opts.IncludeNotes {
		for _, n := range d.Notes {
			nf := sm.Get(n.Span.File)
			ns, _ := sm.Resolve(n.Span)
			out.Notes = append(out.Notes, NoteOutput{
				Path:    displayPath(nf, PrettyOpts{PathMode: opts.PathMode}, sm),
				Line:    ns.Line,
				Col:     ns.Col,
				Message: n.Msg,
			})
		}
	}
	return out
}
