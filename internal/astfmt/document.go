// Package astfmt serializes a parsed module and its diagnostics into a
// compact binary form a later, out-of-process stage could consume without
// re-parsing source text. Non-goals per spec.md excludes that later stage
// itself (name resolution, IR lowering, codegen); this package only
// produces the wire document it would read.
package astfmt

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"loom/internal/ast"
	"loom/internal/diag"
	"loom/internal/diagfmt"
	"loom/internal/source"
)

// Schema is bumped whenever Document's shape changes incompatibly.
const Schema uint16 = 1

// DiagnosticRecord is the wire shape of one diag.Diagnostic.
type DiagnosticRecord struct {
	Severity string
	Code     uint16
	Path     string
	Line     uint32
	Col      uint32
	Message  string
	Notes    []NoteRecord
}

// NoteRecord is the wire shape of one diag.Note.
type NoteRecord struct {
	Path    string
	Line    uint32
	Col     uint32
	Message string
}

// Document is one parsed file: its AST rendered as a diagfmt.Node tree, and
// every diagnostic collected while parsing it.
type Document struct {
	Schema      uint16
	Path        string
	AST         diagfmt.Node
	Diagnostics []DiagnosticRecord
}

// Build assembles a Document from a parsed module, the interner its symbols
// were resolved against, the source manager it was loaded through, and the
// bag of diagnostics collected while parsing it.
func Build(path string, mod *ast.Module, in source.Interner, sm *source.SourceManager, bag *diag.Bag) Document {
	doc := Document{
		Schema: Schema,
		Path:   path,
		AST:    diagfmt.BuildModuleNode(mod, in),
	}
	for _, d := range bag.Items() {
		doc.Diagnostics = append(doc.Diagnostics, toRecord(d, sm))
	}
	return doc
}

func toRecord(d diag.Diagnostic, sm *source.SourceManager) DiagnosticRecord {
	start, _ := sm.Resolve(d.Primary)
	rec := DiagnosticRecord{
		Severity: d.Severity.String(),
		Code:     uint16(d.Code),
		Path:     sm.Get(d.Primary.File).Path,
		Line:     start.Line,
		Col:      start.Col,
		Message:  d.Message,
	}
	for _, n := range d.Notes {
		ns, _ := sm.Resolve(n.Span)
		rec.Notes = append(rec.Notes, NoteRecord{
			Path:    sm.Get(n.Span.File).Path,
			Line:    ns.Line,
			Col:     ns.Col,
			Message: n.Msg,
		})
	}
	return rec
}

// Encode msgpack-encodes doc to w.
func Encode(w io.Writer, doc Document) error {
	return msgpack.NewEncoder(w).Encode(doc)
}

// Decode reads a msgpack-encoded Document from r.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	err := msgpack.NewDecoder(r).Decode(&doc)
	return doc, err
}
