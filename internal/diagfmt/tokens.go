package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"loom/internal/source"
	"loom/internal/token"
)

// TokenOutput is the JSON shape of one token.Token.
type TokenOutput struct {
	Kind    string      `json:"kind"`
	Text    string      `json:"text,omitempty"`
	Span    source.Span `json:"span"`
	Line    uint32      `json:"line"`
	Col     uint32      `json:"col"`
	Leading []string    `json:"leading,omitempty"`
}

// FormatTokensPretty prints one line per token: its 1-based index, kind,
// quoted text (if any), source position, and any leading trivia kinds.
func FormatTokensPretty(w io.Writer, tokens []token.Token, sm *source.SourceManager) error {
	for i, tok := range tokens {
		start, end := sm.Resolve(tok.Span)

		leading := make([]string, 0, len(tok.Leading))
		for _, tr := range tok.Leading {
			leading = append(leading, tr.Kind.String())
		}

		fmt.Fprintf(w, "%4d: %-16s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %-20q", tok.Text)
		} else {
			fmt.Fprintf(w, " %-20s", "")
		}
		fmt.Fprintf(w, " %d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
		if len(leading) > 0 {
			fmt.Fprintf(w, "  (leading: %s)", strings.Join(leading, ", "))
		}
		fmt.Fprintln(w)

		if tok.Kind == token.Eof {
			break
		}
	}
	return nil
}

// FormatTokensJSON writes tokens as a JSON array, stopping after Eof.
func FormatTokensJSON(w io.Writer, tokens []token.Token, sm *source.SourceManager) error {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		start, _ := sm.Resolve(tok.Span)
		leading := make([]string, 0, len(tok.Leading))
		for _, tr := range tok.Leading {
			leading = append(leading, tr.Kind.String())
		}
		out = append(out, TokenOutput{
			Kind:    tok.Kind.String(),
			Text:    tok.Text,
			Span:    tok.Span,
			Line:    start.Line,
			Col:     start.Col,
			Leading: leading,
		})
		if tok.Kind == token.Eof {
			break
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
