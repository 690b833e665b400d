package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"loom/internal/ast"
	"loom/internal/source"
)

// Node is a generic rendering of one AST node, used uniformly for pretty,
// tree, and JSON output so the three formats stay in lockstep by
// construction instead of drifting apart as separate walkers.
type Node struct {
	Kind     string         `json:"kind"`
	Span     source.Span    `json:"span"`
	Text     string         `json:"text,omitempty"`
	Fields   map[string]any `json:"fields,omitempty"`
	Children []Node         `json:"children,omitempty"`
}

// builder threads the arenas and interner every per-kind node function
// needs without repeating four parameters on every call.
type builder struct {
	mod *ast.Module
	in  source.Interner
}

func (b *builder) sym(id source.SymbolID) string {
	s, ok := b.in.Lookup(id)
	if !ok {
		return "<?>"
	}
	return s
}

// BuildModuleNode renders mod's top-level declarations as a Node tree
// rooted at a synthetic "Module" node.
func BuildModuleNode(mod *ast.Module, in source.Interner) Node {
	b := &builder{mod: mod, in: in}
	n := Node{Kind: "Module", Span: mod.Span}
	for _, d := range mod.Decls {
		n.Children = append(n.Children, b.decl(d))
	}
	return n
}

// FormatASTPretty writes an indented, one-node-per-line rendering of mod.
func FormatASTPretty(w io.Writer, mod *ast.Module, in source.Interner, sm *source.SourceManager) error {
	root := BuildModuleNode(mod, in)
	writePretty(w, root, 0, sm)
	return nil
}

// FormatASTTree is a compact variant of FormatASTPretty using box-drawing
// connectors, in the style of a directory tree listing.
func FormatASTTree(w io.Writer, mod *ast.Module, in source.Interner, sm *source.SourceManager) error {
	root := BuildModuleNode(mod, in)
	writeTree(w, root, "", true, sm)
	return nil
}

// FormatASTJSON writes mod as an indented JSON document.
func FormatASTJSON(w io.Writer, mod *ast.Module, in source.Interner) error {
	root := BuildModuleNode(mod, in)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(root)
}

func writePretty(w io.Writer, n Node, depth int, sm *source.SourceManager) {
	fmt.Fprintf(w, "%s%s%s\n", strings.Repeat("  ", depth), n.Kind, nodeSuffix(n, sm))
	for _, c := range n.Children {
		writePretty(w, c, depth+1, sm)
	}
}

func writeTree(w io.Writer, n Node, prefix string, last bool, sm *source.SourceManager) {
	connector := "├── "
	nextPrefix := prefix + "│   "
	if last {
		connector = "└── "
		nextPrefix = prefix + "    "
	}
	fmt.Fprintf(w, "%s%s%s%s\n", prefix, connector, n.Kind, nodeSuffix(n, sm))
	for i, c := range n.Children {
		writeTree(w, c, nextPrefix, i == len(n.Children)-1, sm)
	}
}

func nodeSuffix(n Node, sm *source.SourceManager) string {
	var b strings.Builder
	if n.Text != "" {
		fmt.Fprintf(&b, " %q", n.Text)
	}
	for _, k := range sortedFieldKeys(n.Fields) {
		fmt.Fprintf(&b, " %s=%v", k, n.Fields[k])
	}
	if sm != nil {
		start, end := sm.Resolve(n.Span)
		fmt.Fprintf(&b, " (%d:%d-%d:%d)", start.Line, start.Col, end.Line, end.Col)
	}
	return b.String()
}

func sortedFieldKeys(fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	// Field maps are small (at most a handful of scalar flags per node);
	// insertion order isn't tracked, so a plain sort keeps output stable.
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}
