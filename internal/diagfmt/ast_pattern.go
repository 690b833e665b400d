package diagfmt

import "loom/internal/ast"

func (b *builder) pattern(id ast.PatternID) Node {
	if !id.IsValid() {
		return Node{Kind: "<none>"}
	}
	p := b.mod.Patterns.Get(id)
	if p == nil {
		return Node{Kind: "<invalid-pattern>"}
	}
	n := Node{Kind: patternKindName(p.Kind), Span: p.Span}

	switch p.Kind {
	case ast.PatWildcard:
		// no payload
	case ast.PatLiteral:
		data, _ := b.mod.Patterns.Literal(id)
		n.Children = []Node{b.expr(data.Value)}
	case ast.PatLiteralRange:
		data, _ := b.mod.Patterns.LiteralRange(id)
		n.Fields = map[string]any{"inclusive": data.Inclusive}
		n.Children = []Node{b.expr(data.Low), b.expr(data.High)}
	case ast.PatIdent:
		data, _ := b.mod.Patterns.Ident(id)
		n.Text = b.sym(data.Name)
		n.Fields = map[string]any{"mut": data.Mut}
	case ast.PatTuple:
		data, _ := b.mod.Patterns.Tuple(id)
		for _, e := range data.Elems {
			n.Children = append(n.Children, b.pattern(e))
		}
	case ast.PatStruct:
		data, _ := b.mod.Patterns.Struct(id)
		n.Fields = map[string]any{"hasRest": data.HasRest}
		n.Children = append([]Node{b.expr(data.Type)}, b.fieldPatterns(data.Fields)...)
	case ast.PatEnum:
		data, _ := b.mod.Patterns.Enum(id)
		n.Text = b.sym(data.Variant)
		if data.Type.IsValid() {
			n.Children = append(n.Children, Node{Kind: "QualifyingType", Children: []Node{b.expr(data.Type)}})
		}
		for _, a := range data.Args {
			n.Children = append(n.Children, b.pattern(a))
		}
	}
	return n
}

func (b *builder) fieldPatterns(fields []ast.FieldPattern) []Node {
	out := make([]Node, 0, len(fields))
	for _, f := range fields {
		out = append(out, Node{
			Kind:     "FieldPattern",
			Text:     b.sym(f.Name),
			Fields:   map[string]any{"mut": f.Mut, "shorthand": f.Shorthand},
			Children: []Node{b.pattern(f.Pattern)},
		})
	}
	return out
}

func patternKindName(k ast.PatternKind) string {
	switch k {
	case ast.PatWildcard:
		return "Wildcard"
	case ast.PatLiteral:
		return "Literal"
	case ast.PatLiteralRange:
		return "LiteralRange"
	case ast.PatIdent:
		return "Ident"
	case ast.PatTuple:
		return "Tuple"
	case ast.PatStruct:
		return "Struct"
	case ast.PatEnum:
		return "Enum"
	default:
		return "UnknownPattern"
	}
}
