package diagfmt

import (
	"loom/internal/ast"
	"loom/internal/source"
)

func (b *builder) decl(id ast.DeclID) Node {
	if !id.IsValid() {
		return Node{Kind: "<none>"}
	}
	d := b.mod.Decl.Get(id)
	if d == nil {
		return Node{Kind: "<invalid-decl>"}
	}
	n := Node{Kind: declKindName(d.Kind), Span: d.Span}

	switch d.Kind {
	case ast.DeclFn:
		data, _ := b.mod.Decl.Fn(id)
		n.Text = b.sym(data.Name)
		n.Fields = map[string]any{"pub": data.Pub, "variadic": data.Variadic}
		n.Children = append(n.Children, b.generics(data.Generics)...)
		for _, p := range data.Params {
			n.Children = append(n.Children, b.fnParam(p))
		}
		if data.ReturnType.IsValid() {
			n.Children = append(n.Children, Node{Kind: "ReturnType", Children: []Node{b.expr(data.ReturnType)}})
		}
		if data.Body.IsValid() {
			n.Children = append(n.Children, b.expr(data.Body))
		}
	case ast.DeclStruct:
		data, _ := b.mod.Decl.Struct(id)
		n.Text = b.sym(data.Name)
		n.Fields = map[string]any{"pub": data.Pub}
		n.Children = append(n.Children, b.generics(data.Generics)...)
		if data.Base.IsValid() {
			n.Children = append(n.Children, Node{Kind: "Base", Children: []Node{b.expr(data.Base)}})
		}
		n.Children = append(n.Children, b.structFields(data.Fields)...)
		for _, nested := range data.Nested {
			n.Children = append(n.Children, b.decl(nested))
		}
	case ast.DeclEnum:
		data, _ := b.mod.Decl.Enum(id)
		n.Text = b.sym(data.Name)
		n.Fields = map[string]any{"pub": data.Pub}
		n.Children = append(n.Children, b.generics(data.Generics)...)
		if data.Underlying.IsValid() {
			n.Children = append(n.Children, Node{Kind: "Underlying", Children: []Node{b.expr(data.Underlying)}})
		}
		for _, v := range data.Variants {
			n.Children = append(n.Children, b.enumVariant(v))
		}
	case ast.DeclUnion:
		data, _ := b.mod.Decl.Union(id)
		n.Text = b.sym(data.Name)
		n.Fields = map[string]any{"pub": data.Pub}
		n.Children = append(n.Children, b.generics(data.Generics)...)
		n.Children = append(n.Children, b.structFields(data.Fields)...)
	case ast.DeclTrait:
		data, _ := b.mod.Decl.Trait(id)
		n.Text = b.sym(data.Name)
		n.Fields = map[string]any{"pub": data.Pub}
		n.Children = append(n.Children, b.generics(data.Generics)...)
		for _, st := range data.SuperTraits {
			n.Children = append(n.Children, Node{Kind: "SuperTrait", Children: []Node{b.expr(st)}})
		}
		for _, m := range data.Members {
			n.Children = append(n.Children, b.decl(m))
		}
	case ast.DeclImpl:
		data, _ := b.mod.Decl.Impl(id)
		n.Children = append(n.Children, b.generics(data.Generics)...)
		n.Children = append(n.Children, Node{Kind: "Target", Children: []Node{b.expr(data.Target)}})
		if data.Trait.IsValid() {
			n.Children = append(n.Children, Node{Kind: "Trait", Children: []Node{b.expr(data.Trait)}})
		}
		for _, m := range data.Members {
			n.Children = append(n.Children, b.decl(m))
		}
	case ast.DeclMacro:
		data, _ := b.mod.Decl.Macro(id)
		n.Text = b.sym(data.Name)
		for i, r := range data.Rules {
			n.Children = append(n.Children, b.macroRule(i, r))
		}
	case ast.DeclUse:
		data, _ := b.mod.Decl.Use(id)
		n.Fields = map[string]any{"pub": data.Pub, "relative": data.Relative, "glob": data.Glob}
		segs := make([]string, 0, len(data.Segments))
		for _, s := range data.Segments {
			segs = append(segs, b.sym(s))
		}
		n.Text = joinDots(segs)
		if data.Alias != source.NoSymbolID {
			n.Fields["alias"] = b.sym(data.Alias)
		}
		for _, g := range data.Group {
			gsegs := make([]string, 0, len(g.Segments))
			for _, s := range g.Segments {
				gsegs = append(gsegs, b.sym(s))
			}
			gn := Node{Kind: "GroupItem", Text: joinDots(gsegs)}
			if g.Alias != source.NoSymbolID {
				gn.Fields = map[string]any{"alias": b.sym(g.Alias)}
			}
			n.Children = append(n.Children, gn)
		}
	case ast.DeclExtern:
		data, _ := b.mod.Decl.Extern(id)
		for _, m := range data.Members {
			n.Children = append(n.Children, b.decl(m))
		}
	case ast.DeclTypeAlias:
		data, _ := b.mod.Decl.TypeAlias(id)
		n.Text = b.sym(data.Name)
		n.Fields = map[string]any{"pub": data.Pub}
		n.Children = append(n.Children, b.generics(data.Generics)...)
		n.Children = append(n.Children, b.expr(data.Target))
	case ast.DeclGlobalVar:
		data, _ := b.mod.Decl.GlobalVar(id)
		n.Text = b.sym(data.Name)
		n.Fields = map[string]any{"pub": data.Pub, "varKind": globalVarKindName(data.Kind)}
		if data.Type.IsValid() {
			n.Children = append(n.Children, Node{Kind: "TypeAnnotation", Children: []Node{b.expr(data.Type)}})
		}
		if data.Value.IsValid() {
			n.Children = append(n.Children, b.expr(data.Value))
		}
	}
	return n
}

func (b *builder) generics(params []ast.TypeParam) []Node {
	if len(params) == 0 {
		return nil
	}
	out := make([]Node, 0, len(params))
	for _, p := range params {
		g := Node{Kind: "TypeParam", Text: b.sym(p.Name)}
		for _, bound := range p.Bounds {
			g.Children = append(g.Children, Node{Kind: "Bound", Children: []Node{b.expr(bound)}})
		}
		out = append(out, g)
	}
	return []Node{{Kind: "Generics", Children: out}}
}

func (b *builder) fnParam(p ast.FnParam) Node {
	n := Node{Kind: "Param", Text: b.sym(p.Name)}
	n.Fields = map[string]any{
		"isSelf":      p.IsSelf,
		"selfRef":     p.SelfRef,
		"selfMut":     p.SelfMut,
		"bindingCast": p.BindingCast,
	}
	if p.Type.IsValid() {
		n.Children = append(n.Children, Node{Kind: "Type", Children: []Node{b.expr(p.Type)}})
	}
	if p.Default.IsValid() {
		n.Children = append(n.Children, Node{Kind: "Default", Children: []Node{b.expr(p.Default)}})
	}
	return n
}

func (b *builder) structFields(fields []ast.StructField) []Node {
	out := make([]Node, 0, len(fields))
	for _, f := range fields {
		fn := Node{Kind: "Field", Text: b.sym(f.Name), Fields: map[string]any{"pub": f.Pub}}
		fn.Children = append(fn.Children, Node{Kind: "Type", Children: []Node{b.expr(f.Type)}})
		if f.Default.IsValid() {
			fn.Children = append(fn.Children, Node{Kind: "Default", Children: []Node{b.expr(f.Default)}})
		}
		out = append(out, fn)
	}
	return out
}

func (b *builder) enumVariant(v ast.EnumVariant) Node {
	n := Node{Kind: "Variant", Text: b.sym(v.Name), Fields: map[string]any{"variantKind": enumVariantKindName(v.Kind)}}
	switch v.Kind {
	case ast.EnumVariantTag:
		n.Children = []Node{b.expr(v.Tag)}
	case ast.EnumVariantTuple:
		n.Children = b.exprList(v.TupleTypes)
	case ast.EnumVariantStruct:
		n.Children = b.structFields(v.Fields)
	}
	return n
}

func (b *builder) macroRule(index int, r ast.MacroRule) Node {
	n := Node{Kind: "Rule", Fields: map[string]any{"index": index, "bodyTokens": len(r.Body)}}
	for _, m := range r.Matchers {
		n.Children = append(n.Children, b.macroMatcher(m))
	}
	return n
}

func (b *builder) macroMatcher(m ast.MacroMatcher) Node {
	switch m.Kind {
	case ast.MacroMatchLiteral:
		return Node{Kind: "Literal", Text: m.LiteralTok.Text}
	case ast.MacroMatchCapture:
		return Node{Kind: "Capture", Text: b.sym(m.CaptureName), Fields: map[string]any{"spec": fragSpecName(m.CaptureSpec)}}
	case ast.MacroMatchRepetition:
		n := Node{Kind: "Repetition", Fields: map[string]any{"op": repOpName(m.Op)}}
		if m.Sep != nil {
			n.Fields["sep"] = m.Sep.Text
		}
		for _, sub := range m.Sub {
			n.Children = append(n.Children, b.macroMatcher(sub))
		}
		return n
	default:
		return Node{Kind: "UnknownMatcher"}
	}
}

func joinDots(segs []string) string {
	out := ""
	for i, s := range segs {
		if i > 0 {
			out += "."
		}
		out += s
	}
	return out
}

func declKindName(k ast.DeclKind) string {
	switch k {
	case ast.DeclFn:
		return "Fn"
	case ast.DeclStruct:
		return "Struct"
	case ast.DeclEnum:
		return "Enum"
	case ast.DeclUnion:
		return "Union"
	case ast.DeclTrait:
		return "Trait"
	case ast.DeclImpl:
		return "Impl"
	case ast.DeclMacro:
		return "Macro"
	case ast.DeclUse:
		return "Use"
	case ast.DeclExtern:
		return "Extern"
	case ast.DeclTypeAlias:
		return "TypeAlias"
	case ast.DeclGlobalVar:
		return "GlobalVar"
	default:
		return "UnknownDecl"
	}
}

func globalVarKindName(k ast.GlobalVarKind) string {
	switch k {
	case ast.GlobalConst:
		return "const"
	case ast.GlobalStatic:
		return "static"
	case ast.GlobalStaticMut:
		return "static mut"
	default:
		return "?"
	}
}

func enumVariantKindName(k ast.EnumVariantKind) string {
	switch k {
	case ast.EnumVariantUnit:
		return "unit"
	case ast.EnumVariantTag:
		return "tag"
	case ast.EnumVariantTuple:
		return "tuple"
	case ast.EnumVariantStruct:
		return "struct"
	default:
		return "?"
	}
}

func fragSpecName(s ast.FragSpec) string {
	switch s {
	case ast.FragExpr:
		return "expr"
	case ast.FragIdent:
		return "ident"
	case ast.FragType:
		return "ty"
	case ast.FragStmt:
		return "stmt"
	case ast.FragBlock:
		return "block"
	case ast.FragPath:
		return "path"
	case ast.FragLiteral:
		return "literal"
	case ast.FragTokenTree:
		return "tt"
	default:
		return "?"
	}
}

func repOpName(op ast.RepOp) string {
	switch op {
	case ast.RepNone:
		return ""
	case ast.RepStar:
		return "*"
	case ast.RepPlus:
		return "+"
	case ast.RepOnce:
		return "?"
	default:
		return "?"
	}
}
