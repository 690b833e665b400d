package diagfmt

import "loom/internal/ast"

func (b *builder) stmt(id ast.StmtID) Node {
	if !id.IsValid() {
		return Node{Kind: "<none>"}
	}
	s := b.mod.Stmts.Get(id)
	if s == nil {
		return Node{Kind: "<invalid-stmt>"}
	}
	n := Node{Kind: stmtKindName(s.Kind), Span: s.Span}

	switch s.Kind {
	case ast.StmtLet:
		data, _ := b.mod.Stmts.Let(id)
		n.Children = []Node{b.pattern(data.Pattern)}
		if data.Type.IsValid() {
			n.Children = append(n.Children, Node{Kind: "TypeAnnotation", Children: []Node{b.expr(data.Type)}})
		}
		n.Children = append(n.Children, b.expr(data.Value))
	case ast.StmtDecl:
		data, _ := b.mod.Stmts.Decl(id)
		n.Children = []Node{b.decl(data.Decl)}
	case ast.StmtExpr:
		data, _ := b.mod.Stmts.Expr(id)
		n.Fields = map[string]any{"hasSemi": data.HasSemi}
		n.Children = []Node{b.expr(data.Expr)}
	case ast.StmtFor:
		data, _ := b.mod.Stmts.For(id)
		n.Fields = map[string]any{"isForIn": data.IsForIn}
		if data.IsForIn {
			n.Children = []Node{b.pattern(data.Binding), b.expr(data.Iterable), b.expr(data.Body)}
		} else {
			n.Children = []Node{b.stmt(data.Init), b.expr(data.Cond), b.stmt(data.Post), b.expr(data.Body)}
		}
	case ast.StmtBreak, ast.StmtContinue:
		// no payload
	case ast.StmtReturn:
		data, _ := b.mod.Stmts.Return(id)
		if data.Value.IsValid() {
			n.Children = []Node{b.expr(data.Value)}
		}
	case ast.StmtDefer:
		data, _ := b.mod.Stmts.Defer(id)
		n.Children = []Node{b.expr(data.Expr)}
	}
	return n
}

func stmtKindName(k ast.StmtKind) string {
	switch k {
	case ast.StmtLet:
		return "Let"
	case ast.StmtDecl:
		return "DeclStmt"
	case ast.StmtExpr:
		return "ExprStmt"
	case ast.StmtFor:
		return "For"
	case ast.StmtBreak:
		return "Break"
	case ast.StmtContinue:
		return "Continue"
	case ast.StmtReturn:
		return "Return"
	case ast.StmtDefer:
		return "Defer"
	default:
		return "UnknownStmt"
	}
}
