package diagfmt

import (
	"loom/internal/ast"
	"loom/internal/source"
)

func (b *builder) expr(id ast.ExprID) Node {
	if !id.IsValid() {
		return Node{Kind: "<none>"}
	}
	e := b.mod.Exprs.Get(id)
	if e == nil {
		return Node{Kind: "<invalid-expr>"}
	}
	n := Node{Kind: exprKindName(e.Kind), Span: e.Span}

	switch e.Kind {
	case ast.ExprIdent:
		data, _ := b.mod.Exprs.Ident(id)
		n.Text = b.sym(data.Name)
	case ast.ExprLit:
		data, _ := b.mod.Exprs.Literal(id)
		n.Fields = map[string]any{"litKind": literalKindName(data.Kind)}
		if data.Text != source.NoSymbolID {
			n.Text = b.sym(data.Text)
		}
	case ast.ExprBinary:
		data, _ := b.mod.Exprs.Binary(id)
		n.Fields = map[string]any{"op": binaryOpName(data.Op)}
		n.Children = []Node{b.expr(data.Left), b.expr(data.Right)}
	case ast.ExprUnary:
		data, _ := b.mod.Exprs.Unary(id)
		n.Fields = map[string]any{"op": unaryOpName(data.Op)}
		n.Children = []Node{b.expr(data.Operand)}
	case ast.ExprAssign:
		data, _ := b.mod.Exprs.Assign(id)
		n.Fields = map[string]any{"op": assignOpName(data.Op)}
		n.Children = []Node{b.expr(data.Target), b.expr(data.Value)}
	case ast.ExprAddressOf:
		data, _ := b.mod.Exprs.AddressOf(id)
		n.Fields = map[string]any{"mut": data.Mut}
		n.Children = []Node{b.expr(data.Operand)}
	case ast.ExprRawPointerType:
		data, _ := b.mod.Exprs.RawPointerType(id)
		n.Fields = map[string]any{"mut": data.Mut}
		n.Children = []Node{b.expr(data.Operand)}
	case ast.ExprCall:
		data, _ := b.mod.Exprs.Call(id)
		n.Children = append([]Node{b.expr(data.Callee)}, b.exprList(data.Args)...)
	case ast.ExprIndex:
		data, _ := b.mod.Exprs.Index(id)
		n.Children = []Node{b.expr(data.Base), b.expr(data.Index)}
	case ast.ExprMember:
		data, _ := b.mod.Exprs.Member(id)
		n.Text = b.sym(data.Name)
		n.Children = []Node{b.expr(data.Base)}
	case ast.ExprGenericInst:
		data, _ := b.mod.Exprs.GenericInst(id)
		n.Children = append([]Node{b.expr(data.Base)}, b.exprList(data.Args)...)
	case ast.ExprPropagate:
		data, _ := b.mod.Exprs.Propagate(id)
		n.Children = []Node{b.expr(data.Operand)}
	case ast.ExprDeref:
		data, _ := b.mod.Exprs.Deref(id)
		n.Children = []Node{b.expr(data.Operand)}
	case ast.ExprMacroCall:
		data, _ := b.mod.Exprs.MacroCall(id)
		n.Fields = map[string]any{"delim": macroDelimName(data.Delim), "tokens": len(data.Tokens)}
		n.Children = []Node{b.expr(data.Callee)}
	case ast.ExprGroup:
		data, _ := b.mod.Exprs.Group(id)
		n.Children = []Node{b.expr(data.Inner)}
	case ast.ExprTuple:
		data, _ := b.mod.Exprs.Tuple(id)
		n.Children = b.exprList(data.Elems)
	case ast.ExprArray:
		data, _ := b.mod.Exprs.Array(id)
		n.Children = b.exprList(data.Elems)
	case ast.ExprArrayRepeat:
		data, _ := b.mod.Exprs.ArrayRepeat(id)
		n.Children = []Node{b.expr(data.Value), b.expr(data.Count)}
	case ast.ExprSliceType:
		data, _ := b.mod.Exprs.SliceType(id)
		n.Children = []Node{b.expr(data.Elem)}
	case ast.ExprArrayType:
		data, _ := b.mod.Exprs.ArrayType(id)
		n.Children = []Node{b.expr(data.Elem), b.expr(data.Size)}
	case ast.ExprOptionalType:
		data, _ := b.mod.Exprs.OptionalType(id)
		n.Children = []Node{b.expr(data.Elem)}
	case ast.ExprFnType:
		data, _ := b.mod.Exprs.FnType(id)
		n.Children = append(b.exprList(data.Params), b.expr(data.Ret))
	case ast.ExprNeverType:
		// no payload
	case ast.ExprRange:
		data, _ := b.mod.Exprs.Range(id)
		n.Fields = map[string]any{"inclusive": data.Inclusive}
		n.Children = []Node{b.expr(data.Low), b.expr(data.High)}
	case ast.ExprIf:
		data, _ := b.mod.Exprs.If(id)
		n.Children = []Node{b.expr(data.Cond), b.expr(data.Then), b.expr(data.Else)}
	case ast.ExprMatch:
		data, _ := b.mod.Exprs.Match(id)
		n.Children = append([]Node{b.expr(data.Scrutinee)}, b.matchArms(data.Arms)...)
	case ast.ExprBlock:
		data, _ := b.mod.Exprs.Block(id)
		for _, s := range data.Stmts {
			n.Children = append(n.Children, b.stmt(s))
		}
		if data.Result.IsValid() {
			n.Children = append(n.Children, b.expr(data.Result))
		}
	case ast.ExprStructInit:
		data, _ := b.mod.Exprs.StructInit(id)
		n.Children = append([]Node{b.expr(data.Type)}, b.structInitFields(data.Fields)...)
	}
	return n
}

func (b *builder) exprList(ids []ast.ExprID) []Node {
	out := make([]Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, b.expr(id))
	}
	return out
}

func (b *builder) matchArms(arms []ast.MatchArm) []Node {
	out := make([]Node, 0, len(arms))
	for _, a := range arms {
		arm := Node{Kind: "MatchArm", Children: []Node{b.pattern(a.Pattern)}}
		if a.Guard.IsValid() {
			arm.Children = append(arm.Children, Node{Kind: "Guard", Children: []Node{b.expr(a.Guard)}})
		}
		arm.Children = append(arm.Children, b.expr(a.Body))
		out = append(out, arm)
	}
	return out
}

func (b *builder) structInitFields(fields []ast.StructInitField) []Node {
	out := make([]Node, 0, len(fields))
	for _, f := range fields {
		out = append(out, Node{
			Kind:     "Field",
			Text:     b.sym(f.Name),
			Fields:   map[string]any{"shorthand": f.Shorthand},
			Children: []Node{b.expr(f.Value)},
		})
	}
	return out
}

func exprKindName(k ast.ExprKind) string {
	switch k {
	case ast.ExprIdent:
		return "Ident"
	case ast.ExprLit:
		return "Literal"
	case ast.ExprBinary:
		return "Binary"
	case ast.ExprUnary:
		return "Unary"
	case ast.ExprAssign:
		return "Assign"
	case ast.ExprAddressOf:
		return "AddressOf"
	case ast.ExprRawPointerType:
		return "RawPointerType"
	case ast.ExprCall:
		return "Call"
	case ast.ExprIndex:
		return "Index"
	case ast.ExprMember:
		return "Member"
	case ast.ExprGenericInst:
		return "GenericInst"
	case ast.ExprPropagate:
		return "Propagate"
	case ast.ExprDeref:
		return "Deref"
	case ast.ExprMacroCall:
		return "MacroCall"
	case ast.ExprGroup:
		return "Group"
	case ast.ExprTuple:
		return "Tuple"
	case ast.ExprArray:
		return "Array"
	case ast.ExprArrayRepeat:
		return "ArrayRepeat"
	case ast.ExprSliceType:
		return "SliceType"
	case ast.ExprArrayType:
		return "ArrayType"
	case ast.ExprOptionalType:
		return "OptionalType"
	case ast.ExprFnType:
		return "FnType"
	case ast.ExprNeverType:
		return "NeverType"
	case ast.ExprRange:
		return "Range"
	case ast.ExprIf:
		return "If"
	case ast.ExprMatch:
		return "Match"
	case ast.ExprBlock:
		return "Block"
	case ast.ExprStructInit:
		return "StructInit"
	default:
		return "UnknownExpr"
	}
}

func literalKindName(k ast.ExprLitKind) string {
	switch k {
	case ast.LitInt:
		return "int"
	case ast.LitFloat:
		return "float"
	case ast.LitChar:
		return "char"
	case ast.LitString:
		return "string"
	case ast.LitBool:
		return "bool"
	case ast.LitUndef:
		return "undef"
	case ast.LitNull:
		return "null"
	case ast.LitUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

func binaryOpName(op ast.ExprBinaryOp) string {
	names := map[ast.ExprBinaryOp]string{
		ast.BinAdd: "+", ast.BinSub: "-", ast.BinMul: "*", ast.BinDiv: "/", ast.BinRem: "%",
		ast.BinShl: "<<", ast.BinShr: ">>", ast.BinBitAnd: "&", ast.BinBitOr: "|", ast.BinBitXor: "^",
		ast.BinAnd: "&&", ast.BinOr: "||", ast.BinEq: "==", ast.BinNe: "!=",
		ast.BinLt: "<", ast.BinLe: "<=", ast.BinGt: ">", ast.BinGe: ">=", ast.BinNullCoalesce: "??",
	}
	if s, ok := names[op]; ok {
		return s
	}
	return "?"
}

func unaryOpName(op ast.ExprUnaryOp) string {
	switch op {
	case ast.UnaryNeg:
		return "-"
	case ast.UnaryNot:
		return "!"
	case ast.UnaryBitNot:
		return "~"
	case ast.UnaryHash:
		return "#"
	case ast.UnaryOptional:
		return "?"
	default:
		return "?"
	}
}

func assignOpName(op ast.ExprAssignOp) string {
	names := map[ast.ExprAssignOp]string{
		ast.AssignPlain: "=", ast.AssignAdd: "+=", ast.AssignSub: "-=", ast.AssignMul: "*=",
		ast.AssignDiv: "/=", ast.AssignRem: "%=", ast.AssignAnd: "&=", ast.AssignOr: "|=",
		ast.AssignXor: "^=", ast.AssignShl: "<<=", ast.AssignShr: ">>=",
	}
	if s, ok := names[op]; ok {
		return s
	}
	return "?"
}

func macroDelimName(d ast.MacroCallDelim) string {
	switch d {
	case ast.DelimParen:
		return "()"
	case ast.DelimBracket:
		return "[]"
	case ast.DelimBrace:
		return "{}"
	default:
		return "?"
	}
}
