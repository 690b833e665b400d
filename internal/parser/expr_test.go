package parser_test

import (
	"testing"

	"loom/internal/ast"
)

// parseLetValue parses a single top-level function whose body is one
// `let x = <input>;` statement and returns the value expression's ID
// alongside the module it lives in.
func parseLetValue(t *testing.T, input string) (ast.ExprID, *ast.Module) {
	t.Helper()
	mod, _ := parseModuleOK(t, "fn f() { let x = "+input+"; }")
	fn, ok := mod.Decl.Fn(mod.Decls[0])
	if !ok {
		t.Fatalf("expected the module's only decl to be a fn")
	}
	block, ok := mod.Exprs.Block(fn.Body)
	if !ok {
		t.Fatalf("expected fn body to be a block")
	}
	if len(block.Stmts) != 1 {
		t.Fatalf("expected exactly one statement in the block, got %d", len(block.Stmts))
	}
	letStmt, ok := mod.Stmts.Let(block.Stmts[0])
	if !ok {
		t.Fatalf("expected the statement to be a let binding")
	}
	if !letStmt.Value.IsValid() {
		t.Fatalf("expected the let binding to have a value")
	}
	return letStmt.Value, mod
}

func TestParseLiterals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ast.ExprLitKind
	}{
		{"int", "42", ast.LitInt},
		{"float", "3.14", ast.LitFloat},
		{"string", `"hello"`, ast.LitString},
		{"char", "'a'", ast.LitChar},
		{"true", "true", ast.LitBool},
		{"false", "false", ast.LitBool},
		{"undef", "undef", ast.LitUndef},
		{"null", "null", ast.LitNull},
		{"unreachable", "unreachable", ast.LitUnreachable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, mod := parseLetValue(t, tt.input)
			lit, ok := mod.Exprs.Literal(value)
			if !ok {
				t.Fatalf("expected a literal expression, got kind %v", mod.Exprs.Get(value).Kind)
			}
			if lit.Kind != tt.kind {
				t.Fatalf("expected literal kind %v, got %v", tt.kind, lit.Kind)
			}
		})
	}
}

func TestParseBinaryOperators(t *testing.T) {
	tests := []struct {
		name string
		op   string
		want ast.ExprBinaryOp
	}{
		{"add", "+", ast.BinAdd},
		{"sub", "-", ast.BinSub},
		{"mul", "*", ast.BinMul},
		{"div", "/", ast.BinDiv},
		{"rem", "%", ast.BinRem},
		{"eq", "==", ast.BinEq},
		{"ne", "!=", ast.BinNe},
		{"lt", "<", ast.BinLt},
		{"le", "<=", ast.BinLe},
		{"gt", ">", ast.BinGt},
		{"ge", ">=", ast.BinGe},
		{"and", "&&", ast.BinAnd},
		{"or", "||", ast.BinOr},
		{"bitand", "&", ast.BinBitAnd},
		{"bitor", "|", ast.BinBitOr},
		{"bitxor", "^", ast.BinBitXor},
		{"shl", "<<", ast.BinShl},
		{"shr", ">>", ast.BinShr},
		{"coalesce", "??", ast.BinNullCoalesce},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, mod := parseLetValue(t, "a "+tt.op+" b")
			bin, ok := mod.Exprs.Binary(value)
			if !ok {
				t.Fatalf("expected a binary expression, got kind %v", mod.Exprs.Get(value).Kind)
			}
			if bin.Op != tt.want {
				t.Fatalf("expected op %v, got %v", tt.want, bin.Op)
			}
		})
	}
}

func TestParseAssignmentOperators(t *testing.T) {
	tests := []struct {
		name string
		op   string
		want ast.ExprAssignOp
	}{
		{"plain", "=", ast.AssignPlain},
		{"add", "+=", ast.AssignAdd},
		{"sub", "-=", ast.AssignSub},
		{"mul", "*=", ast.AssignMul},
		{"div", "/=", ast.AssignDiv},
		{"rem", "%=", ast.AssignRem},
		{"and", "&=", ast.AssignAnd},
		{"or", "|=", ast.AssignOr},
		{"xor", "^=", ast.AssignXor},
		{"shl", "<<=", ast.AssignShl},
		{"shr", ">>=", ast.AssignShr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, mod := parseLetValue(t, "a "+tt.op+" b")
			assign, ok := mod.Exprs.Assign(value)
			if !ok {
				t.Fatalf("expected an assign expression, got kind %v", mod.Exprs.Get(value).Kind)
			}
			if assign.Op != tt.want {
				t.Fatalf("expected op %v, got %v", tt.want, assign.Op)
			}
		})
	}
}

func TestParsePrecedenceMulBeforeAdd(t *testing.T) {
	value, mod := parseLetValue(t, "a + b * c")
	bin, ok := mod.Exprs.Binary(value)
	if !ok || bin.Op != ast.BinAdd {
		t.Fatalf("expected the top-level operator to be '+', got %+v", bin)
	}
	rhs, ok := mod.Exprs.Binary(bin.Right)
	if !ok || rhs.Op != ast.BinMul {
		t.Fatalf("expected the right operand to be 'b * c', got %+v", rhs)
	}
}

func TestParseAssignmentIsRightAssociative(t *testing.T) {
	value, mod := parseLetValue(t, "a = b = c")
	outer, ok := mod.Exprs.Assign(value)
	if !ok {
		t.Fatalf("expected an assign expression")
	}
	inner, ok := mod.Exprs.Assign(outer.Value)
	if !ok {
		t.Fatalf("expected 'b = c' nested on the right of 'a = ...'")
	}
	if _, ok := mod.Exprs.Ident(inner.Target); !ok {
		t.Fatalf("expected the inner assignment's target to be the identifier 'b'")
	}
}

func TestParseRangeExpressions(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantInclusive bool
		wantOpenEnd   bool
	}{
		{"exclusive", "0..10", false, false},
		{"inclusive", "0..=10", true, false},
		{"open_ended", "0..", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, mod := parseLetValue(t, tt.input)
			rng, ok := mod.Exprs.Range(value)
			if !ok {
				t.Fatalf("expected a range expression, got kind %v", mod.Exprs.Get(value).Kind)
			}
			if rng.Inclusive != tt.wantInclusive {
				t.Fatalf("expected inclusive=%v, got %v", tt.wantInclusive, rng.Inclusive)
			}
			if tt.wantOpenEnd && rng.High.IsValid() {
				t.Fatalf("expected an open-ended range with no upper bound")
			}
			if !tt.wantOpenEnd && !rng.High.IsValid() {
				t.Fatalf("expected an upper bound")
			}
		})
	}
}

func TestParseLeadingRangeExpressions(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantInclusive bool
	}{
		{"exclusive", "..5", false},
		{"inclusive", "..=5", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, mod := parseLetValue(t, tt.input)
			rng, ok := mod.Exprs.Range(value)
			if !ok {
				t.Fatalf("expected a range expression, got kind %v", mod.Exprs.Get(value).Kind)
			}
			if rng.Low.IsValid() {
				t.Fatalf("expected an absent lower bound")
			}
			if !rng.High.IsValid() {
				t.Fatalf("expected an upper bound")
			}
			if rng.Inclusive != tt.wantInclusive {
				t.Fatalf("expected inclusive=%v, got %v", tt.wantInclusive, rng.Inclusive)
			}
		})
	}
}

func TestParseUnaryOperators(t *testing.T) {
	tests := []struct {
		name string
		op   string
		want ast.ExprUnaryOp
	}{
		{"neg", "-a", ast.UnaryNeg},
		{"not", "!a", ast.UnaryNot},
		{"bitnot", "~a", ast.UnaryBitNot},
		{"hash", "#a", ast.UnaryHash},
		{"optional", "?a", ast.UnaryOptional},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, mod := parseLetValue(t, tt.op)
			un, ok := mod.Exprs.Unary(value)
			if !ok {
				t.Fatalf("expected a unary expression, got kind %v", mod.Exprs.Get(value).Kind)
			}
			if un.Op != tt.want {
				t.Fatalf("expected op %v, got %v", tt.want, un.Op)
			}
		})
	}
}

func TestParseAddressOf(t *testing.T) {
	value, mod := parseLetValue(t, "&mut a")
	addr, ok := mod.Exprs.AddressOf(value)
	if !ok {
		t.Fatalf("expected an address-of expression")
	}
	if !addr.Mut {
		t.Fatalf("expected the address-of to be mutable")
	}
}

func TestParseCallExpr(t *testing.T) {
	value, mod := parseLetValue(t, "f(1, 2, 3)")
	call, ok := mod.Exprs.Call(value)
	if !ok {
		t.Fatalf("expected a call expression")
	}
	if len(call.Args) != 3 {
		t.Fatalf("expected 3 arguments, got %d", len(call.Args))
	}
}

func TestParseIndexExpr(t *testing.T) {
	value, mod := parseLetValue(t, "arr[0]")
	if _, ok := mod.Exprs.Index(value); !ok {
		t.Fatalf("expected an index expression")
	}
}

func TestParseMemberChain(t *testing.T) {
	value, mod := parseLetValue(t, "a.b.c")
	outer, ok := mod.Exprs.Member(value)
	if !ok {
		t.Fatalf("expected a member expression")
	}
	if _, ok := mod.Exprs.Member(outer.Base); !ok {
		t.Fatalf("expected the base of 'a.b.c' to itself be a member expression ('a.b')")
	}
}

func TestParsePropagateAndDeref(t *testing.T) {
	if value, mod := parseLetValue(t, "a.?"); true {
		if _, ok := mod.Exprs.Propagate(value); !ok {
			t.Fatalf("expected a propagate expression")
		}
	}
	if value, mod := parseLetValue(t, "a.*"); true {
		if _, ok := mod.Exprs.Deref(value); !ok {
			t.Fatalf("expected a deref expression")
		}
	}
}

func TestParseGenericInstExpr(t *testing.T) {
	value, mod := parseLetValue(t, "f.<i32>(x)")
	call, ok := mod.Exprs.Call(value)
	if !ok {
		t.Fatalf("expected the outer expression to be a call")
	}
	inst, ok := mod.Exprs.GenericInst(call.Callee)
	if !ok {
		t.Fatalf("expected the callee to be a generic instantiation")
	}
	if len(inst.Args) != 1 {
		t.Fatalf("expected 1 generic argument, got %d", len(inst.Args))
	}
}

func TestParseMacroCallExpr(t *testing.T) {
	tests := []struct {
		name  string
		input string
		delim ast.MacroCallDelim
	}{
		{"paren", `log!(a, b, c)`, ast.DelimParen},
		{"bracket", `vec![1, 2, 3]`, ast.DelimBracket},
		{"brace", `html!{<div/>}`, ast.DelimBrace},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, mod := parseLetValue(t, tt.input)
			call, ok := mod.Exprs.MacroCall(value)
			if !ok {
				t.Fatalf("expected a macro call expression")
			}
			if call.Delim != tt.delim {
				t.Fatalf("expected delimiter %v, got %v", tt.delim, call.Delim)
			}
			if len(call.Tokens) == 0 {
				t.Fatalf("expected the macro call to capture its interior tokens raw")
			}
		})
	}
}

func TestParseMacroCallDetectsCrossKindDelimiterMismatch(t *testing.T) {
	_, ctx, _ := parseModule(t, `fn f() { let x = vec![(]; }`)
	if !ctx.HasErrors() {
		t.Fatalf("expected an error for a '(' left open inside a '[...]' macro call")
	}
}

func TestParseTupleAndGroupExpr(t *testing.T) {
	if value, mod := parseLetValue(t, "()"); true {
		tup, ok := mod.Exprs.Tuple(value)
		if !ok || len(tup.Elems) != 0 {
			t.Fatalf("expected an empty tuple")
		}
	}
	if value, mod := parseLetValue(t, "(a)"); true {
		if _, ok := mod.Exprs.Group(value); !ok {
			t.Fatalf("expected a grouped expression for '(a)'")
		}
	}
	if value, mod := parseLetValue(t, "(a,)"); true {
		tup, ok := mod.Exprs.Tuple(value)
		if !ok || len(tup.Elems) != 1 {
			t.Fatalf("expected a one-element tuple for '(a,)'")
		}
	}
	if value, mod := parseLetValue(t, "(a, b, c)"); true {
		tup, ok := mod.Exprs.Tuple(value)
		if !ok || len(tup.Elems) != 3 {
			t.Fatalf("expected a three-element tuple")
		}
	}
}

func TestParseArrayExpr(t *testing.T) {
	if value, mod := parseLetValue(t, "[]"); true {
		arr, ok := mod.Exprs.Array(value)
		if !ok || len(arr.Elems) != 0 {
			t.Fatalf("expected an empty array literal")
		}
	}
	if value, mod := parseLetValue(t, "[1, 2, 3]"); true {
		arr, ok := mod.Exprs.Array(value)
		if !ok || len(arr.Elems) != 3 {
			t.Fatalf("expected a three-element array literal")
		}
	}
	if value, mod := parseLetValue(t, "[0; 10]"); true {
		if _, ok := mod.Exprs.ArrayRepeat(value); !ok {
			t.Fatalf("expected an array repeat expression for '[0; 10]'")
		}
	}
}

func TestParseStructInit(t *testing.T) {
	value, mod := parseLetValue(t, "Point { x: 1, y: 2 }")
	init, ok := mod.Exprs.StructInit(value)
	if !ok {
		t.Fatalf("expected a struct init expression")
	}
	if len(init.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(init.Fields))
	}
}

func TestParseStructInitShorthand(t *testing.T) {
	value, mod := parseLetValue(t, "Point { x, y }")
	init, ok := mod.Exprs.StructInit(value)
	if !ok {
		t.Fatalf("expected a struct init expression")
	}
	for _, f := range init.Fields {
		if !f.Shorthand {
			t.Fatalf("expected every field to be shorthand")
		}
	}
}

func TestParseIfExpr(t *testing.T) {
	value, mod := parseLetValue(t, "if a { 1 } else { 2 }")
	ifExpr, ok := mod.Exprs.If(value)
	if !ok {
		t.Fatalf("expected an if expression")
	}
	if !ifExpr.Else.IsValid() {
		t.Fatalf("expected an else branch")
	}
}

func TestParseIfConditionDoesNotConsumeStructLiteral(t *testing.T) {
	// Inside an 'if' condition, a bare 'Name {' must open the then-block,
	// not a struct literal, even though 'Name { ... }' is a valid struct
	// literal everywhere else.
	mod, _ := parseModuleOK(t, "fn f() { if Point { true } }")
	fn, _ := mod.Decl.Fn(mod.Decls[0])
	block, _ := mod.Exprs.Block(fn.Body)
	if !block.Result.IsValid() {
		t.Fatalf("expected the trailing if-expression to be the block's result")
	}
	ifExpr, ok := mod.Exprs.If(block.Result)
	if !ok {
		t.Fatalf("expected an if expression")
	}
	if _, ok := mod.Exprs.Ident(ifExpr.Cond); !ok {
		t.Fatalf("expected the condition to be the bare identifier 'Point'")
	}
}

func TestParseMatchExpr(t *testing.T) {
	value, mod := parseLetValue(t, `match a {
		0 => 1,
		n if n > 0 => 2,
		_ => 3,
	}`)
	match, ok := mod.Exprs.Match(value)
	if !ok {
		t.Fatalf("expected a match expression")
	}
	if len(match.Arms) != 3 {
		t.Fatalf("expected 3 arms, got %d", len(match.Arms))
	}
	if !match.Arms[1].Guard.IsValid() {
		t.Fatalf("expected the second arm to have a guard")
	}
}

func TestParseMatchRecoversFromBadArm(t *testing.T) {
	mod, ctx, _ := parseModule(t, `fn f() { let x = match a {
		0 => 1,
		=> 2,
		_ => 3,
	}; }`)
	if !ctx.HasErrors() {
		t.Fatalf("expected an error from the malformed arm")
	}
	fn, _ := mod.Decl.Fn(mod.Decls[0])
	block, _ := mod.Exprs.Block(fn.Body)
	letStmt, _ := mod.Stmts.Let(block.Stmts[0])
	match, ok := mod.Exprs.Match(letStmt.Value)
	if !ok {
		t.Fatalf("expected a match expression despite the bad arm")
	}
	if len(match.Arms) != 2 {
		t.Fatalf("expected parsing to recover and keep the other 2 arms, got %d", len(match.Arms))
	}
}

func TestParseBlockTrailingExprBecomesResult(t *testing.T) {
	mod, _ := parseModuleOK(t, "fn f() { 1; 2; 3 }")
	fn, _ := mod.Decl.Fn(mod.Decls[0])
	block, ok := mod.Exprs.Block(fn.Body)
	if !ok {
		t.Fatalf("expected a block")
	}
	if len(block.Stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(block.Stmts))
	}
	if !block.Result.IsValid() {
		t.Fatalf("expected the trailing '3' to become the block's result")
	}
	lit, ok := mod.Exprs.Literal(block.Result)
	if !ok || lit.Kind != ast.LitInt {
		t.Fatalf("expected the block result to be the int literal '3'")
	}
}

func TestParseBlockWithSemicolonHasNoResult(t *testing.T) {
	mod, _ := parseModuleOK(t, "fn f() { 1; 2; 3; }")
	fn, _ := mod.Decl.Fn(mod.Decls[0])
	block, ok := mod.Exprs.Block(fn.Body)
	if !ok {
		t.Fatalf("expected a block")
	}
	if len(block.Stmts) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(block.Stmts))
	}
	if block.Result.IsValid() {
		t.Fatalf("expected no result when the last statement has a trailing semicolon")
	}
}
