package parser_test

import (
	"testing"

	"loom/internal/ast"
)

// parseMatchPattern parses a single match expression with one arm whose
// pattern is the input, and returns that arm's pattern ID alongside the
// module it lives in.
func parseMatchPattern(t *testing.T, input string) (ast.PatternID, *ast.Module) {
	t.Helper()
	value, mod := parseLetValue(t, "match scrutinee { "+input+" => 0 }")
	match, ok := mod.Exprs.Match(value)
	if !ok {
		t.Fatalf("expected a match expression")
	}
	if len(match.Arms) != 1 {
		t.Fatalf("expected exactly 1 arm, got %d", len(match.Arms))
	}
	return match.Arms[0].Pattern, mod
}

func TestParseWildcardPattern(t *testing.T) {
	pat, mod := parseMatchPattern(t, "_")
	if mod.Patterns.Get(pat).Kind != ast.PatWildcard {
		t.Fatalf("expected a wildcard pattern")
	}
}

func TestParseIdentPattern(t *testing.T) {
	pat, mod := parseMatchPattern(t, "x")
	ident, ok := mod.Patterns.Ident(pat)
	if !ok {
		t.Fatalf("expected a binding pattern")
	}
	if ident.Mut {
		t.Fatalf("expected an immutable binding")
	}
}

func TestParseMutIdentPattern(t *testing.T) {
	pat, mod := parseMatchPattern(t, "mut x")
	ident, ok := mod.Patterns.Ident(pat)
	if !ok {
		t.Fatalf("expected a binding pattern")
	}
	if !ident.Mut {
		t.Fatalf("expected a mutable binding")
	}
}

func TestParseTuplePattern(t *testing.T) {
	pat, mod := parseMatchPattern(t, "(a, b, c)")
	tup, ok := mod.Patterns.Tuple(pat)
	if !ok {
		t.Fatalf("expected a tuple pattern")
	}
	if len(tup.Elems) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(tup.Elems))
	}
}

func TestParseEmptyTuplePattern(t *testing.T) {
	pat, mod := parseMatchPattern(t, "()")
	tup, ok := mod.Patterns.Tuple(pat)
	if !ok || len(tup.Elems) != 0 {
		t.Fatalf("expected an empty tuple pattern")
	}
}

func TestParseLiteralPattern(t *testing.T) {
	pat, mod := parseMatchPattern(t, "42")
	lit, ok := mod.Patterns.Literal(pat)
	if !ok {
		t.Fatalf("expected a literal pattern")
	}
	litExpr, ok := mod.Exprs.Literal(lit.Value)
	if !ok || litExpr.Kind != ast.LitInt {
		t.Fatalf("expected the literal pattern to wrap an int literal")
	}
}

func TestParseNegativeLiteralPattern(t *testing.T) {
	pat, mod := parseMatchPattern(t, "-1")
	lit, ok := mod.Patterns.Literal(pat)
	if !ok {
		t.Fatalf("expected a literal pattern")
	}
	if _, ok := mod.Exprs.Unary(lit.Value); !ok {
		t.Fatalf("expected the negative literal to parse as a unary negation")
	}
}

func TestParseLiteralRangePattern(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantInclusive bool
	}{
		{"exclusive", "0..10", false},
		{"inclusive", "0..=10", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pat, mod := parseMatchPattern(t, tt.input)
			rng, ok := mod.Patterns.LiteralRange(pat)
			if !ok {
				t.Fatalf("expected a literal range pattern")
			}
			if rng.Inclusive != tt.wantInclusive {
				t.Fatalf("expected inclusive=%v, got %v", tt.wantInclusive, rng.Inclusive)
			}
		})
	}
}

func TestParseDotVariantPattern(t *testing.T) {
	pat, mod := parseMatchPattern(t, ".Red")
	enum, ok := mod.Patterns.Enum(pat)
	if !ok {
		t.Fatalf("expected an enum pattern")
	}
	if enum.Type.IsValid() {
		t.Fatalf("expected an unqualified '.Variant' pattern to carry no type")
	}
	if len(enum.Args) != 0 {
		t.Fatalf("expected no arguments for a bare variant")
	}
}

func TestParseDotVariantWithArgsPattern(t *testing.T) {
	pat, mod := parseMatchPattern(t, ".Point(x, y)")
	enum, ok := mod.Patterns.Enum(pat)
	if !ok {
		t.Fatalf("expected an enum pattern")
	}
	if len(enum.Args) != 2 {
		t.Fatalf("expected 2 arguments, got %d", len(enum.Args))
	}
}

func TestParseQualifiedEnumPattern(t *testing.T) {
	pat, mod := parseMatchPattern(t, "Color.Red")
	enum, ok := mod.Patterns.Enum(pat)
	if !ok {
		t.Fatalf("expected an enum pattern")
	}
	if !enum.Type.IsValid() {
		t.Fatalf("expected a qualifying type path for 'Color.Red'")
	}
}

func TestParseQualifiedEnumWithArgsPattern(t *testing.T) {
	pat, mod := parseMatchPattern(t, "Shape.Circle(r)")
	enum, ok := mod.Patterns.Enum(pat)
	if !ok {
		t.Fatalf("expected an enum pattern")
	}
	if len(enum.Args) != 1 {
		t.Fatalf("expected 1 argument, got %d", len(enum.Args))
	}
}

func TestParseStructPattern(t *testing.T) {
	pat, mod := parseMatchPattern(t, "Point { x: a, y: b }")
	s, ok := mod.Patterns.Struct(pat)
	if !ok {
		t.Fatalf("expected a struct pattern")
	}
	if len(s.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(s.Fields))
	}
	if s.HasRest {
		t.Fatalf("expected no rest marker")
	}
	for _, f := range s.Fields {
		if f.Shorthand {
			t.Fatalf("expected every field here to be the explicit 'name: pat' form")
		}
	}
}

func TestParseStructPatternShorthand(t *testing.T) {
	pat, mod := parseMatchPattern(t, "Point { x, y }")
	s, ok := mod.Patterns.Struct(pat)
	if !ok {
		t.Fatalf("expected a struct pattern")
	}
	for _, f := range s.Fields {
		if !f.Shorthand {
			t.Fatalf("expected every field to be shorthand")
		}
	}
}

func TestParseStructPatternWithRest(t *testing.T) {
	pat, mod := parseMatchPattern(t, "Point { x, .. }")
	s, ok := mod.Patterns.Struct(pat)
	if !ok {
		t.Fatalf("expected a struct pattern")
	}
	if !s.HasRest {
		t.Fatalf("expected a rest marker after 'x,'")
	}
	if len(s.Fields) != 1 {
		t.Fatalf("expected 1 named field before the rest marker, got %d", len(s.Fields))
	}
}

func TestParseStructPatternMutField(t *testing.T) {
	pat, mod := parseMatchPattern(t, "Point { mut x }")
	s, ok := mod.Patterns.Struct(pat)
	if !ok {
		t.Fatalf("expected a struct pattern")
	}
	if len(s.Fields) != 1 || !s.Fields[0].Mut {
		t.Fatalf("expected the shorthand field 'x' to be marked mutable")
	}
}

func TestParseNestedPatternsInTuple(t *testing.T) {
	pat, mod := parseMatchPattern(t, "(0, .Red, Point { x, y })")
	tup, ok := mod.Patterns.Tuple(pat)
	if !ok {
		t.Fatalf("expected a tuple pattern")
	}
	if len(tup.Elems) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(tup.Elems))
	}
	if _, ok := mod.Patterns.Literal(tup.Elems[0]); !ok {
		t.Fatalf("expected the first element to be a literal pattern")
	}
	if _, ok := mod.Patterns.Enum(tup.Elems[1]); !ok {
		t.Fatalf("expected the second element to be an enum pattern")
	}
	if _, ok := mod.Patterns.Struct(tup.Elems[2]); !ok {
		t.Fatalf("expected the third element to be a struct pattern")
	}
}
