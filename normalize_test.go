package openinghours_test

import (
	"testing"

	"github.com/go-chrono/openinghours"
)

func TestExpressionNormalize(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want string
	}{
		{"24/7", "24/7"},
		{"Mo-Su", "24/7"},
		{"Tu-Mo", "24/7"},
		{"24/7 ; Su closed", "Mo-Sa"},
		{"Mo-Sa ; Su closed", "Mo-Sa"},
		{"Mo-We 09:00-17:00", "Mo-We 09:00-17:00"},
		{"Mo 09:00-17:00 || Tu 10:00-12:00", "Mo 09:00-17:00 || Tu 10:00-12:00"},
	} {
		t.Run(tt.in, func(t *testing.T) {
			expr, err := openinghours.Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}

			got := expr.Normalize().String()
			if got != tt.want {
				t.Errorf("Parse(%q).Normalize().String() = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestExpressionNormalizeAdditiveSplit checks that overlapping rule
// sequences within a canonicalizable group are re-emitted with the first
// extracted box kept Normal and the rest Additive, never reordering the
// Open/Unknown/Closed priority.
func TestExpressionNormalizeAdditiveSplit(t *testing.T) {
	expr, err := openinghours.Parse(`Mo-Fr 09:00-17:00 ; Mo 12:00-13:00 unknown "lunch"`)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	norm := expr.Normalize()
	if len(norm.Rules) == 0 {
		t.Fatalf("Normalize() produced no rules")
	}
	if norm.Rules[0].Combiner != openinghours.CombinatorNormal {
		t.Errorf("first rule sequence combiner = %v, want CombinatorNormal", norm.Rules[0].Combiner)
	}
	for i, r := range norm.Rules[1:] {
		if r.Combiner != openinghours.CombinatorAdditive {
			t.Errorf("rule sequence %d combiner = %v, want CombinatorAdditive", i+1, r.Combiner)
		}
	}
}

// TestExpressionNormalizePassesThroughNonCanonical checks that a rule
// sequence using a construct the paving can't represent (here, a repeat
// interval) is left untouched rather than silently dropped.
func TestExpressionNormalizePassesThroughNonCanonical(t *testing.T) {
	expr, err := openinghours.Parse(`Mo 09:00-21:00/02:00`)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	norm := expr.Normalize()
	if len(norm.Rules) != 1 {
		t.Fatalf("Normalize() produced %d rule sequences, want 1", len(norm.Rules))
	}
	if norm.Rules[0].Time.Spans[0].Repeat == 0 {
		t.Errorf("repeat interval was dropped by Normalize()")
	}
}

func TestExpressionNormalizeIdempotent(t *testing.T) {
	for _, in := range []string{
		"24/7", "Mo-Fr 09:00-17:00", "24/7 ; Su closed", "Tu-Mo",
	} {
		expr, err := openinghours.Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", in, err)
		}
		once := expr.Normalize().String()
		twice, err := openinghours.Parse(once)
		if err != nil {
			t.Fatalf("Parse(%q) (post-normalize) error: %v", once, err)
		}
		if got := twice.Normalize().String(); got != once {
			t.Errorf("normalizing %q twice: first pass %q, second pass %q", in, once, got)
		}
	}
}
