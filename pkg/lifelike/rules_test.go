package lifelike

import (
	"slices"
	"testing"

	"github.com/pkg/errors"
)

func TestParseRuleValid(t *testing.T) {
	cases := []struct {
		in       string
		birth    []int
		survival []int
	}{
		{"B3/S23", []int{3}, []int{2, 3}},
		{"B36/S23", []int{3, 6}, []int{2, 3}},
		{"B3/S", []int{3}, []int{}},
		{"B/S", []int{}, []int{}},
		{"B63/S32", []int{3, 6}, []int{2, 3}},
		{"B33/S2223", []int{3}, []int{2, 3}},
		{"b3/s23", []int{3}, []int{2, 3}},
		{"B012345678/S012345678", []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}},
	}
	for _, tc := range cases {
		r, err := ParseRule(tc.in)
		if err != nil {
			t.Fatalf("ParseRule(%q) returned error: %v", tc.in, err)
		}
		if got := r.Birth(); !slices.Equal(got, tc.birth) {
			t.Fatalf("ParseRule(%q) birth = %v, want %v", tc.in, got, tc.birth)
		}
		if got := r.Survival(); !slices.Equal(got, tc.survival) {
			t.Fatalf("ParseRule(%q) survival = %v, want %v", tc.in, got, tc.survival)
		}
	}
}

func TestParseRuleInvalid(t *testing.T) {
	cases := []struct {
		in   string
		kind ParseErrorKind
	}{
		{"garbage", MalformedSyntax},
		{"", MalformedSyntax},
		{"B3S23", MissingClause},
		{"B3/S2/S3", MissingClause},
		{"/S23", MissingClause},
		{"B3/", MissingClause},
		{"S23/B3", MissingClause},
		{"X3/S23", MissingClause},
		{"B9/S23", OutOfRangeDigit},
		{"B3/S29", OutOfRangeDigit},
		{"B3x/S23", MalformedSyntax},
		{"B3/S2 3", MalformedSyntax},
		{"B-1/S23", MalformedSyntax},
	}
	for _, tc := range cases {
		_, err := ParseRule(tc.in)
		if err == nil {
			t.Fatalf("ParseRule(%q) expected error", tc.in)
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("ParseRule(%q) error %T is not *ParseError", tc.in, err)
		}
		if pe.Kind != tc.kind {
			t.Fatalf("ParseRule(%q) kind = %v, want %v", tc.in, pe.Kind, tc.kind)
		}
		if pe.Input != tc.in {
			t.Fatalf("ParseRule(%q) error input = %q", tc.in, pe.Input)
		}
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := ParseRule("B3/S2x")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if pe.Pos != 5 {
		t.Fatalf("expected offset 5, got %d", pe.Pos)
	}
}

func TestRuleMembership(t *testing.T) {
	r := MustParseRule("B36/S23")
	for n := -1; n <= 9; n++ {
		wantBirth := n == 3 || n == 6
		wantSurvival := n == 2 || n == 3
		if r.IsBirth(n) != wantBirth {
			t.Fatalf("IsBirth(%d) = %v, want %v", n, r.IsBirth(n), wantBirth)
		}
		if r.IsSurvival(n) != wantSurvival {
			t.Fatalf("IsSurvival(%d) = %v, want %v", n, r.IsSurvival(n), wantSurvival)
		}
	}
}

func TestRuleStringCanonical(t *testing.T) {
	cases := map[string]string{
		"B3/S23":    "B3/S23",
		"b63/s32":   "B36/S23",
		"B3/S":      "B3/S",
		"B88/S1100": "B8/S01",
	}
	for in, want := range cases {
		r := MustParseRule(in)
		if got := r.String(); got != want {
			t.Fatalf("String() of %q = %q, want %q", in, got, want)
		}
		again, err := ParseRule(r.String())
		if err != nil || again != r {
			t.Fatalf("canonical form %q does not parse back to the same rule", r.String())
		}
	}
}

func TestConwayMatchesDefaultRule(t *testing.T) {
	if MustParseRule(DefaultRule) != Conway {
		t.Fatal("DefaultRule must parse to Conway")
	}
}

func TestNewRuleSetIgnoresOutOfRange(t *testing.T) {
	r := NewRuleSet([]int{3, 9, -1}, []int{2, 3, 12})
	if r != Conway {
		t.Fatalf("expected Conway, got %s", r)
	}
}

func TestPresetsAreCopies(t *testing.T) {
	ps := Presets()
	if len(ps) == 0 || ps[0].Name != "life" || ps[0].Rule != Conway {
		t.Fatalf("unexpected first preset %+v", ps)
	}
	ps[0].Name = "mutated"
	if Presets()[0].Name != "life" {
		t.Fatal("Presets must not expose internal storage")
	}
}
