package wordlist

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}

func TestConceptNLD(t *testing.T) {
	tests := []struct {
		name   string
		f1, f2 []string
		weight float64
		want   float64
	}{
		{"single_pair", []string{"kamen"}, []string{"kamin"}, 1, 0.2},
		{"identical_forms", []string{"zuma"}, []string{"zuma"}, 1, 0},
		{"cross_product", []string{"a"}, []string{"a", "ke"}, 1, 0.5},
		{"weighted", []string{"tri"}, []string{"trEd"}, 0.5, 0.375},
		{"no_forms", nil, []string{"zuma"}, 1, 0},
		{"empty_forms", []string{""}, []string{""}, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConceptNLD(tt.f1, tt.f2, tt.weight); !almostEqual(got, tt.want) {
				t.Errorf("ConceptNLD(%v, %v, %v) = %v, want %v", tt.f1, tt.f2, tt.weight, got, tt.want)
			}
		})
	}
}

func TestMeanNLD(t *testing.T) {
	w1 := New("aaa", "LANG_A")
	w1.Add("stone", "kamen")
	w1.Add("I", "Ei")
	w1.Add("sun", "s3n")

	w2 := New("bbb", "LANG_B")
	w2.Add("stone", "kamin")
	w2.Add("I", "iX")
	w2.Add("moon", "mond")

	// Shared concepts: I (NLD 2/2) and stone (NLD 1/5).
	got, err := w1.MeanNLD(w2, 1)
	if err != nil {
		t.Fatalf("MeanNLD error: %v", err)
	}
	if want := (1.0 + 0.2) / 2; !almostEqual(got, want) {
		t.Errorf("MeanNLD = %v, want %v", got, want)
	}

	// Symmetry.
	rev, err := w2.MeanNLD(w1, 1)
	if err != nil {
		t.Fatalf("MeanNLD error: %v", err)
	}
	if !almostEqual(got, rev) {
		t.Errorf("MeanNLD not symmetric: %v vs %v", got, rev)
	}

	// Reduced vowel weight: I becomes 1.5/2, stone 0.5/5.
	got, err = w1.MeanNLD(w2, 0.5)
	if err != nil {
		t.Fatalf("MeanNLD error: %v", err)
	}
	if want := (0.75 + 0.1) / 2; !almostEqual(got, want) {
		t.Errorf("MeanNLD(weight=0.5) = %v, want %v", got, want)
	}
}

func TestMeanNLDNoCommonConcepts(t *testing.T) {
	w1 := New("aaa", "LANG_A")
	w1.Add("sun", "s3n")
	w2 := New("bbb", "LANG_B")
	w2.Add("moon", "mond")

	_, err := w1.MeanNLD(w2, 1)
	if !errors.Is(err, ErrNoCommonConcepts) {
		t.Fatalf("err = %v, want ErrNoCommonConcepts", err)
	}
}
