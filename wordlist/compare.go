package wordlist

import (
	"errors"
	"unicode/utf8"

	"github.com/ugochi-okafor/asjp-go/internal/mathutil"
	"github.com/ugochi-okafor/asjp-go/phone"
)

// ErrNoCommonConcepts is returned when two wordlists attest no concept
// in common, leaving nothing to average over.
var ErrNoCommonConcepts = errors.New("wordlist: no common concepts")

// ConceptNLD returns the mean normalized Levenshtein distance over all
// pairs from forms1 x forms2. A pair's distance is normalized by the
// rune length of the longer form (two empty forms score 0). In the
// typical case of one form per language this is simply the NLD of that
// pair. An empty cross product yields 0.
func ConceptNLD(forms1, forms2 []string, vowelWeight float64) float64 {
	nlds := make([]float64, 0, len(forms1)*len(forms2))
	for _, a := range forms1 {
		for _, b := range forms2 {
			maxLen := utf8.RuneCountInString(a)
			if l := utf8.RuneCountInString(b); l > maxLen {
				maxLen = l
			}
			nld := 0.0
			if maxLen > 0 {
				nld = phone.DistanceWeighted(a, b, vowelWeight) / float64(maxLen)
			}
			nlds = append(nlds, nld)
		}
	}
	if len(nlds) == 0 {
		return 0
	}
	return mathutil.Mean(nlds)
}

// MeanNLD returns the mean normalized Levenshtein distance to another
// wordlist: the per-concept NLDs over all shared concepts, averaged.
// Wordlists with no shared concepts cannot be compared and yield
// ErrNoCommonConcepts.
func (w *Wordlist) MeanNLD(other *Wordlist, vowelWeight float64) (float64, error) {
	common := w.CommonConcepts(other)
	if len(common) == 0 {
		return 0, ErrNoCommonConcepts
	}
	nlds := make([]float64, 0, len(common))
	for _, c := range common {
		nlds = append(nlds, ConceptNLD(w.Concepts[c], other.Concepts[c], vowelWeight))
	}
	return mathutil.Mean(nlds), nil
}
