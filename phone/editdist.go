package phone

// DistanceWeighted computes the Levenshtein edit distance between two
// transcriptions (rune-aware). Insertions and deletions cost 1. A
// substitution costs 0 when the runes are equal, vowelWeight when both
// runes are distinct ASJP vowels, and 1 otherwise.
//
// vowelWeight is applied as given, without validation: a weight above 1
// makes the alignment prefer a deletion plus an insertion over a vowel
// substitution, and a negative weight can drive the result below zero.
// With vowelWeight 1 the result is the classic Levenshtein distance.
func DistanceWeighted(a, b string, vowelWeight float64) float64 {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return float64(lb)
	}
	if lb == 0 {
		return float64(la)
	}

	// Two-row DP over float64 costs; weights may be fractional.
	prev := make([]float64, lb+1)
	cur := make([]float64, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = float64(j)
	}

	for i := 1; i <= la; i++ {
		cur[0] = float64(i)
		for j := 1; j <= lb; j++ {
			sub := 1.0
			if ra[i-1] == rb[j-1] {
				sub = 0
			} else if IsVowel(ra[i-1]) && IsVowel(rb[j-1]) {
				sub = vowelWeight
			}
			m := prev[j-1] + sub
			if del := prev[j] + 1; del < m {
				m = del
			}
			if ins := cur[j-1] + 1; ins < m {
				m = ins
			}
			cur[j] = m
		}
		prev, cur = cur, prev
	}
	return prev[lb]
}

// Distance computes the classic Levenshtein distance between a and b,
// where every edit operation costs 1.
func Distance(a, b string) float64 {
	return DistanceWeighted(a, b, 1)
}
