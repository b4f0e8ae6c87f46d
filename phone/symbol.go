// Package phone defines the ASJPcode sound inventory and edit distances
// over ASJP transcriptions.
package phone

import "strings"

// Symbol is a single ASJPcode sound symbol.
type Symbol rune

// Vowels of the ASJPcode alphabet.
const (
	SymI     Symbol = 'i' // high front vowel
	SymE     Symbol = 'e' // mid front vowel
	SymOpenE Symbol = 'E' // low front vowel
	Sym3     Symbol = '3' // high and mid central vowel
	SymA     Symbol = 'a' // low central vowel
	SymU     Symbol = 'u' // high back vowel
	SymO     Symbol = 'o' // mid and low back vowel
)

// vowels holds the seven ASJP vowel symbols as a lookup string.
const vowels = "ieE3auo"

// consonants holds the 34 ASJP consonant symbols, in the order of the
// ASJPcode chart: stops, fricatives, affricates, nasals, liquids,
// glides, the glottal stop and the click.
const consonants = "pbmfv84tdszcnSZCjT5kgxNqGX7hlLwyr!"

// modifiers are the combining and modification marks that appear in
// database transcriptions next to plain symbols.
const modifiers = "~$\"*"

// IsVowel reports whether r is one of the seven ASJP vowels.
func IsVowel(r rune) bool {
	return strings.ContainsRune(vowels, r)
}

// IsSymbol reports whether r is a plain ASJPcode symbol (vowel or
// consonant, no modifier marks).
func IsSymbol(r rune) bool {
	return strings.ContainsRune(vowels, r) || strings.ContainsRune(consonants, r)
}

// ValidForm reports whether form is written entirely in ASJPcode.
// Modifier marks and spaces are tolerated; an empty form is valid.
func ValidForm(form string) bool {
	for _, r := range form {
		if IsSymbol(r) || strings.ContainsRune(modifiers, r) || r == ' ' {
			continue
		}
		return false
	}
	return true
}

// AllSymbols returns the complete ASJPcode inventory, vowels first.
func AllSymbols() []Symbol {
	all := make([]Symbol, 0, len(vowels)+len(consonants))
	for _, r := range vowels {
		all = append(all, Symbol(r))
	}
	for _, r := range consonants {
		all = append(all, Symbol(r))
	}
	return all
}
