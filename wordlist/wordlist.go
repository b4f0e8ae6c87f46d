// Package wordlist models ASJP wordlists and the tab-separated database
// export that carries them.
package wordlist

import "sort"

// Wordlist holds the attested word forms for a single language.
type Wordlist struct {
	ISO      string              // ISO 639-3 code
	Name     string              // language name as given in the database
	Concepts map[string][]string // concept -> non-empty list of forms
}

// New creates an empty wordlist for a language.
func New(iso, name string) *Wordlist {
	return &Wordlist{
		ISO:      iso,
		Name:     name,
		Concepts: make(map[string][]string),
	}
}

// Add records forms for a concept. Empty forms are ignored; a concept
// with no forms is never created.
func (w *Wordlist) Add(concept string, forms ...string) {
	for _, f := range forms {
		if f == "" {
			continue
		}
		w.Concepts[concept] = append(w.Concepts[concept], f)
	}
}

// Len returns the number of attested concepts.
func (w *Wordlist) Len() int {
	return len(w.Concepts)
}

// Has reports whether the concept has at least one attested form.
func (w *Wordlist) Has(concept string) bool {
	return len(w.Concepts[concept]) > 0
}

// Forms returns the attested forms for a concept, or nil.
func (w *Wordlist) Forms(concept string) []string {
	return w.Concepts[concept]
}

// ConceptNames returns the attested concept identifiers, sorted.
func (w *Wordlist) ConceptNames() []string {
	names := make([]string, 0, len(w.Concepts))
	for c := range w.Concepts {
		names = append(names, c)
	}
	sort.Strings(names)
	return names
}

// CommonConcepts returns the sorted concepts attested in both lists.
func (w *Wordlist) CommonConcepts(other *Wordlist) []string {
	common := make([]string, 0, len(w.Concepts))
	for c := range w.Concepts {
		if other.Has(c) {
			common = append(common, c)
		}
	}
	sort.Strings(common)
	return common
}
