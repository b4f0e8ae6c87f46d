// Package asjp compares languages through their ASJP wordlists, using
// Levenshtein distance with an optional reduced cost for substitutions
// between vowels.
package asjp

import (
	"fmt"

	"github.com/ugochi-okafor/asjp-go/wordlist"
)

// DB is a loaded ASJP database together with comparison settings.
type DB struct {
	Lists       *wordlist.Database
	VowelWeight float64 // substitution cost between two distinct vowels
}

// Option configures a DB.
type Option func(*DB)

// WithVowelWeight sets the substitution cost applied when both
// substituted symbols are vowels. The default of 1 gives the classic
// Levenshtein distance. The value is applied as given.
func WithVowelWeight(w float64) Option {
	return func(db *DB) {
		db.VowelWeight = w
	}
}

// Open loads a tab-separated ASJP database export from a file.
func Open(path string, opts ...Option) (*DB, error) {
	lists, err := wordlist.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load database: %w", err)
	}
	return New(lists, opts...), nil
}

// New creates a DB from an already loaded database.
func New(lists *wordlist.Database, opts ...Option) *DB {
	db := &DB{
		Lists:       lists,
		VowelWeight: 1,
	}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

// Wordlist returns the wordlist for an ISO 639-3 code.
func (db *DB) Wordlist(iso string) (*wordlist.Wordlist, bool) {
	w, ok := db.Lists.Wordlists[iso]
	return w, ok
}

// ISOCodes returns the sorted ISO codes of all loaded wordlists.
func (db *DB) ISOCodes() []string {
	return db.Lists.ISOCodes()
}

// Compare returns the mean normalized Levenshtein distance between two
// languages, identified by ISO code, under the configured vowel weight.
func (db *DB) Compare(iso1, iso2 string) (float64, error) {
	w1, ok := db.Wordlist(iso1)
	if !ok {
		return 0, fmt.Errorf("unknown ISO code %q", iso1)
	}
	w2, ok := db.Wordlist(iso2)
	if !ok {
		return 0, fmt.Errorf("unknown ISO code %q", iso2)
	}
	d, err := w1.MeanNLD(w2, db.VowelWeight)
	if err != nil {
		return 0, fmt.Errorf("compare %s with %s: %w", iso1, iso2, err)
	}
	return d, nil
}
