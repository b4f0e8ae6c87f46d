package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// metaColumns is the number of language-metadata columns that precede
// the concept columns in the database export.
const metaColumns = 10

// formSeparator joins alternative forms within one concept cell.
const formSeparator = ", "

// metaHeader lists the metadata column names of the ASJP export, in
// order. "names" and "iso" are the two the loader reads back.
var metaHeader = []string{
	"names", "wls_fam", "wls_gen", "e", "hh", "lat", "lon", "pop", "wcode", "iso",
}

// Database is a collection of wordlists keyed by ISO 639-3 code.
type Database struct {
	Wordlists map[string]*Wordlist
}

// Load reads a tab-separated ASJP database export.
//
// The first line is the header: the first ten columns carry language
// metadata (among them "names" and "iso"), every remaining column is a
// concept. A concept cell holds comma-separated alternative forms; an
// empty cell means the concept is unattested. When two rows share an
// ISO code the wordlist with more concepts wins. Rows without an ISO
// code are skipped, since they cannot be keyed.
func Load(r io.Reader) (*Database, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("missing header line")
	}
	header := strings.Split(scanner.Text(), "\t")
	if len(header) < metaColumns {
		return nil, fmt.Errorf("header has %d columns, want at least %d", len(header), metaColumns)
	}
	isoCol, nameCol := -1, -1
	for i, h := range header[:metaColumns] {
		switch h {
		case "iso":
			isoCol = i
		case "names":
			nameCol = i
		}
	}
	if isoCol < 0 || nameCol < 0 {
		return nil, fmt.Errorf(`header is missing the "iso" or "names" column`)
	}
	concepts := header[metaColumns:]

	db := &Database{Wordlists: make(map[string]*Wordlist)}
	lineNum := 1
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < metaColumns {
			return nil, fmt.Errorf("line %d: expected at least %d tab-separated fields, got %d", lineNum, metaColumns, len(fields))
		}

		iso := strings.TrimSpace(fields[isoCol])
		if iso == "" {
			continue
		}
		w := New(iso, strings.TrimSpace(fields[nameCol]))
		for i, concept := range concepts {
			col := metaColumns + i
			if col >= len(fields) {
				break
			}
			cell := strings.TrimSpace(fields[col])
			if cell == "" {
				continue
			}
			w.Add(concept, strings.Split(cell, formSeparator)...)
		}

		// Keep the longer of two wordlists sharing an ISO code.
		if old := db.Wordlists[iso]; old != nil && old.Len() > w.Len() {
			continue
		}
		db.Wordlists[iso] = w
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return db, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// ISOCodes returns the sorted ISO codes of all wordlists.
func (db *Database) ISOCodes() []string {
	codes := make([]string, 0, len(db.Wordlists))
	for iso := range db.Wordlists {
		codes = append(codes, iso)
	}
	sort.Strings(codes)
	return codes
}

// ConceptNames returns the sorted union of concepts attested anywhere
// in the database.
func (db *Database) ConceptNames() []string {
	set := make(map[string]bool)
	for _, w := range db.Wordlists {
		for c := range w.Concepts {
			set[c] = true
		}
	}
	names := make([]string, 0, len(set))
	for c := range set {
		names = append(names, c)
	}
	sort.Strings(names)
	return names
}

// Save writes the database back out in the tab-separated export format
// Load reads. Metadata columns other than "names" and "iso" are left
// empty; the concept columns are the sorted union over all wordlists.
func (db *Database) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	concepts := db.ConceptNames()

	cols := append(append([]string{}, metaHeader...), concepts...)
	if _, err := bw.WriteString(strings.Join(cols, "\t") + "\n"); err != nil {
		return err
	}

	for _, iso := range db.ISOCodes() {
		wl := db.Wordlists[iso]
		row := make([]string, len(cols))
		row[0] = wl.Name
		row[metaColumns-1] = wl.ISO
		for i, c := range concepts {
			row[metaColumns+i] = strings.Join(wl.Concepts[c], formSeparator)
		}
		if _, err := bw.WriteString(strings.Join(row, "\t") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveFile is a convenience wrapper that creates a file path.
func (db *Database) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := db.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
