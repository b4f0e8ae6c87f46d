// Command asjpdist prints the edit distance between two ASJP forms, or
// the mean normalized Levenshtein distance between two languages.
//
// Usage:
//
//	asjpdist tri trEd
//	asjpdist -w 0.5 tri trEd
//	asjpdist -db listss.tab swe eng
package main

import (
	"flag"
	"fmt"
	"os"

	asjp "github.com/ugochi-okafor/asjp-go"
	"github.com/ugochi-okafor/asjp-go/phone"
)

func main() {
	dbPath := flag.String("db", "", "ASJP database export; arguments are then ISO 639-3 codes")
	weight := flag.Float64("w", 1.0, "substitution cost between two distinct vowels")
	verbose := flag.Bool("v", false, "verbose output")

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: asjpdist [-w WEIGHT] FORM1 FORM2")
		fmt.Fprintln(os.Stderr, "       asjpdist -db DATABASE [-w WEIGHT] ISO1 ISO2")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	if *dbPath == "" {
		fmt.Printf("%g\n", phone.DistanceWeighted(flag.Arg(0), flag.Arg(1), *weight))
		return
	}

	db, err := asjp.Open(*dbPath, asjp.WithVowelWeight(*weight))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	iso1, iso2 := flag.Arg(0), flag.Arg(1)
	d, err := db.Compare(iso1, iso2)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%.4f\n", d)

	if *verbose {
		w1, _ := db.Wordlist(iso1)
		w2, _ := db.Wordlist(iso2)
		fmt.Fprintf(os.Stderr, "%s (%s): %d concepts\n", iso1, w1.Name, w1.Len())
		fmt.Fprintf(os.Stderr, "%s (%s): %d concepts\n", iso2, w2.Name, w2.Len())
		fmt.Fprintf(os.Stderr, "shared concepts: %d\n", len(w1.CommonConcepts(w2)))
	}
}
