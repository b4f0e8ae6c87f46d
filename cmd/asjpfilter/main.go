// Command asjpfilter filters an ASJP database export down to a smaller
// one and writes it on stdout.
//
// Usage:
//
//	asjpfilter -iso swe,eng,deu listss.tab
//	asjpfilter -min-concepts 28 -strict listss.tab
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ugochi-okafor/asjp-go/phone"
	"github.com/ugochi-okafor/asjp-go/wordlist"
)

func main() {
	isoList := flag.String("iso", "", "comma-separated ISO codes to keep (default: all)")
	minConcepts := flag.Int("min-concepts", 0, "drop wordlists with fewer attested concepts")
	strict := flag.Bool("strict", false, "drop forms that are not written in ASJPcode")

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: asjpfilter [options] <database.tab>")
		fmt.Fprintln(os.Stderr, "  Filters an ASJP database export; result goes to stdout.")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	db, err := wordlist.LoadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Input: %d wordlists\n", len(db.Wordlists))

	keep := make(map[string]bool)
	for _, iso := range strings.Split(*isoList, ",") {
		if iso != "" {
			keep[iso] = true
		}
	}

	droppedForms := 0
	out := &wordlist.Database{Wordlists: make(map[string]*wordlist.Wordlist)}
	for iso, w := range db.Wordlists {
		if len(keep) > 0 && !keep[iso] {
			continue
		}
		if *strict {
			clean := wordlist.New(w.ISO, w.Name)
			for c, forms := range w.Concepts {
				for _, f := range forms {
					if phone.ValidForm(f) {
						clean.Add(c, f)
					} else {
						droppedForms++
					}
				}
			}
			w = clean
		}
		if w.Len() < *minConcepts {
			continue
		}
		out.Wordlists[iso] = w
	}

	for iso := range keep {
		if _, ok := db.Wordlists[iso]; !ok {
			fmt.Fprintf(os.Stderr, "WARNING: ISO code not in database: %s\n", iso)
		}
	}

	if err := out.Save(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *strict {
		fmt.Fprintf(os.Stderr, "Dropped forms: %d\n", droppedForms)
	}
	fmt.Fprintf(os.Stderr, "Output: %d wordlists\n", len(out.Wordlists))
}
