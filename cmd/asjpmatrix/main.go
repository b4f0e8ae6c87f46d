// Command asjpmatrix computes the full pairwise distance matrix (mean
// normalized Levenshtein distance) over an ASJP database and writes it
// as tab-separated values on stdout.
//
// Usage:
//
//	asjpmatrix -db listss.tab
//	asjpmatrix -db listss.tab -iso swe,eng,deu -w 0.5
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math"
	"os"
	"runtime"
	"strings"
	"sync"

	asjp "github.com/ugochi-okafor/asjp-go"
	"github.com/ugochi-okafor/asjp-go/internal/mathutil"
)

func main() {
	dbPath := flag.String("db", "", "ASJP database export (tab-separated)")
	isoList := flag.String("iso", "", "comma-separated ISO codes (default: all languages)")
	weight := flag.Float64("w", 1.0, "substitution cost between two distinct vowels")
	workers := flag.Int("workers", 0, "parallel workers (default: NumCPU)")

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: asjpmatrix -db DATABASE [-iso ISO1,ISO2,...]")
		fmt.Fprintln(os.Stderr, "  Computes all pairwise language distances.")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *dbPath == "" {
		flag.Usage()
		os.Exit(1)
	}
	if *workers <= 0 {
		*workers = runtime.NumCPU()
	}

	db, err := asjp.Open(*dbPath, asjp.WithVowelWeight(*weight))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	codes := db.ISOCodes()
	if *isoList != "" {
		codes = strings.Split(*isoList, ",")
		for _, iso := range codes {
			if _, ok := db.Wordlist(iso); !ok {
				fmt.Fprintf(os.Stderr, "Error: unknown ISO code %q\n", iso)
				os.Exit(1)
			}
		}
	}

	n := len(codes)
	m := mathutil.NewMat(n, n)

	type pair struct{ i, j int }
	jobs := make(chan pair)
	var incomparable sync.Map
	var wg sync.WaitGroup
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				d, err := db.Compare(codes[p.i], codes[p.j])
				if err != nil {
					incomparable.Store([2]string{codes[p.i], codes[p.j]}, err)
					d = math.NaN()
				}
				m[p.i][p.j] = d
				m[p.j][p.i] = d
			}
		}()
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			jobs <- pair{i, j}
		}
	}
	close(jobs)
	wg.Wait()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	fmt.Fprintf(out, "iso\t%s\n", strings.Join(codes, "\t"))
	for i, iso := range codes {
		fmt.Fprint(out, iso)
		for j := range codes {
			fmt.Fprintf(out, "\t%.4f", m[i][j])
		}
		fmt.Fprintln(out)
	}

	nBad := 0
	incomparable.Range(func(k, v any) bool {
		nBad++
		if nBad <= 20 {
			p := k.([2]string)
			fmt.Fprintf(os.Stderr, "WARNING: %s vs %s: %v\n", p[0], p[1], v)
		}
		return true
	})
	if nBad > 20 {
		fmt.Fprintf(os.Stderr, "WARNING: ... and %d more incomparable pairs\n", nBad-20)
	}
}
