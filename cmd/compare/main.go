// Comparison tool: runs each diffy algorithm, pkg/diff's Myers,
// and sergi/go-diff over the same inputs and reports edit counts
// and timing.
//
// Usage:
//
//	compare [old new]
//
// With no arguments it runs a built-in set of cases.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	dmp "github.com/sergi/go-diff/diffmatchpatch"

	"kr.dev/diffy"
	"kr.dev/diffy/internal/diffseq"
)

type testCase struct {
	name string
	a, b []string
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: compare [old new]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	var cases []testCase
	switch flag.NArg() {
	case 0:
		cases = builtinCases()
	case 2:
		a, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		b, err := os.ReadFile(flag.Arg(1))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		cases = []testCase{{
			name: flag.Arg(0) + " vs " + flag.Arg(1),
			a:    diffy.SplitLines(string(a)),
			b:    diffy.SplitLines(string(b)),
		}}
	default:
		flag.Usage()
		os.Exit(2)
	}

	for _, tc := range cases {
		fmt.Printf("\n=== %s ===\n", tc.name)
		fmt.Printf("A: %d lines, B: %d lines\n", len(tc.a), len(tc.b))
		for _, alg := range []diffy.Algorithm{diffy.MyersGreedy, diffy.MyersLinear, diffy.Patience} {
			start := time.Now()
			r := diffy.Compute(alg, diffy.Input[string]{A: tc.a, B: tc.b, Hash: diffy.HashString})
			elapsed := time.Since(start)
			if r.Status == diffy.Failed {
				fmt.Printf("%-14s failed\n", alg)
				continue
			}
			del, ins, _ := r.Stat()
			printStats(alg.String(), elapsed, del, ins, regions(r))
		}

		start := time.Now()
		s := diffseq.DiffSlice(tc.a, tc.b)
		elapsed := time.Since(start)
		del, ins := diffseq.Distance(s)
		printStats("pkg/diff", elapsed, del, ins, len(diffseq.Merge(s)))

		start = time.Now()
		del, ins, n := goDiff(tc.a, tc.b)
		printStats("go-diff", time.Since(start), del, ins, n)
	}
}

func printStats(name string, d time.Duration, del, ins, regions int) {
	fmt.Printf("%-14s %10v  delete %5d  insert %5d  regions %4d\n", name, d, del, ins, regions)
}

// regions counts the runs of changes in r.
func regions(r diffy.Result) int {
	n := 0
	in := false
	for _, e := range r.Edits {
		switch {
		case e.Type == diffy.Common:
			in = false
		case !in:
			n++
			in = true
		}
	}
	return n
}

// goDiff diffs line by line with go-diff, which works on runes:
// each distinct line is mapped to one rune first.
func goDiff(a, b []string) (del, ins, regions int) {
	d := dmp.New()
	ra, rb, lines := d.DiffLinesToRunes(strings.Join(a, ""), strings.Join(b, ""))
	diffs := d.DiffMainRunes(ra, rb, false)
	diffs = d.DiffCharsToLines(diffs, lines)
	in := false
	for _, df := range diffs {
		n := strings.Count(df.Text, "\n")
		if df.Text != "" && !strings.HasSuffix(df.Text, "\n") {
			n++
		}
		switch df.Type {
		case dmp.DiffEqual:
			in = false
			continue
		case dmp.DiffDelete:
			del += n
		case dmp.DiffInsert:
			ins += n
		}
		if !in {
			regions++
			in = true
		}
	}
	return del, ins, regions
}

func builtinCases() []testCase {
	cases := []testCase{
		{
			name: "Reordered functions",
			a: lines(`
func a() {
	return 1
}

func b() {
	return 2
}
`),
			b: lines(`
func b() {
	return 2
}

func a() {
	return 1
}
`),
		},
		{
			name: "Scattered edits",
			a:    lines("a\nb\nc\nd\ne\nf\ng\nh\n"),
			b:    lines("a\nx\nc\nd\ny\nf\ng\nz\n"),
		},
	}
	a, b := generate(2000, 1)
	cases = append(cases, testCase{"Large file (2000 lines, random edits)", a, b})
	return cases
}

func lines(s string) []string {
	return diffy.SplitLines(strings.TrimPrefix(s, "\n"))
}

// generate returns n lines of text and a copy with
// roughly one line in twenty changed, removed, or added.
func generate(n int, seed int64) (a, b []string) {
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		line := fmt.Sprintf("line %d: %d\n", i, rng.Intn(100))
		a = append(a, line)
		switch rng.Intn(60) {
		case 0:
			b = append(b, "changed "+line)
		case 1:
		case 2:
			b = append(b, line, "added\n")
		default:
			b = append(b, line)
		}
	}
	return a, b
}
