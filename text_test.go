package diffy_test

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rogpeppe/go-internal/txtar"

	"kr.dev/diffy"
)

// TestGolden runs the cases in testdata/*.txtar. Each archive
// holds files a and b, and the expected output in files named
// for an emit mode ("unified", "words", "dump"), optionally
// suffixed with an algorithm name ("unified.myers-greedy").
// Without a suffix the output must hold for every algorithm.
func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txtar")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no test cases")
	}
	modes := map[string]diffy.Option{
		"unified": diffy.EmitUnified,
		"words":   diffy.EmitWords,
		"dump":    diffy.EmitDump,
	}
	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatal(err)
		}
		content := map[string]string{}
		for _, f := range ar.Files {
			content[f.Name] = string(f.Data)
		}
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		for _, f := range ar.Files {
			mode, algName, _ := strings.Cut(f.Name, ".")
			opt, ok := modes[mode]
			if !ok {
				continue
			}
			algs := []diffy.Algorithm{diffy.MyersGreedy, diffy.MyersLinear, diffy.Patience}
			if algName != "" {
				alg, err := diffy.ParseAlgorithm(algName)
				if err != nil {
					t.Fatalf("%s: %v", file, err)
				}
				algs = []diffy.Algorithm{alg}
			}
			for _, alg := range algs {
				t.Run(fmt.Sprintf("%s/%s/%v", name, mode, alg), func(t *testing.T) {
					got, _, err := diffy.Diff(context.Background(), content["a"], content["b"],
						opt, diffy.UseAlgorithm(alg), diffy.Context(3))
					if err != nil {
						t.Fatal(err)
					}
					if want := string(f.Data); got != want {
						t.Errorf("bad diff")
						t.Logf("got:\n%s", got)
						t.Logf("want:\n%s", want)
					}
				})
			}
		}
	}
}

func TestUnifiedNoNewline(t *testing.T) {
	in := diffy.Lines("a", "x\ny", "b", "x\nz")
	r := diffy.Compute(diffy.MyersGreedy, in)
	got := fmt.Sprint(diffy.Unified(in, diffy.ComposeHunks(r.Edits, 3)))
	want := "--- a\n+++ b\n@@ -1,2 +1,2 @@\n x\n-y\n\\ No newline at end of file\n+z\n\\ No newline at end of file\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestUnifiedVisibleWhitespace(t *testing.T) {
	in := diffy.Lines("a", "f(a, b)\n\tx\n", "b", "f(a,  b)\n    x\n")
	r := diffy.Compute(diffy.Patience, in)
	got := fmt.Sprint(diffy.Unified(in, diffy.ComposeHunks(r.Edits, 3)))
	want := "--- a\n+++ b\n@@ -1,2 +1,2 @@\n-f(a,·b)\n- → x\n+f(a,··b)\n+····x\n"
	if got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestWordsIgnoreWhitespace(t *testing.T) {
	in := diffy.Lines("a", "x = 1\n", "b", "x  = 2\n")
	r := diffy.Compute(diffy.Patience, in)
	hunks := diffy.ComposeHunks(r.Edits, 0)
	ah, err := diffy.Annotate(context.Background(), in, hunks, diffy.TokenGranularity)
	if err != nil {
		t.Fatal(err)
	}
	got := fmt.Sprint(diffy.Words(in, ah, true))
	want := "--- a\n+++ b\n@@ -1 +1 @@\n-x = [-1-]\n+x  = {+2+}\n"
	if got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}
