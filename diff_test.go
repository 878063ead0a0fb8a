package diffy_test

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"testing"

	"kr.dev/diffy"
)

const (
	oldText = "one\ntwo\nthree\nfour\nfive\n"
	newText = "one\ntwo\n3\nfour\nfive\n"
)

const unifiedDiff = `--- a
+++ b
@@ -1,5 +1,5 @@
 one
 two
-three
+3
 four
 five
`

func TestEachEqual(t *testing.T) {
	for _, s := range []string{"", "a", "a\nb\n"} {
		diffy.Each(t.Errorf, s, s)
	}
}

func TestEach(t *testing.T) {
	var got []string
	f := func(format string, arg ...any) {
		got = append(got, fmt.Sprintf(format, arg...))
	}
	diffy.Each(f, oldText, newText)
	if len(got) != 1 {
		t.Fatalf("f called %d times, want 1", len(got))
	}
	if got[0] != unifiedDiff {
		t.Errorf("bad diff")
		t.Logf("got:\n%s", got[0])
		t.Logf("want:\n%s", unifiedDiff)
	}
}

func TestDiff(t *testing.T) {
	ctx := context.Background()
	out, changed, err := diffy.Diff(ctx, oldText, oldText)
	if err != nil || changed || out != "" {
		t.Errorf("Diff(equal) = %q, %v, %v, want no changes", out, changed, err)
	}
	out, changed, err = diffy.Diff(ctx, "", "")
	if err != nil || changed || out != "" {
		t.Errorf("Diff(empty) = %q, %v, %v, want no changes", out, changed, err)
	}
	out, changed, err = diffy.Diff(ctx, oldText, newText)
	if err != nil || !changed || out != unifiedDiff {
		t.Errorf("Diff = %q, %v, %v, want unified diff", out, changed, err)
	}
}

func TestDiffAllAlgorithms(t *testing.T) {
	for _, alg := range []diffy.Algorithm{diffy.MyersGreedy, diffy.MyersLinear, diffy.Patience} {
		out, _, err := diffy.Diff(context.Background(), oldText, newText, diffy.UseAlgorithm(alg))
		if err != nil {
			t.Fatal(err)
		}
		if out != unifiedDiff {
			t.Errorf("%v: got:\n%s", alg, out)
		}
	}
}

func TestDiffFailed(t *testing.T) {
	_, _, err := diffy.Diff(context.Background(), "a\n", "b\n", diffy.UseAlgorithm(diffy.Algorithm(7)))
	if err == nil || !strings.Contains(err.Error(), "diff failed") {
		t.Errorf("err = %v, want diff failed", err)
	}
}

type recorder struct {
	t      *testing.T
	helped bool
	msgs   []string
}

func (r *recorder) Helper() { r.helped = true }

func (r *recorder) Errorf(format string, arg ...any) {
	r.msgs = append(r.msgs, fmt.Sprintf(format, arg...))
}

func TestTest(t *testing.T) {
	r := &recorder{t: t}
	diffy.Test(r, r.Errorf, "x\n", "x\n")
	if len(r.msgs) != 0 {
		t.Errorf("equal texts reported %q", r.msgs)
	}
	diffy.Test(r, r.Errorf, "x\n", "y\n")
	if !r.helped {
		t.Errorf("Test did not call Helper")
	}
	want := "texts differ:\n\t--- got\n\t+++ want\n\t@@ -1 +1 @@\n\t-x\n\t+y\n"
	if len(r.msgs) != 1 || r.msgs[0] != want {
		t.Errorf("Test reported %q, want %q", r.msgs, want)
	}
}

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)
	diffy.Log("x\n", "x\n", diffy.Logger(logger))
	if buf.Len() != 0 {
		t.Errorf("equal texts logged %q", buf.String())
	}
	diffy.Log("x\n", "y\n", diffy.Logger(logger), diffy.Names("old", "new"))
	want := "--- old\n+++ new\n@@ -1 +1 @@\n-x\n+y\n"
	if got := buf.String(); got != want {
		t.Errorf("logged %q, want %q", got, want)
	}
}
