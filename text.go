package diffy

import (
	"fmt"
	"io"
	"strings"

	"kr.dev/diffy/internal/diffseq"
)

const noNewline = "\\ No newline at end of file\n"

// Unified returns a formatter that writes hunks as a unified diff
// of the lines of in, headed by in.AName and in.BName.
// Lines that differ only in whitespace are shown
// with their spaces and tabs made visible.
func Unified(in Input[string], hunks []Hunk) fmt.Formatter {
	return &unifiedFormatter{in, hunks}
}

type unifiedFormatter struct {
	in    Input[string]
	hunks []Hunk
}

func (uf *unifiedFormatter) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, "--- %s\n", uf.in.AName)
	fmt.Fprintf(f, "+++ %s\n", uf.in.BName)
	for _, h := range uf.hunks {
		fmt.Fprintf(f, "%v\n", h)
		visA, visB := hunkFilters(uf.in, h)
		var ai, bi int
		for _, e := range h.Edits {
			switch e.Type {
			case Common:
				writeLine(f, " ", identity, uf.in.A[e.A.Value])
				ai++
				bi++
			case Delete:
				writeLine(f, "-", visA[ai], uf.in.A[e.A.Value])
				ai++
			case Insert:
				writeLine(f, "+", visB[bi], uf.in.B[e.B.Value])
				bi++
			case Meta:
			default:
				panic("diffy: unknown edit type " + e.Type.String())
			}
		}
	}
}

// hunkFilters returns, for each A and B line of h in order,
// the replacer to show it with.
func hunkFilters(in Input[string], h Hunk) (visA, visB []*strings.Replacer) {
	var as, bs []string
	for _, e := range h.Edits {
		if e.A.Valid {
			as = append(as, in.A[e.A.Value])
		}
		if e.B.Valid {
			bs = append(bs, in.B[e.B.Value])
		}
	}
	visA = make([]*strings.Replacer, len(as))
	visB = make([]*strings.Replacer, len(bs))
	for i := range visA {
		visA[i] = identity
	}
	for i := range visB {
		visB[i] = identity
	}
	for _, bl := range diffseq.Merge(Result{Edits: h.Edits}.Script()) {
		vis := wsFilter(bl, as, bs)
		for i := bl.A0; i < bl.A1; i++ {
			visA[i] = vis
		}
		for i := bl.B0; i < bl.B1; i++ {
			visB[i] = vis
		}
	}
	return visA, visB
}

func writeLine(w io.Writer, op string, vis *strings.Replacer, line string) {
	io.WriteString(w, op)
	text, ok := strings.CutSuffix(line, "\n")
	vis.WriteString(w, text)
	io.WriteString(w, "\n")
	if !ok {
		io.WriteString(w, noNewline)
	}
}

// Words returns a formatter that writes annotated hunks with
// deleted tokens marked [-like this-] and inserted tokens
// {+like this+}. If ignoreWS is set, changes to runs of spaces
// and tabs are not marked.
func Words(in Input[string], hunks []AnnotatedHunk, ignoreWS bool) fmt.Formatter {
	return &wordsFormatter{in, hunks, ignoreWS}
}

type wordsFormatter struct {
	in       Input[string]
	hunks    []AnnotatedHunk
	ignoreWS bool
}

func (wf *wordsFormatter) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, "--- %s\n", wf.in.AName)
	fmt.Fprintf(f, "+++ %s\n", wf.in.BName)
	for _, h := range wf.hunks {
		fmt.Fprintf(f, "%v\n", h.Hunk)
		var ai, bi int
		for _, e := range h.Edits {
			switch e.Type {
			case Common:
				wf.writeLine(f, " ", wf.in.A[e.A.Value], h.A[ai])
				ai++
				bi++
			case Delete:
				wf.writeLine(f, "-", wf.in.A[e.A.Value], h.A[ai])
				ai++
			case Insert:
				wf.writeLine(f, "+", wf.in.B[e.B.Value], h.B[bi])
				bi++
			}
		}
	}
}

func (wf *wordsFormatter) writeLine(w io.Writer, op, line string, al AnnotatedLine) {
	io.WriteString(w, op)
	for _, s := range al.Segments {
		text := line[s.Start : s.Start+s.Len]
		t := s.Type
		if s.Blank && wf.ignoreWS || strings.Trim(text, "\r\n") == "" {
			t = Common
		}
		switch t {
		case Delete:
			fmt.Fprintf(w, "[-%s-]", text)
		case Insert:
			fmt.Fprintf(w, "{+%s+}", text)
		default:
			io.WriteString(w, text)
		}
	}
	if !strings.HasSuffix(line, "\n") {
		io.WriteString(w, "\n")
		io.WriteString(w, noNewline)
	}
}
