package diffy

import (
	"strings"

	"kr.dev/diffy/internal/diffseq"
)

var (
	identity = strings.NewReplacer()
	stripWS  = strings.NewReplacer(" ", "", "\t", "", "\r", "")
	visWS    = strings.NewReplacer(" ", "·", "\t", " → ")
)

// MergeWhitespace rewrites the changes in r that only touch
// whitespace as Common edits. A change qualifies when it replaces
// lines of a with the same number of lines of b, each pair equal
// once spaces, tabs and carriage returns are removed.
//
// The result no longer satisfies the rule that Common edits join
// equal items; that is the point. r is not modified.
func MergeWhitespace(r Result, a, b []string) Result {
	if r.Status == Failed {
		return r
	}
	pairs := make(map[int]int) // a index to b index
	skip := make(map[int]bool) // b indexes now paired
	for _, bl := range diffseq.Merge(r.Script()) {
		if !wsOnly(bl, a, b) {
			continue
		}
		for i := bl.A0; i < bl.A1; i++ {
			j := bl.B0 + i - bl.A0
			pairs[i] = j
			skip[j] = true
		}
	}
	if len(pairs) == 0 {
		return r
	}

	out := Result{Status: OK, Edits: make([]Edit, 0, len(r.Edits))}
	for _, e := range r.Edits {
		switch {
		case e.Type == Delete && e.A.Valid:
			if j, ok := pairs[e.A.Value]; ok {
				out.Edits = append(out.Edits, Edit{Type: Common, A: e.A, B: At(j)})
				continue
			}
		case e.Type == Insert && e.B.Valid && skip[e.B.Value]:
			continue
		}
		out.Edits = append(out.Edits, e)
	}
	if allCommon(out.Edits, len(a), len(b)) {
		out.Status = NoChanges
	}
	return out
}

// wsOnly reports whether bl replaces lines with equal-length
// lines that differ only in whitespace.
func wsOnly(bl diffseq.Block, a, b []string) bool {
	if !bl.Replace() || bl.A1-bl.A0 != bl.B1-bl.B0 {
		return false
	}
	for i := 0; i < bl.A1-bl.A0; i++ {
		if stripWS.Replace(a[bl.A0+i]) != stripWS.Replace(b[bl.B0+i]) {
			return false
		}
	}
	return true
}

// wsFilter returns the replacer to show lines of bl with,
// making whitespace visible when it is the only difference.
func wsFilter(bl diffseq.Block, a, b []string) *strings.Replacer {
	if wsOnly(bl, a, b) {
		return visWS
	}
	return identity
}
