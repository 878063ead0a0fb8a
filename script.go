package diffy

import "github.com/pkg/diff/edit"

// Script converts r into an edit.Script from github.com/pkg/diff.
// Consecutive edits of the same type become one range.
// Meta edits are dropped.
func (r Result) Script() edit.Script {
	var s edit.Script
	var a, b int
	last := Meta
	for _, e := range r.Edits {
		if e.Type == Meta {
			continue
		}
		if e.Type != last || len(s.Ranges) == 0 {
			s.Ranges = append(s.Ranges, edit.Range{LowA: a, HighA: a, LowB: b, HighB: b})
			last = e.Type
		}
		rg := &s.Ranges[len(s.Ranges)-1]
		switch e.Type {
		case Delete:
			a++
			rg.HighA = a
		case Insert:
			b++
			rg.HighB = b
		case Common:
			a++
			b++
			rg.HighA, rg.HighB = a, b
		}
	}
	return s
}
