package diffy

import "fmt"

// A Hunk is a run of edits holding one or more changes
// and the unchanged context around them.
//
// FromStart and ToStart are 1-based line numbers, as in a unified
// diff header. For an empty range they name the line before it.
type Hunk struct {
	FromStart, FromCount int
	ToStart, ToCount     int

	Edits []Edit
}

func (h Hunk) String() string {
	return fmt.Sprintf("@@ -%s +%s @@", hunkRange(h.FromStart, h.FromCount), hunkRange(h.ToStart, h.ToCount))
}

func hunkRange(start, count int) string {
	if count == 1 {
		return fmt.Sprint(start)
	}
	return fmt.Sprintf("%d,%d", start, count)
}

// ComposeHunks groups the changes in edits into hunks,
// each padded with up to context Common edits on either side.
// Changes close enough that their context would touch or overlap
// share a hunk. The hunks share storage with edits.
func ComposeHunks(edits []Edit, context int) []Hunk {
	if context < 0 {
		context = 0
	}
	ranges := extendHunkRanges(findHunkRanges(edits), len(edits), context)
	if len(ranges) == 0 {
		return nil
	}

	// consumed[i] counts the items of A and B used by edits[:i+1].
	consumed := make([]point, len(edits))
	var at point
	for i, e := range edits {
		at = advance(at, e.Type)
		consumed[i] = at
	}

	hunks := make([]Hunk, 0, len(ranges))
	for _, r := range ranges {
		h := Hunk{
			FromStart: startOf(edits, consumed, r, Delete).x,
			ToStart:   startOf(edits, consumed, r, Insert).y,
			Edits:     edits[r.start : r.end+1 : r.end+1],
		}
		var n point
		for _, e := range h.Edits {
			n = advance(n, e.Type)
		}
		h.FromCount, h.ToCount = n.x, n.y
		hunks = append(hunks, h)
	}
	return hunks
}

// startOf returns the consumption counts at the first edit of r
// that reaches the side changed by t. When no edit does,
// the counts before r stand for that side.
func startOf(edits []Edit, consumed []point, r editRange, t EditType) point {
	for i := r.start; i <= r.end; i++ {
		if edits[i].Type == t || edits[i].Type == Common {
			return consumed[i]
		}
	}
	return consumed[r.start]
}

func advance(p point, t EditType) point {
	switch t {
	case Delete:
		p.x++
	case Insert:
		p.y++
	case Common:
		p.x++
		p.y++
	}
	return p
}

// An editRange is the inclusive range edits[start:end+1].
type editRange struct{ start, end int }

// findHunkRanges returns the maximal runs of edits that are not Common.
func findHunkRanges(edits []Edit) []editRange {
	var ranges []editRange
	in := false
	for i, e := range edits {
		switch {
		case e.Type != Common && !in:
			ranges = append(ranges, editRange{i, i})
			in = true
		case e.Type != Common:
			ranges[len(ranges)-1].end = i
		default:
			in = false
		}
	}
	return ranges
}

// extendHunkRanges merges ranges separated by at most 2*context
// Common edits, then widens each by context edits on both sides
// without crossing its neighbours or the ends of the script.
func extendHunkRanges(ranges []editRange, n, context int) []editRange {
	var out []editRange
	for _, r := range ranges {
		if len(out) > 0 {
			last := &out[len(out)-1]
			if r.start-last.end < 2*context+2 {
				last.end = r.end
				continue
			}
		}
		out = append(out, r)
	}

	prevEnd := 0
	for i := range out {
		r := &out[i]
		r.start = max(prevEnd, r.start-context)
		if i+1 < len(out) {
			r.end = min(out[i+1].start, r.end+context)
		} else {
			r.end = min(r.end+context, n-1)
		}
		prevEnd = r.end
	}
	return out
}
