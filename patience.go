package diffy

import (
	"golang.org/x/exp/slices"
)

// patience diffs by anchoring on items that occur exactly once
// in each side of a slice, keeping the longest run of anchors
// that appear in the same order on both sides, and recursing
// into the gaps between them.
type patience[T comparable] struct {
	a, b   []T
	hash   func(T) uint32
	failed bool
}

// A slice is the region a[aLow:aHigh], b[bLow:bHigh].
type slice struct {
	aLow, aHigh int
	bLow, bHigh int
}

func (s slice) empty() bool {
	return !(s.aLow < s.aHigh && s.bLow < s.bHigh)
}

// An anchor pairs a[a] with b[b], both unique in their slice.
// prev and next link anchors by their position in the
// collection that holds them; -1 means none.
type anchor struct {
	a, b       int
	prev, next int
}

func (p *patience[T]) diff() Result {
	edits := p.diffSlice(slice{0, len(p.a), 0, len(p.b)})
	if p.failed {
		return Result{Status: Failed}
	}
	if allCommon(edits, len(p.a), len(p.b)) {
		return Result{Status: NoChanges, Edits: edits}
	}
	return Result{Status: OK, Edits: edits}
}

// diffSlice returns the edit script for s.
func (p *patience[T]) diffSlice(s slice) []Edit {
	anchors := p.uniqueAnchors(s)
	i := patienceSort(anchors)
	if i < 0 {
		return p.fallback(s)
	}

	var edits []Edit
	aNext, bNext := s.aLow, s.bLow
	for {
		gap := slice{aNext, s.aHigh, bNext, s.bHigh}
		if i >= 0 {
			gap.aHigh, gap.bHigh = anchors[i].a, anchors[i].b
		}

		for !gap.empty() && p.a[gap.aLow] == p.b[gap.bLow] {
			edits = append(edits, Edit{Type: Common, A: At(gap.aLow), B: At(gap.bLow)})
			gap.aLow++
			gap.bLow++
		}
		tail := gap
		for !gap.empty() && p.a[gap.aHigh-1] == p.b[gap.bHigh-1] {
			gap.aHigh--
			gap.bHigh--
		}
		edits = append(edits, p.diffSlice(gap)...)
		for ai, bi := gap.aHigh, gap.bHigh; ai < tail.aHigh; ai, bi = ai+1, bi+1 {
			edits = append(edits, Edit{Type: Common, A: At(ai), B: At(bi)})
		}

		if i < 0 {
			return edits
		}
		an := anchors[i]
		edits = append(edits, Edit{Type: Common, A: At(an.a), B: At(an.b)})
		aNext, bNext = an.a+1, an.b+1
		i = an.next
	}
}

// fallback diffs s with MyersLinear, for slices without anchors.
func (p *patience[T]) fallback(s slice) []Edit {
	r := Compute(MyersLinear, Input[T]{
		A: p.a[s.aLow:s.aHigh],
		B: p.b[s.bLow:s.bHigh],
	})
	if r.Status == Failed {
		p.failed = true
		return nil
	}
	for n := range r.Edits {
		r.Edits[n].A = r.Edits[n].A.offset(s.aLow)
		r.Edits[n].B = r.Edits[n].B.offset(s.bLow)
	}
	return r.Edits
}

type tally struct {
	aCount, bCount int
	a, b           int // last position seen
}

// uniqueAnchors returns the pairs of items that occur once in
// each side of s, ordered by their position in a.
func (p *patience[T]) uniqueAnchors(s slice) []anchor {
	var anchors []anchor
	add := func(t *tally) {
		// A hash may collide; only pair items that are equal.
		if t.aCount == 1 && t.bCount == 1 && p.a[t.a] == p.b[t.b] {
			anchors = append(anchors, anchor{a: t.a, b: t.b, prev: -1, next: -1})
		}
	}
	if p.hash != nil {
		for _, t := range tallyBy(p.a, p.b, s, p.hash) {
			add(t)
		}
	} else {
		for _, t := range tallyBy(p.a, p.b, s, func(v T) T { return v }) {
			add(t)
		}
	}
	slices.SortFunc(anchors, func(x, y anchor) int { return x.a - y.a })
	return anchors
}

func tallyBy[K comparable, T any](a, b []T, s slice, key func(T) K) map[K]*tally {
	tallies := make(map[K]*tally)
	get := func(v T) *tally {
		k := key(v)
		t := tallies[k]
		if t == nil {
			t = new(tally)
			tallies[k] = t
		}
		return t
	}
	for i := s.aLow; i < s.aHigh; i++ {
		t := get(a[i])
		t.aCount++
		t.a = i
	}
	for j := s.bLow; j < s.bHigh; j++ {
		t := get(b[j])
		t.bCount++
		t.b = j
	}
	return tallies
}

// patienceSort finds the longest run of anchors whose b positions
// increase, given anchors ordered by a. It links that run through
// next and returns the index of its first anchor, or -1 if there
// are no anchors.
//
// Anchors are dealt onto stacks left to right: each goes on the
// leftmost stack whose top has a larger b, or starts a new stack,
// and remembers the top of the stack to its left as prev.
// The chain ending at the top of the last stack is the answer.
func patienceSort(anchors []anchor) int {
	var tops []int
	for i := range anchors {
		pos, _ := slices.BinarySearchFunc(tops, anchors[i].b, func(top, b int) int {
			return anchors[top].b - b
		})
		if pos > 0 {
			anchors[i].prev = tops[pos-1]
		}
		if pos == len(tops) {
			tops = append(tops, i)
		} else {
			tops[pos] = i
		}
	}
	if len(tops) == 0 {
		return -1
	}
	i := tops[len(tops)-1]
	for anchors[i].prev >= 0 {
		prev := anchors[i].prev
		anchors[prev].next = i
		i = prev
	}
	return i
}
