package diffy

import (
	"math"

	"golang.org/x/exp/constraints"

	"kr.dev/diffy/internal/bipolar"
)

// greedy is the forward Myers algorithm.
// It keeps a snapshot of V for every edit distance d,
// so time and space are both O((N+M)D).
//
// V holds x coordinates. W is the narrowest integer type
// that can hold any of them; a smaller W means less to copy
// per snapshot, and does not change the result.
type greedy[T comparable, W constraints.Integer] struct {
	a, b []T
}

func newGreedy[T comparable](a, b []T) differ {
	// Off the edit graph, x can grow by one per edit,
	// so 2(N+M) bounds every value stored in V.
	bound := 2 * uint64(len(a)+len(b))
	switch {
	case bound < math.MaxUint8:
		return &greedy[T, uint8]{a, b}
	case bound < math.MaxUint16:
		return &greedy[T, uint16]{a, b}
	case bound < math.MaxUint32:
		return &greedy[T, uint32]{a, b}
	}
	return &greedy[T, int]{a, b}
}

func (g *greedy[T, W]) diff() Result {
	trace, d := g.editDistance()
	if d < 0 {
		return Result{Status: Failed}
	}
	edits := movesToEdits(g.backtrack(trace))
	if d == 0 {
		return Result{Status: NoChanges, Edits: edits}
	}
	return Result{Status: OK, Edits: edits}
}

// editDistance finds the length d of the shortest edit script.
// It returns one snapshot of V per distance 0..d.
func (g *greedy[T, W]) editDistance() ([]*bipolar.Array[W], int) {
	n, m := len(g.a), len(g.b)
	max := n + m

	v := bipolar.New[W](-max, max)
	v.Set(1, 0)
	trace := make([]*bipolar.Array[W], 0, max)
	for d := 0; d <= max; d++ {
		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v.At(k-1) < v.At(k+1)) {
				x = int(v.At(k + 1)) // down
			} else {
				x = int(v.At(k-1)) + 1 // right
			}
			y := x - k
			for x < n && y < m && g.a[x] == g.b[y] {
				x++
				y++
			}
			v.Set(k, W(x))
			if x >= n && y >= m {
				trace = append(trace, g.snapshot(v, d))
				return trace, d
			}
		}
		trace = append(trace, g.snapshot(v, d))
	}
	return nil, -1
}

// snapshot copies the part of v that backtracking
// through distance d can read.
func (g *greedy[T, W]) snapshot(v *bipolar.Array[W], d int) *bipolar.Array[W] {
	return v.CloneRange(-d-1, d+1)
}

// backtrack walks the trace from (N, M) back to (0, 0)
// and returns the path in forward order, one unit move at a time.
func (g *greedy[T, W]) backtrack(trace []*bipolar.Array[W]) []move {
	x, y := len(g.a), len(g.b)
	var moves []move
	for d := len(trace) - 1; d >= 0; d-- {
		v := trace[d]
		k := x - y

		var prevK int
		if k == -d || (k != d && v.At(k-1) < v.At(k+1)) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevX := int(v.At(prevK))
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			moves = append(moves, move{point{x - 1, y - 1}, point{x, y}})
			x--
			y--
		}
		if d > 0 {
			moves = append(moves, move{point{prevX, prevY}, point{x, y}})
		}
		x, y = prevX, prevY
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}
