package diffy

import "kr.dev/diffy/internal/bipolar"

// linear is Myers' divide-and-conquer algorithm.
// It finds a middle snake of the whole problem,
// then solves the regions before and after it the same way,
// so it never holds more than O(N+M) of search state.
type linear[T comparable] struct {
	a, b []T
}

// A box is the unsolved rectangle [left, right) x [top, bottom)
// of the edit graph.
type box struct {
	left, top, right, bottom int
}

func (b box) width() int  { return b.right - b.left }
func (b box) height() int { return b.bottom - b.top }
func (b box) size() int   { return b.width() + b.height() }
func (b box) delta() int  { return b.width() - b.height() }

func (l *linear[T]) diff() Result {
	var path []point
	if !l.findPath(box{0, 0, len(l.a), len(l.b)}, &path) {
		return Result{Status: Failed}
	}
	edits := movesToEdits(l.walkSnakes(path))
	if allCommon(edits, len(l.a), len(l.b)) {
		return Result{Status: NoChanges, Edits: edits}
	}
	return Result{Status: OK, Edits: edits}
}

// findPath appends to path, in order, the corners of the snakes
// that make up a shortest path through bx.
// It reports false if bx is empty.
func (l *linear[T]) findPath(bx box, path *[]point) bool {
	snake, ok := l.midpoint(bx)
	if !ok {
		return false
	}
	start, finish := snake.from, snake.to

	head := l.findPath(box{bx.left, bx.top, start.x, start.y}, path)
	if !head {
		*path = append(*path, start)
	}
	tail := l.findPath(box{finish.x, finish.y, bx.right, bx.bottom}, path)
	if !tail {
		*path = append(*path, finish)
	}
	return true
}

// midpoint runs the forward and backward searches over bx
// in lock step until they overlap, and returns the snake
// where they meet.
func (l *linear[T]) midpoint(bx box) (move, bool) {
	if bx.size() == 0 {
		return move{}, false
	}
	max := (bx.size() + 1) / 2

	vf := bipolar.New[int](-max, max)
	vf.Set(1, bx.left)
	vb := bipolar.New[int](-max, max)
	vb.Set(1, bx.bottom)

	for d := 0; d <= max; d++ {
		if m, ok := l.forward(bx, vf, vb, d); ok {
			return m, true
		}
		if m, ok := l.backward(bx, vf, vb, d); ok {
			return m, true
		}
	}
	return move{}, false
}

// forward advances the forward search to distance d.
// vf holds x coordinates indexed by k = x - y (relative to the
// box's top-left corner); vb holds backward y coordinates
// indexed by c = k - delta.
func (l *linear[T]) forward(bx box, vf, vb *bipolar.Array[int], d int) (move, bool) {
	for k := d; k >= -d; k -= 2 {
		c := k - bx.delta()

		var px, x int
		if k == -d || (k != d && vf.At(k-1) < vf.At(k+1)) {
			px = vf.At(k + 1)
			x = px
		} else {
			px = vf.At(k - 1)
			x = px + 1
		}
		y := bx.top + (x - bx.left) - k
		py := y
		if d != 0 && x == px {
			py = y - 1
		}

		for x < bx.right && y < bx.bottom && l.a[x] == l.b[y] {
			x++
			y++
		}
		vf.Set(k, x)

		if odd(bx.delta()) && between(c, -(d-1), d-1) && y >= vb.At(c) {
			return move{point{px, py}, point{x, y}}, true
		}
	}
	return move{}, false
}

// backward advances the backward search to distance d.
func (l *linear[T]) backward(bx box, vf, vb *bipolar.Array[int], d int) (move, bool) {
	for c := d; c >= -d; c -= 2 {
		k := c + bx.delta()

		var py, y int
		if c == -d || (c != d && vb.At(c-1) > vb.At(c+1)) {
			py = vb.At(c + 1)
			y = py
		} else {
			py = vb.At(c - 1)
			y = py - 1
		}
		x := bx.left + (y - bx.top) + k
		px := x
		if d != 0 && y == py {
			px = x + 1
		}

		for x > bx.left && y > bx.top && l.a[x-1] == l.b[y-1] {
			x--
			y--
		}
		vb.Set(c, y)

		if !odd(bx.delta()) && between(k, -d, d) && x <= vf.At(k) {
			return move{point{x, y}, point{px, py}}, true
		}
	}
	return move{}, false
}

// walkSnakes expands the snake corners of path into unit moves.
// Between two corners there is at most one insertion or deletion,
// with runs of common items on either side of it.
func (l *linear[T]) walkSnakes(path []point) []move {
	var moves []move
	for i := 0; i+1 < len(path); i++ {
		from, to := path[i], path[i+1]

		from = l.walkDiagonal(from, to, &moves)
		switch dx, dy := to.x-from.x, to.y-from.y; {
		case dx < dy:
			next := point{from.x, from.y + 1}
			moves = append(moves, move{from, next})
			from = next
		case dx > dy:
			next := point{from.x + 1, from.y}
			moves = append(moves, move{from, next})
			from = next
		}
		l.walkDiagonal(from, to, &moves)
	}
	return moves
}

func (l *linear[T]) walkDiagonal(from, to point, moves *[]move) point {
	for from.x < to.x && from.y < to.y && l.a[from.x] == l.b[from.y] {
		next := point{from.x + 1, from.y + 1}
		*moves = append(*moves, move{from, next})
		from = next
	}
	return from
}

func odd(v int) bool { return v&1 == 1 }

func between(v, lo, hi int) bool { return lo <= v && v <= hi }
