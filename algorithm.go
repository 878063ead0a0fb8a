package diffy

import (
	"errors"
	"fmt"
	"strings"
)

// An Algorithm selects how Compute finds an edit script.
type Algorithm int

const (
	// MyersGreedy is Myers' O((N+M)D) algorithm keeping
	// one snapshot of its diagonal state per edit distance.
	// Its output is minimal, but memory grows with D.
	MyersGreedy Algorithm = iota

	// MyersLinear is the divide-and-conquer form of Myers'
	// algorithm. Its output is minimal and it uses O(N+M) space.
	MyersLinear

	// Patience splits the input at items that occur exactly
	// once on each side and diffs the gaps between them,
	// using MyersLinear where no such item exists.
	// Its output is not always minimal, but it tends to line up
	// with how people read structured text.
	Patience
)

// DefaultAlgorithm is the algorithm used when none is chosen.
const DefaultAlgorithm = Patience

// ErrUnknownAlgorithm is returned by ParseAlgorithm.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

func (a Algorithm) String() string {
	switch a {
	case MyersGreedy:
		return "myers-greedy"
	case MyersLinear:
		return "myers-linear"
	case Patience:
		return "patience"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm returns the algorithm with the given name.
// Both long names and the short forms "mg", "ml" and "p" work;
// "default" means DefaultAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mg", "myers-greedy":
		return MyersGreedy, nil
	case "ml", "myers-linear":
		return MyersLinear, nil
	case "p", "patience", "default":
		return Patience, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownAlgorithm, name)
}

// Input is a pair of sequences to compare.
type Input[T comparable] struct {
	A, B []T

	// Display labels for A and B.
	AName, BName string

	// Hash returns a stable 32-bit hash of an item.
	// Patience uses it to find items that occur once on each side.
	// If nil, items are grouped by value instead.
	Hash func(T) uint32
}

type differ interface {
	diff() Result
}

// Compute finds an edit script turning in.A into in.B.
//
// Inputs where either side is empty are answered directly,
// so no algorithm ever runs on a trivial input.
// Compute does not retain in or any working state;
// the returned Result belongs to the caller.
func Compute[T comparable](alg Algorithm, in Input[T]) Result {
	if alg < MyersGreedy || alg > Patience {
		return Result{Status: Failed}
	}
	n, m := len(in.A), len(in.B)
	switch {
	case n == 0 && m == 0:
		return Result{Status: OK}
	case n == 0:
		edits := make([]Edit, m)
		for j := range edits {
			edits[j] = Edit{Type: Insert, B: At(j)}
		}
		return Result{Status: OK, Edits: edits}
	case m == 0:
		edits := make([]Edit, n)
		for i := range edits {
			edits[i] = Edit{Type: Delete, A: At(i)}
		}
		return Result{Status: OK, Edits: edits}
	}

	var d differ
	switch alg {
	case MyersGreedy:
		d = newGreedy(in.A, in.B)
	case MyersLinear:
		d = &linear[T]{a: in.A, b: in.B}
	case Patience:
		d = &patience[T]{a: in.A, b: in.B, hash: in.Hash}
	}
	return d.diff()
}
