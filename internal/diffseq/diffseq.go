// Package diffseq folds edit scripts into change blocks.
package diffseq

import (
	"context"

	"github.com/pkg/diff/edit"
	"github.com/pkg/diff/myers"
)

// A Block is a run of changed items: A[A0:A1] replaced by B[B0:B1].
// Either side may be empty, for a pure insertion or deletion.
// It contains only changed items, no surrounding equal context.
type Block struct {
	A0, A1 int
	B0, B1 int
}

// Replace reports whether b both deletes and inserts.
func (b Block) Replace() bool {
	return b.A1 > b.A0 && b.B1 > b.B0
}

// Merge transforms an edit.Script into change blocks.
// An edit.Script represents a replacement as a delete
// plus an insert and has an item for each unchanged region;
// Merge joins the former and drops the latter.
func Merge(script edit.Script) (bs []Block) {
	needNext := true
	for _, r := range script.Ranges {
		switch r.Op() {
		case edit.Eq:
			needNext = true
		case edit.Del:
			if needNext {
				needNext = false
				bs = append(bs, Block{
					A0: r.LowA, A1: r.HighA,
					B0: r.LowB, B1: r.HighB,
				})
			} else {
				bs[len(bs)-1].A1 = r.HighA
			}
		case edit.Ins:
			if needNext {
				needNext = false
				bs = append(bs, Block{
					A0: r.LowA, A1: r.HighA,
					B0: r.LowB, B1: r.HighB,
				})
			} else {
				bs[len(bs)-1].B1 = r.HighB
			}
		}
	}
	return bs
}

// DiffSlice finds an edit script to transform a into b
// with the Myers implementation from github.com/pkg/diff,
// using Go's built-in == operator.
func DiffSlice[T comparable](a, b []T) edit.Script {
	return myers.Diff(context.Background(), &pair[T]{a, b})
}

type pair[T comparable] struct{ a, b []T }

func (p *pair[T]) LenA() int             { return len(p.a) }
func (p *pair[T]) LenB() int             { return len(p.b) }
func (p *pair[T]) Equal(ai, bi int) bool { return p.a[ai] == p.b[bi] }

// Distance returns the number of deleted and inserted items in s.
func Distance(s edit.Script) (del, ins int) {
	for _, r := range s.Ranges {
		switch r.Op() {
		case edit.Del:
			del += r.HighA - r.LowA
		case edit.Ins:
			ins += r.HighB - r.LowB
		}
	}
	return del, ins
}
