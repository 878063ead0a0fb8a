package diffseq

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/diff/edit"
)

func TestMerge(t *testing.T) {
	s := edit.Script{Ranges: []edit.Range{
		{LowA: 0, HighA: 1, LowB: 0, HighB: 1}, // eq
		{LowA: 1, HighA: 3, LowB: 1, HighB: 1}, // del
		{LowA: 3, HighA: 3, LowB: 1, HighB: 2}, // ins
		{LowA: 3, HighA: 4, LowB: 2, HighB: 3}, // eq
		{LowA: 4, HighA: 4, LowB: 3, HighB: 5}, // ins
	}}
	got := Merge(s)
	want := []Block{
		{A0: 1, A1: 3, B0: 1, B1: 2},
		{A0: 4, A1: 4, B0: 3, B1: 5},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Merge (-want +got):\n%s", d)
	}
	if !got[0].Replace() {
		t.Errorf("block 0 Replace() = false, want true")
	}
	if got[1].Replace() {
		t.Errorf("block 1 Replace() = true, want false")
	}
}

func TestDiffSlice(t *testing.T) {
	a := strings.Split("a b c d e", " ")
	b := strings.Split("a x c d y e", " ")
	del, ins := Distance(DiffSlice(a, b))
	if del != 1 || ins != 2 {
		t.Errorf("Distance = %d, %d, want 1, 2", del, ins)
	}
	got := Merge(DiffSlice(a, b))
	want := []Block{
		{A0: 1, A1: 2, B0: 1, B1: 2},
		{A0: 4, A1: 4, B0: 4, B1: 5},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Merge(DiffSlice) (-want +got):\n%s", d)
	}
}

func TestDiffSliceEqual(t *testing.T) {
	a := []int{1, 2, 3}
	if bs := Merge(DiffSlice(a, a)); len(bs) != 0 {
		t.Errorf("Merge(DiffSlice(a, a)) = %v, want none", bs)
	}
}
