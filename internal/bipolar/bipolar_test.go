package bipolar

import (
	"fmt"
	"testing"
)

func TestSimple(t *testing.T) {
	a := New[uint](-1, 1)
	a.Set(0, 1)
	a.Set(-1, 1)
	if got := a.At(0); got != 1 {
		t.Errorf("a[0] = %d, want 1", got)
	}
	if got := a.At(-1); got != 1 {
		t.Errorf("a[-1] = %d, want 1", got)
	}
	if got := a.At(1); got != 0 {
		t.Errorf("a[1] = %d, want 0", got)
	}
}

func TestRange(t *testing.T) {
	cases := [][2]int{
		{-5, 5},
		{-1, 2},
		{0, 0},
		{3, 7},
		{-9, -4},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprint(tt), func(t *testing.T) {
			a := New[int](tt[0], tt[1])
			if got, want := a.Len(), tt[1]-tt[0]+1; got != want {
				t.Errorf("Len() = %d, want %d", got, want)
			}
			for i := tt[0]; i <= tt[1]; i++ {
				a.Set(i, i*10)
			}
			for i := tt[0]; i <= tt[1]; i++ {
				if got := a.At(i); got != i*10 {
					t.Errorf("a[%d] = %d, want %d", i, got, i*10)
				}
			}
		})
	}
}

func TestOutOfRange(t *testing.T) {
	a := New[int](-2, 3)
	for _, i := range []int{-3, 4, 100, -100} {
		t.Run(fmt.Sprint("at ", i), func(t *testing.T) {
			defer wantPanic(t)
			a.At(i)
		})
		t.Run(fmt.Sprint("set ", i), func(t *testing.T) {
			defer wantPanic(t)
			a.Set(i, 1)
		})
	}
}

func TestBadBounds(t *testing.T) {
	defer wantPanic(t)
	New[int](1, 0)
}

func TestClone(t *testing.T) {
	a := New[int](-3, 3)
	for i := -3; i <= 3; i++ {
		a.Set(i, i)
	}
	c := a.Clone()
	c.Set(0, 42)
	a.Set(1, 43)
	if got := a.At(0); got != 0 {
		t.Errorf("original a[0] = %d after writing clone, want 0", got)
	}
	if got := c.At(1); got != 1 {
		t.Errorf("clone c[1] = %d after writing original, want 1", got)
	}
	if c.Min() != -3 || c.Max() != 3 {
		t.Errorf("clone bounds = [%d, %d], want [-3, 3]", c.Min(), c.Max())
	}
}

func TestCloneRange(t *testing.T) {
	a := New[int](-3, 3)
	for i := -3; i <= 3; i++ {
		a.Set(i, i)
	}
	c := a.CloneRange(-1, 10)
	if c.Min() != -1 || c.Max() != 3 {
		t.Fatalf("bounds = [%d, %d], want [-1, 3]", c.Min(), c.Max())
	}
	for i := -1; i <= 3; i++ {
		if got := c.At(i); got != i {
			t.Errorf("c[%d] = %d, want %d", i, got, i)
		}
	}
	if c.In(-2) {
		t.Errorf("c.In(-2) = true, want false")
	}
}

func wantPanic(t *testing.T) {
	t.Helper()
	if recover() == nil {
		t.Errorf("no panic, want panic")
	}
}
