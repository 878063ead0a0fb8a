package diffy

import "fmt"

// An EditType says what an Edit does to the sequences.
type EditType int

const (
	Delete EditType = iota // consumes an item of A
	Insert                 // consumes an item of B
	Common                 // consumes one equal item of each
	Meta                   // marker; consumes nothing
)

func (t EditType) String() string {
	switch t {
	case Delete:
		return "Delete"
	case Insert:
		return "Insert"
	case Common:
		return "Common"
	case Meta:
		return "Meta"
	}
	return fmt.Sprintf("EditType(%d)", int(t))
}

// An Index is an optional position in a sequence.
// The zero value is NoIndex.
type Index struct {
	Valid bool
	Value int
}

// NoIndex means there is no corresponding position.
var NoIndex Index

// At returns a valid Index for position i.
func At(i int) Index {
	return Index{Valid: true, Value: i}
}

func (x Index) String() string {
	if !x.Valid {
		return "_"
	}
	return fmt.Sprint(x.Value)
}

func (x Index) offset(n int) Index {
	if x.Valid {
		x.Value += n
	}
	return x
}

// An Edit is one step of an edit script turning A into B.
//
// A Delete has a valid A and no B, an Insert the reverse,
// and a Common edit has both, referring to equal items.
type Edit struct {
	Type EditType
	A, B Index
}

func (e Edit) String() string {
	return fmt.Sprintf("%v(%v,%v)", e.Type, e.A, e.B)
}

// Status reports how a diff went.
type Status int

const (
	OK        Status = iota // a non-trivial edit script was found
	Failed                  // no edit script; Edits is unusable
	NoChanges               // the sequences are equal
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case Failed:
		return "Failed"
	case NoChanges:
		return "NoChanges"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result is the outcome of a diff.
type Result struct {
	Status Status
	Edits  []Edit
}

// Stat counts the edits of each type in r.
func (r Result) Stat() (del, ins, common int) {
	for _, e := range r.Edits {
		switch e.Type {
		case Delete:
			del++
		case Insert:
			ins++
		case Common:
			common++
		}
	}
	return del, ins, common
}

// Replay checks that edits turns a into b.
// Every index of a and b must be consumed exactly once, in order,
// and every Common edit must refer to equal items.
func Replay[T comparable](edits []Edit, a, b []T) error {
	i, j := 0, 0
	for n, e := range edits {
		switch e.Type {
		case Delete:
			if !e.A.Valid || e.B.Valid || e.A.Value != i {
				return fmt.Errorf("edit %d: %v, want Delete(%d,_)", n, e, i)
			}
			i++
		case Insert:
			if e.A.Valid || !e.B.Valid || e.B.Value != j {
				return fmt.Errorf("edit %d: %v, want Insert(_,%d)", n, e, j)
			}
			j++
		case Common:
			if !e.A.Valid || !e.B.Valid || e.A.Value != i || e.B.Value != j {
				return fmt.Errorf("edit %d: %v, want Common(%d,%d)", n, e, i, j)
			}
			if i >= len(a) || j >= len(b) {
				return fmt.Errorf("edit %d: %v out of range", n, e)
			}
			if a[i] != b[j] {
				return fmt.Errorf("edit %d: %v joins unequal items", n, e)
			}
			i++
			j++
		case Meta:
		default:
			return fmt.Errorf("edit %d: bad type %v", n, e.Type)
		}
		if i > len(a) || j > len(b) {
			return fmt.Errorf("edit %d: %v out of range", n, e)
		}
	}
	if i != len(a) || j != len(b) {
		return fmt.Errorf("consumed %d of %d items of A and %d of %d of B", i, len(a), j, len(b))
	}
	return nil
}

// movesToEdits classifies each unit move of an edit-graph path.
// A move that keeps x is an Insert, one that keeps y is a Delete,
// and a diagonal move is Common.
func movesToEdits(moves []move) []Edit {
	edits := make([]Edit, 0, len(moves))
	for _, m := range moves {
		switch {
		case m.from.x == m.to.x:
			edits = append(edits, Edit{Type: Insert, B: At(m.from.y)})
		case m.from.y == m.to.y:
			edits = append(edits, Edit{Type: Delete, A: At(m.from.x)})
		default:
			edits = append(edits, Edit{Type: Common, A: At(m.from.x), B: At(m.from.y)})
		}
	}
	return edits
}

type point struct{ x, y int }

// A move is a single step in the edit graph.
type move struct{ from, to point }

func allCommon(edits []Edit, n, m int) bool {
	if n != m || len(edits) != n {
		return false
	}
	for _, e := range edits {
		if e.Type != Common {
			return false
		}
	}
	return true
}
