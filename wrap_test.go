package diffy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWrapCells(t *testing.T) {
	cases := []struct {
		s    string
		w    int
		want []string
	}{
		{"", 5, []string{""}},
		{"abc", 5, []string{"abc"}},
		{"abcdef", 3, []string{"abc", "def"}},
		{"abcdefg", 3, []string{"abc", "def", "g"}},
		{"日本語", 5, []string{"日本", "語"}},
		{"a日b", 2, []string{"a", "日", "b"}},
	}
	for _, tt := range cases {
		if d := cmp.Diff(tt.want, wrapCells(tt.s, tt.w)); d != "" {
			t.Errorf("wrapCells(%q, %d) (-want +got):\n%s", tt.s, tt.w, d)
		}
	}
}
