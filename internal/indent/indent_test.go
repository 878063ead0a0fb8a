package indent

import (
	"bytes"
	"testing"
)

func TestWrite(t *testing.T) {
	cases := []struct {
		name   string
		writes []string
		want   string
		lines  int
	}{
		{"part", []string{"bbb"}, "aaabbb", 0},
		{"full", []string{"bbb\n"}, "aaabbb\n", 1},
		{"multi part", []string{"bbb\nccc"}, "aaabbb\naaaccc", 1},
		{"multi full", []string{"bbb\nccc\n"}, "aaabbb\naaaccc\n", 2},
		{"multi call part", []string{"bb", "b\nccc"}, "aaabbb\naaaccc", 1},
		{"multi call full", []string{"bbb\n", "ccc\n"}, "aaabbb\naaaccc\n", 2},
		{"blank line", []string{"bbb\n\nccc\n"}, "aaabbb\n\naaaccc\n", 3},
		{"leading blank", []string{"\n", "bbb"}, "\naaabbb", 1},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := New(&buf, "aaa")
			for _, s := range tt.writes {
				n, err := w.Write([]byte(s))
				if n != len(s) {
					t.Errorf("n = %d, want %d", n, len(s))
				}
				if err != nil {
					t.Errorf("err = %v, want nil", err)
				}
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("got = %+q, want %+q", got, tt.want)
			}
			if got := w.Lines(); got != tt.lines {
				t.Errorf("Lines() = %d, want %d", got, tt.lines)
			}
		})
	}
}

func TestString(t *testing.T) {
	got := String("\t", "--- a\n+++ b\n\n")
	want := "\t--- a\n\t+++ b\n\n"
	if got != want {
		t.Errorf("String = %+q, want %+q", got, want)
	}
}
