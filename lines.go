package diffy

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// SplitLines splits text after each newline.
// Every line but possibly the last keeps its "\n".
// An empty text has no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// HashString is the 32-bit item hash used for lines and tokens.
func HashString(s string) uint32 {
	return uint32(xxhash.Sum64String(s))
}

// Lines returns the Input comparing the lines of a and b.
func Lines(aName, a, bName, b string) Input[string] {
	return Input[string]{
		A:     SplitLines(a),
		B:     SplitLines(b),
		AName: aName,
		BName: bName,
		Hash:  HashString,
	}
}

// normalizeLineEndings rewrites "\r\n" as "\n".
func normalizeLineEndings(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
