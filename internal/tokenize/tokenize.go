// Package tokenize splits lines into tokens for word-level diffs.
package tokenize

import (
	"unicode"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/clipperhouse/uax29/v2/words"
)

// A Flag classifies a token.
type Flag uint8

const (
	Word Flag = 1 << iota
	Space
	Tab
	Punct
	Newline
)

// A Token is a word, a run of blanks, or a punctuation mark
// of a line. Two tokens are equal when their text is.
type Token struct {
	Text string
	Hash uint32
}

// A Span locates a token in its line.
type Span struct {
	Start, Len int
	Flags      Flag
}

// Line splits s into tokens following the Unicode word
// boundary rules, with the span of each token in s.
// Concatenating the tokens gives back s.
func Line(s string) ([]Token, []Span) {
	var toks []Token
	var spans []Span
	seg := words.FromString(s)
	start := 0
	for seg.Next() {
		text := seg.Value()
		toks = append(toks, Token{Text: text, Hash: Hash(text)})
		spans = append(spans, Span{Start: start, Len: len(text), Flags: classify(text)})
		start += len(text)
	}
	return toks, spans
}

// Hash is the 32-bit hash of a token.
func Hash(s string) uint32 {
	return uint32(xxhash.Sum64String(s))
}

// HashToken returns t.Hash. It suits diffy.Input.Hash.
func HashToken(t Token) uint32 {
	return t.Hash
}

func classify(s string) Flag {
	r, _ := utf8.DecodeRuneInString(s)
	switch {
	case r == '\t':
		return Tab
	case r == '\n' || r == '\r':
		return Newline
	case unicode.IsSpace(r):
		return Space
	case unicode.IsLetter(r) || unicode.IsDigit(r):
		return Word
	}
	return Punct
}
