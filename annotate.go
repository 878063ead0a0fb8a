package diffy

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"kr.dev/diffy/internal/tokenize"
)

// ErrDiffFailed is returned when an algorithm reports Failed.
var ErrDiffFailed = errors.New("diffy: diff failed")

// Granularity selects how finely Annotate marks changes.
type Granularity int

const (
	// LineGranularity marks every token of a changed line as changed.
	LineGranularity Granularity = iota

	// TokenGranularity diffs the tokens of the changed lines
	// and marks only the tokens that differ.
	TokenGranularity
)

func (g Granularity) String() string {
	switch g {
	case LineGranularity:
		return "line"
	case TokenGranularity:
		return "token"
	}
	return fmt.Sprintf("Granularity(%d)", int(g))
}

// A Segment is a byte range of a line with the edit it belongs to.
type Segment struct {
	Start, Len int
	Type       EditType
	Blank      bool // only spaces or tabs
}

// An AnnotatedLine is one line of a hunk, split into segments.
type AnnotatedLine struct {
	Type     EditType
	Index    Index // of the line in its sequence
	Segments []Segment
}

// An AnnotatedHunk holds the lines a hunk shows from A and from B.
type AnnotatedHunk struct {
	Hunk
	A, B []AnnotatedLine
}

// Annotate splits the lines of each hunk into segments.
// With TokenGranularity the tokens of each hunk are diffed with
// Patience; hunks are processed concurrently.
// A token diff that fails makes Annotate return ErrDiffFailed.
func Annotate(ctx context.Context, in Input[string], hunks []Hunk, g Granularity) ([]AnnotatedHunk, error) {
	out := make([]AnnotatedHunk, len(hunks))
	switch g {
	case LineGranularity:
		for i, h := range hunks {
			out[i] = annotateLines(in, h)
		}
		return out, nil
	case TokenGranularity:
	default:
		return nil, fmt.Errorf("diffy: unknown granularity %v", g)
	}

	eg, ctx := errgroup.WithContext(ctx)
	for i, h := range hunks {
		i, h := i, h
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ah, err := annotateTokens(in, h)
			if err != nil {
				return fmt.Errorf("hunk %v: %w", h, err)
			}
			out[i] = ah
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func annotateLines(in Input[string], h Hunk) AnnotatedHunk {
	ah := AnnotatedHunk{Hunk: h}
	for _, e := range h.Edits {
		if e.A.Valid {
			ah.A = append(ah.A, wholeLine(e.Type, e.A, in.A[e.A.Value]))
		}
		if e.B.Valid {
			ah.B = append(ah.B, wholeLine(e.Type, e.B, in.B[e.B.Value]))
		}
	}
	return ah
}

func wholeLine(t EditType, i Index, line string) AnnotatedLine {
	l := AnnotatedLine{Type: t, Index: i}
	_, spans := tokenize.Line(line)
	for _, sp := range spans {
		l.Segments = append(l.Segments, segment(sp, t))
	}
	return l
}

func segment(sp tokenize.Span, t EditType) Segment {
	return Segment{
		Start: sp.Start,
		Len:   sp.Len,
		Type:  t,
		Blank: sp.Flags&(tokenize.Space|tokenize.Tab) != 0,
	}
}

// tokenSide collects the tokens of one side of a hunk
// along with the hunk line each token came from.
type tokenSide struct {
	toks  []tokenize.Token
	spans []tokenize.Span
	line  []int
}

func (s *tokenSide) add(line int, text string) {
	toks, spans := tokenize.Line(text)
	s.toks = append(s.toks, toks...)
	s.spans = append(s.spans, spans...)
	for range toks {
		s.line = append(s.line, line)
	}
}

func annotateTokens(in Input[string], h Hunk) (AnnotatedHunk, error) {
	ah := AnnotatedHunk{Hunk: h}

	// Leading and trailing context is not diffed.
	head, tail := -1, -1
	for i, e := range h.Edits {
		if e.Type != Common {
			if head < 0 {
				head = i
			}
			tail = i
		}
	}

	var a, b tokenSide
	for i, e := range h.Edits {
		inner := head <= i && i <= tail
		if e.A.Valid {
			line := in.A[e.A.Value]
			if inner {
				a.add(len(ah.A), line)
				ah.A = append(ah.A, AnnotatedLine{Type: e.Type, Index: e.A})
			} else {
				ah.A = append(ah.A, wholeLine(e.Type, e.A, line))
			}
		}
		if e.B.Valid {
			line := in.B[e.B.Value]
			if inner {
				b.add(len(ah.B), line)
				ah.B = append(ah.B, AnnotatedLine{Type: e.Type, Index: e.B})
			} else {
				ah.B = append(ah.B, wholeLine(e.Type, e.B, line))
			}
		}
	}

	r := Compute(Patience, Input[tokenize.Token]{A: a.toks, B: b.toks, Hash: tokenize.HashToken})
	if r.Status == Failed {
		return AnnotatedHunk{}, ErrDiffFailed
	}
	for _, e := range r.Edits {
		t := tokenEditType(e)
		if e.A.Valid {
			j := e.A.Value
			l := &ah.A[a.line[j]]
			l.Segments = append(l.Segments, segment(a.spans[j], t))
		}
		if e.B.Valid {
			j := e.B.Value
			l := &ah.B[b.line[j]]
			l.Segments = append(l.Segments, segment(b.spans[j], t))
		}
	}
	return ah, nil
}

// tokenEditType derives the type from which sides e touches,
// so a Meta edit never reaches a segment.
func tokenEditType(e Edit) EditType {
	switch {
	case e.A.Valid && !e.B.Valid:
		return Delete
	case !e.A.Valid && e.B.Valid:
		return Insert
	}
	return Common
}
