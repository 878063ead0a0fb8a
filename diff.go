package diffy

import (
	"context"
	"fmt"

	"kr.dev/diffy/internal/indent"
)

type config struct {
	alg          Algorithm
	context      int
	aName, bName string

	// ignoreWS merges whitespace-only changes after the diff.
	// The algorithms never see it.
	ignoreWS  bool
	ignoreEOL bool

	mode        emitMode
	granularity Granularity
	width       int // of a row, for columns

	output Outputter
}

func newConfig(opt ...Option) *config {
	c := new(config)
	OptionList(defaultOpt, OptionList(opt...)).apply(c)
	return c
}

// Diff compares the lines of texts a and b and returns the
// differences in the format chosen by the Emit options,
// and whether there are any. With EmitDump the listing is
// returned even when the texts are equal.
//
// An error is returned if the algorithm fails.
func Diff(ctx context.Context, a, b string, opt ...Option) (string, bool, error) {
	return newConfig(opt...).diff(ctx, a, b)
}

func (c *config) diff(ctx context.Context, a, b string) (string, bool, error) {
	if c.ignoreEOL {
		a, b = normalizeLineEndings(a), normalizeLineEndings(b)
	}
	in := Lines(c.aName, a, c.bName, b)
	r := Compute(c.alg, in)
	if r.Status == Failed {
		return "", false, fmt.Errorf("%v: %w", c.alg, ErrDiffFailed)
	}
	if c.ignoreWS {
		r = MergeWhitespace(r, in.A, in.B)
	}
	changed := r.Status == OK && len(r.Edits) > 0

	if c.mode == dump {
		return fmt.Sprint(Dump(in, r)), changed, nil
	}
	if !changed {
		return "", false, nil
	}
	hunks := ComposeHunks(r.Edits, c.context)
	switch c.mode {
	case unified:
		return fmt.Sprint(Unified(in, hunks)), true, nil
	case words:
		ah, err := Annotate(ctx, in, hunks, c.granularity)
		if err != nil {
			return "", true, err
		}
		return fmt.Sprint(Words(in, ah, c.ignoreWS)), true, nil
	case columns:
		ah, err := Annotate(ctx, in, hunks, c.granularity)
		if err != nil {
			return "", true, err
		}
		return fmt.Sprint(Columns(in, ah, c.width)), true, nil
	}
	panic("diffy: bad emit mode")
}

// Each compares texts a and b line by line, calling f with the
// differences if it finds any. By default f gets a unified diff.
//
// The behavior can be adjusted by supplying Option values.
// See Default for a complete list of default options.
// Values in opt apply in addition to (and override) the defaults.
func Each(f func(format string, arg ...any), a, b string, opt ...Option) {
	out, changed, err := newConfig(opt...).diff(context.Background(), a, b)
	switch {
	case err != nil:
		f("diffy: %v", err)
	case changed:
		f("%s", out)
	}
}

// Log compares texts a and b and writes the differences,
// if any, to the output set by the Logger option.
func Log(a, b string, opt ...Option) {
	c := newConfig(opt...)
	out, changed, err := c.diff(context.Background(), a, b)
	switch {
	case err != nil:
		c.output.Output(2, "diffy: "+err.Error())
	case changed:
		c.output.Output(2, out)
	}
}

// Test compares texts got and want and, if they differ,
// reports a unified diff through f, typically t.Errorf or t.Fatalf.
// The two sides are labeled "got" and "want".
func Test(h interface{ Helper() }, f func(format string, arg ...any), got, want string, opt ...Option) {
	h.Helper()
	c := newConfig(Names("got", "want"), OptionList(opt...))
	out, changed, err := c.diff(context.Background(), got, want)
	switch {
	case err != nil:
		f("diffy: %v", err)
	case changed:
		f("texts differ:\n%s", indent.String("\t", out))
	}
}
