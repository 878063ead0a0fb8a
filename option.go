package diffy

import (
	"log"
)

// An emitMode selects what Each produces.
type emitMode int

const (
	unified emitMode = iota
	words
	dump
	columns
)

// Option values can be passed to Each, Log, and Test to control
// how texts are compared and how the differences are printed.
// Options are applied in order from left to right;
// later options win where there is a conflict.
type Option struct{ apply func(*config) }

// OptionList combines multiple options into one.
// The arguments will be applied in order from left to right.
func OptionList(opt ...Option) Option {
	return Option{func(c *config) {
		for _, o := range opt {
			o.apply(c)
		}
	}}
}

var (
	// Default holds the options Diff, Each, Log, and Test start from.
	// Changing it does not change their behavior.
	Default Option = OptionList(
		UseAlgorithm(DefaultAlgorithm),
		Context(3),
		Names("a", "b"),
		EmitUnified,
		Logger(log.Default()),
	)
	defaultOpt = Default
)

var (
	// EmitUnified prints the differences as a unified diff.
	EmitUnified Option = emit(unified, LineGranularity)

	// EmitWords prints the changed lines with the tokens
	// that differ marked inline.
	EmitWords Option = emit(words, TokenGranularity)

	// EmitWordLines is like EmitWords but marks
	// every token of a changed line.
	EmitWordLines Option = emit(words, LineGranularity)

	// EmitDump lists every edit, including unchanged lines,
	// with the positions it joins.
	EmitDump Option = emit(dump, LineGranularity)
)

// EmitColumns prints the two texts side by side in rows
// at most width terminal cells wide, with the blanks
// of changed tokens drawn.
func EmitColumns(width int) Option {
	return OptionList(emit(columns, TokenGranularity), columnWidth(width))
}

// EmitColumnLines is like EmitColumns but draws the blanks
// of every changed line.
func EmitColumnLines(width int) Option {
	return OptionList(emit(columns, LineGranularity), columnWidth(width))
}

func columnWidth(n int) Option {
	return Option{func(c *config) {
		c.width = n
	}}
}

func emit(m emitMode, g Granularity) Option {
	return Option{func(c *config) {
		c.mode = m
		c.granularity = g
	}}
}

// UseAlgorithm selects the diff algorithm.
func UseAlgorithm(alg Algorithm) Option {
	return Option{func(c *config) {
		c.alg = alg
	}}
}

// Context sets the number of unchanged lines
// shown around each change. Negative n means 0.
func Context(n int) Option {
	return Option{func(c *config) {
		c.context = max(n, 0)
	}}
}

// Names sets the labels of the two texts in the diff header.
func Names(a, b string) Option {
	return Option{func(c *config) {
		c.aName, c.bName = a, b
	}}
}

// IgnoreWhitespace treats lines that differ only in spaces,
// tabs, and carriage returns as unchanged.
func IgnoreWhitespace(b bool) Option {
	return Option{func(c *config) {
		c.ignoreWS = b
	}}
}

// IgnoreLineEndings treats "\r\n" as "\n".
func IgnoreLineEndings(b bool) Option {
	return Option{func(c *config) {
		c.ignoreEOL = b
	}}
}

// Outputter accepts log output.
// It is satisfied by *log.Logger.
type Outputter interface {
	Output(calldepth int, s string) error
}

// Logger sets the output for Log to the given object.
// It has no effect on Each or Test.
func Logger(out Outputter) Option {
	return Option{func(c *config) {
		c.output = out
	}}
}
