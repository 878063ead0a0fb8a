package diffy

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	columnSeparator = " │ "
	minCellWidth    = 5
)

var (
	// Changed blanks are drawn; unchanged ones are spaced out.
	// A bare "\n" is never drawn.
	changedBlanks = strings.NewReplacer("\r\n", "↵", "\r", "←", "\n", "", " ", "·", "\t", "→   ")
	commonBlanks  = strings.NewReplacer("\r\n", "", "\r", "", "\n", "", "\t", "    ")
)

// Columns returns a formatter that writes annotated hunks side by
// side, A on the left and B on the right, in rows at most width
// terminal cells wide. Each line is prefixed by its line number and
// a mark: "-" deleted, "+" inserted, blank unchanged. Deleted and
// inserted lines share rows; long lines wrap. Blanks in changed
// segments are drawn as "·" and "→", so the granularity of the
// annotation decides which of them show.
func Columns(in Input[string], hunks []AnnotatedHunk, width int) fmt.Formatter {
	return &columnFormatter{in: in, hunks: hunks, width: width}
}

type columnFormatter struct {
	in    Input[string]
	hunks []AnnotatedHunk
	width int

	digits int
	cell   int
}

// A cellLine is one side of a row pair; nil means an empty cell.
type cellLine struct {
	number int // 1-based
	mark   string
	text   string
}

func (cf *columnFormatter) layout() {
	maxLine := 0
	if n := len(cf.hunks); n > 0 {
		last := cf.hunks[n-1]
		maxLine = max(last.FromStart+last.FromCount, last.ToStart+last.ToCount)
	}
	cf.digits = len(strconv.Itoa(maxLine))
	extra := 2*(cf.digits+2) + runewidth.StringWidth(columnSeparator)
	cf.cell = max((cf.width-extra)/2, minCellWidth)
}

func (cf *columnFormatter) Format(f fmt.State, verb rune) {
	cf.layout()
	cf.writeRow(f, -1, " ", cf.shorten(cf.in.AName), -1, " ", cf.shorten(cf.in.BName))
	for i, h := range cf.hunks {
		if i > 0 {
			cf.writeRow(f, -1, " ", "", -1, " ", "")
		}
		for _, p := range cf.pairLines(h) {
			cf.writePair(f, p[0], p[1])
		}
	}
}

// shorten cuts the front of a name that does not fit a cell.
func (cf *columnFormatter) shorten(name string) string {
	if runewidth.StringWidth(name) <= cf.cell {
		return name
	}
	rs := []rune(name)
	for len(rs) > 0 && runewidth.StringWidth(string(rs))+3 > cf.cell {
		rs = rs[1:]
	}
	return "..." + string(rs)
}

func (cf *columnFormatter) writePair(w io.Writer, a, b *cellLine) {
	var as, bs []string
	if a != nil {
		as = wrapCells(a.text, cf.cell)
	}
	if b != nil {
		bs = wrapCells(b.text, cf.cell)
	}
	for i := 0; i < max(len(as), len(bs)); i++ {
		an, am, at := sideAt(a, as, i)
		bn, bm, bt := sideAt(b, bs, i)
		cf.writeRow(w, an, am, at, bn, bm, bt)
	}
}

// sideAt returns the number, mark and text of row i of a wrapped line.
// Only the first row carries the number.
func sideAt(l *cellLine, rows []string, i int) (int, string, string) {
	if i >= len(rows) {
		return -1, " ", ""
	}
	n := l.number
	if i > 0 {
		n = -1
	}
	return n, l.mark, rows[i]
}

func (cf *columnFormatter) writeRow(w io.Writer, an int, am, at string, bn int, bm, bt string) {
	var b strings.Builder
	b.WriteString(cf.number(an))
	b.WriteString(" ")
	b.WriteString(am)
	b.WriteString(runewidth.FillRight(at, cf.cell))
	b.WriteString(columnSeparator)
	b.WriteString(cf.number(bn))
	b.WriteString(" ")
	b.WriteString(bm)
	b.WriteString(bt)
	io.WriteString(w, strings.TrimRight(b.String(), " "))
	io.WriteString(w, "\n")
}

func (cf *columnFormatter) number(n int) string {
	if n < 0 {
		return strings.Repeat(" ", cf.digits)
	}
	return fmt.Sprintf("%-*d", cf.digits, n)
}

// wrapCells splits s into rows of at most w cells.
// An empty s is one empty row.
func wrapCells(s string, w int) []string {
	var rows []string
	var cur strings.Builder
	n := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if n+rw > w && n > 0 {
			rows = append(rows, cur.String())
			cur.Reset()
			n = 0
		}
		cur.WriteRune(r)
		n += rw
	}
	return append(rows, cur.String())
}

// pairLines lines up the A and B lines of h. Common lines pair
// with each other; within a change, deleted lines pair with
// inserted lines in order and the longer side pairs with nothing.
func (cf *columnFormatter) pairLines(h AnnotatedHunk) [][2]*cellLine {
	var pairs [][2]*cellLine
	var dels, inss []*cellLine
	flush := func() {
		for i := 0; i < max(len(dels), len(inss)); i++ {
			var p [2]*cellLine
			if i < len(dels) {
				p[0] = dels[i]
			}
			if i < len(inss) {
				p[1] = inss[i]
			}
			pairs = append(pairs, p)
		}
		dels, inss = dels[:0], inss[:0]
	}
	var ai, bi int
	for _, e := range h.Edits {
		switch e.Type {
		case Common:
			flush()
			pairs = append(pairs, [2]*cellLine{
				newCellLine(cf.in.A, h.A[ai], " "),
				newCellLine(cf.in.B, h.B[bi], " "),
			})
			ai++
			bi++
		case Delete:
			dels = append(dels, newCellLine(cf.in.A, h.A[ai], "-"))
			ai++
		case Insert:
			inss = append(inss, newCellLine(cf.in.B, h.B[bi], "+"))
			bi++
		}
	}
	flush()
	return pairs
}

func newCellLine(lines []string, al AnnotatedLine, mark string) *cellLine {
	line := lines[al.Index.Value]
	var b strings.Builder
	for _, s := range al.Segments {
		text := line[s.Start : s.Start+s.Len]
		if s.Type == Common {
			commonBlanks.WriteString(&b, text)
		} else {
			changedBlanks.WriteString(&b, text)
		}
	}
	return &cellLine{number: al.Index.Value + 1, mark: mark, text: b.String()}
}
