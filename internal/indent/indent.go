// Package indent prefixes every line written through it.
package indent

import (
	"bytes"
	"io"
	"strings"
)

// A Writer writes its prefix at the start of each non-empty line.
// Empty lines are left alone so the output has no trailing blanks.
type Writer struct {
	w      io.Writer
	prefix string
	bol    bool
	lines  int
}

func New(w io.Writer, prefix string) *Writer {
	return &Writer{
		w:      w,
		prefix: prefix,
		bol:    true,
	}
}

// Lines returns the number of complete lines written so far.
func (w *Writer) Lines() int {
	return w.lines
}

func (w *Writer) Write(p []byte) (written int, err error) {
	for len(p) > 0 {
		if w.bol && p[0] != '\n' {
			if _, err := io.WriteString(w.w, w.prefix); err != nil {
				return written, err
			}
		}
		w.bol = false
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			n, err := w.w.Write(p)
			written += n
			return written, err
		}
		n, err := w.w.Write(p[:i+1])
		written += n
		if err != nil {
			return written, err
		}
		p = p[i+1:]
		w.bol = true
		w.lines++
	}
	return written, nil
}

// String returns s with every non-empty line prefixed.
func String(prefix, s string) string {
	var b strings.Builder
	New(&b, prefix).Write([]byte(s))
	return b.String()
}
