package diffy

import (
	"fmt"
	"strings"
)

// Dump returns a formatter that lists every edit of r, one per line:
// the operation, the index in A, the index in B, and the line.
// Missing indexes print as "_".
func Dump(in Input[string], r Result) fmt.Formatter {
	return &dumpFormatter{in, r}
}

type dumpFormatter struct {
	in Input[string]
	r  Result
}

func (df *dumpFormatter) Format(f fmt.State, verb rune) {
	for _, e := range df.r.Edits {
		var text string
		switch {
		case e.Type == Insert && e.B.Valid:
			text = df.in.B[e.B.Value]
		case e.A.Valid:
			text = df.in.A[e.A.Value]
		}
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		fmt.Fprintf(f, "%-2s %4v\t%4v\t%s", opString(e.Type), e.A, e.B, text)
	}
}

func opString(t EditType) string {
	switch t {
	case Delete:
		return "-"
	case Insert:
		return "+"
	case Meta:
		return "!"
	}
	return ""
}
