package token

import (
	"fmt"
	"io"
)

func PrintLines(w io.Writer, lines []*Line, msg string) {
	fmt.Fprintf(w, "%s lines:\n", msg)
	for _, ln := range lines {
		fmt.Fprintf(w, "\t%s\n", ln)
	}
}
