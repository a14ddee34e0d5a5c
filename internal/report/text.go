package report

import (
	"bufio"
	"io"

	"fuelprice-validation/internal/validation"
)

// WriteText writes the console report: one line per missing date.
func WriteText(w io.Writer, rep *validation.Report) error {
	bw := bufio.NewWriter(w)
	for _, line := range rep.Lines() {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
