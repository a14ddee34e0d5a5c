package report

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"fuelprice-validation/internal/validation"
)

func WriteCSVFile(path string, rep *validation.Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteCSV(f, rep)
}

// WriteCSV writes one row per missing date.
func WriteCSV(out io.Writer, rep *validation.Report) error {
	w := csv.NewWriter(out)

	header := []string{
		"fuel_type",
		"label",
		"date",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, m := range rep.Misses {
		row := []string{
			string(m.FuelType),
			m.FuelType.Label(),
			m.Date,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
