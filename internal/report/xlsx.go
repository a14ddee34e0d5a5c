package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fuelprice-validation/internal/validation"

	"github.com/xuri/excelize/v2"
)

const (
	missingSheet = "Missing"
	summarySheet = "Summary"
)

// sheetWriter remembers the first cell write error, like csv.Writer.
type sheetWriter struct {
	f   *excelize.File
	err error
}

func (w *sheetWriter) set(sheet string, col, row int, v interface{}) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	if err := w.f.SetCellValue(sheet, cell, v); err != nil {
		w.err = fmt.Errorf("%s!%s: %w", sheet, cell, err)
	}
}

func (w *sheetWriter) header(sheet string, headers []string, style int) {
	for i, h := range headers {
		w.set(sheet, i+1, 1, h)
	}
	if w.err != nil {
		return
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		w.err = err
		return
	}
	if err := w.f.SetCellStyle(sheet, "A1", last, style); err != nil {
		w.err = fmt.Errorf("%s header style: %w", sheet, err)
	}
}

// Workbook lays a report out as two sheets: missing dates and per-fuel counts.
func Workbook(rep *validation.Report) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", missingSheet); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		f.Close()
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	w := &sheetWriter{f: f}
	w.header(missingSheet, []string{"Fuel type", "Label", "Date"}, headerStyle)
	for i, m := range rep.Misses {
		row := i + 2
		w.set(missingSheet, 1, row, string(m.FuelType))
		w.set(missingSheet, 2, row, m.FuelType.Label())
		w.set(missingSheet, 3, row, m.Date)
	}

	w.header(summarySheet, []string{"Fuel type", "Accepted", "Present", "Missing", "Stored"}, headerStyle)
	for i, s := range rep.Summary {
		row := i + 2
		w.set(summarySheet, 1, row, string(s.FuelType))
		w.set(summarySheet, 2, row, s.Accepted)
		w.set(summarySheet, 3, row, s.Present)
		w.set(summarySheet, 4, row, s.Missing)
		w.set(summarySheet, 5, row, s.Stored)
	}
	footer := len(rep.Summary) + 3
	w.set(summarySheet, 1, footer, "Export lines")
	w.set(summarySheet, 2, footer, rep.ExportLines)
	w.set(summarySheet, 1, footer+1, "Ignored lines")
	w.set(summarySheet, 2, footer+1, rep.Ignored)

	if w.err != nil {
		f.Close()
		return nil, w.err
	}
	return f, nil
}

func WriteXLSX(w io.Writer, rep *validation.Report) error {
	f, err := Workbook(rep)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

func WriteXLSXFile(path string, rep *validation.Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := Workbook(rep)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}
