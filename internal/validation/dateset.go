package validation

import (
	"io"

	"fuelprice-validation/internal/data"
	"fuelprice-validation/internal/model"
)

// DateSet holds the unique dates stored for one fuel type.
type DateSet map[string]struct{}

func (s DateSet) Add(date string) { s[date] = struct{}{} }

func (s DateSet) Has(date string) bool {
	_, ok := s[date]
	return ok
}

// Index is the per-fuel view of a table export.
type Index struct {
	Sets map[model.FuelType]DateSet

	// Lines is the number of export lines read.
	Lines int

	// Ignored counts lines whose fuel token is not a known fuel type.
	Ignored int
}

func NewIndex() *Index {
	idx := &Index{Sets: make(map[model.FuelType]DateSet, len(model.FuelTypes))}
	for _, ft := range model.FuelTypes {
		idx.Sets[ft] = DateSet{}
	}
	return idx
}

// Add records one export record. Unknown fuel tokens are counted and dropped.
func (idx *Index) Add(rec data.ExportRecord) {
	idx.Lines++
	ft, ok := model.ParseFuelType(rec.Fuel)
	if !ok {
		idx.Ignored++
		return
	}
	idx.Sets[ft].Add(rec.Date)
}

// BuildIndex reads a whole export. Nothing is returned unless every line parses.
func BuildIndex(r io.Reader) (*Index, error) {
	idx := NewIndex()
	_, err := data.ScanExport(r, func(rec data.ExportRecord) error {
		idx.Add(rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return idx, nil
}
