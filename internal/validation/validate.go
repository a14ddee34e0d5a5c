package validation

import (
	"fmt"

	"fuelprice-validation/internal/model"
)

// AcceptedDates maps each fuel type to its accepted dates in file order.
type AcceptedDates map[model.FuelType][]string

// Miss is an accepted date with no matching export item.
type Miss struct {
	FuelType model.FuelType `json:"fuel_type"`
	Date     string         `json:"date"`
}

// String renders the console report line.
func (m Miss) String() string {
	return fmt.Sprintf("%s ok date %s not found in ddb", m.FuelType.Label(), m.Date)
}

type FuelSummary struct {
	FuelType model.FuelType `json:"fuel_type"`
	Accepted int            `json:"accepted"`
	Present  int            `json:"present"`
	Missing  int            `json:"missing"`

	// Stored is the number of distinct dates in the export for this fuel type.
	Stored int `json:"stored"`
}

type Report struct {
	Misses      []Miss        `json:"misses"`
	Summary     []FuelSummary `json:"summary"`
	ExportLines int           `json:"export_lines"`
	Ignored     int           `json:"ignored_lines"`
}

// Validate checks every accepted date against the export index. Misses are
// ordered by fuel type (Unleaded95, Diesel, Octane100), then by input order.
// A date listed twice and missing is reported twice.
func Validate(accepted AcceptedDates, idx *Index) *Report {
	if idx == nil {
		idx = NewIndex()
	}
	rep := &Report{
		Misses:      []Miss{},
		Summary:     make([]FuelSummary, 0, len(model.FuelTypes)),
		ExportLines: idx.Lines,
		Ignored:     idx.Ignored,
	}
	for _, ft := range model.FuelTypes {
		set := idx.Sets[ft]
		sum := FuelSummary{FuelType: ft, Stored: len(set)}
		for _, date := range accepted[ft] {
			sum.Accepted++
			if set.Has(date) {
				sum.Present++
				continue
			}
			sum.Missing++
			rep.Misses = append(rep.Misses, Miss{FuelType: ft, Date: date})
		}
		rep.Summary = append(rep.Summary, sum)
	}
	return rep
}

// Lines returns the console report, one line per miss.
func (r *Report) Lines() []string {
	out := make([]string, len(r.Misses))
	for i, m := range r.Misses {
		out[i] = m.String()
	}
	return out
}

func (r *Report) MissingCount() int { return len(r.Misses) }
