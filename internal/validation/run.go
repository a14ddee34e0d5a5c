package validation

import (
	"context"
	"fmt"

	"fuelprice-validation/internal/data"
	"fuelprice-validation/internal/model"
)

// Inputs names the files of one dataset.
type Inputs struct {
	OkFiles map[model.FuelType]string
	Export  string
}

// Run loads the accepted dates of every fuel type, indexes the export and
// validates. Any read or parse failure aborts the run with no report.
func Run(ctx context.Context, src data.Source, in Inputs) (*Report, error) {
	accepted := AcceptedDates{}
	for _, ft := range model.FuelTypes {
		path, ok := in.OkFiles[ft]
		if !ok || path == "" {
			return nil, fmt.Errorf("no ok file configured for %s", ft)
		}
		dates, err := data.LoadOkDates(ctx, src, path)
		if err != nil {
			return nil, err
		}
		accepted[ft] = dates
	}

	rc, err := src.Open(ctx, in.Export)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	idx, err := BuildIndex(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", in.Export, err)
	}
	return Validate(accepted, idx), nil
}
