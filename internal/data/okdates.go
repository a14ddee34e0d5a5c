package data

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"fuelprice-validation/internal/model"
)

// LoadOkDates opens an ok.dk price history file through src and returns the
// "dato" of every "historik" entry, in file order.
func LoadOkDates(ctx context.Context, src Source, path string) ([]string, error) {
	rc, err := src.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	dates, err := ReadOkDates(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return dates, nil
}

// ReadOkDates is LoadOkDates over an already opened document.
func ReadOkDates(r io.Reader) ([]string, error) {
	prices, err := ReadOkPrices(r)
	if err != nil {
		return nil, err
	}
	dates := make([]string, len(prices))
	for i, p := range prices {
		dates[i] = p.Date
	}
	return dates, nil
}

// ReadOkPrices decodes the "historik" list. Keys are matched exactly:
// "historik" and every entry's "dato" are required, "pris" is optional.
func ReadOkPrices(r io.Reader) ([]model.OkPrice, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(raw) {
		return nil, ErrInvalidUTF8
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("could not unmarshal json: %w", err)
	}
	history, ok := lookup(doc, "historik")
	if !ok {
		return nil, fmt.Errorf("%w: historik", ErrMissingField)
	}
	var entries []map[string]json.RawMessage
	if err := json.Unmarshal(history, &entries); err != nil {
		return nil, fmt.Errorf("could not unmarshal historik: %w", err)
	}

	prices := make([]model.OkPrice, 0, len(entries))
	for i, e := range entries {
		dato, ok := lookup(e, "dato")
		if !ok {
			return nil, fmt.Errorf("%w: historik[%d].dato", ErrMissingField, i)
		}
		var p model.OkPrice
		if err := json.Unmarshal(dato, &p.Date); err != nil {
			return nil, fmt.Errorf("historik[%d].dato: %w", i, err)
		}
		if pris, ok := lookup(e, "pris"); ok {
			if err := json.Unmarshal(pris, &p.Price); err != nil {
				return nil, fmt.Errorf("historik[%d].pris: %w", i, err)
			}
		}
		prices = append(prices, p)
	}
	return prices, nil
}

// lookup is an exact-key map read that treats a JSON null as absent.
func lookup(m map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	v, ok := m[key]
	if !ok || string(v) == "null" {
		return nil, false
	}
	return v, true
}
