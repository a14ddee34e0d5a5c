package data

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"fuelprice-validation/internal/model"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ExportRecord is the fuel and date tokens carried by one export line.
type ExportRecord struct {
	Key  model.ExportKey
	Fuel string
	Date string
}

// ParseExportLine extracts the fuel token (second segment of Item.PK.S)
// and date token (second segment of Item.SK.S) from one export line.
func ParseExportLine(line []byte) (ExportRecord, error) {
	item, err := DecodeItem(line)
	if err != nil {
		return ExportRecord{}, err
	}
	for _, name := range []string{"PK", "SK"} {
		if _, ok := item[name].(*types.AttributeValueMemberS); !ok {
			return ExportRecord{}, fmt.Errorf("%w: Item.%s.S", ErrMissingField, name)
		}
	}
	var key model.ExportKey
	if err := attributevalue.UnmarshalMap(item, &key); err != nil {
		return ExportRecord{}, fmt.Errorf("error unmarshalling export item: %w", err)
	}
	fuel, ok := key.FuelToken()
	if !ok {
		return ExportRecord{}, fmt.Errorf("%w: PK %q", ErrMalformedKey, key.PK)
	}
	date, ok := key.DateToken()
	if !ok {
		return ExportRecord{}, fmt.Errorf("%w: SK %q", ErrMalformedKey, key.SK)
	}
	return ExportRecord{Key: key, Fuel: fuel, Date: date}, nil
}

// ScanExport calls fn for every line of a newline-delimited export, in order.
// The first parse error stops the scan and is returned as a *LineError.
func ScanExport(r io.Reader, fn func(rec ExportRecord) error) (int, error) {
	br := bufio.NewReader(r)
	n := 0
	for {
		line, err := br.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return n, err
		}
		atEOF := err != nil
		if atEOF && len(line) == 0 {
			return n, nil
		}
		n++
		line = bytes.TrimRight(line, "\r\n")
		rec, perr := ParseExportLine(line)
		if perr != nil {
			return n, &LineError{Line: n, Err: perr}
		}
		if err := fn(rec); err != nil {
			return n, err
		}
		if atEOF {
			return n, nil
		}
	}
}
