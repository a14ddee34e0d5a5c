package model

import "strings"

// KeySeparator joins the segments of partition and sort keys, e.g. "FUELPRICE#Diesel".
const KeySeparator = "#"

// ExportKey is the primary key of one item in a DynamoDB table export.
type ExportKey struct {
	PK string `dynamodbav:"PK"`
	SK string `dynamodbav:"SK"`
}

// FuelToken returns the second segment of PK.
func (k ExportKey) FuelToken() (string, bool) {
	return secondSegment(k.PK)
}

// DateToken returns the second segment of SK.
func (k ExportKey) DateToken() (string, bool) {
	return secondSegment(k.SK)
}

func secondSegment(s string) (string, bool) {
	parts := strings.Split(s, KeySeparator)
	if len(parts) < 2 {
		return "", false
	}
	return parts[1], true
}
