package models

import (
	"time"

	"fuelprice-validation/internal/validation"
)

// ValidationResponse represents one validation run
type ValidationResponse struct {
	ID        string                   `json:"id"`
	Dataset   string                   `json:"dataset"`
	CreatedAt time.Time                `json:"created_at"`
	Summary   []validation.FuelSummary `json:"summary"`
	Misses    []validation.Miss        `json:"misses"`

	// Lines are the console report lines, in report order.
	Lines       []string `json:"lines"`
	ExportLines int      `json:"export_lines"`
	Ignored     int      `json:"ignored_lines"`
}

// FuelTypeInfo describes a known fuel type
type FuelTypeInfo struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	OkItemNumber int    `json:"ok_item_number"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
