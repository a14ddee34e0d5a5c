package models

// ValidationRequest is the body of POST /api/v1/validations. An empty body
// validates the configured dataset.
type ValidationRequest struct {
	// Dataset is a directory name under the datasets root, e.g. "2022-04-30".
	Dataset string `json:"dataset,omitempty"`
}
