package models

import "encoding/json"

// ForecastRequest is built once per call. A nil Days means the caller did
// not choose a horizon and the default applies.
type ForecastRequest struct {
	Query string `json:"query"`
	Days  *int   `json:"days,omitempty"`
}

// ForecastResponse is the provider payload, kept byte-for-byte.
type ForecastResponse = json.RawMessage

// Days returns a pointer to n, for building a ForecastRequest inline.
func Days(n int) *int {
	return &n
}
