package models

// ErrorResponse is the JSON body written for failed API calls.
type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
}
