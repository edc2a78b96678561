package models

// MessageResponse is the generic success/failure envelope returned by
// endpoints that have no payload beyond a human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorsResponse carries the field-level messages produced when a
// request body fails validation.
type ValidationErrorsResponse struct {
	Errors []string `json:"errors"`
}

// LoginResponse is returned by a successful login and carries the issued
// bearer token.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// MedicationResponse wraps a single medication record together with a
// status message, returned by the register and update endpoints.
type MedicationResponse struct {
	Message    string     `json:"message"`
	Medication Medication `json:"medication"`
}
