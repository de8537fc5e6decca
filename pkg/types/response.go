package types

// APIError is the wire shape of a request failure. Details carries the
// per-field message map on validation errors and is omitted otherwise.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope wraps an APIError. Success responses are written as raw
// objects and never use an envelope.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
