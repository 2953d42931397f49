package errors

// ErrorInfo is the error half of the response envelope.
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g. "LISTING_NOT_FOUND"
	Message string `json:"message"`           // User-facing message
	Details any    `json:"details,omitempty"` // Extra context (optional)
}
