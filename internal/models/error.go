package models

// APIError is the standard single-cause error body returned by the API.
type APIError struct {
	Message string `json:"message"`
}

// NewAPIError creates an API error body with the given message.
func NewAPIError(message string) APIError {
	return APIError{Message: message}
}
