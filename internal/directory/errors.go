package directory

import "fmt"

// User-facing messages for the directory error taxonomy. The UI renders
// these verbatim, so the wording is load-bearing.
const (
	MsgRateLimited     = "Rate limit exceeded. Please try again later."
	MsgAPIError        = "Failed to fetch charging stations. Please try again."
	MsgStationNotFound = "Charging station not found."
)

// APIError represents a failure talking to the station directory.
type APIError struct {
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("directory API error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("directory API error: %s", e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates a new directory API error.
func NewAPIError(message string, err error) *APIError {
	return &APIError{
		Message: message,
		Err:     err,
	}
}

// RateLimitError is returned when the directory answers HTTP 429.
type RateLimitError struct{}

func (RateLimitError) Error() string {
	return MsgRateLimited
}

// NotFoundError is returned when a station lookup matches nothing.
type NotFoundError struct {
	ID int
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s (id %d)", MsgStationNotFound, e.ID)
}
