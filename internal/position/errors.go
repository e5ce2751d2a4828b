package position

import "fmt"

// ErrorCode categorizes position failures. The UI picks copy by code, so
// both the codes and the messages below must stay stable.
type ErrorCode string

const (
	ErrorDenied      ErrorCode = "permission_denied"
	ErrorUnavailable ErrorCode = "position_unavailable"
	ErrorTimeout     ErrorCode = "timeout"
	ErrorGeneric     ErrorCode = "unknown"
)

const (
	MsgDenied      = "Location access denied. Please enable location services."
	MsgUnavailable = "Location information is unavailable."
	MsgTimeout     = "Location request timed out."
	MsgGeneric     = "An error occurred while retrieving your location."
)

// Error is a categorized position failure.
type Error struct {
	Code ErrorCode
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message(), e.Err)
	}
	return e.Message()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message returns the user-facing copy for the error's category.
func (e *Error) Message() string {
	switch e.Code {
	case ErrorDenied:
		return MsgDenied
	case ErrorUnavailable:
		return MsgUnavailable
	case ErrorTimeout:
		return MsgTimeout
	}
	return MsgGeneric
}

// NewError creates a categorized position error.
func NewError(code ErrorCode, err error) *Error {
	return &Error{Code: code, Err: err}
}
