package errors

import (
	"farmdesk/internal/errors"
)

// FromError extracts the AppError carried anywhere in err's chain.
func FromError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}

// Unwrap lets wrapped database errors participate in errors.Is checks.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
