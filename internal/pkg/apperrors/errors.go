package apperrors

import "errors"

// Common errors
var (
	// Caller input errors
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrValidationFailed = errors.New("validation failed")

	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrDuplicate        = errors.New("resource already exists")
	ErrHasDependents    = errors.New("resource is referenced by other records")
)

// NewInvalidArgumentError creates a new custom error for malformed or missing caller input
func NewInvalidArgumentError(message string) error {
	return &CustomError{
		Err:     ErrInvalidArgument,
		Message: message,
	}
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewValidationError creates a validation error. Details usually carries the field violations.
func NewValidationError(message string, details map[string]interface{}) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Details: details,
	}
}

// NewDuplicateError creates an error naming the natural key values that already exist
func NewDuplicateError(message string, conflict map[string]interface{}) error {
	return &CustomError{
		Err:     ErrDuplicate,
		Message: message,
		Details: conflict,
	}
}

// NewHasDependentsError creates an error for a delete rejected by the referential policy
func NewHasDependentsError(message string) error {
	return &CustomError{
		Err:     ErrHasDependents,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithField names the input field the error is about
func (e *CustomError) WithField(field string) *CustomError {
	e.Field = field
	return e
}

// AsCustomError extracts the CustomError from an error chain, if any
func AsCustomError(err error) (*CustomError, bool) {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
