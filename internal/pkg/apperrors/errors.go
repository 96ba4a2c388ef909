package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors. Credential failures are deliberately a single
	// error: callers must not be able to tell an unknown username from a
	// wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Infrastructure errors. ErrStorageUnavailable marks connection and
	// timeout failures from the database; it is logged once at the
	// repository boundary and propagated, never swallowed into an empty
	// result.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Entity errors
var (
	ErrStudentNotFound        = errors.New("student not found")
	ErrStudentIDAlreadyExists = errors.New("student ID already exists")

	ErrCourseNotFound      = errors.New("course not found")
	ErrCourseAlreadyExists = errors.New("course with this code already exists")
	ErrCourseFull          = errors.New("course roster is at capacity")

	ErrDepartmentNotFound      = errors.New("department not found")
	ErrDepartmentAlreadyExists = errors.New("department with this code already exists")

	ErrFacultyNotFound      = errors.New("faculty member not found")
	ErrFacultyAlreadyExists = errors.New("faculty member with this id or email already exists")

	ErrAdminNotFound      = errors.New("admin not found")
	ErrAdminAlreadyExists = errors.New("admin with this username or email already exists")

	ErrFeedbackNotFound = errors.New("feedback not found")
)

// NewResourceNotFoundError creates a custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewStorageError wraps an infrastructure failure so callers can match it
// with errors.Is(err, ErrStorageUnavailable) while keeping the cause.
func NewStorageError(cause error) error {
	return &CustomError{
		Err:     ErrStorageUnavailable,
		Message: "storage unavailable: " + cause.Error(),
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
