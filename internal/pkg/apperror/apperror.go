package apperror

// AppError is a custom error type that includes an HTTP status code and a
// stable machine-readable error code alongside the user-facing message.
type AppError struct {
	Status  int    // HTTP Status Code (e.g., 400, 404)
	Code    string // Stable symbolic code (e.g., "BOOKING_NOT_FOUND")
	Message string // User-facing error message
	Err     error  // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a status, symbolic code and message.
func New(status int, code, message string) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, status int, code, message string) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithStatus returns a copy of the error carrying a different HTTP status.
// Some domain conflicts map to different statuses depending on the
// operation that surfaced them (a missing slot is 400 on booking creation
// but 404 on a date-changing update).
func (e *AppError) WithStatus(status int) *AppError {
	clone := *e
	clone.Status = status
	return &clone
}

// Is matches AppError values by symbolic code, so status-adjusted copies
// still compare equal to the original sentinel under errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
