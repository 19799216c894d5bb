package apperror

import "fmt"

const (
	CodeInvalidInput    = "INVALID_INPUT"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodePaymentRejected = "PAYMENT_REJECTED"
	CodeUpstreamError   = "UPSTREAM_ERROR"
	CodeInternalError   = "INTERNAL_ERROR"
)

// AppError is the single error type services return to handlers. It carries the
// HTTP status the handler should respond with, so handlers never switch on
// error values themselves.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    any
	cause      error
	origin     *AppError
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// root is the sentinel this error was derived from, or the error itself when
// it is a sentinel.
func (e *AppError) root() *AppError {
	if e.origin != nil {
		return e.origin
	}
	return e
}

// Is makes sentinel comparisons with errors.Is work across the copies produced
// by WithMessage/WithDetails/Wrap.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.root() == t.root()
}

// WithMessage returns a copy with the user-facing message replaced. Used when
// an upstream system provides a more specific message than the sentinel's.
func (e *AppError) WithMessage(message string) *AppError {
	c := *e
	c.origin = e.root()
	c.Message = message
	return &c
}

// WithDetails returns a copy carrying extra context for the response envelope.
func (e *AppError) WithDetails(details any) *AppError {
	c := *e
	c.origin = e.root()
	c.Details = details
	return &c
}

// Wrap returns a copy with cause attached for logging; the user-facing fields
// are untouched.
func (e *AppError) Wrap(cause error) *AppError {
	c := *e
	c.origin = e.root()
	c.cause = cause
	return &c
}
