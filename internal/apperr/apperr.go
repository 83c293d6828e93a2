package apperr

// Code identifies a failure category surfaced to API callers.
type Code string

const (
	CodeMissingFields Code = "MISSING_FIELDS"
	CodeAuthRequired  Code = "AUTH_REQUIRED"
	CodeAuthFailed    Code = "AUTH_FAILED"
	CodeAccessDenied  Code = "ACCESS_DENIED"
	CodeNotFound      Code = "NOT_FOUND"
	CodeEmailTaken    Code = "EMAIL_TAKEN"
	CodeServerError   Code = "SERVER_ERROR"
)

// Error is the failure shape every service method returns. It carries the
// wire-level code and message plus an optional internal cause that is never
// serialized to callers.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Internal wraps an unexpected lower-layer failure. The caller-visible
// message is generic; the cause stays internal for logging.
func Internal(cause error) *Error {
	return &Error{Code: CodeServerError, Message: "Internal server error", cause: cause}
}

func MissingFields(message string) *Error {
	return New(CodeMissingFields, message)
}

func NotFound(entity string) *Error {
	return New(CodeNotFound, entity+" not found")
}

func AuthRequired() *Error {
	return New(CodeAuthRequired, "Access denied - authentication required")
}

func AccessDenied() *Error {
	return New(CodeAccessDenied, "Access denied")
}
