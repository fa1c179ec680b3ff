package apierrors

import (
	"net/http"
)

// APIError is an error carrying the HTTP status and client-safe message it is reported with.
// Err holds the internal cause and is never sent to the client.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Machine-readable error codes
const (
	CodeInvalidInput       = "INVALID_INPUT"
	CodeNotFound           = "NOT_FOUND"
	CodeTalentNotFound     = "TALENT_NOT_FOUND"
	CodePerformanceMissing = "PERFORMANCE_NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeInvalidPeriod      = "INVALID_PERIOD"
	CodeUnknownImportKind  = "UNKNOWN_IMPORT_KIND"
	CodeUnreadableFile     = "UNREADABLE_WORKBOOK"
	CodeFileRequired       = "FILE_REQUIRED"
	CodeFileTooLarge       = "FILE_TOO_LARGE"
	CodeUnsupportedFile    = "UNSUPPORTED_FILE_TYPE"
	CodeInvalidRules       = "INVALID_BONUS_RULES"
	CodeInvalidPhone       = "INVALID_PHONE"
	CodeUsernameRequired   = "USERNAME_REQUIRED"
	CodeRateLimited        = "RATE_LIMIT_EXCEEDED"
	CodeStoreUnavailable   = "STORE_UNAVAILABLE"
	CodeWhatsAppDisabled   = "WHATSAPP_DISABLED"
	CodeWhatsAppError      = "WHATSAPP_SERVICE_ERROR"
	CodeInternalError      = "INTERNAL_ERROR"
)

func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

func Forbidden(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

func PayloadTooLarge(message string) *APIError {
	return &APIError{StatusCode: http.StatusRequestEntityTooLarge, Code: CodeFileTooLarge, Message: message}
}

func TooManyRequests(message string) *APIError {
	return &APIError{StatusCode: http.StatusTooManyRequests, Code: CodeRateLimited, Message: message}
}

// ServiceUnavailable keeps the internal error for logging only.
func ServiceUnavailable(code, message string, internalErr error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, Err: internalErr}
}

// InternalError returns a sanitized 500. The cause is logged, never exposed.
func InternalError(internalErr error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Err:        internalErr,
	}
}
