package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// maxBodySnippet bounds the response body kept on a RequestFailed error.
const maxBodySnippet = 512

// AppError is the unified client error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the status returned by the server, when there was one.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// --- Configuration ---

// Config creates a new AppError for invalid client configuration.
func Config(message string) *AppError {
	return &AppError{Code: ErrCodeConfig, Message: message}
}

// MissingConfig creates a new AppError for a required configuration key that is unset.
func MissingConfig(key string) *AppError {
	return &AppError{
		Code: ErrCodeConfig, Message: fmt.Sprintf("missing required configuration: %s", key),
		Details: map[string]any{"key": key},
	}
}

// UnsupportedMethod creates a new AppError for an HTTP method outside the allowed set.
func UnsupportedMethod(method string) *AppError {
	return &AppError{
		Code: ErrCodeConfig, Message: fmt.Sprintf("unsupported HTTP method %q", method),
		Details: map[string]any{"method": method},
	}
}

// InvalidRequest creates a new AppError for an endpoint that could not build its request.
func InvalidRequest(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidRequest, Message: message}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// --- Signing ---

// InvalidEncoding creates a new AppError for a JSON body that is not valid UTF-8.
func InvalidEncoding(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInvalidEncoding, Message: "request body is not valid UTF-8",
		Cause: cause,
	}
}

// --- Transport ---

// Transport creates a new AppError for a failed round trip.
func Transport(cause error) *AppError {
	return &AppError{
		Code: ErrCodeTransport, Message: "request could not be delivered",
		Retryable: true, Cause: cause,
	}
}

// Timeout creates a new AppError for a request whose deadline expired.
func Timeout(cause error) *AppError {
	return &AppError{
		Code: ErrCodeTimeout, Message: "request timed out",
		HTTPStatus: http.StatusGatewayTimeout, Retryable: true, Cause: cause,
	}
}

// Cancelled creates a new AppError for a request cancelled by the caller.
func Cancelled(cause error) *AppError {
	return &AppError{Code: ErrCodeCancelled, Message: "request cancelled", Cause: cause}
}

// CircuitOpen creates a new AppError for a call short-circuited by the breaker.
func CircuitOpen(cause error) *AppError {
	return &AppError{
		Code: ErrCodeCircuitOpen, Message: "circuit breaker is open",
		HTTPStatus: http.StatusServiceUnavailable, Retryable: true, Cause: cause,
	}
}

// --- Response ---

// RequestFailed creates a new AppError for a non-2xx response. A bounded
// snippet of the body is kept for diagnostics.
func RequestFailed(status int, body []byte) *AppError {
	details := map[string]any{"status": status}
	if len(body) > 0 {
		if len(body) > maxBodySnippet {
			body = body[:maxBodySnippet]
		}
		details["body"] = string(body)
	}
	return &AppError{
		Code:       ErrCodeRequestFailed,
		Message:    fmt.Sprintf("request failed with status %d", status),
		HTTPStatus: status,
		Retryable:  status == http.StatusTooManyRequests || status >= http.StatusInternalServerError,
		Details:    details,
	}
}

// Decode creates a new AppError for a response body that could not be decoded.
func Decode(cause error) *AppError {
	return &AppError{Code: ErrCodeDecode, Message: "response could not be decoded", Cause: cause}
}

// API creates a new AppError from an envelope that reported a service-level error.
func API(code, message, requestID string) *AppError {
	details := map[string]any{"error_code": code}
	if requestID != "" {
		details["request_id"] = requestID
	}
	return &AppError{
		Code: ErrCodeAPI, Message: fmt.Sprintf("%s: %s", code, message),
		Details: details,
	}
}

// --- Inspection ---

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// IsConfig reports whether err is a configuration error.
func IsConfig(err error) bool { return HasCode(err, ErrCodeConfig) }

// IsInvalidRequest reports whether err came from a failed request builder.
func IsInvalidRequest(err error) bool { return HasCode(err, ErrCodeInvalidRequest) }

// IsSignature reports whether err came from request signing.
func IsSignature(err error) bool { return HasCode(err, ErrCodeInvalidEncoding) }

// IsTransport reports whether err is any transport-level failure, including
// timeouts and cancellation.
func IsTransport(err error) bool {
	appErr, ok := AsAppError(err)
	if !ok {
		return false
	}
	switch appErr.Code {
	case ErrCodeTransport, ErrCodeTimeout, ErrCodeCancelled, ErrCodeCircuitOpen:
		return true
	}
	return false
}

// IsTimeout reports whether err is a timeout.
func IsTimeout(err error) bool { return HasCode(err, ErrCodeTimeout) }

// IsCancelled reports whether err is a caller cancellation.
func IsCancelled(err error) bool { return HasCode(err, ErrCodeCancelled) }

// IsRequestFailed reports whether err is a non-2xx status error.
func IsRequestFailed(err error) bool { return HasCode(err, ErrCodeRequestFailed) }

// IsDecode reports whether err is a decode error.
func IsDecode(err error) bool { return HasCode(err, ErrCodeDecode) }

// IsAPI reports whether err is an envelope-level service error.
func IsAPI(err error) bool { return HasCode(err, ErrCodeAPI) }

// IsRetryable reports whether err is marked retryable.
func IsRetryable(err error) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Retryable
}

// StatusCode returns the HTTP status carried by a RequestFailed error, or 0.
func StatusCode(err error) int {
	appErr, ok := AsAppError(err)
	if !ok || appErr.Code != ErrCodeRequestFailed {
		return 0
	}
	return appErr.HTTPStatus
}
