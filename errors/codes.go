package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Configuration errors
const (
	// ErrCodeConfig indicates the client is missing or has invalid configuration.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"
	// ErrCodeInvalidRequest indicates an endpoint could not produce a request descriptor.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeInvalidInput indicates a struct failed validation.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Signing errors
const (
	// ErrCodeInvalidEncoding indicates a JSON body that is not valid UTF-8.
	ErrCodeInvalidEncoding ErrorCode = "INVALID_ENCODING"
)

// Transport errors
const (
	// ErrCodeTransport indicates a network, DNS, TLS or connection failure.
	ErrCodeTransport ErrorCode = "TRANSPORT_ERROR"
	// ErrCodeTimeout indicates the request deadline was exceeded.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeCancelled indicates the caller cancelled the request.
	ErrCodeCancelled ErrorCode = "CANCELLED"
	// ErrCodeCircuitOpen indicates the circuit breaker is open.
	ErrCodeCircuitOpen ErrorCode = "CIRCUIT_OPEN"
)

// Response errors
const (
	// ErrCodeRequestFailed indicates the server answered with a non-2xx status.
	ErrCodeRequestFailed ErrorCode = "REQUEST_FAILED"
	// ErrCodeDecode indicates a 2xx response whose body could not be decoded.
	ErrCodeDecode ErrorCode = "DECODE_ERROR"
	// ErrCodeAPI indicates a 2xx envelope that carried a non-empty ErrorCode.
	ErrCodeAPI ErrorCode = "API_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeTransport:   true,
	ErrCodeTimeout:     true,
	ErrCodeCircuitOpen: true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
// The client never retries on its own; callers decide.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
