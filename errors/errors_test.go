package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestAppError_New_Retryable(t *testing.T) {
	err := New(ErrCodeTimeout, "timed out", http.StatusGatewayTimeout)
	if !err.Retryable {
		t.Error("TIMEOUT should be retryable")
	}
	err = New(ErrCodeDecode, "bad json", 0)
	if err.Retryable {
		t.Error("DECODE_ERROR should not be retryable")
	}
}

func TestAppError_Error_WithCause(t *testing.T) {
	cause := fmt.Errorf("dial tcp: refused")
	err := Transport(cause)
	if !strings.Contains(err.Error(), "TRANSPORT_ERROR") {
		t.Errorf("expected code in message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "dial tcp: refused") {
		t.Errorf("expected cause in message, got %q", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}
}

func TestRequestFailed(t *testing.T) {
	err := RequestFailed(http.StatusNotFound, []byte("no such job"))
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected 404, got %d", err.HTTPStatus)
	}
	if err.Details["body"] != "no such job" {
		t.Errorf("expected body snippet, got %v", err.Details["body"])
	}
	if err.Retryable {
		t.Error("404 should not be retryable")
	}
	if !RequestFailed(http.StatusServiceUnavailable, nil).Retryable {
		t.Error("503 should be retryable")
	}
	if _, ok := RequestFailed(http.StatusBadRequest, nil).Details["body"]; ok {
		t.Error("expected no body detail for empty body")
	}
}

func TestRequestFailed_TruncatesBody(t *testing.T) {
	body := []byte(strings.Repeat("x", maxBodySnippet*2))
	err := RequestFailed(http.StatusInternalServerError, body)
	got, _ := err.Details["body"].(string)
	if len(got) != maxBodySnippet {
		t.Errorf("expected snippet of %d bytes, got %d", maxBodySnippet, len(got))
	}
}

func TestStatusCode(t *testing.T) {
	wrapped := fmt.Errorf("send: %w", RequestFailed(http.StatusConflict, nil))
	if got := StatusCode(wrapped); got != http.StatusConflict {
		t.Errorf("expected 409, got %d", got)
	}
	if got := StatusCode(Timeout(context.DeadlineExceeded)); got != 0 {
		t.Errorf("expected 0 for non-status error, got %d", got)
	}
	if got := StatusCode(fmt.Errorf("plain")); got != 0 {
		t.Errorf("expected 0 for plain error, got %d", got)
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"config", Config("bad"), IsConfig, true},
		{"missing config", MissingConfig("OpenApiAppKey"), IsConfig, true},
		{"unsupported method", UnsupportedMethod("TRACE"), IsConfig, true},
		{"invalid request", InvalidRequest("JobID is required"), IsInvalidRequest, true},
		{"signature", InvalidEncoding(nil), IsSignature, true},
		{"transport", Transport(nil), IsTransport, true},
		{"timeout is transport", Timeout(nil), IsTransport, true},
		{"cancelled is transport", Cancelled(nil), IsTransport, true},
		{"timeout", Timeout(nil), IsTimeout, true},
		{"cancelled not timeout", Cancelled(nil), IsTimeout, false},
		{"cancelled", Cancelled(nil), IsCancelled, true},
		{"request failed", RequestFailed(500, nil), IsRequestFailed, true},
		{"decode", Decode(nil), IsDecode, true},
		{"decode not status", Decode(nil), IsRequestFailed, false},
		{"status not decode", RequestFailed(500, nil), IsDecode, false},
		{"api", API("InvalidArgument", "bad", "req-1"), IsAPI, true},
		{"plain error", fmt.Errorf("x"), IsTransport, false},
		{"nil", nil, IsConfig, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestAPI_Details(t *testing.T) {
	err := API("JobNotFound", "job does not exist", "req-42")
	if err.Details["error_code"] != "JobNotFound" {
		t.Errorf("expected error_code detail, got %v", err.Details["error_code"])
	}
	if err.Details["request_id"] != "req-42" {
		t.Errorf("expected request_id detail, got %v", err.Details["request_id"])
	}
	if !strings.Contains(err.Message, "job does not exist") {
		t.Errorf("expected message to carry server text, got %q", err.Message)
	}
}

func TestAppError_WithDetails(t *testing.T) {
	err := Config("bad endpoint").WithDetail("key", "OpenApiEndpoint").
		WithDetails(map[string]any{"value": ""})
	if err.Details["key"] != "OpenApiEndpoint" || err.Details["value"] != "" {
		t.Errorf("unexpected details: %v", err.Details)
	}
}

func TestAsAppError(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", Decode(nil))
	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AppError")
	}
	if appErr.Code != ErrCodeDecode {
		t.Errorf("expected DECODE_ERROR, got %s", appErr.Code)
	}
	if IsAppError(fmt.Errorf("plain")) {
		t.Error("plain error should not be an AppError")
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(Transport(nil)) {
		t.Error("transport should be retryable")
	}
	if IsRetryable(Cancelled(nil)) {
		t.Error("cancelled should not be retryable")
	}
	if IsRetryable(fmt.Errorf("plain")) {
		t.Error("plain errors are not retryable")
	}
}
