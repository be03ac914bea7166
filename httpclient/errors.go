package httpclient

import (
	"context"
	stderrors "errors"
	"io"
	"net"
	"net/http"

	"github.com/kbukum/openapi-go/errors"
)

// maxErrorBody bounds how much of a failed response is read for diagnostics.
const maxErrorBody = 4 << 10

// IsSuccess reports whether status is 2xx.
func IsSuccess(status int) bool {
	return status >= 200 && status < 300
}

// CheckStatus returns nil for a 2xx response. Otherwise it drains a bounded
// part of the body, closes it, and returns a RequestFailed error.
func CheckStatus(resp *http.Response) error {
	if IsSuccess(resp.StatusCode) {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	_ = resp.Body.Close()
	return errors.RequestFailed(resp.StatusCode, body)
}

// classifyTransportError maps a failed round trip to Cancelled, Timeout or
// Transport. AppErrors pass through unchanged.
func classifyTransportError(ctx context.Context, err error) error {
	if errors.IsAppError(err) {
		return err
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(ctx.Err(), context.Canceled) {
		return errors.Cancelled(err)
	}
	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errors.Timeout(err)
	}
	var netErr net.Error
	if stderrors.As(err, &netErr) && netErr.Timeout() {
		return errors.Timeout(err)
	}
	return errors.Transport(err)
}
