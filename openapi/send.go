package openapi

import (
	"context"
	"io"
	"maps"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel/attribute"

	"github.com/kbukum/openapi-go/errors"
	"github.com/kbukum/openapi-go/httpclient"
	"github.com/kbukum/openapi-go/logger"
	"github.com/kbukum/openapi-go/observability"
	"github.com/kbukum/openapi-go/version"
)

// maxDrain bounds how much of an unread body is discarded so the
// connection can be reused.
const maxDrain = 64 << 10

// Endpoint is one operation of the service. BuildRequest is called once per
// Send, at send time. DecodeResponse is only called for 2xx responses.
type Endpoint[T any] interface {
	BuildRequest() (*httpclient.Request, error)
	DecodeResponse(resp *http.Response) (T, error)
}

// StreamEndpoint is an Endpoint whose decoded value keeps reading the
// response body. Send does not close the body of a successful decode; the
// caller closes the returned stream.
type StreamEndpoint[T any] interface {
	Endpoint[T]
	Streaming()
}

// Send builds, signs and executes ep, then decodes its response.
//
// Failures are reported as *errors.AppError:
//   - INVALID_REQUEST when the endpoint cannot build its request,
//   - CONFIG_ERROR for an unsupported method or an unconfigured endpoint type,
//   - INVALID_ENCODING when a JSON body is not valid UTF-8,
//   - TRANSPORT_ERROR, TIMEOUT or CANCELLED when no response arrives,
//   - REQUEST_FAILED for a non-2xx status (the decoder is not called),
//   - DECODE_ERROR when the decoder fails.
//
// Send never retries.
func Send[T any](ctx context.Context, c *Client, ep Endpoint[T]) (result T, err error) {
	var zero T

	req, err := ep.BuildRequest()
	if err != nil {
		return zero, invalidRequest(err)
	}
	if req == nil {
		return zero, errors.InvalidRequest("endpoint built no request")
	}
	_, streaming := ep.(StreamEndpoint[T])

	ctx, op := observability.StartOperation(ctx, c.tracer, c.metrics, c.endpointType.String(), req.Method, req.URI)
	op.SetAttributes(attribute.String(observability.AttrUserID, c.cfg.UserID))
	log := c.log.WithContext(ctx)

	var status int
	defer func() {
		op.End(ctx, status, errorCode(err), err)
		fields := logger.Fields(
			logger.FieldMethod, req.Method,
			logger.FieldURI, req.URI,
			logger.FieldEndpoint, c.endpointType.String(),
			logger.FieldStatus, status,
		)
		fields = logger.MergeWithDuration(fields, op.Duration())
		if err != nil {
			fields[logger.FieldErrorCode] = errorCode(err)
			log.Warn("request failed", logger.MergeWithError(fields, err))
			return
		}
		log.Debug("request completed", fields)
	}()

	httpReq, err := c.prepare(ctx, req)
	if err != nil {
		return zero, err
	}

	var resp *http.Response
	if streaming {
		resp, err = c.transport.DoStream(httpReq)
	} else {
		resp, err = c.transport.Do(httpReq)
	}
	if err != nil {
		return zero, err
	}
	status = resp.StatusCode

	if err := httpclient.CheckStatus(resp); err != nil {
		return zero, err
	}

	result, err = ep.DecodeResponse(resp)
	if err != nil || !streaming {
		closeBody(resp.Body)
	}
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeDecode) {
			return zero, err
		}
		return zero, errors.Decode(err)
	}
	return result, nil
}

// prepare merges the client defaults into req, signs it and builds the
// HTTP request for the active endpoint type.
func (c *Client) prepare(ctx context.Context, req *httpclient.Request) (*http.Request, error) {
	if !httpclient.IsAllowedMethod(req.Method) {
		return nil, errors.UnsupportedMethod(req.Method)
	}
	baseURL, err := c.BaseURL()
	if err != nil {
		return nil, err
	}

	headers := map[string]string{
		HeaderUserID:    c.cfg.UserID,
		HeaderVersion:   c.cfg.Version,
		HeaderUserAgent: version.UserAgent(),
	}
	for k, v := range req.Headers {
		headers[http.CanonicalHeaderKey(k)] = v
	}

	query := map[string]string{
		QueryAppKey:    c.signer.AppKey(),
		QueryTimestamp: strconv.FormatInt(c.clock().Unix(), 10),
	}
	maps.Copy(query, req.Query)

	contentType := req.ContentType
	if contentType == "" && len(req.Body) > 0 {
		contentType = httpclient.ContentTypeOctetStream
	}

	signed, err := c.signer.SignRequest(query, req.Body, contentType)
	if err != nil {
		return nil, err
	}

	return httpclient.Build(ctx, baseURL, &httpclient.Request{
		Method:      req.Method,
		URI:         req.URI,
		Headers:     headers,
		Query:       signed,
		Body:        req.Body,
		ContentType: contentType,
	})
}

// invalidRequest reports a builder failure as INVALID_REQUEST, keeping
// field details from validation errors.
func invalidRequest(err error) error {
	appErr, ok := errors.AsAppError(err)
	if ok && appErr.Code == errors.ErrCodeInvalidRequest {
		return err
	}
	out := errors.InvalidRequest(err.Error()).WithCause(err)
	if ok && appErr.Details != nil {
		out.WithDetails(appErr.Details)
	}
	return out
}

func errorCode(err error) string {
	if err == nil {
		return ""
	}
	if appErr, ok := errors.AsAppError(err); ok {
		return string(appErr.Code)
	}
	return "UNKNOWN"
}

func closeBody(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, maxDrain))
	_ = body.Close()
}
