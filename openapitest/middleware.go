package openapitest

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kbukum/openapi-go/httpclient"
	"github.com/kbukum/openapi-go/logger"
	"github.com/kbukum/openapi-go/signer"
)

// HeaderRequestID carries the request ID. The server echoes a caller-supplied
// ID and generates one otherwise.
const HeaderRequestID = "X-Ys-Request-Id"

const requestIDKey = "request_id"

// Error codes returned by the signature check.
const (
	ErrCodeInvalidAppKey    = "InvalidAppKey"
	ErrCodeMissingTimestamp = "MissingTimestamp"
	ErrCodeInvalidSignature = "InvalidSignature"
	ErrCodeBodyMismatch     = "BodyDigestMismatch"
)

// Request is a request as the server received it.
type Request struct {
	Method    string
	Path      string
	Query     url.Values
	Header    http.Header
	Body      []byte
	RequestID string
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

func (s *Server) recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				s.log.Error("panic recovered", logger.Fields(
					logger.FieldError, fmt.Sprintf("%v", err),
					logger.FieldMethod, c.Request.Method,
					logger.FieldURI, c.Request.URL.Path,
					"stack", string(debug.Stack()),
				))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}

// record stores the request and restores its body for later handlers.
func (s *Server) record() gin.HandlerFunc {
	return func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		s.addRequest(Request{
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Query:     c.Request.URL.Query(),
			Header:    c.Request.Header.Clone(),
			Body:      body,
			RequestID: c.GetString(requestIDKey),
		})
		c.Next()
	}
}

// verify rejects requests whose signature does not match the server's
// credentials with 401 and an error envelope.
func (s *Server) verify() gin.HandlerFunc {
	sig := signer.New(s.appKey, s.secret)
	return func(c *gin.Context) {
		query := flatten(c.Request.URL.Query())
		if query["AppKey"] != s.appKey {
			unauthorized(c, ErrCodeInvalidAppKey, "unknown app key")
			return
		}
		if query["Timestamp"] == "" {
			unauthorized(c, ErrCodeMissingTimestamp, "timestamp is required")
			return
		}
		if query[signer.SignatureKey] != sig.Sign(query) {
			unauthorized(c, ErrCodeInvalidSignature, "signature does not match")
			return
		}

		body, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		digest, bound := query[signer.BodyKey]
		if isJSON(c.GetHeader("Content-Type")) && len(body) > 0 {
			if !bound || digest != signer.SHA1Hex(body) {
				unauthorized(c, ErrCodeBodyMismatch, "body digest does not match")
				return
			}
		}
		c.Next()
	}
}

func unauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, envelope{
		ErrorCode:    code,
		ErrorMessage: message,
		RequestID:    c.GetString(requestIDKey),
	})
}

func flatten(q url.Values) map[string]string {
	m := make(map[string]string, len(q))
	for k := range q {
		m[k] = q.Get(k)
	}
	return m
}

func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	return err == nil && mt == httpclient.ContentTypeJSON
}
