package openapitest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type envelope struct {
	ErrorCode    string `json:"ErrorCode"`
	ErrorMessage string `json:"ErrorMessage"`
	RequestID    string `json:"RequestID"`
	Data         any    `json:"Data,omitempty"`
}

// OK writes a successful envelope around data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, envelope{RequestID: c.GetString(requestIDKey), Data: data})
}

// Fail writes a 200 envelope reporting a service-level error.
func Fail(c *gin.Context, code, message string) {
	c.JSON(http.StatusOK, envelope{
		ErrorCode:    code,
		ErrorMessage: message,
		RequestID:    c.GetString(requestIDKey),
	})
}

// File writes content as a download with the given name.
func File(c *gin.Context, name, contentType string, content []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Header("Content-Length", strconv.Itoa(len(content)))
	c.Data(http.StatusOK, contentType, content)
}

// Handle registers a handler. Paths use Gin syntax, e.g. "/api/jobs/:id".
func (s *Server) Handle(method, path string, h gin.HandlerFunc) {
	s.engine.Handle(method, path, h)
}

// Respond registers a route that always answers with data.
func (s *Server) Respond(method, path string, data any) {
	s.Handle(method, path, func(c *gin.Context) { OK(c, data) })
}

// RespondError registers a route that always reports a service error.
func (s *Server) RespondError(method, path, code, message string) {
	s.Handle(method, path, func(c *gin.Context) { Fail(c, code, message) })
}

// RespondStatus registers a route that answers with status and a raw body.
func (s *Server) RespondStatus(method, path string, status int, body string) {
	s.Handle(method, path, func(c *gin.Context) { c.String(status, body) })
}

// RespondFile registers a route that serves content as a download.
func (s *Server) RespondFile(method, path, name, contentType string, content []byte) {
	s.Handle(method, path, func(c *gin.Context) { File(c, name, contentType, content) })
}
