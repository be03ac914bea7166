package rdpgo

import (
	"context"

	"github.com/kbukum/openapi-go/openapi"
)

// Service sends agent requests to the HPC endpoint.
type Service struct {
	client *openapi.Client
}

// NewService returns a Service using c.
func NewService(c *openapi.Client) *Service {
	return &Service{client: c.WithEndpointType(openapi.EndpointHPC)}
}

// Clean resets a node's desktop session.
func (s *Service) Clean(ctx context.Context, req *CleanRequest) (*openapi.Response[Empty], error) {
	return openapi.Send[*openapi.Response[Empty]](ctx, s.client, req)
}

// ExecScript runs a script on a node.
func (s *Service) ExecScript(ctx context.Context, req *ExecScriptRequest) (*openapi.Response[ExecScriptResponse], error) {
	return openapi.Send[*openapi.Response[ExecScriptResponse]](ctx, s.client, req)
}
