package synctask

import (
	"context"

	"github.com/kbukum/openapi-go/model"
	"github.com/kbukum/openapi-go/openapi"
)

// Service sends sync task requests to the sync endpoint.
type Service struct {
	client *openapi.Client
}

// NewService returns a Service using c.
func NewService(c *openapi.Client) *Service {
	return &Service{client: c.WithEndpointType(openapi.EndpointSync)}
}

// BatchGet reads the sync tasks of several jobs.
func (s *Service) BatchGet(ctx context.Context, req *BatchGetRequest) (*openapi.Response[[]model.SyncTask], error) {
	return openapi.Send[*openapi.Response[[]model.SyncTask]](ctx, s.client, req)
}

// Stop stops a sync task.
func (s *Service) Stop(ctx context.Context, req *StopRequest) (*openapi.Response[Empty], error) {
	return openapi.Send[*openapi.Response[Empty]](ctx, s.client, req)
}

// Resume resumes a stopped sync task.
func (s *Service) Resume(ctx context.Context, req *ResumeRequest) (*openapi.Response[Empty], error) {
	return openapi.Send[*openapi.Response[Empty]](ctx, s.client, req)
}

// Retransmit restarts a sync task.
func (s *Service) Retransmit(ctx context.Context, req *RetransmitRequest) (*openapi.Response[Empty], error) {
	return openapi.Send[*openapi.Response[Empty]](ctx, s.client, req)
}

// UpdateState sets a job's file sync state.
func (s *Service) UpdateState(ctx context.Context, req *UpdateStateRequest) (*openapi.Response[Empty], error) {
	return openapi.Send[*openapi.Response[Empty]](ctx, s.client, req)
}
