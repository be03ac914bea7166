package job

import (
	"context"

	"github.com/kbukum/openapi-go/model"
	"github.com/kbukum/openapi-go/openapi"
)

// Service sends job requests to the API endpoint.
type Service struct {
	client *openapi.Client
}

// NewService returns a Service using c.
func NewService(c *openapi.Client) *Service {
	return &Service{client: c.WithEndpointType(openapi.EndpointAPI)}
}

// ZoneList lists the available zones.
func (s *Service) ZoneList(ctx context.Context) (*openapi.Response[ZoneListResponse], error) {
	return openapi.Send[*openapi.Response[ZoneListResponse]](ctx, s.client, &ZoneListRequest{})
}

// JobGet reads one job.
func (s *Service) JobGet(ctx context.Context, req *JobGetRequest) (*openapi.Response[model.JobInfo], error) {
	return openapi.Send[*openapi.Response[model.JobInfo]](ctx, s.client, req)
}

// JobList reads one page of jobs.
func (s *Service) JobList(ctx context.Context, req *JobListRequest) (*openapi.Response[JobListResponse], error) {
	return openapi.Send[*openapi.Response[JobListResponse]](ctx, s.client, req)
}

// AdminJobGet reads one job with administrator-only fields.
func (s *Service) AdminJobGet(ctx context.Context, req *AdminJobGetRequest) (*openapi.Response[model.AdminJobInfo], error) {
	return openapi.Send[*openapi.Response[model.AdminJobInfo]](ctx, s.client, req)
}
