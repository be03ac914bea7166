package job

import (
	"net/http"
	"net/url"

	"github.com/kbukum/openapi-go/httpclient"
	"github.com/kbukum/openapi-go/model"
	"github.com/kbukum/openapi-go/openapi"
	"github.com/kbukum/openapi-go/validation"
)

// ZoneListRequest lists the zones available to the caller.
type ZoneListRequest struct{}

// ZoneListResponse maps zone names to their endpoints.
type ZoneListResponse struct {
	Zones map[string]model.Zone `json:"Zones"`
}

func (r *ZoneListRequest) BuildRequest() (*httpclient.Request, error) {
	return httpclient.NewRequest(http.MethodGet, "/api/zones"), nil
}

func (r *ZoneListRequest) DecodeResponse(resp *http.Response) (*openapi.Response[ZoneListResponse], error) {
	return openapi.DecodeJSON[ZoneListResponse](resp)
}

// JobGetRequest reads one job.
type JobGetRequest struct {
	JobID string `json:"JobID" validate:"notblank"`
}

func (r *JobGetRequest) BuildRequest() (*httpclient.Request, error) {
	if err := validation.Validate(r); err != nil {
		return nil, err
	}
	return httpclient.NewRequest(http.MethodGet, "/api/jobs/"+url.PathEscape(r.JobID)), nil
}

func (r *JobGetRequest) DecodeResponse(resp *http.Response) (*openapi.Response[model.JobInfo], error) {
	return openapi.DecodeJSON[model.JobInfo](resp)
}

// JobListRequest pages through the caller's jobs. Nil filters are not sent.
type JobListRequest struct {
	JobState   *string
	Zone       *string
	PageOffset *int
	PageSize   *int
}

// JobListResponse is one page of jobs.
type JobListResponse struct {
	Jobs  []model.JobInfo `json:"Jobs"`
	Total int             `json:"Total"`
}

func (r *JobListRequest) BuildRequest() (*httpclient.Request, error) {
	req := httpclient.NewRequest(http.MethodGet, "/api/jobs")
	httpclient.SetQueryPtr(req, "JobState", r.JobState)
	httpclient.SetQueryPtr(req, "Zone", r.Zone)
	httpclient.SetQueryPtr(req, "PageOffset", r.PageOffset)
	httpclient.SetQueryPtr(req, "PageSize", r.PageSize)
	return req, nil
}

func (r *JobListRequest) DecodeResponse(resp *http.Response) (*openapi.Response[JobListResponse], error) {
	return openapi.DecodeJSON[JobListResponse](resp)
}

// AdminJobGetRequest reads one job with administrator-only fields.
type AdminJobGetRequest struct {
	JobID string `json:"JobID" validate:"notblank"`
}

func (r *AdminJobGetRequest) BuildRequest() (*httpclient.Request, error) {
	if err := validation.Validate(r); err != nil {
		return nil, err
	}
	return httpclient.NewRequest(http.MethodGet, "/admin/jobs/"+url.PathEscape(r.JobID)), nil
}

func (r *AdminJobGetRequest) DecodeResponse(resp *http.Response) (*openapi.Response[model.AdminJobInfo], error) {
	return openapi.DecodeJSON[model.AdminJobInfo](resp)
}
