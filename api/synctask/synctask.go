package synctask

import (
	"net/http"
	"net/url"

	"github.com/kbukum/openapi-go/httpclient"
	"github.com/kbukum/openapi-go/model"
	"github.com/kbukum/openapi-go/openapi"
	"github.com/kbukum/openapi-go/validation"
)

const basePath = "/system/sync-task"

// Empty is the payload of operations that return no data.
type Empty struct{}

// BatchGetRequest reads the sync tasks of several jobs.
type BatchGetRequest struct {
	JobIDs []string `json:"JobIds" validate:"min=1,dive,notblank"`
}

func (r *BatchGetRequest) BuildRequest() (*httpclient.Request, error) {
	if err := validation.Validate(r); err != nil {
		return nil, err
	}
	req := httpclient.NewRequest(http.MethodPost, basePath+"/batch")
	if err := req.SetJSONBody(r); err != nil {
		return nil, err
	}
	return req, nil
}

func (r *BatchGetRequest) DecodeResponse(resp *http.Response) (*openapi.Response[[]model.SyncTask], error) {
	return openapi.DecodeJSON[[]model.SyncTask](resp)
}

// StopRequest stops a job's sync task.
type StopRequest struct {
	JobID string `json:"JobId" validate:"notblank"`
	Mode  *int   `json:"Mode,omitempty"`
}

func (r *StopRequest) BuildRequest() (*httpclient.Request, error) {
	return taskRequest(http.MethodPost, r.JobID, "stop", r)
}

func (r *StopRequest) DecodeResponse(resp *http.Response) (*openapi.Response[Empty], error) {
	return openapi.DecodeJSON[Empty](resp)
}

// ResumeRequest resumes a stopped sync task.
type ResumeRequest struct {
	JobID string `json:"JobId" validate:"notblank"`
}

func (r *ResumeRequest) BuildRequest() (*httpclient.Request, error) {
	return taskRequest(http.MethodPost, r.JobID, "resume", nil)
}

func (r *ResumeRequest) DecodeResponse(resp *http.Response) (*openapi.Response[Empty], error) {
	return openapi.DecodeJSON[Empty](resp)
}

// RetransmitRequest restarts a sync task from the beginning.
type RetransmitRequest struct {
	JobID string `json:"JobId" validate:"notblank"`
}

func (r *RetransmitRequest) BuildRequest() (*httpclient.Request, error) {
	return taskRequest(http.MethodPatch, r.JobID, "retransmit", nil)
}

func (r *RetransmitRequest) DecodeResponse(resp *http.Response) (*openapi.Response[Empty], error) {
	return openapi.DecodeJSON[Empty](resp)
}

// UpdateStateRequest sets the file sync state recorded for a job.
type UpdateStateRequest struct {
	JobID         string `json:"JobId" validate:"notblank"`
	FileSyncState string `json:"FileSyncState" validate:"notblank"`
}

func (r *UpdateStateRequest) BuildRequest() (*httpclient.Request, error) {
	return taskRequest(http.MethodPatch, r.JobID, "state", r)
}

func (r *UpdateStateRequest) DecodeResponse(resp *http.Response) (*openapi.Response[Empty], error) {
	return openapi.DecodeJSON[Empty](resp)
}

// taskRequest builds a request for /system/sync-task/{jobID}/{action}.
// A nil body sends no payload.
func taskRequest(method, jobID, action string, body any) (*httpclient.Request, error) {
	if err := validation.Required("JobId", jobID); err != nil {
		return nil, err
	}
	req := httpclient.NewRequest(method, basePath+"/"+url.PathEscape(jobID)+"/"+action)
	if body == nil {
		return req, nil
	}
	if err := validation.Validate(body); err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(body); err != nil {
		return nil, err
	}
	return req, nil
}
