package storage

import (
	"net/http"

	"github.com/kbukum/openapi-go/httpclient"
	"github.com/kbukum/openapi-go/model"
	"github.com/kbukum/openapi-go/openapi"
	"github.com/kbukum/openapi-go/validation"
)

// StatRequest reads a file's metadata.
type StatRequest struct {
	Path string `json:"Path" validate:"notblank"`
}

// StatResponse holds the file's metadata.
type StatResponse struct {
	File *model.FileInfo `json:"File"`
}

func (r *StatRequest) BuildRequest() (*httpclient.Request, error) {
	if err := validation.Validate(r); err != nil {
		return nil, err
	}
	req := httpclient.NewRequest(http.MethodGet, "/api/storage/stat")
	req.SetQuery("Path", r.Path)
	return req, nil
}

func (r *StatRequest) DecodeResponse(resp *http.Response) (*openapi.Response[StatResponse], error) {
	return openapi.DecodeJSON[StatResponse](resp)
}

// ListRequest pages through a directory. FilterRegexpList has no query
// form and travels as a JSON body.
type ListRequest struct {
	Path             string `json:"Path" validate:"notblank"`
	FilterRegexp     *string
	FilterRegexpList []string
	PageOffset       *int
	PageSize         *int
}

// ListResponse is one page of directory entries.
type ListResponse struct {
	Files      []model.FileInfo `json:"Files"`
	Total      int              `json:"Total"`
	NextMarker int64            `json:"NextMarker"`
}

func (r *ListRequest) BuildRequest() (*httpclient.Request, error) {
	if err := validation.Validate(r); err != nil {
		return nil, err
	}
	req := httpclient.NewRequest(http.MethodGet, "/api/storage/lsWithPage")
	req.SetQuery("Path", r.Path)
	httpclient.SetQueryPtr(req, "FilterRegexp", r.FilterRegexp)
	httpclient.SetQueryPtr(req, "PageOffset", r.PageOffset)
	httpclient.SetQueryPtr(req, "PageSize", r.PageSize)
	if len(r.FilterRegexpList) > 0 {
		body := struct {
			FilterRegexpList []string `json:"FilterRegexpList"`
		}{r.FilterRegexpList}
		if err := req.SetJSONBody(body); err != nil {
			return nil, err
		}
	}
	return req, nil
}

func (r *ListRequest) DecodeResponse(resp *http.Response) (*openapi.Response[ListResponse], error) {
	return openapi.DecodeJSON[ListResponse](resp)
}

// MkdirRequest creates a directory and its parents.
type MkdirRequest struct {
	Path        string `json:"Path" validate:"notblank"`
	IgnoreExist *bool  `json:"IgnoreExist,omitempty"`
}

// Empty is the payload of operations that return no data.
type Empty struct{}

func (r *MkdirRequest) BuildRequest() (*httpclient.Request, error) {
	return jsonRequest(http.MethodPost, "/api/storage/mkdir", r)
}

func (r *MkdirRequest) DecodeResponse(resp *http.Response) (*openapi.Response[Empty], error) {
	return openapi.DecodeJSON[Empty](resp)
}

// MoveRequest renames Src to Dest.
type MoveRequest struct {
	Src  string `json:"Src" validate:"notblank"`
	Dest string `json:"Dest" validate:"notblank"`
}

func (r *MoveRequest) BuildRequest() (*httpclient.Request, error) {
	return jsonRequest(http.MethodPost, "/api/storage/mv", r)
}

func (r *MoveRequest) DecodeResponse(resp *http.Response) (*openapi.Response[Empty], error) {
	return openapi.DecodeJSON[Empty](resp)
}

// RemoveRequest deletes a file or directory tree.
type RemoveRequest struct {
	Path           string `json:"Path" validate:"notblank"`
	IgnoreNotExist *bool  `json:"IgnoreNotExist,omitempty"`
}

func (r *RemoveRequest) BuildRequest() (*httpclient.Request, error) {
	return jsonRequest(http.MethodPost, "/api/storage/rm", r)
}

func (r *RemoveRequest) DecodeResponse(resp *http.Response) (*openapi.Response[Empty], error) {
	return openapi.DecodeJSON[Empty](resp)
}

// jsonRequest validates body and sends it as the JSON payload.
func jsonRequest(method, uri string, body any) (*httpclient.Request, error) {
	if err := validation.Validate(body); err != nil {
		return nil, err
	}
	req := httpclient.NewRequest(method, uri)
	if err := req.SetJSONBody(body); err != nil {
		return nil, err
	}
	return req, nil
}
