package rdpgo

import (
	"encoding/base64"
	"net/http"

	"github.com/kbukum/openapi-go/httpclient"
	"github.com/kbukum/openapi-go/openapi"
	"github.com/kbukum/openapi-go/validation"
)

// HeaderRequestID correlates agent calls across services.
const HeaderRequestID = "x-ys-request-id"

// Empty is the payload of operations that return no data.
type Empty struct{}

// CleanRequest resets the desktop session on the node at PrivateIP.
type CleanRequest struct {
	PrivateIP string `json:"PrivateIP" validate:"notblank,ip"`
	RequestID string `json:"-"`
}

func (r *CleanRequest) BuildRequest() (*httpclient.Request, error) {
	if err := validation.Validate(r); err != nil {
		return nil, err
	}
	req := httpclient.NewRequest(http.MethodPost, "/internal/clean")
	req.SetQuery("PrivateIP", r.PrivateIP)
	setRequestID(req, r.RequestID)
	return req, nil
}

func (r *CleanRequest) DecodeResponse(resp *http.Response) (*openapi.Response[Empty], error) {
	return openapi.DecodeJSON[Empty](resp)
}

// ExecScriptRequest runs a script on the node at PrivateIP. The script is
// sent base64 encoded; see EncodeScript.
type ExecScriptRequest struct {
	PrivateIP            string  `json:"PrivateIP" validate:"notblank,ip"`
	RequestID            string  `json:"-"`
	ScriptRunner         *string `json:"ScriptRunner,omitempty"`
	ScriptContentEncoded string  `json:"ScriptContentEncoded" validate:"notblank,base64"`
	WaitTillEnd          *bool   `json:"WaitTillEnd,omitempty"`
}

// ExecScriptResponse is the script's outcome. Fields are only set when
// WaitTillEnd was requested.
type ExecScriptResponse struct {
	ExitCode *int    `json:"ExitCode"`
	Stdout   *string `json:"Stdout"`
	Stderr   *string `json:"Stderr"`
}

// EncodeScript encodes script for ExecScriptRequest.ScriptContentEncoded.
func EncodeScript(script string) string {
	return base64.StdEncoding.EncodeToString([]byte(script))
}

func (r *ExecScriptRequest) BuildRequest() (*httpclient.Request, error) {
	if err := validation.Validate(r); err != nil {
		return nil, err
	}
	req := httpclient.NewRequest(http.MethodPost, "/internal/execScript")
	req.SetQuery("PrivateIP", r.PrivateIP)
	setRequestID(req, r.RequestID)
	if err := req.SetJSONBody(r); err != nil {
		return nil, err
	}
	return req, nil
}

func (r *ExecScriptRequest) DecodeResponse(resp *http.Response) (*openapi.Response[ExecScriptResponse], error) {
	return openapi.DecodeJSON[ExecScriptResponse](resp)
}

func setRequestID(req *httpclient.Request, id string) {
	if id != "" {
		req.SetHeader(HeaderRequestID, id)
	}
}
