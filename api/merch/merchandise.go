package merch

import (
	"net/http"
	"net/url"

	"github.com/kbukum/openapi-go/httpclient"
	"github.com/kbukum/openapi-go/model"
	"github.com/kbukum/openapi-go/openapi"
	"github.com/kbukum/openapi-go/validation"
)

const merchandisePath = "/internal/merchandises"

// MerchandiseListRequest pages through merchandise. Nil filters are not sent.
type MerchandiseListRequest struct {
	OutResourceID *string
	YSProduct     *string
	ChargeType    *model.ChargeType
	PublishState  *model.PublishState
	PageOffset    *int
	PageSize      *int
}

// MerchandiseListResponse is one page of merchandise.
type MerchandiseListResponse struct {
	Merchandises []model.Merchandise `json:"Merchandises"`
	Offset       int                 `json:"Offset"`
	Size         int                 `json:"Size"`
	Total        int                 `json:"Total"`
	NextMarker   int                 `json:"NextMarker"`
}

func (r *MerchandiseListRequest) BuildRequest() (*httpclient.Request, error) {
	req := httpclient.NewRequest(http.MethodGet, merchandisePath)
	httpclient.SetQueryPtr(req, "OutResourceId", r.OutResourceID)
	httpclient.SetQueryPtr(req, "YSProduct", r.YSProduct)
	httpclient.SetQueryPtr(req, "ChargeType", r.ChargeType)
	httpclient.SetQueryPtr(req, "PublishState", r.PublishState)
	httpclient.SetQueryPtr(req, "PageOffset", r.PageOffset)
	httpclient.SetQueryPtr(req, "PageSize", r.PageSize)
	return req, nil
}

func (r *MerchandiseListRequest) DecodeResponse(resp *http.Response) (*openapi.Response[MerchandiseListResponse], error) {
	return openapi.DecodeJSON[MerchandiseListResponse](resp)
}

// MerchandiseGetRequest reads one merchandise.
type MerchandiseGetRequest struct {
	MerchandiseID string `json:"MerchandiseId" validate:"notblank"`
}

func (r *MerchandiseGetRequest) BuildRequest() (*httpclient.Request, error) {
	if err := validation.Validate(r); err != nil {
		return nil, err
	}
	return httpclient.NewRequest(http.MethodGet, merchandisePath+"/"+url.PathEscape(r.MerchandiseID)), nil
}

func (r *MerchandiseGetRequest) DecodeResponse(resp *http.Response) (*openapi.Response[model.Merchandise], error) {
	return openapi.DecodeJSON[model.Merchandise](resp)
}

// MerchandiseCreateRequest creates a merchandise.
type MerchandiseCreateRequest struct {
	Name          string           `json:"Name" validate:"notblank"`
	ChargeType    model.ChargeType `json:"ChargeType" validate:"oneof=PrePaid PostPaid"`
	UnitPrice     *float64         `json:"UnitPrice,omitempty" validate:"omitempty,gte=0"`
	QuantityUnit  *string          `json:"QuantityUnit,omitempty"`
	Formula       *string          `json:"Formula,omitempty"`
	YSProduct     *string          `json:"YSProduct,omitempty"`
	OutResourceID *string          `json:"OutResourceId,omitempty"`
	Description   *string          `json:"Description,omitempty"`
}

// CreatedResponse carries the ID of a created resource.
type CreatedResponse struct {
	ID string `json:"Id"`
}

func (r *MerchandiseCreateRequest) BuildRequest() (*httpclient.Request, error) {
	return jsonRequest(http.MethodPost, merchandisePath, r)
}

func (r *MerchandiseCreateRequest) DecodeResponse(resp *http.Response) (*openapi.Response[CreatedResponse], error) {
	return openapi.DecodeJSON[CreatedResponse](resp)
}

// MerchandiseUpdateRequest changes the price, formula or description of a
// merchandise. Nil fields are left unchanged.
type MerchandiseUpdateRequest struct {
	MerchandiseID string   `json:"MerchandiseId" validate:"notblank"`
	UnitPrice     *float64 `json:"UnitPrice,omitempty" validate:"omitempty,gte=0"`
	Formula       *string  `json:"Formula,omitempty"`
	Description   *string  `json:"Description,omitempty"`
}

func (r *MerchandiseUpdateRequest) BuildRequest() (*httpclient.Request, error) {
	return jsonRequest(http.MethodPatch, merchandisePath+"/"+url.PathEscape(r.MerchandiseID), r)
}

func (r *MerchandiseUpdateRequest) DecodeResponse(resp *http.Response) (*openapi.Response[model.Merchandise], error) {
	return openapi.DecodeJSON[model.Merchandise](resp)
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
