package merch

import (
	"net/http"

	"github.com/kbukum/openapi-go/httpclient"
	"github.com/kbukum/openapi-go/model"
	"github.com/kbukum/openapi-go/openapi"
	"github.com/kbukum/openapi-go/validation"
)

const specialPricePath = "/internal/specialprices"

// Empty is the payload of operations that return no data.
type Empty struct{}

// SpecialPriceListRequest pages through special prices.
type SpecialPriceListRequest struct {
	MerchandiseID *string
	AccountID     *string
	PageOffset    *int
	PageSize      *int
}

// SpecialPriceListResponse is one page of special prices.
type SpecialPriceListResponse struct {
	SpecialPrices []model.SpecialPrice `json:"SpecialPrices"`
	Offset        int                  `json:"Offset"`
	Size          int                  `json:"Size"`
	Total         int                  `json:"Total"`
	NextMarker    int                  `json:"NextMarker"`
}

func (r *SpecialPriceListRequest) BuildRequest() (*httpclient.Request, error) {
	req := httpclient.NewRequest(http.MethodGet, specialPricePath)
	httpclient.SetQueryPtr(req, "MerchandiseId", r.MerchandiseID)
	httpclient.SetQueryPtr(req, "AccountId", r.AccountID)
	httpclient.SetQueryPtr(req, "PageOffset", r.PageOffset)
	httpclient.SetQueryPtr(req, "PageSize", r.PageSize)
	return req, nil
}

func (r *SpecialPriceListRequest) DecodeResponse(resp *http.Response) (*openapi.Response[SpecialPriceListResponse], error) {
	return openapi.DecodeJSON[SpecialPriceListResponse](resp)
}

// SpecialPriceCreateRequest sets a special price for an account.
type SpecialPriceCreateRequest struct {
	MerchandiseID string  `json:"MerchandiseId" validate:"notblank"`
	AccountID     string  `json:"AccountId" validate:"notblank"`
	UnitPrice     float64 `json:"UnitPrice" validate:"gte=0"`
}

func (r *SpecialPriceCreateRequest) BuildRequest() (*httpclient.Request, error) {
	return jsonRequest(http.MethodPost, specialPricePath, r)
}

func (r *SpecialPriceCreateRequest) DecodeResponse(resp *http.Response) (*openapi.Response[Empty], error) {
	return openapi.DecodeJSON[Empty](resp)
}

// SpecialPriceUpdateRequest replaces an existing special price. The
// merchandise and account are sent both in the query and in the body.
type SpecialPriceUpdateRequest struct {
	MerchandiseID string  `json:"MerchandiseId" validate:"notblank"`
	AccountID     string  `json:"AccountId" validate:"notblank"`
	UnitPrice     float64 `json:"UnitPrice" validate:"gte=0"`
}

func (r *SpecialPriceUpdateRequest) BuildRequest() (*httpclient.Request, error) {
	req, err := jsonRequest(http.MethodPut, specialPricePath, r)
	if err != nil {
		return nil, err
	}
	req.SetQuery("merchandiseId", r.MerchandiseID)
	req.SetQuery("accountId", r.AccountID)
	return req, nil
}

func (r *SpecialPriceUpdateRequest) DecodeResponse(resp *http.Response) (*openapi.Response[Empty], error) {
	return openapi.DecodeJSON[Empty](resp)
}

// SpecialPriceDeleteRequest removes a special price.
type SpecialPriceDeleteRequest struct {
	MerchandiseID string `json:"MerchandiseId" validate:"notblank"`
	AccountID     string `json:"AccountId" validate:"notblank"`
}

func (r *SpecialPriceDeleteRequest) BuildRequest() (*httpclient.Request, error) {
	if err := validation.Validate(r); err != nil {
		return nil, err
	}
	req := httpclient.NewRequest(http.MethodDelete, specialPricePath)
	req.SetQuery("MerchandiseId", r.MerchandiseID)
	req.SetQuery("AccountId", r.AccountID)
	return req, nil
}

func (r *SpecialPriceDeleteRequest) DecodeResponse(resp *http.Response) (*openapi.Response[Empty], error) {
	return openapi.DecodeJSON[Empty](resp)
}
