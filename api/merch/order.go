package merch

import (
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/kbukum/openapi-go/httpclient"
	"github.com/kbukum/openapi-go/model"
	"github.com/kbukum/openapi-go/openapi"
)

const orderPath = "/internal/orders"

// NewIdempotentID returns a fresh idempotency key.
func NewIdempotentID() string {
	return uuid.NewString()
}

// OrderCreateRequest places an order.
type OrderCreateRequest struct {
	IdempotentID   string   `json:"IdempotentId"`
	MerchandiseID  string   `json:"MerchandiseId" validate:"notblank"`
	AccountID      string   `json:"AccountId" validate:"notblank"`
	PayByAccountID *string  `json:"PayByAccountId,omitempty"`
	ResourceID     *string  `json:"ResourceId,omitempty"`
	Quantity       *float64 `json:"Quantity,omitempty" validate:"omitempty,gt=0"`
	Comment        *string  `json:"Comment,omitempty"`
}

// BuildRequest fills in IdempotentID when empty. The generated key stays on
// r, so sending the same request again is deduplicated by the server.
func (r *OrderCreateRequest) BuildRequest() (*httpclient.Request, error) {
	if r.IdempotentID == "" {
		r.IdempotentID = NewIdempotentID()
	}
	return jsonRequest(http.MethodPost, orderPath, r)
}

func (r *OrderCreateRequest) DecodeResponse(resp *http.Response) (*openapi.Response[CreatedResponse], error) {
	return openapi.DecodeJSON[CreatedResponse](resp)
}

// OrderListRequest pages through orders. Nil filters are not sent.
type OrderListRequest struct {
	ChargeType    *model.ChargeType
	AccountID     *string
	MerchandiseID *string
	PageOffset    *int
	PageSize      *int
}

// OrderListResponse is one page of orders.
type OrderListResponse struct {
	Orders     []model.Order `json:"Orders"`
	Offset     int           `json:"Offset"`
	Size       int           `json:"Size"`
	Total      int           `json:"Total"`
	NextMarker int           `json:"NextMarker"`
}

func (r *OrderListRequest) BuildRequest() (*httpclient.Request, error) {
	req := httpclient.NewRequest(http.MethodGet, orderPath)
	httpclient.SetQueryPtr(req, "ChargeType", r.ChargeType)
	httpclient.SetQueryPtr(req, "AccountId", r.AccountID)
	httpclient.SetQueryPtr(req, "MerchandiseId", r.MerchandiseID)
	httpclient.SetQueryPtr(req, "PageOffset", r.PageOffset)
	httpclient.SetQueryPtr(req, "PageSize", r.PageSize)
	return req, nil
}

func (r *OrderListRequest) DecodeResponse(resp *http.Response) (*openapi.Response[OrderListResponse], error) {
	return openapi.DecodeJSON[OrderListResponse](resp)
}

// PostPaidUpdateRequest reports usage against a post-paid order.
// StartTime and EndTime are RFC 3339 timestamps.
type PostPaidUpdateRequest struct {
	OrderID      string   `json:"OrderId" validate:"notblank"`
	IdempotentID string   `json:"IdempotentId"`
	Quantity     *float64 `json:"Quantity,omitempty" validate:"omitempty,gte=0"`
	IsFirst      *bool    `json:"IsFirst,omitempty"`
	IsFinished   *bool    `json:"IsFinished,omitempty"`
	StartTime    *string  `json:"StartTime,omitempty"`
	EndTime      *string  `json:"EndTime,omitempty"`
}

// BuildRequest fills in IdempotentID when empty, as OrderCreateRequest does.
func (r *PostPaidUpdateRequest) BuildRequest() (*httpclient.Request, error) {
	if r.IdempotentID == "" {
		r.IdempotentID = NewIdempotentID()
	}
	return jsonRequest(http.MethodPatch, orderPath+"/"+url.PathEscape(r.OrderID), r)
}

func (r *PostPaidUpdateRequest) DecodeResponse(resp *http.Response) (*openapi.Response[CreatedResponse], error) {
	return openapi.DecodeJSON[CreatedResponse](resp)
}
