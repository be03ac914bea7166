package merch

import (
	"context"

	"github.com/kbukum/openapi-go/model"
	"github.com/kbukum/openapi-go/openapi"
)

// Service sends merchandise, order and special price requests to the API
// endpoint.
type Service struct {
	client *openapi.Client
}

// NewService returns a Service using c.
func NewService(c *openapi.Client) *Service {
	return &Service{client: c.WithEndpointType(openapi.EndpointAPI)}
}

// ListMerchandise reads one page of merchandise.
func (s *Service) ListMerchandise(ctx context.Context, req *MerchandiseListRequest) (*openapi.Response[MerchandiseListResponse], error) {
	return openapi.Send[*openapi.Response[MerchandiseListResponse]](ctx, s.client, req)
}

// GetMerchandise reads one merchandise.
func (s *Service) GetMerchandise(ctx context.Context, req *MerchandiseGetRequest) (*openapi.Response[model.Merchandise], error) {
	return openapi.Send[*openapi.Response[model.Merchandise]](ctx, s.client, req)
}

// CreateMerchandise creates a merchandise.
func (s *Service) CreateMerchandise(ctx context.Context, req *MerchandiseCreateRequest) (*openapi.Response[CreatedResponse], error) {
	return openapi.Send[*openapi.Response[CreatedResponse]](ctx, s.client, req)
}

// UpdateMerchandise patches a merchandise.
func (s *Service) UpdateMerchandise(ctx context.Context, req *MerchandiseUpdateRequest) (*openapi.Response[model.Merchandise], error) {
	return openapi.Send[*openapi.Response[model.Merchandise]](ctx, s.client, req)
}

// CreateOrder places an order.
func (s *Service) CreateOrder(ctx context.Context, req *OrderCreateRequest) (*openapi.Response[CreatedResponse], error) {
	return openapi.Send[*openapi.Response[CreatedResponse]](ctx, s.client, req)
}

// ListOrders reads one page of orders.
func (s *Service) ListOrders(ctx context.Context, req *OrderListRequest) (*openapi.Response[OrderListResponse], error) {
	return openapi.Send[*openapi.Response[OrderListResponse]](ctx, s.client, req)
}

// UpdatePostPaidOrder reports usage against a post-paid order.
func (s *Service) UpdatePostPaidOrder(ctx context.Context, req *PostPaidUpdateRequest) (*openapi.Response[CreatedResponse], error) {
	return openapi.Send[*openapi.Response[CreatedResponse]](ctx, s.client, req)
}

// ListSpecialPrices reads one page of special prices.
func (s *Service) ListSpecialPrices(ctx context.Context, req *SpecialPriceListRequest) (*openapi.Response[SpecialPriceListResponse], error) {
	return openapi.Send[*openapi.Response[SpecialPriceListResponse]](ctx, s.client, req)
}

// CreateSpecialPrice sets a special price.
func (s *Service) CreateSpecialPrice(ctx context.Context, req *SpecialPriceCreateRequest) (*openapi.Response[Empty], error) {
	return openapi.Send[*openapi.Response[Empty]](ctx, s.client, req)
}

// UpdateSpecialPrice replaces a special price.
func (s *Service) UpdateSpecialPrice(ctx context.Context, req *SpecialPriceUpdateRequest) (*openapi.Response[Empty], error) {
	return openapi.Send[*openapi.Response[Empty]](ctx, s.client, req)
}

// DeleteSpecialPrice removes a special price.
func (s *Service) DeleteSpecialPrice(ctx context.Context, req *SpecialPriceDeleteRequest) (*openapi.Response[Empty], error) {
	return openapi.Send[*openapi.Response[Empty]](ctx, s.client, req)
}
