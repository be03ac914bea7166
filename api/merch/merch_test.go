package merch_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kbukum/openapi-go/api/merch"
	"github.com/kbukum/openapi-go/errors"
	"github.com/kbukum/openapi-go/model"
	"github.com/kbukum/openapi-go/openapitest"
	"github.com/kbukum/openapi-go/util"
)

func newService(t *testing.T) (*openapitest.Server, *merch.Service) {
	t.Helper()
	srv := openapitest.Start(t)
	return srv, merch.NewService(srv.Client(t))
}

func decodeBody(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("bad body %q: %v", body, err)
	}
	return m
}

func TestListMerchandise_Query(t *testing.T) {
	srv, svc := newService(t)
	srv.Respond(http.MethodGet, "/internal/merchandises", merch.MerchandiseListResponse{
		Merchandises: []model.Merchandise{{ID: "m1", ChargeType: model.ChargeTypePostPaid}},
		Total:        1,
	})

	resp, err := svc.ListMerchandise(context.Background(), &merch.MerchandiseListRequest{
		ChargeType:   util.Ptr(model.ChargeTypePostPaid),
		PublishState: util.Ptr(model.PublishStateUp),
		PageSize:     util.Ptr(50),
	})
	if err != nil {
		t.Fatalf("ListMerchandise failed: %v", err)
	}
	if resp.Data.Total != 1 || resp.Data.Merchandises[0].ChargeType != model.ChargeTypePostPaid {
		t.Errorf("unexpected page %+v", resp.Data)
	}

	got, _ := srv.LastRequest()
	if got.Query.Get("ChargeType") != "PostPaid" || got.Query.Get("PublishState") != "Up" || got.Query.Get("PageSize") != "50" {
		t.Errorf("unexpected query %v", got.Query)
	}
	for _, k := range []string{"OutResourceId", "YSProduct", "PageOffset"} {
		if got.Query.Has(k) {
			t.Errorf("expected %s to be absent", k)
		}
	}
}

func TestGetAndUpdateMerchandise(t *testing.T) {
	srv, svc := newService(t)
	srv.Handle(http.MethodGet, "/internal/merchandises/:id", func(c *gin.Context) {
		openapitest.OK(c, model.Merchandise{ID: c.Param("id"), UnitPrice: 2})
	})
	srv.Handle(http.MethodPatch, "/internal/merchandises/:id", func(c *gin.Context) {
		var in struct{ UnitPrice float64 }
		if err := c.ShouldBindJSON(&in); err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		openapitest.OK(c, model.Merchandise{ID: c.Param("id"), UnitPrice: in.UnitPrice})
	})
	ctx := context.Background()

	got, err := svc.GetMerchandise(ctx, &merch.MerchandiseGetRequest{MerchandiseID: "m1"})
	if err != nil {
		t.Fatalf("GetMerchandise failed: %v", err)
	}
	if got.Data.ID != "m1" {
		t.Errorf("unexpected merchandise %+v", got.Data)
	}

	updated, err := svc.UpdateMerchandise(ctx, &merch.MerchandiseUpdateRequest{MerchandiseID: "m1", UnitPrice: util.Ptr(3.5)})
	if err != nil {
		t.Fatalf("UpdateMerchandise failed: %v", err)
	}
	if updated.Data.UnitPrice != 3.5 {
		t.Errorf("expected updated price, got %v", updated.Data.UnitPrice)
	}
	req, _ := srv.LastRequest()
	body := decodeBody(t, req.Body)
	if _, ok := body["Formula"]; ok {
		t.Error("expected unset Formula to be omitted")
	}
}

func TestCreateMerchandise_Validation(t *testing.T) {
	srv, svc := newService(t)
	srv.Respond(http.MethodPost, "/internal/merchandises", merch.CreatedResponse{ID: "m9"})
	ctx := context.Background()

	tests := []struct {
		name    string
		req     *merch.MerchandiseCreateRequest
		wantErr bool
	}{
		{"valid", &merch.MerchandiseCreateRequest{Name: "gpu-hour", ChargeType: model.ChargeTypePrePaid, UnitPrice: util.Ptr(9.9)}, false},
		{"missing name", &merch.MerchandiseCreateRequest{ChargeType: model.ChargeTypePrePaid}, true},
		{"unknown charge type", &merch.MerchandiseCreateRequest{Name: "x", ChargeType: model.ChargeTypeUnknown}, true},
		{"negative price", &merch.MerchandiseCreateRequest{Name: "x", ChargeType: model.ChargeTypePostPaid, UnitPrice: util.Ptr(-1.0)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.CreateMerchandise(ctx, tt.req)
			if tt.wantErr {
				if !errors.IsInvalidRequest(err) {
					t.Fatalf("expected INVALID_REQUEST, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateMerchandise failed: %v", err)
			}
			if resp.Data.ID != "m9" {
				t.Errorf("unexpected id %q", resp.Data.ID)
			}
		})
	}
	if n := len(srv.Requests()); n != 1 {
		t.Errorf("expected only the valid request to be sent, got %d", n)
	}
}

func TestCreateOrder_IdempotentID(t *testing.T) {
	srv, svc := newService(t)
	srv.Respond(http.MethodPost, "/internal/orders", merch.CreatedResponse{ID: "o1"})
	ctx := context.Background()

	req := &merch.OrderCreateRequest{MerchandiseID: "m1", AccountID: "acc", Quantity: util.Ptr(2.0)}
	if _, err := svc.CreateOrder(ctx, req); err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}
	if _, err := uuid.Parse(req.IdempotentID); err != nil {
		t.Fatalf("expected a generated UUID, got %q", req.IdempotentID)
	}
	first, _ := srv.LastRequest()

	// Resending the same request reuses the key.
	if _, err := svc.CreateOrder(ctx, req); err != nil {
		t.Fatalf("CreateOrder retry failed: %v", err)
	}
	second, _ := srv.LastRequest()
	if decodeBody(t, first.Body)["IdempotentId"] != decodeBody(t, second.Body)["IdempotentId"] {
		t.Error("expected the retry to carry the same IdempotentId")
	}

	explicit := &merch.OrderCreateRequest{IdempotentID: "fixed", MerchandiseID: "m1", AccountID: "acc"}
	if _, err := svc.CreateOrder(ctx, explicit); err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}
	third, _ := srv.LastRequest()
	if decodeBody(t, third.Body)["IdempotentId"] != "fixed" {
		t.Error("expected caller-supplied IdempotentId to be kept")
	}
}

func TestOrders(t *testing.T) {
	srv, svc := newService(t)
	srv.Respond(http.MethodGet, "/internal/orders", merch.OrderListResponse{Orders: []model.Order{{ID: "o1"}}, Total: 1})
	srv.Respond(http.MethodPatch, "/internal/orders/:id", merch.CreatedResponse{ID: "o1"})
	ctx := context.Background()

	list, err := svc.ListOrders(ctx, &merch.OrderListRequest{AccountID: util.Ptr("acc")})
	if err != nil {
		t.Fatalf("ListOrders failed: %v", err)
	}
	if len(list.Data.Orders) != 1 {
		t.Errorf("unexpected orders %+v", list.Data)
	}
	if got, _ := srv.LastRequest(); got.Query.Get("AccountId") != "acc" || got.Query.Has("ChargeType") {
		t.Errorf("unexpected query %v", got.Query)
	}

	_, err = svc.UpdatePostPaidOrder(ctx, &merch.PostPaidUpdateRequest{
		OrderID:    "o1",
		Quantity:   util.Ptr(1.5),
		IsFinished: util.Ptr(true),
	})
	if err != nil {
		t.Fatalf("UpdatePostPaidOrder failed: %v", err)
	}
	got, _ := srv.LastRequest()
	body := decodeBody(t, got.Body)
	if got.Path != "/internal/orders/o1" || body["IsFinished"] != true || body["IdempotentId"] == "" {
		t.Errorf("unexpected update %s %v", got.Path, body)
	}

	if _, err := svc.UpdatePostPaidOrder(ctx, &merch.PostPaidUpdateRequest{}); !errors.IsInvalidRequest(err) {
		t.Errorf("expected INVALID_REQUEST without an order ID, got %v", err)
	}
}

func TestSpecialPrices(t *testing.T) {
	srv, svc := newService(t)
	srv.Respond(http.MethodGet, "/internal/specialprices", merch.SpecialPriceListResponse{
		SpecialPrices: []model.SpecialPrice{{MerchandiseID: "m1", AccountID: "acc", UnitPrice: 0.5}},
	})
	srv.Respond(http.MethodPost, "/internal/specialprices", merch.Empty{})
	srv.Respond(http.MethodPut, "/internal/specialprices", merch.Empty{})
	srv.Respond(http.MethodDelete, "/internal/specialprices", merch.Empty{})
	ctx := context.Background()

	list, err := svc.ListSpecialPrices(ctx, &merch.SpecialPriceListRequest{MerchandiseID: util.Ptr("m1")})
	if err != nil {
		t.Fatalf("ListSpecialPrices failed: %v", err)
	}
	if len(list.Data.SpecialPrices) != 1 || list.Data.SpecialPrices[0].UnitPrice != 0.5 {
		t.Errorf("unexpected prices %+v", list.Data)
	}

	if _, err := svc.CreateSpecialPrice(ctx, &merch.SpecialPriceCreateRequest{MerchandiseID: "m1", AccountID: "acc", UnitPrice: 0.5}); err != nil {
		t.Fatalf("CreateSpecialPrice failed: %v", err)
	}
	if got, _ := srv.LastRequest(); decodeBody(t, got.Body)["UnitPrice"] != 0.5 {
		t.Errorf("unexpected create body %q", got.Body)
	}

	if _, err := svc.UpdateSpecialPrice(ctx, &merch.SpecialPriceUpdateRequest{MerchandiseID: "m1", AccountID: "acc", UnitPrice: 0.4}); err != nil {
		t.Fatalf("UpdateSpecialPrice failed: %v", err)
	}
	got, _ := srv.LastRequest()
	if got.Method != http.MethodPut || got.Query.Get("merchandiseId") != "m1" || got.Query.Get("accountId") != "acc" {
		t.Errorf("unexpected update request %s %v", got.Method, got.Query)
	}

	if _, err := svc.DeleteSpecialPrice(ctx, &merch.SpecialPriceDeleteRequest{MerchandiseID: "m1", AccountID: "acc"}); err != nil {
		t.Fatalf("DeleteSpecialPrice failed: %v", err)
	}
	got, _ = srv.LastRequest()
	if got.Method != http.MethodDelete || got.Query.Get("MerchandiseId") != "m1" || len(got.Body) != 0 {
		t.Errorf("unexpected delete request %s %v %q", got.Method, got.Query, got.Body)
	}
}
