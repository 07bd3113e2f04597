package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Gunvolt24/wc_paymeta/internal/domain"
	"github.com/Gunvolt24/wc_paymeta/internal/ports/mocks"
	"github.com/Gunvolt24/wc_paymeta/internal/usecase"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

func newQueryService(ctrl *gomock.Controller) (*usecase.OrderQueryService, *mocks.MockOrderStore, *mocks.MockStoreHealth) {
	store := mocks.NewMockOrderStore(ctrl)
	health := mocks.NewMockStoreHealth(ctrl)
	return usecase.NewOrderQueryService(store, health, noopLogger{}, nil, refKey), store, health
}

func order(id int64, total, currency string, created time.Time) domain.Order {
	return domain.Order{ID: id, BillingEmail: email, Total: decimal.RequireFromString(total), Currency: currency, DateCreated: created}
}

func TestGetOrdersByEmail_EmptyEmail_NoStoreAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, store, _ := newQueryService(ctrl)
	store.EXPECT().OrdersByEmail(gomock.Any(), gomock.Any()).Times(0)

	res := svc.GetOrdersByEmail(context.Background(), "  ")
	if !res.Success || res.Data == nil || len(res.Data) != 0 {
		t.Fatalf("want successful empty result, got %+v", res)
	}
}

func TestGetOrdersByEmail_NoMatches_EmptySuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, store, _ := newQueryService(ctrl)
	store.EXPECT().OrdersByEmail(gomock.Any(), email).Return(nil, nil)

	res := svc.GetOrdersByEmail(context.Background(), email)
	if !res.Success || res.Data == nil || len(res.Data) != 0 {
		t.Fatalf("want successful empty result, got %+v", res)
	}
}

func TestGetOrdersByEmail_StoreError_Connection(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, store, _ := newQueryService(ctrl)
	store.EXPECT().OrdersByEmail(gomock.Any(), email).Return(nil, fmt.Errorf("%w: timeout", domain.ErrConnection))

	res := svc.GetOrdersByEmail(context.Background(), email)
	if res.Success || res.ErrorType != domain.ErrorTypeConnection || res.Error == "" {
		t.Fatalf("want connection failure, got %+v", res)
	}
}

func TestGetOrdersWithPaymentRef_UsesReservedKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, store, _ := newQueryService(ctrl)

	rows := []domain.OrderWithPaymentRef{
		{Order: domain.Order{ID: 1}, PaymentRef: "src_a"},
		{Order: domain.Order{ID: 1}, PaymentRef: "src_b"},
	}
	store.EXPECT().OrdersWithMeta(gomock.Any(), email, refKey).Return(rows, nil)

	res := svc.GetOrdersWithPaymentRef(context.Background(), email)
	if !res.Success || len(res.Data) != 2 {
		t.Fatalf("want two rows, got %+v", res)
	}
}

func TestGetCustomerOrdersSummary_SingleCurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, store, _ := newQueryService(ctrl)

	t1 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	t3 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	store.EXPECT().OrdersByEmail(gomock.Any(), email).Return([]domain.Order{
		order(2, "20", "usd", t2), order(3, "15", "USD", t3), order(1, "10", "USD", t1),
	}, nil)
	store.EXPECT().OrdersWithMeta(gomock.Any(), email, refKey).Return([]domain.OrderWithPaymentRef{
		{Order: domain.Order{ID: 2}}, {Order: domain.Order{ID: 2}},
	}, nil)

	res := svc.GetCustomerOrdersSummary(context.Background(), email)
	if !res.Success {
		t.Fatalf("unexpected failure: %+v", res)
	}
	s := res.Data
	if s.TotalOrders != 3 || s.CurrencyMixed || s.TotalSpent == nil || !s.TotalSpent.Equal(decimal.NewFromInt(45)) {
		t.Fatalf("unexpected totals: %+v", s)
	}
	if !s.FirstOrderAt.Equal(t1) || !s.LastOrderAt.Equal(t2) {
		t.Fatalf("unexpected range: %v..%v", s.FirstOrderAt, s.LastOrderAt)
	}
	if s.OrdersWithPaymentRef != 1 || s.OrdersWithoutPaymentRef != 2 {
		t.Fatalf("unexpected ref counts: %+v", s)
	}
}

func TestGetCustomerOrdersSummary_MixedCurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, store, _ := newQueryService(ctrl)

	now := time.Now().UTC()
	store.EXPECT().OrdersByEmail(gomock.Any(), email).Return([]domain.Order{
		order(1, "10", "USD", now), order(2, "20", "EUR", now),
	}, nil)
	store.EXPECT().OrdersWithMeta(gomock.Any(), email, refKey).Return(nil, nil)

	res := svc.GetCustomerOrdersSummary(context.Background(), email)
	if !res.Success || !res.Data.CurrencyMixed || res.Data.TotalSpent != nil {
		t.Fatalf("mixed currencies must not be summed: %+v", res.Data)
	}
	if res.Message != "summary of 2 orders in mixed currencies (EUR, USD)" {
		t.Fatalf("unexpected message: %q", res.Message)
	}
}

func TestGetCustomerOrdersSummary_NoOrders_SkipsMetaQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, store, _ := newQueryService(ctrl)

	store.EXPECT().OrdersByEmail(gomock.Any(), email).Return(nil, nil)
	store.EXPECT().OrdersWithMeta(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	res := svc.GetCustomerOrdersSummary(context.Background(), email)
	if !res.Success || res.Data.TotalOrders != 0 || res.Data.FirstOrderAt != nil {
		t.Fatalf("unexpected summary: %+v", res)
	}
}

func TestGetCustomerPaymentMethods(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, store, _ := newQueryService(ctrl)

	store.EXPECT().OrderPaymentMeta(gomock.Any(), email).Return([]domain.OrderPaymentMeta{
		{Order: domain.Order{ID: 3, PaymentMethod: "dlocal"}},
		{Order: domain.Order{ID: 2}, StripeSourceID: "src_1"},
	}, nil)

	res := svc.GetCustomerPaymentMethods(context.Background(), email)
	if !res.Success || res.Data.Primary != domain.PaymentClassDLocal {
		t.Fatalf("unexpected report: %+v", res)
	}
	if !res.Data.Methods[domain.PaymentClassStripe] || res.Data.Counts["total"] != 2 {
		t.Fatalf("unexpected classes: %+v", res.Data)
	}
}

func TestGetOrderMeta(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, store, _ := newQueryService(ctrl)

	store.EXPECT().OrderMeta(gomock.Any(), int64(5), refKey).
		Return([]domain.MetaEntry{{ID: 1, OrderID: 5, Key: refKey, Value: "src"}}, nil)
	store.EXPECT().OrderMeta(gomock.Any(), int64(6), "").
		Return(nil, fmt.Errorf("order 6: %w", domain.ErrOrderNotFound))

	if res := svc.GetOrderMeta(context.Background(), 5, " "+refKey); !res.Success || len(res.Data) != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res := svc.GetOrderMeta(context.Background(), 6, ""); res.ErrorType != domain.ErrorTypeNotFound {
		t.Fatalf("want not_found, got %+v", res)
	}
	if res := svc.GetOrderMeta(context.Background(), 0, ""); res.ErrorType != domain.ErrorTypeValidation {
		t.Fatalf("want validation, got %+v", res)
	}
}

func TestTestConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, health := newQueryService(ctrl)

	gomock.InOrder(
		health.EXPECT().Ping(gomock.Any()).Return(domain.ConnectionInfo{Host: "db", ServerVersion: "PostgreSQL 16"}, nil),
		health.EXPECT().Ping(gomock.Any()).Return(domain.ConnectionInfo{Host: "db"}, fmt.Errorf("%w: refused", domain.ErrConnection)),
	)

	if res := svc.TestConnection(context.Background()); !res.Success || res.Data.ServerVersion == "" {
		t.Fatalf("want reachable, got %+v", res)
	}
	res := svc.TestConnection(context.Background())
	if res.Success || res.ErrorType != domain.ErrorTypeConnection || res.Data.Host != "db" {
		t.Fatalf("want unreachable with diagnostics, got %+v", res)
	}
}
