package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Gunvolt24/wc_paymeta/internal/domain"
	"github.com/Gunvolt24/wc_paymeta/internal/ports"
)

// Проверка, что OrderQueryService удовлетворяет интерфейсу OrderReportService.
var _ ports.OrderReportService = (*OrderQueryService)(nil)

// OrderQueryService — отчётные операции над заказами клиента (только чтение, без побочных эффектов).
type OrderQueryService struct {
	store  ports.OrderStore
	health ports.StoreHealth
	log    ports.Logger
	masker ports.EmailMasker
	refKey string
}

// NewOrderQueryService — DI-конструктор.
func NewOrderQueryService(
	store ports.OrderStore,
	health ports.StoreHealth,
	log ports.Logger,
	masker ports.EmailMasker,
	refKey string,
) *OrderQueryService {
	if refKey == "" {
		refKey = domain.MetaKeyStripeSource
	}
	return &OrderQueryService{store: store, health: health, log: log, masker: masker, refKey: refKey}
}

// GetOrdersByEmail — все заказы клиента. Пустой email или нет заказов — успешный пустой результат.
func (s *OrderQueryService) GetOrdersByEmail(ctx context.Context, email string) domain.Result[[]domain.Order] {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.OK("empty email, no orders", []domain.Order{})
	}

	orders, err := s.store.OrdersByEmail(ctx, email)
	if err != nil {
		s.log.Errorw(ctx, "orders by email failed", "email", s.mask(email), "error", err)
		return domain.Fail[[]domain.Order](domain.ErrorTypeConnection, "failed to load orders", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return domain.OK(fmt.Sprintf("found %d orders", len(orders)), orders)
}

// GetOrdersWithPaymentRef — строки (заказ, значение платёжной ссылки) по клиенту.
func (s *OrderQueryService) GetOrdersWithPaymentRef(ctx context.Context, email string) domain.Result[[]domain.OrderWithPaymentRef] {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.OK("empty email, no orders", []domain.OrderWithPaymentRef{})
	}

	rows, err := s.store.OrdersWithMeta(ctx, email, s.refKey)
	if err != nil {
		s.log.Errorw(ctx, "orders with payment ref failed", "email", s.mask(email), "error", err)
		return domain.Fail[[]domain.OrderWithPaymentRef](domain.ErrorTypeConnection, "failed to load orders with payment reference", err)
	}
	if rows == nil {
		rows = []domain.OrderWithPaymentRef{}
	}
	return domain.OK(fmt.Sprintf("found %d payment reference entries", len(rows)), rows)
}

// GetCustomerOrdersSummary — сводка по всем заказам клиента.
func (s *OrderQueryService) GetCustomerOrdersSummary(ctx context.Context, email string) domain.Result[domain.CustomerOrderSummary] {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.OK("empty email, no orders", domain.BuildCustomerSummary(email, nil, nil))
	}

	orders, err := s.store.OrdersByEmail(ctx, email)
	if err != nil {
		s.log.Errorw(ctx, "summary orders failed", "email", s.mask(email), "error", err)
		return domain.Fail[domain.CustomerOrderSummary](domain.ErrorTypeConnection, "failed to load orders", err)
	}

	var withRef []domain.OrderWithPaymentRef
	if len(orders) > 0 {
		withRef, err = s.store.OrdersWithMeta(ctx, email, s.refKey)
		if err != nil {
			s.log.Errorw(ctx, "summary payment refs failed", "email", s.mask(email), "error", err)
			return domain.Fail[domain.CustomerOrderSummary](domain.ErrorTypeConnection, "failed to load payment references", err)
		}
	}

	summary := domain.BuildCustomerSummary(email, orders, withRef)
	msg := fmt.Sprintf("summary of %d orders", summary.TotalOrders)
	if summary.CurrencyMixed {
		msg += " in mixed currencies (" + strings.Join(summary.Currencies(), ", ") + ")"
	}
	return domain.OK(msg, summary)
}

// GetCustomerPaymentMethods — классификация заказов клиента по платёжным системам.
func (s *OrderQueryService) GetCustomerPaymentMethods(ctx context.Context, email string) domain.Result[domain.PaymentMethodsReport] {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.OK("empty email, no orders", domain.ClassifyPaymentMethods(email, nil))
	}

	orders, err := s.store.OrderPaymentMeta(ctx, email)
	if err != nil {
		s.log.Errorw(ctx, "payment methods failed", "email", s.mask(email), "error", err)
		return domain.Fail[domain.PaymentMethodsReport](domain.ErrorTypeConnection, "failed to load payment metadata", err)
	}

	report := domain.ClassifyPaymentMethods(email, orders)
	return domain.OK(fmt.Sprintf("primary payment method: %s", report.Primary), report)
}

// GetOrderMeta — метаданные одного заказа (key == "" — все ключи).
func (s *OrderQueryService) GetOrderMeta(ctx context.Context, orderID int64, key string) domain.Result[[]domain.MetaEntry] {
	if orderID <= 0 {
		return domain.Fail[[]domain.MetaEntry](domain.ErrorTypeValidation, "order id must be positive",
			fmt.Errorf("%w: order id %d", domain.ErrInvalidInput, orderID))
	}

	entries, err := s.store.OrderMeta(ctx, orderID, strings.TrimSpace(key))
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		return domain.Fail[[]domain.MetaEntry](domain.ErrorTypeNotFound, "order not found", err)
	case err != nil:
		s.log.Errorw(ctx, "order meta failed", "order_id", orderID, "error", err)
		return domain.Fail[[]domain.MetaEntry](domain.ErrorTypeConnection, "failed to load order metadata", err)
	}
	if entries == nil {
		entries = []domain.MetaEntry{}
	}
	return domain.OK(fmt.Sprintf("found %d metadata entries", len(entries)), entries)
}

// TestConnection — round-trip до БД; не бросает ошибок, результат всегда в конверте.
func (s *OrderQueryService) TestConnection(ctx context.Context) domain.Result[domain.ConnectionInfo] {
	info, err := s.health.Ping(ctx)
	if err != nil {
		s.log.Warnw(ctx, "store connection test failed", "host", info.Host, "error", err)
		res := domain.Fail[domain.ConnectionInfo](domain.ErrorTypeConnection, "store is unreachable", err)
		res.Data = info
		return res
	}
	return domain.OK("store connection ok", info)
}

func (s *OrderQueryService) mask(email string) string {
	if s.masker == nil {
		return email
	}
	return s.masker.Email(email)
}
