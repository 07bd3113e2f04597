package ports

import (
	"context"

	"github.com/Gunvolt24/wc_paymeta/internal/domain"
)

// PaymentRefUpdater — движок обновления платёжной ссылки (вызывается транспортами).
type PaymentRefUpdater interface {
	UpdatePaymentReference(ctx context.Context, email, reference string) domain.UpdateResult
}

// OrderReportService — отчётные операции только для чтения.
type OrderReportService interface {
	GetOrdersByEmail(ctx context.Context, email string) domain.Result[[]domain.Order]
	GetOrdersWithPaymentRef(ctx context.Context, email string) domain.Result[[]domain.OrderWithPaymentRef]
	GetCustomerOrdersSummary(ctx context.Context, email string) domain.Result[domain.CustomerOrderSummary]
	GetCustomerPaymentMethods(ctx context.Context, email string) domain.Result[domain.PaymentMethodsReport]
	GetOrderMeta(ctx context.Context, orderID int64, key string) domain.Result[[]domain.MetaEntry]
	TestConnection(ctx context.Context) domain.Result[domain.ConnectionInfo]
}
