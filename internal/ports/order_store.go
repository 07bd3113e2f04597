package ports

import (
	"context"

	"github.com/Gunvolt24/wc_paymeta/internal/domain"
)

// OrderStore — чтение заказов и метаданных из внешней БД магазина (только чтение).
// Ошибки связности оборачиваются в domain.ErrConnection.
type OrderStore interface {
	// OrdersByEmail — все заказы клиента (email без учёта регистра), от новых к старым.
	OrdersByEmail(ctx context.Context, email string) ([]domain.Order, error)

	// OrdersWithMeta — по строке на каждую пару (заказ, значение) с точным совпадением ключа.
	OrdersWithMeta(ctx context.Context, email, key string) ([]domain.OrderWithPaymentRef, error)

	// OrderPaymentMeta — заказы клиента вместе с платёжными метаданными.
	OrderPaymentMeta(ctx context.Context, email string) ([]domain.OrderPaymentMeta, error)

	// OrderMeta — метаданные заказа (key == "" — все ключи). Нет заказа — domain.ErrOrderNotFound.
	OrderMeta(ctx context.Context, orderID int64, key string) ([]domain.MetaEntry, error)
}
