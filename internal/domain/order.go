package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order — заказ WooCommerce в том виде, в каком мы читаем его из внешней БД.
// Жизненным циклом заказа владеет магазин, сервис его только читает.
type Order struct {
	ID                 int64           `json:"id"`
	Status             string          `json:"status"`
	Currency           string          `json:"currency"`
	Total              decimal.Decimal `json:"total"`
	BillingEmail       string          `json:"billing_email"`
	DateCreated        time.Time       `json:"date_created_gmt"`
	PaymentMethod      string          `json:"payment_method,omitempty"`
	PaymentMethodTitle string          `json:"payment_method_title,omitempty"`
}

// OrderWithPaymentRef — строка join'а заказ × мета-значение платёжной ссылки.
// Если у заказа несколько записей с ключом, строк тоже будет несколько.
type OrderWithPaymentRef struct {
	Order
	PaymentRef string `json:"payment_ref"`
}
