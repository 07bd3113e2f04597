package domain

// Ключи метаданных заказа, которые понимает сервис.
const (
	MetaKeyStripeSource   = "_stripe_source_id"
	MetaKeyStripeCustomer = "_stripe_customer_id"
	MetaKeyDLocalPayment  = "_dlocal_payment_id"
)

// MetaEntry — строка EAV-таблицы метаданных заказа (order_id, key, value).
type MetaEntry struct {
	ID      int64  `json:"id"`
	OrderID int64  `json:"order_id"`
	Key     string `json:"meta_key"`
	Value   string `json:"meta_value"`
}

// OrderPaymentMeta — заказ и платёжные метаданные, собранные одной выборкой.
// Пустая строка означает, что записи с таким ключом нет.
type OrderPaymentMeta struct {
	Order
	StripeSourceID   string `json:"stripe_source_id,omitempty"`
	StripeCustomerID string `json:"stripe_customer_id,omitempty"`
	DLocalPaymentID  string `json:"dlocal_payment_id,omitempty"`
}
