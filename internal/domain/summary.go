package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CustomerOrderSummary — агрегат по заказам клиента, считается на лету и нигде не хранится.
// TotalSpent заполняется только если все заказы в одной валюте: суммы разных валют не складываем.
type CustomerOrderSummary struct {
	Email                   string                     `json:"email"`
	TotalOrders             int                        `json:"total_orders"`
	OrdersWithPaymentRef    int                        `json:"orders_with_payment_ref"`
	OrdersWithoutPaymentRef int                        `json:"orders_without_payment_ref"`
	Currency                string                     `json:"currency,omitempty"`
	CurrencyMixed           bool                       `json:"currency_mixed"`
	TotalSpent              *decimal.Decimal           `json:"total_spent,omitempty"`
	TotalsByCurrency        map[string]decimal.Decimal `json:"totals_by_currency"`
	FirstOrderAt            *time.Time                 `json:"first_order_at,omitempty"`
	LastOrderAt             *time.Time                 `json:"last_order_at,omitempty"`
}

// BuildCustomerSummary — собирает сводку из полного списка заказов клиента и строк join'а
// с платёжной ссылкой (по ним считаем количество заказов с ключом).
func BuildCustomerSummary(email string, orders []Order, withRef []OrderWithPaymentRef) CustomerOrderSummary {
	summary := CustomerOrderSummary{
		Email:            email,
		TotalOrders:      len(orders),
		TotalsByCurrency: make(map[string]decimal.Decimal),
	}

	for i := range orders {
		o := &orders[i]
		cur := strings.ToUpper(strings.TrimSpace(o.Currency))
		summary.TotalsByCurrency[cur] = summary.TotalsByCurrency[cur].Add(o.Total)

		// дата в магазине может быть не заполнена
		created := o.DateCreated
		if created.IsZero() {
			continue
		}
		if summary.FirstOrderAt == nil || created.Before(*summary.FirstOrderAt) {
			summary.FirstOrderAt = &created
		}
		if summary.LastOrderAt == nil || created.After(*summary.LastOrderAt) {
			summary.LastOrderAt = &created
		}
	}

	switch len(summary.TotalsByCurrency) {
	case 0:
	case 1:
		for cur, total := range summary.TotalsByCurrency {
			summary.Currency = cur
			t := total
			summary.TotalSpent = &t
		}
	default:
		summary.CurrencyMixed = true
	}

	seen := make(map[int64]struct{}, len(withRef))
	for i := range withRef {
		seen[withRef[i].ID] = struct{}{}
	}
	summary.OrdersWithPaymentRef = len(seen)
	summary.OrdersWithoutPaymentRef = summary.TotalOrders - summary.OrdersWithPaymentRef
	if summary.OrdersWithoutPaymentRef < 0 {
		summary.OrdersWithoutPaymentRef = 0
	}
	return summary
}

// Currencies — отсортированный список валют сводки.
func (s *CustomerOrderSummary) Currencies() []string {
	out := make([]string, 0, len(s.TotalsByCurrency))
	for cur := range s.TotalsByCurrency {
		out = append(out, cur)
	}
	sort.Strings(out)
	return out
}
