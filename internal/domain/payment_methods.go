package domain

import "strings"

// Классы платёжных методов.
const (
	PaymentClassStripe  = "stripe"
	PaymentClassDLocal  = "dlocal"
	PaymentClassOther   = "other"
	PaymentClassUnknown = "unknown"
)

// PaymentMethodsReport — какими платёжными методами пользовался клиент (по заказам).
type PaymentMethodsReport struct {
	Email         string             `json:"email"`
	Primary       string             `json:"primary_payment_method"`
	Methods       map[string]bool    `json:"payment_methods"`
	Counts        map[string]int     `json:"orders_count"`
	OrderIDs      map[string][]int64 `json:"order_ids"`
	LatestOrderID int64              `json:"latest_order_id,omitempty"`
}

// classify — класс одного заказа: сначала stripe, затем dlocal, иначе other.
func classify(o *OrderPaymentMeta) string {
	method := strings.ToLower(strings.TrimSpace(o.PaymentMethod))
	switch {
	case method == PaymentClassStripe || o.StripeSourceID != "" || o.StripeCustomerID != "":
		return PaymentClassStripe
	case method == PaymentClassDLocal || o.DLocalPaymentID != "":
		return PaymentClassDLocal
	default:
		return PaymentClassOther
	}
}

func hasPaymentInfo(o *OrderPaymentMeta) bool {
	return strings.TrimSpace(o.PaymentMethod) != "" ||
		o.StripeSourceID != "" || o.StripeCustomerID != "" || o.DLocalPaymentID != ""
}

// ClassifyPaymentMethods — строит отчёт. orders ожидаются от новых к старым.
//
// Основной метод берём из самого свежего заказа, у которого есть payment_method или платёжные
// метаданные (если таких нет — из самого свежего). Если и у него пусто — решаем по наличию
// классов: dlocal, затем stripe, затем other.
func ClassifyPaymentMethods(email string, orders []OrderPaymentMeta) PaymentMethodsReport {
	report := PaymentMethodsReport{
		Email:   email,
		Primary: PaymentClassUnknown,
		Methods: map[string]bool{
			PaymentClassStripe: false,
			PaymentClassDLocal: false,
			PaymentClassOther:  false,
		},
		Counts: map[string]int{
			"total":            len(orders),
			PaymentClassStripe: 0,
			PaymentClassDLocal: 0,
			PaymentClassOther:  0,
		},
		OrderIDs: map[string][]int64{
			PaymentClassStripe: {},
			PaymentClassDLocal: {},
			PaymentClassOther:  {},
		},
	}
	if len(orders) == 0 {
		return report
	}

	for i := range orders {
		class := classify(&orders[i])
		report.Methods[class] = true
		report.Counts[class]++
		report.OrderIDs[class] = append(report.OrderIDs[class], orders[i].ID)
	}
	report.LatestOrderID = orders[0].ID

	chosen := &orders[0]
	for i := range orders {
		if hasPaymentInfo(&orders[i]) {
			chosen = &orders[i]
			break
		}
	}

	if hasPaymentInfo(chosen) {
		class := classify(chosen)
		if class == PaymentClassOther {
			// неизвестный магазину метод — отдаём как есть
			report.Primary = strings.ToLower(strings.TrimSpace(chosen.PaymentMethod))
		} else {
			report.Primary = class
		}
		return report
	}

	switch {
	case report.Methods[PaymentClassDLocal]:
		report.Primary = PaymentClassDLocal
	case report.Methods[PaymentClassStripe]:
		report.Primary = PaymentClassStripe
	default:
		report.Primary = PaymentClassOther
	}
	return report
}
