package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/wc_paymeta/internal/domain"
	"github.com/Gunvolt24/wc_paymeta/internal/ports"
	"github.com/Gunvolt24/wc_paymeta/pkg/metrics"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Проверка, что OrderRepository удовлетворяет интерфейсу OrderStore.
var _ ports.OrderStore = (*OrderRepository)(nil)

// OrderRepository — чтение заказов WooCommerce (HPOS) и их метаданных.
// Любая ошибка чтения оборачивается в domain.ErrConnection: БД не смогла отдать данные.
type OrderRepository struct {
	conn          *Connector
	t             tables
	paymentRefKey string
}

// NewOrderRepository — конструктор OrderRepository.
func NewOrderRepository(conn *Connector, tablePrefix, paymentRefKey string) *OrderRepository {
	if paymentRefKey == "" {
		paymentRefKey = domain.MetaKeyStripeSource
	}
	return &OrderRepository{conn: conn, t: newTables(tablePrefix), paymentRefKey: paymentRefKey}
}

// orderColumns — колонки заказа в порядке scanOrder; o — алиас таблицы заказов.
const orderColumns = `o.id, COALESCE(o.status, ''), COALESCE(o.currency, ''),
	COALESCE(o.total_amount, 0)::text, COALESCE(o.billing_email, ''), o.date_created_gmt,
	COALESCE(o.payment_method, ''), COALESCE(o.payment_method_title, '')`

// OrdersByEmail — все заказы клиента, от новых к старым.
func (r *OrderRepository) OrdersByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	defer observe("orders_by_email", time.Now())

	query := `SELECT ` + orderColumns + `
		FROM ` + r.t.orders + ` o
		WHERE lower(o.billing_email) = lower($1)
		ORDER BY o.date_created_gmt DESC NULLS LAST, o.id DESC`

	var orders []domain.Order
	err := r.conn.WithConn(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, query, email)
		if err != nil {
			return fmt.Errorf("select orders: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var o domain.Order
			if err := scanOrder(rows, &o); err != nil {
				return err
			}
			orders = append(orders, o)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, readErr("orders by email", err)
	}
	return orders, nil
}

// OrdersWithMeta — join заказов клиента с записями метаданных с ключом key.
func (r *OrderRepository) OrdersWithMeta(ctx context.Context, email, key string) ([]domain.OrderWithPaymentRef, error) {
	defer observe("orders_with_meta", time.Now())

	query := `SELECT ` + orderColumns + `, COALESCE(m.meta_value, '')
		FROM ` + r.t.orders + ` o
		JOIN ` + r.t.meta + ` m ON m.order_id = o.id AND m.meta_key = $2
		WHERE lower(o.billing_email) = lower($1)
		ORDER BY o.date_created_gmt DESC NULLS LAST, o.id DESC, m.id`

	var out []domain.OrderWithPaymentRef
	err := r.conn.WithConn(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, query, email, key)
		if err != nil {
			return fmt.Errorf("select orders with meta: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var row domain.OrderWithPaymentRef
			if err := scanOrder(rows, &row.Order, &row.PaymentRef); err != nil {
				return err
			}
			out = append(out, row)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, readErr("orders with meta", err)
	}
	return out, nil
}

// OrderPaymentMeta — заказы клиента с последними значениями платёжных ключей.
func (r *OrderRepository) OrderPaymentMeta(ctx context.Context, email string) ([]domain.OrderPaymentMeta, error) {
	defer observe("order_payment_meta", time.Now())

	metaValue := func(param string) string {
		return `COALESCE((SELECT m.meta_value FROM ` + r.t.meta + ` m
			WHERE m.order_id = o.id AND m.meta_key = ` + param + `
			ORDER BY m.id DESC LIMIT 1), '')`
	}
	query := `SELECT ` + orderColumns + `,
		` + metaValue("$2") + `,
		` + metaValue("$3") + `,
		` + metaValue("$4") + `
		FROM ` + r.t.orders + ` o
		WHERE lower(o.billing_email) = lower($1)
		ORDER BY o.date_created_gmt DESC NULLS LAST, o.id DESC`

	var out []domain.OrderPaymentMeta
	err := r.conn.WithConn(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, query, email,
			r.paymentRefKey, domain.MetaKeyStripeCustomer, domain.MetaKeyDLocalPayment)
		if err != nil {
			return fmt.Errorf("select payment meta: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var row domain.OrderPaymentMeta
			if err := scanOrder(rows, &row.Order, &row.StripeSourceID, &row.StripeCustomerID, &row.DLocalPaymentID); err != nil {
				return err
			}
			out = append(out, row)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, readErr("order payment meta", err)
	}
	return out, nil
}

// OrderMeta — метаданные одного заказа, отсортированные по ключу.
func (r *OrderRepository) OrderMeta(ctx context.Context, orderID int64, key string) ([]domain.MetaEntry, error) {
	defer observe("order_meta", time.Now())

	existsQuery := `SELECT EXISTS (SELECT 1 FROM ` + r.t.orders + ` WHERE id = $1)`
	metaQuery := `SELECT id, order_id, COALESCE(meta_key, ''), COALESCE(meta_value, '')
		FROM ` + r.t.meta + `
		WHERE order_id = $1 AND ($2 = '' OR meta_key = $2)
		ORDER BY meta_key, id`

	var (
		found   bool
		entries []domain.MetaEntry
	)
	err := r.conn.WithConn(ctx, func(conn *pgxpool.Conn) error {
		if err := conn.QueryRow(ctx, existsQuery, orderID).Scan(&found); err != nil {
			return fmt.Errorf("select order: %w", err)
		}
		if !found {
			return nil
		}

		rows, err := conn.Query(ctx, metaQuery, orderID, key)
		if err != nil {
			return fmt.Errorf("select meta: %w", err)
		}
		entries, err = pgx.CollectRows(rows, scanMetaEntry)
		if err != nil {
			return fmt.Errorf("scan meta: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, readErr("order meta", err)
	}
	if !found {
		return nil, fmt.Errorf("order %d: %w", orderID, domain.ErrOrderNotFound)
	}
	return entries, nil
}

// scanOrder — сканирует колонки orderColumns и дополнительные поля extra.
func scanOrder(row pgx.Row, o *domain.Order, extra ...any) error {
	var (
		total   string
		created pgtype.Timestamp
	)
	dest := append([]any{
		&o.ID, &o.Status, &o.Currency, &total, &o.BillingEmail, &created,
		&o.PaymentMethod, &o.PaymentMethodTitle,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return fmt.Errorf("scan order: %w", err)
	}

	amount, err := decimal.NewFromString(total)
	if err != nil {
		return fmt.Errorf("order %d total %q: %w", o.ID, total, err)
	}
	o.Total = amount
	if created.Valid {
		o.DateCreated = created.Time.UTC()
	}
	return nil
}

func scanMetaEntry(row pgx.CollectableRow) (domain.MetaEntry, error) {
	var e domain.MetaEntry
	err := row.Scan(&e.ID, &e.OrderID, &e.Key, &e.Value)
	return e, err
}

func observe(op string, started time.Time) {
	metrics.StoreOpDuration.WithLabelValues(op).Observe(time.Since(started).Seconds())
}
