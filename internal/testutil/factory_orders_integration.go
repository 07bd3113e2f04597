//go:build integration

package testutil

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func UniqSuffix() string {
	b := make([]byte, 6)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// UniqEmail — уникальный адрес, чтобы тесты в одной БД не пересекались.
func UniqEmail() string { return "buyer-" + UniqSuffix() + "@example.com" }

// OrderSeed — заказ для вставки в wp_wc_orders.
type OrderSeed struct {
	ID            int64
	Email         string
	Status        string
	Currency      string
	Total         string
	Created       time.Time
	PaymentMethod string
	Meta          [][2]string // (key, value) в порядке вставки
}

// MakeOrderSeed — заказ с разумными значениями по умолчанию.
func MakeOrderSeed(email string, opts ...func(*OrderSeed)) OrderSeed {
	var b [4]byte
	_, _ = rand.Read(b[:])
	s := OrderSeed{
		ID:            int64(binary.BigEndian.Uint32(b[:]) >> 1),
		Email:         email,
		Status:        "wc-completed",
		Currency:      "USD",
		Total:         "10.00",
		Created:       time.Now().UTC().Truncate(time.Second),
		PaymentMethod: "stripe",
	}
	for _, fn := range opts {
		fn(&s)
	}
	return s
}

func WithTotal(total, currency string) func(*OrderSeed) {
	return func(s *OrderSeed) { s.Total, s.Currency = total, currency }
}

func WithCreated(t time.Time) func(*OrderSeed) {
	return func(s *OrderSeed) { s.Created = t.UTC().Truncate(time.Second) }
}

func WithMeta(key, value string) func(*OrderSeed) {
	return func(s *OrderSeed) { s.Meta = append(s.Meta, [2]string{key, value}) }
}

func WithPaymentMethod(m string) func(*OrderSeed) {
	return func(s *OrderSeed) { s.PaymentMethod = m }
}

// SeedOrder — вставляет заказ и его метаданные; возвращает id заказа.
func SeedOrder(ctx context.Context, pool *pgxpool.Pool, s OrderSeed) (int64, error) {
	_, err := pool.Exec(ctx, `
		INSERT INTO wp_wc_orders (id, status, currency, total_amount, billing_email,
			date_created_gmt, payment_method, payment_method_title)
		VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $7)`,
		s.ID, s.Status, s.Currency, s.Total, s.Email, s.Created, s.PaymentMethod)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}
	for _, kv := range s.Meta {
		if _, err := pool.Exec(ctx, `
			INSERT INTO wp_wc_orders_meta (order_id, meta_key, meta_value) VALUES ($1, $2, $3)`,
			s.ID, kv[0], kv[1]); err != nil {
			return 0, fmt.Errorf("insert meta: %w", err)
		}
	}
	return s.ID, nil
}

// MetaValues — значения ключа у заказа в порядке id записи.
func MetaValues(ctx context.Context, pool *pgxpool.Pool, orderID int64, key string) ([]string, error) {
	rows, err := pool.Query(ctx, `
		SELECT meta_value FROM wp_wc_orders_meta WHERE order_id = $1 AND meta_key = $2 ORDER BY id`,
		orderID, key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// MetaRowCount — общее число строк метаданных (проверка «ничего не вставили»).
func MetaRowCount(ctx context.Context, pool *pgxpool.Pool) (int64, error) {
	var n int64
	err := pool.QueryRow(ctx, `SELECT count(*) FROM wp_wc_orders_meta`).Scan(&n)
	return n, err
}
