package postgres

import (
	"github.com/jackc/pgx/v5"
)

// tables — экранированные имена таблиц WooCommerce с учётом префикса.
type tables struct {
	orders string
	meta   string
}

func newTables(prefix string) tables {
	return tables{
		orders: pgx.Identifier{prefix + "wc_orders"}.Sanitize(),
		meta:   pgx.Identifier{prefix + "wc_orders_meta"}.Sanitize(),
	}
}
