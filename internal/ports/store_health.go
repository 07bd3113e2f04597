package ports

import (
	"context"

	"github.com/Gunvolt24/wc_paymeta/internal/domain"
)

// StoreHealth — минимальный round-trip до БД магазина.
type StoreHealth interface {
	Ping(ctx context.Context) (domain.ConnectionInfo, error)
}
