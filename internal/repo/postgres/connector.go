package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/wc_paymeta/config"
	"github.com/Gunvolt24/wc_paymeta/internal/domain"
	"github.com/Gunvolt24/wc_paymeta/internal/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ports.StoreHealth = (*Connector)(nil)

// Connector — выдаёт соединения с БД магазина и проверяет её доступность.
type Connector struct {
	pool     *pgxpool.Pool
	host     string
	database string
}

// NewConnector — конструктор; host/database нужны только для диагностики.
func NewConnector(pool *pgxpool.Pool, cfg config.Store) *Connector {
	return &Connector{pool: pool, host: cfg.Host, database: cfg.Name}
}

// Acquire — соединение из пула; вызывающий обязан вызвать Release.
// Недоступная БД, неверные реквизиты или отмена контекста — domain.ErrConnection.
func (c *Connector) Acquire(ctx context.Context) (*pgxpool.Conn, error) {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: acquire: %w", domain.ErrConnection, err)
	}
	return conn, nil
}

// WithConn — выполняет fn на соединении и возвращает его в пул при любом исходе (в т.ч. panic).
func (c *Connector) WithConn(ctx context.Context, fn func(conn *pgxpool.Conn) error) error {
	conn, err := c.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()
	return fn(conn)
}

// Ping — минимальный round-trip: SELECT version().
func (c *Connector) Ping(ctx context.Context) (domain.ConnectionInfo, error) {
	info := domain.ConnectionInfo{Host: c.host, Database: c.database}
	started := time.Now()

	err := c.WithConn(ctx, func(conn *pgxpool.Conn) error {
		return conn.QueryRow(ctx, `SELECT version()`).Scan(&info.ServerVersion)
	})
	info.LatencyMS = time.Since(started).Milliseconds()
	if err != nil {
		if errors.Is(err, domain.ErrConnection) {
			return info, err
		}
		return info, fmt.Errorf("%w: ping: %w", domain.ErrConnection, err)
	}
	return info, nil
}

// Close — закрывает пул.
func (c *Connector) Close() { c.pool.Close() }
