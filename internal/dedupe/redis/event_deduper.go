package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Gunvolt24/wc_paymeta/internal/ports"
	"github.com/Gunvolt24/wc_paymeta/pkg/metrics"
)

var _ ports.EventDeduper = (*EventDeduper)(nil)

const defaultKeyPrefix = "paymeta:event:"

// client — то, что нужно дедупликатору от go-redis (*redis.Client, *redis.ClusterClient).
type client interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.BoolCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

// EventDeduper — общее для всех экземпляров сервиса множество ID событий в Redis (SET NX + TTL).
// При недоступности Redis событие пропускается в обработку: повторное обновление ссылки безвредно.
type EventDeduper struct {
	rdb    client
	ttl    time.Duration
	prefix string
	log    ports.Logger
}

// NewEventDeduper — ttl <= 0 означает ключи без истечения.
func NewEventDeduper(rdb client, ttl time.Duration, log ports.Logger) *EventDeduper {
	if ttl < 0 {
		ttl = 0
	}
	return &EventDeduper{rdb: rdb, ttl: ttl, prefix: defaultKeyPrefix, log: log}
}

// NewClient — клиент go-redis с проверкой соединения.
func NewClient(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

// Claim — true, если ключ события удалось занять (или Redis недоступен).
func (d *EventDeduper) Claim(ctx context.Context, id string) bool {
	if id == "" {
		return true
	}
	ok, err := d.rdb.SetNX(ctx, d.prefix+id, "1", d.ttl).Result()
	if err != nil {
		d.log.Warnw(ctx, "dedupe claim failed, processing event", "event_id", id, "err", err)
		metrics.DedupeOps.WithLabelValues("error").Inc()
		return true
	}
	if !ok {
		metrics.DedupeOps.WithLabelValues("duplicate").Inc()
		return false
	}
	metrics.DedupeOps.WithLabelValues("claimed").Inc()
	return true
}

// Release — удалить ключ, чтобы повторная доставка обработалась.
func (d *EventDeduper) Release(ctx context.Context, id string) {
	if id == "" {
		return
	}
	if err := d.rdb.Del(ctx, d.prefix+id).Err(); err != nil {
		d.log.Warnw(ctx, "dedupe release failed", "event_id", id, "err", err)
		metrics.DedupeOps.WithLabelValues("error").Inc()
		return
	}
	metrics.DedupeOps.WithLabelValues("released").Inc()
}
