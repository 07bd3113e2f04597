package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/wc_paymeta/internal/ports"
	"github.com/Gunvolt24/wc_paymeta/pkg/metrics"
)

// Проверка, что EventDeduper удовлетворяет интерфейсу EventDeduper.
var _ ports.EventDeduper = (*EventDeduper)(nil)

type entry struct {
	id        string
	expiresAt time.Time
}

// EventDeduper — ограниченное множество недавно обработанных ID событий (FIFO + TTL).
// При переполнении вытесняется самый давно занятый ID.
// Память процесса: после рестарта повтор события обработается заново, это безопасно,
// потому что обновление платёжной ссылки идемпотентно.
type EventDeduper struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

// NewEventDeduper — capacity <= 0 трактуем как 1; ttl <= 0 — без истечения.
func NewEventDeduper(capacity int, ttl time.Duration) *EventDeduper {
	if capacity <= 0 {
		capacity = 1
	}
	return &EventDeduper{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

// Claim — true, если ID свободен (впервые или истёк), и занимает его.
func (d *EventDeduper) Claim(_ context.Context, id string) bool {
	if id == "" {
		// без ID дедуплицировать нечего
		return true
	}
	now := d.now()

	d.mu.Lock()
	defer d.mu.Unlock()

	if elem, ok := d.index[id]; ok {
		ent := elem.Value.(*entry)
		if !d.isExpired(ent, now) {
			metrics.DedupeOps.WithLabelValues("duplicate").Inc()
			return false
		}
		d.removeElement(elem)
		metrics.DedupeOps.WithLabelValues("expired").Inc()
	}

	d.pruneExpiredFromBack(now)

	d.index[id] = d.ll.PushFront(&entry{id: id, expiresAt: d.expiryFrom(now)})
	if d.ll.Len() > d.capacity {
		d.evictLRU()
	}
	metrics.DedupeOps.WithLabelValues("claimed").Inc()
	metrics.DedupeSize.Set(float64(len(d.index)))
	return true
}

// Release — забыть ID (обработка не удалась, повтор должен пройти).
func (d *EventDeduper) Release(_ context.Context, id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if elem, ok := d.index[id]; ok {
		d.removeElement(elem)
		metrics.DedupeOps.WithLabelValues("released").Inc()
		metrics.DedupeSize.Set(float64(len(d.index)))
	}
}

// Len — число запомненных ID (включая ещё не вычищенные истёкшие).
func (d *EventDeduper) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.index)
}
