package usecase_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/Gunvolt24/wc_paymeta/internal/domain"
	"github.com/Gunvolt24/wc_paymeta/internal/ports"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}
func (noopLogger) Infow(context.Context, string, ...any)  {}
func (noopLogger) Warnw(context.Context, string, ...any)  {}
func (noopLogger) Errorw(context.Context, string, ...any) {}

// recLogger — запоминает структурированные записи.
type recLogger struct {
	noopLogger
	mu      sync.Mutex
	entries []map[string]any
}

func (l *recLogger) record(level, msg string, kv []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e := map[string]any{"level": level, "msg": msg}
	for i := 0; i+1 < len(kv); i += 2 {
		e[kv[i].(string)] = kv[i+1]
	}
	l.entries = append(l.entries, e)
}

func (l *recLogger) Infow(_ context.Context, msg string, kv ...any)  { l.record("info", msg, kv) }
func (l *recLogger) Warnw(_ context.Context, msg string, kv ...any)  { l.record("warn", msg, kv) }
func (l *recLogger) Errorw(_ context.Context, msg string, kv ...any) { l.record("error", msg, kv) }

// memStore — заказы и EAV-метаданные в памяти с транзакциями «снимок → откат».
// Реализует OrderStore (только OrdersByEmail) и MetaTxRunner.
type memStore struct {
	mu     sync.Mutex
	orders []domain.Order
	meta   []domain.MetaEntry
	nextID int64

	failSetAt int   // k-я (с единицы) запись в транзакции падает; 0 — не падает
	beginErr  error // ошибка старта транзакции
	writes    int   // сколько раз вызывали SetMetaValue
}

func newMemStore() *memStore { return &memStore{nextID: 1} }

func (m *memStore) addOrder(id int64, email string, meta ...[2]string) {
	m.orders = append(m.orders, domain.Order{ID: id, BillingEmail: email, Currency: "USD"})
	for _, kv := range meta {
		m.meta = append(m.meta, domain.MetaEntry{ID: m.nextID, OrderID: id, Key: kv[0], Value: kv[1]})
		m.nextID++
	}
}

func (m *memStore) values(orderID int64, key string) []string {
	var out []string
	for _, e := range m.meta {
		if e.OrderID == orderID && e.Key == key {
			out = append(out, e.Value)
		}
	}
	return out
}

func (m *memStore) OrdersByEmail(_ context.Context, email string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range m.orders {
		if strings.EqualFold(o.BillingEmail, email) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memStore) OrdersWithMeta(context.Context, string, string) ([]domain.OrderWithPaymentRef, error) {
	return nil, errors.New("not used")
}

func (m *memStore) OrderPaymentMeta(context.Context, string) ([]domain.OrderPaymentMeta, error) {
	return nil, errors.New("not used")
}

func (m *memStore) OrderMeta(context.Context, int64, string) ([]domain.MetaEntry, error) {
	return nil, errors.New("not used")
}

func (m *memStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx ports.MetaTx) error) error {
	if m.beginErr != nil {
		return m.beginErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := append([]domain.MetaEntry(nil), m.meta...)
	tx := &memTx{m: m}
	if err := fn(ctx, tx); err != nil {
		m.meta = snapshot
		return errors.Join(domain.ErrTransaction, err)
	}
	return nil
}

type memTx struct {
	m *memStore
	n int
}

func (t *memTx) LockMeta(_ context.Context, orderID int64, key string) ([]domain.MetaEntry, error) {
	var out []domain.MetaEntry
	for _, e := range t.m.meta {
		if e.OrderID == orderID && e.Key == key {
			out = append(out, e)
		}
	}
	return out, nil
}

func (t *memTx) SetMetaValue(_ context.Context, entryID int64, key, value string) (int64, error) {
	t.n++
	t.m.writes++
	if t.m.failSetAt > 0 && t.n == t.m.failSetAt {
		return 0, errors.New("constraint violation")
	}
	for i := range t.m.meta {
		if t.m.meta[i].ID == entryID && t.m.meta[i].Key == key {
			t.m.meta[i].Value = value
			return 1, nil
		}
	}
	return 0, nil
}
