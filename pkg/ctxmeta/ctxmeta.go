// Пакет ctxmeta — нейтральный слой для работы с метаданными запроса,
// которые прокидываются через context.Context (request_id, trace_id, клиент).
// Идея: HTTP-слой и логгер зависят от небольшого общего пакета, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	// Ключи контекста (неэкспортируемые типы — чтобы избежать коллизий).
	KeyRequestID ctxKey = "request_id"
	KeyCustomer  ctxKey = "customer"
)

func with(ctx context.Context, key ctxKey, value string) context.Context {
	if ctx == nil || value == "" {
		return ctx
	}
	return context.WithValue(ctx, key, value)
}

func get(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return with(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return get(ctx, KeyRequestID)
}

// WithCustomer кладёт в контекст ссылку на клиента для логов.
// Сюда должен попадать уже псевдоним, а не сырой email.
func WithCustomer(ctx context.Context, customerRef string) context.Context {
	return with(ctx, KeyCustomer, customerRef)
}

// CustomerFromContext достаёт ссылку на клиента.
func CustomerFromContext(ctx context.Context) (string, bool) {
	return get(ctx, KeyCustomer)
}
