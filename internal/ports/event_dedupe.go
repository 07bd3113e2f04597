package ports

import "context"

// EventDeduper — защита от повторной обработки входящих событий по их ID.
// Реализация должна быть потокобезопасной.
type EventDeduper interface {
	// Claim — true, если ID встречается впервые (и теперь занят).
	Claim(ctx context.Context, id string) bool
	// Release — освободить ID, чтобы повторная доставка обработалась заново.
	Release(ctx context.Context, id string)
}
