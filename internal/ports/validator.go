package ports

import "context"

// UpdateRequestValidator — проверка входа UpdatePaymentReference до обращения к БД.
type UpdateRequestValidator interface {
	ValidateUpdate(ctx context.Context, email, reference string) error
}
