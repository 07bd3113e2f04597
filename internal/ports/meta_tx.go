package ports

import (
	"context"

	"github.com/Gunvolt24/wc_paymeta/internal/domain"
)

// MetaTxRunner — выполняет fn в одной транзакции.
// fn вернул ошибку или commit не прошёл — транзакция откатывается до возврата из WithinTx.
type MetaTxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx MetaTx) error) error
}

// MetaTx — операции над метаданными внутри транзакции. Вставки нет намеренно.
type MetaTx interface {
	// LockMeta — записи заказа с ключом key, заблокированные до конца транзакции.
	LockMeta(ctx context.Context, orderID int64, key string) ([]domain.MetaEntry, error)

	// SetMetaValue — перезаписывает значение существующей записи; возвращает число изменённых строк.
	SetMetaValue(ctx context.Context, entryID int64, key, value string) (int64, error)
}
