package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/wc_paymeta/internal/domain"
	"github.com/Gunvolt24/wc_paymeta/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	_ ports.MetaTxRunner = (*MetaTxRunner)(nil)
	_ ports.MetaTx       = (*metaTx)(nil)
)

// MetaTxRunner — транзакции над таблицей метаданных заказов.
type MetaTxRunner struct {
	conn *Connector
	t    tables
	log  ports.Logger
}

// NewMetaTxRunner — конструктор MetaTxRunner.
func NewMetaTxRunner(conn *Connector, tablePrefix string, log ports.Logger) *MetaTxRunner {
	return &MetaTxRunner{conn: conn, t: newTables(tablePrefix), log: log}
}

// WithinTx — fn в одной транзакции READ COMMITTED на одном соединении.
// Не удалось начать — domain.ErrConnection; ошибка fn или commit — откат и domain.ErrTransaction.
func (r *MetaTxRunner) WithinTx(ctx context.Context, fn func(ctx context.Context, tx ports.MetaTx) error) error {
	defer observe("meta_tx", time.Now())

	return r.conn.WithConn(ctx, func(conn *pgxpool.Conn) error {
		tx, err := conn.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
		if err != nil {
			return fmt.Errorf("%w: begin: %w", domain.ErrConnection, err)
		}
		defer rollbackTx(ctx, tx, r.log)

		if err := fn(ctx, &metaTx{tx: tx, t: r.t}); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrTransaction, err)
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("%w: commit: %w", domain.ErrTransaction, err)
		}
		return nil
	})
}

// rollbackTx — откат после commit даёт ErrTxClosed, это норма; остальное в лог.
func rollbackTx(ctx context.Context, tx interface{ Rollback(context.Context) error }, log ports.Logger) {
	err := tx.Rollback(context.WithoutCancel(ctx))
	if err == nil || errors.Is(err, pgx.ErrTxClosed) {
		return
	}
	if log != nil {
		log.Warnf(ctx, "meta tx rollback: %v", err)
	}
}

type metaTx struct {
	tx pgx.Tx
	t  tables
}

// LockMeta — SELECT ... FOR UPDATE: конкурентные обновления того же заказа ждут нашего commit.
func (m *metaTx) LockMeta(ctx context.Context, orderID int64, key string) ([]domain.MetaEntry, error) {
	rows, err := m.tx.Query(ctx, `
		SELECT id, order_id, meta_key, COALESCE(meta_value, '')
		FROM `+m.t.meta+`
		WHERE order_id = $1 AND meta_key = $2
		ORDER BY id
		FOR UPDATE`, orderID, key)
	if err != nil {
		return nil, fmt.Errorf("lock meta of order %d: %w", orderID, err)
	}
	entries, err := pgx.CollectRows(rows, scanMetaEntry)
	if err != nil {
		return nil, fmt.Errorf("scan meta of order %d: %w", orderID, err)
	}
	return entries, nil
}

// SetMetaValue — UPDATE по id записи; ключ в условии не даёт задеть запись с другим ключом.
func (m *metaTx) SetMetaValue(ctx context.Context, entryID int64, key, value string) (int64, error) {
	tag, err := m.tx.Exec(ctx, `
		UPDATE `+m.t.meta+`
		SET meta_value = $3
		WHERE id = $1 AND meta_key = $2`, entryID, key, value)
	if err != nil {
		return 0, fmt.Errorf("update meta %d: %w", entryID, err)
	}
	return tag.RowsAffected(), nil
}
