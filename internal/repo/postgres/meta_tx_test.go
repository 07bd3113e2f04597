package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
)

// warnRecorder — запоминает предупреждения, остальное молча.
type warnRecorder struct{ warns []string }

func (w *warnRecorder) Infof(context.Context, string, ...any) {}
func (w *warnRecorder) Warnf(_ context.Context, format string, args ...any) {
	w.warns = append(w.warns, fmt.Sprintf(format, args...))
}
func (w *warnRecorder) Errorf(context.Context, string, ...any) {}
func (w *warnRecorder) Infow(context.Context, string, ...any)  {}
func (w *warnRecorder) Warnw(context.Context, string, ...any)  {}
func (w *warnRecorder) Errorw(context.Context, string, ...any) {}

type rollbackStub struct {
	err    error
	called bool
	ctxErr error
}

func (r *rollbackStub) Rollback(ctx context.Context) error {
	r.called = true
	r.ctxErr = ctx.Err()
	return r.err
}

func TestRollbackTx(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		wantWarns int
	}{
		{"rolled back", nil, 0},
		{"already committed", pgx.ErrTxClosed, 0},
		{"wrapped tx closed", fmt.Errorf("rollback: %w", pgx.ErrTxClosed), 0},
		{"connection lost", errors.New("conn closed"), 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			log := &warnRecorder{}
			tx := &rollbackStub{err: tt.err}
			rollbackTx(context.Background(), tx, log)

			if !tx.called {
				t.Fatalf("Rollback was not called")
			}
			if len(log.warns) != tt.wantWarns {
				t.Fatalf("warns = %v, want %d", log.warns, tt.wantWarns)
			}
		})
	}
}

// Отменённый контекст запроса не мешает откату.
func TestRollbackTx_IgnoresCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tx := &rollbackStub{}
	rollbackTx(ctx, tx, nil)
	if tx.ctxErr != nil {
		t.Fatalf("rollback ctx must not be cancelled, got %v", tx.ctxErr)
	}
}
