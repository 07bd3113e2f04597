package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Gunvolt24/wc_paymeta/internal/domain"
	"github.com/Gunvolt24/wc_paymeta/internal/ports"
	"github.com/Gunvolt24/wc_paymeta/pkg/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Проверка, что PaymentRefService удовлетворяет интерфейсу PaymentRefUpdater.
var _ ports.PaymentRefUpdater = (*PaymentRefService)(nil)

const tracerName = "github.com/Gunvolt24/wc_paymeta/internal/usecase"

// PaymentRefService — замена платёжной ссылки во всех заказах клиента.
// Ретраев нет: неудачная попытка сразу возвращается вызывающему.
type PaymentRefService struct {
	store     ports.OrderStore
	txRunner  ports.MetaTxRunner
	validator ports.UpdateRequestValidator
	log       ports.Logger
	masker    ports.EmailMasker
	refKey    string
	tracer    trace.Tracer
}

// NewPaymentRefService — DI-конструктор; refKey == "" — ключ по умолчанию (_stripe_source_id).
func NewPaymentRefService(
	store ports.OrderStore,
	txRunner ports.MetaTxRunner,
	validator ports.UpdateRequestValidator,
	log ports.Logger,
	masker ports.EmailMasker,
	refKey string,
) *PaymentRefService {
	if refKey == "" {
		refKey = domain.MetaKeyStripeSource
	}
	return &PaymentRefService{
		store:     store,
		txRunner:  txRunner,
		validator: validator,
		log:       log,
		masker:    masker,
		refKey:    refKey,
		tracer:    otel.Tracer(tracerName),
	}
}

// UpdatePaymentReference — перезаписывает значение ключа платёжной ссылки у всех заказов клиента.
//  1. валидация входа (без обращения к БД);
//  2. заказы клиента; нет заказов — успех с нулём обновлений;
//  3. одна транзакция: запись с ключом есть — перезаписываем, нет — заказ пропускаем (вставок нет);
//  4. любая ошибка строки — откат всего пакета;
//  5. updated_count — число заказов, чьи записи были перезаписаны (в т.ч. тем же значением).
func (s *PaymentRefService) UpdatePaymentReference(ctx context.Context, email, reference string) domain.UpdateResult {
	ctx, span := s.tracer.Start(ctx, "PaymentRefService.UpdatePaymentReference")
	defer span.End()

	started := time.Now()
	email = strings.TrimSpace(email)

	if err := s.validator.ValidateUpdate(ctx, email, reference); err != nil {
		return s.finish(ctx, span, started, email, 0,
			domain.Fail[domain.UpdateData](domain.ErrorTypeValidation, "invalid update request", err))
	}

	orders, err := s.store.OrdersByEmail(ctx, email)
	if err != nil {
		return s.finish(ctx, span, started, email, 0,
			domain.Fail[domain.UpdateData](domain.ErrorTypeConnection, "failed to load customer orders", err))
	}

	data := domain.UpdateData{
		Email:            email,
		NewReference:     reference,
		OrdersFound:      len(orders),
		AffectedOrderIDs: []int64{},
	}
	if len(orders) == 0 {
		return s.finish(ctx, span, started, email, 0,
			domain.OK("no orders found for customer, nothing to update", data))
	}

	var affected []int64
	err = s.txRunner.WithinTx(ctx, func(ctx context.Context, tx ports.MetaTx) error {
		affected = affected[:0]
		for i := range orders {
			orderID := orders[i].ID
			entries, err := tx.LockMeta(ctx, orderID, s.refKey)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				continue
			}
			for _, e := range entries {
				n, err := tx.SetMetaValue(ctx, e.ID, s.refKey, reference)
				if err != nil {
					return err
				}
				if n != 1 {
					return fmt.Errorf("order %d meta %d: %d rows affected, want 1", orderID, e.ID, n)
				}
			}
			affected = append(affected, orderID)
		}
		return nil
	})
	if err != nil {
		kind := domain.ErrorTypeTransaction
		msg := "payment reference update rolled back"
		if errors.Is(err, domain.ErrConnection) && !errors.Is(err, domain.ErrTransaction) {
			kind = domain.ErrorTypeConnection
			msg = "store unavailable, nothing was changed"
		}
		return s.finish(ctx, span, started, email, len(orders), domain.Fail[domain.UpdateData](kind, msg, err))
	}

	data.UpdatedCount = len(affected)
	data.AffectedOrderIDs = append(data.AffectedOrderIDs, affected...)
	msg := fmt.Sprintf("payment reference updated on %d of %d orders", data.UpdatedCount, data.OrdersFound)
	return s.finish(ctx, span, started, email, len(orders), domain.OK(msg, data))
}

// finish — одна структурированная запись лога, метрики и статус спана на каждый вызов.
func (s *PaymentRefService) finish(
	ctx context.Context,
	span trace.Span,
	started time.Time,
	email string,
	ordersFound int,
	res domain.UpdateResult,
) domain.UpdateResult {
	outcome := "success"
	if !res.Success {
		outcome = string(res.ErrorType)
	}

	metrics.PaymentRefUpdates.WithLabelValues(outcome).Inc()
	metrics.PaymentRefRowsUpdated.Add(float64(res.Data.UpdatedCount))

	span.SetAttributes(
		attribute.String("paymeta.outcome", outcome),
		attribute.Int("paymeta.orders_found", ordersFound),
		attribute.Int("paymeta.updated_count", res.Data.UpdatedCount),
	)

	kv := []any{
		"email", s.maskEmail(email),
		"outcome", outcome,
		"orders_found", ordersFound,
		"updated_count", res.Data.UpdatedCount,
		"took_ms", time.Since(started).Milliseconds(),
	}
	switch {
	case res.Success:
		s.log.Infow(ctx, "payment reference update", kv...)
	case res.ErrorType == domain.ErrorTypeValidation:
		span.SetStatus(codes.Error, res.Message)
		s.log.Warnw(ctx, "payment reference update", append(kv, "error", res.Error)...)
	default:
		span.SetStatus(codes.Error, res.Message)
		s.log.Errorw(ctx, "payment reference update", append(kv, "error", res.Error)...)
	}
	return res
}

func (s *PaymentRefService) maskEmail(email string) string {
	if s.masker == nil {
		return email
	}
	return s.masker.Email(email)
}
