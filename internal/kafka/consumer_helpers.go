package kafka

import (
	"context"
	"time"

	"github.com/Gunvolt24/wc_paymeta/internal/domain"
	"github.com/Gunvolt24/wc_paymeta/pkg/metrics"
	"github.com/Gunvolt24/wc_paymeta/pkg/validate"
	"github.com/segmentio/kafka-go"
)

// handleMessage обрабатывает одно сообщение и определяет, нужно ли коммитить оффсет.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) bool {
	req, err := validate.DecodeUpdateRequest(msg.Value)
	if err != nil {
		// Мусор: коммитим, чтобы не читать его снова
		metrics.KafkaMessagesFailed.WithLabelValues(topic, "decode").Inc()
		c.log.Warnw(ctx, "undecodable message skipped", "offset", msg.Offset, "error", err)
		return true
	}

	if c.dedupe != nil && !c.dedupe.Claim(ctx, req.EventID) {
		c.log.Infow(ctx, "duplicate event skipped", "offset", msg.Offset, "event_id", req.EventID)
		return true
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, c.processTimeout)
	res := c.updater.UpdatePaymentReference(ctxTimeout, req.Email, req.PaymentReference)
	cancel()

	kv := []any{"offset", msg.Offset, "event_id", req.EventID, "email", c.maskEmail(req.Email)}
	switch {
	case res.Success:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		c.log.Infow(ctx, "payment reference event applied", append(kv, "updated_count", res.Data.UpdatedCount)...)
		return true
	case res.ErrorType == domain.ErrorTypeValidation:
		// Невалидный запрос не станет валидным при повторе: коммитим
		metrics.KafkaMessagesFailed.WithLabelValues(topic, "validation").Inc()
		c.log.Warnw(ctx, "invalid payment reference event skipped", append(kv, "error", res.Error)...)
		return true
	default:
		// БД/транзакция: НЕ коммитим и освобождаем ID, чтобы повторная попытка обработалась
		metrics.KafkaMessagesFailed.WithLabelValues(topic, "store").Inc()
		if c.dedupe != nil {
			c.dedupe.Release(ctx, req.EventID)
		}
		c.log.Warnw(ctx, "payment reference event failed, will be retried",
			append(kv, "error_type", res.ErrorType, "error", res.Error)...)
		return false
	}
}

func (c *Consumer) maskEmail(email string) string {
	if c.masker == nil {
		return email
	}
	return c.masker.Email(email)
}

// commitSafely пытается закоммитить оффсет и залогировать ошибку.
func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if commitErr := c.reader.CommitMessages(ctx, *msg); commitErr != nil {
		c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, commitErr)
	}
}

// sleepWithBackoff ждет backoff или останавливается по контексту.
func (c *Consumer) sleepWithBackoff(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// nextBackoff возвращает следующее время ожидания повтора с учетом retryMax.
func (c *Consumer) nextBackoff(current time.Duration) time.Duration {
	current *= 2
	if current > c.retryMax {
		return c.retryMax
	}
	return current
}

// withJitterEqual — половина задержки фиксирована, вторая половина случайная.
func (c *Consumer) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	jitter := time.Duration(c.jitterRand.Int63n(int64(d-half) + 1))
	return half + jitter
}
