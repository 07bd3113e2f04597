package kafka

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/Gunvolt24/wc_paymeta/internal/ports"
	"github.com/Gunvolt24/wc_paymeta/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Consumer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — минимальный контракт над источником (kafka.Reader),
// чтобы легко подменять его моками в тестах.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// Consumer — читает события смены платёжного метода и применяет их через движок обновления.
type Consumer struct {
	reader         reader
	updater        ports.PaymentRefUpdater
	dedupe         ports.EventDeduper // nil — без дедупликации
	log            ports.Logger
	masker         ports.EmailMasker
	processTimeout time.Duration
	retryInitial   time.Duration
	retryMax       time.Duration
	jitterRand     *rand.Rand
	closeOnce      sync.Once
}

// NewConsumer — конструктор. ReaderConfig() настроен на ручной коммит оффсетов.
func NewConsumer(
	cfg *ConsumerConfig,
	updater ports.PaymentRefUpdater,
	dedupe ports.EventDeduper,
	log ports.Logger,
	masker ports.EmailMasker,
) *Consumer {
	reader := kafka.NewReader(cfg.ReaderConfig())
	norm := cfg.WithDefaults()

	return &Consumer{
		reader:         reader,
		updater:        updater,
		dedupe:         dedupe,
		log:            log,
		masker:         masker,
		processTimeout: norm.ProcessTimeout,
		retryInitial:   norm.RetryInitial,
		retryMax:       norm.RetryMax,
		// jitterRand — источник случайности, чтобы рассинхронизировать экспоненциальный backoff.
		jitterRand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run — основной цикл:
// 1) читаем сообщение без авто-коммита;
// 2) обновление применено → CommitMessages;
// 3) мусор, невалидный запрос или повтор события → лог и CommitMessages (пропускаем навсегда);
// 4) БД недоступна или транзакция откатилась → то же сообщение обрабатывается снова
// с backoff, пока не получится или не отменят контекст. Следующий оффсет не читаем:
// его коммит сдвинул бы оффсет группы за неудачное сообщение.
//
// Сам движок обновления не ретраит: повтор — новый вызов движка на то же сообщение.
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "kafka consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	// Экспоненциальный backoff на ошибках FetchMessage с equal-jitter
	retry := c.retryInitial

	for {
		// Читаем сообщение (без автокоммита)
		msg, fetchErr := c.reader.FetchMessage(ctx)
		if fetchErr != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			// временная ошибка брокера/сети
			sleep := c.withJitterEqual(retry)
			c.log.Warnf(ctx, "fetch failed: %v (will retry in %s)", fetchErr, sleep)
			if !c.sleepWithBackoff(ctx, sleep) {
				return ctx.Err()
			}
			retry = c.nextBackoff(retry)
			continue
		}

		retry = c.retryInitial
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		if err := c.processUntilDone(ctx, rc.Topic, &msg); err != nil {
			return err
		}
		c.commitSafely(ctx, &msg)
	}
}

// processUntilDone — повторяет обработку одного сообщения, пока исход не станет окончательным.
// Возвращает ошибку только при отмене контекста (оффсет при этом не коммитится).
func (c *Consumer) processUntilDone(ctx context.Context, topic string, msg *kafka.Message) error {
	backoff := c.retryInitial
	for attempt := 1; ; attempt++ {
		if c.handleMessage(ctx, topic, msg) {
			return nil
		}
		sleep := c.withJitterEqual(backoff)
		c.log.Warnw(ctx, "retrying message", "offset", msg.Offset, "attempt", attempt, "sleep", sleep.String())
		if !c.sleepWithBackoff(ctx, sleep) {
			return ctx.Err()
		}
		backoff = c.nextBackoff(backoff)
	}
}

// Close - закрывает reader. Вызывается при остановке приложения.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}
