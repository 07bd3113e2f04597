package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic", "reason"}, // decode|validation|store
	)
)

var (
	PaymentRefUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_ref_updates_total",
			Help: "Payment reference update invocations by outcome",
		},
		[]string{"outcome"}, // success|validation|connection|transaction
	)
	PaymentRefRowsUpdated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_ref_rows_updated_total",
			Help: "Metadata rows rewritten by payment reference updates",
		},
	)
	StoreOpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_operation_duration_seconds",
			Help:    "Duration of store operations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)
)

var (
	WebhookEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_events_total",
			Help: "Stripe webhook events by type and result",
		},
		[]string{"type", "result"}, // applied|duplicate|ignored|rejected|failed
	)
	DedupeOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_dedupe_operations_total",
			Help: "Event deduplication operations",
		},
		[]string{"op"}, // claimed|duplicate|released|evicted|expired
	)
	DedupeSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "event_dedupe_size",
			Help: "Number of event ids currently remembered",
		},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики в глобальном реестре (повторный вызов безопасен).
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
			PaymentRefUpdates, PaymentRefRowsUpdated, StoreOpDuration,
			WebhookEvents, DedupeOps, DedupeSize,
		)
	})
}
