package metrics_test

import (
	"testing"

	"github.com/Gunvolt24/wc_paymeta/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	t.Helper()
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestKafkaCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	beforeConsumed := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("refs"))
	beforeProcessed := testutil.ToFloat64(metrics.KafkaMessagesProcessed.WithLabelValues("refs"))
	beforeFailed := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues("refs", "decode"))

	metrics.KafkaMessagesConsumed.WithLabelValues("refs").Inc()
	metrics.KafkaMessagesProcessed.WithLabelValues("refs").Inc()
	metrics.KafkaMessagesFailed.WithLabelValues("refs", "decode").Inc()

	if got := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("refs")); got != beforeConsumed+1 {
		t.Fatalf("KafkaMessagesConsumed: got=%v want=%v", got, beforeConsumed+1)
	}
	if got := testutil.ToFloat64(metrics.KafkaMessagesProcessed.WithLabelValues("refs")); got != beforeProcessed+1 {
		t.Fatalf("KafkaMessagesProcessed: got=%v want=%v", got, beforeProcessed+1)
	}
	if got := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues("refs", "decode")); got != beforeFailed+1 {
		t.Fatalf("KafkaMessagesFailed: got=%v want=%v", got, beforeFailed+1)
	}
}

func TestPaymentRefUpdates_ByOutcome(t *testing.T) {
	metrics.MustRegister()

	okBefore := testutil.ToFloat64(metrics.PaymentRefUpdates.WithLabelValues("success"))
	txBefore := testutil.ToFloat64(metrics.PaymentRefUpdates.WithLabelValues("transaction"))
	rowsBefore := testutil.ToFloat64(metrics.PaymentRefRowsUpdated)

	metrics.PaymentRefUpdates.WithLabelValues("success").Inc()
	metrics.PaymentRefRowsUpdated.Add(3)

	if got := testutil.ToFloat64(metrics.PaymentRefUpdates.WithLabelValues("success")); got != okBefore+1 {
		t.Fatalf("PaymentRefUpdates(success): got=%v want=%v", got, okBefore+1)
	}
	if got := testutil.ToFloat64(metrics.PaymentRefUpdates.WithLabelValues("transaction")); got != txBefore {
		t.Fatalf("PaymentRefUpdates(transaction): got=%v want=%v", got, txBefore)
	}
	if got := testutil.ToFloat64(metrics.PaymentRefRowsUpdated); got != rowsBefore+3 {
		t.Fatalf("PaymentRefRowsUpdated: got=%v want=%v", got, rowsBefore+3)
	}
}

func TestStoreOpDuration_Observe(t *testing.T) {
	metrics.MustRegister()

	before := testutil.CollectAndCount(metrics.StoreOpDuration)
	metrics.StoreOpDuration.WithLabelValues("metrics_test_op").Observe(0.01)
	if got := testutil.CollectAndCount(metrics.StoreOpDuration); got != before+1 {
		t.Fatalf("StoreOpDuration series: got=%d want=%d", got, before+1)
	}
}

func TestDedupeSize_GaugeSet(t *testing.T) {
	metrics.MustRegister()

	cur := testutil.ToFloat64(metrics.DedupeSize)

	metrics.DedupeSize.Set(cur + 5)
	if got := testutil.ToFloat64(metrics.DedupeSize); got != cur+5 {
		t.Fatalf("DedupeSize after +5: got=%v want=%v", got, cur+5)
	}

	metrics.DedupeSize.Set(cur) // вернуть как было
	if got := testutil.ToFloat64(metrics.DedupeSize); got != cur {
		t.Fatalf("DedupeSize restore: got=%v want=%v", got, cur)
	}
}
