package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/wc_paymeta/internal/domain"
	"github.com/Gunvolt24/wc_paymeta/internal/ports"
	"github.com/Gunvolt24/wc_paymeta/pkg/metrics"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

const (
	webhookBodyLimit = 64 << 10
	// customerEmailKey — ключ metadata SetupIntent, куда магазин кладёт email покупателя.
	customerEmailKey = "customer_email"
)

// StripeWebhook — приём событий Stripe о новом платёжном методе клиента.
type StripeWebhook struct {
	secret  string
	updater ports.PaymentRefUpdater
	dedupe  ports.EventDeduper // nil — без дедупликации
	log     ports.Logger
	timeout time.Duration
}

// NewStripeWebhook — secret — signing secret эндпоинта (whsec_…).
func NewStripeWebhook(
	secret string,
	updater ports.PaymentRefUpdater,
	dedupe ports.EventDeduper,
	log ports.Logger,
	timeout time.Duration,
) *StripeWebhook {
	return &StripeWebhook{secret: secret, updater: updater, dedupe: dedupe, log: log, timeout: timeout}
}

type webhookAck struct {
	Received bool                 `json:"received"`
	Status   string               `json:"status"`
	Result   *domain.UpdateResult `json:"result,omitempty"`
}

// Handle — проверка подписи, дедупликация по ID события и применение setup_intent.succeeded.
// 2xx — Stripe больше не присылает событие; 5xx — присылает повторно.
func (w *StripeWebhook) Handle(c *gin.Context) {
	ctx := c.Request.Context()

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, webhookBodyLimit)
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		w.reject(c, "unknown", "failed to read request body")
		return
	}

	sig := c.GetHeader("Stripe-Signature")
	if strings.TrimSpace(sig) == "" {
		w.reject(c, "unknown", "invalid stripe signature")
		return
	}
	event, err := webhook.ConstructEventWithOptions(payload, sig, w.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		w.log.Warnw(ctx, "stripe webhook signature rejected", "error", err)
		w.reject(c, "unknown", "invalid stripe signature")
		return
	}

	evType := string(event.Type)
	if event.Type != stripe.EventTypeSetupIntentSucceeded {
		metrics.WebhookEvents.WithLabelValues(evType, "ignored").Inc()
		c.JSON(http.StatusOK, webhookAck{Received: true, Status: "ignored"})
		return
	}

	if w.dedupe != nil && !w.dedupe.Claim(ctx, event.ID) {
		metrics.WebhookEvents.WithLabelValues(evType, "duplicate").Inc()
		w.log.Infow(ctx, "stripe webhook duplicate event", "event_id", event.ID)
		c.JSON(http.StatusOK, webhookAck{Received: true, Status: "duplicate"})
		return
	}

	var si stripe.SetupIntent
	if err := json.Unmarshal(event.Data.Raw, &si); err != nil {
		metrics.WebhookEvents.WithLabelValues(evType, "rejected").Inc()
		w.log.Warnw(ctx, "stripe webhook: undecodable setup intent", "event_id", event.ID, "error", err)
		c.JSON(http.StatusOK, webhookAck{Received: true, Status: "rejected"})
		return
	}

	email := si.Metadata[customerEmailKey]
	reference := ""
	if si.PaymentMethod != nil {
		reference = si.PaymentMethod.ID
	}

	uctx, cancel := withTimeout(ctx, w.timeout)
	res := w.updater.UpdatePaymentReference(uctx, email, reference)
	cancel()

	switch {
	case res.Success:
		metrics.WebhookEvents.WithLabelValues(evType, "applied").Inc()
		c.JSON(http.StatusOK, webhookAck{Received: true, Status: "applied", Result: &res})
	case res.ErrorType == domain.ErrorTypeValidation:
		// повтор не поможет: подтверждаем, чтобы Stripe не ретраил
		metrics.WebhookEvents.WithLabelValues(evType, "rejected").Inc()
		c.JSON(http.StatusOK, webhookAck{Received: true, Status: "rejected", Result: &res})
	default:
		if w.dedupe != nil {
			w.dedupe.Release(ctx, event.ID)
		}
		metrics.WebhookEvents.WithLabelValues(evType, "failed").Inc()
		c.JSON(statusFor(false, res.ErrorType), webhookAck{Received: true, Status: "failed", Result: &res})
	}
}

func (w *StripeWebhook) reject(c *gin.Context, evType, message string) {
	metrics.WebhookEvents.WithLabelValues(evType, "rejected").Inc()
	c.JSON(http.StatusBadRequest, domain.Fail[any](domain.ErrorTypeValidation, message, nil))
}
