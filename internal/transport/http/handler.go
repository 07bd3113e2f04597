package rest

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Gunvolt24/wc_paymeta/internal/domain"
	"github.com/Gunvolt24/wc_paymeta/internal/ports"
	"github.com/Gunvolt24/wc_paymeta/pkg/ctxmeta"
	"github.com/Gunvolt24/wc_paymeta/pkg/privacy"
	"github.com/gin-gonic/gin"
)

// EmailDecrypter — расшифровка токена email из URL.
type EmailDecrypter interface {
	Decrypt(token string) (string, error)
}

// Deps — зависимости HTTP-слоя.
type Deps struct {
	Reports        ports.OrderReportService
	Updater        ports.PaymentRefUpdater
	Tokens         EmailDecrypter    // nil — токены в пути не принимаются
	Masker         ports.EmailMasker // nil — email в логах как есть
	Webhook        *StripeWebhook    // nil — /webhooks/stripe отвечает 404
	Log            ports.Logger
	HandlerTimeout time.Duration // 0 — без отдельного таймаута
}

type Handler struct {
	reports ports.OrderReportService
	updater ports.PaymentRefUpdater
	tokens  EmailDecrypter
	masker  ports.EmailMasker
	webhook *StripeWebhook
	log     ports.Logger
	timeout time.Duration
}

func NewHandler(d Deps) *Handler {
	return &Handler{
		reports: d.Reports,
		updater: d.Updater,
		tokens:  d.Tokens,
		masker:  d.Masker,
		webhook: d.Webhook,
		log:     d.Log,
		timeout: d.HandlerTimeout,
	}
}

type updateBody struct {
	PaymentReference string `json:"payment_reference"`
}

// statusFor — HTTP-статус по категории конверта.
func statusFor(success bool, kind domain.ErrorType) int {
	if success {
		return http.StatusOK
	}
	switch kind {
	case domain.ErrorTypeValidation:
		return http.StatusBadRequest
	case domain.ErrorTypeNotFound:
		return http.StatusNotFound
	case domain.ErrorTypeConnection:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respond[T any](c *gin.Context, res domain.Result[T]) {
	c.JSON(statusFor(res.Success, res.ErrorType), res)
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, domain.Fail[any](domain.ErrorTypeValidation, message, nil))
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// requestCtx — контекст запроса с таймаутом обработчика.
func (h *Handler) requestCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	return withTimeout(c.Request.Context(), h.timeout)
}

// customer — email из параметра пути: адрес как есть или токен "t.…".
func (h *Handler) customer(c *gin.Context) (context.Context, string, bool) {
	raw := strings.TrimSpace(c.Param("customer"))
	email := raw
	if privacy.IsToken(raw) {
		if h.tokens == nil {
			badRequest(c, "email tokens are not enabled")
			return nil, "", false
		}
		decoded, err := h.tokens.Decrypt(raw)
		if err != nil {
			badRequest(c, "invalid email token")
			return nil, "", false
		}
		email = decoded
	}

	ref := email
	if h.masker != nil {
		ref = h.masker.Email(email)
	}
	return ctxmeta.WithCustomer(c.Request.Context(), ref), email, true
}

func (h *Handler) withCustomer(c *gin.Context, fn func(ctx context.Context, email string)) {
	base, email, ok := h.customer(c)
	if !ok {
		return
	}
	c.Request = c.Request.WithContext(base)

	ctx, cancel := h.requestCtx(c)
	defer cancel()
	fn(ctx, email)
}

func (h *Handler) storeHealth(c *gin.Context) {
	ctx, cancel := h.requestCtx(c)
	defer cancel()
	respond(c, h.reports.TestConnection(ctx))
}

func (h *Handler) ordersByEmail(c *gin.Context) {
	h.withCustomer(c, func(ctx context.Context, email string) {
		respond(c, h.reports.GetOrdersByEmail(ctx, email))
	})
}

func (h *Handler) ordersWithPaymentRef(c *gin.Context) {
	h.withCustomer(c, func(ctx context.Context, email string) {
		respond(c, h.reports.GetOrdersWithPaymentRef(ctx, email))
	})
}

func (h *Handler) customerSummary(c *gin.Context) {
	h.withCustomer(c, func(ctx context.Context, email string) {
		respond(c, h.reports.GetCustomerOrdersSummary(ctx, email))
	})
}

func (h *Handler) paymentMethods(c *gin.Context) {
	h.withCustomer(c, func(ctx context.Context, email string) {
		respond(c, h.reports.GetCustomerPaymentMethods(ctx, email))
	})
}

func (h *Handler) updatePaymentReference(c *gin.Context) {
	var body updateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "body must be {\"payment_reference\": \"...\"}")
		return
	}
	h.withCustomer(c, func(ctx context.Context, email string) {
		respond(c, h.updater.UpdatePaymentReference(ctx, email, body.PaymentReference))
	})
}

func (h *Handler) orderMeta(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "order id must be an integer")
		return
	}

	ctx, cancel := h.requestCtx(c)
	defer cancel()
	respond(c, h.reports.GetOrderMeta(ctx, id, c.Query("key")))
}

func (h *Handler) stripeWebhook(c *gin.Context) {
	if h.webhook == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "stripe webhook is disabled"})
		return
	}
	h.webhook.Handle(c)
}
