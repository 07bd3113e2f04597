package rest_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/Gunvolt24/wc_paymeta/internal/domain"
	"github.com/Gunvolt24/wc_paymeta/internal/ports/mocks"
	rest "github.com/Gunvolt24/wc_paymeta/internal/transport/http"
)

const testWebhookSecret = "whsec_test_paymeta"

type webhookFixture struct {
	updater *mocks.MockPaymentRefUpdater
	dedupe  *mocks.MockEventDeduper
	router  *gin.Engine
}

func newWebhookFixture(t *testing.T) *webhookFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	f := &webhookFixture{
		updater: mocks.NewMockPaymentRefUpdater(ctrl),
		dedupe:  mocks.NewMockEventDeduper(ctrl),
	}
	wh := rest.NewStripeWebhook(testWebhookSecret, f.updater, f.dedupe, noopLogger{}, time.Second)
	h := rest.NewHandler(rest.Deps{
		Reports: mocks.NewMockOrderReportService(ctrl),
		Updater: f.updater,
		Webhook: wh,
		Log:     noopLogger{},
	})
	f.router = rest.NewRouter(h, "")
	return f
}

func setupIntentEvent(id, evType, email, paymentMethod string) []byte {
	return []byte(fmt.Sprintf(`{
		"id": %q,
		"object": "event",
		"api_version": %q,
		"type": %q,
		"data": {"object": {
			"id": "seti_123",
			"object": "setup_intent",
			"status": "succeeded",
			"payment_method": %q,
			"metadata": {"customer_email": %q}
		}}
	}`, id, stripe.APIVersion, evType, paymentMethod, email))
}

func (f *webhookFixture) post(payload []byte, secret string) *httptest.ResponseRecorder {
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: time.Now(),
	})
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", bytes.NewReader(signed.Payload))
	req.Header.Set("Stripe-Signature", signed.Header)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestStripeWebhook_SetupIntentSucceeded_Applied(t *testing.T) {
	f := newWebhookFixture(t)

	f.dedupe.EXPECT().Claim(gomock.Any(), "evt_1").Return(true)
	f.updater.EXPECT().UpdatePaymentReference(gomock.Any(), email, "pm_123").
		Return(domain.OK("updated", domain.UpdateData{Email: email, NewReference: "pm_123", UpdatedCount: 1}))

	w := f.post(setupIntentEvent("evt_1", "setup_intent.succeeded", email, "pm_123"), testWebhookSecret)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if got := decodeEnvelope(t, w); got["status"] != "applied" {
		t.Fatalf("want status=applied, got %v", got)
	}
}

func TestStripeWebhook_Duplicate_NotReprocessed(t *testing.T) {
	f := newWebhookFixture(t)

	f.dedupe.EXPECT().Claim(gomock.Any(), "evt_dup").Return(false)
	f.updater.EXPECT().UpdatePaymentReference(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := f.post(setupIntentEvent("evt_dup", "setup_intent.succeeded", email, "pm_123"), testWebhookSecret)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if got := decodeEnvelope(t, w); got["status"] != "duplicate" {
		t.Fatalf("want status=duplicate, got %v", got)
	}
}

func TestStripeWebhook_OtherType_Ignored(t *testing.T) {
	f := newWebhookFixture(t)

	f.updater.EXPECT().UpdatePaymentReference(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := f.post(setupIntentEvent("evt_2", "setup_intent.canceled", email, "pm_123"), testWebhookSecret)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if got := decodeEnvelope(t, w); got["status"] != "ignored" {
		t.Fatalf("want status=ignored, got %v", got)
	}
}

func TestStripeWebhook_BadSignature_400(t *testing.T) {
	f := newWebhookFixture(t)

	w := f.post(setupIntentEvent("evt_3", "setup_intent.succeeded", email, "pm_123"), "whsec_wrong")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
}

func TestStripeWebhook_MissingSignature_400(t *testing.T) {
	f := newWebhookFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe",
		bytes.NewReader(setupIntentEvent("evt_4", "setup_intent.succeeded", email, "pm_123")))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
}

// Невалидный запрос подтверждаем: повтор события ничего не исправит
func TestStripeWebhook_ValidationFailure_Acknowledged(t *testing.T) {
	f := newWebhookFixture(t)

	f.dedupe.EXPECT().Claim(gomock.Any(), "evt_5").Return(true)
	f.updater.EXPECT().UpdatePaymentReference(gomock.Any(), "", "pm_123").
		Return(domain.Fail[domain.UpdateData](domain.ErrorTypeValidation, "email is required", nil))

	w := f.post(setupIntentEvent("evt_5", "setup_intent.succeeded", "", "pm_123"), testWebhookSecret)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if got := decodeEnvelope(t, w); got["status"] != "rejected" {
		t.Fatalf("want status=rejected, got %v", got)
	}
}

// БД недоступна: 503, ID события освобождён, Stripe пришлёт его снова
func TestStripeWebhook_StoreFailure_ReleasedAndRetried(t *testing.T) {
	f := newWebhookFixture(t)

	f.dedupe.EXPECT().Claim(gomock.Any(), "evt_6").Return(true)
	f.updater.EXPECT().UpdatePaymentReference(gomock.Any(), email, "pm_123").
		Return(domain.Fail[domain.UpdateData](domain.ErrorTypeConnection, "store unavailable", nil))
	f.dedupe.EXPECT().Release(gomock.Any(), "evt_6")

	w := f.post(setupIntentEvent("evt_6", "setup_intent.succeeded", email, "pm_123"), testWebhookSecret)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("want 503, got %d", w.Code)
	}
}
