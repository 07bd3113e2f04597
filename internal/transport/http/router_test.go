package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Gunvolt24/wc_paymeta/internal/domain"
	"github.com/Gunvolt24/wc_paymeta/internal/ports/mocks"
	rest "github.com/Gunvolt24/wc_paymeta/internal/transport/http"
	"github.com/Gunvolt24/wc_paymeta/pkg/privacy"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
)

const email = "client@example.com"

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}
func (noopLogger) Infow(context.Context, string, ...any)  {}
func (noopLogger) Warnw(context.Context, string, ...any)  {}
func (noopLogger) Errorw(context.Context, string, ...any) {}

type fixture struct {
	reports *mocks.MockOrderReportService
	updater *mocks.MockPaymentRefUpdater
	router  *gin.Engine
}

func newFixture(t *testing.T, tokens rest.EmailDecrypter) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	f := &fixture{
		reports: mocks.NewMockOrderReportService(ctrl),
		updater: mocks.NewMockPaymentRefUpdater(ctrl),
	}
	h := rest.NewHandler(rest.Deps{
		Reports: f.reports,
		Updater: f.updater,
		Tokens:  tokens,
		Masker:  privacy.NewPseudonymizer("test", true),
		Log:     noopLogger{},
	})
	f.router = rest.NewRouter(h, "")
	return f
}

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v body=%s", err, w.Body.String())
	}
	return got
}

func TestGetOrders_OK(t *testing.T) {
	f := newFixture(t, nil)

	orders := []domain.Order{{ID: 11, BillingEmail: email}, {ID: 10, BillingEmail: email}}
	f.reports.EXPECT().GetOrdersByEmail(gomock.Any(), email).
		Return(domain.OK("2 orders", orders))

	w := f.do(http.MethodGet, "/customers/"+email+"/orders", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	got := decodeEnvelope(t, w)
	if got["success"] != true {
		t.Fatalf("want success envelope, got %v", got)
	}
	if data, _ := got["data"].([]any); len(data) != 2 {
		t.Fatalf("want 2 orders in data, got %v", got["data"])
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("X-Request-ID must be set")
	}
}

func TestGetOrders_ConnectionFailure_503(t *testing.T) {
	f := newFixture(t, nil)

	f.reports.EXPECT().GetOrdersByEmail(gomock.Any(), email).
		Return(domain.Fail[[]domain.Order](domain.ErrorTypeConnection, "store unavailable", nil))

	w := f.do(http.MethodGet, "/customers/"+email+"/orders", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("want 503, got %d", w.Code)
	}
	if got := decodeEnvelope(t, w); got["error_type"] != "connection" {
		t.Fatalf("want error_type=connection, got %v", got)
	}
}

func TestCustomerToken_Decrypted(t *testing.T) {
	tokens, err := privacy.NewEmailTokens("token-secret")
	if err != nil {
		t.Fatalf("NewEmailTokens: %v", err)
	}
	tok, err := tokens.Encrypt(email)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	f := newFixture(t, tokens)
	f.reports.EXPECT().GetCustomerOrdersSummary(gomock.Any(), email).
		Return(domain.OK("summary", domain.CustomerOrderSummary{Email: email, TotalOrders: 1}))

	w := f.do(http.MethodGet, "/customers/"+tok+"/summary", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCustomerToken_Invalid_400(t *testing.T) {
	tokens, err := privacy.NewEmailTokens("token-secret")
	if err != nil {
		t.Fatalf("NewEmailTokens: %v", err)
	}
	f := newFixture(t, tokens)

	w := f.do(http.MethodGet, "/customers/t.garbage/summary", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
	if got := decodeEnvelope(t, w); got["error_type"] != "validation" {
		t.Fatalf("want error_type=validation, got %v", got)
	}
}

func TestCustomerToken_Disabled_400(t *testing.T) {
	f := newFixture(t, nil)

	w := f.do(http.MethodGet, "/customers/t.abc/payment-methods", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
}

func TestPaymentMethods_OK(t *testing.T) {
	f := newFixture(t, nil)

	f.reports.EXPECT().GetCustomerPaymentMethods(gomock.Any(), email).
		Return(domain.OK("report", domain.PaymentMethodsReport{Email: email, Primary: "stripe"}))

	w := f.do(http.MethodGet, "/customers/"+email+"/payment-methods", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestOrdersWithPaymentRef_OK(t *testing.T) {
	f := newFixture(t, nil)

	rows := []domain.OrderWithPaymentRef{{Order: domain.Order{ID: 7}, PaymentRef: "src_1"}}
	f.reports.EXPECT().GetOrdersWithPaymentRef(gomock.Any(), email).Return(domain.OK("1 row", rows))

	w := f.do(http.MethodGet, "/customers/"+email+"/orders/payment-ref", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestUpdatePaymentReference_OK(t *testing.T) {
	f := newFixture(t, nil)

	f.updater.EXPECT().UpdatePaymentReference(gomock.Any(), email, "pm_new").
		Return(domain.OK("updated", domain.UpdateData{Email: email, NewReference: "pm_new", UpdatedCount: 2}))

	w := f.do(http.MethodPut, "/customers/"+email+"/payment-reference", `{"payment_reference":"pm_new"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	data, _ := decodeEnvelope(t, w)["data"].(map[string]any)
	if data["updated_count"] != float64(2) {
		t.Fatalf("want updated_count=2, got %v", data)
	}
}

func TestUpdatePaymentReference_StatusMapping(t *testing.T) {
	cases := []struct {
		kind domain.ErrorType
		want int
	}{
		{domain.ErrorTypeValidation, http.StatusBadRequest},
		{domain.ErrorTypeConnection, http.StatusServiceUnavailable},
		{domain.ErrorTypeTransaction, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			f := newFixture(t, nil)
			f.updater.EXPECT().UpdatePaymentReference(gomock.Any(), email, "pm_new").
				Return(domain.Fail[domain.UpdateData](tc.kind, "failed", nil))

			w := f.do(http.MethodPut, "/customers/"+email+"/payment-reference", `{"payment_reference":"pm_new"}`)
			if w.Code != tc.want {
				t.Fatalf("want %d, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestUpdatePaymentReference_BadBody_400(t *testing.T) {
	f := newFixture(t, nil)

	w := f.do(http.MethodPut, "/customers/"+email+"/payment-reference", `{not json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
}

func TestOrderMeta_OK_WithKey(t *testing.T) {
	f := newFixture(t, nil)

	entries := []domain.MetaEntry{{ID: 1, OrderID: 42, Key: "_stripe_source_id", Value: "src_1"}}
	f.reports.EXPECT().GetOrderMeta(gomock.Any(), int64(42), "_stripe_source_id").Return(domain.OK("1 entry", entries))

	w := f.do(http.MethodGet, "/orders/42/meta?key=_stripe_source_id", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestOrderMeta_NotFound_404(t *testing.T) {
	f := newFixture(t, nil)

	f.reports.EXPECT().GetOrderMeta(gomock.Any(), int64(404), "").
		Return(domain.Fail[[]domain.MetaEntry](domain.ErrorTypeNotFound, "order not found", nil))

	w := f.do(http.MethodGet, "/orders/404/meta", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
}

func TestOrderMeta_BadID_400(t *testing.T) {
	f := newFixture(t, nil)

	w := f.do(http.MethodGet, "/orders/abc/meta", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
}

func TestStoreHealth(t *testing.T) {
	t.Run("up", func(t *testing.T) {
		f := newFixture(t, nil)
		f.reports.EXPECT().TestConnection(gomock.Any()).
			Return(domain.OK("connected", domain.ConnectionInfo{Host: "db", Database: "shop"}))
		if w := f.do(http.MethodGet, "/health/store", ""); w.Code != http.StatusOK {
			t.Fatalf("want 200, got %d", w.Code)
		}
	})
	t.Run("down", func(t *testing.T) {
		f := newFixture(t, nil)
		f.reports.EXPECT().TestConnection(gomock.Any()).
			Return(domain.Result[domain.ConnectionInfo]{
				Success: false, Message: "unreachable", Error: "dial tcp",
				ErrorType: domain.ErrorTypeConnection, Data: domain.ConnectionInfo{Host: "db"},
			})
		if w := f.do(http.MethodGet, "/health/store", ""); w.Code != http.StatusServiceUnavailable {
			t.Fatalf("want 503, got %d", w.Code)
		}
	})
}

func TestStripeWebhook_Disabled_404(t *testing.T) {
	f := newFixture(t, nil)

	if w := f.do(http.MethodPost, "/webhooks/stripe", `{}`); w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
}

func TestNoRoute_404(t *testing.T) {
	f := newFixture(t, nil)

	if w := f.do(http.MethodGet, "/no-such-route", ""); w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
}

func TestMethodNotAllowed_405(t *testing.T) {
	f := newFixture(t, nil)

	w := f.do(http.MethodPost, "/orders/1/meta", "")
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("want 405, got %d, body=%s", w.Code, w.Body.String())
	}
	if allow := w.Header().Get("Allow"); allow != "GET" {
		t.Fatalf("want Allow: GET, got %q", allow)
	}
}

func TestPing_200(t *testing.T) {
	f := newFixture(t, nil)

	if w := f.do(http.MethodGet, "/ping", ""); w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
}

func TestMetrics_200(t *testing.T) {
	f := newFixture(t, nil)

	w := f.do(http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	// Содержимое может меняться — достаточно проверить, что не пусто.
	if w.Body.Len() == 0 {
		t.Fatal("metrics body is empty")
	}
}
