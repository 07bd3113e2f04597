package rest

import (
	"net/http"

	"github.com/Gunvolt24/wc_paymeta/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// NewRouter — маршруты API. otelServiceName == "" — без otelgin.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/health/store", h.storeHealth)

	customers := r.Group("/customers/:customer")
	{
		customers.GET("/orders", h.ordersByEmail)
		customers.GET("/orders/payment-ref", h.ordersWithPaymentRef)
		customers.GET("/summary", h.customerSummary)
		customers.GET("/payment-methods", h.paymentMethods)
		customers.PUT("/payment-reference", h.updatePaymentReference)
	}

	r.GET("/orders/:id/meta", h.orderMeta)
	r.POST("/webhooks/stripe", h.stripeWebhook)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	return r
}
