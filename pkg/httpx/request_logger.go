package httpx

import (
	"time"

	"github.com/Gunvolt24/wc_paymeta/internal/ports"
	"github.com/gin-gonic/gin"
)

// RequestLogger — одна структурированная запись на запрос.
// request_id, trace_id и клиент логгер берёт из контекста сам.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// не логируем /metrics, /ping
		switch c.FullPath() {
		case "/metrics", "/ping":
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		kv := []any{
			"method", c.Request.Method,
			"route", path,
			"status", c.Writer.Status(),
			"ip", c.ClientIP(),
			"took_ms", time.Since(start).Milliseconds(),
			"size", c.Writer.Size(),
		}
		if len(c.Errors) > 0 {
			kv = append(kv, "errors", c.Errors.String())
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			log.Errorw(c.Request.Context(), "http request", kv...)
		case status >= 400:
			log.Warnw(c.Request.Context(), "http request", kv...)
		default:
			log.Infow(c.Request.Context(), "http request", kv...)
		}
	}
}
