package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/wc_paymeta/config"
	"github.com/Gunvolt24/wc_paymeta/internal/dedupe/memory"
	dedupe "github.com/Gunvolt24/wc_paymeta/internal/dedupe/redis"
	"github.com/Gunvolt24/wc_paymeta/internal/kafka"
	"github.com/Gunvolt24/wc_paymeta/internal/ports"
	"github.com/Gunvolt24/wc_paymeta/internal/repo/postgres"
	rest "github.com/Gunvolt24/wc_paymeta/internal/transport/http"
	"github.com/Gunvolt24/wc_paymeta/internal/usecase"
	"github.com/Gunvolt24/wc_paymeta/pkg/logger"
	"github.com/Gunvolt24/wc_paymeta/pkg/metrics"
	"github.com/Gunvolt24/wc_paymeta/pkg/privacy"
	"github.com/Gunvolt24/wc_paymeta/pkg/telemetry"
	"github.com/Gunvolt24/wc_paymeta/pkg/validate"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, consumer).
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // HTTP-сервер API
	MetricsServer   *http.Server          // отдельный /metrics; nil — только на сервере API
	KafkaConsumer   ports.MessageConsumer // консьюмер сообщений; nil — Kafka выключена
	gracefulTimeout time.Duration         // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
// Недоступность БД на старте не фатальна: пул ленивый, health покажет состояние.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Пул подключений к БД магазина
	pool, err := postgres.NewPool(ctx, cfg.Store)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}
	conn := postgres.NewConnector(pool, cfg.Store)

	pingCtx, cancelPing := context.WithTimeout(ctx, cfg.Store.ConnectTimeout+time.Second)
	if info, pErr := conn.Ping(pingCtx); pErr != nil {
		logg.Warnw(ctx, "store is not reachable at startup", "host", cfg.Store.Host, "database", cfg.Store.Name, "error", pErr)
	} else {
		logg.Infow(ctx, "store connected", "host", info.Host, "database", info.Database,
			"server_version", info.ServerVersion, "latency_ms", info.LatencyMS)
	}
	cancelPing()

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, telemetry.Options{
			ServiceName: cfg.Tracing.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
		})
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Email в логах: псевдоним или адрес как есть.
	if cfg.Privacy.PseudonymizeLogs && cfg.Privacy.PseudonymKey == "" {
		logg.Warnf(ctx, "PSEUDONYM_KEY is empty: log pseudonyms are unkeyed hashes")
	}
	masker := privacy.NewPseudonymizer(cfg.Privacy.PseudonymKey, cfg.Privacy.PseudonymizeLogs)

	// Токены email в URL (опционально).
	var tokens rest.EmailDecrypter
	if cfg.Privacy.EmailTokenKey != "" {
		t, tErr := privacy.NewEmailTokens(cfg.Privacy.EmailTokenKey)
		if tErr != nil {
			logg.Warnf(ctx, "email tokens disabled: %v", tErr)
		} else {
			tokens = t
		}
	}

	// Сборка зависимостей доменного слоя.
	refKey := cfg.Store.PaymentRefKey
	orderRepo := postgres.NewOrderRepository(conn, cfg.Store.TablePrefix, refKey)
	txRunner := postgres.NewMetaTxRunner(conn, cfg.Store.TablePrefix, logg)
	updater := usecase.NewPaymentRefService(orderRepo, txRunner, validate.NewUpdateValidator(), logg, masker, refKey)
	reports := usecase.NewOrderQueryService(orderRepo, conn, logg, masker, refKey)

	// Один дедупликатор на webhook и Kafka: одно событие может прийти обоими путями.
	var deduper ports.EventDeduper = memory.NewEventDeduper(cfg.Webhook.DedupCapacity, cfg.Webhook.DedupTTL)
	closeRedis := func() error { return nil }
	if addr := cfg.Webhook.RedisAddr; addr != "" {
		rdb, rErr := dedupe.NewClient(ctx, addr, cfg.Webhook.RedisPassword, cfg.Webhook.RedisDB)
		if rErr != nil {
			logg.Warnf(ctx, "redis dedupe unavailable (addr=%s), using in-process: %v", addr, rErr)
		} else {
			deduper = dedupe.NewEventDeduper(rdb, cfg.Webhook.DedupTTL, logg)
			closeRedis = rdb.Close
		}
	}

	var stripeWebhook *rest.StripeWebhook
	if cfg.Webhook.StripeSecret != "" {
		stripeWebhook = rest.NewStripeWebhook(cfg.Webhook.StripeSecret, updater, deduper, logg, cfg.HTTP.HandlerTimeout)
	}

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(rest.Deps{
		Reports:        reports,
		Updater:        updater,
		Tokens:         tokens,
		Masker:         masker,
		Webhook:        stripeWebhook,
		Log:            logg,
		HandlerTimeout: cfg.HTTP.HandlerTimeout,
	})
	router := rest.NewRouter(httpHandler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	// Отдельный адрес для Prometheus, если он отличается от адреса API.
	var metricsSrv *http.Server
	if addr := cfg.Metrics.Addr; addr != "" && addr != cfg.HTTP.Addr {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsSrv = &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout}
	}

	// Консьюмер Kafka (опционально).
	var consumer ports.MessageConsumer
	if cfg.Kafka.Enabled {
		kafkaCfg := kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			Topic:          cfg.Kafka.Topic,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}
		consumer = kafka.NewConsumer(&kafkaCfg, updater, deduper, logg, masker)
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		MetricsServer:   metricsSrv,
		KafkaConsumer:   consumer,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if consumer != nil {
			if err := consumer.Close(); err != nil {
				logg.Warnf(ctx, "kafka consumer close error: %v", err)
			}
		}

		if rerr := closeRedis(); rerr != nil {
			logg.Warnf(ctx, "redis close: %v", rerr)
		}
		conn.Close()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-серверы и консьюмера; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 3)

	// Запуск консьюмера.
	if a.KafkaConsumer != nil {
		go func() {
			a.Logger.Infof(ctx, "kafka consumer starting")
			if err := a.KafkaConsumer.Run(ctx); err != nil {
				errCh <- err
			}
		}()
	}

	// Запуск HTTP-серверов.
	for _, srv := range []*http.Server{a.HTTPServer, a.MetricsServer} {
		if srv == nil {
			continue
		}
		go func(srv *http.Server) {
			a.Logger.Infof(ctx, "http server starting (addr=%s)", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}(srv)
	}

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-серверов.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	for _, srv := range []*http.Server{a.HTTPServer, a.MetricsServer} {
		if srv == nil {
			continue
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warnf(ctx, "http server shutdown failed addr=%s: %v", srv.Addr, err)
		} else {
			a.Logger.Infof(ctx, "http server stopped gracefully addr=%s", srv.Addr)
		}
	}

	// Остановка Kafka-консьюмера
	if a.KafkaConsumer != nil {
		if err := a.KafkaConsumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
