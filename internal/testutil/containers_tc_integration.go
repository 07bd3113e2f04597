//go:build integration

package testutil

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/Gunvolt24/wc_paymeta/config"
	"github.com/jackc/pgx/v5/pgxpool"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redpanda"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Общий логгер для testcontainers.
var tcLogger = log.New(os.Stdout, "[tc] ", log.LstdFlags)

func shortID(c tc.Container) string {
	id := c.GetContainerID()
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

// logHooks — старт, готовность и остановка контейнера в логе теста.
func logHooks(l *log.Logger) tc.ContainerLifecycleHooks {
	return tc.ContainerLifecycleHooks{
		PreCreates: []tc.ContainerRequestHook{
			func(_ context.Context, req tc.ContainerRequest) error {
				l.Printf("creating image=%s", req.Image)
				return nil
			},
		},
		PostReadies: []tc.ContainerHook{
			func(_ context.Context, c tc.Container) error {
				l.Printf("ready id=%s", shortID(c))
				return nil
			},
		},
		PostTerminates: []tc.ContainerHook{
			func(_ context.Context, c tc.Container) error {
				l.Printf("terminated id=%s", shortID(c))
				return nil
			},
		},
	}
}

// ----------------------------------------------------------------------------
// БД магазина (Postgres с фикстурой таблиц WooCommerce)
// ----------------------------------------------------------------------------

type StoreEnv struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool // для сидов и проверок в тестах
	DSN       string
	Store     config.Store // реквизиты для NewPool/NewConnector сервиса
}

// StartStoreTC — Postgres в контейнере со схемой wp_wc_orders / wp_wc_orders_meta.
func StartStoreTC(ctx context.Context) (*StoreEnv, func(context.Context) error, error) {
	pg, err := postgres.Run(
		ctx,
		"postgres:16-alpine",
		tc.WithLifecycleHooks(logHooks(tcLogger)),
		tc.WithExposedPorts("5432/tcp"),
		postgres.WithDatabase("woocommerce"),
		postgres.WithUsername("shop"),
		postgres.WithPassword("shop"),
		tc.WithWaitStrategy(
			wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithDeadline(60*time.Second),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run postgres: %w", err)
	}
	fail := func(step string, err error) (*StoreEnv, func(context.Context) error, error) {
		_ = pg.Terminate(context.Background())
		return nil, nil, fmt.Errorf("%s: %w", step, err)
	}

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return fail("conn string", err)
	}
	if err := ApplyStoreSchema(dsn); err != nil {
		return fail("schema", err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		return fail("host", err)
	}
	mapped, err := pg.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return fail("port", err)
	}
	port, _ := strconv.Atoi(mapped.Port())

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return fail("new pool", err)
	}

	env := &StoreEnv{
		Container: pg,
		Pool:      pool,
		DSN:       dsn,
		Store: config.Store{
			Host:             host,
			Port:             port,
			User:             "shop",
			Password:         "shop",
			Name:             "woocommerce",
			SSLMode:          "disable",
			MaxConns:         5,
			ConnectTimeout:   5 * time.Second,
			StatementTimeout: 10 * time.Second,
			TablePrefix:      "wp_",
			PaymentRefKey:    "_stripe_source_id",
		},
	}
	stop := func(c context.Context) error {
		pool.Close()
		return pg.Terminate(c)
	}
	return env, stop, nil
}

// ----------------------------------------------------------------------------
// Kafka
// ----------------------------------------------------------------------------

type KafkaEnv struct {
	Container *redpanda.Container
	Brokers   []string
}

func StartKafkaTC(ctx context.Context) (*KafkaEnv, func(context.Context) error, error) {
	rp, err := redpanda.Run(
		ctx,
		"docker.redpanda.com/redpandadata/redpanda:v23.3.8",
		tc.WithLifecycleHooks(logHooks(tcLogger)),
		redpanda.WithAutoCreateTopics(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run redpanda: %w", err)
	}

	seed, err := rp.KafkaSeedBroker(ctx) // "host:port" для клиента
	if err != nil {
		_ = tc.TerminateContainer(rp)
		return nil, nil, fmt.Errorf("seed broker: %w", err)
	}

	stop := func(_ context.Context) error { return tc.TerminateContainer(rp) }
	return &KafkaEnv{Container: rp, Brokers: []string{seed}}, stop, nil
}

// ----------------------------------------------------------------------------
// Redis (общая дедупликация событий)
// ----------------------------------------------------------------------------

// StartRedisTC — redis:7-alpine, возвращает адрес host:port.
func StartRedisTC(ctx context.Context) (string, func(context.Context) error, error) {
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:          "redis:7-alpine",
			ExposedPorts:   []string{"6379/tcp"},
			WaitingFor:     wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
			LifecycleHooks: []tc.ContainerLifecycleHooks{logHooks(tcLogger)},
		},
		Started: true,
	})
	if err != nil {
		return "", nil, fmt.Errorf("run redis: %w", err)
	}
	addr, err := c.Endpoint(ctx, "")
	if err != nil {
		_ = c.Terminate(context.Background())
		return "", nil, fmt.Errorf("redis endpoint: %w", err)
	}
	return addr, func(ctx context.Context) error { return c.Terminate(ctx) }, nil
}
