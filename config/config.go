package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// DefaultPrefix — префикс переменных окружения сервиса.
const DefaultPrefix = "PAYMETA"

type HTTP struct {
	Addr              string        `default:":8080" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	HandlerTimeout    time.Duration `default:"5s" envconfig:"HANDLER_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"5s" envconfig:"GRACEFUL_TIMEOUT"`
}

type Metrics struct {
	Addr string `default:":2112" envconfig:"ADDR"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"wc-paymeta" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

// Store — реквизиты внешней БД магазина. Port == 0 — стандартный порт Postgres.
type Store struct {
	Host             string        `default:"localhost" envconfig:"DB_HOST"`
	Port             int           `default:"5432" envconfig:"DB_PORT"`
	User             string        `envconfig:"DB_USER"`
	Password         string        `envconfig:"DB_PASSWORD"`
	Name             string        `envconfig:"DB_NAME"`
	SSLMode          string        `default:"disable" envconfig:"SSL_MODE"`
	MaxConns         int32         `default:"10" envconfig:"MAX_CONNS"`
	ConnectTimeout   time.Duration `default:"5s" envconfig:"CONNECT_TIMEOUT"`
	StatementTimeout time.Duration `default:"10s" envconfig:"STATEMENT_TIMEOUT"`
	TablePrefix      string        `default:"wp_" envconfig:"TABLE_PREFIX"`
	PaymentRefKey    string        `default:"_stripe_source_id" envconfig:"PAYMENT_REF_KEY"`
}

type Kafka struct {
	Enabled        bool          `default:"false" envconfig:"ENABLED"`
	Brokers        []string      `default:"kafka:9092" envconfig:"BROKERS"`
	Topic          string        `default:"payment-method-changed" envconfig:"TOPIC"`
	GroupID        string        `default:"wc-paymeta" envconfig:"GROUP_ID"`
	StartOffset    string        `default:"last" envconfig:"START_OFFSET"`
	ProcessTimeout time.Duration `default:"10s" envconfig:"PROCESS_TIMEOUT"`
	RetryInitial   time.Duration `default:"1s" envconfig:"RETRY_INITIAL"`
	RetryMax       time.Duration `default:"30s" envconfig:"RETRY_MAX"`
}

// Webhook — приём событий Stripe. Пустой секрет — эндпоинт выключен.
type Webhook struct {
	StripeSecret  string        `envconfig:"STRIPE_SECRET"`
	DedupCapacity int           `default:"10000" envconfig:"DEDUP_CAPACITY"`
	DedupTTL      time.Duration `default:"24h" envconfig:"DEDUP_TTL"`
	// Redis для дедупликации между экземплярами; пусто — память процесса.
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `default:"0" envconfig:"REDIS_DB"`
}

// Privacy — псевдонимизация email в логах и токены email для URL.
type Privacy struct {
	PseudonymizeLogs bool   `default:"true" envconfig:"PSEUDONYMIZE_LOGS"`
	PseudonymKey     string `envconfig:"PSEUDONYM_KEY"`
	EmailTokenKey    string `envconfig:"EMAIL_TOKEN_KEY"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Config struct {
	HTTP    HTTP
	Metrics Metrics
	Tracing Tracing
	Store   Store
	Kafka   Kafka
	Webhook Webhook
	Privacy Privacy
	Logger  Logger
}

// Load — конфигурация из окружения с префиксом по умолчанию.
func Load() (Config, error) {
	return LoadWithPrefix(DefaultPrefix)
}

// LoadWithPrefix — то же, что Load, но с произвольным префиксом (удобно в тестах).
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config

	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}

	return c, nil
}
