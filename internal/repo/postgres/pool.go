package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Gunvolt24/wc_paymeta/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultPort = 5432

// BuildDSN — DSN в формате key=value из конфигурации магазина.
// Хост, начинающийся с "/", — каталог unix-сокета; pgx понимает его без доп. настроек.
func BuildDSN(cfg config.Store) string {
	port := cfg.Port
	if port <= 0 {
		port = defaultPort
	}

	parts := []string{
		"host=" + quoteDSN(cfg.Host),
		"port=" + strconv.Itoa(port),
	}
	if cfg.User != "" {
		parts = append(parts, "user="+quoteDSN(cfg.User))
	}
	if cfg.Password != "" {
		parts = append(parts, "password="+quoteDSN(cfg.Password))
	}
	if cfg.Name != "" {
		parts = append(parts, "dbname="+quoteDSN(cfg.Name))
	}
	if cfg.SSLMode != "" && !isUnixSocket(cfg.Host) {
		parts = append(parts, "sslmode="+quoteDSN(cfg.SSLMode))
	}
	if cfg.ConnectTimeout > 0 {
		// connect_timeout в секундах, меньше секунды — округляем вверх
		secs := int((cfg.ConnectTimeout + time.Second - 1) / time.Second)
		parts = append(parts, "connect_timeout="+strconv.Itoa(secs))
	}
	return strings.Join(parts, " ")
}

// NewPool — создаёт пул соединений к БД магазина.
// Пул ленивый: соединения открываются при первом Acquire, поэтому старт сервиса
// не зависит от доступности БД (проверку делает Connector.Ping).
func NewPool(ctx context.Context, cfg config.Store) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(BuildDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse store dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	// Жизненный цикл соединений — помогает избегать переполнения пула.
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute

	if cfg.StatementTimeout > 0 {
		poolCfg.ConnConfig.RuntimeParams["statement_timeout"] = strconv.FormatInt(cfg.StatementTimeout.Milliseconds(), 10)
	}
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "wc-paymeta"

	return pgxpool.NewWithConfig(ctx, poolCfg)
}

func isUnixSocket(host string) bool { return strings.HasPrefix(host, "/") }

// quoteDSN — значение в одинарных кавычках, если в нём есть пробелы, кавычки или слэши.
func quoteDSN(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
