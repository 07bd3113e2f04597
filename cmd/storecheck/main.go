package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Gunvolt24/wc_paymeta/config"
	"github.com/Gunvolt24/wc_paymeta/internal/repo/postgres"
	"github.com/Gunvolt24/wc_paymeta/internal/usecase"
	"github.com/Gunvolt24/wc_paymeta/pkg/logger"
	"github.com/Gunvolt24/wc_paymeta/pkg/privacy"
	"github.com/joho/godotenv"
)

// CLI: проверка соединения с БД магазина. Печатает конверт, код выхода 1 — нет соединения.
func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	logg, cleanup, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = cleanup() }()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Store.ConnectTimeout+5*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pool: %v\n", err)
		os.Exit(1)
	}
	conn := postgres.NewConnector(pool, cfg.Store)
	defer conn.Close()

	masker := privacy.NewPseudonymizer(cfg.Privacy.PseudonymKey, cfg.Privacy.PseudonymizeLogs)
	repo := postgres.NewOrderRepository(conn, cfg.Store.TablePrefix, cfg.Store.PaymentRefKey)
	res := usecase.NewOrderQueryService(repo, conn, logg, masker, cfg.Store.PaymentRefKey).TestConnection(ctx)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(res)

	if !res.Success {
		os.Exit(1)
	}
}
