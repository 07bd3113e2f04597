package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gunvolt24/wc_paymeta/config"
	"github.com/Gunvolt24/wc_paymeta/internal/repo/postgres"
	"github.com/Gunvolt24/wc_paymeta/internal/usecase"
	"github.com/Gunvolt24/wc_paymeta/pkg/logger"
	"github.com/Gunvolt24/wc_paymeta/pkg/privacy"
	"github.com/Gunvolt24/wc_paymeta/pkg/validate"
	"github.com/joho/godotenv"
)

// CLI: массовая перепривязка платёжных ссылок из JSONL/JSON.
// Строка: {"email": "...", "payment_reference": "..."}.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	dryRun := flag.Bool("dry-run", false, "only validate and print canonical valid lines")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := options{
		path:   *inputPath,
		format: validate.InputFormat(*formatStr),
	}

	if *dryRun {
		os.Exit(run(ctx, opts, nil, os.Stdout, os.Stderr))
	}

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

	pool, err := postgres.NewPool(ctx, cfg.Store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pool: %v\n", err)
		os.Exit(2)
	}
	conn := postgres.NewConnector(pool, cfg.Store)

	refKey := cfg.Store.PaymentRefKey
	updater := usecase.NewPaymentRefService(
		postgres.NewOrderRepository(conn, cfg.Store.TablePrefix, refKey),
		postgres.NewMetaTxRunner(conn, cfg.Store.TablePrefix, logg),
		validate.NewUpdateValidator(),
		logg,
		privacy.NewPseudonymizer(cfg.Privacy.PseudonymKey, cfg.Privacy.PseudonymizeLogs),
		refKey,
	)

	// os.Exit не выполняет defer: закрываем явно
	code := run(ctx, opts, updater, os.Stdout, os.Stderr)
	conn.Close()
	_ = cleanup()
	os.Exit(code)
}
