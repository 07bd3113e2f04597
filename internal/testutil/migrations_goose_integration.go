//go:build integration

package testutil

import (
	"database/sql"
	"embed"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver name = "pgx"
	"github.com/pressly/goose/v3"
)

//go:embed testdata/migrations/*.sql
var storeSchema embed.FS

// ApplyStoreSchema — накатывает фикстуру таблиц WooCommerce (префикс wp_) через goose.
func ApplyStoreSchema(dsn string) error {
	goose.SetBaseFS(storeSchema)
	goose.SetLogger(log.New(os.Stdout, "[goose] ", 0))
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, "testdata/migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
