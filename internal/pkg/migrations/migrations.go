package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"swiftrider/pkg/logger"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

// Up применяет все миграции из sql/ к базе пула.
func Up(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	provider, closeDB, err := newProvider(pool)
	if err != nil {
		return err
	}
	defer closeDB()

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	for _, res := range results {
		log.Info("migration applied",
			logger.NewField("version", res.Source.Version),
			logger.NewField("file", res.Source.Path),
			logger.NewField("duration", res.Duration.String()),
		)
	}
	return nil
}

// Down откатывает последнюю миграцию.
func Down(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	provider, closeDB, err := newProvider(pool)
	if err != nil {
		return err
	}
	defer closeDB()

	res, err := provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("rollback migration: %w", err)
	}
	if res != nil {
		log.Info("migration rolled back",
			logger.NewField("version", res.Source.Version),
			logger.NewField("file", res.Source.Path),
		)
	}
	return nil
}

func Version(ctx context.Context, pool *pgxpool.Pool) (int64, error) {
	provider, closeDB, err := newProvider(pool)
	if err != nil {
		return 0, err
	}
	defer closeDB()

	return provider.GetDBVersion(ctx)
}

func newProvider(pool *pgxpool.Pool) (*goose.Provider, func(), error) {
	fsys, err := fs.Sub(embedMigrations, "sql")
	if err != nil {
		return nil, nil, fmt.Errorf("migrations fs: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("goose provider: %w", err)
	}

	return provider, func() { _ = db.Close() }, nil
}
