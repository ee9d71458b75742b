package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"swiftrider/internal/pkg/config"
	"swiftrider/internal/pkg/postgres"
	"swiftrider/pkg/logger/zap_adapter"
	"swiftrider/pkg/querier"
)

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	querierOnce     sync.Once
)

func connect() {
	querierOnce.Do(func() {
		// POSTGRES_* задаются окружением запуска тестов
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter("warn")
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			if err := zapLogger.Sync(); err != nil {
				log.Printf("failed to sync logger: %v", err)
			}
		}()

		poolInstance, err = postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			panic(err)
		}

		querierInstance = querier.New(poolInstance, pgxv5.DefaultCtxGetter)
	})
}

func GetQuerier() *querier.Querier {
	connect()
	return querierInstance
}

// GetPool нужен тестам, которые поднимают tx.Manager.
func GetPool() *pgxpool.Pool {
	connect()
	return poolInstance
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE tracking_entries, payments, deliveries, users RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}

// Базовые пользователи: 1 - клиент, 2 и 3 - свободные курьеры, 4 - админ.
const SeedUsers = `
	INSERT INTO users (id, name, email, phone, role, password_hash, address, vehicle_type, license_plate, is_available)
	VALUES
		(1, 'Ada Customer', 'ada@example.com', '08010000001', 'customer', 'hash', '1 Marina, Lagos', NULL, NULL, NULL),
		(2, 'Bola Rider', 'bola@example.com', '08010000002', 'rider', 'hash', NULL, 'Motorcycle', 'LAG-123', TRUE),
		(3, 'Chidi Rider', 'chidi@example.com', '08010000003', 'rider', 'hash', NULL, 'Bicycle', 'LAG-456', TRUE),
		(4, 'Root Admin', 'admin@example.com', '0000000000', 'admin', 'hash', NULL, NULL, NULL, NULL);
	SELECT setval('users_id_seq', 4);
`
