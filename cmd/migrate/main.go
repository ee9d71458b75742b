package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"swiftrider/internal/pkg/config"
	"swiftrider/internal/pkg/migrations"
	"swiftrider/internal/pkg/postgres"
	"swiftrider/pkg/logger"
	"swiftrider/pkg/logger/zap_adapter"
)

const usage = `usage: migrate [--log-level=info] up|down|version`

func main() {
	os.Exit(migrate())
}

func migrate() int {
	logLevel := pflag.String("log-level", "info", "log level")
	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, usage)
		pflag.PrintDefaults()
	}
	pflag.Parse()

	zapLogger, err := zap_adapter.NewZapAdapter(*logLevel)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	log := zapLogger.With(logger.NewField("component", "migrate"))

	if pflag.NArg() != 1 {
		pflag.Usage()
		return 2
	}

	// .env не обязателен, переменные окружения имеют приоритет
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Error("failed to load .env file", logger.NewField("error", err))
			return 1
		}
	}

	err = run(context.Background(), zapLogger, pflag.Arg(0))
	if err != nil {
		log.Error("migrate failed", logger.NewField("error", err))
		return 1
	}
	return 0
}

func run(ctx context.Context, log logger.Logger, command string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	dbCfg, err := config.LoadDatabase()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := postgres.NewConnPool(ctx, log, dbCfg)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	switch command {
	case "up":
		return migrations.Up(ctx, log, pool)
	case "down":
		return migrations.Down(ctx, log, pool)
	case "version":
		version, err := migrations.Version(ctx, pool)
		if err != nil {
			return fmt.Errorf("read version: %w", err)
		}
		log.Info("database version", logger.NewField("version", version))
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
