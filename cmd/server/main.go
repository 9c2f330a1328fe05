package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"account_backend/internal/app/di"
	"account_backend/internal/app/router"
	"account_backend/internal/platform/db"
	"account_backend/internal/platform/hasher"
	"account_backend/internal/platform/logging"
	infraredis "account_backend/internal/platform/redis"
)

func main() {
	// .env は任意です。両方に設定がある場合は環境変数が優先されます。
	envErr := godotenv.Load(".env")

	logging.Setup(logging.LoadConfigFromEnv())
	if envErr != nil {
		slog.Info(".env not found; using system environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// db
	gdb, err := db.OpenDB(db.LoadConfigFromEnv())
	if err != nil {
		return err
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()

	// Redis
	redisCfg := infraredis.LoadConfigFromEnv()
	var rdb *redisv9.Client
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if tmp, err := infraredis.NewRedisClient(pingCtx, redisCfg); err != nil {
		slog.Warn("Redis unavailable. Running without account cache.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}
	cancel()

	accountH := di.NewAccountHandler(gdb, rdb, redisCfg.CacheTTL, hasher.CostFromEnv())
	r := router.NewRouter(accountH, sqlDB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	slog.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
