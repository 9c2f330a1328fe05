// Package redis はアカウントキャッシュで使用する任意の Redis クライアントを開きます。
package redis

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config は Redis の接続設定を保持します。
type Config struct {
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration
}

// LoadConfigFromEnv は REDIS_HOST、REDIS_PORT、REDIS_PASSWORD、ACCOUNT_CACHE_TTL を読み込みます。
// TTL を解析できない場合はゼロのままとし、キャッシュ側のデフォルトを適用します。
func LoadConfigFromEnv() Config {
	cfg := Config{
		Addr:     os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}
	if raw := os.Getenv("ACCOUNT_CACHE_TTL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			cfg.CacheTTL = d
		}
	}
	return cfg
}

// NewRedisClient は Redis に接続し、PING で接続を確認します。
func NewRedisClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("Redis connection failed", "address", cfg.Addr, "error", err)
		_ = rdb.Close()
		return nil, err
	}

	slog.Info("Redis connection successful", "address", cfg.Addr)
	return rdb, nil
}
