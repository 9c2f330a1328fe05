// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	accountadapters "account_backend/internal/feature/account/adapters"
	accounthandler "account_backend/internal/feature/account/transport/handler"
	"account_backend/internal/feature/account/usecase"
	"account_backend/internal/platform/cache"
	"account_backend/internal/platform/hasher"
)

// NewAccountRepository creates an AccountRepository implementation.
// If Redis is available, lookups by email go through the Redis cache.
// Otherwise, the GORM repository is used directly.
func NewAccountRepository(db *gorm.DB, rdb *redis.Client, ttl time.Duration) usecase.AccountRepository {
	repo := accountadapters.NewAccountGorm(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingAccountRepository(rdb, ttl, repo, "accounts")
}

// NewAccountHandler builds the account handler with its usecase, repository and bcrypt hasher.
func NewAccountHandler(db *gorm.DB, rdb *redis.Client, ttl time.Duration, bcryptCost int) *accounthandler.AccountHandler {
	repo := NewAccountRepository(db, rdb, ttl)
	uc := usecase.NewAccountUsecase(repo, hasher.NewBcryptHasher(bcryptCost))
	return accounthandler.NewAccountHandler(uc)
}
