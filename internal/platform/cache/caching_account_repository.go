// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"account_backend/internal/feature/account/domain"
	"account_backend/internal/feature/account/domain/entity"
	"account_backend/internal/feature/account/usecase"
)

// DefaultTTL is used when no positive TTL is configured.
const DefaultTTL = 5 * time.Minute

// cachedAccount is the Redis representation of an account.
// entity.Account hides its digest from JSON, so the cache keeps its own shape.
type cachedAccount struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordDigest string    `json:"password_digest"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toCached(a *entity.Account) cachedAccount {
	return cachedAccount{
		ID:             a.ID,
		Name:           a.Name,
		Email:          a.Email,
		PasswordDigest: a.PasswordDigest,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func (c cachedAccount) toEntity() *entity.Account {
	return &entity.Account{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		PasswordDigest: c.PasswordDigest,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// CachingAccountRepository decorates an AccountRepository with a Redis
// read-through cache for lookups by email. Only hits are cached, and the
// inner store's unique index still decides uniqueness on Create.
type CachingAccountRepository struct {
	inner     usecase.AccountRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check to ensure CachingAccountRepository implements AccountRepository.
var _ usecase.AccountRepository = (*CachingAccountRepository)(nil)

// NewCachingAccountRepository decorates inner with Redis caching.
// If ttl is not positive, DefaultTTL is used. If namespace is empty, it uses "accounts".
func NewCachingAccountRepository(rdb *redis.Client, ttl time.Duration, inner usecase.AccountRepository, namespace string) *CachingAccountRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if namespace == "" {
		namespace = "accounts"
	}
	return &CachingAccountRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts through the inner repository and drops any cached entry for the email.
func (c *CachingAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	if err := c.inner.Create(ctx, account); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	// Best effort: a stale entry expires with its TTL.
	if err := c.rdb.Del(ctx, c.emailKey(account.Email)).Err(); err != nil {
		slog.Warn("account cache invalidation failed", "error", err)
	}
	return nil
}

// FindByEmail checks the cache first, then falls back to the inner repository.
func (c *CachingAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	if c.rdb == nil {
		return c.inner.FindByEmail(ctx, email)
	}

	key := c.emailKey(email)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var cached cachedAccount
		if err := json.Unmarshal(b, &cached); err == nil {
			return cached.toEntity(), nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database; misses and errors are not cached
	account, err := c.inner.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(toCached(account)); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return account, nil
}

// emailKey returns the cache key for a normalized email.
func (c *CachingAccountRepository) emailKey(email string) string {
	return c.namespace + ":email:" + domain.NormalizeEmail(email)
}
