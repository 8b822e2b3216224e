// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"hackathon_backend/internal/feature/events/domain/entity"
	"hackathon_backend/internal/feature/events/usecase"
)

// CachingRegistrationRepository decorates a RegistrationRepository with Redis
// caching of the public registration count. Listings are always served from
// the store; only the count, which every visitor hits, is cached. All cache
// operations are best effort, and a nil client bypasses the cache entirely.
type CachingRegistrationRepository struct {
	inner     usecase.RegistrationRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.RegistrationRepository = (*CachingRegistrationRepository)(nil)

// NewCachingRegistrationRepository decorates a RegistrationRepository with
// Redis caching. If ttl is 0 it defaults to 30 seconds; an empty namespace
// defaults to "registrations".
func NewCachingRegistrationRepository(rdb *redis.Client, ttl time.Duration, inner usecase.RegistrationRepository, namespace string) *CachingRegistrationRepository {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if namespace == "" {
		namespace = "registrations"
	}
	return &CachingRegistrationRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts a registration and invalidates the cached count.
func (c *CachingRegistrationRepository) Create(ctx context.Context, reg *entity.Registration) error {
	if err := c.inner.Create(ctx, reg); err != nil {
		return err
	}
	if c.rdb != nil {
		_ = c.rdb.Del(ctx, c.countKey()).Err() // Best effort
	}
	return nil
}

// ListNewestFirst always reads from the underlying store; admins expect fresh
// listings.
func (c *CachingRegistrationRepository) ListNewestFirst(ctx context.Context) ([]entity.Registration, error) {
	return c.inner.ListNewestFirst(ctx)
}

// Count retrieves the registration count, checking the cache first and
// falling back to the store.
func (c *CachingRegistrationRepository) Count(ctx context.Context) (int64, error) {
	if c.rdb == nil {
		return c.inner.Count(ctx)
	}

	key := c.countKey()

	if v, err := c.rdb.Get(ctx, key).Result(); err == nil {
		if n, perr := strconv.ParseInt(v, 10, 64); perr == nil {
			return n, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	n, err := c.inner.Count(ctx)
	if err != nil {
		return 0, err
	}

	_ = c.rdb.Set(ctx, key, strconv.FormatInt(n, 10), c.ttl).Err() // Best effort

	return n, nil
}

func (c *CachingRegistrationRepository) countKey() string {
	return c.namespace + ":count"
}
