// Package di provides dependency injection factories for creating application
// components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	eventsadapters "hackathon_backend/internal/feature/events/adapters"
	eventsusecase "hackathon_backend/internal/feature/events/usecase"
	"hackathon_backend/internal/platform/cache"
)

// countCacheTTL bounds how stale the public registration count may be.
const countCacheTTL = 30 * time.Second

// NewRegistrationRepository creates the registration repository, wrapped with
// the Redis count cache. The cache bypasses itself when rdb is nil, so the
// service runs fine without Redis.
func NewRegistrationRepository(rdb *redis.Client, db *gorm.DB) eventsusecase.RegistrationRepository {
	inner := eventsadapters.NewRegistrationMySQL(db)
	return cache.NewCachingRegistrationRepository(rdb, countCacheTTL, inner, "registrations")
}
