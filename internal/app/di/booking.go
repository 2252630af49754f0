// Package di wires feature dependencies that vary with the runtime
// environment.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"salon_backend/internal/feature/booking/adapters"
	"salon_backend/internal/feature/booking/usecase"
	"salon_backend/internal/platform/cache"
)

// NewServiceRepository creates the ServiceRepository implementation.
// When Redis is available the Postgres repository is wrapped with the
// list cache; otherwise the plain repository is returned.
func NewServiceRepository(rdb *redis.Client, db *gorm.DB) usecase.ServiceRepository {
	repo := adapters.NewServicePostgres(db)
	if rdb != nil {
		return cache.NewCachingServiceRepository(rdb, 5*time.Minute, repo, "services")
	}
	return repo
}
