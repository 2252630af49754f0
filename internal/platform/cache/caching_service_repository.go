// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"salon_backend/internal/feature/booking/domain/entity"
	"salon_backend/internal/feature/booking/usecase"
)

// CachingServiceRepository decorates a ServiceRepository with Redis caching
// of list queries. It implements the decorator pattern, transparently adding
// caching without modifying the underlying repository. Point lookups are not
// cached; every write invalidates the cached lists.
type CachingServiceRepository struct {
	inner     usecase.ServiceRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that the decorator still satisfies ServiceRepository.
var _ usecase.ServiceRepository = (*CachingServiceRepository)(nil)

// NewCachingServiceRepository decorates a ServiceRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "services".
func NewCachingServiceRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ServiceRepository, namespace string) *CachingServiceRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "services"
	}
	return &CachingServiceRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FindAll retrieves matching records, checking cache first then falling back
// to the database.
func (c *CachingServiceRepository) FindAll(ctx context.Context, filter usecase.ListFilter) ([]entity.AppointmentService, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindAll(ctx, filter)
	}

	key := c.listKey(filter)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.AppointmentService
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByID is a pass-through; single-row lookups are not cached.
func (c *CachingServiceRepository) FindByID(ctx context.Context, id string) (*entity.AppointmentService, error) {
	return c.inner.FindByID(ctx, id)
}

// Create inserts the record and invalidates the cached lists.
func (c *CachingServiceRepository) Create(ctx context.Context, svc *entity.AppointmentService) error {
	if err := c.inner.Create(ctx, svc); err != nil {
		return err
	}
	c.invalidateLists(ctx)
	return nil
}

// Update patches the record and invalidates the cached lists.
func (c *CachingServiceRepository) Update(ctx context.Context, id string, patch usecase.UpdateServiceInput) (*entity.AppointmentService, error) {
	svc, err := c.inner.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if svc != nil {
		c.invalidateLists(ctx)
	}
	return svc, nil
}

// SoftDelete flips the removal flag and invalidates the cached lists.
func (c *CachingServiceRepository) SoftDelete(ctx context.Context, id string) (*entity.AppointmentService, error) {
	svc, err := c.inner.SoftDelete(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc != nil {
		c.invalidateLists(ctx)
	}
	return svc, nil
}

// invalidateLists drops every cached list entry in this namespace.
// Best effort: a failed invalidation only shortens cache accuracy, the
// store remains the source of truth once the TTL expires.
func (c *CachingServiceRepository) invalidateLists(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, c.namespace+":list:*")
}

// listKey generates a cache key for a specific filter combination.
func (c *CachingServiceRepository) listKey(filter usecase.ListFilter) string {
	return fmt.Sprintf("%s:list:%s:%s:%s:%s",
		c.namespace,
		boolToken(filter.IsPublic),
		boolToken(filter.IsRemove),
		stringToken(filter.ShopID),
		stringToken(filter.ID),
	)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingServiceRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// boolToken renders an optional boolean filter for use in a cache key.
func boolToken(b *bool) string {
	if b == nil {
		return "any"
	}
	return fmt.Sprintf("%t", *b)
}

// stringToken renders an optional string filter for use in a cache key.
func stringToken(s *string) string {
	if s == nil {
		return "any"
	}
	return safe(*s)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	s = strings.ReplaceAll(s, "*", "_")
	return s
}
