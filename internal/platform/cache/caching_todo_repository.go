// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"todo_backend/internal/feature/todos/domain/entity"
	"todo_backend/internal/feature/todos/usecase"
)

// CachingTodoRepository decorates a TodoRepository with Redis caching of the
// per-owner list queries. Single-item reads and all writes go straight to the
// underlying repository; every write invalidates the owner's cached lists.
// Identity is never cached here, only task lists.
type CachingTodoRepository struct {
	inner     usecase.TodoRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that the decorator satisfies the repository interface.
var _ usecase.TodoRepository = (*CachingTodoRepository)(nil)

// NewCachingTodoRepository decorates a TodoRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "todos".
func NewCachingTodoRepository(rdb *redis.Client, ttl time.Duration, inner usecase.TodoRepository, namespace string) *CachingTodoRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "todos"
	}
	return &CachingTodoRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FindByOwner returns the owner's todos, checking the cache first.
func (c *CachingTodoRepository) FindByOwner(ctx context.Context, ownerID string) ([]entity.Todo, error) {
	return c.cachedList(ctx, c.cacheKey(ownerID, "all"), func() ([]entity.Todo, error) {
		return c.inner.FindByOwner(ctx, ownerID)
	})
}

// FindByOwnerAndStatus returns the owner's filtered todos, checking the cache first.
func (c *CachingTodoRepository) FindByOwnerAndStatus(ctx context.Context, ownerID string, completed bool) ([]entity.Todo, error) {
	variant := "pending"
	if completed {
		variant = "completed"
	}
	return c.cachedList(ctx, c.cacheKey(ownerID, variant), func() ([]entity.Todo, error) {
		return c.inner.FindByOwnerAndStatus(ctx, ownerID, completed)
	})
}

// FindByID is a passthrough; single-item reads are not cached.
func (c *CachingTodoRepository) FindByID(ctx context.Context, ownerID, id string) (*entity.Todo, error) {
	return c.inner.FindByID(ctx, ownerID, id)
}

// Create persists a todo and invalidates the owner's cached lists.
func (c *CachingTodoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	if err := c.inner.Create(ctx, todo); err != nil {
		return err
	}
	c.invalidate(ctx, todo.UserID)
	return nil
}

// Update persists a todo and invalidates the owner's cached lists.
func (c *CachingTodoRepository) Update(ctx context.Context, todo *entity.Todo) error {
	if err := c.inner.Update(ctx, todo); err != nil {
		return err
	}
	c.invalidate(ctx, todo.UserID)
	return nil
}

// Delete removes a todo and invalidates the owner's cached lists.
func (c *CachingTodoRepository) Delete(ctx context.Context, ownerID, id string) (*entity.Todo, error) {
	todo, err := c.inner.Delete(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, ownerID)
	return todo, nil
}

// cachedList serves a list query from Redis, falling back to the database
// and storing the result best-effort.
func (c *CachingTodoRepository) cachedList(ctx context.Context, key string, load func() ([]entity.Todo, error)) ([]entity.Todo, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return load()
	}

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Todo
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := load()
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// invalidate drops every cached list for the owner, best effort.
func (c *CachingTodoRepository) invalidate(ctx context.Context, ownerID string) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, c.cacheKeyPrefix(ownerID)+"*")
}

// cacheKey generates a cache key for a specific owner-scoped list query.
func (c *CachingTodoRepository) cacheKey(ownerID, variant string) string {
	return fmt.Sprintf("%s:%s:%s", c.namespace, safe(ownerID), variant)
}

// cacheKeyPrefix generates the prefix shared by all of an owner's cache keys.
func (c *CachingTodoRepository) cacheKeyPrefix(ownerID string) string {
	return fmt.Sprintf("%s:%s:", c.namespace, safe(ownerID))
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingTodoRepository) deleteByPattern(ctx context.Context, pattern string) error {
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

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
