// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"todo_backend/internal/feature/todos/adapters"
	"todo_backend/internal/feature/todos/usecase"
	"todo_backend/internal/platform/cache"
)

// NewTodoRepository creates the todo repository.
// If Redis is available, the repository is wrapped with the list cache;
// otherwise the database-backed repository is used directly.
func NewTodoRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.TodoRepository {
	repo := adapters.NewTodoGorm(db)
	if rdb != nil {
		return cache.NewCachingTodoRepository(rdb, ttl, repo, "todos")
	}
	return repo
}
