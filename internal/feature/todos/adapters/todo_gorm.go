// Package adapters provides the repository implementations for the todos feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"todo_backend/internal/feature/todos/domain/entity"
	"todo_backend/internal/feature/todos/usecase"
)

// todoGorm is the GORM implementation of the TodoRepository interface.
// Every query carries the owner filter; the owner id is never optional.
type todoGorm struct {
	db *gorm.DB
}

// Compile-time check that todoGorm implements TodoRepository.
var _ usecase.TodoRepository = (*todoGorm)(nil)

// NewTodoGorm creates a new todoGorm backed by the given gorm.DB connection.
func NewTodoGorm(db *gorm.DB) *todoGorm {
	return &todoGorm{db: db}
}

// FindByOwner returns all todos owned by ownerID, oldest first.
func (r *todoGorm) FindByOwner(ctx context.Context, ownerID string) ([]entity.Todo, error) {
	var todos []entity.Todo
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at").
		Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

// FindByOwnerAndStatus returns the owner's todos filtered by completion state.
func (r *todoGorm) FindByOwnerAndStatus(ctx context.Context, ownerID string, completed bool) ([]entity.Todo, error) {
	var todos []entity.Todo
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND completed = ?", ownerID, completed).
		Order("created_at").
		Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

// FindByID retrieves a single todo scoped to the owner.
// It returns usecase.ErrTodoNotFound when the id does not exist or belongs
// to a different user.
func (r *todoGorm) FindByID(ctx context.Context, ownerID, id string) (*entity.Todo, error) {
	var todo entity.Todo
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&todo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTodoNotFound
		}
		return nil, err
	}
	return &todo, nil
}

// Create adds a todo to the database.
func (r *todoGorm) Create(ctx context.Context, todo *entity.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

// Update persists changes to an existing todo.
func (r *todoGorm) Update(ctx context.Context, todo *entity.Todo) error {
	return r.db.WithContext(ctx).Save(todo).Error
}

// Delete removes a todo scoped to the owner, returning the deleted record.
func (r *todoGorm) Delete(ctx context.Context, ownerID, id string) (*entity.Todo, error) {
	todo, err := r.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&entity.Todo{}).Error; err != nil {
		return nil, err
	}
	return todo, nil
}
