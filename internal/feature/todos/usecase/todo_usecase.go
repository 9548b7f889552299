package usecase

import (
	"context"

	"todo_backend/internal/feature/todos/domain/entity"
)

// TodoRepository abstracts the persistence layer for todo entities.
// Every method takes the owner id and must apply it as a filter; there is no
// way to reach another user's rows through this interface.
type TodoRepository interface {
	// FindByOwner returns all todos owned by ownerID.
	FindByOwner(ctx context.Context, ownerID string) ([]entity.Todo, error)

	// FindByOwnerAndStatus returns the owner's todos filtered by completion.
	FindByOwnerAndStatus(ctx context.Context, ownerID string, completed bool) ([]entity.Todo, error)

	// FindByID returns the todo with the given id if ownerID owns it,
	// ErrTodoNotFound otherwise.
	FindByID(ctx context.Context, ownerID, id string) (*entity.Todo, error)

	// Create persists a new todo.
	Create(ctx context.Context, todo *entity.Todo) error

	// Update persists changes to an existing todo.
	Update(ctx context.Context, todo *entity.Todo) error

	// Delete removes the todo with the given id if ownerID owns it,
	// returning the deleted record.
	Delete(ctx context.Context, ownerID, id string) (*entity.Todo, error)
}

// todoUsecase implements owner-scoped CRUD over todo items.
type todoUsecase struct {
	todos TodoRepository
}

// NewTodoUsecase creates a new instance of todoUsecase.
func NewTodoUsecase(todos TodoRepository) *todoUsecase {
	return &todoUsecase{todos: todos}
}

// List returns all of the owner's todos.
func (u *todoUsecase) List(ctx context.Context, ownerID string) ([]entity.Todo, error) {
	return u.todos.FindByOwner(ctx, ownerID)
}

// ListByStatus returns the owner's todos filtered by completion state.
func (u *todoUsecase) ListByStatus(ctx context.Context, ownerID string, completed bool) ([]entity.Todo, error) {
	return u.todos.FindByOwnerAndStatus(ctx, ownerID, completed)
}

// Get returns a single todo by id, scoped to the owner.
func (u *todoUsecase) Get(ctx context.Context, ownerID, id string) (*entity.Todo, error) {
	return u.todos.FindByID(ctx, ownerID, id)
}

// Create adds a new, initially pending todo for the owner.
func (u *todoUsecase) Create(ctx context.Context, ownerID, task string) (*entity.Todo, error) {
	todo := &entity.Todo{Task: task, UserID: ownerID}
	if err := u.todos.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Update applies a partial update: nil fields are left untouched.
func (u *todoUsecase) Update(ctx context.Context, ownerID, id string, task *string, completed *bool) (*entity.Todo, error) {
	todo, err := u.todos.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if task != nil {
		todo.Task = *task
	}
	if completed != nil {
		todo.Completed = *completed
	}
	if err := u.todos.Update(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Toggle flips the completed flag of the given todo.
func (u *todoUsecase) Toggle(ctx context.Context, ownerID, id string) (*entity.Todo, error) {
	todo, err := u.todos.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	todo.Completed = !todo.Completed
	if err := u.todos.Update(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Delete removes the given todo, returning the deleted record.
func (u *todoUsecase) Delete(ctx context.Context, ownerID, id string) (*entity.Todo, error) {
	return u.todos.Delete(ctx, ownerID, id)
}
