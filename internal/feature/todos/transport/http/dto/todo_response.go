package dto

import (
	"time"

	"todo_backend/internal/feature/todos/domain/entity"
)

// TodoResponse is the wire representation of a todo item.
type TodoResponse struct {
	ID        string    `json:"id"`
	Task      string    `json:"task"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ErrorResponse carries a human-readable failure message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FromEntity converts a domain todo into its wire representation.
func FromEntity(t *entity.Todo) TodoResponse {
	return TodoResponse{
		ID:        t.ID,
		Task:      t.Task,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// FromEntities converts a slice of domain todos. It always returns a non-nil
// slice so empty lists serialize as [] rather than null.
func FromEntities(todos []entity.Todo) []TodoResponse {
	out := make([]TodoResponse, 0, len(todos))
	for i := range todos {
		out = append(out, FromEntity(&todos[i]))
	}
	return out
}
