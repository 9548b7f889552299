// Package handler provides the HTTP handlers for the todos feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/feature/todos/domain/entity"
	"todo_backend/internal/feature/todos/transport/http/dto"
	"todo_backend/internal/feature/todos/usecase"
	jwtmw "todo_backend/internal/platform/jwt"
)

// TodoUsecase defines the todo operations the handler depends on.
// Every method is scoped to the owner resolved from the request's token.
type TodoUsecase interface {
	List(ctx context.Context, ownerID string) ([]entity.Todo, error)
	ListByStatus(ctx context.Context, ownerID string, completed bool) ([]entity.Todo, error)
	Get(ctx context.Context, ownerID, id string) (*entity.Todo, error)
	Create(ctx context.Context, ownerID, task string) (*entity.Todo, error)
	Update(ctx context.Context, ownerID, id string, task *string, completed *bool) (*entity.Todo, error)
	Toggle(ctx context.Context, ownerID, id string) (*entity.Todo, error)
	Delete(ctx context.Context, ownerID, id string) (*entity.Todo, error)
}

// TodoHandler handles HTTP requests for the /todos surface.
type TodoHandler struct {
	todos TodoUsecase
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(todos TodoUsecase) *TodoHandler {
	return &TodoHandler{todos: todos}
}

// respondError maps usecase failures onto the HTTP surface: a missing todo is
// 404, everything else lands in the 400 bucket.
func respondError(c *gin.Context, err error) {
	if errors.Is(err, usecase.ErrTodoNotFound) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "todo not found"})
		return
	}
	slog.Warn("todo operation failed", "error", err, "remote_addr", c.ClientIP())
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
}

// List handles GET /todos/list.
func (h *TodoHandler) List(c *gin.Context) {
	todos, err := h.todos.List(c.Request.Context(), c.GetString(jwtmw.ContextUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(todos))
}

// Completed handles GET /todos/completed.
func (h *TodoHandler) Completed(c *gin.Context) {
	todos, err := h.todos.ListByStatus(c.Request.Context(), c.GetString(jwtmw.ContextUserID), true)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(todos))
}

// Pending handles GET /todos/pending.
func (h *TodoHandler) Pending(c *gin.Context) {
	todos, err := h.todos.ListByStatus(c.Request.Context(), c.GetString(jwtmw.ContextUserID), false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(todos))
}

// Get handles GET /todos/:id.
func (h *TodoHandler) Get(c *gin.Context) {
	todo, err := h.todos.Get(c.Request.Context(), c.GetString(jwtmw.ContextUserID), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(todo))
}

// Create handles POST /todos.
func (h *TodoHandler) Create(c *gin.Context) {
	var req dto.CreateTodoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	todo, err := h.todos.Create(c.Request.Context(), c.GetString(jwtmw.ContextUserID), req.Task)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromEntity(todo))
}

// Patch handles PATCH /todos/:id with a partial update.
func (h *TodoHandler) Patch(c *gin.Context) {
	var req dto.UpdateTodoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	todo, err := h.todos.Update(c.Request.Context(), c.GetString(jwtmw.ContextUserID), c.Param("id"), req.Task, req.Completed)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(todo))
}

// Toggle handles POST /todos/toggle_complete/:id.
func (h *TodoHandler) Toggle(c *gin.Context) {
	todo, err := h.todos.Toggle(c.Request.Context(), c.GetString(jwtmw.ContextUserID), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(todo))
}

// Delete handles DELETE /todos/:id.
func (h *TodoHandler) Delete(c *gin.Context) {
	todo, err := h.todos.Delete(c.Request.Context(), c.GetString(jwtmw.ContextUserID), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(todo))
}
