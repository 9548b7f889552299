package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo_backend/internal/feature/todos/domain/entity"
	"todo_backend/internal/feature/todos/usecase"
	jwtmw "todo_backend/internal/platform/jwt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockTodoUsecase is a mock implementation of the TodoUsecase interface.
type mockTodoUsecase struct {
	ListFunc         func(ctx context.Context, ownerID string) ([]entity.Todo, error)
	ListByStatusFunc func(ctx context.Context, ownerID string, completed bool) ([]entity.Todo, error)
	GetFunc          func(ctx context.Context, ownerID, id string) (*entity.Todo, error)
	CreateFunc       func(ctx context.Context, ownerID, task string) (*entity.Todo, error)
	UpdateFunc       func(ctx context.Context, ownerID, id string, task *string, completed *bool) (*entity.Todo, error)
	ToggleFunc       func(ctx context.Context, ownerID, id string) (*entity.Todo, error)
	DeleteFunc       func(ctx context.Context, ownerID, id string) (*entity.Todo, error)
}

func (m *mockTodoUsecase) List(ctx context.Context, ownerID string) ([]entity.Todo, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockTodoUsecase) ListByStatus(ctx context.Context, ownerID string, completed bool) ([]entity.Todo, error) {
	if m.ListByStatusFunc != nil {
		return m.ListByStatusFunc(ctx, ownerID, completed)
	}
	return nil, nil
}

func (m *mockTodoUsecase) Get(ctx context.Context, ownerID, id string) (*entity.Todo, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, ownerID, id)
	}
	return nil, usecase.ErrTodoNotFound
}

func (m *mockTodoUsecase) Create(ctx context.Context, ownerID, task string) (*entity.Todo, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, ownerID, task)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTodoUsecase) Update(ctx context.Context, ownerID, id string, task *string, completed *bool) (*entity.Todo, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, ownerID, id, task, completed)
	}
	return nil, usecase.ErrTodoNotFound
}

func (m *mockTodoUsecase) Toggle(ctx context.Context, ownerID, id string) (*entity.Todo, error) {
	if m.ToggleFunc != nil {
		return m.ToggleFunc(ctx, ownerID, id)
	}
	return nil, usecase.ErrTodoNotFound
}

func (m *mockTodoUsecase) Delete(ctx context.Context, ownerID, id string) (*entity.Todo, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ownerID, id)
	}
	return nil, usecase.ErrTodoNotFound
}

// newRouter mounts the handler behind a middleware stub that injects the
// resolved identity the way the auth middleware would.
func newRouter(h *TodoHandler) *gin.Engine {
	r := gin.New()
	identity := func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, "user-1")
		c.Set(jwtmw.ContextUsername, "alice")
		c.Next()
	}
	todos := r.Group("/todos", identity)
	{
		todos.GET("/list", h.List)
		todos.GET("/completed", h.Completed)
		todos.GET("/pending", h.Pending)
		todos.GET("/:id", h.Get)
		todos.POST("", h.Create)
		todos.PATCH("/:id", h.Patch)
		todos.POST("/toggle_complete/:id", h.Toggle)
		todos.DELETE("/:id", h.Delete)
	}
	return r
}

func TestTodoHandler_List(t *testing.T) {
	t.Run("returns the owner's todos", func(t *testing.T) {
		mockUC := &mockTodoUsecase{
			ListFunc: func(ctx context.Context, ownerID string) ([]entity.Todo, error) {
				assert.Equal(t, "user-1", ownerID, "owner must come from the resolved identity")
				return []entity.Todo{
					{ID: "todo-1", Task: "first", UserID: ownerID},
					{ID: "todo-2", Task: "second", Completed: true, UserID: ownerID},
				}, nil
			},
		}
		router := newRouter(NewTodoHandler(mockUC))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/todos/list", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "first", got[0]["task"])
		assert.Equal(t, true, got[1]["completed"])
	})

	t.Run("empty list serializes as [] not null", func(t *testing.T) {
		mockUC := &mockTodoUsecase{
			ListFunc: func(ctx context.Context, ownerID string) ([]entity.Todo, error) {
				return nil, nil
			},
		}
		router := newRouter(NewTodoHandler(mockUC))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/todos/list", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})
}

func TestTodoHandler_StatusFilters(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		wantCompleted bool
	}{
		{"completed endpoint filters for done items", "/todos/completed", true},
		{"pending endpoint filters for open items", "/todos/pending", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotFilter *bool
			mockUC := &mockTodoUsecase{
				ListByStatusFunc: func(ctx context.Context, ownerID string, completed bool) ([]entity.Todo, error) {
					gotFilter = &completed
					return []entity.Todo{}, nil
				},
			}
			router := newRouter(NewTodoHandler(mockUC))

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			require.NotNil(t, gotFilter, "usecase was not called")
			assert.Equal(t, tt.wantCompleted, *gotFilter)
		})
	}
}

func TestTodoHandler_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockUC := &mockTodoUsecase{
			GetFunc: func(ctx context.Context, ownerID, id string) (*entity.Todo, error) {
				assert.Equal(t, "todo-1", id)
				return &entity.Todo{ID: id, Task: "task", UserID: ownerID}, nil
			},
		}
		router := newRouter(NewTodoHandler(mockUC))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/todos/todo-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"task":"task"`)
	})

	t.Run("missing todo returns 404", func(t *testing.T) {
		router := newRouter(NewTodoHandler(&mockTodoUsecase{}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/todos/missing", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"todo not found"}`, w.Body.String())
	})
}

func TestTodoHandler_Create(t *testing.T) {
	t.Run("success returns 201 with the new todo", func(t *testing.T) {
		mockUC := &mockTodoUsecase{
			CreateFunc: func(ctx context.Context, ownerID, task string) (*entity.Todo, error) {
				assert.Equal(t, "user-1", ownerID)
				return &entity.Todo{ID: "todo-1", Task: task, UserID: ownerID}, nil
			},
		}
		router := newRouter(NewTodoHandler(mockUC))

		body, _ := json.Marshal(gin.H{"task": "write tests"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/todos", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"task":"write tests"`)
		assert.Contains(t, w.Body.String(), `"completed":false`)
	})

	t.Run("missing task returns 400", func(t *testing.T) {
		mockUC := &mockTodoUsecase{
			CreateFunc: func(ctx context.Context, ownerID, task string) (*entity.Todo, error) {
				t.Error("usecase must not be called for an invalid body")
				return nil, nil
			},
		}
		router := newRouter(NewTodoHandler(mockUC))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/todos", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTodoHandler_Patch(t *testing.T) {
	t.Run("partial update forwards only present fields", func(t *testing.T) {
		mockUC := &mockTodoUsecase{
			UpdateFunc: func(ctx context.Context, ownerID, id string, task *string, completed *bool) (*entity.Todo, error) {
				require.NotNil(t, task)
				assert.Equal(t, "renamed", *task)
				assert.Nil(t, completed, "absent field must stay nil")
				return &entity.Todo{ID: id, Task: *task, UserID: ownerID}, nil
			},
		}
		router := newRouter(NewTodoHandler(mockUC))

		body, _ := json.Marshal(gin.H{"task": "renamed"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/todos/todo-1", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("completed false is forwarded, not dropped", func(t *testing.T) {
		mockUC := &mockTodoUsecase{
			UpdateFunc: func(ctx context.Context, ownerID, id string, task *string, completed *bool) (*entity.Todo, error) {
				assert.Nil(t, task)
				require.NotNil(t, completed, "explicit false must reach the usecase")
				assert.False(t, *completed)
				return &entity.Todo{ID: id, Task: "task", UserID: ownerID}, nil
			},
		}
		router := newRouter(NewTodoHandler(mockUC))

		body := []byte(`{"completed":false}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/todos/todo-1", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing todo returns 404", func(t *testing.T) {
		router := newRouter(NewTodoHandler(&mockTodoUsecase{}))

		body, _ := json.Marshal(gin.H{"task": "renamed"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/todos/missing", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTodoHandler_Toggle(t *testing.T) {
	t.Run("flips completion and returns the todo", func(t *testing.T) {
		mockUC := &mockTodoUsecase{
			ToggleFunc: func(ctx context.Context, ownerID, id string) (*entity.Todo, error) {
				return &entity.Todo{ID: id, Task: "task", Completed: true, UserID: ownerID}, nil
			},
		}
		router := newRouter(NewTodoHandler(mockUC))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/todos/toggle_complete/todo-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"completed":true`)
	})

	t.Run("missing todo returns 404", func(t *testing.T) {
		router := newRouter(NewTodoHandler(&mockTodoUsecase{}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/todos/toggle_complete/missing", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTodoHandler_Delete(t *testing.T) {
	t.Run("returns the deleted record", func(t *testing.T) {
		mockUC := &mockTodoUsecase{
			DeleteFunc: func(ctx context.Context, ownerID, id string) (*entity.Todo, error) {
				assert.Equal(t, "todo-1", id)
				return &entity.Todo{ID: id, Task: "doomed", UserID: ownerID}, nil
			},
		}
		router := newRouter(NewTodoHandler(mockUC))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/todos/todo-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"task":"doomed"`)
	})

	t.Run("missing todo returns 404", func(t *testing.T) {
		router := newRouter(NewTodoHandler(&mockTodoUsecase{}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/todos/missing", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
