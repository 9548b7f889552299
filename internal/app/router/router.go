// Package router builds the gin route table for the service.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "todo_backend/internal/feature/auth/transport/handler"
	todohandler "todo_backend/internal/feature/todos/transport/handler"
	"todo_backend/internal/platform/http/handler"
)

// NewRouter wires the HTTP surface. Registration and login are public;
// everything else sits behind the identity-resolving middleware.
func NewRouter(authH *authhandler.AuthHandler, todoH *todohandler.TodoHandler, authRequired gin.HandlerFunc) *gin.Engine {
	r := gin.Default()

	// No authentication required
	r.GET("/healthz", handler.Health)
	r.POST("/auth/register", authH.Register)
	r.POST("/auth/token", authH.Login)

	// Authenticated routes
	auth := r.Group("/")
	auth.Use(authRequired)
	{
		auth.GET("/auth/", authH.Me)
		auth.PUT("/auth/update", authH.Update)
		auth.DELETE("/auth/delete", authH.Delete)

		todos := auth.Group("/todos")
		todos.GET("/list", todoH.List)
		todos.GET("/completed", todoH.Completed)
		todos.GET("/pending", todoH.Pending)
		todos.GET("/:id", todoH.Get)
		todos.POST("", todoH.Create)
		todos.PATCH("/:id", todoH.Patch)
		todos.POST("/toggle_complete/:id", todoH.Toggle)
		todos.DELETE("/:id", todoH.Delete)
	}

	return r
}
