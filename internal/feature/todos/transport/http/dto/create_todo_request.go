// Package dto defines data transfer objects for the todos feature's HTTP transport layer.
package dto

// CreateTodoReq represents the request body for POST /todos.
type CreateTodoReq struct {
	Task string `json:"task" binding:"required,max=256"`
}
