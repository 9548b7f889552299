package dto

// UpdateTodoReq represents the request body for PATCH /todos/:id.
// Both fields are optional; absent fields are left unchanged.
type UpdateTodoReq struct {
	Task      *string `json:"task" binding:"omitempty,max=256"`
	Completed *bool   `json:"completed"`
}
