package dto

// UpdateReq represents the request body for the /auth/update endpoint.
// Username and password are always replaced together; partial updates are
// not supported.
type UpdateReq struct {
	Username  string `json:"username" binding:"required,min=1,max=32"`
	Password1 string `json:"password1" binding:"required"`
	Password2 string `json:"password2" binding:"required"`
}
