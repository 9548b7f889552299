// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the /auth/register endpoint.
// The two password fields must match; that check belongs to the usecase, not
// the binding layer.
type RegisterReq struct {
	Username  string `json:"username" binding:"required,min=1,max=32"`
	Password1 string `json:"password1" binding:"required"`
	Password2 string `json:"password2" binding:"required"`
}
