package dto

// LoginReq represents the form body for the /auth/token endpoint.
// The endpoint follows the OAuth2 password-grant shape, so the credentials
// arrive form-encoded rather than as JSON.
type LoginReq struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}
