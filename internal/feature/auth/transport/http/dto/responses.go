package dto

// UsernameResponse carries just the username, returned by the identity,
// update, and delete endpoints.
type UsernameResponse struct {
	Username string `json:"username"`
}

// RegisterResponse is returned on successful registration; the client is
// logged in immediately with the included token.
type RegisterResponse struct {
	Username    string `json:"username"`
	AccessToken string `json:"access_token"`
}

// TokenResponse is the OAuth2-compatible login response.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ErrorResponse carries a human-readable failure message.
type ErrorResponse struct {
	Error string `json:"error"`
}
