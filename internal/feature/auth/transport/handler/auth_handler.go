// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/feature/auth/domain/entity"
	"todo_backend/internal/feature/auth/transport/http/dto"
	jwtmw "todo_backend/internal/platform/jwt"
)

// AuthUsecase defines the authentication operations the handler depends on.
// Following Go convention, the interface is defined by the consumer (handler)
// rather than the provider (usecase).
type AuthUsecase interface {
	// Register creates a new account and returns it with a fresh access token.
	Register(ctx context.Context, username, password1, password2 string) (*entity.User, string, error)
	// Login authenticates a user and returns an access token on success.
	Login(ctx context.Context, username, plaintext string) (string, error)
	// Update replaces the username and password of the given account.
	Update(ctx context.Context, id, username, password1, password2 string) (*entity.User, error)
	// Delete removes the given account, returning the deleted record.
	Delete(ctx context.Context, id string) (*entity.User, error)
}

// AuthHandler handles HTTP requests for the /auth surface.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /auth/register.
// Duplicate usernames, mismatched confirmations, and weak passwords all land
// in the 400 bucket with a descriptive message.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	user, token, err := h.auth.Register(c.Request.Context(), req.Username, req.Password1, req.Password2)
	if err != nil {
		slog.Warn("register failed", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	slog.Info("user registered", "username", user.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.RegisterResponse{Username: user.Username, AccessToken: token})
}

// Login handles POST /auth/token (OAuth2 password-grant-compatible form body).
// Unknown usernames and wrong passwords both return 400 with the same message.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	slog.Info("user login successful", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me handles GET /auth/ and echoes the caller's resolved username.
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, dto.UsernameResponse{Username: c.GetString(jwtmw.ContextUsername)})
}

// Update handles PUT /auth/update for the caller's own account.
func (h *AuthHandler) Update(c *gin.Context) {
	var req dto.UpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	id := c.GetString(jwtmw.ContextUserID)
	user, err := h.auth.Update(c.Request.Context(), id, req.Username, req.Password1, req.Password2)
	if err != nil {
		slog.Warn("update failed", "error", err, "user_id", id, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	slog.Info("user updated", "user_id", id, "username", user.Username)
	c.JSON(http.StatusOK, dto.UsernameResponse{Username: user.Username})
}

// Delete handles DELETE /auth/delete for the caller's own account.
func (h *AuthHandler) Delete(c *gin.Context) {
	id := c.GetString(jwtmw.ContextUserID)
	user, err := h.auth.Delete(c.Request.Context(), id)
	if err != nil {
		slog.Warn("delete failed", "error", err, "user_id", id, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	slog.Info("user deleted", "user_id", id, "username", user.Username)
	c.JSON(http.StatusOK, dto.UsernameResponse{Username: user.Username})
}
