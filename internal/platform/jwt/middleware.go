package jwtmw

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys under which the resolved identity is stored for handlers.
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
)

// TokenVerifier verifies a token string and returns its claims.
// Following Go convention, the interface is defined by the consumer
// (middleware) rather than the provider.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*Claims, error)
}

// IdentityStore confirms that a user id still resolves to a live account.
// The lookup runs on every authenticated request; there is no revocation
// list, so this is the only thing keeping tokens for deleted accounts out.
type IdentityStore interface {
	ExistsByID(ctx context.Context, id string) (bool, error)
}

// AuthRequired returns a gin middleware that resolves the request's identity.
// It extracts the bearer token, verifies it, requires both the subject and id
// claims, and cross-checks the id against the store. Any failure aborts the
// request with 401; on success the identity is placed in the gin context.
func AuthRequired(verifier TokenVerifier, store IdentityStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		claims, err := verifier.VerifyToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if claims.Username == "" || claims.UserID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate user"})
			return
		}

		exists, err := store.ExistsByID(c.Request.Context(), claims.UserID)
		if err != nil || !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate user"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}
