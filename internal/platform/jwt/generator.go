// Package jwtmw provides access token issuance and verification, and the gin
// middleware that resolves a request's identity from its bearer token.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned when a token's signature does not verify
	// or its payload is malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned when a structurally valid token has
	// passed its expiration instant.
	ErrTokenExpired = errors.New("token expired")
)

// Claims carries the identity embedded in an access token.
type Claims struct {
	// Username is the token's subject.
	Username string
	// UserID is the id of the user the token was issued to.
	UserID string
}

// Generator issues and verifies signed access tokens. The signing key and
// token lifetime are fixed at construction; rotating the key invalidates all
// outstanding tokens.
type Generator struct {
	secret     []byte
	expiration time.Duration
}

// NewGenerator creates a Generator with the provided secret and token lifetime.
func NewGenerator(secret string, expiration time.Duration) *Generator {
	return &Generator{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// GenerateToken creates a signed HS256 token binding the user's id and username.
func (g *Generator) GenerateToken(userID, username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": username,
		"id":  userID,
		"exp": now.Add(g.expiration).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken checks the signature and expiry of a token string and returns
// the embedded claims. Expired tokens yield ErrTokenExpired; every other
// failure yields ErrInvalidToken.
func (g *Generator) VerifyToken(tokenStr string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted; reject alg confusion attempts.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return g.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	username, _ := claims["sub"].(string)
	userID, _ := claims["id"].(string)

	return &Claims{Username: username, UserID: userID}, nil
}
