package jwtmw

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TestGenerator_GenerateToken_RoundTrip verifies that a freshly issued token
// verifies immediately and yields the same identity it was created with.
func TestGenerator_GenerateToken_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		userID   string
		username string
	}{
		{"basic user", "4f9c1f6e-8f1f-4f52-9a1c-111111111111", "alice"},
		{"username with symbols", "4f9c1f6e-8f1f-4f52-9a1c-222222222222", "bob_the-2nd"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator("test-secret", time.Hour)
			tokenStr, err := gen.GenerateToken(tt.userID, tt.username)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tokenStr == "" {
				t.Fatal("expected non-empty token")
			}

			claims, err := gen.VerifyToken(tokenStr)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if claims.UserID != tt.userID {
				t.Errorf("expected user id %q, got %q", tt.userID, claims.UserID)
			}
			if claims.Username != tt.username {
				t.Errorf("expected username %q, got %q", tt.username, claims.Username)
			}
		})
	}
}

// TestGenerator_GenerateToken_Claims verifies the wire-level claim layout:
// sub carries the username, id the user id, and exp/iat are set.
func TestGenerator_GenerateToken_Claims(t *testing.T) {
	t.Parallel()

	expiration := 2 * time.Hour
	gen := NewGenerator("test-secret", expiration)

	before := time.Now().Truncate(time.Second)
	tokenStr, err := gen.GenerateToken("user-1", "alice")
	after := time.Now().Truncate(time.Second).Add(time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("expected MapClaims")
	}
	if sub, _ := claims["sub"].(string); sub != "alice" {
		t.Errorf("expected sub %q, got %v", "alice", claims["sub"])
	}
	if id, _ := claims["id"].(string); id != "user-1" {
		t.Errorf("expected id %q, got %v", "user-1", claims["id"])
	}

	expUnix := int64(claims["exp"].(float64))
	if expUnix < before.Add(expiration).Unix() || expUnix > after.Add(expiration).Unix() {
		t.Errorf("exp %d outside expected range", expUnix)
	}
	iatUnix := int64(claims["iat"].(float64))
	if iatUnix < before.Unix() || iatUnix > after.Unix() {
		t.Errorf("iat %d outside expected range", iatUnix)
	}
}

// TestGenerator_VerifyToken_Expired verifies that a token past its TTL fails
// with ErrTokenExpired specifically.
func TestGenerator_VerifyToken_Expired(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("test-secret", -time.Minute)
	tokenStr, err := gen.GenerateToken("user-1", "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = gen.VerifyToken(tokenStr)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

// TestGenerator_VerifyToken_Invalid verifies that bad signatures and
// malformed payloads fail with ErrInvalidToken.
func TestGenerator_VerifyToken_Invalid(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("test-secret", time.Hour)

	otherGen := NewGenerator("other-secret", time.Hour)
	foreign, err := otherGen.GenerateToken("user-1", "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	valid, err := gen.GenerateToken("user-1", "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		tokenStr string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"wrong signing key", foreign},
		{"tampered header", "x" + valid},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := gen.VerifyToken(tt.tokenStr)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

// TestGenerator_GenerateToken_DifferentUsersProduceDifferentTokens verifies
// tokens are not shared between identities.
func TestGenerator_GenerateToken_DifferentUsersProduceDifferentTokens(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("test-secret", time.Hour)

	token1, _ := gen.GenerateToken("user-1", "alice")
	token2, _ := gen.GenerateToken("user-2", "bob")

	if token1 == token2 {
		t.Error("expected different tokens for different users")
	}
}
