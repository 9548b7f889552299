package usecase

import (
	"context"
	"fmt"

	"todo_backend/internal/feature/auth/domain/entity"
	"todo_backend/internal/platform/password"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer (usecase)
// rather than the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrUsernameTaken when a user
	// with the same username already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves a user by exact username match.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID retrieves a user by id.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// Update replaces the username and password hash of the user with the
	// given id. Both fields are always written together.
	Update(ctx context.Context, id, username, passwordHash string) (*entity.User, error)

	// Delete removes the user with the given id along with all owned todos,
	// returning the deleted record.
	Delete(ctx context.Context, id string) (*entity.User, error)
}

// TokenIssuer issues a signed access token binding a user identity.
type TokenIssuer interface {
	GenerateToken(userID, username string) (string, error)
}

// PasswordHasher performs one-way hashing and verification of passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// PasswordPolicy scores a candidate password against strength heuristics.
type PasswordPolicy interface {
	Evaluate(candidate string, userInputs ...string) password.Result
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users  UserRepository
	hasher PasswordHasher
	policy PasswordPolicy
	tokens TokenIssuer
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, hasher PasswordHasher, policy PasswordPolicy, tokens TokenIssuer) *authUsecase {
	return &authUsecase{
		users:  users,
		hasher: hasher,
		policy: policy,
		tokens: tokens,
	}
}

// checkPassword enforces the confirmation and strength rules shared by
// register and update. The mismatch check runs before any strength work.
// A candidate is rejected unless it scores at least password.MinScore AND
// produced no warning and no suggestions; any feedback at all disqualifies
// it even when the score is high enough.
func (u *authUsecase) checkPassword(candidate, confirmation, username string) error {
	if candidate != confirmation {
		return ErrPasswordMismatch
	}
	res := u.policy.Evaluate(candidate, username)
	if res.Score < password.MinScore || res.Warning != "" || len(res.Suggestions) > 0 {
		return &WeakPasswordError{
			Score:       res.Score,
			Warning:     res.Warning,
			Suggestions: res.Suggestions,
		}
	}
	return nil
}

// Register creates a new account and returns it together with a fresh access
// token, so the client is logged in immediately after signup.
func (u *authUsecase) Register(ctx context.Context, username, password1, password2 string) (*entity.User, string, error) {
	if err := u.checkPassword(password1, password2, username); err != nil {
		return nil, "", err
	}

	hashed, err := u.hasher.Hash(password1)
	if err != nil {
		return nil, "", err
	}

	user := &entity.User{Username: username, Password: hashed}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Login authenticates a user and returns an access token on success.
// To mitigate timing attacks, the bcrypt comparison runs against a dummy
// digest even when the username is unknown.
func (u *authUsecase) Login(ctx context.Context, username, plaintext string) (string, error) {
	user, err := u.users.FindByUsername(ctx, username)

	digest := password.DummyDigest
	if err == nil {
		digest = user.Password
	}
	ok := u.hasher.Verify(plaintext, digest)

	if err != nil || !ok {
		return "", ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}

// Update replaces the username and password of the account with the given id.
// Partial updates are not supported: both fields are always written together.
func (u *authUsecase) Update(ctx context.Context, id, username, password1, password2 string) (*entity.User, error) {
	if err := u.checkPassword(password1, password2, username); err != nil {
		return nil, err
	}

	hashed, err := u.hasher.Hash(password1)
	if err != nil {
		return nil, err
	}

	return u.users.Update(ctx, id, username, hashed)
}

// Delete removes the account with the given id and all todos it owns,
// returning the deleted record. Previously issued tokens stay structurally
// valid; the identity resolver's live lookup is what locks them out.
func (u *authUsecase) Delete(ctx context.Context, id string) (*entity.User, error) {
	return u.users.Delete(ctx, id)
}
