// Package entity defines the domain entities for the auth feature.
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account in the system.
// It contains authentication credentials and metadata for account management.
type User struct {
	// ID is the unique identifier for the user, assigned once at creation.
	ID string `gorm:"primaryKey;size:36"`

	// Username is the login name for the account.
	// It must be unique across all users; uniqueness is enforced by the
	// storage layer's unique index, not by caller-side checks.
	Username string `gorm:"uniqueIndex;size:32;not null"`

	// Password is the bcrypt hash of the user's password.
	// This never stores plaintext.
	Password string `gorm:"size:256;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// BeforeCreate assigns a fresh UUID when the caller did not provide one.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
