// Package entity defines the domain entities for the todos feature.
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Todo represents a single task item owned by exactly one user.
type Todo struct {
	// ID is the unique identifier for the todo, assigned once at creation.
	ID string `gorm:"primaryKey;size:36"`

	// Task is the free-text description of the item.
	Task string `gorm:"size:256;not null"`

	// Completed marks whether the task has been finished.
	Completed bool `gorm:"not null;default:false"`

	// CreatedAt is the timestamp when the todo was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the todo was last updated.
	UpdatedAt time.Time

	// UserID is the id of the owning user. Every query against todos must
	// filter on this column; ownership is exclusive.
	UserID string `gorm:"size:36;index;not null"`
}

// BeforeCreate assigns a fresh UUID when the caller did not provide one.
func (t *Todo) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
