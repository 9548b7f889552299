// Package db provides the GORM database connection for the service.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "todo_backend/internal/feature/auth/domain/entity"
	todoentity "todo_backend/internal/feature/todos/domain/entity"
)

// Config holds the PostgreSQL connection parameters.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// LoadConfig reads the connection parameters from environment variables.
func LoadConfig() Config {
	cfg := Config{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		SSLMode:  os.Getenv("DB_SSLMODE"),
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = "disable"
	}
	return cfg
}

// BuildDSN assembles the PostgreSQL DSN from the configuration.
func BuildDSN(cfg Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
}

// Open connects to PostgreSQL, retrying for up to 60 seconds so the service
// survives a database that comes up slightly later. TranslateError is on so
// unique violations surface as gorm.ErrDuplicatedKey across drivers.
func Open(cfg Config) (*gorm.DB, error) {
	dsn := BuildDSN(cfg)

	var (
		gdb *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		gdb, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			return gdb, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after 60s: %w", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// Migrate creates or updates the schema for every entity the service owns.
// The unique index on users.username is part of this schema; it is what makes
// concurrent duplicate registrations impossible.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&authentity.User{},
		&todoentity.Todo{},
	)
}
