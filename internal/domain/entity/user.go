// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the single account of a SpendWise deployment.
// The server is self-hosted and single-user; exactly one User row exists
// after setup.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	DigestOptIn  bool // Monthly email digest
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User with default values.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		DigestOptIn:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
