// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record of the system. Email is unique across the
// directory; PasswordHash never holds plaintext and is never serialized
// into any response projection.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Email        string    // The user's login identifier. Unique, non-empty.
	PasswordHash string    // bcrypt digest of the user's password.
	Admin        bool      // Grants access to admin-gated mutations. Defaults to false.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
