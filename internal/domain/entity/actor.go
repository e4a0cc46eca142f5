// Package entity contains the core business objects of the project.
package entity

import "time"

// Actor is a catalog record with no invariants beyond field types.
type Actor struct {
	ID          uint      // Surrogate key assigned by the store.
	FirstName   string    // Given name.
	LastName    string    // Family name.
	Gender      string    // Free-form gender label.
	Country     string    // Country of origin.
	DateOfBirth string    // Birth date, stored as text to match the source data.
	CreatedAt   time.Time // Timestamp of when this record was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
