// Package entity contains the core business objects of the project.
package entity

import "time"

// Movie is a catalog record. It carries no invariants beyond its field
// types; it exists as the resource the admin gate protects on delete.
type Movie struct {
	ID          uint      // Surrogate key assigned by the store.
	Title       string    // Display title.
	Genre       string    // Free-form genre label.
	Length      int       // Running time in minutes.
	ReleaseYear int       // Year of first release.
	Rating      float64   // Aggregate review score.
	CreatedAt   time.Time // Timestamp of when this record was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
