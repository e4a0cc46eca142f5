package usecase

import "context"

// UserSummary is the fixed output projection for directory listings.
// It deliberately has no password-hash field, so the hash cannot leak
// into any response regardless of handler changes.
type UserSummary struct {
	Email string `json:"email"`
	Admin bool   `json:"admin"`
}

// UserDirectoryUsecase defines the interface for user directory reads.
type UserDirectoryUsecase interface {
	// ListUsers returns a summary of every registered account.
	ListUsers(ctx context.Context) ([]*UserSummary, error)
}
