package repository

import "context"

// RepositoryFactory creates repository instances that are all bound to a
// single, shared transaction.
type RepositoryFactory interface {
	// UserRepo returns a user repository bound to the transaction.
	UserRepo() UserRepository

	// MovieRepo returns a movie repository bound to the transaction.
	MovieRepo() MovieRepository
}

// TransactionManager defines the interface for executing operations within
// a database transaction. The application layer depends on this abstraction
// so that use cases remain free of database-specific transaction handling.
type TransactionManager interface {
	// Execute runs the given function within a single transaction. If the
	// function returns an error the transaction is rolled back, otherwise
	// it is committed.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
