package repository

import "context"

// TransactionManager runs use case work inside one database transaction.
type TransactionManager interface {
	// Execute runs fn within a transaction. A returned error rolls back, otherwise it commits.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	AccountRepo() AccountRepository
	ProfileRepo() ProfileRepository
	OfferRepo() OfferRepository
	OrderRepo() OrderRepository
	ReviewRepo() ReviewRepository
}
