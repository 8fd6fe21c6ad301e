// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"coderr/internal/domain/entity"
)

// IdentityUsecase resolves the caller behind a request.
type IdentityUsecase interface {
	// Resolve returns the caller for an authenticated account id. A nil id or an
	// account without a profile resolves to an anonymous caller.
	Resolve(ctx context.Context, userID *uint) (entity.Caller, error)
}
