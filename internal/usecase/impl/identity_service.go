// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "coderr/internal/delivery/context"
	"coderr/internal/domain/entity"
	"coderr/internal/domain/repository"
	"coderr/internal/errors"
	"coderr/internal/usecase"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.IdentityUsecase {
	return &identityService{
		txManager: txManager,
		logger:    logger,
	}
}

// Resolve looks up the profile of an authenticated account. It fails closed:
// an account without a profile is treated as anonymous.
func (srv *identityService) Resolve(ctx context.Context, userID *uint) (entity.Caller, error) {
	if userID == nil {
		return entity.Anonymous(), nil
	}

	var profile *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProfileRepo().FindByUserID(ctx, *userID)
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find profile by user id")
		}
		profile = found

		return nil
	})
	if err != nil {
		return entity.Anonymous(), errors.Wrap(err, "failed to resolve caller")
	}

	if profile == nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Authenticated account has no profile", slog.Any("userID", *userID))

		return entity.Anonymous(), nil
	}

	return entity.NewCaller(profile), nil
}
