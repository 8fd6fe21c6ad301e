package impl

import (
	"context"
	"log/slog"

	deliverycontext "coderr/internal/delivery/context"
	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/policy"
	"coderr/internal/domain/repository"
	"coderr/internal/errors"
	"coderr/internal/usecase"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager  repository.TransactionManager
	authorizer policy.Authorizer
	logger     *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	authorizer policy.Authorizer,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager:  txManager,
		authorizer: authorizer,
		logger:     logger,
	}
}

// Get retrieves a profile by its id.
func (srv *profileService) Get(ctx context.Context, caller entity.Caller, profileID uint) (*entity.Profile, error) {
	if err := srv.authorizer.Authorize(caller, policy.ResourceProfile, policy.ActionRead, nil); err != nil {
		return nil, err
	}

	var profile *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findProfile(ctx, repoFactory.ProfileRepo(), profileID)
		profile = found

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

// Update applies the patch to the caller's own profile.
func (srv *profileService) Update(ctx context.Context, caller entity.Caller, profileID uint, patch entity.ProfilePatch) (*entity.Profile, error) {
	if err := srv.authorizer.Authorize(caller, policy.ResourceProfile, policy.ActionUpdate, nil); err != nil {
		return nil, err
	}

	var profile *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		found, err := findProfile(ctx, profileRepo, profileID)
		if err != nil {
			return err
		}

		facts := &policy.Facts{OwnerProfileID: found.ID}
		if err := srv.authorizer.Authorize(caller, policy.ResourceProfile, policy.ActionUpdate, facts); err != nil {
			return err
		}
		if err := found.Apply(patch); err != nil {
			return err
		}
		if err := profileRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Profile updated", slog.Any("profileID", profile.ID))

	return profile, nil
}

// ListByRole lists all customer or business profiles.
func (srv *profileService) ListByRole(ctx context.Context, caller entity.Caller, role entity.Role) ([]*entity.Profile, error) {
	if err := srv.authorizer.Authorize(caller, policy.ResourceProfile, policy.ActionRead, nil); err != nil {
		return nil, err
	}
	if !role.IsRegistrable() {
		return nil, domainerrors.ErrInvalidRole.WithDetails(string(role))
	}

	var profiles []*entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProfileRepo().ListByRole(ctx, role)
		if err != nil {
			return errors.Wrap(err, "failed to list profiles")
		}
		profiles = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles by role")
	}

	return profiles, nil
}

func findProfile(ctx context.Context, profileRepo repository.ProfileRepository, profileID uint) (*entity.Profile, error) {
	profile, err := profileRepo.FindByID(ctx, profileID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, domainerrors.ErrProfileNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}
