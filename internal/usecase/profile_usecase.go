package usecase

import (
	"context"

	"coderr/internal/domain/entity"
)

// ProfileUsecase defines profile reads and owner updates.
type ProfileUsecase interface {
	Get(ctx context.Context, caller entity.Caller, profileID uint) (*entity.Profile, error)
	Update(ctx context.Context, caller entity.Caller, profileID uint, patch entity.ProfilePatch) (*entity.Profile, error)
	ListByRole(ctx context.Context, caller entity.Caller, role entity.Role) ([]*entity.Profile, error)
}
