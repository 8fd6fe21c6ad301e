package repository

import (
	"context"

	"coderr/internal/domain/entity"
	"coderr/internal/errors"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists marketplace profiles. Loaded profiles carry the
// username, names and email of their account.
type ProfileRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Profile, error)
	FindByUserID(ctx context.Context, userID uint) (*entity.Profile, error)
	Create(ctx context.Context, profile *entity.Profile) error
	// Update writes the editable profile fields and the account's names and email.
	Update(ctx context.Context, profile *entity.Profile) error
	UpdateRole(ctx context.Context, id uint, role entity.Role) error
	ListByRole(ctx context.Context, role entity.Role) ([]*entity.Profile, error)
	CountByRole(ctx context.Context, role entity.Role) (int64, error)
}
