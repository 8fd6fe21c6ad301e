package postgres

import (
	"context"

	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/repository"
	"coderr/internal/errors"
	"coderr/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface.
// Every loaded profile joins its account for username, names and email.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (repo *profileRepository) withAccount(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Preload("Account")
}

func (repo *profileRepository) FindByID(ctx context.Context, id uint) (*entity.Profile, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *profileRepository) FindByUserID(ctx context.Context, userID uint) (*entity.Profile, error) {
	return repo.findOne(ctx, "user_id = ?", userID)
}

func (repo *profileRepository) findOne(ctx context.Context, query string, arg uint) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.withAccount(ctx).Where(query, arg).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return toProfileDomain(&profileM), nil
}

// Create inserts the profile row only; the account must already exist.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Omit("Account").Create(profileM).Error; err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt

	return nil
}

func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	db := repo.db.WithContext(ctx)

	result := db.Model(&model.ProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"file":          profile.File,
			"location":      profile.Location,
			"tel":           profile.Tel,
			"description":   profile.Description,
			"working_hours": profile.WorkingHours,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	if err := db.Model(&model.AccountModel{}).
		Where("id = ?", profile.UserID).
		Updates(map[string]any{
			"first_name": profile.FirstName,
			"last_name":  profile.LastName,
			"email":      profile.Email,
		}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update profile account")
	}

	return nil
}

func (repo *profileRepository) UpdateRole(ctx context.Context, id uint, role entity.Role) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Update("role", string(role))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile role")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

func (repo *profileRepository) ListByRole(ctx context.Context, role entity.Role) ([]*entity.Profile, error) {
	var profileModels []*model.ProfileModel

	if err := repo.withAccount(ctx).
		Where("role = ?", string(role)).
		Order("id ASC").
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list profiles by role")
	}

	profiles := make([]*entity.Profile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, nil
}

func (repo *profileRepository) CountByRole(ctx context.Context, role entity.Role) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("role = ?", string(role)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count profiles by role")
	}

	return count, nil
}

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	profile := &entity.Profile{
		ID:           data.ID,
		UserID:       data.UserID,
		Role:         entity.Role(data.Role),
		File:         data.File,
		Location:     data.Location,
		Tel:          data.Tel,
		Description:  data.Description,
		WorkingHours: data.WorkingHours,
		CreatedAt:    data.CreatedAt,
	}
	if data.Account != nil {
		profile.Username = data.Account.Username
		profile.FirstName = data.Account.FirstName
		profile.LastName = data.Account.LastName
		profile.Email = data.Account.Email
	}

	return profile
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Role:         string(data.Role),
		File:         data.File,
		Location:     data.Location,
		Tel:          data.Tel,
		Description:  data.Description,
		WorkingHours: data.WorkingHours,
		CreatedAt:    data.CreatedAt,
	}
}
