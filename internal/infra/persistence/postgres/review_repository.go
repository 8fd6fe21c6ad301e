package postgres

import (
	"context"
	"time"

	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/repository"
	"coderr/internal/errors"
	"coderr/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueViolation(err, constraintReviewsReviewer) {
			return repository.ErrDuplicateReview
		}
		if isCheckViolation(err) {
			return domainerrors.ErrInvalidRating
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

func (repo *reviewRepository) FindByID(ctx context.Context, id uint) (*entity.Review, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("id = ?", id))
}

func (repo *reviewRepository) FindByReviewerAndBusiness(ctx context.Context, reviewerProfileID, businessProfileID uint) (*entity.Review, error) {
	return repo.findOne(repo.db.WithContext(ctx).
		Where("reviewer_profile_id = ? AND business_profile_id = ?", reviewerProfileID, businessProfileID))
}

func (repo *reviewRepository) findOne(query *gorm.DB) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := query.First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return toReviewDomain(&reviewM), nil
}

func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", review.ID).
		Updates(map[string]any{
			"rating":      review.Rating,
			"description": review.Description,
			"updated_at":  now,
		})
	if result.Error != nil {
		if isCheckViolation(result.Error) {
			return domainerrors.ErrInvalidRating
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	review.UpdatedAt = now

	return nil
}

func (repo *reviewRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.ReviewModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

func (repo *reviewRepository) List(ctx context.Context, filter repository.ReviewFilter) ([]*entity.Review, error) {
	query := repo.db.WithContext(ctx)
	if filter.BusinessProfileID != nil {
		query = query.Where("business_profile_id = ?", *filter.BusinessProfileID)
	}
	if filter.ReviewerProfileID != nil {
		query = query.Where("reviewer_profile_id = ?", *filter.ReviewerProfileID)
	}
	if filter.Sort.Field != "" {
		query = query.Order(clause.OrderByColumn{
			Column: clause.Column{Name: string(filter.Sort.Field)},
			Desc:   filter.Sort.Desc,
		})
	}

	var reviewModels []*model.ReviewModel
	if err := query.Order("id ASC").Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

func (repo *reviewRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).Model(&model.ReviewModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count reviews")
	}

	return count, nil
}

// AverageRating is computed in SQL; COALESCE makes an empty table yield zero.
func (repo *reviewRepository) AverageRating(ctx context.Context) (float64, error) {
	var average float64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&average).Error; err != nil {
		return 0, errors.Wrap(err, "failed to average review ratings")
	}

	return average, nil
}

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:                data.ID,
		ReviewerProfileID: data.ReviewerProfileID,
		BusinessProfileID: data.BusinessProfileID,
		Rating:            data.Rating,
		Description:       data.Description,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:                data.ID,
		ReviewerProfileID: data.ReviewerProfileID,
		BusinessProfileID: data.BusinessProfileID,
		Rating:            data.Rating,
		Description:       data.Description,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
