package repository

import (
	"context"

	"coderr/internal/domain/entity"
	"coderr/internal/errors"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	// ErrDuplicateReview is raised by the storage uniqueness constraint on (reviewer, business).
	ErrDuplicateReview = errors.New("review for this business already exists")
)

// ReviewFilter narrows a review listing. Nil fields are not applied.
type ReviewFilter struct {
	BusinessProfileID *uint
	ReviewerProfileID *uint
	Sort              Sort
}

// ReviewRepository persists reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uint) (*entity.Review, error)
	FindByReviewerAndBusiness(ctx context.Context, reviewerProfileID, businessProfileID uint) (*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ReviewFilter) ([]*entity.Review, error)
	Count(ctx context.Context) (int64, error)
	// AverageRating is zero when there are no reviews.
	AverageRating(ctx context.Context) (float64, error)
}
