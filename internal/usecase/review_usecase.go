package usecase

import (
	"context"

	"coderr/internal/domain/entity"
)

// CreateReviewInput is the payload of a new review.
type CreateReviewInput struct {
	BusinessProfileID uint
	Rating            int
	Description       string
}

// ReviewListQuery carries the raw listing parameters. Empty strings are not applied.
type ReviewListQuery struct {
	BusinessUserID string
	ReviewerID     string
	Ordering       string
}

// ReviewUsecase defines the review operations.
type ReviewUsecase interface {
	Create(ctx context.Context, caller entity.Caller, input CreateReviewInput) (*entity.Review, error)
	Update(ctx context.Context, caller entity.Caller, reviewID uint, patch entity.ReviewPatch) (*entity.Review, error)
	Delete(ctx context.Context, caller entity.Caller, reviewID uint) error
	List(ctx context.Context, caller entity.Caller, query ReviewListQuery) ([]*entity.Review, error)
	Get(ctx context.Context, caller entity.Caller, reviewID uint) (*entity.Review, error)
}
