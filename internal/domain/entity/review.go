package entity

import (
	"strconv"
	"time"

	domainerrors "coderr/internal/domain/errors"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a customer's rating of a business profile. One per (reviewer, business) pair.
type Review struct {
	ID                uint
	ReviewerProfileID uint
	BusinessProfileID uint
	Rating            int
	Description       string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ReviewPatch carries the optional fields of a review update.
type ReviewPatch struct {
	Rating      *int
	Description *string
}

// ValidateRating checks the 1..5 range.
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return domainerrors.ErrInvalidRating.WithDetails(strconv.Itoa(rating))
	}

	return nil
}

// WriteReview creates a review by a customer for a business profile.
func WriteReview(reviewer, business *Profile, rating int, description string) (*Review, error) {
	if !reviewer.IsCustomer() {
		return nil, domainerrors.ErrNotCustomerUser
	}
	if !business.IsBusiness() {
		return nil, domainerrors.ErrReviewTargetNotBusiness
	}
	if err := ValidateRating(rating); err != nil {
		return nil, err
	}

	return &Review{
		ReviewerProfileID: reviewer.ID,
		BusinessProfileID: business.ID,
		Rating:            rating,
		Description:       description,
	}, nil
}

// EnsureEditableBy allows only the reviewer to change or delete the review.
func (r *Review) EnsureEditableBy(caller Caller) error {
	if caller.ProfileID() == 0 || caller.ProfileID() != r.ReviewerProfileID {
		return domainerrors.ErrNotReviewer
	}

	return nil
}

// Apply validates and applies a patch in place.
func (r *Review) Apply(patch ReviewPatch) error {
	if patch.Rating != nil {
		if err := ValidateRating(*patch.Rating); err != nil {
			return err
		}
		r.Rating = *patch.Rating
	}
	assign(&r.Description, patch.Description)

	return nil
}
