package errors

import (
	"net/http"
	"testing"

	"coderr/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrInvalidRating.WithDetails("rating=7")

	assert.True(t, errors.Is(err, ErrInvalidRating))
	assert.False(t, errors.Is(err, ErrInvalidOrderStatus))
	assert.Equal(t, "rating must be an integer between 1 and 5.: rating=7", err.Error())
	assert.Empty(t, ErrInvalidRating.Details())
}

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrNotOfferOwner.WrapMessage("offer 12")

	assert.True(t, errors.Is(err, ErrNotOfferOwner))
	assert.Equal(t, KindForbidden, KindOf(err))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, ""},
		{"unauthorized", ErrUnauthorized, KindUnauthorized},
		{"forbidden", ErrNotStaff, KindForbidden},
		{"validation", ErrInvalidOfferType, KindValidation},
		{"not found", ErrOfferDetailNotFound, KindNotFound},
		{"duplicate review", errors.Wrap(ErrDuplicateReview, "create"), KindDuplicateReview},
		{"database", NewDatabaseExecuteError(errors.New("boom"), "insert"), KindFatal},
		{"plain error", errors.New("boom"), KindFatal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestDuplicateReviewIsDistinctFromValidation(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ErrDuplicateReview.HTTPCode())
	assert.NotEqual(t, KindValidation, ErrDuplicateReview.Kind())
	assert.Equal(t, "You have already reviewed this business profile.", ErrDuplicateReview.Message())
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "find offer")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "find offer", err.Details())
}
