package postgres

import (
	"testing"

	"coderr/internal/errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	reviewDup := errors.Wrap(&pgconn.PgError{
		Code:           pgerrcode.UniqueViolation,
		ConstraintName: constraintReviewsReviewer,
	}, "insert")

	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{name: "matching constraint", err: reviewDup, constraint: constraintReviewsReviewer, want: true},
		{name: "any constraint", err: reviewDup, want: true},
		{name: "other constraint", err: reviewDup, constraint: constraintAccountsUsername, want: false},
		{name: "check violation", err: &pgconn.PgError{Code: pgerrcode.CheckViolation}, want: false},
		{name: "translated gorm error", err: gorm.ErrDuplicatedKey, want: true},
		{name: "translated gorm error with constraint", err: gorm.ErrDuplicatedKey, constraint: constraintReviewsReviewer, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueViolation(tt.err, tt.constraint))
		})
	}
}

func TestIsCheckAndForeignKeyViolation(t *testing.T) {
	assert.True(t, isCheckViolation(&pgconn.PgError{Code: pgerrcode.CheckViolation}))
	assert.True(t, isCheckViolation(gorm.ErrCheckConstraintViolated))
	assert.False(t, isCheckViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))

	assert.True(t, isForeignKeyViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	assert.True(t, isForeignKeyViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, isForeignKeyViolation(errors.New("boom")))
}
