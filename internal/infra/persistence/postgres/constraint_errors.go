package postgres

import (
	"coderr/internal/errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Constraint names from the migrations.
const (
	constraintAccountsUsername      = "uq_accounts_username"
	constraintOfferDetailsOfferType = "uq_offer_details_offer_type"
	constraintReviewsReviewer       = "uq_reviews_reviewer_business"
)

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}

	return nil, false
}

// isUniqueViolation reports a unique violation, optionally restricted to one constraint.
func isUniqueViolation(err error, constraint string) bool {
	if pgErr, ok := pgError(err); ok {
		return pgErr.Code == pgerrcode.UniqueViolation && (constraint == "" || pgErr.ConstraintName == constraint)
	}

	// Translated errors carry no constraint name.
	return constraint == "" && errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyViolation(err error) bool {
	if pgErr, ok := pgError(err); ok {
		return pgErr.Code == pgerrcode.ForeignKeyViolation
	}

	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isCheckViolation(err error) bool {
	if pgErr, ok := pgError(err); ok {
		return pgErr.Code == pgerrcode.CheckViolation
	}

	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}
