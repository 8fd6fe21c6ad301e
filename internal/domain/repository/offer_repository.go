package repository

import (
	"context"

	"coderr/internal/domain/entity"
	"coderr/internal/errors"

	"github.com/shopspring/decimal"
)

var (
	ErrOfferNotFound       = errors.New("offer not found")
	ErrOfferDetailNotFound = errors.New("offer detail not found")
	ErrDuplicateOfferType  = errors.New("offer already has a detail of this type")
)

// SortField is a whitelisted ordering column.
type SortField string

const (
	SortByMinPrice  SortField = "min_price"
	SortByUpdatedAt SortField = "updated_at"
	SortByRating    SortField = "rating"
)

// Sort orders a listing. A zero Sort keeps the store's default order.
type Sort struct {
	Field SortField
	Desc  bool
}

// OfferFilter narrows an offer listing. Nil fields are not applied.
type OfferFilter struct {
	Search          string
	MinPrice        *decimal.Decimal
	MaxDeliveryTime *int
	CreatorID       *uint
	Sort            Sort
	Offset          int
	Limit           int
}

// OfferRepository persists offers together with their details.
type OfferRepository interface {
	// Create inserts the offer and its details, filling in generated IDs.
	Create(ctx context.Context, offer *entity.Offer) error
	// FindByID loads the offer with its owner and details.
	FindByID(ctx context.Context, id uint) (*entity.Offer, error)
	// Update writes title, image and description.
	Update(ctx context.Context, offer *entity.Offer) error
	// SaveDetails inserts details without an ID and updates the others.
	SaveDetails(ctx context.Context, offerID uint, details []*entity.OfferDetail) error
	UpdateMinimums(ctx context.Context, offer *entity.Offer) error
	Delete(ctx context.Context, id uint) error
	// List returns one page of offers with owners and details, plus the total match count.
	List(ctx context.Context, filter OfferFilter) ([]*entity.Offer, int64, error)
	FindDetailByID(ctx context.Context, id uint) (*entity.OfferDetail, error)
	Count(ctx context.Context) (int64, error)
}
