package usecase

import (
	"context"

	"coderr/internal/domain/entity"
)

// OfferListQuery carries the raw listing parameters. Empty strings are not applied.
type OfferListQuery struct {
	Search          string
	MinPrice        string
	MaxDeliveryTime string
	CreatorID       string
	Ordering        string
	Page            string
	PageSize        string
}

// UpdateOfferInput is a partial offer update. A nil Details leaves the details untouched.
type UpdateOfferInput struct {
	Patch   entity.OfferPatch
	Details []entity.OfferDetailInput
}

// DetailLink references an offer detail without its body.
type DetailLink struct {
	ID  uint
	URL string
}

// UserDetails previews the owner of a listed offer.
type UserDetails struct {
	FirstName string
	LastName  string
	Username  string
}

// OfferListItem is the list representation of an offer: details are reduced to
// links and the owner preview is attached.
type OfferListItem struct {
	Offer       *entity.Offer
	DetailLinks []DetailLink
	UserDetails UserDetails
}

// OfferPage is one page of an offer listing.
type OfferPage struct {
	Count       int64
	Page        int
	PageSize    int
	HasNext     bool
	HasPrevious bool
	Items       []OfferListItem
}

// OfferUsecase defines the offer aggregate operations.
type OfferUsecase interface {
	Create(ctx context.Context, caller entity.Caller, input entity.OfferInput) (*entity.Offer, error)
	Update(ctx context.Context, caller entity.Caller, offerID uint, input UpdateOfferInput) (*entity.Offer, error)
	Delete(ctx context.Context, caller entity.Caller, offerID uint) error
	List(ctx context.Context, caller entity.Caller, query OfferListQuery) (*OfferPage, error)
	// Get returns the full offer without the owner preview.
	Get(ctx context.Context, caller entity.Caller, offerID uint) (*entity.Offer, error)
	GetDetail(ctx context.Context, caller entity.Caller, detailID uint) (*entity.OfferDetail, error)
	// ShareQR renders a PNG QR code pointing at the public offer URL.
	ShareQR(ctx context.Context, caller entity.Caller, offerID uint) ([]byte, error)
}
