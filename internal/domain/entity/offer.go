package entity

import (
	"strings"
	"time"

	domainerrors "coderr/internal/domain/errors"

	"github.com/shopspring/decimal"
)

// OfferType is the package tier of an offer detail.
type OfferType string

const (
	OfferTypeBasic    OfferType = "basic"
	OfferTypeStandard OfferType = "standard"
	OfferTypePremium  OfferType = "premium"
)

func (t OfferType) IsValid() bool {
	switch t {
	case OfferTypeBasic, OfferTypeStandard, OfferTypePremium:
		return true
	default:
		return false
	}
}

// ParseOfferType validates a raw offer_type value.
func ParseOfferType(raw string) (OfferType, error) {
	t := OfferType(raw)
	if !t.IsValid() {
		return "", domainerrors.ErrInvalidOfferType.WithDetails(raw)
	}

	return t, nil
}

// OfferDetail is one purchasable package of an offer.
type OfferDetail struct {
	ID                 uint
	OfferID            uint
	Title              string
	Revisions          int
	DeliveryTimeInDays int
	Price              decimal.Decimal
	Features           []string
	OfferType          OfferType
}

// OfferDetailInput is a submitted detail. Nil fields were absent from the payload.
type OfferDetailInput struct {
	Title              *string
	Revisions          *int
	DeliveryTimeInDays *int
	Price              *decimal.Decimal
	Features           []string
	OfferType          string
}

// NormalizeRevisions maps an absent or zero revision count to 1.
func NormalizeRevisions(revisions *int) (int, error) {
	if revisions == nil || *revisions == 0 {
		return 1, nil
	}
	if *revisions < 0 {
		return 0, domainerrors.ErrInvalidRevisions
	}

	return *revisions, nil
}

// NewOfferDetail builds a detail from a complete input.
func NewOfferDetail(in OfferDetailInput) (*OfferDetail, error) {
	offerType, err := ParseOfferType(in.OfferType)
	if err != nil {
		return nil, err
	}
	if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title is required for every offer detail")
	}
	if in.DeliveryTimeInDays == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("delivery_time_in_days is required for every offer detail")
	}
	if in.Price == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price is required for every offer detail")
	}

	detail := &OfferDetail{
		OfferType: offerType,
		Features:  []string{},
	}
	if err := detail.apply(in); err != nil {
		return nil, err
	}

	return detail, nil
}

// apply copies every present field of in onto d. The offer type is the merge key and never changes.
func (d *OfferDetail) apply(in OfferDetailInput) error {
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return domainerrors.ErrValidationFailed.WithDetails("title must not be blank")
		}
		d.Title = *in.Title
	}
	if in.Revisions != nil || d.Revisions == 0 {
		revisions, err := NormalizeRevisions(in.Revisions)
		if err != nil {
			return err
		}
		d.Revisions = revisions
	}
	if in.DeliveryTimeInDays != nil {
		if *in.DeliveryTimeInDays < 0 {
			return domainerrors.ErrInvalidDeliveryTime
		}
		d.DeliveryTimeInDays = *in.DeliveryTimeInDays
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return domainerrors.ErrInvalidPrice
		}
		d.Price = in.Price.Round(2)
	}
	if in.Features != nil {
		d.Features = append([]string(nil), in.Features...)
	}

	return nil
}

// Offer is a business profile's listing together with its package tiers.
// MinPrice and MinDeliveryTime are derived from Details and are zero when there are none.
type Offer struct {
	ID              uint
	OwnerProfileID  uint
	Owner           *Profile
	Title           string
	Image           string
	Description     string
	MinPrice        decimal.Decimal
	MinDeliveryTime int
	Details         []*OfferDetail
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OfferInput is the payload of an offer creation.
type OfferInput struct {
	Title       string
	Image       string
	Description string
	Details     []OfferDetailInput
}

// OfferPatch carries the optional scalar fields of an offer update.
type OfferPatch struct {
	Title       *string
	Image       *string
	Description *string
}

// NewOffer creates an offer owned by a business profile. Details are merged by
// title: a later detail repeating an earlier title is dropped without error.
func NewOffer(owner *Profile, in OfferInput) (*Offer, error) {
	if !owner.IsBusiness() {
		return nil, domainerrors.ErrNotBusinessUser
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title is required")
	}

	details, err := mergeDetailsByTitle(in.Details)
	if err != nil {
		return nil, err
	}

	offer := &Offer{
		OwnerProfileID: owner.ID,
		Owner:          owner,
		Title:          in.Title,
		Image:          in.Image,
		Description:    in.Description,
		Details:        details,
	}
	offer.RecomputeMinimums()

	return offer, nil
}

func mergeDetailsByTitle(inputs []OfferDetailInput) ([]*OfferDetail, error) {
	byTitle := make(map[string]struct{}, len(inputs))
	byType := make(map[OfferType]struct{}, len(inputs))
	details := make([]*OfferDetail, 0, len(inputs))

	for _, in := range inputs {
		detail, err := NewOfferDetail(in)
		if err != nil {
			return nil, err
		}
		if _, seen := byTitle[detail.Title]; seen {
			continue
		}
		if _, seen := byType[detail.OfferType]; seen {
			return nil, domainerrors.ErrDuplicateOfferType.WithDetails(string(detail.OfferType))
		}
		byTitle[detail.Title] = struct{}{}
		byType[detail.OfferType] = struct{}{}
		details = append(details, detail)
	}

	return details, nil
}

// IsOwnedBy reports whether profileID owns the offer.
func (o *Offer) IsOwnedBy(profileID uint) bool {
	return profileID != 0 && o.OwnerProfileID == profileID
}

// EnsureEditableBy rejects callers that are not the owning business profile.
func (o *Offer) EnsureEditableBy(caller Caller) error {
	if !caller.IsBusiness() {
		return domainerrors.ErrNotBusinessUser
	}
	if !o.IsOwnedBy(caller.ProfileID()) {
		return domainerrors.ErrNotOfferOwner
	}

	return nil
}

// ApplyPatch updates the scalar fields present in patch.
func (o *Offer) ApplyPatch(patch OfferPatch) error {
	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return domainerrors.ErrValidationFailed.WithDetails("title must not be blank")
		}
		o.Title = *patch.Title
	}
	assign(&o.Image, patch.Image)
	assign(&o.Description, patch.Description)

	return nil
}

// MergeDetailsByType reconciles inputs against existing details keyed on offer_type:
// a match is updated in place, anything else is appended as a new detail.
// It returns the details that were touched.
func (o *Offer) MergeDetailsByType(inputs []OfferDetailInput) ([]*OfferDetail, error) {
	byType := make(map[OfferType]*OfferDetail, len(o.Details))
	for _, detail := range o.Details {
		byType[detail.OfferType] = detail
	}

	touched := make([]*OfferDetail, 0, len(inputs))
	for _, in := range inputs {
		offerType, err := ParseOfferType(in.OfferType)
		if err != nil {
			return nil, err
		}

		if existing, ok := byType[offerType]; ok {
			if err := existing.apply(in); err != nil {
				return nil, err
			}
			touched = append(touched, existing)

			continue
		}

		detail, err := NewOfferDetail(in)
		if err != nil {
			return nil, err
		}
		detail.OfferID = o.ID
		o.Details = append(o.Details, detail)
		byType[offerType] = detail
		touched = append(touched, detail)
	}

	return touched, nil
}

// RecomputeMinimums refreshes the derived minimums and reports whether they changed.
func (o *Offer) RecomputeMinimums() bool {
	minPrice := decimal.Zero
	minDelivery := 0

	for i, detail := range o.Details {
		if i == 0 || detail.Price.LessThan(minPrice) {
			minPrice = detail.Price
		}
		if i == 0 || detail.DeliveryTimeInDays < minDelivery {
			minDelivery = detail.DeliveryTimeInDays
		}
	}

	changed := !o.MinPrice.Equal(minPrice) || o.MinDeliveryTime != minDelivery
	o.MinPrice = minPrice
	o.MinDeliveryTime = minDelivery

	return changed
}

// DetailByID returns the detail with the given id, if it belongs to the offer.
func (o *Offer) DetailByID(id uint) (*OfferDetail, bool) {
	for _, detail := range o.Details {
		if detail.ID == id {
			return detail, true
		}
	}

	return nil, false
}
