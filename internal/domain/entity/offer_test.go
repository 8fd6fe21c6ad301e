package entity

import (
	"testing"

	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func detailInput(title, offerType string, price string, days int) OfferDetailInput {
	p := decimal.RequireFromString(price)

	return OfferDetailInput{
		Title:              ptr(title),
		DeliveryTimeInDays: ptr(days),
		Price:              &p,
		Features:           []string{"Logo Design"},
		OfferType:          offerType,
	}
}

func businessProfile(id uint) *Profile {
	return &Profile{ID: id, Role: RoleBusiness, Username: "biz"}
}

func TestNewOffer_ComputesMinimums(t *testing.T) {
	offer, err := NewOffer(businessProfile(7), OfferInput{
		Title: "Grafikdesign-Paket",
		Details: []OfferDetailInput{
			detailInput("Basic Design", "basic", "50", 2),
			detailInput("Standard Design", "standard", "150", 5),
			detailInput("Premium Design", "premium", "200", 9),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, uint(7), offer.OwnerProfileID)
	assert.Len(t, offer.Details, 3)
	assert.Equal(t, "50.00", offer.MinPrice.StringFixed(2))
	assert.Equal(t, 2, offer.MinDeliveryTime)
}

func TestNewOffer_RejectsNonBusinessOwner(t *testing.T) {
	for _, owner := range []*Profile{nil, {ID: 1, Role: RoleCustomer}, {ID: 2, Role: RoleStaff}} {
		_, err := NewOffer(owner, OfferInput{Title: "x"})
		assert.True(t, errors.Is(err, domainerrors.ErrNotBusinessUser))
	}
}

func TestNewOffer_InvalidOfferType(t *testing.T) {
	_, err := NewOffer(businessProfile(1), OfferInput{
		Title:   "x",
		Details: []OfferDetailInput{detailInput("Gold", "gold", "10", 1)},
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOfferType))
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
}

// A repeated title is dropped silently while other malformed details are rejected.
func TestNewOffer_DuplicateTitleIsDroppedSilently(t *testing.T) {
	offer, err := NewOffer(businessProfile(1), OfferInput{
		Title: "x",
		Details: []OfferDetailInput{
			detailInput("Same", "basic", "50", 2),
			detailInput("Same", "standard", "10", 1),
		},
	})

	require.NoError(t, err)
	require.Len(t, offer.Details, 1)
	assert.Equal(t, OfferTypeBasic, offer.Details[0].OfferType)
	assert.Equal(t, "50", offer.MinPrice.String())
	assert.Equal(t, 2, offer.MinDeliveryTime)
}

func TestNewOffer_DuplicateOfferTypeIsRejected(t *testing.T) {
	_, err := NewOffer(businessProfile(1), OfferInput{
		Title: "x",
		Details: []OfferDetailInput{
			detailInput("One", "basic", "50", 2),
			detailInput("Two", "basic", "60", 3),
		},
	})

	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateOfferType))
}

func TestNewOffer_NoDetailsMeansZeroMinimums(t *testing.T) {
	offer, err := NewOffer(businessProfile(1), OfferInput{Title: "x"})

	require.NoError(t, err)
	assert.True(t, offer.MinPrice.IsZero())
	assert.Zero(t, offer.MinDeliveryTime)
}

func TestNormalizeRevisions(t *testing.T) {
	tests := []struct {
		name    string
		in      *int
		want    int
		wantErr error
	}{
		{"absent", nil, 1, nil},
		{"zero", ptr(0), 1, nil},
		{"explicit", ptr(3), 3, nil},
		{"negative", ptr(-1), 0, domainerrors.ErrInvalidRevisions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeRevisions(tt.in)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewOfferDetail_StoresNormalizedRevisions(t *testing.T) {
	in := detailInput("Basic", "basic", "10", 1)
	in.Revisions = ptr(0)

	detail, err := NewOfferDetail(in)

	require.NoError(t, err)
	assert.Equal(t, 1, detail.Revisions)
}

func TestNewOfferDetail_RejectsNegativeValues(t *testing.T) {
	negativePrice := detailInput("Basic", "basic", "-1", 1)
	_, err := NewOfferDetail(negativePrice)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPrice))

	negativeDays := detailInput("Basic", "basic", "1", -1)
	_, err = NewOfferDetail(negativeDays)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidDeliveryTime))

	missingPrice := detailInput("Basic", "basic", "1", 1)
	missingPrice.Price = nil
	_, err = NewOfferDetail(missingPrice)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOffer_MergeDetailsByType(t *testing.T) {
	offer, err := NewOffer(businessProfile(1), OfferInput{
		Title: "x",
		Details: []OfferDetailInput{
			detailInput("Basic", "basic", "50", 2),
			detailInput("Standard", "standard", "150", 5),
		},
	})
	require.NoError(t, err)
	offer.RecomputeMinimums()

	cheaper := decimal.RequireFromString("30")
	touched, err := offer.MergeDetailsByType([]OfferDetailInput{
		{OfferType: "standard", Price: &cheaper},
		detailInput("Premium", "premium", "400", 1),
	})

	require.NoError(t, err)
	assert.Len(t, touched, 2)
	require.Len(t, offer.Details, 3)
	assert.Equal(t, "Standard", offer.Details[1].Title)
	assert.Equal(t, 5, offer.Details[1].DeliveryTimeInDays)
	assert.True(t, offer.RecomputeMinimums())
	assert.Equal(t, "30", offer.MinPrice.String())
	assert.Equal(t, 1, offer.MinDeliveryTime)
	assert.False(t, offer.RecomputeMinimums())
}

func TestOffer_MergeDetailsByTypeIgnoresTitle(t *testing.T) {
	offer, err := NewOffer(businessProfile(1), OfferInput{
		Title:   "x",
		Details: []OfferDetailInput{detailInput("Basic", "basic", "50", 2)},
	})
	require.NoError(t, err)

	_, err = offer.MergeDetailsByType([]OfferDetailInput{{OfferType: "basic", Title: ptr("Renamed")}})

	require.NoError(t, err)
	require.Len(t, offer.Details, 1)
	assert.Equal(t, "Renamed", offer.Details[0].Title)
}

func TestOffer_MergeDetailsByTypeRejectsUnknownType(t *testing.T) {
	offer := &Offer{}

	_, err := offer.MergeDetailsByType([]OfferDetailInput{{OfferType: "deluxe"}})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOfferType))
}

func TestOffer_EnsureEditableBy(t *testing.T) {
	offer := &Offer{OwnerProfileID: 5}

	assert.NoError(t, offer.EnsureEditableBy(NewCaller(businessProfile(5))))
	assert.True(t, errors.Is(offer.EnsureEditableBy(NewCaller(businessProfile(6))), domainerrors.ErrNotOfferOwner))
	assert.True(t, errors.Is(offer.EnsureEditableBy(NewCaller(&Profile{ID: 5, Role: RoleCustomer})), domainerrors.ErrNotBusinessUser))
	assert.True(t, errors.Is(offer.EnsureEditableBy(Anonymous()), domainerrors.ErrNotBusinessUser))
}
