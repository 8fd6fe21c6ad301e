package impl

import (
	"context"
	"math"
	"strconv"
	"testing"

	"coderr/config"
	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/policy"
	"coderr/internal/domain/repository"
	mockRepo "coderr/internal/mocks/repository"
	mockSvc "coderr/internal/mocks/service"
	"coderr/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type offerServiceFixtures struct {
	service   usecase.OfferUsecase
	txManager *mockRepo.MockTransactionManager
	qrCode    *mockSvc.MockQRCodeService
}

func createTestOfferService(t *testing.T) offerServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	qrCode := mockSvc.NewMockQRCodeService(t)
	cfg := &config.Config{HTTP: config.HTTPConfig{PublicBaseURL: "https://coderr.example"}}

	return offerServiceFixtures{
		service: NewOfferService(OfferServiceParams{
			TxManager:     txManager,
			Authorizer:    policy.NewAuthorizer(),
			QRCodeService: qrCode,
			Config:        cfg,
			Logger:        newDiscardLogger(),
		}),
		txManager: txManager,
		qrCode:    qrCode,
	}
}

func offerDetailInput(title, offerType, price string, days int) entity.OfferDetailInput {
	p := decimal.RequireFromString(price)

	return entity.OfferDetailInput{
		Title:              ptr(title),
		DeliveryTimeInDays: ptr(days),
		Price:              &p,
		Features:           []string{"Logo"},
		OfferType:          offerType,
	}
}

func storedOffer(owner *entity.Profile) *entity.Offer {
	return &entity.Offer{
		ID:              5,
		OwnerProfileID:  owner.ID,
		Owner:           owner,
		Title:           "Logo design",
		MinPrice:        decimal.RequireFromString("50"),
		MinDeliveryTime: 2,
		Details: []*entity.OfferDetail{
			{ID: 21, OfferID: 5, Title: "Basic", Revisions: 1, DeliveryTimeInDays: 2, Price: decimal.RequireFromString("50"), OfferType: entity.OfferTypeBasic},
			{ID: 22, OfferID: 5, Title: "Standard", Revisions: 3, DeliveryTimeInDays: 5, Price: decimal.RequireFromString("150"), OfferType: entity.OfferTypeStandard},
		},
	}
}

func TestOfferService_Create_ComputesMinimums(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()
	owner := businessProfile(2)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		offerRepo := mockRepo.NewMockOfferRepository(t)
		factory.EXPECT().OfferRepo().Return(offerRepo)
		offerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Offer")).
			Run(func(_ context.Context, o *entity.Offer) { o.ID = 5 }).
			Return(nil)
	})

	offer, err := fx.service.Create(ctx, entity.NewCaller(owner), entity.OfferInput{
		Title: "Logo design",
		Details: []entity.OfferDetailInput{
			offerDetailInput("Basic", "basic", "50", 2),
			offerDetailInput("Standard", "standard", "150", 5),
			offerDetailInput("Premium", "premium", "200", 9),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, uint(5), offer.ID)
	assert.True(t, decimal.RequireFromString("50.00").Equal(offer.MinPrice))
	assert.Equal(t, 2, offer.MinDeliveryTime)
	assert.Len(t, offer.Details, 3)
	assert.Equal(t, owner.ID, offer.OwnerProfileID)
}

// Repeated titles in one creation payload are silently dropped, first one wins.
func TestOfferService_Create_DropsRepeatedTitles(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		offerRepo := mockRepo.NewMockOfferRepository(t)
		factory.EXPECT().OfferRepo().Return(offerRepo)
		offerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Offer")).Return(nil)
	})

	offer, err := fx.service.Create(ctx, entity.NewCaller(businessProfile(2)), entity.OfferInput{
		Title: "Logo design",
		Details: []entity.OfferDetailInput{
			offerDetailInput("Package", "basic", "80", 4),
			offerDetailInput("Package", "standard", "10", 1),
		},
	})

	require.NoError(t, err)
	require.Len(t, offer.Details, 1)
	assert.Equal(t, entity.OfferTypeBasic, offer.Details[0].OfferType)
	assert.True(t, decimal.RequireFromString("80").Equal(offer.MinPrice))
}

func TestOfferService_Create_Denied(t *testing.T) {
	tests := []struct {
		name    string
		caller  entity.Caller
		wantErr error
	}{
		{name: "anonymous", caller: entity.Anonymous(), wantErr: domainerrors.ErrUnauthorized},
		{name: "customer", caller: entity.NewCaller(customerProfile(1)), wantErr: domainerrors.ErrNotBusinessUser},
		{name: "staff", caller: entity.NewCaller(staffProfile(9)), wantErr: domainerrors.ErrNotBusinessUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOfferService(t)

			_, err := fx.service.Create(context.Background(), tt.caller, entity.OfferInput{Title: "x"})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOfferService_Create_InvalidOfferType(t *testing.T) {
	fx := createTestOfferService(t)

	_, err := fx.service.Create(context.Background(), entity.NewCaller(businessProfile(2)), entity.OfferInput{
		Title:   "Logo design",
		Details: []entity.OfferDetailInput{offerDetailInput("Gold", "gold", "50", 2)},
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidOfferType)
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
}

func TestOfferService_Update_MergesByTypeAndPersistsChangedMinimums(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()
	owner := businessProfile(2)
	offer := storedOffer(owner)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		offerRepo := mockRepo.NewMockOfferRepository(t)
		factory.EXPECT().OfferRepo().Return(offerRepo)
		offerRepo.EXPECT().FindByID(ctx, uint(5)).Return(offer, nil)
		offerRepo.EXPECT().Update(ctx, offer).Return(nil)
		offerRepo.EXPECT().SaveDetails(ctx, uint(5), mock.MatchedBy(func(details []*entity.OfferDetail) bool {
			return len(details) == 2 && details[0].ID == 21 && details[1].ID == 0
		})).Return(nil)
		offerRepo.EXPECT().UpdateMinimums(ctx, offer).Return(nil)
	})

	price := decimal.RequireFromString("30")
	updated, err := fx.service.Update(ctx, entity.NewCaller(owner), 5, usecase.UpdateOfferInput{
		Patch: entity.OfferPatch{Title: ptr("Logo design v2")},
		Details: []entity.OfferDetailInput{
			{OfferType: "basic", Price: &price},
			offerDetailInput("Premium", "premium", "200", 9),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "Logo design v2", updated.Title)
	assert.Len(t, updated.Details, 3)
	assert.True(t, price.Equal(updated.MinPrice))
	assert.Equal(t, 2, updated.MinDeliveryTime)
	assert.Equal(t, "Basic", updated.Details[0].Title)
}

func TestOfferService_Update_UnchangedMinimumsAreNotWritten(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()
	owner := businessProfile(2)
	offer := storedOffer(owner)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		offerRepo := mockRepo.NewMockOfferRepository(t)
		factory.EXPECT().OfferRepo().Return(offerRepo)
		offerRepo.EXPECT().FindByID(ctx, uint(5)).Return(offer, nil)
		offerRepo.EXPECT().Update(ctx, offer).Return(nil)
	})

	_, err := fx.service.Update(ctx, entity.NewCaller(owner), 5, usecase.UpdateOfferInput{
		Patch: entity.OfferPatch{Description: ptr("Now with vectors")},
	})

	require.NoError(t, err)
}

func TestOfferService_Update_OtherBusinessIsForbidden(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		offerRepo := mockRepo.NewMockOfferRepository(t)
		factory.EXPECT().OfferRepo().Return(offerRepo)
		offerRepo.EXPECT().FindByID(ctx, uint(5)).Return(storedOffer(businessProfile(2)), nil)
	})

	_, err := fx.service.Update(ctx, entity.NewCaller(businessProfile(3)), 5, usecase.UpdateOfferInput{
		Patch: entity.OfferPatch{Title: ptr("Hijacked")},
	})

	assert.ErrorIs(t, err, domainerrors.ErrNotOfferOwner)
	assert.Equal(t, domainerrors.KindForbidden, domainerrors.KindOf(err))
}

func TestOfferService_Update_NotFound(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		offerRepo := mockRepo.NewMockOfferRepository(t)
		factory.EXPECT().OfferRepo().Return(offerRepo)
		offerRepo.EXPECT().FindByID(ctx, uint(404)).Return(nil, repository.ErrOfferNotFound)
	})

	_, err := fx.service.Update(ctx, entity.NewCaller(businessProfile(2)), 404, usecase.UpdateOfferInput{})

	assert.ErrorIs(t, err, domainerrors.ErrOfferNotFound)
}

func TestOfferService_Delete_Owner(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()
	owner := businessProfile(2)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		offerRepo := mockRepo.NewMockOfferRepository(t)
		factory.EXPECT().OfferRepo().Return(offerRepo)
		offerRepo.EXPECT().FindByID(ctx, uint(5)).Return(storedOffer(owner), nil)
		offerRepo.EXPECT().Delete(ctx, uint(5)).Return(nil)
	})

	err := fx.service.Delete(ctx, entity.NewCaller(owner), 5)

	require.NoError(t, err)
}

func TestOfferService_List_ReducesDetailsToLinks(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()
	offer := storedOffer(businessProfile(2))

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		offerRepo := mockRepo.NewMockOfferRepository(t)
		factory.EXPECT().OfferRepo().Return(offerRepo)
		offerRepo.EXPECT().List(ctx, mock.MatchedBy(func(f repository.OfferFilter) bool {
			return f.Search == "logo" && f.Limit == 10 && f.Offset == 10 &&
				f.Sort == repository.Sort{Field: repository.SortByMinPrice, Desc: true} &&
				f.MaxDeliveryTime != nil && *f.MaxDeliveryTime == 7
		})).Return([]*entity.Offer{offer}, int64(11), nil)
	})

	page, err := fx.service.List(ctx, entity.Anonymous(), usecase.OfferListQuery{
		Search:          "logo",
		MaxDeliveryTime: "7",
		Ordering:        "-min_price",
		Page:            "2",
		PageSize:        "25",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), page.Count)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrevious)
	require.Len(t, page.Items, 1)

	item := page.Items[0]
	assert.Equal(t, []usecase.DetailLink{
		{ID: 21, URL: "/offerdetails/21/"},
		{ID: 22, URL: "/offerdetails/22/"},
	}, item.DetailLinks)
	assert.Equal(t, usecase.UserDetails{FirstName: "Sam", LastName: "Seller", Username: "seller"}, item.UserDetails)
}

func TestOfferService_List_PageOutOfRange(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		offerRepo := mockRepo.NewMockOfferRepository(t)
		factory.EXPECT().OfferRepo().Return(offerRepo)
		offerRepo.EXPECT().List(ctx, mock.Anything).Return([]*entity.Offer{}, int64(3), nil)
	})

	_, err := fx.service.List(ctx, entity.Anonymous(), usecase.OfferListQuery{Page: "3"})

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestOfferService_List_InvalidQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   usecase.OfferListQuery
		wantErr error
	}{
		{name: "min_price", query: usecase.OfferListQuery{MinPrice: "cheap"}, wantErr: domainerrors.ErrInvalidFilter},
		{name: "max_delivery_time", query: usecase.OfferListQuery{MaxDeliveryTime: "soon"}, wantErr: domainerrors.ErrInvalidFilter},
		{name: "creator_id", query: usecase.OfferListQuery{CreatorID: "-1"}, wantErr: domainerrors.ErrInvalidFilter},
		{name: "ordering", query: usecase.OfferListQuery{Ordering: "title"}, wantErr: domainerrors.ErrInvalidOrdering},
		{name: "page zero", query: usecase.OfferListQuery{Page: "0"}, wantErr: domainerrors.ErrNotFound},
		{name: "page not a number", query: usecase.OfferListQuery{Page: "last"}, wantErr: domainerrors.ErrNotFound},
		{name: "page offset overflows", query: usecase.OfferListQuery{Page: "1537228672809129303"}, wantErr: domainerrors.ErrNotFound},
		{
			name:    "page offset overflows with max page size",
			query:   usecase.OfferListQuery{Page: strconv.Itoa(math.MaxInt/10 + 2), PageSize: "10"},
			wantErr: domainerrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOfferService(t)

			_, err := fx.service.List(context.Background(), entity.Anonymous(), tt.query)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// Retrieval returns the bare offer: the owner preview only exists on list items.
func TestOfferService_Get_IsPublic(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()
	offer := storedOffer(businessProfile(2))

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		offerRepo := mockRepo.NewMockOfferRepository(t)
		factory.EXPECT().OfferRepo().Return(offerRepo)
		offerRepo.EXPECT().FindByID(ctx, uint(5)).Return(offer, nil)
	})

	got, err := fx.service.Get(ctx, entity.Anonymous(), 5)

	require.NoError(t, err)
	assert.Same(t, offer, got)
}

func TestOfferService_GetDetail_NotFound(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		offerRepo := mockRepo.NewMockOfferRepository(t)
		factory.EXPECT().OfferRepo().Return(offerRepo)
		offerRepo.EXPECT().FindDetailByID(ctx, uint(77)).Return(nil, repository.ErrOfferDetailNotFound)
	})

	_, err := fx.service.GetDetail(ctx, entity.Anonymous(), 77)

	assert.ErrorIs(t, err, domainerrors.ErrOfferDetailNotFound)
}

func TestOfferService_ShareQR(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		offerRepo := mockRepo.NewMockOfferRepository(t)
		factory.EXPECT().OfferRepo().Return(offerRepo)
		offerRepo.EXPECT().FindByID(ctx, uint(5)).Return(storedOffer(businessProfile(2)), nil)
	})
	fx.qrCode.EXPECT().GenerateOfferQR(uint(5), "https://coderr.example/api/offers/5/").Return([]byte("png"), nil)

	png, err := fx.service.ShareQR(ctx, entity.Anonymous(), 5)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}
