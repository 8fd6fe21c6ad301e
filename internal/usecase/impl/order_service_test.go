package impl

import (
	"context"
	"testing"
	"time"

	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/policy"
	"coderr/internal/domain/repository"
	"coderr/internal/domain/service"
	"coderr/internal/errors"
	mockRepo "coderr/internal/mocks/repository"
	mockSvc "coderr/internal/mocks/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type orderServiceFixtures struct {
	service   *orderService
	txManager *mockRepo.MockTransactionManager
	publisher *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	srv := NewOrderService(OrderServiceParams{
		TxManager:  txManager,
		Authorizer: policy.NewAuthorizer(),
		Publisher:  publisher,
		Logger:     newDiscardLogger(),
	}).(*orderService)
	srv.now = func() time.Time { return fixedNow }

	return orderServiceFixtures{service: srv, txManager: txManager, publisher: publisher}
}

func inProgressOrder(customerID, businessID uint) *entity.Order {
	return &entity.Order{
		ID:                30,
		CustomerProfileID: customerID,
		BusinessProfileID: businessID,
		Status:            entity.OrderStatusInProgress,
	}
}

func TestOrderService_Create_SnapshotsDetail(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	business := businessProfile(2)
	offer := storedOffer(business)
	standard := offer.Details[1]

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		offerRepo := mockRepo.NewMockOfferRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OfferRepo().Return(offerRepo)
		factory.EXPECT().OrderRepo().Return(orderRepo)
		offerRepo.EXPECT().FindDetailByID(ctx, uint(22)).Return(standard, nil)
		offerRepo.EXPECT().FindByID(ctx, uint(5)).Return(offer, nil)
		orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).
			Run(func(_ context.Context, o *entity.Order) { o.ID = 30 }).
			Return(nil)
	})
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.MatchedBy(func(e *service.OrderEvent) bool {
		return e.Type == service.OrderEventPlaced && e.OrderID == 30 && e.BusinessProfileID == 2 && e.Status == "in_progress"
	})).Return(nil)

	order, err := fx.service.Create(ctx, entity.NewCaller(customerProfile(1)), "22")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusInProgress, order.Status)
	assert.Equal(t, uint(2), order.BusinessProfileID)
	assert.Equal(t, uint(1), order.CustomerProfileID)
	assert.Equal(t, entity.OfferTypeStandard, order.Snapshot.OfferType)
	assert.True(t, decimal.RequireFromString("150.00").Equal(order.Snapshot.Price))

	standard.Price = decimal.RequireFromString("999")
	assert.True(t, decimal.RequireFromString("150").Equal(order.Snapshot.Price))
}

func TestOrderService_Create_InvalidDetailID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "missing", raw: "", wantErr: domainerrors.ErrOfferDetailIDRequired},
		{name: "blank", raw: "  ", wantErr: domainerrors.ErrOfferDetailIDRequired},
		{name: "non-numeric", raw: "abc", wantErr: domainerrors.ErrInvalidID},
		{name: "zero", raw: "0", wantErr: domainerrors.ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)

			_, err := fx.service.Create(context.Background(), entity.NewCaller(customerProfile(1)), tt.raw)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
		})
	}
}

func TestOrderService_Create_UnknownDetail(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		offerRepo := mockRepo.NewMockOfferRepository(t)
		factory.EXPECT().OfferRepo().Return(offerRepo)
		offerRepo.EXPECT().FindDetailByID(ctx, uint(999)).Return(nil, repository.ErrOfferDetailNotFound)
	})

	_, err := fx.service.Create(ctx, entity.NewCaller(customerProfile(1)), "999")

	assert.ErrorIs(t, err, domainerrors.ErrOfferDetailNotFound)
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestOrderService_Create_OnlyCustomers(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.Create(context.Background(), entity.NewCaller(businessProfile(2)), "22")

	assert.ErrorIs(t, err, domainerrors.ErrNotCustomerUser)
}

func TestOrderService_Create_PublishFailureKeepsOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	offer := storedOffer(businessProfile(2))

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		offerRepo := mockRepo.NewMockOfferRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OfferRepo().Return(offerRepo)
		factory.EXPECT().OrderRepo().Return(orderRepo)
		offerRepo.EXPECT().FindDetailByID(ctx, uint(21)).Return(offer.Details[0], nil)
		offerRepo.EXPECT().FindByID(ctx, uint(5)).Return(offer, nil)
		orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	})
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	order, err := fx.service.Create(ctx, entity.NewCaller(customerProfile(1)), "21")

	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_UpdateStatus_ByOrderBusiness(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := inProgressOrder(1, 2)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(orderRepo)
		orderRepo.EXPECT().FindByID(ctx, uint(30)).Return(order, nil)
		orderRepo.EXPECT().UpdateStatus(ctx, uint(30), entity.OrderStatusInProgress, entity.OrderStatusCompleted, fixedNow).Return(nil)
	})
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.MatchedBy(func(e *service.OrderEvent) bool {
		return e.Type == service.OrderEventStatusChanged && e.PreviousStatus == "in_progress" && e.Status == "completed"
	})).Return(nil)

	updated, err := fx.service.UpdateStatus(ctx, entity.NewCaller(businessProfile(2)), 30, "completed")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, updated.Status)
	assert.Equal(t, fixedNow, updated.UpdatedAt)
}

func TestOrderService_UpdateStatus_SameStatusIsNoop(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(orderRepo)
		orderRepo.EXPECT().FindByID(ctx, uint(30)).Return(inProgressOrder(1, 2), nil)
	})

	updated, err := fx.service.UpdateStatus(ctx, entity.NewCaller(businessProfile(2)), 30, "in_progress")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusInProgress, updated.Status)
}

// The policy table and the entity both reject callers other than the order's
// business; each layer is exercised on its own.
func TestOrderService_UpdateStatus_Forbidden(t *testing.T) {
	t.Run("customer of the same order", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.UpdateStatus(context.Background(), entity.NewCaller(customerProfile(1)), 30, "completed")

		assert.ErrorIs(t, err, domainerrors.ErrNotOrderBusiness)
	})

	t.Run("another business", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()

		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			orderRepo := mockRepo.NewMockOrderRepository(t)
			factory.EXPECT().OrderRepo().Return(orderRepo)
			orderRepo.EXPECT().FindByID(ctx, uint(30)).Return(inProgressOrder(1, 2), nil)
		})

		_, err := fx.service.UpdateStatus(ctx, entity.NewCaller(businessProfile(3)), 30, "completed")

		assert.ErrorIs(t, err, domainerrors.ErrNotOrderBusiness)
		assert.Equal(t, domainerrors.KindForbidden, domainerrors.KindOf(err))
	})

	t.Run("entity check without policy", func(t *testing.T) {
		_, err := inProgressOrder(1, 2).TransitionTo(entity.NewCaller(businessProfile(3)), entity.OrderStatusCompleted)

		assert.ErrorIs(t, err, domainerrors.ErrNotOrderBusiness)
	})
}

func TestOrderService_UpdateStatus_InvalidStatus(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.UpdateStatus(context.Background(), entity.NewCaller(businessProfile(2)), 30, "shipped")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
}

func TestOrderService_UpdateStatus_TerminalOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := inProgressOrder(1, 2)
	order.Status = entity.OrderStatusCancelled

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(orderRepo)
		orderRepo.EXPECT().FindByID(ctx, uint(30)).Return(order, nil)
	})

	_, err := fx.service.UpdateStatus(ctx, entity.NewCaller(businessProfile(2)), 30, "completed")

	assert.ErrorIs(t, err, domainerrors.ErrOrderStatusTerminal)
}

func TestOrderService_UpdateStatus_ConcurrentChange(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	completed := inProgressOrder(1, 2)
	completed.Status = entity.OrderStatusCompleted

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(orderRepo)
		orderRepo.EXPECT().FindByID(ctx, uint(30)).Return(inProgressOrder(1, 2), nil).Once()
		orderRepo.EXPECT().UpdateStatus(ctx, uint(30), entity.OrderStatusInProgress, entity.OrderStatusCancelled, fixedNow).
			Return(repository.ErrOrderStatusConflict)
		orderRepo.EXPECT().FindByID(ctx, uint(30)).Return(completed, nil).Once()
	})

	_, err := fx.service.UpdateStatus(ctx, entity.NewCaller(businessProfile(2)), 30, "cancelled")

	assert.ErrorIs(t, err, domainerrors.ErrOrderStatusTerminal)
}

func TestOrderService_Delete(t *testing.T) {
	t.Run("staff deletes any order", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()

		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			orderRepo := mockRepo.NewMockOrderRepository(t)
			factory.EXPECT().OrderRepo().Return(orderRepo)
			orderRepo.EXPECT().FindByID(ctx, uint(30)).Return(inProgressOrder(1, 2), nil)
			orderRepo.EXPECT().Delete(ctx, uint(30)).Return(nil)
		})

		err := fx.service.Delete(ctx, entity.NewCaller(staffProfile(9)), 30)

		require.NoError(t, err)
	})

	for name, caller := range map[string]entity.Caller{
		"customer of the order": entity.NewCaller(customerProfile(1)),
		"business of the order": entity.NewCaller(businessProfile(2)),
	} {
		t.Run(name, func(t *testing.T) {
			fx := createTestOrderService(t)

			err := fx.service.Delete(context.Background(), caller, 30)

			assert.ErrorIs(t, err, domainerrors.ErrNotStaff)
		})
	}

	t.Run("entity check without policy", func(t *testing.T) {
		err := inProgressOrder(1, 2).EnsureDeletableBy(entity.NewCaller(customerProfile(1)))

		assert.ErrorIs(t, err, domainerrors.ErrNotStaff)
	})
}

func TestOrderService_ListForCaller(t *testing.T) {
	t.Run("anonymous gets an empty list", func(t *testing.T) {
		fx := createTestOrderService(t)

		orders, err := fx.service.ListForCaller(context.Background(), entity.Anonymous())

		require.NoError(t, err)
		assert.NotNil(t, orders)
		assert.Empty(t, orders)
	})

	t.Run("staff sees everything", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()

		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			orderRepo := mockRepo.NewMockOrderRepository(t)
			factory.EXPECT().OrderRepo().Return(orderRepo)
			orderRepo.EXPECT().ListAll(ctx).Return([]*entity.Order{inProgressOrder(1, 2), inProgressOrder(4, 3)}, nil)
		})

		orders, err := fx.service.ListForCaller(ctx, entity.NewCaller(staffProfile(9)))

		require.NoError(t, err)
		assert.Len(t, orders, 2)
	})

	t.Run("profiled caller sees own orders", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()

		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			orderRepo := mockRepo.NewMockOrderRepository(t)
			factory.EXPECT().OrderRepo().Return(orderRepo)
			orderRepo.EXPECT().ListByParticipant(ctx, uint(2)).Return(nil, nil)
		})

		orders, err := fx.service.ListForCaller(ctx, entity.NewCaller(businessProfile(2)))

		require.NoError(t, err)
		assert.NotNil(t, orders)
	})
}

func TestOrderService_Get_NonParticipant(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(orderRepo)
		orderRepo.EXPECT().FindByID(ctx, uint(30)).Return(inProgressOrder(1, 2), nil)
	})

	_, err := fx.service.Get(ctx, entity.NewCaller(customerProfile(4)), 30)

	assert.ErrorIs(t, err, domainerrors.ErrNotOrderParticipant)
}

func TestOrderService_CountByStatus(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		factory.EXPECT().OrderRepo().Return(orderRepo)
		profileRepo.EXPECT().FindByID(ctx, uint(2)).Return(businessProfile(2), nil)
		orderRepo.EXPECT().CountByBusinessAndStatus(ctx, uint(2), entity.OrderStatusCompleted).Return(int64(4), nil)
	})

	count, err := fx.service.CountByStatus(ctx, entity.NewCaller(customerProfile(1)), 2, entity.OrderStatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestOrderService_CountByStatus_UnknownProfile(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByID(ctx, uint(404)).Return(nil, repository.ErrProfileNotFound)
	})

	_, err := fx.service.CountByStatus(ctx, entity.NewCaller(customerProfile(1)), 404, entity.OrderStatusInProgress)

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestOrderService_CountByStatus_Anonymous(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.CountByStatus(context.Background(), entity.Anonymous(), 2, entity.OrderStatusInProgress)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
