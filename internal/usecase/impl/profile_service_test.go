package impl

import (
	"context"
	"testing"

	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/policy"
	"coderr/internal/domain/repository"
	mockRepo "coderr/internal/mocks/repository"
	"coderr/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	return profileServiceFixtures{
		service:   NewProfileService(txManager, policy.NewAuthorizer(), newDiscardLogger()),
		txManager: txManager,
	}
}

func TestProfileService_Get_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	expected := businessProfile(2)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByID(ctx, uint(2)).Return(expected, nil)
	})

	profile, err := fx.service.Get(ctx, entity.NewCaller(customerProfile(1)), 2)

	require.NoError(t, err)
	assert.Equal(t, expected, profile)
}

func TestProfileService_Get_Anonymous(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.Get(context.Background(), entity.Anonymous(), 2)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestProfileService_Get_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByID(ctx, uint(99)).Return(nil, repository.ErrProfileNotFound)
	})

	_, err := fx.service.Get(ctx, entity.NewCaller(customerProfile(1)), 99)

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestProfileService_Update_Owner(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	owner := businessProfile(2)
	stored := businessProfile(2)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByID(ctx, uint(2)).Return(stored, nil)
		profileRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
	})

	patch := entity.ProfilePatch{Location: ptr("Berlin"), WorkingHours: ptr("9-17")}
	profile, err := fx.service.Update(ctx, entity.NewCaller(owner), 2, patch)

	require.NoError(t, err)
	assert.Equal(t, "Berlin", profile.Location)
	assert.Equal(t, "9-17", profile.WorkingHours)
}

func TestProfileService_Update_NotOwner(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByID(ctx, uint(2)).Return(businessProfile(2), nil)
	})

	_, err := fx.service.Update(ctx, entity.NewCaller(customerProfile(1)), 2, entity.ProfilePatch{Tel: ptr("123")})

	assert.ErrorIs(t, err, domainerrors.ErrNotProfileOwner)
	assert.Equal(t, domainerrors.KindForbidden, domainerrors.KindOf(err))
}

func TestProfileService_Update_InvalidWorkingHours(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByID(ctx, uint(2)).Return(businessProfile(2), nil)
	})

	_, err := fx.service.Update(ctx, entity.NewCaller(businessProfile(2)), 2, entity.ProfilePatch{WorkingHours: ptr("all day")})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidWorkingHours)
}

func TestProfileService_ListByRole(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	expected := []*entity.Profile{customerProfile(1), customerProfile(4)}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().ListByRole(ctx, entity.RoleCustomer).Return(expected, nil)
	})

	profiles, err := fx.service.ListByRole(ctx, entity.NewCaller(businessProfile(2)), entity.RoleCustomer)

	require.NoError(t, err)
	assert.Len(t, profiles, 2)
}

func TestProfileService_ListByRole_StaffIsNotListable(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.ListByRole(context.Background(), entity.NewCaller(businessProfile(2)), entity.RoleStaff)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
}
