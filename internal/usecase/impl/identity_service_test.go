package impl

import (
	"context"
	"testing"

	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/repository"
	"coderr/internal/errors"
	mockRepo "coderr/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityService_Resolve_NilUserIsAnonymous(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	srv := NewIdentityService(txManager, newDiscardLogger())

	caller, err := srv.Resolve(context.Background(), nil)

	require.NoError(t, err)
	assert.False(t, caller.IsAuthenticated())
}

func TestIdentityService_Resolve_Profile(t *testing.T) {
	ctx := context.Background()
	txManager := mockRepo.NewMockTransactionManager(t)
	srv := NewIdentityService(txManager, newDiscardLogger())
	profile := businessProfile(3)

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByUserID(ctx, uint(103)).Return(profile, nil)
	})

	caller, err := srv.Resolve(ctx, ptr(uint(103)))

	require.NoError(t, err)
	assert.True(t, caller.IsAuthenticated())
	assert.Equal(t, entity.RoleBusiness, caller.Role())
	assert.Equal(t, uint(3), caller.ProfileID())
}

func TestIdentityService_Resolve_MissingProfileFailsClosed(t *testing.T) {
	ctx := context.Background()
	txManager := mockRepo.NewMockTransactionManager(t)
	srv := NewIdentityService(txManager, newDiscardLogger())

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByUserID(ctx, uint(42)).Return(nil, repository.ErrProfileNotFound)
	})

	caller, err := srv.Resolve(ctx, ptr(uint(42)))

	require.NoError(t, err)
	assert.False(t, caller.IsAuthenticated())
}

func TestIdentityService_Resolve_StorageFailureIsFatal(t *testing.T) {
	ctx := context.Background()
	txManager := mockRepo.NewMockTransactionManager(t)
	srv := NewIdentityService(txManager, newDiscardLogger())

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByUserID(ctx, uint(42)).Return(nil, errors.New("connection reset"))
	})

	caller, err := srv.Resolve(ctx, ptr(uint(42)))

	require.Error(t, err)
	assert.False(t, caller.IsAuthenticated())
	assert.Equal(t, domainerrors.KindFatal, domainerrors.KindOf(err))
}
