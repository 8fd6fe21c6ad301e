package impl

import (
	"context"
	"testing"

	"coderr/internal/domain/entity"
	"coderr/internal/errors"
	mockRepo "coderr/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsService_GetBaseInfo(t *testing.T) {
	tests := []struct {
		name        string
		average     float64
		wantAverage float64
	}{
		{name: "rounded to one decimal", average: 4.25, wantAverage: 4.3},
		{name: "no reviews", average: 0, wantAverage: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			txManager := mockRepo.NewMockTransactionManager(t)
			srv := NewStatisticsService(txManager, newDiscardLogger())

			expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
				reviewRepo := mockRepo.NewMockReviewRepository(t)
				profileRepo := mockRepo.NewMockProfileRepository(t)
				offerRepo := mockRepo.NewMockOfferRepository(t)
				factory.EXPECT().ReviewRepo().Return(reviewRepo)
				factory.EXPECT().ProfileRepo().Return(profileRepo)
				factory.EXPECT().OfferRepo().Return(offerRepo)
				reviewRepo.EXPECT().Count(ctx).Return(int64(8), nil)
				reviewRepo.EXPECT().AverageRating(ctx).Return(tt.average, nil)
				profileRepo.EXPECT().CountByRole(ctx, entity.RoleBusiness).Return(int64(3), nil)
				offerRepo.EXPECT().Count(ctx).Return(int64(12), nil)
			})

			info, err := srv.GetBaseInfo(ctx)

			require.NoError(t, err)
			assert.Equal(t, &entity.BaseInfo{
				ReviewCount:          8,
				AverageRating:        tt.wantAverage,
				BusinessProfileCount: 3,
				OfferCount:           12,
			}, info)
		})
	}
}

func TestStatisticsService_GetBaseInfo_StorageError(t *testing.T) {
	ctx := context.Background()
	txManager := mockRepo.NewMockTransactionManager(t)
	srv := NewStatisticsService(txManager, newDiscardLogger())

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		reviewRepo := mockRepo.NewMockReviewRepository(t)
		factory.EXPECT().ReviewRepo().Return(reviewRepo)
		reviewRepo.EXPECT().Count(ctx).Return(int64(0), errors.New("timeout"))
	})

	info, err := srv.GetBaseInfo(ctx)

	assert.Nil(t, info)
	assert.Error(t, err)
}
