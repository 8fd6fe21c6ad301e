package impl

import (
	"context"
	"log/slog"
	"math"

	"coderr/internal/domain/entity"
	"coderr/internal/domain/repository"
	"coderr/internal/errors"
	"coderr/internal/usecase"
)

// statisticsService implements the StatisticsUsecase interface.
type statisticsService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewStatisticsService is the constructor for statisticsService.
func NewStatisticsService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.StatisticsUsecase {
	return &statisticsService{
		txManager: txManager,
		logger:    logger,
	}
}

// GetBaseInfo collects the landing page counters. The average rating is
// rounded to one decimal and zero without reviews.
func (srv *statisticsService) GetBaseInfo(ctx context.Context) (*entity.BaseInfo, error) {
	info := &entity.BaseInfo{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error

		reviewRepo := repoFactory.ReviewRepo()
		if info.ReviewCount, err = reviewRepo.Count(ctx); err != nil {
			return errors.Wrap(err, "failed to count reviews")
		}
		average, err := reviewRepo.AverageRating(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to average ratings")
		}
		info.AverageRating = math.Round(average*10) / 10

		if info.BusinessProfileCount, err = repoFactory.ProfileRepo().CountByRole(ctx, entity.RoleBusiness); err != nil {
			return errors.Wrap(err, "failed to count business profiles")
		}
		if info.OfferCount, err = repoFactory.OfferRepo().Count(ctx); err != nil {
			return errors.Wrap(err, "failed to count offers")
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to collect base info", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get base info")
	}

	return info, nil
}
