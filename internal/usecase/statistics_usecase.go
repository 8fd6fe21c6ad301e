package usecase

import (
	"context"

	"coderr/internal/domain/entity"
)

// StatisticsUsecase exposes the platform-wide aggregates.
type StatisticsUsecase interface {
	GetBaseInfo(ctx context.Context) (*entity.BaseInfo, error)
}
