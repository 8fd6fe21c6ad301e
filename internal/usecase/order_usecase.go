package usecase

import (
	"context"

	"coderr/internal/domain/entity"
)

// OrderUsecase defines the order workflow operations.
type OrderUsecase interface {
	// Create places an order for the offer detail referenced by rawOfferDetailID.
	Create(ctx context.Context, caller entity.Caller, rawOfferDetailID string) (*entity.Order, error)
	UpdateStatus(ctx context.Context, caller entity.Caller, orderID uint, rawStatus string) (*entity.Order, error)
	Delete(ctx context.Context, caller entity.Caller, orderID uint) error
	ListForCaller(ctx context.Context, caller entity.Caller) ([]*entity.Order, error)
	Get(ctx context.Context, caller entity.Caller, orderID uint) (*entity.Order, error)
	CountByStatus(ctx context.Context, caller entity.Caller, businessProfileID uint, status entity.OrderStatus) (int64, error)
}
