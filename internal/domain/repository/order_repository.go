package repository

import (
	"context"
	"time"

	"coderr/internal/domain/entity"
	"coderr/internal/errors"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderStatusConflict means the stored status no longer matched the expected one.
	ErrOrderStatusConflict = errors.New("order status changed concurrently")
)

// OrderRepository persists orders.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uint) (*entity.Order, error)
	// UpdateStatus is a compare-and-write: it only succeeds while the stored status equals from.
	UpdateStatus(ctx context.Context, id uint, from, to entity.OrderStatus, updatedAt time.Time) error
	Delete(ctx context.Context, id uint) error
	ListAll(ctx context.Context) ([]*entity.Order, error)
	// ListByParticipant returns orders where the profile is the customer or the business.
	ListByParticipant(ctx context.Context, profileID uint) ([]*entity.Order, error)
	CountByBusinessAndStatus(ctx context.Context, businessProfileID uint, status entity.OrderStatus) (int64, error)
}
