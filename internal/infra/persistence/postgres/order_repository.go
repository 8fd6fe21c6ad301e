package postgres

import (
	"context"
	"time"

	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/repository"
	"coderr/internal/errors"
	"coderr/internal/infra/persistence/model"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrOfferDetailNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uint) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).First(&orderM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// UpdateStatus writes to only while the stored status still equals from.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uint, from, to entity.OrderStatus, updatedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{
			"status":     string(to),
			"updated_at": updatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderStatusConflict
	}

	return nil
}

func (repo *orderRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.OrderModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func (repo *orderRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	return repo.list(repo.db.WithContext(ctx))
}

func (repo *orderRepository) ListByParticipant(ctx context.Context, profileID uint) ([]*entity.Order, error) {
	return repo.list(repo.db.WithContext(ctx).
		Where("customer_profile_id = ? OR business_profile_id = ?", profileID, profileID))
}

func (repo *orderRepository) list(query *gorm.DB) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := query.Order("created_at DESC, id DESC").Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

func (repo *orderRepository) CountByBusinessAndStatus(ctx context.Context, businessProfileID uint, status entity.OrderStatus) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("business_profile_id = ? AND status = ?", businessProfileID, string(status)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	return &entity.Order{
		ID:                data.ID,
		CustomerProfileID: data.CustomerProfileID,
		BusinessProfileID: data.BusinessProfileID,
		OfferDetailID:     data.OfferDetailID,
		Snapshot: entity.OrderSnapshot{
			Title:              data.Title,
			Revisions:          data.Revisions,
			DeliveryTimeInDays: data.DeliveryTimeInDays,
			Price:              data.Price,
			Features:           featuresOrEmpty(data.Features),
			OfferType:          entity.OfferType(data.OfferType),
		},
		Status:    entity.OrderStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:                 data.ID,
		CustomerProfileID:  data.CustomerProfileID,
		BusinessProfileID:  data.BusinessProfileID,
		OfferDetailID:      data.OfferDetailID,
		Title:              data.Snapshot.Title,
		Revisions:          data.Snapshot.Revisions,
		DeliveryTimeInDays: data.Snapshot.DeliveryTimeInDays,
		Price:              data.Snapshot.Price,
		Features:           pq.StringArray(featuresOrEmpty(data.Snapshot.Features)),
		OfferType:          string(data.Snapshot.OfferType),
		Status:             string(data.Status),
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
