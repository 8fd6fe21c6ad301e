package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "coderr/internal/delivery/context"
	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/policy"
	"coderr/internal/domain/repository"
	"coderr/internal/domain/service"
	"coderr/internal/errors"
	"coderr/internal/usecase"

	"go.uber.org/fx"
)

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	Authorizer policy.Authorizer
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager  repository.TransactionManager
	authorizer policy.Authorizer
	publisher  service.EventPublisher
	logger     *slog.Logger
	now        func() time.Time
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:  params.TxManager,
		authorizer: params.Authorizer,
		publisher:  params.Publisher,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create places an in-progress order for the calling customer, snapshotting the offer detail.
func (srv *orderService) Create(ctx context.Context, caller entity.Caller, rawOfferDetailID string) (*entity.Order, error) {
	if err := srv.authorizer.Authorize(caller, policy.ResourceOrder, policy.ActionCreate, nil); err != nil {
		return nil, err
	}

	if strings.TrimSpace(rawOfferDetailID) == "" {
		return nil, domainerrors.ErrOfferDetailIDRequired
	}
	detailID, err := parseID(rawOfferDetailID)
	if err != nil {
		return nil, err
	}

	var order *entity.Order
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()

		detail, err := findOfferDetail(ctx, offerRepo, detailID)
		if err != nil {
			return err
		}
		offer, err := findOffer(ctx, offerRepo, detail.OfferID)
		if err != nil {
			return err
		}

		placed, err := entity.PlaceOrder(caller.Profile, offer, detail)
		if err != nil {
			return err
		}
		if err := repoFactory.OrderRepo().Create(ctx, placed); err != nil {
			return errors.Wrap(err, "failed to create order")
		}
		order = placed

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute order creation transaction")
	}

	srv.log(ctx).Info("Order placed",
		slog.Any("orderID", order.ID),
		slog.Any("customerProfileID", order.CustomerProfileID),
		slog.Any("businessProfileID", order.BusinessProfileID),
	)
	srv.publish(ctx, service.OrderEventPlaced, order, "")

	return order, nil
}

// UpdateStatus moves the order along its workflow on behalf of its business profile.
// Resubmitting the current status is a no-op.
func (srv *orderService) UpdateStatus(ctx context.Context, caller entity.Caller, orderID uint, rawStatus string) (*entity.Order, error) {
	if err := srv.authorizer.Authorize(caller, policy.ResourceOrder, policy.ActionUpdate, nil); err != nil {
		return nil, err
	}

	next, err := entity.ParseOrderStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	var (
		order    *entity.Order
		previous entity.OrderStatus
		changed  bool
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		found, err := findOrder(ctx, orderRepo, orderID)
		if err != nil {
			return err
		}

		facts := &policy.Facts{
			CustomerProfileID: found.CustomerProfileID,
			BusinessProfileID: found.BusinessProfileID,
		}
		if err := srv.authorizer.Authorize(caller, policy.ResourceOrder, policy.ActionUpdate, facts); err != nil {
			return err
		}

		previous = found.Status
		changed, err = found.TransitionTo(caller, next)
		if err != nil {
			return err
		}
		if changed {
			updatedAt := srv.now().UTC()
			if err := orderRepo.UpdateStatus(ctx, found.ID, previous, next, updatedAt); err != nil {
				return srv.statusConflict(ctx, orderRepo, found.ID, next, err)
			}
			found.UpdatedAt = updatedAt
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute order status transaction")
	}

	if changed {
		srv.log(ctx).Info("Order status changed",
			slog.Any("orderID", order.ID),
			slog.Any("from", previous),
			slog.Any("to", order.Status),
		)
		srv.publish(ctx, service.OrderEventStatusChanged, order, previous)
	}

	return order, nil
}

// statusConflict explains a failed compare-and-write by re-reading the order.
func (srv *orderService) statusConflict(
	ctx context.Context,
	orderRepo repository.OrderRepository,
	orderID uint,
	next entity.OrderStatus,
	cause error,
) error {
	if !errors.Is(cause, repository.ErrOrderStatusConflict) {
		return errors.Wrap(cause, "failed to update order status")
	}

	current, err := findOrder(ctx, orderRepo, orderID)
	if err != nil {
		return err
	}

	return domainerrors.ErrOrderStatusTerminal.WithDetails(string(current.Status) + " -> " + string(next))
}

// Delete removes an order. Staff only.
func (srv *orderService) Delete(ctx context.Context, caller entity.Caller, orderID uint) error {
	if err := srv.authorizer.Authorize(caller, policy.ResourceOrder, policy.ActionDelete, nil); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := findOrder(ctx, orderRepo, orderID)
		if err != nil {
			return err
		}
		if err := order.EnsureDeletableBy(caller); err != nil {
			return err
		}

		return errors.Wrap(orderRepo.Delete(ctx, order.ID), "failed to delete order")
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute order deletion transaction")
	}

	srv.log(ctx).Info("Order deleted", slog.Any("orderID", orderID), slog.Any("staffProfileID", caller.ProfileID()))

	return nil
}

// ListForCaller returns every order for staff, the caller's own orders for
// profiled callers and nothing for anonymous callers.
func (srv *orderService) ListForCaller(ctx context.Context, caller entity.Caller) ([]*entity.Order, error) {
	if !caller.IsAuthenticated() {
		return []*entity.Order{}, nil
	}
	if err := srv.authorizer.Authorize(caller, policy.ResourceOrder, policy.ActionRead, nil); err != nil {
		return nil, err
	}

	var orders []*entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		if caller.IsStaff() {
			orders, err = repoFactory.OrderRepo().ListAll(ctx)
		} else {
			orders, err = repoFactory.OrderRepo().ListByParticipant(ctx, caller.ProfileID())
		}

		return errors.Wrap(err, "failed to list orders")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute order listing transaction")
	}

	if orders == nil {
		orders = []*entity.Order{}
	}

	return orders, nil
}

// Get returns an order to one of its parties or to staff.
func (srv *orderService) Get(ctx context.Context, caller entity.Caller, orderID uint) (*entity.Order, error) {
	if err := srv.authorizer.Authorize(caller, policy.ResourceOrder, policy.ActionRead, nil); err != nil {
		return nil, err
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findOrder(ctx, repoFactory.OrderRepo(), orderID)
		if err != nil {
			return err
		}

		facts := &policy.Facts{
			CustomerProfileID: found.CustomerProfileID,
			BusinessProfileID: found.BusinessProfileID,
		}
		if err := srv.authorizer.Authorize(caller, policy.ResourceOrder, policy.ActionRead, facts); err != nil {
			return err
		}
		if err := found.EnsureVisibleTo(caller); err != nil {
			return err
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

// CountByStatus counts the orders of a business profile in the given status.
func (srv *orderService) CountByStatus(
	ctx context.Context,
	caller entity.Caller,
	businessProfileID uint,
	status entity.OrderStatus,
) (int64, error) {
	if err := srv.authorizer.Authorize(caller, policy.ResourceOrderCount, policy.ActionRead, nil); err != nil {
		return 0, err
	}
	if !status.IsValid() {
		return 0, domainerrors.ErrInvalidOrderStatus.WithDetails(string(status))
	}

	var count int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := findProfile(ctx, repoFactory.ProfileRepo(), businessProfileID); err != nil {
			return err
		}

		found, err := repoFactory.OrderRepo().CountByBusinessAndStatus(ctx, businessProfileID, status)
		if err != nil {
			return errors.Wrap(err, "failed to count orders")
		}
		count = found

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to execute order count transaction")
	}

	return count, nil
}

// publish emits an order event after commit. Failures are logged and never undo the order.
func (srv *orderService) publish(ctx context.Context, eventType string, order *entity.Order, previous entity.OrderStatus) {
	event := &service.OrderEvent{
		RequestID:         deliverycontext.GetRequestIDFromContext(ctx),
		Type:              eventType,
		OrderID:           order.ID,
		CustomerProfileID: order.CustomerProfileID,
		BusinessProfileID: order.BusinessProfileID,
		Status:            string(order.Status),
		PreviousStatus:    string(previous),
		OccurredAt:        srv.now().UTC(),
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order event",
			slog.String("type", eventType),
			slog.Any("orderID", order.ID),
			slog.String("requestID", event.RequestID),
			slog.Any("error", err),
		)
	}
}

func findOrder(ctx context.Context, orderRepo repository.OrderRepository, orderID uint) (*entity.Order, error) {
	order, err := orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}
