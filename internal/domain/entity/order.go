package entity

import (
	"time"

	domainerrors "coderr/internal/domain/errors"

	"github.com/shopspring/decimal"
)

// OrderStatus is the workflow state of an order.
type OrderStatus string

const (
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no transition leaves s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// ParseOrderStatus validates a raw status value.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(raw)
	if !s.IsValid() {
		return "", domainerrors.ErrInvalidOrderStatus.WithDetails(raw)
	}

	return s, nil
}

// OrderSnapshot is the value copy of an offer detail taken when the order is placed.
type OrderSnapshot struct {
	Title              string
	Revisions          int
	DeliveryTimeInDays int
	Price              decimal.Decimal
	Features           []string
	OfferType          OfferType
}

// Order is a purchase of one offer detail. It keeps its snapshot even after the detail is deleted.
type Order struct {
	ID                uint
	CustomerProfileID uint
	BusinessProfileID uint
	OfferDetailID     *uint
	Snapshot          OrderSnapshot
	Status            OrderStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// PlaceOrder creates an in-progress order for a customer. The business side is
// taken from the detail's offer owner.
func PlaceOrder(customer *Profile, offer *Offer, detail *OfferDetail) (*Order, error) {
	if !customer.IsCustomer() {
		return nil, domainerrors.ErrNotCustomerUser
	}

	detailID := detail.ID

	return &Order{
		CustomerProfileID: customer.ID,
		BusinessProfileID: offer.OwnerProfileID,
		OfferDetailID:     &detailID,
		Snapshot: OrderSnapshot{
			Title:              detail.Title,
			Revisions:          detail.Revisions,
			DeliveryTimeInDays: detail.DeliveryTimeInDays,
			Price:              detail.Price,
			Features:           append([]string{}, detail.Features...),
			OfferType:          detail.OfferType,
		},
		Status: OrderStatusInProgress,
	}, nil
}

// IsParticipant reports whether profileID is the customer or the business of the order.
func (o *Order) IsParticipant(profileID uint) bool {
	return profileID != 0 && (o.CustomerProfileID == profileID || o.BusinessProfileID == profileID)
}

// TransitionTo moves the order to next on behalf of caller and reports whether the status changed.
// Only the order's business profile may transition it.
func (o *Order) TransitionTo(caller Caller, next OrderStatus) (bool, error) {
	if !next.IsValid() {
		return false, domainerrors.ErrInvalidOrderStatus.WithDetails(string(next))
	}
	if !caller.IsBusiness() || caller.ProfileID() != o.BusinessProfileID {
		return false, domainerrors.ErrNotOrderBusiness
	}
	if next == o.Status {
		return false, nil
	}
	if o.Status.IsTerminal() || next == OrderStatusInProgress {
		return false, domainerrors.ErrOrderStatusTerminal.WithDetails(string(o.Status) + " -> " + string(next))
	}

	o.Status = next

	return true, nil
}

// EnsureDeletableBy allows only staff to delete orders.
func (o *Order) EnsureDeletableBy(caller Caller) error {
	if !caller.IsStaff() {
		return domainerrors.ErrNotStaff
	}

	return nil
}

// EnsureVisibleTo allows the two parties and staff to read the order.
func (o *Order) EnsureVisibleTo(caller Caller) error {
	if caller.IsStaff() || o.IsParticipant(caller.ProfileID()) {
		return nil
	}

	return domainerrors.ErrNotOrderParticipant
}
