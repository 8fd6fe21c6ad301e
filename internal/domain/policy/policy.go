// Package policy holds the permission table consulted before every use case runs.
package policy

import (
	"slices"

	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
)

type Resource string

const (
	ResourceOffer       Resource = "offer"
	ResourceOfferDetail Resource = "offer_detail"
	ResourceOrder       Resource = "order"
	ResourceOrderCount  Resource = "order_count"
	ResourceReview      Resource = "review"
	ResourceProfile     Resource = "profile"
	ResourceStatistics  Resource = "statistics"
)

type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Facts describes the state of the target resource. A nil *Facts means no
// instance is involved (listing or creating), so ownership predicates are skipped.
type Facts struct {
	// OwnerProfileID is the offer owner, the review author or the profile itself.
	OwnerProfileID    uint
	CustomerProfileID uint
	BusinessProfileID uint
}

// Key identifies one row of the permission table.
type Key struct {
	Resource Resource
	Action   Action
}

// Rule is one row of the permission table.
type Rule struct {
	Public     bool
	Roles      []entity.Role
	RoleDenial *domainerrors.BaseError
	Predicate  func(caller entity.Caller, facts Facts) bool
	Denial     *domainerrors.BaseError
}

// Authorizer decides whether a caller may perform an action on a resource.
type Authorizer interface {
	Authorize(caller entity.Caller, resource Resource, action Action, facts *Facts) error
}

type tableAuthorizer struct {
	rules map[Key]Rule
}

// NewAuthorizer returns the authorizer backed by the marketplace permission table.
func NewAuthorizer() Authorizer {
	return NewTableAuthorizer(Table())
}

// NewTableAuthorizer builds an authorizer over an arbitrary table.
func NewTableAuthorizer(rules map[Key]Rule) Authorizer {
	return &tableAuthorizer{rules: rules}
}

func (a *tableAuthorizer) Authorize(caller entity.Caller, resource Resource, action Action, facts *Facts) error {
	rule, ok := a.rules[Key{Resource: resource, Action: action}]
	if !ok {
		return domainerrors.ErrUnknownPermission.WithDetails(string(resource) + ":" + string(action))
	}
	if rule.Public {
		return nil
	}
	if !caller.IsAuthenticated() {
		return domainerrors.ErrUnauthorized
	}
	if len(rule.Roles) > 0 && !slices.Contains(rule.Roles, caller.Role()) {
		return deny(rule.RoleDenial)
	}
	if rule.Predicate != nil && facts != nil && !rule.Predicate(caller, *facts) {
		return deny(rule.Denial)
	}

	return nil
}

func deny(reason *domainerrors.BaseError) error {
	if reason == nil {
		return domainerrors.ErrForbidden
	}

	return reason
}

func isOwner(caller entity.Caller, facts Facts) bool {
	return caller.ProfileID() == facts.OwnerProfileID
}

func isOrderBusiness(caller entity.Caller, facts Facts) bool {
	return caller.ProfileID() == facts.BusinessProfileID
}

func isOrderParticipantOrStaff(caller entity.Caller, facts Facts) bool {
	if caller.IsStaff() {
		return true
	}
	id := caller.ProfileID()

	return id == facts.CustomerProfileID || id == facts.BusinessProfileID
}

// Table returns the marketplace permission table.
func Table() map[Key]Rule {
	business := []entity.Role{entity.RoleBusiness}
	customer := []entity.Role{entity.RoleCustomer}
	staff := []entity.Role{entity.RoleStaff}

	return map[Key]Rule{
		{ResourceOffer, ActionRead}:   {Public: true},
		{ResourceOffer, ActionCreate}: {Roles: business, RoleDenial: domainerrors.ErrNotBusinessUser},
		{ResourceOffer, ActionUpdate}: {
			Roles: business, RoleDenial: domainerrors.ErrNotBusinessUser,
			Predicate: isOwner, Denial: domainerrors.ErrNotOfferOwner,
		},
		{ResourceOffer, ActionDelete}: {
			Roles: business, RoleDenial: domainerrors.ErrNotBusinessUser,
			Predicate: isOwner, Denial: domainerrors.ErrNotOfferOwner,
		},

		{ResourceOfferDetail, ActionRead}: {Public: true},

		{ResourceOrder, ActionRead}: {
			Predicate: isOrderParticipantOrStaff, Denial: domainerrors.ErrNotOrderParticipant,
		},
		{ResourceOrder, ActionCreate}: {Roles: customer, RoleDenial: domainerrors.ErrNotCustomerUser},
		{ResourceOrder, ActionUpdate}: {
			Roles: business, RoleDenial: domainerrors.ErrNotOrderBusiness,
			Predicate: isOrderBusiness, Denial: domainerrors.ErrNotOrderBusiness,
		},
		{ResourceOrder, ActionDelete}: {Roles: staff, RoleDenial: domainerrors.ErrNotStaff},

		{ResourceOrderCount, ActionRead}: {},

		{ResourceReview, ActionRead}:   {},
		{ResourceReview, ActionCreate}: {Roles: customer, RoleDenial: domainerrors.ErrNotCustomerUser},
		{ResourceReview, ActionUpdate}: {Predicate: isOwner, Denial: domainerrors.ErrNotReviewer},
		{ResourceReview, ActionDelete}: {Predicate: isOwner, Denial: domainerrors.ErrNotReviewer},

		{ResourceProfile, ActionRead}:   {},
		{ResourceProfile, ActionUpdate}: {Predicate: isOwner, Denial: domainerrors.ErrNotProfileOwner},

		{ResourceStatistics, ActionRead}: {Public: true},
	}
}
