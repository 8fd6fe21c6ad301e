package entity

import (
	"strings"
	"time"
)

// GuestUsernamePrefix marks the reserved shared guest accounts.
const GuestUsernamePrefix = "guest_"

// Account is the login identity behind a profile.
type Account struct {
	ID           uint
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	IsGuest      bool
	CreatedAt    time.Time
}

// IsGuestUsername reports whether username falls in the reserved guest namespace.
func IsGuestUsername(username string) bool {
	return strings.HasPrefix(strings.ToLower(username), GuestUsernamePrefix)
}

// GuestRole maps a guest username to the role of its shared pseudo-account.
// Only guest_customer and guest_business exist.
func GuestRole(username string) (Role, bool) {
	switch strings.ToLower(username) {
	case GuestUsernamePrefix + string(RoleCustomer):
		return RoleCustomer, true
	case GuestUsernamePrefix + string(RoleBusiness):
		return RoleBusiness, true
	default:
		return "", false
	}
}
