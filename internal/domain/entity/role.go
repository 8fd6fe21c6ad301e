// Package entity contains the core business objects of the project.
package entity

// Role represents the type of a profile on the marketplace.
type Role string

const (
	// RoleCustomer buys offers and writes reviews.
	RoleCustomer Role = "customer"
	// RoleBusiness sells offers and fulfils orders.
	RoleBusiness Role = "business"
	// RoleStaff moderates the platform.
	RoleStaff Role = "staff"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleBusiness, RoleStaff:
		return true
	default:
		return false
	}
}

// IsRegistrable reports whether a role can be chosen at self-registration.
// Staff profiles are provisioned out of band.
func (r Role) IsRegistrable() bool {
	return r == RoleCustomer || r == RoleBusiness
}
