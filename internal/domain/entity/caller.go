package entity

// Caller is the resolved identity of whoever issued a request.
// A nil Profile means anonymous.
type Caller struct {
	Profile *Profile
}

// Anonymous returns a caller without identity.
func Anonymous() Caller {
	return Caller{}
}

// NewCaller wraps a resolved profile.
func NewCaller(profile *Profile) Caller {
	return Caller{Profile: profile}
}

func (c Caller) IsAuthenticated() bool {
	return c.Profile != nil
}

// Role is empty for anonymous callers.
func (c Caller) Role() Role {
	if c.Profile == nil {
		return ""
	}

	return c.Profile.Role
}

// ProfileID is zero for anonymous callers.
func (c Caller) ProfileID() uint {
	if c.Profile == nil {
		return 0
	}

	return c.Profile.ID
}

func (c Caller) IsCustomer() bool { return c.Profile.IsCustomer() }
func (c Caller) IsBusiness() bool { return c.Profile.IsBusiness() }
func (c Caller) IsStaff() bool    { return c.Profile.IsStaff() }
