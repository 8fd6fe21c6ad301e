package entity

import (
	"regexp"
	"time"

	domainerrors "coderr/internal/domain/errors"
)

var workingHoursPattern = regexp.MustCompile(`^\d{1,2}-\d{1,2}$`)

// Profile is the marketplace persona of an account. Offers, orders and reviews
// reference profiles, never accounts.
type Profile struct {
	ID           uint
	UserID       uint
	Username     string
	FirstName    string
	LastName     string
	Email        string
	Role         Role
	File         string
	Location     string
	Tel          string
	Description  string
	WorkingHours string
	CreatedAt    time.Time
}

// ProfilePatch carries the optional fields of a profile update.
type ProfilePatch struct {
	FirstName    *string
	LastName     *string
	Email        *string
	File         *string
	Location     *string
	Tel          *string
	Description  *string
	WorkingHours *string
}

func (p *Profile) IsCustomer() bool { return p != nil && p.Role == RoleCustomer }
func (p *Profile) IsBusiness() bool { return p != nil && p.Role == RoleBusiness }
func (p *Profile) IsStaff() bool    { return p != nil && p.Role == RoleStaff }

// Apply validates and applies a patch in place.
func (p *Profile) Apply(patch ProfilePatch) error {
	if patch.WorkingHours != nil && *patch.WorkingHours != "" && !workingHoursPattern.MatchString(*patch.WorkingHours) {
		return domainerrors.ErrInvalidWorkingHours.WithDetails(*patch.WorkingHours)
	}

	assign(&p.FirstName, patch.FirstName)
	assign(&p.LastName, patch.LastName)
	assign(&p.Email, patch.Email)
	assign(&p.File, patch.File)
	assign(&p.Location, patch.Location)
	assign(&p.Tel, patch.Tel)
	assign(&p.Description, patch.Description)
	assign(&p.WorkingHours, patch.WorkingHours)

	return nil
}

func assign(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
