package entity

import (
	"testing"

	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_ApplyWorkingHours(t *testing.T) {
	profile := &Profile{ID: 1, Role: RoleBusiness}

	require.NoError(t, profile.Apply(ProfilePatch{WorkingHours: ptr("9-17"), Location: ptr("Berlin")}))
	assert.Equal(t, "9-17", profile.WorkingHours)
	assert.Equal(t, "Berlin", profile.Location)

	err := profile.Apply(ProfilePatch{WorkingHours: ptr("nine to five")})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidWorkingHours))
	assert.Equal(t, "9-17", profile.WorkingHours)
}

func TestGuestRole(t *testing.T) {
	role, ok := GuestRole("guest_customer")
	assert.True(t, ok)
	assert.Equal(t, RoleCustomer, role)

	role, ok = GuestRole("GUEST_BUSINESS")
	assert.True(t, ok)
	assert.Equal(t, RoleBusiness, role)

	_, ok = GuestRole("guest_staff")
	assert.False(t, ok)
	assert.True(t, IsGuestUsername("guest_staff"))
	assert.False(t, IsGuestUsername("alice"))
}

func TestCaller(t *testing.T) {
	anonymous := Anonymous()
	assert.False(t, anonymous.IsAuthenticated())
	assert.Equal(t, Role(""), anonymous.Role())
	assert.Zero(t, anonymous.ProfileID())
	assert.False(t, anonymous.IsStaff())

	staff := NewCaller(&Profile{ID: 3, Role: RoleStaff})
	assert.True(t, staff.IsAuthenticated())
	assert.True(t, staff.IsStaff())
	assert.Equal(t, uint(3), staff.ProfileID())
}
