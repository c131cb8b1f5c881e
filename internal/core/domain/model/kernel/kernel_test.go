package kernel_test

import (
	"strings"
	"testing"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("normalises whitespace", func(t *testing.T) {
		a, err := kernel.NewAddress("  12   rue Sainte-Catherine \n 33000 Bordeaux ")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "12 rue Sainte-Catherine 33000 Bordeaux", a.String())
	})

	t.Run("rejects blank", func(t *testing.T) {
		_, err := kernel.NewAddress("   ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects overlong", func(t *testing.T) {
		_, err := kernel.NewAddress(strings.Repeat("a", kernel.AddressMaxLength+1))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var a kernel.Address
		require.Error(t, a.Validate())
	})
}

func TestAddress_Equal(t *testing.T) {
	a, _ := kernel.NewAddress("4 quai Richelieu")
	b, _ := kernel.NewAddress("4  QUAI richelieu")
	c, _ := kernel.NewAddress("5 quai Richelieu")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, kernel.SameCity(" Bordeaux", "BORDEAUX"))
	assert.False(t, kernel.SameCity("Bordeaux", "Pessac"))
}

func TestNewDeliveryTime(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d, err := kernel.NewDeliveryTime("09:30")

		require.NoError(t, err)
		assert.Equal(t, 9, d.Hour())
		assert.Equal(t, 30, d.Minute())
		assert.Equal(t, "09:30", d.String())
	})

	for _, in := range []string{"9:30", "24:00", "12:60", "noon", "12:30:00"} {
		t.Run("invalid "+in, func(t *testing.T) {
			_, err := kernel.NewDeliveryTime(in)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}

	t.Run("required", func(t *testing.T) {
		_, err := kernel.NewDeliveryTime("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRoleAndPrincipal(t *testing.T) {
	assert.False(t, kernel.RoleCustomer.IsStaff())
	assert.True(t, kernel.RoleEmployee.IsStaff())
	assert.True(t, kernel.RoleAdmin.IsStaff())

	_, err := kernel.ParseRole("superuser")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	p, err := kernel.NewPrincipal(uuid.New(), kernel.RoleEmployee)
	require.NoError(t, err)
	assert.True(t, p.IsStaff())

	_, err = kernel.NewPrincipal(uuid.Nil, kernel.RoleCustomer)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
