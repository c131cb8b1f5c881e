package commands_test

import (
	"strings"
	"testing"
	"time"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	p := kernel.Principal{UserID: uuid.New(), Role: kernel.RoleCustomer}
	menuID := uuid.New()
	date := time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC)

	cmd, err := commands.NewCreateOrderCommand(p, menuID, date, "12:30", 9, " 4 quai  Richelieu ", true, false)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, p, cmd.Principal())
	assert.Equal(t, menuID, cmd.MenuID())
	assert.Equal(t, date, cmd.ServiceDate())
	assert.Equal(t, "12:30", cmd.DeliveryTime().String())
	assert.Equal(t, 9, cmd.Headcount())
	assert.Equal(t, "4 quai Richelieu", cmd.Address().String())
	assert.True(t, cmd.MaterialLoan())
	assert.False(t, cmd.MaterialReturned())
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	p := kernel.Principal{UserID: uuid.New(), Role: kernel.RoleCustomer}
	date := time.Now()

	testCases := []struct {
		name   string
		build  func() error
		target error
	}{
		{"missing principal", func() error {
			_, err := commands.NewCreateOrderCommand(kernel.Principal{}, uuid.New(), date, "12:30", 9, "a", false, false)
			return err
		}, errs.ErrValueIsRequired},
		{"missing menu", func() error {
			_, err := commands.NewCreateOrderCommand(p, uuid.Nil, date, "12:30", 9, "a", false, false)
			return err
		}, errs.ErrValueIsRequired},
		{"missing date", func() error {
			_, err := commands.NewCreateOrderCommand(p, uuid.New(), time.Time{}, "12:30", 9, "a", false, false)
			return err
		}, errs.ErrValueIsRequired},
		{"material declared returned", func() error {
			_, err := commands.NewCreateOrderCommand(p, uuid.New(), date, "12:30", 9, "a", true, true)
			return err
		}, order.ErrMaterialReturnIsStaffOnly},
		{"bad delivery time", func() error {
			_, err := commands.NewCreateOrderCommand(p, uuid.New(), date, "25:00", 9, "a", false, false)
			return err
		}, errs.ErrValueIsInvalid},
		{"zero headcount", func() error {
			_, err := commands.NewCreateOrderCommand(p, uuid.New(), date, "12:30", 0, "a", false, false)
			return err
		}, errs.ErrValueIsOutOfRange},
		{"blank address", func() error {
			_, err := commands.NewCreateOrderCommand(p, uuid.New(), date, "12:30", 9, "  ", false, false)
			return err
		}, errs.ErrValueIsRequired},
		{"overlong address", func() error {
			_, err := commands.NewCreateOrderCommand(p, uuid.New(), date, "12:30", 9, strings.Repeat("x", 300), false, false)
			return err
		}, errs.ErrValueIsOutOfRange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.build(), tc.target)
		})
	}
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	require.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
