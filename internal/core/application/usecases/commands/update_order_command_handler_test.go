package commands_test

import (
	"errors"
	"testing"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderCommandHandler_Handle_OwnerEditsPendingOrder(t *testing.T) {
	ctx := t.Context()
	owner := testCustomer(t)
	o := testOrder(t, owner, order.Pending, false)
	headcount := 5

	cmd, err := commands.NewUpdateOrderCommand(customerPrincipal(owner), o.ID(), commands.UpdateOrderPatch{Headcount: &headcount})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetOwned", ctx, o.ID(), owner.ID).Return(o, nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, owner.ID).Return(owner, nil).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpdateOrderCommandHandler(factory, testEngine())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 5, o.Headcount())
	assert.True(t, o.MenuPrice().Equal(decimal.NewFromInt(100)))
	assert.Empty(t, o.Transitions())
	orderRepo.AssertExpectations(t)
	customerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_CustomerCannotChangeStatus(t *testing.T) {
	owner := testCustomer(t)
	status := "accepted"
	cmd, err := commands.NewUpdateOrderCommand(customerPrincipal(owner), testOrder(t, owner, order.Pending, false).ID(),
		commands.UpdateOrderPatch{Status: &status})
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewUpdateOrderCommandHandler(factory, testEngine())
	err = h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrAccessIsDenied)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateOrderCommandHandler_Handle_CustomerCannotDeclareMaterialReturned(t *testing.T) {
	owner := testCustomer(t)
	returned := true
	cmd, err := commands.NewUpdateOrderCommand(customerPrincipal(owner), testOrder(t, owner, order.Pending, true).ID(),
		commands.UpdateOrderPatch{MaterialReturned: &returned})
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewUpdateOrderCommandHandler(factory, testEngine())
	err = h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrAccessIsDenied)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateOrderCommandHandler_Handle_StaffCannotRecordReturnBeforeDelivery(t *testing.T) {
	ctx := t.Context()
	o := testOrder(t, testCustomer(t), order.Accepted, true)
	returned := true
	cmd, err := commands.NewUpdateOrderCommand(staffPrincipal(), o.ID(), commands.UpdateOrderPatch{MaterialReturned: &returned})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, testEngine())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, order.ErrMaterialNotDelivered)
	assert.False(t, o.MaterialReturned())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_OwnerCannotEditAcceptedOrder(t *testing.T) {
	ctx := t.Context()
	owner := testCustomer(t)
	o := testOrder(t, owner, order.Accepted, false)
	headcount := 12
	cmd, err := commands.NewUpdateOrderCommand(customerPrincipal(owner), o.ID(), commands.UpdateOrderPatch{Headcount: &headcount})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("CustomerRepository").Return(customerRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("GetOwned", ctx, o.ID(), owner.ID).Return(o, nil).Once()
	customerRepo.On("Get", ctx, owner.ID).Return(owner, nil).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, testEngine())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrTransitionIsNotAllowed)
	assert.Equal(t, 9, o.Headcount())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_StaffAdvancesStatus(t *testing.T) {
	ctx := t.Context()
	owner := testCustomer(t)
	staff := staffPrincipal()
	o := testOrder(t, owner, order.Pending, false)
	status := "accepted"
	cmd, err := commands.NewUpdateOrderCommand(staff, o.ID(), commands.UpdateOrderPatch{Status: &status})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Update", ctx, mock.MatchedBy(func(updated *order.Order) bool {
			ts := updated.Transitions()
			return len(ts) == 1 && *ts[0].From == order.Pending && ts[0].To == order.Accepted && ts[0].ActorID == staff.UserID
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpdateOrderCommandHandler(factory, testEngine())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Accepted, o.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_StaffRecordsReturnAndCompletes(t *testing.T) {
	ctx := t.Context()
	owner := testCustomer(t)
	o := testOrder(t, owner, order.InDelivery, true)
	status := "completed"
	returned := true
	cmd, err := commands.NewUpdateOrderCommand(staffPrincipal(), o.ID(),
		commands.UpdateOrderPatch{Status: &status, MaterialReturned: &returned})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	orderRepo.On("Update", ctx, o).Return(nil).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, testEngine())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, o.Status())
	assert.True(t, o.MaterialReturned())
	uow.AssertNotCalled(t, "CustomerRepository")
}

func TestUpdateOrderCommandHandler_Handle_LoanedMaterialBlocksCompletion(t *testing.T) {
	ctx := t.Context()
	o := testOrder(t, testCustomer(t), order.InDelivery, true)
	status := "completed"
	cmd, err := commands.NewUpdateOrderCommand(staffPrincipal(), o.ID(), commands.UpdateOrderPatch{Status: &status})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, testEngine())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrTransitionIsNotAllowed)
	require.ErrorIs(t, err, order.ErrMaterialNotReturned)
	assert.Equal(t, order.InDelivery, o.Status())
}

func TestUpdateOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	owner := testCustomer(t)
	headcount := 10
	o := testOrder(t, owner, order.Pending, false)
	cmd, err := commands.NewUpdateOrderCommand(customerPrincipal(owner), o.ID(), commands.UpdateOrderPatch{Headcount: &headcount})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("GetOwned", ctx, o.ID(), owner.ID).Return(nil, errs.NewObjectNotFoundError("order", o.ID())).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, testEngine())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateOrderCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	o := testOrder(t, testCustomer(t), order.Pending, false)
	status := "accepted"
	cmd, err := commands.NewUpdateOrderCommand(staffPrincipal(), o.ID(), commands.UpdateOrderPatch{Status: &status})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	orderRepo.On("Update", ctx, o).Return(errors.New("update error")).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, testEngine())
	err = h.Handle(ctx, cmd)

	require.EqualError(t, err, "update error")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
