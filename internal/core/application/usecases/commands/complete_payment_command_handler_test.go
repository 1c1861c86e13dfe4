package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCompletePaymentCommand_RequiresReference(t *testing.T) {
	_, err := commands.NewCompletePaymentCommand(kernel.NewUUID(), storeA, kernel.MustMoney("1.00"), "", "  ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCompletePaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	entries := []*cart.Entry{
		newCartEntry(t, clientID, storeA, 2, "10.00", 0),
		newCartEntry(t, clientID, storeA, 1, "5.50", 10),
	}

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	expectStoreOrder(uow, cartRepo, orderRepo, clientID, storeA, entries, nil)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewCompletePaymentCommand(clientID, storeA, kernel.MustMoney("24.95"), "", "pay_123")
	require.NoError(t, err)

	h := commands.NewCompletePaymentCommandHandler(factory, nil)
	placed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "pay_123", placed.PaymentReference())
	assert.Equal(t, order.Paid, placed.Status())
	assert.Equal(t, "24.95", placed.Total().String())
	uow.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestCompletePaymentCommandHandler_Handle_AmountMismatchLeavesCart(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	entries := []*cart.Entry{newCartEntry(t, clientID, storeA, 2, "10.00", 0)}

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		cartRepo.On("ListByClientAndStore", ctx, clientID, storeA).Return(entries, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, _ := commands.NewCompletePaymentCommand(clientID, storeA, kernel.MustMoney("19.99"), "", "pay_123")
	h := commands.NewCompletePaymentCommandHandler(factory, nil)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrPaymentAmountMismatch)

	var mismatch *commands.PaymentAmountMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "20.00", mismatch.Expected.String())

	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	cartRepo.AssertNotCalled(t, "RemoveEntries", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCompletePaymentCommandHandler_Handle_NoEntriesForStore(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CartRepository").Return(cartRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	cartRepo.On("ListByClientAndStore", ctx, clientID, storeB).Return(nil, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, _ := commands.NewCompletePaymentCommand(clientID, storeB, kernel.MustMoney("1.00"), "", "pay_1")
	h := commands.NewCompletePaymentCommandHandler(factory, nil)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCartIsEmpty)
}
