package commands_test

import (
	"testing"

	"deliverya/internal/core/application/usecases/commands"
	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/core/domain/model/order"
	"deliverya/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	clientID := kernel.NewUUID()

	pending := fixturePendingOrder(t, orderID, clientID, order.Cash)

	cmd, err := commands.NewCancelOrderCommand(orderID, clientID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockOrderEventPublisher)
	notifier := new(MockOrderChangeNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(pending, nil).Once(),
		orderRepo.On("Update", ctx, pending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("PublishOrderChanged", ctx, pending).Return(nil).Once()
	notifier.On("NotifyOrderChanged", pending).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, publisher, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, pending.Status())
	assert.NotNil(t, pending.CancelledAt())
}

func TestCancelOrderCommandHandler_Handle_NotTheOwner(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	pending := fixturePendingOrder(t, orderID, kernel.NewUUID(), order.Cash)
	stranger := kernel.NewUUID()

	cmd, err := commands.NewCancelOrderCommand(orderID, stranger)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(pending, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, nil, nil)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, order.Pending, pending.Status())
}

func TestCancelOrderCommandHandler_Handle_InTransitOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	clientID := kernel.NewUUID()

	moving := fixtureInTransitOrder(t, orderID, clientID, kernel.NewUUID(), order.Cash)

	cmd, err := commands.NewCancelOrderCommand(orderID, clientID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(moving, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, nil, nil)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err, "courier already on the way")
	assert.Equal(t, order.InTransit, moving.Status())
	orderRepo.AssertNotCalled(t, "Update", ctx, moving)
}
