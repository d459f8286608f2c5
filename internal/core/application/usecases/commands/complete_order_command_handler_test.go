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

func TestCompleteOrderCommandHandler_Handle_CashOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	courierID := kernel.NewUUID()

	moving := fixtureInTransitOrder(t, orderID, kernel.NewUUID(), courierID, order.Cash)

	cmd, err := commands.NewCompleteOrderCommand(orderID, courierID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	gateway := new(MockPaymentGateway)
	publisher := new(MockOrderEventPublisher)
	notifier := new(MockOrderChangeNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(moving, nil).Once(),
		orderRepo.On("Update", ctx, moving).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("PublishOrderChanged", ctx, moving).Return(nil).Once()
	notifier.On("NotifyOrderChanged", moving).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteOrderCommandHandler(factory, gateway, publisher, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, moving.Status())
	assert.Equal(t, order.PaymentPaid, moving.PaymentStatus(), "cash settles on completion")
	gateway.AssertNotCalled(t, "CreatePendingSettlement", ctx, orderID, moving.Price())
}

func TestCompleteOrderCommandHandler_Handle_CardOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	courierID := kernel.NewUUID()

	moving := fixtureInTransitOrder(t, orderID, kernel.NewUUID(), courierID, order.Card)

	cmd, err := commands.NewCompleteOrderCommand(orderID, courierID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	gateway := new(MockPaymentGateway)
	publisher := new(MockOrderEventPublisher)
	notifier := new(MockOrderChangeNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(moving, nil).Once(),
		orderRepo.On("Update", ctx, moving).Return(nil).Once(),
		gateway.On("CreatePendingSettlement", ctx, orderID, moving.Price()).
			Return("TRX-1700000000-abc", nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("PublishOrderChanged", ctx, moving).Return(nil).Once()
	notifier.On("NotifyOrderChanged", moving).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteOrderCommandHandler(factory, gateway, publisher, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, moving.Status())
	assert.Equal(t, order.PaymentPending, moving.PaymentStatus(), "card waits for confirmation")
	gateway.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_WrongCourier(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	moving := fixtureInTransitOrder(t, orderID, kernel.NewUUID(), kernel.NewUUID(), order.Cash)
	stranger := kernel.NewUUID()

	cmd, err := commands.NewCompleteOrderCommand(orderID, stranger)
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

	handler := commands.NewCompleteOrderCommandHandler(factory, new(MockPaymentGateway), nil, nil)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, order.InTransit, moving.Status())
	orderRepo.AssertNotCalled(t, "Update", ctx, moving)
}
