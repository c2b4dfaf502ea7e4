package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

func storedOrder(t *testing.T, id int64, status order.Status) *order.Order {
	t.Helper()
	aggregate, err := order.RestoreOrder(
		id, 42, time.Now(),
		order.CategoryWebsite, order.PlatformUnspecified,
		testDescription, order.CurrencyEUR, "2000",
		status, nil,
	)
	require.NoError(t, err)
	return aggregate
}

func reviewUoW(t *testing.T, orderRepo *MockOrderRepository, userRepo *MockUserRepository) *MockUoWFactory {
	t.Helper()
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", mock.Anything).Return(nil).Maybe()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory
}

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAcceptOrderCommand(100, 7)
	aggregate := storedOrder(t, 7, order.StatusNew)

	userRepo := new(MockUserRepository)
	userRepo.On("IsAdmin", mock.Anything, int64(100)).Return(true, nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, int64(7)).Return(aggregate, nil).Once()
	orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, int64(42), mock.AnythingOfType("string")).
		Return(ports.NotifyResult{Delivered: true}).Once()

	h := commands.NewAcceptOrderCommandHandler(reviewUoW(t, orderRepo, userRepo), notifier)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.StatusInReview, aggregate.Status())
	notifier.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_AccessDenied(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAcceptOrderCommand(999, 7)

	userRepo := new(MockUserRepository)
	userRepo.On("IsAdmin", mock.Anything, int64(999)).Return(false, nil).Once()

	orderRepo := new(MockOrderRepository)
	notifier := new(MockNotifier)

	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrAccessDenied)
	orderRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
}

func TestAcceptOrderCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAcceptOrderCommand(100, 7)
	aggregate := storedOrder(t, 7, order.StatusDone)

	userRepo := new(MockUserRepository)
	userRepo.On("IsAdmin", mock.Anything, int64(100)).Return(true, nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, int64(7)).Return(aggregate, nil).Once()

	notifier := new(MockNotifier)

	h := commands.NewAcceptOrderCommandHandler(reviewUoW(t, orderRepo, userRepo), notifier)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, order.StatusDone, aggregate.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
}

func TestAcceptOrderCommandHandler_Handle_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAcceptOrderCommand(100, 7)

	userRepo := new(MockUserRepository)
	userRepo.On("IsAdmin", mock.Anything, int64(100)).Return(true, nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, int64(7)).
		Return(nil, errs.NewObjectNotFoundError("orderID", int64(7))).Once()

	h := commands.NewAcceptOrderCommandHandler(reviewUoW(t, orderRepo, userRepo), new(MockNotifier))
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewAcceptOrderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewAcceptOrderCommand(0, 7)
	require.ErrorIs(t, err, commands.ErrActorIDIsRequired)

	_, err = commands.NewAcceptOrderCommand(100, 0)
	require.ErrorIs(t, err, commands.ErrOrderIDIsRequired)
}
