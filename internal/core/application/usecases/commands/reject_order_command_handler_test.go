package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

func TestRejectOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRejectOrderCommand(100, 7, "budget too low")
	aggregate := storedOrder(t, 7, order.StatusNew)

	userRepo := new(MockUserRepository)
	userRepo.On("IsAdmin", mock.Anything, int64(100)).Return(true, nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, int64(7)).Return(aggregate, nil).Once()
	orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, int64(42), mock.AnythingOfType("string")).
		Return(ports.NotifyResult{Delivered: true}).Once()

	h := commands.NewRejectOrderCommandHandler(reviewUoW(t, orderRepo, userRepo), notifier)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.StatusRejected, aggregate.Status())
	require.NotNil(t, aggregate.Comment())
	assert.Equal(t, "budget too low", *aggregate.Comment())
}

func TestRejectOrderCommandHandler_Handle_BlankReasonStoresSentinel(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRejectOrderCommand(100, 7, "")
	aggregate := storedOrder(t, 7, order.StatusNew)

	userRepo := new(MockUserRepository)
	userRepo.On("IsAdmin", mock.Anything, int64(100)).Return(true, nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, int64(7)).Return(aggregate, nil).Once()
	orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, int64(42), mock.AnythingOfType("string")).
		Return(ports.NotifyResult{Delivered: true}).Once()

	h := commands.NewRejectOrderCommandHandler(reviewUoW(t, orderRepo, userRepo), notifier)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, aggregate.Comment())
	assert.Equal(t, order.NoReason, *aggregate.Comment())
}

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCompleteOrderCommand(100, 7)
	aggregate := storedOrder(t, 7, order.StatusInReview)

	userRepo := new(MockUserRepository)
	userRepo.On("IsAdmin", mock.Anything, int64(100)).Return(true, nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, int64(7)).Return(aggregate, nil).Once()
	orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, int64(42), mock.AnythingOfType("string")).
		Return(ports.NotifyResult{Delivered: true}).Once()

	h := commands.NewCompleteOrderCommandHandler(reviewUoW(t, orderRepo, userRepo), notifier)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.StatusDone, aggregate.Status())
}

func TestFailOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewFailOrderCommand(100, 7)
	aggregate := storedOrder(t, 7, order.StatusInReview)

	userRepo := new(MockUserRepository)
	userRepo.On("IsAdmin", mock.Anything, int64(100)).Return(true, nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, int64(7)).Return(aggregate, nil).Once()
	orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, int64(42), mock.AnythingOfType("string")).
		Return(ports.NotifyResult{Delivered: false, Err: assert.AnError}).Once()

	h := commands.NewFailOrderCommandHandler(reviewUoW(t, orderRepo, userRepo), notifier)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err, "notification failure must not fail the transition")
	assert.Equal(t, order.StatusNotCompleted, aggregate.Status())
}
