package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/core/application/usecases/commands"
)

func TestNewRegisterUserCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewRegisterUserCommand(42, "jdoe", "John Doe")
	require.NoError(t, err)
	assert.Equal(t, int64(42), cmd.UserID())
	assert.Equal(t, "jdoe", cmd.Handle())
	assert.Equal(t, "John Doe", cmd.Name())
}

func TestNewRegisterUserCommand_EmptyHandleIsAllowed(t *testing.T) {
	cmd, err := commands.NewRegisterUserCommand(42, "", "John Doe")
	require.NoError(t, err)
	assert.Empty(t, cmd.Handle())
}

func TestNewRegisterUserCommand_InvalidUserID(t *testing.T) {
	_, err := commands.NewRegisterUserCommand(0, "jdoe", "John Doe")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUserIDIsRequired)
}

func TestRegisterUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterUserCommand(42, "jdoe", "John Doe")

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*user.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterUserCommand{} // not constructed properly
	factory := new(MockUserUoWFactory)
	h := commands.NewRegisterUserCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRegisterUserCommandIsNotConstructed)
}
