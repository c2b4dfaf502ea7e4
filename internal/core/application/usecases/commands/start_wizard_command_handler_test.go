package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/core/domain/model/wizard"
)

func registeredUser(t *testing.T, agreementAccepted bool) *user.User {
	t.Helper()
	aggregate, err := user.RestoreUser(42, "jdoe", "John Doe", agreementAccepted, time.Now())
	require.NoError(t, err)
	return aggregate
}

func TestStartWizardCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewStartWizardCommand(42)

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(42)).Return(registeredUser(t, true), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	sessions := new(MockSessionStore)
	sessions.On("Save", mock.Anything, mock.AnythingOfType("*wizard.Session")).Return(nil).Once()

	h := commands.NewStartWizardCommandHandler(factory, sessions)
	prompt, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.NotEmpty(t, prompt.Text)
	assert.NotEmpty(t, prompt.Actions)
	sessions.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestStartWizardCommandHandler_Handle_AgreementGate(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewStartWizardCommand(42)

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(42)).Return(registeredUser(t, false), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	sessions := new(MockSessionStore)

	h := commands.NewStartWizardCommandHandler(factory, sessions)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrAgreementNotAccepted)
	sessions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestStartWizardCommandHandler_Handle_SessionStartsAtFirstStep(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewStartWizardCommand(42)

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("Get", mock.Anything, int64(42)).Return(registeredUser(t, true), nil).Once()

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	var saved *wizard.Session
	sessions := new(MockSessionStore)
	sessions.On("Save", mock.Anything, mock.AnythingOfType("*wizard.Session")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*wizard.Session)
		}).Return(nil).Once()

	h := commands.NewStartWizardCommandHandler(factory, sessions)
	_, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, int64(42), saved.UserID())
	assert.Equal(t, wizard.AwaitingCategory, saved.Step())
}
