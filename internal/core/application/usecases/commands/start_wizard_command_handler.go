package commands

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/wizard"
	"orderdesk/internal/core/ports"
)

// ErrAgreementNotAccepted is returned when a user opens the order wizard
// before accepting the terms of service.
var ErrAgreementNotAccepted = errors.New("agreement is not accepted")

// StartWizardCommandHandler handles the business logic for opening the order
// wizard. The user must be registered and must have accepted the agreement.
// Any in-progress session of the same user is replaced.
type StartWizardCommandHandler struct {
	uowFactory UserUoWFactory
	sessions   ports.SessionStore
}

// NewStartWizardCommandHandler creates a handler for opening the order wizard.
func NewStartWizardCommandHandler(uowFactory UserUoWFactory, sessions ports.SessionStore) StartWizardCommandHandler {
	return StartWizardCommandHandler{
		uowFactory: uowFactory,
		sessions:   sessions,
	}
}

// Handle processes the start wizard command and returns the first step's prompt.
// Returns ErrAgreementNotAccepted when the terms gate has not been passed and
// errs.ObjectNotFoundError when the user was never registered.
func (h *StartWizardCommandHandler) Handle(ctx context.Context, cmd StartWizardCommand) (wizard.Prompt, error) {
	if err := cmd.Validate(); err != nil {
		return wizard.Prompt{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return wizard.Prompt{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return wizard.Prompt{}, err
	}
	if !aggregate.AgreementAccepted() {
		return wizard.Prompt{}, ErrAgreementNotAccepted
	}

	session, err := wizard.NewSession(cmd.UserID())
	if err != nil {
		return wizard.Prompt{}, err
	}

	if err = h.sessions.Save(ctx, session); err != nil {
		return wizard.Prompt{}, err
	}

	return session.Prompt(), nil
}
