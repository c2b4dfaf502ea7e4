package commands

import (
	"context"
)

// AcceptAgreementCommandHandler handles the business logic for agreement acceptance.
// Loads the user, marks the agreement as accepted and persists the change.
// Accepting twice is harmless: the flag never goes back.
type AcceptAgreementCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewAcceptAgreementCommandHandler creates a handler for agreement acceptance.
// Requires a UserUoWFactory for transactional persistence.
func NewAcceptAgreementCommandHandler(uowFactory UserUoWFactory) AcceptAgreementCommandHandler {
	return AcceptAgreementCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the agreement acceptance command.
// Returns errs.ObjectNotFoundError when the user was never registered.
func (h *AcceptAgreementCommandHandler) Handle(ctx context.Context, cmd AcceptAgreementCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	aggregate, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	aggregate.AcceptAgreement()

	if err = userRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
