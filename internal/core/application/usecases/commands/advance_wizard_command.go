package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/wizard"
	"orderdesk/internal/pkg/guard"
)

var ErrAdvanceWizardCommandIsNotConstructed = errors.New(
	"AdvanceWizardCommand must be created via NewAdvanceWizardCommand constructor",
)

// AdvanceWizardCommand represents one user input fed to an in-progress wizard
// session.
type AdvanceWizardCommand struct { //nolint:recvcheck //using for validation
	userID int64
	input  wizard.Input

	guard guard.ConstructorGuard
}

// NewAdvanceWizardCommand creates a command carrying one wizard input.
func NewAdvanceWizardCommand(userID int64, input wizard.Input) (AdvanceWizardCommand, error) {
	wizardCommand := AdvanceWizardCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		wizardCommand.setUserID(userID),
		wizardCommand.setInput(input),
	); err != nil {
		return AdvanceWizardCommand{}, err
	}

	return wizardCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceWizardCommandIsNotConstructed if validation fails.
func (c AdvanceWizardCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceWizardCommandIsNotConstructed)
}

// UserID returns the session owner's identifier.
func (c AdvanceWizardCommand) UserID() int64 {
	return c.userID
}

// Input returns the wizard input to apply.
func (c AdvanceWizardCommand) Input() wizard.Input {
	return c.input
}

func (c *AdvanceWizardCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return ErrUserIDIsRequired
	}

	c.userID = userID
	return nil
}

func (c *AdvanceWizardCommand) setInput(input wizard.Input) error {
	if err := input.Validate(); err != nil {
		return err
	}

	c.input = input
	return nil
}
