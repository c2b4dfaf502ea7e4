package commands

import (
	"errors"

	"orderdesk/internal/pkg/guard"
)

var ErrStartWizardCommandIsNotConstructed = errors.New(
	"StartWizardCommand must be created via NewStartWizardCommand constructor",
)

// StartWizardCommand represents a request to open the order wizard for a user.
// A fresh session replaces any in-progress one, so a stuck wizard can always
// be restarted.
type StartWizardCommand struct { //nolint:recvcheck //using for validation
	userID int64

	guard guard.ConstructorGuard
}

// NewStartWizardCommand creates a command to start the order wizard.
func NewStartWizardCommand(userID int64) (StartWizardCommand, error) {
	wizardCommand := StartWizardCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := wizardCommand.setUserID(userID); err != nil {
		return StartWizardCommand{}, err
	}

	return wizardCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStartWizardCommandIsNotConstructed if validation fails.
func (c StartWizardCommand) Validate() error {
	return c.guard.Validate(ErrStartWizardCommandIsNotConstructed)
}

// UserID returns the identifier of the user opening the wizard.
func (c StartWizardCommand) UserID() int64 {
	return c.userID
}

func (c *StartWizardCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return ErrUserIDIsRequired
	}

	c.userID = userID
	return nil
}
