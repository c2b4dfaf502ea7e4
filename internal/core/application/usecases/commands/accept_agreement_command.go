package commands

import (
	"errors"

	"orderdesk/internal/pkg/guard"
)

var ErrAcceptAgreementCommandIsNotConstructed = errors.New(
	"AcceptAgreementCommand must be created via NewAcceptAgreementCommand constructor",
)

// AcceptAgreementCommand represents a user accepting the terms of service.
// Acceptance is required once before the order wizard opens and never expires.
type AcceptAgreementCommand struct { //nolint:recvcheck //using for validation
	userID int64

	guard guard.ConstructorGuard
}

// NewAcceptAgreementCommand creates a command to record agreement acceptance.
func NewAcceptAgreementCommand(userID int64) (AcceptAgreementCommand, error) {
	agreementCommand := AcceptAgreementCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := agreementCommand.setUserID(userID); err != nil {
		return AcceptAgreementCommand{}, err
	}

	return agreementCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptAgreementCommandIsNotConstructed if validation fails.
func (c AcceptAgreementCommand) Validate() error {
	return c.guard.Validate(ErrAcceptAgreementCommandIsNotConstructed)
}

// UserID returns the accepting user's identifier.
func (c AcceptAgreementCommand) UserID() int64 {
	return c.userID
}

func (c *AcceptAgreementCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return ErrUserIDIsRequired
	}

	c.userID = userID
	return nil
}
