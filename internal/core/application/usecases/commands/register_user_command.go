package commands

import (
	"errors"

	"orderdesk/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrUserIDIsRequired = errors.New("userID must be greater than 0")
)

// RegisterUserCommand represents a request to register a user on first contact.
// Registration is idempotent: a user that already exists keeps its stored record.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID int64
	handle string
	name   string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a user.
// The handle may be empty; not every messaging account has one.
func NewRegisterUserCommand(userID int64, handle string, name string) (RegisterUserCommand, error) {
	userCommand := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := userCommand.setUserID(userID); err != nil {
		return RegisterUserCommand{}, err
	}
	userCommand.handle = handle
	userCommand.name = name

	return userCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterUserCommandIsNotConstructed if validation fails.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the external messaging identifier of the user.
func (c RegisterUserCommand) UserID() int64 {
	return c.userID
}

// Handle returns the user's public handle, possibly empty.
func (c RegisterUserCommand) Handle() string {
	return c.handle
}

// Name returns the user's display name.
func (c RegisterUserCommand) Name() string {
	return c.name
}

func (c *RegisterUserCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return ErrUserIDIsRequired
	}

	c.userID = userID
	return nil
}
