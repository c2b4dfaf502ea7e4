package commands

import (
	"errors"

	"orderdesk/internal/pkg/guard"
)

var ErrFailOrderCommandIsNotConstructed = errors.New(
	"FailOrderCommand must be created via NewFailOrderCommand constructor",
)

// FailOrderCommand represents a staff decision to close an in-review order as
// not completed.
type FailOrderCommand struct { //nolint:recvcheck //using for validation
	actorID int64
	orderID int64

	guard guard.ConstructorGuard
}

// NewFailOrderCommand creates a command to mark an order not completed.
func NewFailOrderCommand(actorID int64, orderID int64) (FailOrderCommand, error) {
	orderCommand := FailOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setActorID(actorID),
		orderCommand.setOrderID(orderID),
	); err != nil {
		return FailOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrFailOrderCommandIsNotConstructed if validation fails.
func (c FailOrderCommand) Validate() error {
	return c.guard.Validate(ErrFailOrderCommandIsNotConstructed)
}

// ActorID returns the staff user performing the action.
func (c FailOrderCommand) ActorID() int64 {
	return c.actorID
}

// OrderID returns the order being closed.
func (c FailOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *FailOrderCommand) setActorID(actorID int64) error {
	if actorID <= 0 {
		return ErrActorIDIsRequired
	}

	c.actorID = actorID
	return nil
}

func (c *FailOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}
