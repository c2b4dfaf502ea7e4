package commands

import (
	"errors"

	"orderdesk/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents a staff decision to close an in-review order
// as successfully delivered.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	actorID int64
	orderID int64

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to mark an order done.
func NewCompleteOrderCommand(actorID int64, orderID int64) (CompleteOrderCommand, error) {
	orderCommand := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setActorID(actorID),
		orderCommand.setOrderID(orderID),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteOrderCommandIsNotConstructed if validation fails.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// ActorID returns the staff user performing the action.
func (c CompleteOrderCommand) ActorID() int64 {
	return c.actorID
}

// OrderID returns the order being closed.
func (c CompleteOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *CompleteOrderCommand) setActorID(actorID int64) error {
	if actorID <= 0 {
		return ErrActorIDIsRequired
	}

	c.actorID = actorID
	return nil
}

func (c *CompleteOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}
