package commands

import (
	"errors"

	"orderdesk/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a staff decision to take a new order into work.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	actorID int64
	orderID int64

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command to move an order into review.
func NewAcceptOrderCommand(actorID int64, orderID int64) (AcceptOrderCommand, error) {
	orderCommand := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setActorID(actorID),
		orderCommand.setOrderID(orderID),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptOrderCommandIsNotConstructed if validation fails.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// ActorID returns the staff user performing the action.
func (c AcceptOrderCommand) ActorID() int64 {
	return c.actorID
}

// OrderID returns the order being accepted.
func (c AcceptOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *AcceptOrderCommand) setActorID(actorID int64) error {
	if actorID <= 0 {
		return ErrActorIDIsRequired
	}

	c.actorID = actorID
	return nil
}

func (c *AcceptOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}
