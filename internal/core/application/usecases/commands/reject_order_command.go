package commands

import (
	"errors"

	"orderdesk/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand represents a staff decision to turn down a new order.
// The reason is optional; a blank reason is stored as the "not specified"
// sentinel on the order.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	actorID int64
	orderID int64
	reason  string

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a command to reject an order.
func NewRejectOrderCommand(actorID int64, orderID int64, reason string) (RejectOrderCommand, error) {
	orderCommand := RejectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setActorID(actorID),
		orderCommand.setOrderID(orderID),
	); err != nil {
		return RejectOrderCommand{}, err
	}
	orderCommand.reason = reason

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRejectOrderCommandIsNotConstructed if validation fails.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// ActorID returns the staff user performing the action.
func (c RejectOrderCommand) ActorID() int64 {
	return c.actorID
}

// OrderID returns the order being rejected.
func (c RejectOrderCommand) OrderID() int64 {
	return c.orderID
}

// Reason returns the rejection reason, possibly empty.
func (c RejectOrderCommand) Reason() string {
	return c.reason
}

func (c *RejectOrderCommand) setActorID(actorID int64) error {
	if actorID <= 0 {
		return ErrActorIDIsRequired
	}

	c.actorID = actorID
	return nil
}

func (c *RejectOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}
