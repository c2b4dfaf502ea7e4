package commands

import (
	"context"
	"fmt"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// AcceptOrderCommandHandler handles the business logic for taking an order
// into work. Only staff users may accept, and only orders still in the new
// status. The owner is notified best effort after the transition commits.
type AcceptOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewAcceptOrderCommandHandler creates a handler for accepting orders.
func NewAcceptOrderCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the accept order command.
// Returns errs.AccessDeniedError for non-staff actors, errs.ObjectNotFoundError
// for unknown orders and errs.ValueIsInvalidError for illegal transitions.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := reviewOrder(ctx, h.uowFactory, cmd.ActorID(), cmd.OrderID(),
		func(aggregate *order.Order) error {
			return aggregate.Accept()
		})
	if err != nil {
		return err
	}

	notifyOwner(ctx, h.notifier, aggregate,
		fmt.Sprintf("Your order #%d was accepted and is now in review.", aggregate.ID()))
	return nil
}
