package commands

import (
	"context"
	"fmt"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// CompleteOrderCommandHandler handles the business logic for closing in-review
// orders as done.
type CompleteOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewCompleteOrderCommandHandler creates a handler for completing orders.
func NewCompleteOrderCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the complete order command.
// Returns errs.AccessDeniedError for non-staff actors, errs.ObjectNotFoundError
// for unknown orders and errs.ValueIsInvalidError for illegal transitions.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := reviewOrder(ctx, h.uowFactory, cmd.ActorID(), cmd.OrderID(),
		func(aggregate *order.Order) error {
			return aggregate.Complete()
		})
	if err != nil {
		return err
	}

	notifyOwner(ctx, h.notifier, aggregate,
		fmt.Sprintf("Your order #%d is done. Thank you!", aggregate.ID()))
	return nil
}
