package commands

import (
	"context"
	"fmt"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// FailOrderCommandHandler handles the business logic for closing in-review
// orders as not completed.
type FailOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewFailOrderCommandHandler creates a handler for failing orders.
func NewFailOrderCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) FailOrderCommandHandler {
	return FailOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the fail order command.
// Returns errs.AccessDeniedError for non-staff actors, errs.ObjectNotFoundError
// for unknown orders and errs.ValueIsInvalidError for illegal transitions.
func (h *FailOrderCommandHandler) Handle(ctx context.Context, cmd FailOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := reviewOrder(ctx, h.uowFactory, cmd.ActorID(), cmd.OrderID(),
		func(aggregate *order.Order) error {
			return aggregate.Fail()
		})
	if err != nil {
		return err
	}

	notifyOwner(ctx, h.notifier, aggregate,
		fmt.Sprintf("Your order #%d was closed as not completed.", aggregate.ID()))
	return nil
}
