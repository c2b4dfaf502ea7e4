package commands

import (
	"context"
	"fmt"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// RejectOrderCommandHandler handles the business logic for turning down new
// orders. The rejection reason ends up in the order comment and in the
// owner's notification.
type RejectOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewRejectOrderCommandHandler creates a handler for rejecting orders.
func NewRejectOrderCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the reject order command.
// Returns errs.AccessDeniedError for non-staff actors, errs.ObjectNotFoundError
// for unknown orders and errs.ValueIsInvalidError for illegal transitions.
func (h *RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := reviewOrder(ctx, h.uowFactory, cmd.ActorID(), cmd.OrderID(),
		func(aggregate *order.Order) error {
			return aggregate.Reject(cmd.Reason())
		})
	if err != nil {
		return err
	}

	reason := order.NoReason
	if comment := aggregate.Comment(); comment != nil {
		reason = *comment
	}
	notifyOwner(ctx, h.notifier, aggregate,
		fmt.Sprintf("Your order #%d was rejected. Reason: %s", aggregate.ID(), reason))
	return nil
}
