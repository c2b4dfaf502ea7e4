package commands

import (
	"context"
	"errors"
	"log/slog"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

var (
	ErrActorIDIsRequired = errors.New("actorID must be greater than 0")
	ErrOrderIDIsRequired = errors.New("orderID must be greater than 0")
)

// reviewOrder runs the shared staff workflow: verify the actor holds the staff
// role, load the order, apply one lifecycle transition and persist the result.
// The transition never runs for non-staff actors.
func reviewOrder(
	ctx context.Context,
	uowFactory UoWFactory,
	actorID int64,
	orderID int64,
	transition func(aggregate *order.Order) error,
) (*order.Order, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	isAdmin, err := uow.UserRepository().IsAdmin(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, errs.NewAccessDeniedError("actorID", actorID)
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err = transition(aggregate); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// notifyOwner tells the order owner about a status change. Delivery failures
// are logged and never fail the operation: the transition is already committed.
func notifyOwner(ctx context.Context, notifier ports.Notifier, aggregate *order.Order, text string) {
	if result := notifier.Notify(ctx, aggregate.UserID(), text); !result.Delivered {
		slog.Warn("owner notification not delivered",
			"userID", aggregate.UserID(),
			"orderID", aggregate.ID(),
			"error", result.Err)
	}
}
