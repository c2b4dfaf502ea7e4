package commands

import (
	"context"
	"fmt"
	"log/slog"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/wizard"
	"orderdesk/internal/core/ports"
)

// AdvanceWizardResult reports what one wizard input did and what to show next.
type AdvanceWizardResult struct {
	// Outcome mirrors the session outcome: advanced, committed or cancelled.
	Outcome wizard.Outcome

	// Prompt is the next screen while the wizard is in progress. On a value
	// the session refused, it re-renders the unchanged step. Zero after
	// commit or cancel.
	Prompt wizard.Prompt

	// OrderID is the identifier the repository assigned to the submitted
	// order. Set only when Outcome is OutcomeCommitted.
	OrderID int64
}

// AdvanceWizardCommandHandler feeds user inputs to wizard sessions. On
// confirmation it turns the collected draft into an order, persists it and
// fans out a best-effort notification to every staff user.
type AdvanceWizardCommandHandler struct {
	uowFactory UoWFactory
	sessions   ports.SessionStore
	notifier   ports.Notifier
}

// NewAdvanceWizardCommandHandler creates a handler for advancing wizard sessions.
func NewAdvanceWizardCommandHandler(
	uowFactory UoWFactory,
	sessions ports.SessionStore,
	notifier ports.Notifier,
) AdvanceWizardCommandHandler {
	return AdvanceWizardCommandHandler{
		uowFactory: uowFactory,
		sessions:   sessions,
		notifier:   notifier,
	}
}

// Handle applies one input to the user's session.
// Returns errs.ObjectNotFoundError when the user has no in-progress session;
// callers treat that as "back to the menu". A value the session refuses comes
// back as an error together with the re-rendered prompt of the unchanged step.
func (h *AdvanceWizardCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceWizardCommand,
) (AdvanceWizardResult, error) {
	if err := cmd.Validate(); err != nil {
		return AdvanceWizardResult{}, err
	}

	session, err := h.sessions.Get(ctx, cmd.UserID())
	if err != nil {
		return AdvanceWizardResult{}, err
	}

	outcome, err := session.Apply(cmd.Input())
	if err != nil {
		return AdvanceWizardResult{Prompt: session.Prompt()}, err
	}

	switch outcome {
	case wizard.OutcomeAdvanced:
		if err = h.sessions.Save(ctx, session); err != nil {
			return AdvanceWizardResult{}, err
		}
		return AdvanceWizardResult{Outcome: outcome, Prompt: session.Prompt()}, nil

	case wizard.OutcomeCancelled:
		if err = h.sessions.Clear(ctx, cmd.UserID()); err != nil {
			return AdvanceWizardResult{}, err
		}
		return AdvanceWizardResult{Outcome: outcome}, nil

	case wizard.OutcomeCommitted:
		return h.commit(ctx, session)
	}

	return AdvanceWizardResult{}, fmt.Errorf("unexpected wizard outcome: %d", outcome)
}

// commit turns the confirmed draft into a persisted order and clears the session.
func (h *AdvanceWizardCommandHandler) commit(
	ctx context.Context,
	session *wizard.Session,
) (AdvanceWizardResult, error) {
	draft := session.Draft()
	aggregate, err := order.NewOrder(
		session.UserID(),
		draft.Category,
		draft.Platform,
		draft.Description,
		draft.Currency,
		draft.Budget,
	)
	if err != nil {
		return AdvanceWizardResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return AdvanceWizardResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return AdvanceWizardResult{}, err
	}

	adminIDs, err := uow.UserRepository().GetAdminIDs(ctx)
	if err != nil {
		return AdvanceWizardResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AdvanceWizardResult{}, err
	}

	if err = h.sessions.Clear(ctx, session.UserID()); err != nil {
		return AdvanceWizardResult{}, err
	}

	h.notifyStaff(ctx, adminIDs, aggregate)

	return AdvanceWizardResult{
		Outcome: wizard.OutcomeCommitted,
		OrderID: aggregate.ID(),
	}, nil
}

// notifyStaff tells every staff user about the new order. Delivery failures
// are logged and never fail the submission: the order is already committed.
func (h *AdvanceWizardCommandHandler) notifyStaff(ctx context.Context, adminIDs []int64, aggregate *order.Order) {
	text := fmt.Sprintf(
		"New order #%d\nCategory: %s\nPlatform: %s\nDescription: %s\nBudget: %s %s",
		aggregate.ID(),
		aggregate.Category().Label(),
		aggregate.Platform().Label(),
		aggregate.Description(),
		aggregate.Budget(),
		aggregate.Currency().Label(),
	)

	for _, adminID := range adminIDs {
		if result := h.notifier.Notify(ctx, adminID, text); !result.Delivered {
			slog.Warn("staff notification not delivered",
				"adminID", adminID,
				"orderID", aggregate.ID(),
				"error", result.Err)
		}
	}
}
