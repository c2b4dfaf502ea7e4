package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/wizard"
	"orderdesk/internal/pkg/errs"
)

// Event is one inbound user interaction from the messaging gateway: either a
// pressed action button (Action set) or a free-text message (Text set).
type Event struct {
	UserID int64  `json:"user_id"`
	Handle string `json:"handle,omitempty"`
	Name   string `json:"name"`
	Action string `json:"action,omitempty"`
	Text   string `json:"text,omitempty"`
}

// ReplyAction is one button offered in a reply.
type ReplyAction struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Reply is what the gateway shows the user in response to an event.
type Reply struct {
	Text    string        `json:"text"`
	Actions []ReplyAction `json:"actions,omitempty"`
}

// HandleEvent handles POST /api/v1/events: the single entry point of the
// conversational flow. Every event registers the user first, then routes the
// action or text. Unknown input falls back to the main menu.
func (s *Server) HandleEvent(ctx echo.Context) error {
	var event Event
	if err := ctx.Bind(&event); err != nil {
		return httpError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	reqCtx := ctx.Request().Context()

	registerCmd, err := commands.NewRegisterUserCommand(event.UserID, event.Handle, event.Name)
	if err != nil {
		return httpError(ctx, err)
	}
	if err = s.registerUserHandler.Handle(reqCtx, registerCmd); err != nil {
		return httpError(ctx, err)
	}

	reply, err := s.dispatch(reqCtx, event)
	if err != nil {
		return httpError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, reply)
}

func (s *Server) dispatch(ctx context.Context, event Event) (Reply, error) {
	isAdmin, err := s.isAdmin(ctx, event.UserID)
	if err != nil {
		return Reply{}, err
	}

	switch event.Action {
	case "menu", "start":
		return menuReply(isAdmin), nil
	case "info":
		return infoReply(isAdmin), nil
	case "portfolio":
		return portfolioReply(isAdmin), nil
	case "contact":
		return contactReply(isAdmin), nil
	case "agreement:accept":
		return s.acceptAgreement(ctx, event)
	case "order:new":
		return s.startWizard(ctx, event)
	case "profile":
		return s.profile(ctx, event, isAdmin)
	case "orders:my":
		return s.myOrders(ctx, event, isAdmin)
	}

	if strings.HasPrefix(event.Action, "admin") {
		// The admin panel never leaks to regular users, they get the menu.
		if !isAdmin {
			return menuReply(false), nil
		}
		return s.adminScreen(ctx, event.Action)
	}

	input, ok := parseWizardInput(event)
	if !ok {
		return menuReply(isAdmin), nil
	}
	return s.advanceWizard(ctx, event, input, isAdmin)
}

func (s *Server) isAdmin(ctx context.Context, userID int64) (bool, error) {
	query, err := queries.NewCheckAdminQuery(userID)
	if err != nil {
		return false, err
	}
	return s.checkAdminHandler.Handle(ctx, query)
}

// parseWizardInput maps an event onto a wizard input. Free text becomes a
// text input; unrecognized action codes match nothing.
func parseWizardInput(event Event) (wizard.Input, bool) {
	if event.Action == "" {
		if event.Text == "" {
			return wizard.Input{}, false
		}
		return wizard.NewTextInput(event.Text), true
	}

	switch event.Action {
	case "confirm":
		return wizard.NewConfirmInput(), true
	case "cancel":
		return wizard.NewCancelInput(), true
	case "back":
		return wizard.NewBackInput(), true
	case "reset":
		return wizard.NewResetInput(), true
	}

	if value, found := strings.CutPrefix(event.Action, "category:"); found {
		category, err := order.ParseCategory(value)
		if err != nil {
			return wizard.Input{}, false
		}
		return wizard.NewCategoryInput(category), true
	}
	if value, found := strings.CutPrefix(event.Action, "platform:"); found {
		platform, err := order.ParsePlatform(value)
		if err != nil {
			return wizard.Input{}, false
		}
		return wizard.NewPlatformInput(platform), true
	}
	if value, found := strings.CutPrefix(event.Action, "currency:"); found {
		return wizard.NewCurrencyInput(order.ParseCurrency(value)), true
	}

	return wizard.Input{}, false
}

func (s *Server) acceptAgreement(ctx context.Context, event Event) (Reply, error) {
	cmd, err := commands.NewAcceptAgreementCommand(event.UserID)
	if err != nil {
		return Reply{}, err
	}
	if err = s.acceptAgreementHandler.Handle(ctx, cmd); err != nil {
		return Reply{}, err
	}

	return s.startWizard(ctx, event)
}

func (s *Server) startWizard(ctx context.Context, event Event) (Reply, error) {
	cmd, err := commands.NewStartWizardCommand(event.UserID)
	if err != nil {
		return Reply{}, err
	}

	prompt, err := s.startWizardHandler.Handle(ctx, cmd)
	if errors.Is(err, commands.ErrAgreementNotAccepted) {
		return agreementReply(), nil
	}
	if err != nil {
		return Reply{}, err
	}

	return promptReply(prompt), nil
}

func (s *Server) advanceWizard(ctx context.Context, event Event, input wizard.Input, isAdmin bool) (Reply, error) {
	cmd, err := commands.NewAdvanceWizardCommand(event.UserID, input)
	if err != nil {
		return Reply{}, err
	}

	result, err := s.advanceWizardHandler.Handle(ctx, cmd)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// No session in progress: the input was most likely a stray
		// message, answer with the menu.
		return menuReply(isAdmin), nil
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		reply := promptReply(result.Prompt)
		reply.Text = rejectionMessage(err) + "\n\n" + reply.Text
		return reply, nil
	case err != nil:
		return Reply{}, err
	}

	switch result.Outcome {
	case wizard.OutcomeCommitted:
		reply := menuReply(isAdmin)
		reply.Text = fmt.Sprintf(
			"Your order #%d was submitted. We will get back to you soon.", result.OrderID)
		return reply, nil
	case wizard.OutcomeCancelled:
		reply := menuReply(isAdmin)
		reply.Text = "Order cancelled.\n\n" + reply.Text
		return reply, nil
	}
	return promptReply(result.Prompt), nil
}

// rejectionMessage turns a wizard validation error into a user-facing line.
func rejectionMessage(err error) string {
	var invalid *errs.ValueIsInvalidError
	if errors.As(err, &invalid) && invalid.ParamName == "description" {
		return fmt.Sprintf(
			"The description is too short: please use at least %d characters.",
			order.MinDescriptionLength)
	}
	if errors.Is(err, errs.ErrValueIsRequired) {
		return "This field cannot be empty, please try again."
	}
	return "That does not look right, please try again."
}

func promptReply(prompt wizard.Prompt) Reply {
	actions := make([]ReplyAction, len(prompt.Actions))
	for i, action := range prompt.Actions {
		actions[i] = ReplyAction{Code: action.Code, Label: action.Label}
	}
	return Reply{Text: prompt.Text, Actions: actions}
}

func (s *Server) profile(ctx context.Context, event Event, isAdmin bool) (Reply, error) {
	query, err := queries.NewGetProfileQuery(event.UserID)
	if err != nil {
		return Reply{}, err
	}

	profile, err := s.getProfileHandler.Handle(ctx, query)
	if err != nil {
		return Reply{}, err
	}

	handle := profile.Handle
	if handle == "" {
		handle = "not set"
	}
	text := fmt.Sprintf(
		"Your profile\nName: %s\nHandle: %s\nRegistered: %s\nOrders placed: %d",
		profile.Name,
		handle,
		profile.RegisteredAt.UTC().Format("2006-01-02"),
		profile.OrdersTotal,
	)
	return Reply{Text: text, Actions: menuActions(isAdmin)}, nil
}

func (s *Server) myOrders(ctx context.Context, event Event, isAdmin bool) (Reply, error) {
	query, err := queries.NewGetUserOrdersQuery(event.UserID)
	if err != nil {
		return Reply{}, err
	}

	orders, err := s.getUserOrdersHandler.Handle(ctx, query)
	if err != nil {
		return Reply{}, err
	}

	if len(orders) == 0 {
		return Reply{Text: "You have no orders yet.", Actions: menuActions(isAdmin)}, nil
	}

	var b strings.Builder
	b.WriteString("Your recent orders:\n")
	for _, resp := range orders {
		fmt.Fprintf(&b, "\n#%d %s %s\n%s, budget %s %s",
			resp.ID,
			resp.CreatedAt.UTC().Format("2006-01-02"),
			resp.Status.String(),
			resp.Category.Label(),
			resp.Budget,
			resp.Currency.Label(),
		)
		if resp.Comment != "" {
			fmt.Fprintf(&b, "\nComment: %s", resp.Comment)
		}
	}
	return Reply{Text: b.String(), Actions: menuActions(isAdmin)}, nil
}
