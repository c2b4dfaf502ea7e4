package wizard

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

// ErrSessionIsNotConstructed is returned when a Session was created bypassing
// the constructor.
var ErrSessionIsNotConstructed = fmt.Errorf("session is not constructed")

// Outcome reports what an accepted input did to the session.
type Outcome int

const (
	OutcomeUnknown Outcome = iota

	// OutcomeAdvanced means the session is still in progress and moved to
	// another step.
	OutcomeAdvanced
	// OutcomeCommitted means the draft is complete and confirmed. The
	// session is finished; the caller turns the draft into an order.
	OutcomeCommitted
	// OutcomeCancelled means the user left the wizard. The session is
	// finished and the draft is discarded.
	OutcomeCancelled
)

// Draft is the order-in-progress buffer collected step by step.
type Draft struct {
	Category    order.Category
	Platform    order.Platform
	Description string
	Currency    order.Currency
	Budget      string
}

// Session is the per-user wizard aggregate. It holds the current step and the
// draft, and advances through an explicit transition table: inputs not listed
// for the current step are refused with an error and change nothing.
type Session struct {
	userID int64
	step   Step
	draft  Draft

	isConstructed bool
}

// NewSession starts a wizard for the user at the category step.
func NewSession(userID int64) (*Session, error) {
	if userID <= 0 {
		return nil, errs.NewValueIsRequiredError("userID")
	}

	return &Session{
		userID: userID,
		step:   AwaitingCategory,

		isConstructed: true,
	}, nil
}

// UserID returns the session owner.
func (s *Session) UserID() int64 {
	return s.userID
}

// Step returns the current wizard step.
func (s *Session) Step() Step {
	return s.step
}

// Draft returns a copy of the collected fields.
func (s *Session) Draft() Draft {
	return s.draft
}

// Validate checks that the session was created via the constructor.
func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

type transitionFn func(s *Session, input Input) (Outcome, error)

// Control inputs handled uniformly at every step are resolved before the
// table lookup, so the table lists step-specific inputs only.
func getTransitions() map[Step]map[InputKind]transitionFn {
	return map[Step]map[InputKind]transitionFn{
		AwaitingCategory: {
			InputCategory: applyCategory,
		},
		AwaitingPlatform: {
			InputPlatform: applyPlatform,
		},
		AwaitingDescription: {
			InputText: applyDescription,
		},
		AwaitingCurrency: {
			InputCurrency: applyCurrency,
		},
		AwaitingBudget: {
			InputText: applyBudget,
		},
		AwaitingConfirmation: {
			InputConfirm: applyConfirm,
		},
	}
}

// Apply feeds one input to the session. Inputs not legal at the current step
// are refused with an error; the step and the draft stay unchanged. After
// OutcomeCommitted or OutcomeCancelled the session is finished and the caller
// must discard it.
func (s *Session) Apply(input Input) (Outcome, error) {
	if err := s.Validate(); err != nil {
		return OutcomeUnknown, err
	}
	if err := input.Validate(); err != nil {
		return OutcomeUnknown, err
	}

	switch input.Kind() {
	case InputCancel, InputReset:
		return OutcomeCancelled, nil
	case InputBack:
		return s.goBack(), nil
	}

	apply, ok := getTransitions()[s.step][input.Kind()]
	if !ok {
		return OutcomeUnknown, errs.NewValueIsInvalidErrorWithCause("input",
			fmt.Errorf("%s is not accepted at step %s", input.Kind(), s.step))
	}
	return apply(s, input)
}

// goBack moves one step towards the start, keeping collected fields. From the
// first step it leaves the wizard. The platform step is skipped in reverse for
// categories that never visited it.
func (s *Session) goBack() Outcome {
	switch s.step {
	case AwaitingCategory:
		return OutcomeCancelled
	case AwaitingPlatform:
		s.step = AwaitingCategory
	case AwaitingDescription:
		if s.draft.Category == order.CategoryChatbot {
			s.step = AwaitingPlatform
		} else {
			s.step = AwaitingCategory
		}
	case AwaitingCurrency:
		s.step = AwaitingDescription
	case AwaitingBudget:
		s.step = AwaitingCurrency
	case AwaitingConfirmation:
		s.step = AwaitingBudget
	}
	return OutcomeAdvanced
}

func applyCategory(s *Session, input Input) (Outcome, error) {
	category := input.Category()
	if err := category.Validate(); err != nil {
		return OutcomeUnknown, err
	}

	s.draft.Category = category

	// Only chat-bot orders pick a platform. Everything else skips the step
	// with the platform pinned to "unspecified".
	if category == order.CategoryChatbot {
		s.step = AwaitingPlatform
	} else {
		s.draft.Platform = order.PlatformUnspecified
		s.step = AwaitingDescription
	}
	return OutcomeAdvanced, nil
}

func applyPlatform(s *Session, input Input) (Outcome, error) {
	platform := input.Platform()
	if err := platform.ValidateSelectable(); err != nil {
		return OutcomeUnknown, err
	}

	s.draft.Platform = platform
	s.step = AwaitingDescription
	return OutcomeAdvanced, nil
}

func applyDescription(s *Session, input Input) (Outcome, error) {
	description := strings.TrimSpace(input.Text())
	if description == "" {
		return OutcomeUnknown, errs.NewValueIsRequiredError("description")
	}
	if utf8.RuneCountInString(description) < order.MinDescriptionLength {
		return OutcomeUnknown, errs.NewValueIsInvalidErrorWithCause("description",
			fmt.Errorf("shorter than %d characters", order.MinDescriptionLength))
	}

	s.draft.Description = description
	s.step = AwaitingCurrency
	return OutcomeAdvanced, nil
}

func applyCurrency(s *Session, input Input) (Outcome, error) {
	currency := input.Currency()
	if err := currency.Validate(); err != nil {
		return OutcomeUnknown, err
	}

	s.draft.Currency = currency
	s.step = AwaitingBudget
	return OutcomeAdvanced, nil
}

func applyBudget(s *Session, input Input) (Outcome, error) {
	budget := strings.TrimSpace(input.Text())
	if budget == "" {
		return OutcomeUnknown, errs.NewValueIsRequiredError("budget")
	}

	s.draft.Budget = budget
	s.step = AwaitingConfirmation
	return OutcomeAdvanced, nil
}

func applyConfirm(s *Session, _ Input) (Outcome, error) {
	return OutcomeCommitted, nil
}
