package wizard

import (
	"orderdesk/internal/pkg/errs"
)

// Step is the wizard state. The zero value is invalid.
type Step int

const (
	StepUnknown Step = iota

	// AwaitingCategory is the initial step of every session.
	AwaitingCategory
	AwaitingPlatform
	AwaitingDescription
	AwaitingCurrency
	AwaitingBudget
	AwaitingConfirmation
)

func getStepStrings() map[Step]string {
	return map[Step]string{
		StepUnknown:          "unknown",
		AwaitingCategory:     "awaiting_category",
		AwaitingPlatform:     "awaiting_platform",
		AwaitingDescription:  "awaiting_description",
		AwaitingCurrency:     "awaiting_currency",
		AwaitingBudget:       "awaiting_budget",
		AwaitingConfirmation: "awaiting_confirmation",
	}
}

// Validate checks that the step is one of the known wizard states.
func (s Step) Validate() error {
	steps := getStepStrings()
	delete(steps, StepUnknown)

	if _, ok := steps[s]; !ok {
		return errs.NewValueIsInvalidError("step")
	}
	return nil
}

// String returns the Step string form, or "unknown" for unrecognized values.
func (s Step) String() string {
	if str, ok := getStepStrings()[s]; ok {
		return str
	}
	return getStepStrings()[StepUnknown]
}
