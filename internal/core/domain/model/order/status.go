package order

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Status represents the lifecycle state of a committed order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct staff workflow.
//
// State transitions:
//
//	New ──┬──> InReview ──┬──> Done
//	      │               └──> NotCompleted
//	      └──> Rejected
//
// Rejected, Done and NotCompleted are terminal: no transition leaves them.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusNew is the initial status when an order is committed by the wizard.
	// Orders in this status are waiting for a staff decision.
	StatusNew

	// StatusInReview indicates staff accepted the order and are working on it.
	StatusInReview

	// StatusDone indicates the order was completed successfully. Terminal.
	StatusDone

	// StatusNotCompleted indicates work on the order stopped without completion. Terminal.
	StatusNotCompleted

	// StatusRejected indicates staff declined the order, with a reason comment. Terminal.
	StatusRejected
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:      "unknown",
		StatusNew:          "new",
		StatusInReview:     "in_review",
		StatusDone:         "done",
		StatusNotCompleted: "not_completed",
		StatusRejected:     "rejected",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusNew:          "new",
		StatusInReview:     "in_review",
		StatusDone:         "done",
		StatusNotCompleted: "not_completed",
		StatusRejected:     "rejected",
	}
}

// ParseStatus converts a stored string representation back into a Status.
// Returns an error for unrecognized values.
func ParseStatus(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", value))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: New, InReview, Done, NotCompleted, Rejected.
// StatusUnknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the stable name of the status, e.g. "in_review".
// Returns "unknown" for invalid status values. Implements fmt.Stringer
// and is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDone || s == StatusNotCompleted || s == StatusRejected
}

// Accept transitions the status to InReview.
//
// Valid transitions:
//   - New -> InReview (staff takes the order into work)
//
// Returns:
//   - (InReview, nil) on valid transition
//   - (0, error) if the current status is not New
//
// This method is used by Order.Accept() to enforce state transitions.
func (s Status) Accept() (Status, error) {
	if s != StatusNew {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to accept", s.String()),
		)
	}
	return StatusInReview, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - New -> Rejected (staff declines the order)
//
// Returns:
//   - (Rejected, nil) on valid transition
//   - (0, error) if the current status is not New
//
// Rejected is a final state with no further transitions possible.
func (s Status) Reject() (Status, error) {
	if s != StatusNew {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to reject", s.String()),
		)
	}
	return StatusRejected, nil
}

// Complete transitions the status to Done.
//
// Valid transitions:
//   - InReview -> Done (work finished)
//
// Returns:
//   - (Done, nil) on valid transition
//   - (0, error) if the current status is not InReview
//
// Done is a final state with no further transitions possible.
func (s Status) Complete() (Status, error) {
	if s != StatusInReview {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}
	return StatusDone, nil
}

// Fail transitions the status to NotCompleted.
//
// Valid transitions:
//   - InReview -> NotCompleted (work stopped without completion)
//
// Returns:
//   - (NotCompleted, nil) on valid transition
//   - (0, error) if the current status is not InReview
//
// NotCompleted is a final state with no further transitions possible.
func (s Status) Fail() (Status, error) {
	if s != StatusInReview {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to fail", s.String()),
		)
	}
	return StatusNotCompleted, nil
}
