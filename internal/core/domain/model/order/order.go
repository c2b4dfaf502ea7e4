package order

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"orderdesk/internal/pkg/errs"
)

// MinDescriptionLength is the minimum number of characters a project
// description must contain before the wizard accepts it.
const MinDescriptionLength = 10

// NoReason is the comment stored on rejection when staff supply no reason.
// It is a structural sentinel: an empty or blank reason is replaced by it,
// while any non-blank reason text is stored verbatim.
const NoReason = "not specified"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderIDAlreadyAssigned is returned when AssignID is called on an order
	// that already carries a persistent identity.
	ErrOrderIDAlreadyAssigned = errors.New("order ID is already assigned")
)

// Order represents a committed project order. It is the aggregate root that manages
// the order lifecycle from wizard confirmation through staff review to a terminal state.
//
// Order follows these invariants:
//   - Must reference a valid owning user
//   - Description must be non-empty and at least MinDescriptionLength characters
//   - Budget must be non-empty free text
//   - Platform is meaningful only for chat-bot orders; all others carry PlatformUnspecified
//   - The (category, platform) pair is fixed at creation and never mutated afterwards
//   - Status transitions follow the Status state machine; only status and the staff
//     comment mutate after creation
//   - Can only be created through NewOrder or RestoreOrder
//
// The identity is a sequential integer assigned by the repository: a freshly
// constructed order has no ID until the repository persists it and calls AssignID.
type Order struct {
	// id is the repository-assigned sequential identifier (0 until persisted)
	id int64

	// userID references the owning user
	userID int64

	// createdAt is the commit timestamp
	createdAt time.Time

	// category is the ordered project kind
	category Category

	// platform is the target messenger, meaningful only for chat bots
	platform Platform

	// description is the free-text project description
	description string

	// currency is the budget currency selection
	currency Currency

	// budget is the free-text budget estimate
	budget string

	// status is the current state in the order lifecycle
	status Status

	// comment is the staff comment, set only on rejection
	comment *string

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the entry point for the
// wizard's confirmation step: the order starts in StatusNew with no identity
// (the repository assigns the sequential ID on Add).
//
// Returns a validation error if the owner reference is missing, the description
// is absent or too short, the budget is empty, the platform is inconsistent with
// the category, or any enum value is invalid.
func NewOrder(
	userID int64,
	category Category,
	platform Platform,
	description string,
	currency Currency,
	budget string,
) (*Order, error) {
	o := &Order{
		status:        StatusNew,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setUserID(userID),
		o.setCategory(category),
		o.setPlatform(platform),
		o.setDescription(description),
		o.setCurrency(currency),
		o.setBudget(budget),
	); err != nil {
		return nil, err
	}

	if err := o.validatePlatformConsistency(); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it accepts
// an already-assigned identity, creation timestamp, status and staff comment.
// All invariants are re-validated so corrupt rows surface as errors instead of
// invalid aggregates.
func RestoreOrder(
	id int64,
	userID int64,
	createdAt time.Time,
	category Category,
	platform Platform,
	description string,
	currency Currency,
	budget string,
	status Status,
	comment *string,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		comment:       comment,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setUserID(userID),
		o.setCategory(category),
		o.setPlatform(platform),
		o.setDescription(description),
		o.setCurrency(currency),
		o.setBudget(budget),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if err := o.validatePlatformConsistency(); err != nil {
		return nil, err
	}

	if err := o.AssignID(id); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their repository-assigned identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the order's sequential identifier, 0 if not yet persisted.
func (o *Order) ID() int64 {
	return o.id
}

// UserID returns the owning user's identifier.
func (o *Order) UserID() int64 {
	return o.userID
}

// CreatedAt returns the commit timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Category returns the ordered project kind.
func (o *Order) Category() Category {
	return o.category
}

// Platform returns the target messenger platform.
func (o *Order) Platform() Platform {
	return o.platform
}

// Description returns the free-text project description.
func (o *Order) Description() string {
	return o.description
}

// Currency returns the budget currency.
func (o *Order) Currency() Currency {
	return o.currency
}

// Budget returns the free-text budget estimate.
func (o *Order) Budget() string {
	return o.budget
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Comment returns the staff comment. Nil unless the order was rejected.
func (o *Order) Comment() *string {
	return o.comment
}

// AssignID binds the repository-assigned sequential identity to the order.
// The identity is immutable: assigning twice or assigning a non-positive
// value is an error.
func (o *Order) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a positive order id", id))
	}
	if o.id != 0 {
		return ErrOrderIDAlreadyAssigned
	}
	o.id = id
	return nil
}

// Accept moves the order into review.
//
// Business rules:
//   - The order must be in StatusNew
//
// On success the status becomes StatusInReview. Calling Accept from any other
// status (including a second Accept) returns an invalid-value error and leaves
// the order unchanged.
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Reject declines the order with a staff reason.
//
// Business rules:
//   - The order must be in StatusNew
//   - A blank reason is replaced by the NoReason sentinel; any other reason
//     text is stored verbatim as the staff comment
//
// Rejected is terminal: no later transition can leave it.
func (o *Order) Reject(reason string) error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	if strings.TrimSpace(reason) == "" {
		reason = NoReason
	}

	o.status = newStatus
	o.comment = &reason
	return nil
}

// Complete marks an in-review order as done. Terminal.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Fail marks an in-review order as not completed. Terminal.
func (o *Order) Fail() error {
	newStatus, err := o.status.Fail()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setUserID validates and sets the owning user reference.
// This is a private method used only during construction.
func (o *Order) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsRequiredError("userID")
	}
	o.userID = userID
	return nil
}

// setCategory validates and sets the project category.
// This is a private method used only during construction.
func (o *Order) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	o.category = category
	return nil
}

// setPlatform validates and sets the target platform.
// This is a private method used only during construction.
func (o *Order) setPlatform(platform Platform) error {
	if err := platform.Validate(); err != nil {
		return err
	}
	o.platform = platform
	return nil
}

// setDescription validates and sets the project description.
// This is a private method used only during construction.
func (o *Order) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	if utf8.RuneCountInString(description) < MinDescriptionLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"description",
			fmt.Errorf("description is shorter than %d characters", MinDescriptionLength),
		)
	}
	o.description = description
	return nil
}

// setCurrency validates and sets the budget currency.
// This is a private method used only during construction.
func (o *Order) setCurrency(currency Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}
	o.currency = currency
	return nil
}

// setBudget validates and sets the budget text.
// This is a private method used only during construction.
func (o *Order) setBudget(budget string) error {
	if budget == "" {
		return errs.NewValueIsRequiredError("budget")
	}
	o.budget = budget
	return nil
}

// setStatus validates and sets the status during restoration.
// This is a private method used only during construction.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// validatePlatformConsistency enforces that only chat-bot orders carry a
// concrete platform and that chat-bot orders carry one.
func (o *Order) validatePlatformConsistency() error {
	if o.category == CategoryChatbot {
		return o.platform.ValidateSelectable()
	}
	if o.platform != PlatformUnspecified {
		return errs.NewValueIsInvalidErrorWithCause(
			"platform",
			fmt.Errorf("%s orders cannot target platform %s", o.category.String(), o.platform.String()),
		)
	}
	return nil
}
