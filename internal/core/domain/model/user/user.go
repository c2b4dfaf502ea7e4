// Package user provides the User entity: anyone who has contacted the service.
// Users are created on first contact and never deleted; the agreement-accepted
// flag is monotonic and only ever moves from false to true.
package user

import (
	"errors"
	"fmt"
	"time"

	"orderdesk/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created through
// the NewUser or RestoreUser factory methods.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// User represents a person interacting with the service through the chat gateway.
//
// Invariants:
//   - The identifier is the opaque numeric id supplied by the chat gateway
//   - AgreementAccepted never resets to false once set
//   - Handle is optional; Name may be empty when the gateway supplies none
type User struct {
	// id is the chat gateway's numeric user identifier
	id int64

	// handle is the optional public username
	handle string

	// name is the display name
	name string

	// agreementAccepted records acceptance of the terms of service
	agreementAccepted bool

	// registeredAt is the first-contact timestamp
	registeredAt time.Time

	// isConstructed ensures the user was created via a constructor
	isConstructed bool
}

// NewUser creates a User at first contact. The agreement flag starts false and
// the registration timestamp is taken now.
func NewUser(id int64, handle, name string) (*User, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a positive user id", id))
	}

	return &User{
		id:            id,
		handle:        handle,
		name:          name,
		registeredAt:  time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreUser reconstructs a User from persistence.
func RestoreUser(id int64, handle, name string, agreementAccepted bool, registeredAt time.Time) (*User, error) {
	u, err := NewUser(id, handle, name)
	if err != nil {
		return nil, err
	}

	u.agreementAccepted = agreementAccepted
	u.registeredAt = registeredAt
	return u, nil
}

// Validate ensures the User instance was properly constructed through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the chat gateway's numeric user identifier.
func (u *User) ID() int64 {
	return u.id
}

// Handle returns the optional public username, empty if none.
func (u *User) Handle() string {
	return u.handle
}

// Name returns the display name.
func (u *User) Name() string {
	return u.name
}

// AgreementAccepted reports whether the user accepted the terms of service.
func (u *User) AgreementAccepted() bool {
	return u.agreementAccepted
}

// RegisteredAt returns the first-contact timestamp.
func (u *User) RegisteredAt() time.Time {
	return u.registeredAt
}

// AcceptAgreement records acceptance of the terms. The flag is monotonic:
// accepting again is a no-op, and nothing ever resets it.
func (u *User) AcceptAgreement() {
	u.agreementAccepted = true
}
