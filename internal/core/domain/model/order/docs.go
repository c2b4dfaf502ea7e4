// Package order provides domain entities and business logic for project-order
// management in the orderdesk system. It implements the Order aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Category, Platform, Currency: closed value-object sets collected by the wizard
//
// Key business rules:
//   - Orders must reference a valid owner, a sufficiently detailed description, and a budget
//   - Order status follows a defined workflow: new -> in_review -> done | not_completed,
//     or new -> rejected
//   - rejected, done and not_completed are terminal; no transition leaves them
//   - The (category, platform) pair is fixed at creation; only status and the staff
//     comment mutate afterwards
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
