// Package wizard implements the multi-step order-intake conversation as a
// finite-state machine. A Session is the per-user aggregate that tracks the
// current step and buffers the partially collected order fields until the user
// confirms (producing exactly one Order draft) or cancels.
//
// The package includes:
//   - Step: the closed set of wizard states, from AwaitingCategory to AwaitingConfirmation
//   - Input: a tagged variant describing one user input (selection, free text, or control)
//   - Session: the aggregate applying inputs through an explicit transition table
//   - Prompt: the presentation contract, display text plus legal next actions per step
//
// Key business rules:
//   - Only chat-bot orders visit the platform step; every other category skips it
//     with the platform forced to "unspecified"
//   - Descriptions shorter than the minimum and empty budgets are refused in place:
//     the step does not change and previously collected fields are untouched
//   - Back moves one step towards the start, preserving collected fields;
//     from the first step it leaves the wizard
//   - Reset leaves the wizard from any step
//   - Confirm is only accepted on the confirmation step and yields the completed draft
//
// At most one session exists per user; the session store enforces replacement
// on restart.
package wizard
