package ports

import (
	"context"
)

// NotifyResult reports the outcome of a single delivery attempt. Notifications
// are best effort: callers inspect or log the result but never fail the
// business operation on it.
type NotifyResult struct {
	Delivered bool
	Err       error
}

// Notifier pushes a plain-text message to a recipient over an external channel.
type Notifier interface {
	Notify(ctx context.Context, recipientID int64, text string) NotifyResult
}
