package jobs

import (
	"fmt"
	"log/slog"

	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingOrdersDigestJob *PendingOrdersDigestJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers and the notifier as dependencies to wire up job execution.
func NewJobManager(
	ordersHandler queries.GetOrdersByStatusQueryHandler,
	adminIDs []int64,
	notifier ports.Notifier,
	digestSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingOrdersDigestJob: NewPendingOrdersDigestJob(ordersHandler, adminIDs, notifier, digestSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingOrdersDigestJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending orders digest job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingOrdersDigestJob.Stop()
}
