package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// PendingOrdersDigestJob periodically summarizes the unprocessed order queues
// and delivers the summary to every staff member. A digest with zero pending
// orders is not sent.
type PendingOrdersDigestJob struct {
	ordersHandler queries.GetOrdersByStatusQueryHandler
	adminIDs      []int64
	notifier      ports.Notifier
	schedule      string
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewPendingOrdersDigestJob creates a job that reminds staff about orders
// waiting in the new queue. The schedule is a six-field cron expression.
func NewPendingOrdersDigestJob(
	ordersHandler queries.GetOrdersByStatusQueryHandler,
	adminIDs []int64,
	notifier ports.Notifier,
	schedule string,
	logger *slog.Logger,
) *PendingOrdersDigestJob {
	return &PendingOrdersDigestJob{
		ordersHandler: ordersHandler,
		adminIDs:      adminIDs,
		notifier:      notifier,
		schedule:      schedule,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "pending_orders_digest_job"),
	}
}

// Start begins the digest job on the configured schedule.
func (j *PendingOrdersDigestJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		if err := j.sendDigest(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Pending orders digest job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending orders digest job started", "schedule", j.schedule)
	return nil
}

// Stop stops the digest job.
func (j *PendingOrdersDigestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending orders digest job stopped")
}

func (j *PendingOrdersDigestJob) sendDigest(ctx context.Context) error {
	query, err := queries.NewGetOrdersByStatusQuery(order.StatusNew)
	if err != nil {
		return err
	}

	pending, err := j.ordersHandler.Handle(ctx, query)
	if err != nil {
		return err
	}

	if len(pending) == 0 {
		return nil
	}

	text := renderDigest(pending)
	for _, adminID := range j.adminIDs {
		result := j.notifier.Notify(ctx, adminID, text)
		if !result.Delivered {
			j.logger.WarnContext(ctx, "Failed to deliver pending orders digest",
				"recipientID", adminID, "error", result.Err)
		}
	}

	return nil
}

func renderDigest(pending []queries.OrderResponse) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d order(s) waiting for review:\n", len(pending)))
	for _, o := range pending {
		sb.WriteString(fmt.Sprintf("#%d %s, budget %s %s\n",
			o.ID, o.Category.String(), o.Budget, o.Currency.String()))
	}
	return strings.TrimRight(sb.String(), "\n")
}
