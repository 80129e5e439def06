package jobs

import (
	"context"
	"log/slog"

	"procurement/internal/core/domain/services"
	"procurement/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// PendingApprovalDigestJob logs a daily digest of orders waiting for an
// approval decision. The digest surfaces the backlog to team leads without
// sending any notifications.
type PendingApprovalDigestJob struct {
	uowFactory ports.UnitOfWorkFactory
	aggregator services.StatisticsAggregator
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewPendingApprovalDigestJob creates a new digest job backed by the given
// unit of work factory.
func NewPendingApprovalDigestJob(uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *PendingApprovalDigestJob {
	return &PendingApprovalDigestJob{
		uowFactory: uowFactory,
		aggregator: services.NewStatisticsAggregator(),
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "pending_approval_digest_job"),
	}
}

// Start schedules the digest to run every day at 09:00 UTC.
func (j *PendingApprovalDigestJob) Start() error {
	_, err := j.cron.AddFunc("0 0 9 * * *", func() {
		ctx := context.Background()

		orders, err := j.uowFactory.Create().PurchaseRepository().GetAllActive(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending approval digest failed", "error", err)
			return
		}

		stats := j.aggregator.Aggregate(orders)
		j.logger.InfoContext(ctx, "Pending approval digest",
			"total_orders", stats.TotalOrders,
			"pending_approval", stats.PendingApproval,
			"approved", stats.ApprovedOrders,
			"total_value", stats.TotalValue.String(),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending approval digest job started (daily at 09:00 UTC)")
	return nil
}

// Stop stops the digest job.
func (j *PendingApprovalDigestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending approval digest job stopped")
}
