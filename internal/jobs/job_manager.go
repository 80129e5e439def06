package jobs

import (
	"fmt"
	"log/slog"

	"procurement/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingApprovalDigestJob *PendingApprovalDigestJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *JobManager {
	return &JobManager{
		pendingApprovalDigestJob: NewPendingApprovalDigestJob(uowFactory, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingApprovalDigestJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending approval digest job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingApprovalDigestJob.Stop()
}
