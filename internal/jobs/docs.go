// Package jobs provides scheduled background tasks for the procurement system.
//
// Jobs are implemented with github.com/robfig/cron/v3 and managed through
// JobManager, which starts and stops them as a group:
//
//	jobManager := jobs.NewJobManager(uowFactory, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// PendingApprovalDigestJob runs once a day and logs how many orders are
// still waiting for an approval decision, along with the total value of the
// active order book. It only observes state; it never mutates orders.
package jobs
