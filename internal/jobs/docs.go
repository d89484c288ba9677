// Package jobs provides scheduled background tasks for the order backend.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through
// JobManager, which starts and stops them as a unit:
//
//	jobManager := jobs.NewJobManager(unbilledOrdersHandler, createInvoiceHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// InvoiceIssuingJob runs every minute and issues a default Unpaid invoice
// for each Delivered order that has none yet. Already-billed orders are
// skipped, so the job is idempotent across runs.
package jobs
