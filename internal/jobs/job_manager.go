package jobs

import (
	"fmt"
	"log/slog"

	"ecom/internal/core/application/usecases/commands"
	"ecom/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	invoiceIssuingJob *InvoiceIssuingJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	unbilledOrdersHandler queries.UnbilledDeliveredOrdersQueryHandler,
	createInvoiceHandler commands.CreateInvoiceCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		invoiceIssuingJob: NewInvoiceIssuingJob(unbilledOrdersHandler, createInvoiceHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.invoiceIssuingJob.Start(); err != nil {
		return fmt.Errorf("failed to start invoice issuing job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.invoiceIssuingJob.Stop()
}
