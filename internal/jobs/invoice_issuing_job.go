package jobs

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"ecom/internal/core/application/usecases/commands"
	"ecom/internal/core/application/usecases/queries"
	"ecom/internal/core/domain/model/invoice"
	"ecom/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// InvoiceIssuingJob issues default invoices for delivered orders that have
// none yet. Runs every minute.
type InvoiceIssuingJob struct {
	unbilledOrdersHandler queries.UnbilledDeliveredOrdersQueryHandler
	createInvoiceHandler  commands.CreateInvoiceCommandHandler
	cron                  *cron.Cron
	logger                *slog.Logger
}

// NewInvoiceIssuingJob creates the invoice issuing job.
func NewInvoiceIssuingJob(
	unbilledOrdersHandler queries.UnbilledDeliveredOrdersQueryHandler,
	createInvoiceHandler commands.CreateInvoiceCommandHandler,
	logger *slog.Logger,
) *InvoiceIssuingJob {
	return &InvoiceIssuingJob{
		unbilledOrdersHandler: unbilledOrdersHandler,
		createInvoiceHandler:  createInvoiceHandler,
		cron:                  cron.New(cron.WithSeconds()),
		logger:                logger.With("component", "invoice_issuing_job"),
	}
}

// Start begins the job, running at the top of every minute.
func (j *InvoiceIssuingJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		j.run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Invoice issuing job started (running every minute)")
	return nil
}

// Stop stops the job.
func (j *InvoiceIssuingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Invoice issuing job stopped")
}

func (j *InvoiceIssuingJob) run(ctx context.Context) {
	unbilled, err := j.unbilledOrdersHandler.Handle(ctx, queries.NewUnbilledDeliveredOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list unbilled delivered orders", "error", err)
		return
	}

	for _, o := range unbilled {
		cmd, err := commands.NewCreateInvoiceCommand(
			defaultInvoiceNumber(o.OrderNumber),
			o.CustomerName,
			time.Now().UTC(),
			o.Amount,
			invoice.StatusUnpaid,
			&o.ID,
		)
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build invoice command",
				"orderNumber", o.OrderNumber, "error", err)
			continue
		}

		if _, err := j.createInvoiceHandler.Handle(ctx, cmd); err != nil {
			// A concurrent run may have billed the order already.
			if errors.Is(err, errs.ErrObjectAlreadyExists) {
				continue
			}
			j.logger.ErrorContext(ctx, "Failed to issue invoice",
				"orderNumber", o.OrderNumber, "error", err)
			continue
		}

		j.logger.InfoContext(ctx, "Issued default invoice",
			"orderNumber", o.OrderNumber, "amount", o.Amount)
	}
}

// defaultInvoiceNumber derives "INV-00042" from "ORD-00042".
func defaultInvoiceNumber(orderNumber string) string {
	return "INV-" + strings.TrimPrefix(orderNumber, "ORD-")
}
