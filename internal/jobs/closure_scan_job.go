package jobs

import (
	"context"
	"errors"
	"log/slog"

	"paneltrack/internal/core/application/usecases/commands"
	"paneltrack/internal/core/domain/model/audit"
	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/order"
	"paneltrack/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// systemActorID identifies the scheduler in audit records written by
// automatic closures, distinguishing them from operator-initiated ones.
const systemActorID = "00000000-0000-4000-8000-000000000001"

// OrderLister lists the orders the scan considers for automatic closure.
type OrderLister interface {
	GetAllInProgress(ctx context.Context) ([]*order.Order, error)
}

// ClosureScanJob manages the scheduled closure of manufacturing orders.
// Runs every minute, attempting closure for each in-progress order; the
// closure command itself re-checks readiness inside its transaction, so the
// scan stays correct even when two instances run it at once.
type ClosureScanJob struct {
	handler commands.CloseOrderCommandHandler
	lister  OrderLister
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewClosureScanJob creates a new job for automatic order closure.
func NewClosureScanJob(
	handler commands.CloseOrderCommandHandler,
	lister OrderLister,
	logger *slog.Logger,
) *ClosureScanJob {
	return &ClosureScanJob{
		handler: handler,
		lister:  lister,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "closure_scan_job"),
	}
}

// Start begins the closure scan job to run every minute.
func (j *ClosureScanJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		j.scan(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Closure scan job started (running every minute)")
	return nil
}

// Stop stops the closure scan job.
func (j *ClosureScanJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Closure scan job stopped")
}

// scan attempts an automatic closure for every in-progress order.
func (j *ClosureScanJob) scan(ctx context.Context) {
	orders, err := j.lister.GetAllInProgress(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Closure scan failed to list orders", "error", err)
		return
	}

	actor, err := kernel.UUIDFromString(systemActorID)
	if err != nil {
		j.logger.ErrorContext(ctx, "Closure scan has an invalid system actor", "error", err)
		return
	}

	for _, candidate := range orders {
		cmd, cmdErr := commands.NewCloseOrderCommand(
			candidate.ID(), actor, audit.KindAutomaticClose, "", commands.ClosureOptions{})
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Closure scan built an invalid command",
				"orderID", candidate.ID().String(), "error", cmdErr)
			continue
		}

		result, closeErr := j.handler.Handle(ctx, cmd)
		if closeErr != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(closeErr, errs.ErrNotReady) &&
				!errors.Is(closeErr, errs.ErrAlreadyClosed) &&
				!errors.Is(closeErr, errs.ErrConcurrentModification) {
				j.logger.ErrorContext(ctx, "Closure scan failed to close order",
					"orderID", candidate.ID().String(), "error", closeErr)
			}
			continue
		}

		j.logger.InfoContext(ctx, "Order closed automatically",
			"orderID", candidate.ID().String(),
			"orderNumber", result.OrderNumber,
			"completedPanels", result.FinalStatistics.CompletedPanels)
	}
}
