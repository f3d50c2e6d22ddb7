package commands

import (
	"context"
	"time"

	"paneltrack/internal/core/application/progress"
	"paneltrack/internal/core/domain/model/audit"
	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/order"
	"paneltrack/internal/pkg/errs"
)

// RollbackClosureResult is returned to the caller after a successful rollback.
type RollbackClosureResult struct {
	OrderNumber    string
	RestoredStatus order.Status
}

// RollbackClosureCommandHandler is the rollback handler. It locates the
// most recent closure record that no rollback reverses, restores the order
// to its pre-closure status and writes a compensating audit record
// referencing the reversed closure, all in one transaction.
//
// Each closure event can be rolled back exactly once: after the rollback
// commits, the closure record is reversed and will not be located again.
type RollbackClosureCommandHandler struct {
	uowFactory  RollbackUoWFactory
	invalidator ProgressInvalidator
}

// NewRollbackClosureCommandHandler creates the rollback handler.
func NewRollbackClosureCommandHandler(
	uowFactory RollbackUoWFactory,
	invalidator ProgressInvalidator,
) RollbackClosureCommandHandler {
	return RollbackClosureCommandHandler{
		uowFactory:  uowFactory,
		invalidator: invalidator,
	}
}

// Handle executes the rollback. A rollback on a non-completed order fails
// with NotCompletedError and mutates nothing.
func (h *RollbackClosureCommandHandler) Handle(
	ctx context.Context,
	cmd RollbackClosureCommand,
) (RollbackClosureResult, error) {
	if err := cmd.Validate(); err != nil {
		return RollbackClosureResult{}, err
	}
	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RollbackClosureResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return RollbackClosureResult{}, err
	}
	if aggregate.Status() != order.Completed {
		return RollbackClosureResult{}, errs.NewNotCompletedError(
			aggregate.ID().String(), aggregate.Status().String())
	}

	closure, err := uow.AuditRepository().GetLatestClosure(ctx, cmd.OrderID())
	if err != nil {
		return RollbackClosureResult{}, err
	}

	restored := closure.PriorStatus()
	if err = aggregate.Reopen(restored); err != nil {
		return RollbackClosureResult{}, err
	}

	panels, err := uow.PanelRepository().GetAllByOrder(ctx, cmd.OrderID())
	if err != nil {
		return RollbackClosureResult{}, err
	}
	stats, err := progress.Compute(aggregate, panels, now)
	if err != nil {
		return RollbackClosureResult{}, err
	}

	record, err := audit.NewRollbackRecord(
		kernel.NewUUID(),
		aggregate.ID(),
		cmd.ActorID(),
		closure.ID(),
		closure.RuleVersion(),
		restored,
		cmd.Reason(),
		stats,
		now,
	)
	if err != nil {
		return RollbackClosureResult{}, err
	}
	if err = uow.AuditRepository().Append(ctx, record); err != nil {
		return RollbackClosureResult{}, err
	}

	if err = uow.OrderRepository().UpdateStatusGuarded(ctx, aggregate, order.Completed); err != nil {
		return RollbackClosureResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RollbackClosureResult{}, err
	}

	if err = h.invalidator.Invalidate(ctx, aggregate.ID().String()); err != nil {
		return RollbackClosureResult{}, err
	}

	return RollbackClosureResult{
		OrderNumber:    aggregate.OrderNumber(),
		RestoredStatus: restored,
	}, nil
}
