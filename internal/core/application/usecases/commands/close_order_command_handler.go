package commands

import (
	"context"
	"errors"
	"time"

	"paneltrack/internal/core/application/progress"
	"paneltrack/internal/core/domain/model/audit"
	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/order"
	"paneltrack/internal/core/domain/model/pallet"
	"paneltrack/internal/core/domain/model/rules"
	"paneltrack/internal/core/domain/services"
	"paneltrack/internal/pkg/errs"
)

// CloseOrderResult is returned to the caller after a successful closure.
type CloseOrderResult struct {
	OrderNumber      string
	FinalStatistics  order.Statistics
	PalletsFinalized int
	ReportGenerated  bool
}

// CloseOrderCommandHandler is the closure executor. The whole closure runs
// in one transaction: readiness gate, pallet finalization, statistics
// snapshot, audit record and the status flip either all commit or none do.
//
// The status flip uses a guarded update conditioned on the pre-closure
// status, so of two concurrent closures exactly one commits; the loser
// fails with a ConcurrentModificationError and writes nothing.
type CloseOrderCommandHandler struct {
	uowFactory  ClosureUoWFactory
	assessor    services.ReadinessAssessor
	invalidator ProgressInvalidator
	reports     ReportGenerator
}

// NewCloseOrderCommandHandler creates the closure executor. reports may be
// nil when no report collaborator is configured.
func NewCloseOrderCommandHandler(
	uowFactory ClosureUoWFactory,
	assessor services.ReadinessAssessor,
	invalidator ProgressInvalidator,
	reports ReportGenerator,
) CloseOrderCommandHandler {
	return CloseOrderCommandHandler{
		uowFactory:  uowFactory,
		assessor:    assessor,
		invalidator: invalidator,
		reports:     reports,
	}
}

// Handle executes the closure. Closing an already completed order fails
// with AlreadyClosedError; an unready order fails with NotReadyError
// carrying the blockers unless forced. Neither failure mutates state.
func (h *CloseOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CloseOrderCommand,
) (CloseOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CloseOrderResult{}, err
	}
	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CloseOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return CloseOrderResult{}, err
	}
	if aggregate.Status() == order.Completed {
		return CloseOrderResult{}, errs.NewAlreadyClosedError(aggregate.ID().String())
	}

	ruleSet, err := h.currentRules(ctx, uow)
	if err != nil {
		return CloseOrderResult{}, err
	}

	panels, err := uow.PanelRepository().GetAllByOrder(ctx, cmd.OrderID())
	if err != nil {
		return CloseOrderResult{}, err
	}
	stats, err := progress.Compute(aggregate, panels, now)
	if err != nil {
		return CloseOrderResult{}, err
	}

	pallets, err := uow.PalletRepository().GetAllByOrder(ctx, cmd.OrderID())
	if err != nil {
		return CloseOrderResult{}, err
	}

	opts := cmd.Options()
	if !opts.SkipValidation {
		readiness, assessErr := h.assessor.Assess(ruleSet, stats, palletState(pallets), now)
		if assessErr != nil {
			return CloseOrderResult{}, assessErr
		}
		if !readiness.IsReady && !opts.Force {
			return CloseOrderResult{}, errs.NewNotReadyError(
				aggregate.ID().String(), readiness.Percentage, readiness.BlockerStrings())
		}
	}

	finalized := 0
	if opts.FinalizePallets {
		if finalized, err = h.finalizePallets(ctx, uow, pallets); err != nil {
			return CloseOrderResult{}, err
		}
	}

	priorStatus := aggregate.Status()
	if err = aggregate.Close(opts.Force, now); err != nil {
		return CloseOrderResult{}, err
	}

	record, err := audit.NewClosureRecord(
		kernel.NewUUID(),
		aggregate.ID(),
		cmd.Kind(),
		cmd.ActorID(),
		opts.Force,
		ruleSet.Version(),
		priorStatus,
		cmd.Reason(),
		stats,
		now,
	)
	if err != nil {
		return CloseOrderResult{}, err
	}
	if err = uow.AuditRepository().Append(ctx, record); err != nil {
		return CloseOrderResult{}, err
	}

	if err = uow.OrderRepository().UpdateStatusGuarded(ctx, aggregate, priorStatus); err != nil {
		return CloseOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CloseOrderResult{}, err
	}

	if err = h.invalidator.Invalidate(ctx, aggregate.ID().String()); err != nil {
		return CloseOrderResult{}, err
	}

	result := CloseOrderResult{
		OrderNumber:      aggregate.OrderNumber(),
		FinalStatistics:  stats,
		PalletsFinalized: finalized,
	}
	if opts.GenerateReport && h.reports != nil {
		// The closure has already committed; a report failure must not
		// surface as a failed closure. ReportGenerated stays false so the
		// caller can see the report is missing and re-request it.
		if err = h.reports.Generate(ctx, stats); err == nil {
			result.ReportGenerated = true
		}
	}
	return result, nil
}

// currentRules loads the live rule set, falling back to the factory default
// when none has been stored yet.
func (h *CloseOrderCommandHandler) currentRules(
	ctx context.Context,
	uow ClosureUoW,
) (rules.ClosureRuleSet, error) {
	ruleSet, err := uow.RuleSetRepository().GetCurrent(ctx)
	if err == nil {
		return ruleSet, nil
	}
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return rules.DefaultRuleSet(), nil
	}
	return rules.ClosureRuleSet{}, err
}

func (h *CloseOrderCommandHandler) finalizePallets(
	ctx context.Context,
	uow ClosureUoW,
	pallets []*pallet.Pallet,
) (int, error) {
	finalized := 0
	for _, p := range pallets {
		if p.IsFinalized() {
			continue
		}
		if err := p.Finalize(); err != nil {
			return 0, err
		}
		if err := uow.PalletRepository().Update(ctx, p); err != nil {
			return 0, err
		}
		finalized++
	}
	return finalized, nil
}

// palletState maps an order's pallets onto the assessor's view. An order
// without pallets has nothing left to finalize.
func palletState(pallets []*pallet.Pallet) services.PalletFinalization {
	for _, p := range pallets {
		if !p.IsFinalized() {
			return services.PalletsPending
		}
	}
	return services.PalletsFinalized
}
