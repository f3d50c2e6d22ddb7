package queries

import (
	"context"
	"errors"
	"time"

	"paneltrack/internal/core/application/progress"
	"paneltrack/internal/core/domain/model/order"
	"paneltrack/internal/core/domain/model/pallet"
	"paneltrack/internal/core/domain/model/panel"
	"paneltrack/internal/core/domain/model/rules"
	"paneltrack/internal/core/domain/services"
	"paneltrack/internal/core/ports"
	"paneltrack/internal/pkg/errs"
)

const defaultRetryDelay = 100 * time.Millisecond

// AssessClosureReadinessQueryHandler loads an order's fresh state and runs
// the readiness rules against it. The load is read-only and idempotent, so
// a transient storage failure is retried once after a short delay. Domain
// errors such as an unknown order are never retried.
type AssessClosureReadinessQueryHandler struct {
	orderRepo  ports.OrderRepository
	panelRepo  ports.PanelRepository
	palletRepo ports.PalletRepository
	rulesRepo  ports.RuleSetRepository
	assessor   services.ReadinessAssessor
	retryDelay time.Duration
}

// NewAssessClosureReadinessQueryHandler creates a handler wired to the
// read-side repositories.
func NewAssessClosureReadinessQueryHandler(
	orderRepo ports.OrderRepository,
	panelRepo ports.PanelRepository,
	palletRepo ports.PalletRepository,
	rulesRepo ports.RuleSetRepository,
	assessor services.ReadinessAssessor,
) (AssessClosureReadinessQueryHandler, error) {
	if orderRepo == nil {
		return AssessClosureReadinessQueryHandler{}, errs.NewValueIsRequiredError("orderRepo")
	}
	if panelRepo == nil {
		return AssessClosureReadinessQueryHandler{}, errs.NewValueIsRequiredError("panelRepo")
	}
	if palletRepo == nil {
		return AssessClosureReadinessQueryHandler{}, errs.NewValueIsRequiredError("palletRepo")
	}
	if rulesRepo == nil {
		return AssessClosureReadinessQueryHandler{}, errs.NewValueIsRequiredError("rulesRepo")
	}

	return AssessClosureReadinessQueryHandler{
		orderRepo:  orderRepo,
		panelRepo:  panelRepo,
		palletRepo: palletRepo,
		rulesRepo:  rulesRepo,
		assessor:   assessor,
		retryDelay: defaultRetryDelay,
	}, nil
}

// Handle assesses closure readiness for the queried order.
func (h AssessClosureReadinessQueryHandler) Handle(
	ctx context.Context,
	query AssessClosureReadinessQuery,
) (AssessClosureReadinessQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AssessClosureReadinessQueryResponse{}, err
	}

	snapshot, err := h.load(ctx, query)
	if err != nil && isTransient(err) {
		select {
		case <-time.After(h.retryDelay):
		case <-ctx.Done():
			return AssessClosureReadinessQueryResponse{}, ctx.Err()
		}
		snapshot, err = h.load(ctx, query)
	}
	if err != nil {
		return AssessClosureReadinessQueryResponse{}, err
	}

	now := time.Now().UTC()
	stats, err := progress.Compute(snapshot.order, snapshot.panels, now)
	if err != nil {
		return AssessClosureReadinessQueryResponse{}, err
	}

	readiness, err := h.assessor.Assess(snapshot.ruleSet, stats, palletState(snapshot.pallets), now)
	if err != nil {
		return AssessClosureReadinessQueryResponse{}, err
	}

	return AssessClosureReadinessQueryResponse{
		OrderNumber: snapshot.order.OrderNumber(),
		IsReady:     readiness.IsReady,
		Percentage:  readiness.Percentage,
		Blockers:    readiness.Blockers,
		RuleVersion: snapshot.ruleSet.Version(),
		Statistics:  stats,
	}, nil
}

type readinessSnapshot struct {
	order   *order.Order
	panels  []*panel.Panel
	pallets []*pallet.Pallet
	ruleSet rules.ClosureRuleSet
}

func (h AssessClosureReadinessQueryHandler) load(
	ctx context.Context,
	query AssessClosureReadinessQuery,
) (readinessSnapshot, error) {
	aggregate, err := h.orderRepo.Get(ctx, query.OrderID())
	if err != nil {
		return readinessSnapshot{}, err
	}

	panels, err := h.panelRepo.GetAllByOrder(ctx, query.OrderID())
	if err != nil {
		return readinessSnapshot{}, err
	}

	pallets, err := h.palletRepo.GetAllByOrder(ctx, query.OrderID())
	if err != nil {
		return readinessSnapshot{}, err
	}

	ruleSet, err := h.rulesRepo.GetCurrent(ctx)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if !errors.As(err, &notFound) {
			return readinessSnapshot{}, err
		}
		ruleSet = rules.DefaultRuleSet()
	}

	return readinessSnapshot{
		order:   aggregate,
		panels:  panels,
		pallets: pallets,
		ruleSet: ruleSet,
	}, nil
}

// isTransient reports whether a load failure is worth one retry. Domain
// errors and context cancellation are final.
func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return false
	}

	return !errors.Is(err, errs.ErrValueIsRequired) &&
		!errors.Is(err, errs.ErrValueIsInvalid) &&
		!errors.Is(err, errs.ErrValueIsOutOfRange)
}

func palletState(pallets []*pallet.Pallet) services.PalletFinalization {
	for _, p := range pallets {
		if !p.IsFinalized() {
			return services.PalletsPending
		}
	}
	return services.PalletsFinalized
}
