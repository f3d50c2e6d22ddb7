package commands

import (
	"context"
	"errors"

	"paneltrack/internal/core/domain/model/rules"
	"paneltrack/internal/pkg/errs"
)

// UpdateClosureRulesCommandHandler persists rule set amendments. The first
// amendment amends the factory default; every later one amends the stored
// current version.
type UpdateClosureRulesCommandHandler struct {
	uowFactory RulesUoWFactory
}

// NewUpdateClosureRulesCommandHandler creates a handler for rule amendments.
func NewUpdateClosureRulesCommandHandler(uowFactory RulesUoWFactory) UpdateClosureRulesCommandHandler {
	return UpdateClosureRulesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the thresholds and stores the next rule set version.
// Returns the version number now in force.
func (h *UpdateClosureRulesCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateClosureRulesCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	base, err := uow.RuleSetRepository().GetCurrent(ctx)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if !errors.As(err, &notFound) {
			return 0, err
		}
		base = rules.DefaultRuleSet()
	}

	next, err := base.Amend(
		cmd.MinCompletionPercent(),
		cmd.MaxFailureRatePercent(),
		cmd.MinPanelsForClosure(),
		cmd.MaxIdleHours(),
		cmd.RequirePalletFinalization(),
	)
	if err != nil {
		return 0, err
	}

	if err = uow.RuleSetRepository().Add(ctx, next); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return next.Version(), nil
}
