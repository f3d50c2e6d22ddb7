package commands

import (
	"context"
)

// ReworkPanelCommandHandler handles the operator decision to rework a
// failed or quarantined panel.
type ReworkPanelCommandHandler struct {
	uowFactory  PanelUoWFactory
	invalidator ProgressInvalidator
}

// NewReworkPanelCommandHandler creates a handler for rework decisions.
func NewReworkPanelCommandHandler(
	uowFactory PanelUoWFactory,
	invalidator ProgressInvalidator,
) ReworkPanelCommandHandler {
	return ReworkPanelCommandHandler{
		uowFactory:  uowFactory,
		invalidator: invalidator,
	}
}

// Handle moves the panel to Rework at the requested re-entry station.
func (h *ReworkPanelCommandHandler) Handle(ctx context.Context, cmd ReworkPanelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.PanelRepository().Get(ctx, cmd.PanelID())
	if err != nil {
		return err
	}

	if err = aggregate.StartRework(cmd.ReentryOrdinal(), cmd.ReworkAt()); err != nil {
		return err
	}

	if err = uow.PanelRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.invalidator.Invalidate(ctx, aggregate.OrderID().String())
}
