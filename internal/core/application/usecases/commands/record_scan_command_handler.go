package commands

import (
	"context"

	"paneltrack/internal/core/domain/model/order"
	"paneltrack/internal/core/domain/model/panel"
)

// RecordScanCommandHandler handles panel intake. A scan against an unknown
// order is rejected; the first scan of an Open order moves it to InProgress.
// The created panel is validated immediately, so it leaves the handler in
// the Validated state, ready for its first station.
type RecordScanCommandHandler struct {
	uowFactory  ScanUoWFactory
	invalidator ProgressInvalidator
}

// NewRecordScanCommandHandler creates a handler for panel intake.
func NewRecordScanCommandHandler(
	uowFactory ScanUoWFactory,
	invalidator ProgressInvalidator,
) RecordScanCommandHandler {
	return RecordScanCommandHandler{
		uowFactory:  uowFactory,
		invalidator: invalidator,
	}
}

// Handle processes the scan command. The panel and any order status change
// commit atomically; the progress cache entry is dropped after commit.
func (h *RecordScanCommandHandler) Handle(ctx context.Context, cmd RecordScanCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if aggregate.Status() == order.Open {
		if err = aggregate.Start(); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return err
		}
	}

	newPanel, err := panel.NewPanel(cmd.PanelID(), cmd.Barcode(), cmd.OrderID(), cmd.ScannedAt())
	if err != nil {
		return err
	}
	if err = newPanel.MarkValidated(cmd.ScannedAt()); err != nil {
		return err
	}

	if err = uow.PanelRepository().Add(ctx, newPanel); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.invalidator.Invalidate(ctx, cmd.OrderID().String())
}
