package commands

import (
	"context"
	"fmt"

	"paneltrack/internal/core/domain/model/panel"
	"paneltrack/internal/core/domain/model/station"
	"paneltrack/internal/core/domain/services"
	"paneltrack/internal/pkg/errs"
)

// RecordInspectionCommandHandler drives the panel state machine. Every
// inspection is appended to the audit of the panel; a pass additionally
// moves the panel forward through the station gate, a fail routes it to
// Failed, a conditional routes it to Quarantined unless overridden.
//
// A pass at the last station of the sequence completes the panel, which
// requires the flash-test measurements and increments the owning order's
// completed count in the same transaction.
type RecordInspectionCommandHandler struct {
	uowFactory  InspectionUoWFactory
	gate        services.StationGate
	invalidator ProgressInvalidator
}

// NewRecordInspectionCommandHandler creates a handler for inspection recording.
func NewRecordInspectionCommandHandler(
	uowFactory InspectionUoWFactory,
	gate services.StationGate,
	invalidator ProgressInvalidator,
) RecordInspectionCommandHandler {
	return RecordInspectionCommandHandler{
		uowFactory:  uowFactory,
		gate:        gate,
		invalidator: invalidator,
	}
}

// Handle processes one inspection result. All effects commit atomically;
// a sequence violation rejects the inspection without writing anything.
func (h *RecordInspectionCommandHandler) Handle(ctx context.Context, cmd RecordInspectionCommand) error {
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

	seq, err := station.DefaultSequence(aggregate.Barcode().Line())
	if err != nil {
		return err
	}

	effective := cmd.Result()
	if effective == panel.ResultConditional && cmd.ConditionalOverride() {
		effective = panel.ResultPass
	}

	switch effective {
	case panel.ResultPass:
		if err = h.handlePass(ctx, uow, aggregate, seq, cmd); err != nil {
			return err
		}
	case panel.ResultFail:
		if err = h.appendInspection(ctx, uow, cmd); err != nil {
			return err
		}
		if err = aggregate.Fail(cmd.Notes(), cmd.RecordedAt()); err != nil {
			return err
		}
	case panel.ResultConditional:
		if err = h.appendInspection(ctx, uow, cmd); err != nil {
			return err
		}
		reason := cmd.Notes()
		if reason == "" {
			reason = fmt.Sprintf("conditional inspection at station %d", cmd.StationOrdinal())
		}
		if err = aggregate.Quarantine(reason, cmd.RecordedAt()); err != nil {
			return err
		}
	default:
		return errs.NewValueIsInvalidErrorWithCause("result",
			fmt.Errorf("%s cannot be applied to a panel", effective))
	}

	if err = uow.PanelRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.invalidator.Invalidate(ctx, aggregate.OrderID().String())
}

// handlePass advances the panel one station; at the terminal station the
// panel completes and the owning order's completed count moves with it.
func (h *RecordInspectionCommandHandler) handlePass(
	ctx context.Context,
	uow InspectionUoW,
	aggregate *panel.Panel,
	seq station.Sequence,
	cmd RecordInspectionCommand,
) error {
	if err := h.gate.Authorize(aggregate, seq, cmd.StationOrdinal()); err != nil {
		return err
	}

	if err := h.appendInspection(ctx, uow, cmd); err != nil {
		return err
	}

	if err := aggregate.RecordStationPass(cmd.StationOrdinal(), cmd.RecordedAt()); err != nil {
		return err
	}

	if !seq.IsTerminal(cmd.StationOrdinal()) {
		return nil
	}

	if cmd.Measurements() == nil {
		return errs.NewValueIsRequiredError("measurements are required at the final station")
	}
	if err := aggregate.Complete(*cmd.Measurements(), seq.Len(), cmd.RecordedAt()); err != nil {
		return err
	}

	// The increment runs guarded in SQL; loading the order and writing it
	// back would lose one of two concurrent final-station passes.
	return uow.OrderRepository().RegisterCompletedPanel(ctx, aggregate.OrderID())
}

func (h *RecordInspectionCommandHandler) appendInspection(
	ctx context.Context,
	uow InspectionUoW,
	cmd RecordInspectionCommand,
) error {
	inspection, err := panel.NewInspection(
		cmd.InspectionID(),
		cmd.PanelID(),
		cmd.StationOrdinal(),
		cmd.InspectorID(),
		cmd.Result(),
		cmd.Notes(),
		cmd.RecordedAt(),
	)
	if err != nil {
		return err
	}
	return uow.InspectionRepository().Append(ctx, inspection)
}
