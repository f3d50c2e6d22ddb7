package queries

import (
	"context"
	"time"

	"paneltrack/internal/core/application/progress"
	"paneltrack/internal/core/domain/model/order"
	"paneltrack/internal/core/ports"
	"paneltrack/internal/pkg/errs"
)

// GetOrderProgressQueryHandler serves order progress statistics. Cache hits
// are returned as-is; on a miss the statistics are recomputed from the
// order's panels and stored back, so repeated polls stay cheap.
type GetOrderProgressQueryHandler struct {
	aggregator *progress.Aggregator
	orderRepo  ports.OrderRepository
	panelRepo  ports.PanelRepository
}

// NewGetOrderProgressQueryHandler creates a handler backed by the progress
// cache and the read-side repositories.
func NewGetOrderProgressQueryHandler(
	aggregator *progress.Aggregator,
	orderRepo ports.OrderRepository,
	panelRepo ports.PanelRepository,
) (GetOrderProgressQueryHandler, error) {
	if aggregator == nil {
		return GetOrderProgressQueryHandler{}, errs.NewValueIsRequiredError("aggregator")
	}
	if orderRepo == nil {
		return GetOrderProgressQueryHandler{}, errs.NewValueIsRequiredError("orderRepo")
	}
	if panelRepo == nil {
		return GetOrderProgressQueryHandler{}, errs.NewValueIsRequiredError("panelRepo")
	}

	return GetOrderProgressQueryHandler{
		aggregator: aggregator,
		orderRepo:  orderRepo,
		panelRepo:  panelRepo,
	}, nil
}

// Handle returns the order's statistics, recomputing them on a cache miss.
func (h GetOrderProgressQueryHandler) Handle(
	ctx context.Context,
	query GetOrderProgressQuery,
) (order.Statistics, error) {
	if err := query.Validate(); err != nil {
		return order.Statistics{}, err
	}

	if stats, ok := h.aggregator.Lookup(ctx, query.OrderID().String()); ok {
		return stats, nil
	}

	aggregate, err := h.orderRepo.Get(ctx, query.OrderID())
	if err != nil {
		return order.Statistics{}, err
	}

	panels, err := h.panelRepo.GetAllByOrder(ctx, query.OrderID())
	if err != nil {
		return order.Statistics{}, err
	}

	stats, err := progress.Compute(aggregate, panels, time.Now().UTC())
	if err != nil {
		return order.Statistics{}, err
	}

	// A failed store only costs the next caller a recompute.
	_ = h.aggregator.Store(ctx, stats)

	return stats, nil
}
