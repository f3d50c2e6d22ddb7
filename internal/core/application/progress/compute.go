// Package progress computes and caches per-order progress statistics.
//
// Compute is the single source of truth for the numbers; it is pure and is
// called directly inside closure transactions so closure decisions never
// trust a cache. The Aggregator wraps Compute's output with an explicit
// invalidation cache for read paths that tolerate slightly stale data.
package progress

import (
	"time"

	"paneltrack/internal/core/domain/model/order"
	"paneltrack/internal/core/domain/model/panel"
)

// Compute derives the progress statistics of an order from its panels.
// Completion percentage is measured against the order's target quantity,
// not against the scanned count.
func Compute(o *order.Order, panels []*panel.Panel, now time.Time) (order.Statistics, error) {
	if err := o.Validate(); err != nil {
		return order.Statistics{}, err
	}

	stats := order.Statistics{
		OrderID:        o.ID().String(),
		OrderNumber:    o.OrderNumber(),
		TargetQuantity: o.TargetQuantity(),
		ScannedPanels:  len(panels),
		ComputedAt:     now,
	}

	var totalProcessing time.Duration
	var lastActivity time.Time

	for _, p := range panels {
		if err := p.Validate(); err != nil {
			return order.Statistics{}, err
		}

		switch p.State().Phase() {
		case panel.PhaseCompleted:
			stats.CompletedPanels++
			totalProcessing += p.UpdatedAt().Sub(p.CreatedAt())
		case panel.PhaseInProgress:
			stats.InProgressPanels++
		case panel.PhaseFailed:
			stats.FailedPanels++
		default:
			stats.PendingPanels++
		}

		if p.UpdatedAt().After(lastActivity) {
			lastActivity = p.UpdatedAt()
		}
	}

	if stats.TargetQuantity > 0 {
		stats.CompletionPercent = float64(stats.CompletedPanels) / float64(stats.TargetQuantity) * 100
	}
	if stats.ScannedPanels > 0 {
		stats.FailureRatePercent = float64(stats.FailedPanels) / float64(stats.ScannedPanels) * 100
	}
	if stats.CompletedPanels > 0 {
		stats.AvgProcessingSeconds = totalProcessing.Seconds() / float64(stats.CompletedPanels)
	}
	if !lastActivity.IsZero() {
		stats.LastActivityAt = &lastActivity
	}

	return stats, nil
}
