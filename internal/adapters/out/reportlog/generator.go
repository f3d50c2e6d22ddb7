// Package reportlog emits closure reports into the structured log. It
// stands in for a document pipeline; the closure handler only needs the
// generation acknowledged before the transaction result is returned.
package reportlog

import (
	"context"
	"log/slog"

	"paneltrack/internal/core/domain/model/order"
)

// Generator implements the closure report port on the process logger.
type Generator struct {
	logger *slog.Logger
}

// NewGenerator creates a log-backed report generator.
func NewGenerator(logger *slog.Logger) *Generator {
	return &Generator{logger: logger.With("component", "closure_report")}
}

// Generate renders the final statistics snapshot as one report entry.
func (g *Generator) Generate(ctx context.Context, stats order.Statistics) error {
	g.logger.InfoContext(ctx, "Closure report generated",
		"orderID", stats.OrderID,
		"orderNumber", stats.OrderNumber,
		"targetQuantity", stats.TargetQuantity,
		"scannedPanels", stats.ScannedPanels,
		"completedPanels", stats.CompletedPanels,
		"failedPanels", stats.FailedPanels,
		"completionPercent", stats.CompletionPercent,
		"failureRatePercent", stats.FailureRatePercent,
		"avgProcessingSeconds", stats.AvgProcessingSeconds)
	return nil
}
