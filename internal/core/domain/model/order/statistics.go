package order

import "time"

// Statistics is the progress read model for one manufacturing order,
// computed from the phases of its panels. Completion percentage is
// completed divided by target, not by scanned, so an order does not look
// better merely because fewer panels were scanned against it.
type Statistics struct {
	OrderID        string
	OrderNumber    string
	TargetQuantity int

	ScannedPanels    int
	CompletedPanels  int
	InProgressPanels int
	PendingPanels    int
	FailedPanels     int

	// CompletionPercent is CompletedPanels / TargetQuantity * 100.
	CompletionPercent float64

	// FailureRatePercent is FailedPanels / ScannedPanels * 100,
	// zero when nothing has been scanned.
	FailureRatePercent float64

	// AvgProcessingSeconds is the mean first-scan-to-completion duration
	// over completed panels, zero when none have completed.
	AvgProcessingSeconds float64

	// LastActivityAt is the most recent panel state change,
	// nil when no panel has been scanned.
	LastActivityAt *time.Time

	// ComputedAt is when this snapshot was taken.
	ComputedAt time.Time
}
