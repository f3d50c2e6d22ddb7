package http

import (
	"time"

	"paneltrack/internal/core/domain/model/order"
	"paneltrack/internal/core/domain/model/panel"
	"paneltrack/internal/pkg/errs"
)

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code     int      `json:"code"`
	Message  string   `json:"message"`
	Blockers []string `json:"blockers,omitempty"`
}

type createOrderRequest struct {
	OrderNumber            string    `json:"orderNumber"`
	TargetQuantity         int       `json:"targetQuantity"`
	StartDate              time.Time `json:"startDate"`
	ExpectedCompletionDate time.Time `json:"expectedCompletionDate"`
}

type createOrderResponse struct {
	ID string `json:"id"`
}

type recordScanRequest struct {
	Barcode   string    `json:"barcode"`
	OrderID   string    `json:"orderId"`
	ScannedAt time.Time `json:"scannedAt"`
}

type recordScanResponse struct {
	PanelID string `json:"panelId"`
}

type measurementsPayload struct {
	PowerWatts   float64 `json:"powerWatts"`
	VoltageVolts float64 `json:"voltageVolts"`
	CurrentAmps  float64 `json:"currentAmps"`
}

type recordInspectionRequest struct {
	PanelID             string               `json:"panelId"`
	StationOrdinal      int                  `json:"stationOrdinal"`
	InspectorID         string               `json:"inspectorId"`
	Result              string               `json:"result"`
	Notes               string               `json:"notes"`
	Measurements        *measurementsPayload `json:"measurements,omitempty"`
	ConditionalOverride bool                 `json:"conditionalOverride"`
	RecordedAt          time.Time            `json:"recordedAt"`
}

type recordInspectionResponse struct {
	InspectionID string `json:"inspectionId"`
}

type reworkPanelRequest struct {
	ReentryOrdinal int       `json:"reentryOrdinal"`
	ReworkAt       time.Time `json:"reworkAt"`
}

type closeOrderRequest struct {
	ActorID         string `json:"actorId"`
	Reason          string `json:"reason"`
	Force           bool   `json:"force"`
	SkipValidation  bool   `json:"skipValidation"`
	GenerateReport  bool   `json:"generateReport"`
	FinalizePallets bool   `json:"finalizePallets"`
}

type closeOrderResponse struct {
	OrderNumber      string            `json:"orderNumber"`
	PalletsFinalized int               `json:"palletsFinalized"`
	ReportGenerated  bool              `json:"reportGenerated"`
	Statistics       statisticsPayload `json:"statistics"`
}

type rollbackClosureRequest struct {
	ActorID string `json:"actorId"`
	Reason  string `json:"reason"`
}

type rollbackClosureResponse struct {
	OrderNumber    string `json:"orderNumber"`
	RestoredStatus string `json:"restoredStatus"`
}

type blockerPayload struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

type readinessResponse struct {
	OrderNumber string            `json:"orderNumber"`
	IsReady     bool              `json:"isReady"`
	Percentage  float64           `json:"percentage"`
	Blockers    []blockerPayload  `json:"blockers"`
	RuleVersion int               `json:"ruleVersion"`
	Statistics  statisticsPayload `json:"statistics"`
}

type auditRecordPayload struct {
	ID               string    `json:"id"`
	Kind             string    `json:"kind"`
	ActorID          string    `json:"actorId"`
	Forced           bool      `json:"forced"`
	RuleVersion      int       `json:"ruleVersion"`
	PriorStatus      string    `json:"priorStatus"`
	Reason           string    `json:"reason,omitempty"`
	ReversesRecordID *string   `json:"reversesRecordId,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

type closureRulesPayload struct {
	Version                   int     `json:"version"`
	MinCompletionPercent      float64 `json:"minCompletionPercent"`
	MaxFailureRatePercent     float64 `json:"maxFailureRatePercent"`
	MinPanelsForClosure       int     `json:"minPanelsForClosure"`
	MaxIdleHours              float64 `json:"maxIdleHours"`
	RequirePalletFinalization bool    `json:"requirePalletFinalization"`
}

type updateRulesRequest struct {
	MinCompletionPercent      float64 `json:"minCompletionPercent"`
	MaxFailureRatePercent     float64 `json:"maxFailureRatePercent"`
	MinPanelsForClosure       int     `json:"minPanelsForClosure"`
	MaxIdleHours              float64 `json:"maxIdleHours"`
	RequirePalletFinalization bool    `json:"requirePalletFinalization"`
}

type updateRulesResponse struct {
	Version int `json:"version"`
}

type statisticsPayload struct {
	OrderID              string     `json:"orderId"`
	OrderNumber          string     `json:"orderNumber"`
	TargetQuantity       int        `json:"targetQuantity"`
	ScannedPanels        int        `json:"scannedPanels"`
	CompletedPanels      int        `json:"completedPanels"`
	InProgressPanels     int        `json:"inProgressPanels"`
	PendingPanels        int        `json:"pendingPanels"`
	FailedPanels         int        `json:"failedPanels"`
	CompletionPercent    float64    `json:"completionPercent"`
	FailureRatePercent   float64    `json:"failureRatePercent"`
	AvgProcessingSeconds float64    `json:"avgProcessingSeconds"`
	LastActivityAt       *time.Time `json:"lastActivityAt,omitempty"`
	ComputedAt           time.Time  `json:"computedAt"`
}

func fromStatistics(stats order.Statistics) statisticsPayload {
	return statisticsPayload{
		OrderID:              stats.OrderID,
		OrderNumber:          stats.OrderNumber,
		TargetQuantity:       stats.TargetQuantity,
		ScannedPanels:        stats.ScannedPanels,
		CompletedPanels:      stats.CompletedPanels,
		InProgressPanels:     stats.InProgressPanels,
		PendingPanels:        stats.PendingPanels,
		FailedPanels:         stats.FailedPanels,
		CompletionPercent:    stats.CompletionPercent,
		FailureRatePercent:   stats.FailureRatePercent,
		AvgProcessingSeconds: stats.AvgProcessingSeconds,
		LastActivityAt:       stats.LastActivityAt,
		ComputedAt:           stats.ComputedAt,
	}
}

func parseInspectionResult(raw string) (panel.InspectionResult, error) {
	switch raw {
	case "Pass":
		return panel.ResultPass, nil
	case "Fail":
		return panel.ResultFail, nil
	case "Conditional":
		return panel.ResultConditional, nil
	default:
		return 0, errs.NewValueIsInvalidError("result")
	}
}
