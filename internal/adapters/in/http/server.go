// Package http is the inbound HTTP adapter. It translates JSON requests
// into commands and queries, delegates to the application layer and maps
// domain errors to status codes. No business rules live here.
package http

import (
	"net/http"
	"time"

	"paneltrack/internal/core/application/usecases/commands"
	"paneltrack/internal/core/application/usecases/queries"
	"paneltrack/internal/core/domain/model/audit"
	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/panel"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the command and query handlers the server exposes.
type Handlers struct {
	CreateOrder      commands.CreateOrderCommandHandler
	RecordScan       commands.RecordScanCommandHandler
	RecordInspection commands.RecordInspectionCommandHandler
	ReworkPanel      commands.ReworkPanelCommandHandler
	CloseOrder       commands.CloseOrderCommandHandler
	RollbackClosure  commands.RollbackClosureCommandHandler
	UpdateRules      commands.UpdateClosureRulesCommandHandler

	AssessReadiness queries.AssessClosureReadinessQueryHandler
	OrderProgress   queries.GetOrderProgressQueryHandler
	AuditHistory    queries.GetClosureAuditHistoryQueryHandler
	ClosureRules    queries.GetClosureRulesQueryHandler

	ProgressInvalidator commands.ProgressInvalidator
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId/progress", s.GetOrderProgress)
	api.DELETE("/orders/:orderId/progress", s.ClearOrderProgress)
	api.GET("/orders/:orderId/closure/readiness", s.AssessClosureReadiness)
	api.POST("/orders/:orderId/closure", s.CloseOrder)
	api.POST("/orders/:orderId/closure/rollback", s.RollbackClosure)
	api.GET("/orders/:orderId/closure/audit", s.GetClosureAuditHistory)

	api.POST("/scans", s.RecordScan)
	api.POST("/inspections", s.RecordInspection)
	api.POST("/panels/:panelId/rework", s.ReworkPanel)

	api.GET("/closure-rules", s.GetClosureRules)
	api.PUT("/closure-rules", s.UpdateClosureRules)
}

// CreateOrder handles POST /api/v1/orders - registers a manufacturing order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, req.OrderNumber, req.TargetQuantity, req.StartDate, req.ExpectedCompletionDate)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{ID: orderID.String()})
}

// RecordScan handles POST /api/v1/scans - intakes a panel by barcode.
func (s *Server) RecordScan(ctx echo.Context) error {
	var req recordScanRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order ID")
	}

	scannedAt := req.ScannedAt
	if scannedAt.IsZero() {
		scannedAt = time.Now().UTC()
	}

	panelID := kernel.NewUUID()
	cmd, err := commands.NewRecordScanCommand(panelID, req.Barcode, orderID, scannedAt)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.RecordScan.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, recordScanResponse{PanelID: panelID.String()})
}

// RecordInspection handles POST /api/v1/inspections - records a station
// inspection for a panel.
func (s *Server) RecordInspection(ctx echo.Context) error {
	var req recordInspectionRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	panelID, err := kernel.UUIDFromString(req.PanelID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid panel ID")
	}
	inspectorID, err := kernel.UUIDFromString(req.InspectorID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid inspector ID")
	}
	result, err := parseInspectionResult(req.Result)
	if err != nil {
		return writeError(ctx, err)
	}

	var measurements *panel.Measurements
	if req.Measurements != nil {
		m, mErr := panel.NewMeasurements(
			req.Measurements.PowerWatts, req.Measurements.VoltageVolts, req.Measurements.CurrentAmps)
		if mErr != nil {
			return writeError(ctx, mErr)
		}
		measurements = &m
	}

	recordedAt := req.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}

	inspectionID := kernel.NewUUID()
	cmd, err := commands.NewRecordInspectionCommand(
		inspectionID, panelID, req.StationOrdinal, inspectorID,
		result, req.Notes, measurements, req.ConditionalOverride, recordedAt)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.RecordInspection.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, recordInspectionResponse{InspectionID: inspectionID.String()})
}

// ReworkPanel handles POST /api/v1/panels/:panelId/rework - routes a failed
// or quarantined panel back to an earlier station.
func (s *Server) ReworkPanel(ctx echo.Context) error {
	panelID, err := kernel.UUIDFromString(ctx.Param("panelId"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid panel ID")
	}

	var req reworkPanelRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	reworkAt := req.ReworkAt
	if reworkAt.IsZero() {
		reworkAt = time.Now().UTC()
	}

	cmd, err := commands.NewReworkPanelCommand(panelID, req.ReentryOrdinal, reworkAt)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.ReworkPanel.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssessClosureReadiness handles GET /api/v1/orders/:orderId/closure/readiness.
func (s *Server) AssessClosureReadiness(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewAssessClosureReadinessQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	assessment, err := s.handlers.AssessReadiness.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	blockers := make([]blockerPayload, len(assessment.Blockers))
	for i, blocker := range assessment.Blockers {
		blockers[i] = blockerPayload{Code: blocker.Code, Detail: blocker.Detail}
	}

	return ctx.JSON(http.StatusOK, readinessResponse{
		OrderNumber: assessment.OrderNumber,
		IsReady:     assessment.IsReady,
		Percentage:  assessment.Percentage,
		Blockers:    blockers,
		RuleVersion: assessment.RuleVersion,
		Statistics:  fromStatistics(assessment.Statistics),
	})
}

// CloseOrder handles POST /api/v1/orders/:orderId/closure - executes a
// manual closure.
func (s *Server) CloseOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid order ID")
	}

	var req closeOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid actor ID")
	}

	cmd, err := commands.NewCloseOrderCommand(
		orderID, actorID, audit.KindManualClose, req.Reason,
		commands.ClosureOptions{
			Force:           req.Force,
			SkipValidation:  req.SkipValidation,
			GenerateReport:  req.GenerateReport,
			FinalizePallets: req.FinalizePallets,
		})
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.handlers.CloseOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, closeOrderResponse{
		OrderNumber:      result.OrderNumber,
		PalletsFinalized: result.PalletsFinalized,
		ReportGenerated:  result.ReportGenerated,
		Statistics:       fromStatistics(result.FinalStatistics),
	})
}

// RollbackClosure handles POST /api/v1/orders/:orderId/closure/rollback -
// reverses the most recent unreversed closure.
func (s *Server) RollbackClosure(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid order ID")
	}

	var req rollbackClosureRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid actor ID")
	}

	cmd, err := commands.NewRollbackClosureCommand(orderID, actorID, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.handlers.RollbackClosure.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, rollbackClosureResponse{
		OrderNumber:    result.OrderNumber,
		RestoredStatus: result.RestoredStatus.String(),
	})
}

// GetClosureAuditHistory handles GET /api/v1/orders/:orderId/closure/audit.
func (s *Server) GetClosureAuditHistory(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetClosureAuditHistoryQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	records, err := s.handlers.AuditHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]auditRecordPayload, len(records))
	for i, record := range records {
		var reverses *string
		if record.ReversesRecordID != nil {
			id := record.ReversesRecordID.String()
			reverses = &id
		}

		response[i] = auditRecordPayload{
			ID:               record.ID.String(),
			Kind:             record.Kind.String(),
			ActorID:          record.ActorID.String(),
			Forced:           record.Forced,
			RuleVersion:      record.RuleVersion,
			PriorStatus:      record.PriorStatus.String(),
			Reason:           record.Reason,
			ReversesRecordID: reverses,
			CreatedAt:        record.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetClosureRules handles GET /api/v1/closure-rules - returns the rule set
// currently in force.
func (s *Server) GetClosureRules(ctx echo.Context) error {
	rules, err := s.handlers.ClosureRules.Handle(ctx.Request().Context(), queries.NewGetClosureRulesQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, closureRulesPayload{
		Version:                   rules.Version,
		MinCompletionPercent:      rules.MinCompletionPercent,
		MaxFailureRatePercent:     rules.MaxFailureRatePercent,
		MinPanelsForClosure:       rules.MinPanelsForClosure,
		MaxIdleHours:              rules.MaxIdleHours,
		RequirePalletFinalization: rules.RequirePalletFinalization,
	})
}

// UpdateClosureRules handles PUT /api/v1/closure-rules - stores the next
// rule set version.
func (s *Server) UpdateClosureRules(ctx echo.Context) error {
	var req updateRulesRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateClosureRulesCommand(
		req.MinCompletionPercent, req.MaxFailureRatePercent,
		req.MinPanelsForClosure, req.MaxIdleHours, req.RequirePalletFinalization)
	if err != nil {
		return writeError(ctx, err)
	}

	version, err := s.handlers.UpdateRules.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, updateRulesResponse{Version: version})
}

// GetOrderProgress handles GET /api/v1/orders/:orderId/progress - returns
// the cached or recomputed progress statistics.
func (s *Server) GetOrderProgress(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderProgressQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	stats, err := s.handlers.OrderProgress.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromStatistics(stats))
}

// ClearOrderProgress handles DELETE /api/v1/orders/:orderId/progress -
// drops the cached statistics so the next read recomputes.
func (s *Server) ClearOrderProgress(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid order ID")
	}

	if err = s.handlers.ProgressInvalidator.Invalidate(ctx.Request().Context(), orderID.String()); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
