package queries

import (
	"context"
	"database/sql"
	"errors"

	"paneltrack/internal/core/domain/model/rules"

	"gorm.io/gorm"
)

// GetClosureRulesQueryHandler reads the current rule set straight from the
// closure_rule_sets table. When no amendment has ever been stored the
// built-in default set is returned, matching what closure assessments use.
type GetClosureRulesQueryHandler struct {
	db *gorm.DB
}

// NewGetClosureRulesQueryHandler creates a handler for closure rule queries.
// Requires a GORM database connection for query execution.
func NewGetClosureRulesQueryHandler(db *gorm.DB) GetClosureRulesQueryHandler {
	return GetClosureRulesQueryHandler{db: db}
}

// Handle executes the query and returns the highest stored rule set version.
func (h GetClosureRulesQueryHandler) Handle(
	ctx context.Context,
	query GetClosureRulesQuery,
) (GetClosureRulesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetClosureRulesQueryResponse{}, err
	}

	var resp GetClosureRulesQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			version,
			min_completion_percent,
			max_failure_rate_percent,
			min_panels_for_closure,
			max_idle_hours,
			require_pallet_finalization
		FROM closure_rule_sets
		ORDER BY version DESC
		LIMIT 1
	`).Row()

	err := row.Scan(
		&resp.Version,
		&resp.MinCompletionPercent,
		&resp.MaxFailureRatePercent,
		&resp.MinPanelsForClosure,
		&resp.MaxIdleHours,
		&resp.RequirePalletFinalization,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return defaultRulesResponse(), nil
		}
		return GetClosureRulesQueryResponse{}, err
	}

	return resp, nil
}

func defaultRulesResponse() GetClosureRulesQueryResponse {
	def := rules.DefaultRuleSet()
	return GetClosureRulesQueryResponse{
		Version:                   def.Version(),
		MinCompletionPercent:      def.MinCompletionPercent(),
		MaxFailureRatePercent:     def.MaxFailureRatePercent(),
		MinPanelsForClosure:       def.MinPanelsForClosure(),
		MaxIdleHours:              def.MaxIdleHours(),
		RequirePalletFinalization: def.RequirePalletFinalization(),
	}
}
