package panel_test

import (
	"testing"

	"paneltrack/internal/core/domain/model/panel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_Validate(t *testing.T) {
	valid := []panel.State{
		panel.Scanned, panel.Validated, panel.InProduction,
		panel.Completed, panel.Failed, panel.Rework, panel.Quarantined,
	}
	for _, s := range valid {
		t.Run(s.String(), func(t *testing.T) {
			require.NoError(t, s.Validate())
		})
	}

	invalid := []panel.State{panel.Unknown, panel.State(99), panel.State(-1)}
	for _, s := range invalid {
		require.Error(t, s.Validate())
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "Scanned", panel.Scanned.String())
	assert.Equal(t, "Validated", panel.Validated.String())
	assert.Equal(t, "InProduction", panel.InProduction.String())
	assert.Equal(t, "Completed", panel.Completed.String())
	assert.Equal(t, "Failed", panel.Failed.String())
	assert.Equal(t, "Rework", panel.Rework.String())
	assert.Equal(t, "Quarantined", panel.Quarantined.String())
	assert.Equal(t, "Unknown", panel.Unknown.String())
	assert.Equal(t, "Unknown", panel.State(42).String())
}

func TestState_TransitionTable(t *testing.T) {
	tests := []struct {
		name    string
		from    panel.State
		to      panel.State
		allowed bool
	}{
		{"scanned to validated", panel.Scanned, panel.Validated, true},
		{"scanned to production", panel.Scanned, panel.InProduction, false},
		{"validated to production", panel.Validated, panel.InProduction, true},
		{"validated to failed", panel.Validated, panel.Failed, true},
		{"validated to quarantined", panel.Validated, panel.Quarantined, true},
		{"production advances", panel.InProduction, panel.InProduction, true},
		{"production to completed", panel.InProduction, panel.Completed, true},
		{"production to failed", panel.InProduction, panel.Failed, true},
		{"production to quarantined", panel.InProduction, panel.Quarantined, true},
		{"failed to rework only", panel.Failed, panel.Rework, true},
		{"failed cannot complete", panel.Failed, panel.Completed, false},
		{"quarantined to rework only", panel.Quarantined, panel.Rework, true},
		{"quarantined cannot complete", panel.Quarantined, panel.Completed, false},
		{"rework back to production", panel.Rework, panel.InProduction, true},
		{"rework can fail again", panel.Rework, panel.Failed, true},
		{"completed is terminal", panel.Completed, panel.Rework, false},
		{"completed cannot restart", panel.Completed, panel.InProduction, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))

			got, err := tt.from.TransitionTo(tt.to)
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, got)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestState_IsTerminal(t *testing.T) {
	assert.True(t, panel.Completed.IsTerminal())
	assert.False(t, panel.Failed.IsTerminal())
	assert.False(t, panel.Quarantined.IsTerminal())
}

func TestState_Phase(t *testing.T) {
	tests := []struct {
		state panel.State
		phase panel.Phase
	}{
		{panel.Scanned, panel.PhasePending},
		{panel.Validated, panel.PhasePending},
		{panel.InProduction, panel.PhaseInProgress},
		{panel.Rework, panel.PhaseInProgress},
		{panel.Quarantined, panel.PhaseInProgress},
		{panel.Failed, panel.PhaseFailed},
		{panel.Completed, panel.PhaseCompleted},
		{panel.Unknown, panel.PhasePending},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			assert.Equal(t, tt.phase, tt.state.Phase())
		})
	}
}

func TestInspectionResult(t *testing.T) {
	require.NoError(t, panel.ResultPass.Validate())
	require.NoError(t, panel.ResultFail.Validate())
	require.NoError(t, panel.ResultConditional.Validate())
	require.Error(t, panel.ResultUnknown.Validate())
	require.Error(t, panel.InspectionResult(17).Validate())

	assert.Equal(t, "Pass", panel.ResultPass.String())
	assert.Equal(t, "Fail", panel.ResultFail.String())
	assert.Equal(t, "Conditional", panel.ResultConditional.String())
	assert.Equal(t, "Unknown", panel.ResultUnknown.String())
}
