package planController

import (
	"testing"

	. "toolroom/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestBuildAllocationUpdates(t *testing.T) {
	tests := []struct {
		name        string
		current     PlanStatus
		request     UpdateAllocationRequest
		expectError error
		wantKeys    []string
	}{
		{
			name:     "Notes only",
			current:  PlanStatusPlanned,
			request:  UpdateAllocationRequest{Notes: strPtr("coolant topped up")},
			wantKeys: []string{"notes"},
		},
		{
			name:     "Planned to active",
			current:  PlanStatusPlanned,
			request:  UpdateAllocationRequest{Status: strPtr("active")},
			wantKeys: []string{"status"},
		},
		{
			name:     "Overdue back to active",
			current:  PlanStatusOverdue,
			request:  UpdateAllocationRequest{Status: strPtr("active")},
			wantKeys: []string{"status"},
		},
		{
			name:        "Completed cannot reopen",
			current:     PlanStatusCompleted,
			request:     UpdateAllocationRequest{Status: strPtr("active")},
			expectError: errBadTransition,
		},
		{
			name:     "Completed can archive",
			current:  PlanStatusCompleted,
			request:  UpdateAllocationRequest{Status: strPtr("archived")},
			wantKeys: []string{"status"},
		},
		{
			name:        "Archived is final",
			current:     PlanStatusArchived,
			request:     UpdateAllocationRequest{Status: strPtr("planned")},
			expectError: errBadTransition,
		},
		{
			name:    "Same status is a no-op write",
			current: PlanStatusActive,
			request: UpdateAllocationRequest{Status: strPtr("active"), Notes: strPtr("still going")},
			// status unchanged, only notes lands
			wantKeys: []string{"notes"},
		},
		{
			name:     "Completed tasks and evidence",
			current:  PlanStatusActive,
			request:  UpdateAllocationRequest{CompletedTasks: []string{"Grease spindle"}, EvidenceURL: strPtr("/uploads/a.jpg")},
			wantKeys: []string{"completed_tasks", "evidence_url"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updates, err := buildAllocationUpdates(tt.current, &tt.request)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				return
			}

			require.NoError(t, err)
			assert.Len(t, updates, len(tt.wantKeys))
			for _, key := range tt.wantKeys {
				assert.Contains(t, updates, key)
			}
		})
	}
}

func TestBuildAllocationUpdates_UnknownStatus(t *testing.T) {
	_, err := buildAllocationUpdates(PlanStatusPlanned, &UpdateAllocationRequest{
		Status: strPtr("paused"),
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, errBadTransition)
}

func TestResolveFrequency(t *testing.T) {
	tests := []struct {
		name           string
		plan           MaintenancePlan
		wantFrequency  Frequency
		wantBackfilled bool
	}{
		{
			name:          "Plan frequency wins",
			plan:          MaintenancePlan{Frequency: FrequencyMonthly},
			wantFrequency: FrequencyMonthly,
		},
		{
			name: "Missing frequency falls back to template",
			plan: MaintenancePlan{
				Template: &MaintenanceTemplate{Frequency: FrequencyEightWeekly},
			},
			wantFrequency:  FrequencyEightWeekly,
			wantBackfilled: true,
		},
		{
			name:           "No template defaults to Daily",
			plan:           MaintenancePlan{},
			wantFrequency:  FrequencyDaily,
			wantBackfilled: true,
		},
		{
			name: "Garbage frequency treated as missing",
			plan: MaintenancePlan{
				Frequency: Frequency("Weekly"),
				Template:  &MaintenanceTemplate{Frequency: FrequencyMonthly},
			},
			wantFrequency:  FrequencyMonthly,
			wantBackfilled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frequency, backfilled := resolveFrequency(&tt.plan)
			assert.Equal(t, tt.wantFrequency, frequency)
			assert.Equal(t, tt.wantBackfilled, backfilled)
		})
	}
}

func TestCheckedTasksProjectionKeepsSubmittedOrder(t *testing.T) {
	record := MaintenanceRecord{
		Checklist: []ChecklistItem{
			{Task: "Drain coolant", IsChecked: true},
			{Task: "Inspect belts", IsChecked: false},
			{Task: "Replace filter", IsChecked: true},
			{Task: "Grease ways", IsChecked: true},
		},
	}

	assert.Equal(t, []string{"Drain coolant", "Replace filter", "Grease ways"}, record.CheckedTasks())
}

func TestPlanStatusTransitions(t *testing.T) {
	// The full lifecycle: planned -> active -> completed -> archived.
	assert.True(t, PlanStatusPlanned.CanTransition(PlanStatusActive))
	assert.True(t, PlanStatusActive.CanTransition(PlanStatusCompleted))
	assert.True(t, PlanStatusCompleted.CanTransition(PlanStatusArchived))

	// Overdue is recoverable until archived.
	assert.True(t, PlanStatusPlanned.CanTransition(PlanStatusOverdue))
	assert.True(t, PlanStatusOverdue.CanTransition(PlanStatusActive))
	assert.True(t, PlanStatusOverdue.CanTransition(PlanStatusCompleted))

	// Completion is final apart from archival; both count as terminal, which
	// is what blocks a second record from ever being minted.
	assert.False(t, PlanStatusCompleted.CanTransition(PlanStatusActive))
	assert.False(t, PlanStatusArchived.CanTransition(PlanStatusActive))
	assert.True(t, PlanStatusCompleted.Terminal())
	assert.True(t, PlanStatusArchived.Terminal())
	assert.False(t, PlanStatusOverdue.Terminal())
}
