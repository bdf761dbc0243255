package plannerController

import (
	"testing"
	"time"

	. "toolroom/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name        string
		start       string
		end         string
		expectError bool
	}{
		{name: "Valid range", start: "2024-01-01", end: "2024-03-01"},
		{name: "Single day", start: "2024-01-01", end: "2024-01-01"},
		{name: "End before start", start: "2024-03-01", end: "2024-01-01", expectError: true},
		{name: "Bad start format", start: "01/01/2024", end: "2024-03-01", expectError: true},
		{name: "Bad end format", start: "2024-01-01", end: "March 1", expectError: true},
		{name: "Empty start", start: "", end: "2024-03-01", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := parseDateRange(tt.start, tt.end)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.False(t, start.After(end))
		})
	}
}

func TestExpandDates_Daily(t *testing.T) {
	dates := expandDates(FrequencyDaily, date(2024, 1, 1), date(2024, 1, 3))

	require.Len(t, dates, 3)
	assert.Equal(t, date(2024, 1, 1), dates[0])
	assert.Equal(t, date(2024, 1, 2), dates[1])
	assert.Equal(t, date(2024, 1, 3), dates[2])
}

func TestExpandDates_Monthly(t *testing.T) {
	dates := expandDates(FrequencyMonthly, date(2024, 1, 15), date(2024, 4, 15))

	require.Len(t, dates, 4)
	assert.Equal(t, date(2024, 1, 15), dates[0])
	assert.Equal(t, date(2024, 2, 15), dates[1])
	assert.Equal(t, date(2024, 3, 15), dates[2])
	assert.Equal(t, date(2024, 4, 15), dates[3])
}

func TestExpandDates_MonthlyEndOfMonthRollsOver(t *testing.T) {
	// Jan 31 has no Feb counterpart; calendar arithmetic normalizes forward.
	dates := expandDates(FrequencyMonthly, date(2024, 1, 31), date(2024, 3, 31))

	require.NotEmpty(t, dates)
	assert.Equal(t, date(2024, 1, 31), dates[0])
	assert.Equal(t, date(2024, 3, 2), dates[1])
}

func TestExpandDates_EightWeekly(t *testing.T) {
	dates := expandDates(FrequencyEightWeekly, date(2024, 1, 1), date(2024, 3, 1))

	require.Len(t, dates, 2)
	assert.Equal(t, date(2024, 1, 1), dates[0])
	assert.Equal(t, date(2024, 2, 26), dates[1])
}

func TestExpandDates_UnknownFrequencyEmitsFirstOnly(t *testing.T) {
	dates := expandDates(Frequency("Fortnightly"), date(2024, 1, 1), date(2024, 12, 31))

	require.Len(t, dates, 1)
	assert.Equal(t, date(2024, 1, 1), dates[0])
}

func TestExpandDates_SingleDayRange(t *testing.T) {
	dates := expandDates(FrequencyMonthly, date(2024, 6, 1), date(2024, 6, 1))

	require.Len(t, dates, 1)
}

func TestNormalizeAllocations_DailyDiscardsAssignment(t *testing.T) {
	employeeID := uuid.New()
	allocations, err := normalizeAllocations(FrequencyDaily, []Allocation{
		{MachineID: uuid.New(), AssignedEmployeeID: &employeeID},
	})

	require.NoError(t, err)
	require.Len(t, allocations, 1)
	assert.Nil(t, allocations[0].AssignedEmployeeID)
}

func TestNormalizeAllocations_EightWeeklyRequiresAssignment(t *testing.T) {
	assignedMachine := uuid.New()
	bareMachine := uuid.New()
	employeeID := uuid.New()

	_, err := normalizeAllocations(FrequencyEightWeekly, []Allocation{
		{MachineID: assignedMachine, AssignedEmployeeID: &employeeID},
		{MachineID: bareMachine},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), bareMachine.String())
}

func TestNormalizeAllocations_MonthlyAssignmentOptional(t *testing.T) {
	employeeID := uuid.New()
	allocations, err := normalizeAllocations(FrequencyMonthly, []Allocation{
		{MachineID: uuid.New(), AssignedEmployeeID: &employeeID},
		{MachineID: uuid.New()},
	})

	require.NoError(t, err)
	require.Len(t, allocations, 2)
	assert.NotNil(t, allocations[0].AssignedEmployeeID)
	assert.Nil(t, allocations[1].AssignedEmployeeID)
}

func TestNormalizeAllocations_MissingMachine(t *testing.T) {
	_, err := normalizeAllocations(FrequencyMonthly, []Allocation{{}})
	assert.Error(t, err)
}

func TestBuildPlans_CrossProduct(t *testing.T) {
	template := &MaintenanceTemplate{
		BaseUUIDModel: BaseUUIDModel{ID: uuid.New()},
		Name:          "Daily Inspection",
		Frequency:     FrequencyDaily,
	}
	dates := []time.Time{date(2024, 1, 1), date(2024, 1, 2), date(2024, 1, 3)}
	allocations := []Allocation{
		{MachineID: uuid.New()},
		{MachineID: uuid.New()},
	}

	plans := buildPlans(template, "", date(2024, 1, 1), date(2024, 1, 3), dates, allocations)

	require.Len(t, plans, 6)
	for _, plan := range plans {
		assert.Equal(t, "Daily Inspection - Daily", plan.Name)
		assert.Equal(t, template.ID, plan.TemplateID)
		assert.Equal(t, FrequencyDaily, plan.Frequency)
		assert.Equal(t, PlanStatusPlanned, plan.Status)
		assert.Equal(t, "Generated for 2024-01-01 to 2024-01-03", plan.Notes)
	}
}

func TestBuildPlans_DefaultNameIncludesFrequency(t *testing.T) {
	template := &MaintenanceTemplate{
		BaseUUIDModel: BaseUUIDModel{ID: uuid.New()},
		Name:          "Lubrication Round",
		Frequency:     FrequencyMonthly,
	}
	dates := []time.Time{date(2024, 1, 15)}
	allocations := []Allocation{{MachineID: uuid.New()}}

	plans := buildPlans(template, "", date(2024, 1, 15), date(2024, 1, 15), dates, allocations)

	require.Len(t, plans, 1)
	assert.Equal(t, "Lubrication Round - Monthly", plans[0].Name)
}

func TestBuildPlans_EightWeeklyCycleNaming(t *testing.T) {
	employeeID := uuid.New()
	template := &MaintenanceTemplate{
		BaseUUIDModel: BaseUUIDModel{ID: uuid.New()},
		Name:          "Spindle Overhaul",
		Frequency:     FrequencyEightWeekly,
	}
	dates := []time.Time{date(2024, 1, 1), date(2024, 2, 26)}
	allocations := []Allocation{
		{MachineID: uuid.New(), AssignedEmployeeID: &employeeID},
		{MachineID: uuid.New(), AssignedEmployeeID: &employeeID},
	}

	plans := buildPlans(template, "", date(2024, 1, 1), date(2024, 3, 1), dates, allocations)

	require.Len(t, plans, 4)
	// Cycle numbering restarts for each allocation.
	assert.Equal(t, "Spindle Overhaul - 8-Weekly (Cycle 1)", plans[0].Name)
	assert.Equal(t, "Spindle Overhaul - 8-Weekly (Cycle 2)", plans[1].Name)
	assert.Equal(t, "Spindle Overhaul - 8-Weekly (Cycle 1)", plans[2].Name)
	assert.Equal(t, "Spindle Overhaul - 8-Weekly (Cycle 2)", plans[3].Name)
}

func TestBuildPlans_NameOverride(t *testing.T) {
	template := &MaintenanceTemplate{
		BaseUUIDModel: BaseUUIDModel{ID: uuid.New()},
		Name:          "Lubrication Round",
		Frequency:     FrequencyMonthly,
	}
	dates := []time.Time{date(2024, 1, 15)}
	allocations := []Allocation{{MachineID: uuid.New()}}

	plans := buildPlans(template, "Q1 Lube", date(2024, 1, 15), date(2024, 1, 15), dates, allocations)

	require.Len(t, plans, 1)
	assert.Equal(t, "Q1 Lube", plans[0].Name)
}
