package reportController

import (
	"testing"

	. "toolroom/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultHistoryLimit, clampLimit(0))
	assert.Equal(t, DefaultHistoryLimit, clampLimit(-5))
	assert.Equal(t, 25, clampLimit(25))
	assert.Equal(t, MaxHistoryLimit, clampLimit(10000))
}

func TestJoinDailyStatus(t *testing.T) {
	checkedMachine := uuid.New()
	uncheckedMachine := uuid.New()
	checkedBy := uuid.New()

	plans := []*MaintenancePlan{
		{
			BaseUUIDModel: BaseUUIDModel{ID: uuid.New()},
			Name:          "Daily Inspection",
			MachineID:     checkedMachine,
			Machine:       &Machine{Name: "Lathe 4", Location: "Bay A"},
		},
		{
			BaseUUIDModel: BaseUUIDModel{ID: uuid.New()},
			Name:          "Daily Inspection",
			MachineID:     uncheckedMachine,
			Machine:       &Machine{Name: "Mill 2", Location: "Bay B"},
		},
	}

	logs := []*DailyLog{
		{
			MachineID:   checkedMachine,
			Date:        "2024-01-15",
			Status:      DailyLogStatusCompleted,
			Notes:       "all clear",
			CheckedByID: &checkedBy,
		},
		// Log for a machine with no daily plan; must not produce a row.
		{
			MachineID: uuid.New(),
			Date:      "2024-01-15",
			Status:    DailyLogStatusSkipped,
		},
	}

	entries := joinDailyStatus(plans, logs)

	require.Len(t, entries, 2)

	assert.Equal(t, "Lathe 4", entries[0].MachineName)
	assert.Equal(t, DailyLogStatusCompleted, entries[0].Status)
	assert.Equal(t, "all clear", entries[0].Notes)
	assert.Equal(t, &checkedBy, entries[0].CheckedByID)

	assert.Equal(t, "Mill 2", entries[1].MachineName)
	assert.Equal(t, DailyLogStatusPending, entries[1].Status)
	assert.Empty(t, entries[1].Notes)
	assert.Nil(t, entries[1].CheckedByID)
}

func TestJoinDailyStatus_MissingMachineJoin(t *testing.T) {
	plans := []*MaintenancePlan{
		{
			BaseUUIDModel: BaseUUIDModel{ID: uuid.New()},
			Name:          "Daily Inspection",
			MachineID:     uuid.New(),
			Machine:       nil,
		},
	}

	entries := joinDailyStatus(plans, nil)

	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].MachineName)
	assert.Empty(t, entries[0].Location)
	assert.Equal(t, DailyLogStatusPending, entries[0].Status)
}

func TestJoinDailyStatus_Empty(t *testing.T) {
	entries := joinDailyStatus(nil, nil)
	assert.Empty(t, entries)
}
