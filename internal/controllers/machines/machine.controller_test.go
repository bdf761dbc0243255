package machineController

import (
	"testing"
	. "toolroom/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateMachineStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		expected MachineStatus
		wantErr  bool
	}{
		{name: "empty defaults to active", status: "", expected: MachineStatusActive},
		{name: "active", status: "active", expected: MachineStatusActive},
		{name: "inactive", status: "inactive", expected: MachineStatusInactive},
		{name: "maintenance", status: "maintenance", expected: MachineStatusMaintenance},
		{name: "unknown rejected", status: "broken", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := validateMachineStatus(tt.status)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}
