package employeeController

import (
	"testing"
	. "toolroom/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmployeeRole(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		expected EmployeeRole
		wantErr  bool
	}{
		{name: "empty defaults to employee", role: "", expected: RoleEmployee},
		{name: "admin", role: "admin", expected: RoleAdmin},
		{name: "supervisor", role: "supervisor", expected: RoleSupervisor},
		{name: "technician", role: "technician", expected: RoleTechnician},
		{name: "unknown rejected", role: "janitor", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := validateEmployeeRole(tt.role)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, role)
		})
	}
}
