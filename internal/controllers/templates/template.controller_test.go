package templateController

import (
	"testing"

	. "toolroom/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateTemplateRequest(t *testing.T) {
	tests := []struct {
		name          string
		request       CreateTemplateRequest
		expectError   bool
		errorMsg      string
		wantFrequency Frequency
		wantTasks     []string
	}{
		{
			name: "Valid monthly template",
			request: CreateTemplateRequest{
				Name:      "Lubrication Round",
				Frequency: "Monthly",
				Tasks:     []string{"Grease spindle", "Check oil level"},
			},
			wantFrequency: FrequencyMonthly,
			wantTasks:     []string{"Grease spindle", "Check oil level"},
		},
		{
			name: "Task labels are trimmed but keep order",
			request: CreateTemplateRequest{
				Name:      "Inspection",
				Frequency: "Daily",
				Tasks:     []string{"  Check guards ", "Wipe down", " Coolant level"},
			},
			wantFrequency: FrequencyDaily,
			wantTasks:     []string{"Check guards", "Wipe down", "Coolant level"},
		},
		{
			name: "Missing name",
			request: CreateTemplateRequest{
				Name:      "   ",
				Frequency: "Daily",
				Tasks:     []string{"Check guards"},
			},
			expectError: true,
			errorMsg:    "name is required",
		},
		{
			name: "Unknown frequency",
			request: CreateTemplateRequest{
				Name:      "Overhaul",
				Frequency: "Fortnightly",
				Tasks:     []string{"Strip down"},
			},
			expectError: true,
			errorMsg:    "invalid frequency: Fortnightly",
		},
		{
			name: "No tasks",
			request: CreateTemplateRequest{
				Name:      "Empty",
				Frequency: "8-Weekly",
				Tasks:     []string{},
			},
			expectError: true,
			errorMsg:    "at least one task is required",
		},
		{
			name: "Blank task label",
			request: CreateTemplateRequest{
				Name:      "Inspection",
				Frequency: "Monthly",
				Tasks:     []string{"Check belts", "   "},
			},
			expectError: true,
			errorMsg:    "task labels cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frequency, tasks, err := validateTemplateRequest(&tt.request)

			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, tt.errorMsg, err.Error())
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantFrequency, frequency)
			assert.Equal(t, tt.wantTasks, tasks)
		})
	}
}
