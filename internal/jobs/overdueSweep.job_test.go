package jobs

import (
	"testing"
	"time"

	"toolroom/internal/database"
	"toolroom/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDay(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  time.Time
	}{
		{
			name:  "Midday truncates to midnight",
			input: time.Date(2024, 3, 15, 13, 45, 30, 0, time.UTC),
			want:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "Midnight is unchanged",
			input: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "Non-UTC input normalizes to the UTC calendar day",
			input: time.Date(2024, 3, 15, 23, 30, 0, 0, time.FixedZone("behind", -2*3600)),
			want:  time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StartOfDay(tt.input))
		})
	}
}

func TestOverdueSweepJobMetadata(t *testing.T) {
	job := NewOverdueSweepJob(nil, database.DB{}, services.Hourly)

	assert.Equal(t, "OverdueSweep", job.Name())
	assert.Equal(t, services.Hourly, job.Schedule())
}
