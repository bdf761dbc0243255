package models

import "time"

// Frequency drives both the recurrence step and the assignment policy of a
// maintenance template and every plan generated from it.
type Frequency string

const (
	FrequencyDaily       Frequency = "Daily"
	FrequencyMonthly     Frequency = "Monthly"
	FrequencyEightWeekly Frequency = "8-Weekly"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyMonthly, FrequencyEightWeekly:
		return true
	}
	return false
}

// Next returns the scheduled date that follows t for this frequency. The
// boolean is false for unrecognized frequencies so expansion loops can stop
// instead of running unbounded. Monthly uses native calendar arithmetic, so a
// Jan 31 start rolls over into early March.
func (f Frequency) Next(t time.Time) (time.Time, bool) {
	switch f {
	case FrequencyDaily:
		return t.AddDate(0, 0, 1), true
	case FrequencyMonthly:
		return t.AddDate(0, 1, 0), true
	case FrequencyEightWeekly:
		return t.AddDate(0, 0, 56), true
	}
	return t, false
}

// RequiresAssignment reports whether plans of this frequency must carry an
// assigned employee at creation time.
func (f Frequency) RequiresAssignment() bool {
	return f == FrequencyEightWeekly
}

// ForbidsAssignment reports whether an assignment supplied at creation time is
// discarded. Daily checks are picked up by whoever is on the floor.
func (f Frequency) ForbidsAssignment() bool {
	return f == FrequencyDaily
}
