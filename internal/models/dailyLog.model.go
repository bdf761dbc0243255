package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DailyLogStatus string

const (
	DailyLogStatusPending   DailyLogStatus = "pending"
	DailyLogStatusCompleted DailyLogStatus = "completed"
	DailyLogStatusSkipped   DailyLogStatus = "skipped"
)

// DailyLog tracks a (machine, date) pair for daily-cadence dashboards,
// independent of the plan lifecycle. Upserted per pair; a missing row renders
// as pending.
type DailyLog struct {
	BaseUUIDModel
	MachineID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uidx_daily_logs_machine_date" json:"machineId"`

	// ISO calendar date string, YYYY-MM-DD.
	Date        string         `gorm:"type:text;not null;uniqueIndex:uidx_daily_logs_machine_date" json:"date"`
	Status      DailyLogStatus `gorm:"type:text;default:'pending'" json:"status"`
	Notes       string         `gorm:"type:text"                   json:"notes"`
	CheckedByID *uuid.UUID     `gorm:"type:uuid"                   json:"checkedBy,omitempty"`

	// Relationships
	Machine   *Machine  `gorm:"foreignKey:MachineID"   json:"machine,omitempty"`
	CheckedBy *Employee `gorm:"foreignKey:CheckedByID" json:"checkedByEmployee,omitempty"`
}

func (d *DailyLog) BeforeCreate(tx *gorm.DB) error {
	if d.MachineID == uuid.Nil || d.Date == "" {
		return gorm.ErrInvalidValue
	}
	if d.Status == "" {
		d.Status = DailyLogStatusPending
	}
	return nil
}
