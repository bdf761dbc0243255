package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ChecklistItem is one line of a completion checklist, stored verbatim in the
// order it was submitted.
type ChecklistItem struct {
	Task      string `json:"task"`
	IsChecked bool   `json:"isChecked"`
	PhotoURL  string `json:"photoUrl,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// MaintenanceRecord is the immutable proof-of-completion artifact minted
// exactly once when a plan reaches completed. It is the audit trail of record
// and is never mutated or deleted.
type MaintenanceRecord struct {
	BaseUUIDModel
	MachineID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_maintenance_records_machine" json:"machineId"`
	PlanID        uuid.UUID  `gorm:"type:uuid;not null;index:idx_maintenance_records_plan"    json:"planId"`
	Frequency     Frequency  `gorm:"type:text;not null"                                       json:"frequency"`
	Date          time.Time  `gorm:"type:timestamp;not null;index:idx_maintenance_records_date" json:"date"`
	PerformedByID *uuid.UUID `gorm:"type:uuid" json:"performedBy,omitempty"`

	Checklist    []ChecklistItem  `gorm:"type:jsonb;serializer:json" json:"checklist"`
	OverallNotes string           `gorm:"type:text"                  json:"overallNotes"`
	EvidenceURL  *string          `gorm:"type:text"                  json:"evidenceUrl,omitempty"`
	Cost         *decimal.Decimal `gorm:"type:decimal(10,2)"         json:"cost,omitempty"`

	// Relationships
	Machine     *Machine         `gorm:"foreignKey:MachineID"     json:"machine,omitempty"`
	Plan        *MaintenancePlan `gorm:"foreignKey:PlanID"        json:"plan,omitempty"`
	PerformedBy *Employee        `gorm:"foreignKey:PerformedByID" json:"performedByEmployee,omitempty"`
}

func (r *MaintenanceRecord) BeforeCreate(tx *gorm.DB) error {
	if r.MachineID == uuid.Nil || r.PlanID == uuid.Nil {
		return gorm.ErrInvalidValue
	}
	if !r.Frequency.Valid() {
		return gorm.ErrInvalidValue
	}
	if r.Date.IsZero() {
		r.Date = time.Now()
	}
	return nil
}

// CheckedTasks projects the checked labels from the checklist in submission
// order, matching what the owning plan stores in CompletedTasks.
func (r *MaintenanceRecord) CheckedTasks() []string {
	tasks := make([]string, 0, len(r.Checklist))
	for _, item := range r.Checklist {
		if item.IsChecked {
			tasks = append(tasks, item.Task)
		}
	}
	return tasks
}
