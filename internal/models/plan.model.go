package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// MaintenancePlan is one scheduled occurrence of a template against one
// machine. Plans are created in bulk by the recurrence generator, mutated by
// the lifecycle manager, and never deleted; archival is the only housekeeping
// exit. Frequency is copied from the template at creation and stays
// authoritative even if the template later changes.
type MaintenancePlan struct {
	BaseUUIDModel
	Name       string    `gorm:"type:text;not null" json:"name"`
	TemplateID uuid.UUID `gorm:"type:uuid;not null;index:idx_maintenance_plans_template" json:"templateId"`
	Frequency  Frequency `gorm:"type:text;index:idx_maintenance_plans_frequency"         json:"frequency"`
	MachineID  uuid.UUID `gorm:"type:uuid;not null;index:idx_maintenance_plans_machine"  json:"machineId"`

	// Nil for Daily plans, optional for Monthly, mandatory for 8-Weekly.
	AssignedEmployeeID *uuid.UUID `gorm:"type:uuid" json:"assignedEmployeeId,omitempty"`

	// Calendar date of the occurrence, fixed at creation.
	ScheduledDate time.Time  `gorm:"type:date;not null;index:idx_maintenance_plans_scheduled" json:"scheduledDate"`
	Status        PlanStatus `gorm:"type:text;default:'planned';index:idx_maintenance_plans_status" json:"status"`
	Notes         string     `gorm:"type:text" json:"notes"`

	// Opaque blob-store reference to uploaded evidence.
	EvidenceURL *string `gorm:"type:text" json:"evidenceUrl,omitempty"`

	// Who actually did the work; may differ from the assigned employee.
	PerformedByID *uuid.UUID `gorm:"type:uuid" json:"performedBy,omitempty"`

	// Checked task labels projected from the completion checklist, retained
	// for cheap display without re-reading the record.
	CompletedTasks pq.StringArray `gorm:"type:text[]" json:"completedTasks"`

	// Relationships
	Template         *MaintenanceTemplate `gorm:"foreignKey:TemplateID"         json:"template,omitempty"`
	Machine          *Machine             `gorm:"foreignKey:MachineID"          json:"machine,omitempty"`
	AssignedEmployee *Employee            `gorm:"foreignKey:AssignedEmployeeID" json:"assignedEmployee,omitempty"`
	PerformedBy      *Employee            `gorm:"foreignKey:PerformedByID"      json:"performedByEmployee,omitempty"`
}

func (p *MaintenancePlan) BeforeCreate(tx *gorm.DB) error {
	if p.TemplateID == uuid.Nil || p.MachineID == uuid.Nil {
		return gorm.ErrInvalidValue
	}
	if p.ScheduledDate.IsZero() {
		return gorm.ErrInvalidValue
	}
	if p.Status == "" {
		p.Status = PlanStatusPlanned
	}
	return nil
}
