package models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// MaintenanceTemplate is a reusable named checklist with a fixed recurrence
// frequency. Templates are created by administrators and treated as immutable
// once plans reference them; there is no update path.
type MaintenanceTemplate struct {
	BaseUUIDModel
	Name        string    `gorm:"type:text;not null"  json:"name"`
	Description string    `gorm:"type:text"           json:"description"`
	Frequency   Frequency `gorm:"type:text;not null;index:idx_maintenance_templates_frequency" json:"frequency"`

	// Ordered checklist task labels.
	Tasks pq.StringArray `gorm:"type:text[]" json:"tasks"`

	// Machines this template is intended for. Advisory only; generation does
	// not enforce it.
	TargetMachineIDs pq.StringArray `gorm:"type:text[]" json:"targetMachineIds"`
}

func (t *MaintenanceTemplate) BeforeCreate(tx *gorm.DB) error {
	if t.Name == "" {
		return gorm.ErrInvalidValue
	}
	if !t.Frequency.Valid() {
		return gorm.ErrInvalidValue
	}
	return nil
}
