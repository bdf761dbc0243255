package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MachineStatus string

const (
	MachineStatusActive      MachineStatus = "active"
	MachineStatusInactive    MachineStatus = "inactive"
	MachineStatusMaintenance MachineStatus = "maintenance"
)

type Machine struct {
	BaseUUIDModel
	Name            string         `gorm:"type:text;not null"              json:"name"`
	Model           string         `gorm:"type:text;not null"              json:"model"`
	Location        string         `gorm:"type:text;not null"              json:"location"`
	SerialNumber    string         `gorm:"type:text"                       json:"serialNumber"`
	PurchaseDate    string         `gorm:"type:text"                       json:"purchaseDate"`
	ImagePath       string         `gorm:"type:text"                       json:"imagePath"`
	Status          MachineStatus  `gorm:"type:text;default:'active'"      json:"status"`
	LastMaintenance *time.Time     `gorm:"type:timestamp"                  json:"lastMaintenance,omitempty"`
	AssignedTo      string         `gorm:"type:text"                       json:"assignedTo"`
	Specs           datatypes.JSON `gorm:"type:jsonb"                      json:"specs,omitempty"`
}

func (m *Machine) BeforeCreate(tx *gorm.DB) error {
	if m.Name == "" || m.Model == "" || m.Location == "" {
		return gorm.ErrInvalidValue
	}
	if m.Status == "" {
		m.Status = MachineStatusActive
	}
	return nil
}
