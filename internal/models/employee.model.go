package models

import "gorm.io/gorm"

type EmployeeRole string

const (
	RoleAdmin      EmployeeRole = "admin"
	RoleEmployee   EmployeeRole = "employee"
	RoleSupervisor EmployeeRole = "supervisor"
	RoleTechnician EmployeeRole = "technician"
)

// Employee is the registry entry maintenance work is assigned to. Identity and
// authentication live outside this service; this is reference data only.
type Employee struct {
	BaseUUIDModel
	Name       string       `gorm:"type:text;not null"              json:"name"`
	Email      *string      `gorm:"type:text;uniqueIndex"           json:"email,omitempty"`
	Role       EmployeeRole `gorm:"type:text;default:'employee'"    json:"role"`
	Department string       `gorm:"type:text"                       json:"department"`
	IsActive   bool         `gorm:"type:bool;default:true"          json:"isActive"`
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.Name == "" {
		return gorm.ErrInvalidValue
	}
	if e.Role == "" {
		e.Role = RoleEmployee
	}
	return nil
}
