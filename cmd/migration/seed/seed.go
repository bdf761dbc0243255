package seed

import (
	"toolroom/config"
	"toolroom/internal/logger"
	. "toolroom/internal/models"

	"gorm.io/gorm"
)

func stringPtr(s string) *string {
	return &s
}

func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("seed")
	log.Info("Seeding development data")

	if err := seedEmployees(db, log); err != nil {
		return err
	}
	if err := seedMachines(db, log); err != nil {
		return err
	}
	if err := seedTemplates(db, log); err != nil {
		return err
	}

	return nil
}

func seedEmployees(db *gorm.DB, log logger.Logger) error {
	employees := []Employee{
		{
			Name:       "Marta Kowalski",
			Email:      stringPtr("marta.kowalski@example.com"),
			Role:       RoleSupervisor,
			Department: "Toolroom",
			IsActive:   true,
		},
		{
			Name:       "Dev Patel",
			Email:      stringPtr("dev.patel@example.com"),
			Role:       RoleTechnician,
			Department: "Maintenance",
			IsActive:   true,
		},
		{
			Name:       "Sam Reyes",
			Email:      stringPtr("sam.reyes@example.com"),
			Role:       RoleEmployee,
			Department: "Production",
			IsActive:   true,
		},
	}

	for _, employee := range employees {
		var existing Employee
		if err := db.First(&existing, "email = ?", employee.Email).Error; err == nil {
			log.Info("Employee already exists", "email", *employee.Email)
			continue
		}
		if err := db.Create(&employee).Error; err != nil {
			return log.Err("failed to seed employee", err, "name", employee.Name)
		}
	}

	log.Info("Employees seeded", "count", len(employees))
	return nil
}

func seedMachines(db *gorm.DB, log logger.Logger) error {
	machines := []Machine{
		{
			Name:         "Lathe 4",
			Model:        "Colchester Student 2500",
			Location:     "Bay A",
			SerialNumber: "CS-2500-0417",
			Status:       MachineStatusActive,
			PurchaseDate: "2018-05-12",
		},
		{
			Name:         "Mill 2",
			Model:        "Bridgeport Series I",
			Location:     "Bay B",
			SerialNumber: "BP-S1-1182",
			Status:       MachineStatusActive,
			PurchaseDate: "2015-11-03",
		},
		{
			Name:     "Surface Grinder 1",
			Model:    "Jones & Shipman 540",
			Location: "Bay C",
			Status:   MachineStatusMaintenance,
		},
	}

	for _, machine := range machines {
		var existing Machine
		if err := db.First(&existing, "name = ? AND model = ?", machine.Name, machine.Model).Error; err == nil {
			log.Info("Machine already exists", "name", machine.Name)
			continue
		}
		if err := db.Create(&machine).Error; err != nil {
			return log.Err("failed to seed machine", err, "name", machine.Name)
		}
	}

	log.Info("Machines seeded", "count", len(machines))
	return nil
}

func seedTemplates(db *gorm.DB, log logger.Logger) error {
	templates := []MaintenanceTemplate{
		{
			Name:        "Daily Inspection",
			Description: "Start-of-shift walkaround",
			Frequency:   FrequencyDaily,
			Tasks:       []string{"Check guards in place", "Wipe down ways", "Check coolant level", "Listen for abnormal noise"},
		},
		{
			Name:        "Lubrication Round",
			Description: "Monthly lubrication of all grease points",
			Frequency:   FrequencyMonthly,
			Tasks:       []string{"Grease spindle bearings", "Oil leadscrews", "Top up one-shot lube", "Check oil sight glasses"},
		},
		{
			Name:        "Spindle Overhaul Check",
			Description: "Deep inspection every eight weeks",
			Frequency:   FrequencyEightWeekly,
			Tasks:       []string{"Measure spindle runout", "Inspect drive belts", "Check gib adjustment", "Calibrate DRO", "Replace coolant filter"},
		},
	}

	for _, template := range templates {
		var existing MaintenanceTemplate
		if err := db.First(&existing, "name = ?", template.Name).Error; err == nil {
			log.Info("Template already exists", "name", template.Name)
			continue
		}
		if err := db.Create(&template).Error; err != nil {
			return log.Err("failed to seed template", err, "name", template.Name)
		}
	}

	log.Info("Templates seeded", "count", len(templates))
	return nil
}
