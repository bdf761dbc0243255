package repositories

import (
	"toolroom/internal/database"
)

type Repository struct {
	Template MaintenanceTemplateRepository
	Plan     MaintenancePlanRepository
	Record   MaintenanceRecordRepository
	DailyLog DailyLogRepository
	Machine  MachineRepository
	Employee EmployeeRepository
}

func New(db database.DB) Repository {
	return Repository{
		Template: NewMaintenanceTemplateRepository(db.Cache.General),
		Plan:     NewMaintenancePlanRepository(),
		Record:   NewMaintenanceRecordRepository(db.Cache.Reports),
		DailyLog: NewDailyLogRepository(),
		Machine:  NewMachineRepository(db.Cache.General),
		Employee: NewEmployeeRepository(),
	}
}
