package controllers

import (
	"toolroom/config"
	"toolroom/internal/database"
	"toolroom/internal/repositories"
	"toolroom/internal/services"

	employeeController "toolroom/internal/controllers/employees"
	machineController "toolroom/internal/controllers/machines"
	plannerController "toolroom/internal/controllers/planner"
	planController "toolroom/internal/controllers/plans"
	reportController "toolroom/internal/controllers/reports"
	templateController "toolroom/internal/controllers/templates"
)

type Controllers struct {
	Template templateController.TemplateControllerInterface
	Planner  plannerController.PlannerControllerInterface
	Plan     planController.PlanControllerInterface
	Report   reportController.ReportControllerInterface
	Machine  machineController.MachineControllerInterface
	Employee employeeController.EmployeeControllerInterface
}

func New(
	services services.Service,
	repos repositories.Repository,
	config config.Config,
	db database.DB,
) Controllers {
	return Controllers{
		Template: templateController.New(repos, db),
		Planner:  plannerController.New(repos, services, db),
		Plan:     planController.New(repos, services, db),
		Report:   reportController.New(repos, db),
		Machine:  machineController.New(repos, db),
		Employee: employeeController.New(repos, db),
	}
}
