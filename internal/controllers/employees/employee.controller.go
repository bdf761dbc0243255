package employeeController

import (
	"context"
	"errors"
	"strings"
	"toolroom/internal/database"
	"toolroom/internal/logger"
	. "toolroom/internal/models"
	"toolroom/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
)

type EmployeeController struct {
	employeeRepo repositories.EmployeeRepository
	db           database.DB
}

type CreateEmployeeRequest struct {
	Name       string  `json:"name"`
	Email      *string `json:"email,omitempty"`
	Role       string  `json:"role,omitempty"`
	Department string  `json:"department,omitempty"`
}

type EmployeeControllerInterface interface {
	CreateEmployee(ctx context.Context, request *CreateEmployeeRequest) (*Employee, error)
	GetEmployees(ctx context.Context, activeOnly bool) ([]*Employee, error)
	GetEmployee(ctx context.Context, employeeID uuid.UUID) (*Employee, error)
	DeactivateEmployee(ctx context.Context, employeeID uuid.UUID) (*Employee, error)
}

func New(repos repositories.Repository, db database.DB) EmployeeControllerInterface {
	return &EmployeeController{
		employeeRepo: repos.Employee,
		db:           db,
	}
}

func validateEmployeeRole(role string) (EmployeeRole, error) {
	if role == "" {
		return RoleEmployee, nil
	}
	r := EmployeeRole(role)
	switch r {
	case RoleAdmin, RoleEmployee, RoleSupervisor, RoleTechnician:
		return r, nil
	}
	return "", errors.New("unknown role: " + role)
}

func (c *EmployeeController) CreateEmployee(
	ctx context.Context,
	request *CreateEmployeeRequest,
) (*Employee, error) {
	log := logger.NewWithContext(ctx, "employeeController").Function("CreateEmployee")

	if strings.TrimSpace(request.Name) == "" {
		return nil, log.ErrorWithType(ErrValidation, "name is required")
	}

	role, err := validateEmployeeRole(request.Role)
	if err != nil {
		return nil, log.ErrorWithType(ErrValidation, "invalid role", "error", err)
	}

	employee := &Employee{
		Name:       strings.TrimSpace(request.Name),
		Email:      request.Email,
		Role:       role,
		Department: request.Department,
		IsActive:   true,
	}

	if err := c.employeeRepo.Create(ctx, c.db.SQL, employee); err != nil {
		return nil, log.Error("failed to create employee", "error", err, "name", employee.Name)
	}

	log.Info("Employee created", "employeeID", employee.ID, "role", role)
	return employee, nil
}

func (c *EmployeeController) GetEmployees(
	ctx context.Context,
	activeOnly bool,
) ([]*Employee, error) {
	log := logger.NewWithContext(ctx, "employeeController").Function("GetEmployees")

	employees, err := c.employeeRepo.GetAll(ctx, c.db.SQL, activeOnly)
	if err != nil {
		return nil, log.Error("failed to get employees", "error", err)
	}

	return employees, nil
}

func (c *EmployeeController) GetEmployee(
	ctx context.Context,
	employeeID uuid.UUID,
) (*Employee, error) {
	log := logger.NewWithContext(ctx, "employeeController").Function("GetEmployee")

	if employeeID == uuid.Nil {
		return nil, log.ErrorWithType(ErrValidation, "employeeId is required")
	}

	employee, err := c.employeeRepo.GetByID(ctx, c.db.SQL, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "employee not found", "employeeID", employeeID)
		}
		return nil, log.Error("failed to get employee", "error", err, "employeeID", employeeID)
	}

	return employee, nil
}

func (c *EmployeeController) DeactivateEmployee(
	ctx context.Context,
	employeeID uuid.UUID,
) (*Employee, error) {
	log := logger.NewWithContext(ctx, "employeeController").Function("DeactivateEmployee")

	if employeeID == uuid.Nil {
		return nil, log.ErrorWithType(ErrValidation, "employeeId is required")
	}

	employee, err := c.employeeRepo.Update(ctx, c.db.SQL, employeeID, map[string]any{
		"is_active": false,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "employee not found", "employeeID", employeeID)
		}
		return nil, log.Error("failed to deactivate employee", "error", err, "employeeID", employeeID)
	}

	return employee, nil
}
