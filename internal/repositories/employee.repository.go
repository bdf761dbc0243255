package repositories

import (
	"context"
	"toolroom/internal/logger"
	. "toolroom/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(ctx context.Context, tx *gorm.DB, employee *Employee) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*Employee, error)
	GetAll(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]*Employee, error)
	Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) (*Employee, error)
}

type employeeRepository struct {
	log logger.Logger
}

func NewEmployeeRepository() EmployeeRepository {
	return &employeeRepository{
		log: logger.New("employeeRepository"),
	}
}

func (r *employeeRepository) Create(ctx context.Context, tx *gorm.DB, employee *Employee) error {
	log := r.log.Function("Create")

	err := gorm.G[Employee](tx).Create(ctx, employee)
	if err != nil {
		return log.Err("failed to create employee", err, "name", employee.Name)
	}

	return nil
}

func (r *employeeRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
) (*Employee, error) {
	log := r.log.Function("GetByID")

	employee, err := gorm.G[*Employee](tx).
		Where(Employee{BaseUUIDModel: BaseUUIDModel{ID: id}}).
		First(ctx)
	if err != nil {
		return nil, log.Err("failed to get employee", err, "employeeID", id)
	}

	return employee, nil
}

func (r *employeeRepository) GetAll(
	ctx context.Context,
	tx *gorm.DB,
	activeOnly bool,
) ([]*Employee, error) {
	log := r.log.Function("GetAll")

	query := tx.WithContext(ctx).Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var employees []*Employee
	if err := query.Find(&employees).Error; err != nil {
		return nil, log.Err("failed to get employees", err)
	}

	return employees, nil
}

func (r *employeeRepository) Update(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
	updates map[string]any,
) (*Employee, error) {
	log := r.log.Function("Update")

	result := tx.WithContext(ctx).Model(&Employee{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, log.Err("failed to update employee", result.Error, "employeeID", id)
	}
	if result.RowsAffected == 0 {
		return nil, log.Err("employee not found", gorm.ErrRecordNotFound, "employeeID", id)
	}

	return r.GetByID(ctx, tx, id)
}
