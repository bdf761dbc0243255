package repositories

import (
	"context"
	"time"
	"toolroom/internal/logger"
	. "toolroom/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const planBatchSize = 200

type MaintenancePlanRepository interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, plans []*MaintenancePlan) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*MaintenancePlan, error)
	Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) (*MaintenancePlan, error)
	GetActive(ctx context.Context, tx *gorm.DB) ([]*MaintenancePlan, error)
	GetByFrequency(ctx context.Context, tx *gorm.DB, frequency Frequency, statuses []PlanStatus) ([]*MaintenancePlan, error)
	GetUpcomingForMachine(ctx context.Context, tx *gorm.DB, machineID uuid.UUID, limit int) ([]*MaintenancePlan, error)
	MarkOverdue(ctx context.Context, tx *gorm.DB, before time.Time) (int64, error)
	ArchiveTerminal(ctx context.Context, tx *gorm.DB, before time.Time) (int64, error)
}

type maintenancePlanRepository struct {
	log logger.Logger
}

func NewMaintenancePlanRepository() MaintenancePlanRepository {
	return &maintenancePlanRepository{
		log: logger.New("maintenancePlanRepository"),
	}
}

// CreateBatch inserts a full generation run in one statement batch. The
// generator validates everything up front, so a failure here rolls the whole
// run back rather than leaving a partial series behind.
func (r *maintenancePlanRepository) CreateBatch(
	ctx context.Context,
	tx *gorm.DB,
	plans []*MaintenancePlan,
) error {
	log := r.log.Function("CreateBatch")

	if len(plans) == 0 {
		return nil
	}

	if err := tx.WithContext(ctx).CreateInBatches(plans, planBatchSize).Error; err != nil {
		return log.Err("failed to create maintenance plans", err, "count", len(plans))
	}

	return nil
}

func (r *maintenancePlanRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
) (*MaintenancePlan, error) {
	log := r.log.Function("GetByID")

	plan, err := gorm.G[*MaintenancePlan](tx).
		Preload("Template", nil).
		Preload("Machine", nil).
		Preload("AssignedEmployee", nil).
		Preload("PerformedBy", nil).
		Where(MaintenancePlan{BaseUUIDModel: BaseUUIDModel{ID: id}}).
		First(ctx)
	if err != nil {
		return nil, log.Err("failed to get maintenance plan", err, "planID", id)
	}

	return plan, nil
}

func (r *maintenancePlanRepository) Update(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
	updates map[string]any,
) (*MaintenancePlan, error) {
	log := r.log.Function("Update")

	result := tx.WithContext(ctx).Model(&MaintenancePlan{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, log.Err("failed to update maintenance plan", result.Error, "planID", id)
	}
	if result.RowsAffected == 0 {
		return nil, log.Err("maintenance plan not found", gorm.ErrRecordNotFound, "planID", id)
	}

	return r.GetByID(ctx, tx, id)
}

// GetActive returns every plan still on the board: planned or active.
// Overdue plans surface through the frequency views; completed and archived
// plans belong to history.
func (r *maintenancePlanRepository) GetActive(
	ctx context.Context,
	tx *gorm.DB,
) ([]*MaintenancePlan, error) {
	log := r.log.Function("GetActive")

	var plans []*MaintenancePlan
	err := tx.WithContext(ctx).
		Preload("Machine").
		Preload("AssignedEmployee").
		Where("status IN ?", []PlanStatus{PlanStatusPlanned, PlanStatusActive}).
		Order("scheduled_date ASC").
		Find(&plans).Error
	if err != nil {
		return nil, log.Err("failed to get active maintenance plans", err)
	}

	return plans, nil
}

func (r *maintenancePlanRepository) GetByFrequency(
	ctx context.Context,
	tx *gorm.DB,
	frequency Frequency,
	statuses []PlanStatus,
) ([]*MaintenancePlan, error) {
	log := r.log.Function("GetByFrequency")

	query := tx.WithContext(ctx).
		Preload("Machine").
		Preload("AssignedEmployee").
		Where("frequency = ?", frequency)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}

	var plans []*MaintenancePlan
	if err := query.Order("scheduled_date ASC").Find(&plans).Error; err != nil {
		return nil, log.Err("failed to get plans by frequency", err, "frequency", frequency)
	}

	return plans, nil
}

func (r *maintenancePlanRepository) GetUpcomingForMachine(
	ctx context.Context,
	tx *gorm.DB,
	machineID uuid.UUID,
	limit int,
) ([]*MaintenancePlan, error) {
	log := r.log.Function("GetUpcomingForMachine")

	// No date floor: a plan whose date has passed stays "upcoming" until the
	// sweep flips it overdue, so nothing vanishes between the two.
	var plans []*MaintenancePlan
	err := tx.WithContext(ctx).
		Preload("Template").
		Preload("AssignedEmployee").
		Where("machine_id = ?", machineID).
		Where("status IN ?", []PlanStatus{PlanStatusPlanned, PlanStatusActive}).
		Order("scheduled_date ASC").
		Limit(limit).
		Find(&plans).Error
	if err != nil {
		return nil, log.Err("failed to get upcoming plans", err, "machineID", machineID)
	}

	return plans, nil
}

// MarkOverdue flips every plan whose scheduled date has passed without a
// completion. Bulk update so the sweep scales with one statement regardless
// of how far behind the floor is.
func (r *maintenancePlanRepository) MarkOverdue(
	ctx context.Context,
	tx *gorm.DB,
	before time.Time,
) (int64, error) {
	log := r.log.Function("MarkOverdue")

	result := tx.WithContext(ctx).Model(&MaintenancePlan{}).
		Where("scheduled_date < ?", before).
		Where("status IN ?", []PlanStatus{PlanStatusPlanned, PlanStatusActive}).
		Update("status", PlanStatusOverdue)
	if result.Error != nil {
		return 0, log.Err("failed to mark overdue plans", result.Error)
	}

	return result.RowsAffected, nil
}

// ArchiveTerminal moves old completed and overdue plans out of the working
// set. Overdue plans are archived too once stale enough so abandoned work
// stops cluttering the dashboards.
func (r *maintenancePlanRepository) ArchiveTerminal(
	ctx context.Context,
	tx *gorm.DB,
	before time.Time,
) (int64, error) {
	log := r.log.Function("ArchiveTerminal")

	result := tx.WithContext(ctx).Model(&MaintenancePlan{}).
		Where("scheduled_date < ?", before).
		Where("status IN ?", []PlanStatus{PlanStatusCompleted, PlanStatusOverdue}).
		Update("status", PlanStatusArchived)
	if result.Error != nil {
		return 0, log.Err("failed to archive terminal plans", result.Error)
	}

	return result.RowsAffected, nil
}
