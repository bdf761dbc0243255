package repositories

import (
	"context"
	"toolroom/internal/constants"
	"toolroom/internal/database"
	"toolroom/internal/logger"
	. "toolroom/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaintenanceRecordRepository interface {
	Create(ctx context.Context, tx *gorm.DB, record *MaintenanceRecord) error
	GetByMachine(ctx context.Context, tx *gorm.DB, machineID uuid.UUID, limit int) ([]*MaintenanceRecord, error)
	GetAll(ctx context.Context, tx *gorm.DB, limit int) ([]*MaintenanceRecord, error)
}

type maintenanceRecordRepository struct {
	cache database.CacheClient
	log   logger.Logger
}

func NewMaintenanceRecordRepository(cache database.CacheClient) MaintenanceRecordRepository {
	return &maintenanceRecordRepository{
		cache: cache,
		log:   logger.New("maintenanceRecordRepository"),
	}
}

func (r *maintenanceRecordRepository) Create(
	ctx context.Context,
	tx *gorm.DB,
	record *MaintenanceRecord,
) error {
	log := r.log.Function("Create")

	err := gorm.G[MaintenanceRecord](tx).Create(ctx, record)
	if err != nil {
		return log.Err(
			"failed to create maintenance record",
			err,
			"machineID", record.MachineID,
			"planID", record.PlanID,
		)
	}

	r.clearHistoryCache(ctx, record.MachineID)

	return nil
}

// GetByMachine returns the machine's maintenance history newest first. The
// reports cache absorbs dashboard polling; any new record for the machine
// clears it.
func (r *maintenanceRecordRepository) GetByMachine(
	ctx context.Context,
	tx *gorm.DB,
	machineID uuid.UUID,
	limit int,
) ([]*MaintenanceRecord, error) {
	log := r.log.Function("GetByMachine")

	var cached []*MaintenanceRecord
	found, err := database.NewCacheBuilder(r.cache, machineID).
		WithContext(ctx).
		WithHash(constants.ReportCachePrefix).
		Get(&cached)
	if err != nil {
		log.Warn("failed to get history from cache", "machineID", machineID, "error", err)
	}

	if found {
		return cached, nil
	}

	var records []*MaintenanceRecord
	err = tx.WithContext(ctx).
		Preload("PerformedBy").
		Where("machine_id = ?", machineID).
		Order("date DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, log.Err("failed to get machine history", err, "machineID", machineID)
	}

	err = database.NewCacheBuilder(r.cache, machineID).
		WithContext(ctx).
		WithHash(constants.ReportCachePrefix).
		WithStruct(records).
		WithTTL(constants.ReportCacheExpiry).
		Set()
	if err != nil {
		log.Warn("failed to set history in cache", "machineID", machineID, "error", err)
	}

	return records, nil
}

func (r *maintenanceRecordRepository) GetAll(
	ctx context.Context,
	tx *gorm.DB,
	limit int,
) ([]*MaintenanceRecord, error) {
	log := r.log.Function("GetAll")

	var records []*MaintenanceRecord
	err := tx.WithContext(ctx).
		Preload("Machine").
		Preload("PerformedBy").
		Order("date DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, log.Err("failed to get maintenance history", err)
	}

	return records, nil
}

func (r *maintenanceRecordRepository) clearHistoryCache(ctx context.Context, machineID uuid.UUID) {
	log := r.log.Function("clearHistoryCache")

	if err := database.NewCacheBuilder(r.cache, machineID).
		WithContext(ctx).
		WithHash(constants.ReportCachePrefix).
		Delete(); err != nil {
		log.Warn("failed to clear history cache", "machineID", machineID, "error", err)
	}
}
