package repositories

import (
	"context"
	"time"
	"toolroom/internal/constants"
	"toolroom/internal/database"
	"toolroom/internal/logger"
	. "toolroom/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MachineRepository interface {
	Create(ctx context.Context, tx *gorm.DB, machine *Machine) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*Machine, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*Machine, error)
	Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) (*Machine, error)
	TouchLastMaintenance(ctx context.Context, tx *gorm.DB, id uuid.UUID, at time.Time) error
}

type machineRepository struct {
	cache database.CacheClient
	log   logger.Logger
}

func NewMachineRepository(cache database.CacheClient) MachineRepository {
	return &machineRepository{
		cache: cache,
		log:   logger.New("machineRepository"),
	}
}

func (r *machineRepository) Create(ctx context.Context, tx *gorm.DB, machine *Machine) error {
	log := r.log.Function("Create")

	err := gorm.G[Machine](tx).Create(ctx, machine)
	if err != nil {
		return log.Err("failed to create machine", err, "name", machine.Name)
	}

	r.clearMachineCache(ctx)

	return nil
}

func (r *machineRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
) (*Machine, error) {
	log := r.log.Function("GetByID")

	machine, err := gorm.G[*Machine](tx).
		Where(Machine{BaseUUIDModel: BaseUUIDModel{ID: id}}).
		First(ctx)
	if err != nil {
		return nil, log.Err("failed to get machine", err, "machineID", id)
	}

	return machine, nil
}

func (r *machineRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]*Machine, error) {
	log := r.log.Function("GetAll")

	var cached []*Machine
	found, err := database.NewCacheBuilder(r.cache, "all").
		WithContext(ctx).
		WithHash(constants.MachineCachePrefix).
		Get(&cached)
	if err != nil {
		log.Warn("failed to get machines from cache", "error", err)
	}

	if found {
		return cached, nil
	}

	machines, err := gorm.G[*Machine](tx).Order("name ASC").Find(ctx)
	if err != nil {
		return nil, log.Err("failed to get machines", err)
	}

	err = database.NewCacheBuilder(r.cache, "all").
		WithContext(ctx).
		WithHash(constants.MachineCachePrefix).
		WithStruct(machines).
		WithTTL(constants.MachineCacheExpiry).
		Set()
	if err != nil {
		log.Warn("failed to set machines in cache", "error", err)
	}

	return machines, nil
}

func (r *machineRepository) Update(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
	updates map[string]any,
) (*Machine, error) {
	log := r.log.Function("Update")

	result := tx.WithContext(ctx).Model(&Machine{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, log.Err("failed to update machine", result.Error, "machineID", id)
	}
	if result.RowsAffected == 0 {
		return nil, log.Err("machine not found", gorm.ErrRecordNotFound, "machineID", id)
	}

	r.clearMachineCache(ctx)

	return r.GetByID(ctx, tx, id)
}

// TouchLastMaintenance stamps the machine after a completed plan so fleet
// views can sort by staleness without joining records.
func (r *machineRepository) TouchLastMaintenance(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
	at time.Time,
) error {
	log := r.log.Function("TouchLastMaintenance")

	err := tx.WithContext(ctx).Model(&Machine{}).
		Where("id = ?", id).
		Update("last_maintenance", at).Error
	if err != nil {
		return log.Err("failed to touch last maintenance", err, "machineID", id)
	}

	r.clearMachineCache(ctx)

	return nil
}

func (r *machineRepository) clearMachineCache(ctx context.Context) {
	log := r.log.Function("clearMachineCache")

	if err := database.NewCacheBuilder(r.cache, "all").
		WithContext(ctx).
		WithHash(constants.MachineCachePrefix).
		Delete(); err != nil {
		log.Warn("failed to clear machine cache", "error", err)
	}
}
