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

type MaintenanceTemplateRepository interface {
	Create(ctx context.Context, tx *gorm.DB, template *MaintenanceTemplate) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*MaintenanceTemplate, error)
	GetAll(ctx context.Context, tx *gorm.DB, frequency *Frequency) ([]*MaintenanceTemplate, error)
}

type maintenanceTemplateRepository struct {
	cache database.CacheClient
	log   logger.Logger
}

func NewMaintenanceTemplateRepository(cache database.CacheClient) MaintenanceTemplateRepository {
	return &maintenanceTemplateRepository{
		cache: cache,
		log:   logger.New("maintenanceTemplateRepository"),
	}
}

func (r *maintenanceTemplateRepository) Create(
	ctx context.Context,
	tx *gorm.DB,
	template *MaintenanceTemplate,
) error {
	log := r.log.Function("Create")

	err := gorm.G[MaintenanceTemplate](tx).Create(ctx, template)
	if err != nil {
		return log.Err("failed to create maintenance template", err, "name", template.Name)
	}

	r.clearTemplateCache(ctx)

	return nil
}

func (r *maintenanceTemplateRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
) (*MaintenanceTemplate, error) {
	log := r.log.Function("GetByID")

	template, err := gorm.G[*MaintenanceTemplate](tx).
		Where(MaintenanceTemplate{BaseUUIDModel: BaseUUIDModel{ID: id}}).
		First(ctx)
	if err != nil {
		return nil, log.Err("failed to get maintenance template", err, "templateID", id)
	}

	return template, nil
}

func (r *maintenanceTemplateRepository) GetAll(
	ctx context.Context,
	tx *gorm.DB,
	frequency *Frequency,
) ([]*MaintenanceTemplate, error) {
	log := r.log.Function("GetAll")

	cacheKey := "all"
	if frequency != nil {
		cacheKey = string(*frequency)
	}

	var cached []*MaintenanceTemplate
	found, err := database.NewCacheBuilder(r.cache, cacheKey).
		WithContext(ctx).
		WithHash(constants.TemplateCachePrefix).
		Get(&cached)
	if err != nil {
		log.Warn("failed to get templates from cache", "key", cacheKey, "error", err)
	}

	if found {
		return cached, nil
	}

	query := tx.WithContext(ctx).Order("name ASC")
	if frequency != nil {
		query = query.Where("frequency = ?", *frequency)
	}

	var templates []*MaintenanceTemplate
	if err := query.Find(&templates).Error; err != nil {
		return nil, log.Err("failed to get maintenance templates", err, "frequency", frequency)
	}

	err = database.NewCacheBuilder(r.cache, cacheKey).
		WithContext(ctx).
		WithHash(constants.TemplateCachePrefix).
		WithStruct(templates).
		WithTTL(constants.TemplateCacheExpiry).
		Set()
	if err != nil {
		log.Warn("failed to set templates in cache", "key", cacheKey, "error", err)
	}

	return templates, nil
}

func (r *maintenanceTemplateRepository) clearTemplateCache(ctx context.Context) {
	log := r.log.Function("clearTemplateCache")

	keys := []string{"all", string(FrequencyDaily), string(FrequencyMonthly), string(FrequencyEightWeekly)}
	for _, key := range keys {
		if err := database.NewCacheBuilder(r.cache, key).
			WithContext(ctx).
			WithHash(constants.TemplateCachePrefix).
			Delete(); err != nil {
			log.Warn("failed to clear template cache", "key", key, "error", err)
		}
	}
}
