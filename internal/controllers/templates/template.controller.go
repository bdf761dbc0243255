package templateController

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

type TemplateController struct {
	templateRepo repositories.MaintenanceTemplateRepository
	db           database.DB
}

type CreateTemplateRequest struct {
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	Frequency        string   `json:"frequency"`
	Tasks            []string `json:"tasks"`
	TargetMachineIDs []string `json:"targetMachineIds,omitempty"`
}

type TemplateControllerInterface interface {
	CreateTemplate(ctx context.Context, request *CreateTemplateRequest) (*MaintenanceTemplate, error)
	GetTemplates(ctx context.Context, frequency *string) ([]*MaintenanceTemplate, error)
	GetTemplate(ctx context.Context, templateID uuid.UUID) (*MaintenanceTemplate, error)
}

func New(repos repositories.Repository, db database.DB) TemplateControllerInterface {
	return &TemplateController{
		templateRepo: repos.Template,
		db:           db,
	}
}

// validateTemplateRequest normalizes and checks a create request. Task labels
// keep their submitted order; blank labels are rejected rather than dropped so
// a typo in a checklist is caught at authoring time.
func validateTemplateRequest(request *CreateTemplateRequest) (Frequency, []string, error) {
	if strings.TrimSpace(request.Name) == "" {
		return "", nil, errors.New("name is required")
	}

	frequency := Frequency(request.Frequency)
	if !frequency.Valid() {
		return "", nil, errors.New("invalid frequency: " + request.Frequency)
	}

	if len(request.Tasks) == 0 {
		return "", nil, errors.New("at least one task is required")
	}

	tasks := make([]string, 0, len(request.Tasks))
	for _, task := range request.Tasks {
		trimmed := strings.TrimSpace(task)
		if trimmed == "" {
			return "", nil, errors.New("task labels cannot be empty")
		}
		tasks = append(tasks, trimmed)
	}

	return frequency, tasks, nil
}

func (c *TemplateController) CreateTemplate(
	ctx context.Context,
	request *CreateTemplateRequest,
) (*MaintenanceTemplate, error) {
	log := logger.NewWithContext(ctx, "templateController").Function("CreateTemplate")

	frequency, tasks, err := validateTemplateRequest(request)
	if err != nil {
		return nil, log.ErrorWithType(ErrValidation, "invalid template request", "error", err)
	}

	template := &MaintenanceTemplate{
		Name:             strings.TrimSpace(request.Name),
		Description:      request.Description,
		Frequency:        frequency,
		Tasks:            tasks,
		TargetMachineIDs: request.TargetMachineIDs,
	}

	if err := c.templateRepo.Create(ctx, c.db.SQL, template); err != nil {
		return nil, log.Error("failed to create template", "error", err, "name", template.Name)
	}

	log.Info("Template created", "templateID", template.ID, "frequency", frequency)
	return template, nil
}

func (c *TemplateController) GetTemplates(
	ctx context.Context,
	frequency *string,
) ([]*MaintenanceTemplate, error) {
	log := logger.NewWithContext(ctx, "templateController").Function("GetTemplates")

	var freq *Frequency
	if frequency != nil && *frequency != "" {
		f := Frequency(*frequency)
		if !f.Valid() {
			return nil, log.ErrorWithType(ErrValidation, "invalid frequency filter", "frequency", *frequency)
		}
		freq = &f
	}

	templates, err := c.templateRepo.GetAll(ctx, c.db.SQL, freq)
	if err != nil {
		return nil, log.Error("failed to get templates", "error", err)
	}

	return templates, nil
}

func (c *TemplateController) GetTemplate(
	ctx context.Context,
	templateID uuid.UUID,
) (*MaintenanceTemplate, error) {
	log := logger.NewWithContext(ctx, "templateController").Function("GetTemplate")

	if templateID == uuid.Nil {
		return nil, log.ErrorWithType(ErrValidation, "templateId is required")
	}

	template, err := c.templateRepo.GetByID(ctx, c.db.SQL, templateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "template not found", "templateID", templateID)
		}
		return nil, log.Error("failed to get template", "error", err, "templateID", templateID)
	}

	return template, nil
}
