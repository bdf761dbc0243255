package machineController

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"toolroom/internal/database"
	"toolroom/internal/logger"
	. "toolroom/internal/models"
	"toolroom/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
)

type MachineController struct {
	machineRepo repositories.MachineRepository
	db          database.DB
}

type CreateMachineRequest struct {
	Name         string          `json:"name"`
	Model        string          `json:"model"`
	Location     string          `json:"location"`
	SerialNumber string          `json:"serialNumber,omitempty"`
	PurchaseDate string          `json:"purchaseDate,omitempty"`
	ImagePath    string          `json:"imagePath,omitempty"`
	Status       string          `json:"status,omitempty"`
	AssignedTo   string          `json:"assignedTo,omitempty"`
	Specs        json.RawMessage `json:"specs,omitempty"`
}

type UpdateMachineRequest struct {
	Name       *string         `json:"name,omitempty"`
	Model      *string         `json:"model,omitempty"`
	Location   *string         `json:"location,omitempty"`
	Status     *string         `json:"status,omitempty"`
	AssignedTo *string         `json:"assignedTo,omitempty"`
	ImagePath  *string         `json:"imagePath,omitempty"`
	Specs      json.RawMessage `json:"specs,omitempty"`
}

type MachineControllerInterface interface {
	CreateMachine(ctx context.Context, request *CreateMachineRequest) (*Machine, error)
	GetMachines(ctx context.Context) ([]*Machine, error)
	GetMachine(ctx context.Context, machineID uuid.UUID) (*Machine, error)
	UpdateMachine(ctx context.Context, machineID uuid.UUID, request *UpdateMachineRequest) (*Machine, error)
}

func New(repos repositories.Repository, db database.DB) MachineControllerInterface {
	return &MachineController{
		machineRepo: repos.Machine,
		db:          db,
	}
}

func validateMachineStatus(status string) (MachineStatus, error) {
	if status == "" {
		return MachineStatusActive, nil
	}
	s := MachineStatus(status)
	switch s {
	case MachineStatusActive, MachineStatusInactive, MachineStatusMaintenance:
		return s, nil
	}
	return "", errors.New("unknown machine status: " + status)
}

func (c *MachineController) CreateMachine(
	ctx context.Context,
	request *CreateMachineRequest,
) (*Machine, error) {
	log := logger.NewWithContext(ctx, "machineController").Function("CreateMachine")

	if strings.TrimSpace(request.Name) == "" ||
		strings.TrimSpace(request.Model) == "" ||
		strings.TrimSpace(request.Location) == "" {
		return nil, log.ErrorWithType(ErrValidation, "name, model, and location are required")
	}

	status, err := validateMachineStatus(request.Status)
	if err != nil {
		return nil, log.ErrorWithType(ErrValidation, "invalid status", "error", err)
	}

	machine := &Machine{
		Name:         strings.TrimSpace(request.Name),
		Model:        strings.TrimSpace(request.Model),
		Location:     strings.TrimSpace(request.Location),
		SerialNumber: request.SerialNumber,
		PurchaseDate: request.PurchaseDate,
		ImagePath:    request.ImagePath,
		Status:       status,
		AssignedTo:   request.AssignedTo,
		Specs:        datatypes.JSON(request.Specs),
	}

	if err := c.machineRepo.Create(ctx, c.db.SQL, machine); err != nil {
		return nil, log.Error("failed to create machine", "error", err, "name", machine.Name)
	}

	log.Info("Machine created", "machineID", machine.ID, "name", machine.Name)
	return machine, nil
}

func (c *MachineController) GetMachines(ctx context.Context) ([]*Machine, error) {
	log := logger.NewWithContext(ctx, "machineController").Function("GetMachines")

	machines, err := c.machineRepo.GetAll(ctx, c.db.SQL)
	if err != nil {
		return nil, log.Error("failed to get machines", "error", err)
	}

	return machines, nil
}

func (c *MachineController) GetMachine(
	ctx context.Context,
	machineID uuid.UUID,
) (*Machine, error) {
	log := logger.NewWithContext(ctx, "machineController").Function("GetMachine")

	if machineID == uuid.Nil {
		return nil, log.ErrorWithType(ErrValidation, "machineId is required")
	}

	machine, err := c.machineRepo.GetByID(ctx, c.db.SQL, machineID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "machine not found", "machineID", machineID)
		}
		return nil, log.Error("failed to get machine", "error", err, "machineID", machineID)
	}

	return machine, nil
}

func (c *MachineController) UpdateMachine(
	ctx context.Context,
	machineID uuid.UUID,
	request *UpdateMachineRequest,
) (*Machine, error) {
	log := logger.NewWithContext(ctx, "machineController").Function("UpdateMachine")

	if machineID == uuid.Nil {
		return nil, log.ErrorWithType(ErrValidation, "machineId is required")
	}

	updates := make(map[string]any)

	if request.Name != nil {
		if strings.TrimSpace(*request.Name) == "" {
			return nil, log.ErrorWithType(ErrValidation, "name cannot be empty")
		}
		updates["name"] = strings.TrimSpace(*request.Name)
	}
	if request.Model != nil {
		updates["model"] = *request.Model
	}
	if request.Location != nil {
		updates["location"] = *request.Location
	}
	if request.Status != nil {
		status, err := validateMachineStatus(*request.Status)
		if err != nil {
			return nil, log.ErrorWithType(ErrValidation, "invalid status", "error", err)
		}
		updates["status"] = status
	}
	if request.AssignedTo != nil {
		updates["assigned_to"] = *request.AssignedTo
	}
	if request.ImagePath != nil {
		updates["image_path"] = *request.ImagePath
	}
	if request.Specs != nil {
		updates["specs"] = datatypes.JSON(request.Specs)
	}

	if len(updates) == 0 {
		return nil, log.ErrorWithType(ErrValidation, "no fields to update")
	}

	machine, err := c.machineRepo.Update(ctx, c.db.SQL, machineID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "machine not found", "machineID", machineID)
		}
		return nil, log.Error("failed to update machine", "error", err, "machineID", machineID)
	}

	return machine, nil
}
