package planController

import (
	"context"
	"errors"
	"time"
	"toolroom/internal/database"
	"toolroom/internal/logger"
	. "toolroom/internal/models"
	"toolroom/internal/repositories"
	"toolroom/internal/services"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func pqStringArray(values []string) pq.StringArray {
	out := make(pq.StringArray, len(values))
	copy(out, values)
	return out
}

const DailyLogDateLayout = "2006-01-02"

var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
)

type PlanController struct {
	planRepo           repositories.MaintenancePlanRepository
	templateRepo       repositories.MaintenanceTemplateRepository
	recordRepo         repositories.MaintenanceRecordRepository
	dailyLogRepo       repositories.DailyLogRepository
	machineRepo        repositories.MachineRepository
	transactionService *services.TransactionService
	db                 database.DB
}

type UpdateAllocationRequest struct {
	Status         *string  `json:"status,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
	CompletedTasks []string `json:"completedTasks,omitempty"`
	EvidenceURL    *string  `json:"evidenceUrl,omitempty"`
}

type CompletePlanRequest struct {
	Checklist    []ChecklistItem  `json:"checklist"`
	OverallNotes *string          `json:"overallNotes,omitempty"`
	EvidenceURL  *string          `json:"evidenceUrl,omitempty"`
	PerformedBy  *uuid.UUID       `json:"performedBy,omitempty"`
	Cost         *decimal.Decimal `json:"cost,omitempty"`
}

type UpsertDailyLogRequest struct {
	MachineID   uuid.UUID  `json:"machineId"`
	Date        string     `json:"date"`
	Status      string     `json:"status"`
	Notes       string     `json:"notes,omitempty"`
	CheckedByID *uuid.UUID `json:"checkedBy,omitempty"`
}

type PlanControllerInterface interface {
	GetPlan(ctx context.Context, planID uuid.UUID) (*MaintenancePlan, error)
	Assign(ctx context.Context, planID, employeeID uuid.UUID) (*MaintenancePlan, error)
	UpdateAllocation(ctx context.Context, planID uuid.UUID, request *UpdateAllocationRequest) (*MaintenancePlan, error)
	Complete(ctx context.Context, planID uuid.UUID, request *CompletePlanRequest) (*MaintenanceRecord, error)
	UpsertDailyLog(ctx context.Context, request *UpsertDailyLogRequest) (*DailyLog, error)
}

func New(
	repos repositories.Repository,
	services services.Service,
	db database.DB,
) PlanControllerInterface {
	return &PlanController{
		planRepo:           repos.Plan,
		templateRepo:       repos.Template,
		recordRepo:         repos.Record,
		dailyLogRepo:       repos.DailyLog,
		machineRepo:        repos.Machine,
		transactionService: services.Transaction,
		db:                 db,
	}
}

func (c *PlanController) GetPlan(
	ctx context.Context,
	planID uuid.UUID,
) (*MaintenancePlan, error) {
	log := logger.NewWithContext(ctx, "planController").Function("GetPlan")

	if planID == uuid.Nil {
		return nil, log.ErrorWithType(ErrValidation, "planId is required")
	}

	plan, err := c.planRepo.GetByID(ctx, c.db.SQL, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "plan not found", "planID", planID)
		}
		return nil, log.Error("failed to get plan", "error", err, "planID", planID)
	}

	return plan, nil
}

// Assign puts a plan in an employee's hands and moves it to active in the
// same write. Terminal plans cannot be reassigned; the record already exists
// or the plan left the working set.
func (c *PlanController) Assign(
	ctx context.Context,
	planID, employeeID uuid.UUID,
) (*MaintenancePlan, error) {
	log := logger.NewWithContext(ctx, "planController").Function("Assign")

	if planID == uuid.Nil || employeeID == uuid.Nil {
		return nil, log.ErrorWithType(ErrValidation, "planId and employeeId are required")
	}

	plan, err := c.planRepo.GetByID(ctx, c.db.SQL, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "plan not found", "planID", planID)
		}
		return nil, log.Error("failed to load plan", "error", err, "planID", planID)
	}

	if plan.Status.Terminal() {
		return nil, log.ErrorWithType(
			ErrInvalidState,
			"cannot assign a finished plan",
			"planID", planID,
			"status", plan.Status,
		)
	}

	updated, err := c.planRepo.Update(ctx, c.db.SQL, planID, map[string]any{
		"assigned_employee_id": employeeID,
		"status":               PlanStatusActive,
	})
	if err != nil {
		return nil, log.Error("failed to assign plan", "error", err, "planID", planID)
	}

	log.Info("Plan assigned", "planID", planID, "employeeID", employeeID)
	return updated, nil
}

// UpdateAllocation applies a partial update to a plan. Status changes go
// through the lifecycle state machine; everything else is a plain field
// write. This path never mints a maintenance record, even when the caller
// pushes status to completed by hand.
func (c *PlanController) UpdateAllocation(
	ctx context.Context,
	planID uuid.UUID,
	request *UpdateAllocationRequest,
) (*MaintenancePlan, error) {
	log := logger.NewWithContext(ctx, "planController").Function("UpdateAllocation")

	if planID == uuid.Nil {
		return nil, log.ErrorWithType(ErrValidation, "planId is required")
	}

	plan, err := c.planRepo.GetByID(ctx, c.db.SQL, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "plan not found", "planID", planID)
		}
		return nil, log.Error("failed to load plan", "error", err, "planID", planID)
	}

	updates, err := buildAllocationUpdates(plan.Status, request)
	if err != nil {
		if errors.Is(err, errBadTransition) {
			return nil, log.ErrorWithType(
				ErrInvalidState,
				"status transition not allowed",
				"planID", planID,
				"from", plan.Status,
			)
		}
		return nil, log.ErrorWithType(ErrValidation, "invalid update request", "error", err)
	}

	if len(updates) == 0 {
		return nil, log.ErrorWithType(ErrValidation, "no fields to update")
	}

	updated, err := c.planRepo.Update(ctx, c.db.SQL, planID, updates)
	if err != nil {
		return nil, log.Error("failed to update plan", "error", err, "planID", planID)
	}

	return updated, nil
}

var errBadTransition = errors.New("transition not allowed")

// buildAllocationUpdates translates a partial-update request into column
// writes. Pointer fields distinguish "leave alone" from "set to zero value".
func buildAllocationUpdates(
	current PlanStatus,
	request *UpdateAllocationRequest,
) (map[string]any, error) {
	updates := make(map[string]any)

	if request.Status != nil {
		next := PlanStatus(*request.Status)
		if !next.Valid() {
			return nil, errors.New("unknown status: " + *request.Status)
		}
		if !current.CanTransition(next) {
			return nil, errBadTransition
		}
		if next != current {
			updates["status"] = next
		}
	}

	if request.Notes != nil {
		updates["notes"] = *request.Notes
	}

	if request.CompletedTasks != nil {
		updates["completed_tasks"] = pqStringArray(request.CompletedTasks)
	}

	if request.EvidenceURL != nil {
		updates["evidence_url"] = *request.EvidenceURL
	}

	return updates, nil
}

// Complete is the only path that mints a maintenance record. Both writes, the
// record insert and the plan mutation, happen inside one transaction so a
// crash cannot leave a completed plan without its audit row or vice versa.
func (c *PlanController) Complete(
	ctx context.Context,
	planID uuid.UUID,
	request *CompletePlanRequest,
) (*MaintenanceRecord, error) {
	log := logger.NewWithContext(ctx, "planController").Function("Complete")

	if planID == uuid.Nil {
		return nil, log.ErrorWithType(ErrValidation, "planId is required")
	}

	if len(request.Checklist) == 0 {
		return nil, log.ErrorWithType(ErrValidation, "checklist is required")
	}

	var record *MaintenanceRecord
	err := c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		plan, err := c.planRepo.GetByID(ctx, tx, planID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return log.ErrorWithType(ErrNotFound, "plan not found", "planID", planID)
			}
			return log.Error("failed to load plan", "error", err, "planID", planID)
		}

		if plan.Status.Terminal() {
			return log.ErrorWithType(
				ErrInvalidState,
				"plan already completed",
				"planID", planID,
				"status", plan.Status,
			)
		}

		frequency, backfilled := resolveFrequency(plan)
		if backfilled {
			log.Warn(
				"plan missing frequency, backfilling",
				"planID", planID,
				"resolved", frequency,
			)
		}
		if frequency != plan.Frequency {
			// Persist the backfill alongside the completion so the gap is
			// closed, not papered over.
			if _, err := c.planRepo.Update(ctx, tx, planID, map[string]any{
				"frequency": frequency,
			}); err != nil {
				return log.Error("failed to backfill frequency", "error", err, "planID", planID)
			}
		}

		performedBy := request.PerformedBy
		if performedBy == nil {
			performedBy = plan.AssignedEmployeeID
		}

		overallNotes := ""
		if request.OverallNotes != nil {
			overallNotes = *request.OverallNotes
		}

		completedAt := time.Now()
		record = &MaintenanceRecord{
			MachineID:     plan.MachineID,
			PlanID:        plan.ID,
			Frequency:     frequency,
			Date:          completedAt,
			PerformedByID: performedBy,
			Checklist:     request.Checklist,
			OverallNotes:  overallNotes,
			EvidenceURL:   request.EvidenceURL,
			Cost:          request.Cost,
		}

		if err := c.recordRepo.Create(ctx, tx, record); err != nil {
			return log.Error("failed to create maintenance record", "error", err, "planID", planID)
		}

		updates := map[string]any{
			"status":          PlanStatusCompleted,
			"notes":           overallNotes,
			"performed_by_id": performedBy,
			"completed_tasks": pqStringArray(record.CheckedTasks()),
		}
		if request.EvidenceURL != nil {
			updates["evidence_url"] = *request.EvidenceURL
		}

		if _, err := c.planRepo.Update(ctx, tx, planID, updates); err != nil {
			return log.Error("failed to mark plan completed", "error", err, "planID", planID)
		}

		if err := c.machineRepo.TouchLastMaintenance(ctx, tx, plan.MachineID, completedAt); err != nil {
			return log.Error("failed to stamp machine", "error", err, "machineID", plan.MachineID)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(
		"Plan completed",
		"planID", planID,
		"recordID", record.ID,
		"machineID", record.MachineID,
	)

	return record, nil
}

// resolveFrequency fills the gap for plans created before frequency was
// copied onto the plan row. The plan's own value wins; the template is the
// fallback and Daily the last resort when the template is gone.
func resolveFrequency(plan *MaintenancePlan) (Frequency, bool) {
	if plan.Frequency.Valid() {
		return plan.Frequency, false
	}

	if plan.Template != nil && plan.Template.Frequency.Valid() {
		return plan.Template.Frequency, true
	}

	return FrequencyDaily, true
}

// UpsertDailyLog records the daily check-in for one machine on one date.
// One row per pair; repeat submissions overwrite.
func (c *PlanController) UpsertDailyLog(
	ctx context.Context,
	request *UpsertDailyLogRequest,
) (*DailyLog, error) {
	log := logger.NewWithContext(ctx, "planController").Function("UpsertDailyLog")

	if request.MachineID == uuid.Nil {
		return nil, log.ErrorWithType(ErrValidation, "machineId is required")
	}

	if _, err := time.Parse(DailyLogDateLayout, request.Date); err != nil {
		return nil, log.ErrorWithType(ErrValidation, "invalid date, expected YYYY-MM-DD", "date", request.Date)
	}

	status := DailyLogStatus(request.Status)
	if status == "" {
		status = DailyLogStatusPending
	}
	switch status {
	case DailyLogStatusPending, DailyLogStatusCompleted, DailyLogStatusSkipped:
	default:
		return nil, log.ErrorWithType(ErrValidation, "unknown daily log status", "status", request.Status)
	}

	dailyLog, err := c.dailyLogRepo.Upsert(ctx, c.db.SQL, &DailyLog{
		MachineID:   request.MachineID,
		Date:        request.Date,
		Status:      status,
		Notes:       request.Notes,
		CheckedByID: request.CheckedByID,
	})
	if err != nil {
		return nil, log.Error(
			"failed to upsert daily log",
			"error", err,
			"machineID", request.MachineID,
			"date", request.Date,
		)
	}

	return dailyLog, nil
}
