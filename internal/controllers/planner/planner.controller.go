package plannerController

import (
	"context"
	"errors"
	"fmt"
	"time"
	"toolroom/internal/database"
	"toolroom/internal/logger"
	. "toolroom/internal/models"
	"toolroom/internal/repositories"
	"toolroom/internal/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const ScheduleDateLayout = "2006-01-02"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
)

type PlannerController struct {
	templateRepo       repositories.MaintenanceTemplateRepository
	planRepo           repositories.MaintenancePlanRepository
	transactionService *services.TransactionService
	db                 database.DB
}

// Allocation pairs a machine with an optional assignee for one generation run.
type Allocation struct {
	MachineID          uuid.UUID  `json:"machineId"`
	AssignedEmployeeID *uuid.UUID `json:"assignedEmployeeId,omitempty"`
}

type GeneratePlansRequest struct {
	TemplateID  uuid.UUID    `json:"templateId"`
	Name        string       `json:"name,omitempty"`
	StartDate   string       `json:"startDate"`
	EndDate     string       `json:"endDate"`
	Allocations []Allocation `json:"allocations"`
}

type PlannerControllerInterface interface {
	GeneratePlans(ctx context.Context, request *GeneratePlansRequest) ([]*MaintenancePlan, error)
}

func New(
	repos repositories.Repository,
	services services.Service,
	db database.DB,
) PlannerControllerInterface {
	return &PlannerController{
		templateRepo:       repos.Template,
		planRepo:           repos.Plan,
		transactionService: services.Transaction,
		db:                 db,
	}
}

// GeneratePlans expands a template across a date range for a set of machine
// allocations. All validation happens before any write; the expansion itself
// is pure and the whole series lands in one batch insert, so a failure leaves
// nothing behind.
func (c *PlannerController) GeneratePlans(
	ctx context.Context,
	request *GeneratePlansRequest,
) ([]*MaintenancePlan, error) {
	log := logger.NewWithContext(ctx, "plannerController").Function("GeneratePlans")

	if request.TemplateID == uuid.Nil {
		return nil, log.ErrorWithType(ErrValidation, "templateId is required")
	}

	if len(request.Allocations) == 0 {
		return nil, log.ErrorWithType(ErrValidation, "at least one allocation is required")
	}

	template, err := c.templateRepo.GetByID(ctx, c.db.SQL, request.TemplateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrNotFound, "template not found", "templateID", request.TemplateID)
		}
		return nil, log.Error("failed to load template", "error", err, "templateID", request.TemplateID)
	}

	startDate, endDate, err := parseDateRange(request.StartDate, request.EndDate)
	if err != nil {
		return nil, log.ErrorWithType(ErrValidation, "invalid date range", "error", err)
	}

	allocations, err := normalizeAllocations(template.Frequency, request.Allocations)
	if err != nil {
		return nil, log.ErrorWithType(ErrValidation, "invalid allocations", "error", err)
	}

	dates := expandDates(template.Frequency, startDate, endDate)
	plans := buildPlans(template, request.Name, startDate, endDate, dates, allocations)

	err = c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		return c.planRepo.CreateBatch(ctx, tx, plans)
	})
	if err != nil {
		return nil, log.Error(
			"failed to persist generated plans",
			"error", err,
			"templateID", template.ID,
			"count", len(plans),
		)
	}

	log.Info(
		"Generated maintenance plans",
		"templateID", template.ID,
		"frequency", template.Frequency,
		"machines", len(allocations),
		"occurrences", len(dates),
		"plans", len(plans),
	)

	return plans, nil
}

func parseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(ScheduleDateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q", startStr)
	}

	end, err := time.Parse(ScheduleDateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q", endStr)
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("end date is before start date")
	}

	return start, end, nil
}

// normalizeAllocations applies the assignment policy for the frequency:
// Daily plans never carry an assignee, 8-Weekly plans always must, Monthly
// may go either way. The 8-Weekly check fails fast naming the machine so the
// caller can fix the one offending row.
func normalizeAllocations(frequency Frequency, allocations []Allocation) ([]Allocation, error) {
	normalized := make([]Allocation, 0, len(allocations))
	for _, allocation := range allocations {
		if allocation.MachineID == uuid.Nil {
			return nil, errors.New("allocation missing machineId")
		}

		if frequency.RequiresAssignment() && allocation.AssignedEmployeeID == nil {
			return nil, fmt.Errorf(
				"8-Weekly plans require an assigned employee for machine %s",
				allocation.MachineID,
			)
		}

		if frequency.ForbidsAssignment() {
			allocation.AssignedEmployeeID = nil
		}

		normalized = append(normalized, allocation)
	}

	return normalized, nil
}

// expandDates walks the recurrence from start to end inclusive. A frequency
// the stepper does not recognize yields just the first occurrence rather than
// an error or an unbounded loop.
func expandDates(frequency Frequency, start, end time.Time) []time.Time {
	dates := make([]time.Time, 0, 8)
	for current := start; !current.After(end); {
		dates = append(dates, current)
		next, ok := frequency.Next(current)
		if !ok {
			break
		}
		current = next
	}
	return dates
}

// buildPlans materializes one plan per (allocation, occurrence), copying the
// frequency off the template so later template edits cannot rewrite history.
// Without a request name the plan is labelled "{template} - {frequency}";
// 8-Weekly occurrences are additionally numbered "(Cycle N)" per allocation.
func buildPlans(
	template *MaintenanceTemplate,
	nameOverride string,
	start, end time.Time,
	dates []time.Time,
	allocations []Allocation,
) []*MaintenancePlan {
	baseName := fmt.Sprintf("%s - %s", template.Name, template.Frequency)
	if nameOverride != "" {
		baseName = nameOverride
	}

	notes := fmt.Sprintf(
		"Generated for %s to %s",
		start.Format(ScheduleDateLayout),
		end.Format(ScheduleDateLayout),
	)

	plans := make([]*MaintenancePlan, 0, len(dates)*len(allocations))
	for _, allocation := range allocations {
		for cycle, date := range dates {
			name := baseName
			if template.Frequency == FrequencyEightWeekly {
				name = fmt.Sprintf("%s (Cycle %d)", baseName, cycle+1)
			}

			plans = append(plans, &MaintenancePlan{
				Name:               name,
				TemplateID:         template.ID,
				Frequency:          template.Frequency,
				MachineID:          allocation.MachineID,
				AssignedEmployeeID: allocation.AssignedEmployeeID,
				ScheduledDate:      date,
				Status:             PlanStatusPlanned,
				Notes:              notes,
			})
		}
	}

	return plans
}
