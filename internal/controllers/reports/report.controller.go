package reportController

import (
	"context"
	"errors"
	"time"
	"toolroom/internal/database"
	"toolroom/internal/logger"
	. "toolroom/internal/models"
	"toolroom/internal/repositories"

	"github.com/google/uuid"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
	UpcomingPlanCount   = 3
	DateLayout          = "2006-01-02"
)

var ErrValidation = errors.New("validation error")

type ReportController struct {
	planRepo     repositories.MaintenancePlanRepository
	recordRepo   repositories.MaintenanceRecordRepository
	dailyLogRepo repositories.DailyLogRepository
	db           database.DB
}

// DailyStatusEntry is one row of the daily check-in board: a Daily plan and
// whatever log exists for its machine on the requested date. Display fields
// tolerate missing joins; a deleted machine renders as an empty name, not an
// error.
type DailyStatusEntry struct {
	PlanID      uuid.UUID      `json:"planId"`
	PlanName    string         `json:"planName"`
	MachineID   uuid.UUID      `json:"machineId"`
	MachineName string         `json:"machineName"`
	Location    string         `json:"location"`
	Status      DailyLogStatus `json:"status"`
	Notes       string         `json:"notes"`
	CheckedByID *uuid.UUID     `json:"checkedBy,omitempty"`
}

type ReportControllerInterface interface {
	ActivePlans(ctx context.Context, frequency *string) ([]*MaintenancePlan, error)
	UpcomingPlans(ctx context.Context, machineID uuid.UUID) ([]*MaintenancePlan, error)
	MachineHistory(ctx context.Context, machineID uuid.UUID, limit int) ([]*MaintenanceRecord, error)
	AllHistory(ctx context.Context, limit int) ([]*MaintenanceRecord, error)
	DailyStatus(ctx context.Context, date string) ([]DailyStatusEntry, error)
}

func New(repos repositories.Repository, db database.DB) ReportControllerInterface {
	return &ReportController{
		planRepo:     repos.Plan,
		recordRepo:   repos.Record,
		dailyLogRepo: repos.DailyLog,
		db:           db,
	}
}

func (c *ReportController) ActivePlans(
	ctx context.Context,
	frequency *string,
) ([]*MaintenancePlan, error) {
	log := logger.NewWithContext(ctx, "reportController").Function("ActivePlans")

	if frequency != nil && *frequency != "" {
		freq := Frequency(*frequency)
		if !freq.Valid() {
			return nil, log.ErrorWithType(ErrValidation, "invalid frequency filter", "frequency", *frequency)
		}

		plans, err := c.planRepo.GetByFrequency(ctx, c.db.SQL, freq,
			[]PlanStatus{PlanStatusPlanned, PlanStatusActive})
		if err != nil {
			return nil, log.Error("failed to get plans by frequency", "error", err)
		}
		return plans, nil
	}

	plans, err := c.planRepo.GetActive(ctx, c.db.SQL)
	if err != nil {
		return nil, log.Error("failed to get active plans", "error", err)
	}

	return plans, nil
}

func (c *ReportController) UpcomingPlans(
	ctx context.Context,
	machineID uuid.UUID,
) ([]*MaintenancePlan, error) {
	log := logger.NewWithContext(ctx, "reportController").Function("UpcomingPlans")

	if machineID == uuid.Nil {
		return nil, log.ErrorWithType(ErrValidation, "machineId is required")
	}

	plans, err := c.planRepo.GetUpcomingForMachine(ctx, c.db.SQL, machineID, UpcomingPlanCount)
	if err != nil {
		return nil, log.Error("failed to get upcoming plans", "error", err, "machineID", machineID)
	}

	return plans, nil
}

func (c *ReportController) MachineHistory(
	ctx context.Context,
	machineID uuid.UUID,
	limit int,
) ([]*MaintenanceRecord, error) {
	log := logger.NewWithContext(ctx, "reportController").Function("MachineHistory")

	if machineID == uuid.Nil {
		return nil, log.ErrorWithType(ErrValidation, "machineId is required")
	}

	records, err := c.recordRepo.GetByMachine(ctx, c.db.SQL, machineID, clampLimit(limit))
	if err != nil {
		return nil, log.Error("failed to get machine history", "error", err, "machineID", machineID)
	}

	return records, nil
}

func (c *ReportController) AllHistory(
	ctx context.Context,
	limit int,
) ([]*MaintenanceRecord, error) {
	log := logger.NewWithContext(ctx, "reportController").Function("AllHistory")

	records, err := c.recordRepo.GetAll(ctx, c.db.SQL, clampLimit(limit))
	if err != nil {
		return nil, log.Error("failed to get maintenance history", "error", err)
	}

	return records, nil
}

// DailyStatus joins the Daily plan board against the check-in logs for one
// date. Machines without a log default to pending.
func (c *ReportController) DailyStatus(
	ctx context.Context,
	date string,
) ([]DailyStatusEntry, error) {
	log := logger.NewWithContext(ctx, "reportController").Function("DailyStatus")

	if date == "" {
		date = time.Now().Format(DateLayout)
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, log.ErrorWithType(ErrValidation, "invalid date, expected YYYY-MM-DD", "date", date)
	}

	plans, err := c.planRepo.GetByFrequency(ctx, c.db.SQL, FrequencyDaily,
		[]PlanStatus{PlanStatusPlanned, PlanStatusActive})
	if err != nil {
		return nil, log.Error("failed to get daily plans", "error", err)
	}

	logs, err := c.dailyLogRepo.GetByDate(ctx, c.db.SQL, date)
	if err != nil {
		return nil, log.Error("failed to get daily logs", "error", err, "date", date)
	}

	return joinDailyStatus(plans, logs), nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		return MaxHistoryLimit
	}
	return limit
}

// joinDailyStatus matches logs to plans by machine. Plans with no log render
// pending; logs for machines with no Daily plan are ignored, they belong to
// the raw log listing.
func joinDailyStatus(plans []*MaintenancePlan, logs []*DailyLog) []DailyStatusEntry {
	logsByMachine := make(map[uuid.UUID]*DailyLog, len(logs))
	for _, dailyLog := range logs {
		logsByMachine[dailyLog.MachineID] = dailyLog
	}

	entries := make([]DailyStatusEntry, 0, len(plans))
	for _, plan := range plans {
		entry := DailyStatusEntry{
			PlanID:    plan.ID,
			PlanName:  plan.Name,
			MachineID: plan.MachineID,
			Status:    DailyLogStatusPending,
		}

		if plan.Machine != nil {
			entry.MachineName = plan.Machine.Name
			entry.Location = plan.Machine.Location
		}

		if dailyLog, ok := logsByMachine[plan.MachineID]; ok {
			entry.Status = dailyLog.Status
			entry.Notes = dailyLog.Notes
			entry.CheckedByID = dailyLog.CheckedByID
		}

		entries = append(entries, entry)
	}

	return entries
}
