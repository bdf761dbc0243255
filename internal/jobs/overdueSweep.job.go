package jobs

import (
	"context"
	"time"
	"toolroom/internal/database"
	"toolroom/internal/logger"
	"toolroom/internal/repositories"
	"toolroom/internal/services"
)

// ArchiveAfter is how long a completed or abandoned plan stays visible before
// the sweep archives it.
const ArchiveAfter = 90 * 24 * time.Hour

// OverdueSweepJob derives the overdue status: any plan still planned or
// active after its scheduled date has passed gets flipped in bulk. The same
// pass archives terminal plans that have aged out of the working set.
type OverdueSweepJob struct {
	planRepo repositories.MaintenancePlanRepository
	db       database.DB
	log      logger.Logger
	schedule services.Schedule
}

func NewOverdueSweepJob(
	planRepo repositories.MaintenancePlanRepository,
	db database.DB,
	schedule services.Schedule,
) *OverdueSweepJob {
	log := logger.New("overdueSweepJob")
	log.Info("Creating overdue sweep job", "schedule", schedule)

	return &OverdueSweepJob{
		planRepo: planRepo,
		db:       db,
		log:      log,
		schedule: schedule,
	}
}

func (j *OverdueSweepJob) Name() string {
	return "OverdueSweep"
}

func (j *OverdueSweepJob) Execute(ctx context.Context) error {
	log := j.log.Function("Execute")

	today := StartOfDay(time.Now())

	overdue, err := j.planRepo.MarkOverdue(ctx, j.db.SQL, today)
	if err != nil {
		return log.Err("overdue sweep failed", err)
	}

	archived, err := j.planRepo.ArchiveTerminal(ctx, j.db.SQL, today.Add(-ArchiveAfter))
	if err != nil {
		return log.Err("archive sweep failed", err)
	}

	if overdue > 0 || archived > 0 {
		log.Info("Sweep completed", "markedOverdue", overdue, "archived", archived)
	}

	return nil
}

func (j *OverdueSweepJob) Schedule() services.Schedule {
	return j.schedule
}

// StartOfDay truncates to midnight UTC, the boundary a plan scheduled "for
// today" is not yet overdue at.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
