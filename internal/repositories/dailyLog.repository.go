package repositories

import (
	"context"
	"toolroom/internal/logger"
	. "toolroom/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyLogRepository interface {
	Upsert(ctx context.Context, tx *gorm.DB, dailyLog *DailyLog) (*DailyLog, error)
	GetByDate(ctx context.Context, tx *gorm.DB, date string) ([]*DailyLog, error)
}

type dailyLogRepository struct {
	log logger.Logger
}

func NewDailyLogRepository() DailyLogRepository {
	return &dailyLogRepository{
		log: logger.New("dailyLogRepository"),
	}
}

// Upsert keeps one row per (machine, date). A second check-in on the same day
// overwrites status, notes, and who checked, not the identity columns.
func (r *dailyLogRepository) Upsert(
	ctx context.Context,
	tx *gorm.DB,
	dailyLog *DailyLog,
) (*DailyLog, error) {
	log := r.log.Function("Upsert")

	err := tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "machine_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns(
				[]string{"status", "notes", "checked_by_id", "updated_at"},
			),
		}).
		Create(dailyLog).Error
	if err != nil {
		return nil, log.Err(
			"failed to upsert daily log",
			err,
			"machineID", dailyLog.MachineID,
			"date", dailyLog.Date,
		)
	}

	var saved DailyLog
	err = tx.WithContext(ctx).
		Where("machine_id = ? AND date = ?", dailyLog.MachineID, dailyLog.Date).
		First(&saved).Error
	if err != nil {
		return nil, log.Err(
			"failed to reload daily log",
			err,
			"machineID", dailyLog.MachineID,
			"date", dailyLog.Date,
		)
	}

	return &saved, nil
}

func (r *dailyLogRepository) GetByDate(
	ctx context.Context,
	tx *gorm.DB,
	date string,
) ([]*DailyLog, error) {
	log := r.log.Function("GetByDate")

	var logs []*DailyLog
	err := tx.WithContext(ctx).
		Preload("CheckedBy").
		Where("date = ?", date).
		Find(&logs).Error
	if err != nil {
		return nil, log.Err("failed to get daily logs", err, "date", date)
	}

	return logs, nil
}
