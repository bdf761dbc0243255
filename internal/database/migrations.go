package database

import (
	"toolroom/internal/logger"
)

// CreateIndexes creates additional indexes that GORM doesn't create automatically
func (db *DB) CreateIndexes() error {
	log := logger.New("database").Function("CreateIndexes")
	log.Info("Creating additional database indexes")

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_maintenance_plans_freq_status ON maintenance_plans(frequency, status)",
		"CREATE INDEX IF NOT EXISTS idx_maintenance_plans_machine_sched ON maintenance_plans(machine_id, scheduled_date)",
		"CREATE INDEX IF NOT EXISTS idx_maintenance_records_machine_date ON maintenance_records(machine_id, date DESC)",
	}

	for _, indexSQL := range indexes {
		if err := db.SQL.Exec(indexSQL).Error; err != nil {
			log.Warn("Failed to create index", "sql", indexSQL, "error", err)
			// Continue with other indexes even if one fails
		}
	}

	log.Info("Additional database indexes created")
	return nil
}
