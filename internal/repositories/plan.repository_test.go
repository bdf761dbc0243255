package repositories

import (
	"context"
	"testing"
	. "toolroom/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

// The upcoming query filters by machine and status only. A date floor here
// would hide still-planned plans whose date passed before the overdue sweep
// ran, so the bound arguments must stay exactly (machineID, statuses, limit).
func TestPlanRepository_GetUpcomingForMachine_NoDateFloor(t *testing.T) {
	gormDB, mock := setupTestDB(t)
	repo := NewMaintenancePlanRepository()

	machineID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "maintenance_plans"`).
		WithArgs(machineID, PlanStatusPlanned, PlanStatusActive, 3).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	plans, err := repo.GetUpcomingForMachine(context.Background(), gormDB, machineID, 3)

	assert.NoError(t, err)
	assert.Empty(t, plans)
	assert.NoError(t, mock.ExpectationsWereMet())
}
