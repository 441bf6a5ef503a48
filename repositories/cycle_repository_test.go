package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return db, mock
}

func cycleRows(id string, start time.Time, end *time.Time, active bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "start_date", "end_date", "is_active"}).
		AddRow(id, start, end, active)
}

func emptyCycleRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "start_date", "end_date", "is_active"})
}

func TestCycleRepositoryActiveReturnsExisting(t *testing.T) {
	db, mock := mockDB(t)
	repo := NewCycleRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `tank_cycles`").
		WillReturnRows(cycleRows("cycle-1", time.Now(), nil, true))

	cycle, err := repo.Active()
	require.NoError(t, err)
	assert.Equal(t, "cycle-1", cycle.ID)
	assert.True(t, cycle.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCycleRepositoryActiveCreatesWhenMissing(t *testing.T) {
	db, mock := mockDB(t)
	repo := NewCycleRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `tank_cycles`").
		WillReturnRows(emptyCycleRows())
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `tank_cycles` (.+)FOR UPDATE").
		WillReturnRows(emptyCycleRows())
	mock.ExpectExec("INSERT INTO `tank_cycles`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	cycle, err := repo.Active()
	require.NoError(t, err)
	assert.NotEmpty(t, cycle.ID)
	assert.True(t, cycle.IsActive)
	assert.Nil(t, cycle.EndDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCycleRepositoryActiveReusesConcurrentlyCreatedCycle(t *testing.T) {
	db, mock := mockDB(t)
	repo := NewCycleRepository(db)

	// Unlocked read sees nothing, but by the time the locking re-check
	// runs another request has already created the active cycle. No
	// second insert may happen.
	mock.ExpectQuery("SELECT (.+) FROM `tank_cycles`").
		WillReturnRows(emptyCycleRows())
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `tank_cycles` (.+)FOR UPDATE").
		WillReturnRows(cycleRows("cycle-2", time.Now(), nil, true))
	mock.ExpectCommit()

	cycle, err := repo.Active()
	require.NoError(t, err)
	assert.Equal(t, "cycle-2", cycle.ID)
	assert.True(t, cycle.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCycleRepositoryCloseOpensNewCycleAtomically(t *testing.T) {
	db, mock := mockDB(t)
	repo := NewCycleRepository(db)

	started := time.Now().Add(-24 * time.Hour)
	mock.ExpectQuery("SELECT (.+) FROM `tank_cycles`").
		WillReturnRows(cycleRows("cycle-1", started, nil, true))
	mock.ExpectBegin()
	// The flip must only match the cycle while it is still active.
	mock.ExpectExec("UPDATE `tank_cycles` SET (.+) WHERE id = \\? AND is_active = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `tank_cycles`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	closed, err := repo.Close()
	require.NoError(t, err)
	assert.Equal(t, "cycle-1", closed.ID)
	assert.False(t, closed.IsActive)
	require.NotNil(t, closed.EndDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCycleRepositoryCloseDetectsConcurrentClose(t *testing.T) {
	db, mock := mockDB(t)
	repo := NewCycleRepository(db)

	// Stale read: the cycle read here gets closed by another request
	// before the flip runs, so the guarded UPDATE matches zero rows.
	// The transaction must roll back instead of inserting a second
	// active cycle.
	mock.ExpectQuery("SELECT (.+) FROM `tank_cycles`").
		WillReturnRows(cycleRows("cycle-1", time.Now(), nil, true))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `tank_cycles` SET (.+) WHERE id = \\? AND is_active = \\?").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.Close()
	require.ErrorIs(t, err, ErrCycleAlreadyClosed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCycleRepositoryCloseRollsBackOnFailure(t *testing.T) {
	db, mock := mockDB(t)
	repo := NewCycleRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `tank_cycles`").
		WillReturnRows(cycleRows("cycle-1", time.Now(), nil, true))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `tank_cycles`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `tank_cycles`").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := repo.Close()
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCycleRepositoryDeleteCascadesRides(t *testing.T) {
	db, mock := mockDB(t)
	repo := NewCycleRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `rides`").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM `tank_cycles`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete("cycle-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
