package mongodb

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/cmlabs-hris/xls-import-go/internal/domain/attendance"
	"github.com/cmlabs-hris/xls-import-go/internal/domain/employee"
	"github.com/cmlabs-hris/xls-import-go/internal/domain/imports"
	"github.com/cmlabs-hris/xls-import-go/internal/domain/shift"
	"github.com/cmlabs-hris/xls-import-go/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDatabase(t *testing.T) *database.MongoDB {
	t.Helper()

	uri := os.Getenv("TEST_MONGODB_URI")
	if uri == "" {
		t.Skip("TEST_MONGODB_URI not set")
	}

	ctx := context.Background()
	db, err := database.ConnectMongo(ctx, uri, "xls-import-test")
	require.NoError(t, err)
	require.NoError(t, db.DB.Drop(ctx))
	return db
}

func TestRepositories_CreateListDelete(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()

	createdAt := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	checkOut := createdAt.Add(8 * time.Hour)

	require.NoError(t, NewImportRepository(db).Create(ctx, imports.ImportRecord{
		ImportID:   "imp-1",
		Filename:   "ponto.xlsx",
		UploadedAt: createdAt,
		Stats:      imports.Stats{TotalRows: 2, ImportedRows: 2},
		Status:     imports.StatusCompleted,
	}))

	employeeRepo := NewEmployeeRepository(db)
	require.NoError(t, employeeRepo.CreateMany(ctx, []employee.Employee{
		{ImportID: "imp-1", EmployeeID: "E1", Name: "Ana", CreatedAt: createdAt},
		{ImportID: "imp-1", EmployeeID: "E2", Name: "Bruno", CreatedAt: createdAt.AddDate(1, 0, 0)},
	}))

	attendanceRepo := NewAttendanceRepository(db)
	require.NoError(t, attendanceRepo.CreateMany(ctx, []attendance.Event{
		{ImportID: "imp-1", EmployeeID: "E1", Date: createdAt, CheckOut: &checkOut, EventType: attendance.EventTypeCheckOut, CreatedAt: createdAt},
	}))

	shiftRepo := NewShiftRepository(db)
	require.NoError(t, shiftRepo.CreateMany(ctx, []shift.Shift{
		{ImportID: "imp-1", EmployeeID: "E1", Date: createdAt, ShiftType: shift.TypeNight, StartTime: "22:00", EndTime: "06:00", Duration: 8, CreatedAt: createdAt},
	}))

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 12, 31, 23, 59, 59, 999000000, time.UTC)

	employees, err := employeeRepo.ListCreatedBetween(ctx, start, end)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "E1", employees[0].EmployeeID)
	assert.NotEmpty(t, employees[0].ID)

	events, err := attendanceRepo.ListCreatedBetween(ctx, start, end)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Nil(t, events[0].CheckIn)
	assert.True(t, checkOut.Equal(*events[0].CheckOut))

	shifts, err := shiftRepo.ListCreatedBetween(ctx, start, end)
	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.Equal(t, shift.TypeNight, shifts[0].ShiftType)

	require.NoError(t, shiftRepo.DeleteByImportID(ctx, "imp-1"))
	shifts, err = shiftRepo.ListCreatedBetween(ctx, start, end)
	require.NoError(t, err)
	assert.Empty(t, shifts)
}

func TestTransactor_Disabled(t *testing.T) {
	tx := NewTransactor(&database.MongoDB{}, false)
	assert.False(t, tx.Transactional())

	called := false
	require.NoError(t, tx.WithinTransaction(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	}))
	assert.True(t, called)
}
