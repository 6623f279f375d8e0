package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/xls-import-go/internal/domain/attendance"
	"github.com/cmlabs-hris/xls-import-go/internal/domain/employee"
	"github.com/cmlabs-hris/xls-import-go/internal/domain/imports"
	"github.com/cmlabs-hris/xls-import-go/internal/domain/shift"
	"github.com/cmlabs-hris/xls-import-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositories_CreateListDelete(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()

	createdAt := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	dept := "RH"
	checkIn := createdAt.Add(time.Hour)
	archive := "imports/2026-04-01/imp-1.xlsx"

	importRepo := postgresql.NewImportRepository(setup.DB)
	employeeRepo := postgresql.NewEmployeeRepository(setup.DB)
	attendanceRepo := postgresql.NewAttendanceRepository(setup.DB)
	shiftRepo := postgresql.NewShiftRepository(setup.DB)

	require.NoError(t, importRepo.Create(ctx, imports.ImportRecord{
		ImportID:    "imp-1",
		Filename:    "ponto.xlsx",
		UploadedAt:  createdAt,
		Stats:       imports.Stats{TotalRows: 1, ImportedRows: 1},
		Status:      imports.StatusCompleted,
		ArchivePath: &archive,
	}))
	require.NoError(t, employeeRepo.CreateMany(ctx, []employee.Employee{
		{ImportID: "imp-1", EmployeeID: "E1", Name: "Ana", Department: &dept, CreatedAt: createdAt},
	}))
	require.NoError(t, attendanceRepo.CreateMany(ctx, []attendance.Event{
		{ImportID: "imp-1", EmployeeID: "E1", Date: createdAt, CheckIn: &checkIn, EventType: attendance.EventTypeCheckIn, CreatedAt: createdAt},
	}))
	require.NoError(t, shiftRepo.CreateMany(ctx, []shift.Shift{
		{ImportID: "imp-1", EmployeeID: "E1", Date: createdAt, ShiftType: shift.TypeMorning, StartTime: "09:00", EndTime: "17:00", Duration: 8, CreatedAt: createdAt},
	}))

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC)

	employees, err := employeeRepo.ListCreatedBetween(ctx, start, end)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "Ana", employees[0].Name)
	require.NotNil(t, employees[0].Department)
	assert.Equal(t, "RH", *employees[0].Department)
	assert.Nil(t, employees[0].Email)

	events, err := attendanceRepo.ListCreatedBetween(ctx, start, end)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, checkIn.Equal(*events[0].CheckIn))
	assert.Nil(t, events[0].CheckOut)

	shifts, err := shiftRepo.ListCreatedBetween(ctx, start, end)
	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.Equal(t, 8, shifts[0].Duration)

	outside, err := shiftRepo.ListCreatedBetween(ctx, start.AddDate(1, 0, 0), end.AddDate(1, 0, 0))
	require.NoError(t, err)
	assert.Empty(t, outside)

	require.NoError(t, employeeRepo.DeleteByImportID(ctx, "imp-1"))
	employees, err = employeeRepo.ListCreatedBetween(ctx, start, end)
	require.NoError(t, err)
	assert.Empty(t, employees)
}

func TestTransactor_RollsBack(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()

	tx := postgresql.NewTransactor(setup.DB)
	assert.True(t, tx.Transactional())

	employeeRepo := postgresql.NewEmployeeRepository(setup.DB)
	createdAt := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	boom := errors.New("boom")
	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := employeeRepo.CreateMany(ctx, []employee.Employee{
			{ImportID: "imp-2", EmployeeID: "E1", Name: "Ana", CreatedAt: createdAt},
		}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	employees, err := employeeRepo.ListCreatedBetween(ctx, createdAt.Add(-time.Hour), createdAt.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, employees)
}

func TestWithTransaction_RollsBackOnPanic(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()

	employeeRepo := postgresql.NewEmployeeRepository(setup.DB)
	createdAt := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)

	assert.PanicsWithValue(t, "boom", func() {
		_ = postgresql.WithTransaction(ctx, setup.DB, func(ctx context.Context) error {
			if err := employeeRepo.CreateMany(ctx, []employee.Employee{
				{ImportID: "imp-3", EmployeeID: "E1", Name: "Ana", CreatedAt: createdAt},
			}); err != nil {
				return err
			}
			panic("boom")
		})
	})

	employees, err := employeeRepo.ListCreatedBetween(ctx, createdAt.Add(-time.Hour), createdAt.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, employees)
}
