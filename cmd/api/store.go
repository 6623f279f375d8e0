package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/xls-import-go/internal/config"
	"github.com/cmlabs-hris/xls-import-go/internal/domain/attendance"
	"github.com/cmlabs-hris/xls-import-go/internal/domain/employee"
	"github.com/cmlabs-hris/xls-import-go/internal/domain/imports"
	"github.com/cmlabs-hris/xls-import-go/internal/domain/shift"
	"github.com/cmlabs-hris/xls-import-go/internal/pkg/database"
	"github.com/cmlabs-hris/xls-import-go/internal/repository/memory"
	"github.com/cmlabs-hris/xls-import-go/internal/repository/mongodb"
	"github.com/cmlabs-hris/xls-import-go/internal/repository/postgresql"
)

// store bundles the repositories of one backend.
type store struct {
	tx             database.Transactor
	importRepo     imports.ImportRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	shiftRepo      shift.ShiftRepository
	close          func(ctx context.Context) error
}

func openStore(ctx context.Context, cfg *config.Config) (*store, error) {
	switch cfg.Store.Driver {
	case config.StoreMongoDB:
		db, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Database)
		if err != nil {
			return nil, err
		}
		slog.Info("connected to mongodb", "database", cfg.MongoDB.Database, "transactions", cfg.MongoDB.Transactions)
		return &store{
			tx:             mongodb.NewTransactor(db, cfg.MongoDB.Transactions),
			importRepo:     mongodb.NewImportRepository(db),
			employeeRepo:   mongodb.NewEmployeeRepository(db),
			attendanceRepo: mongodb.NewAttendanceRepository(db),
			shiftRepo:      mongodb.NewShiftRepository(db),
			close:          db.Disconnect,
		}, nil

	case config.StorePostgres:
		db, err := database.NewPostgreSQLDB(cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := postgresql.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		slog.Info("connected to postgres")
		return &store{
			tx:             postgresql.NewTransactor(db),
			importRepo:     postgresql.NewImportRepository(db),
			employeeRepo:   postgresql.NewEmployeeRepository(db),
			attendanceRepo: postgresql.NewAttendanceRepository(db),
			shiftRepo:      postgresql.NewShiftRepository(db),
			close: func(context.Context) error {
				db.Close()
				return nil
			},
		}, nil

	case config.StoreMemory:
		slog.Warn("using in-memory store, data is lost on restart")
		s := memory.NewStore()
		return &store{
			tx:             memory.NewTransactor(),
			importRepo:     memory.NewImportRepository(s),
			employeeRepo:   memory.NewEmployeeRepository(s),
			attendanceRepo: memory.NewAttendanceRepository(s),
			shiftRepo:      memory.NewShiftRepository(s),
			close:          func(context.Context) error { return nil },
		}, nil
	}

	return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
}
