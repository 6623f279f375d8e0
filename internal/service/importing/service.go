package importing

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/cmlabs-hris/xls-import-go/internal/domain/attendance"
	"github.com/cmlabs-hris/xls-import-go/internal/domain/employee"
	"github.com/cmlabs-hris/xls-import-go/internal/domain/imports"
	"github.com/cmlabs-hris/xls-import-go/internal/domain/shift"
	"github.com/cmlabs-hris/xls-import-go/internal/pkg/database"
	"github.com/cmlabs-hris/xls-import-go/internal/pkg/spreadsheet"
	"github.com/cmlabs-hris/xls-import-go/internal/service/file"
	"golang.org/x/sync/errgroup"
)

type ImportServiceImpl struct {
	db             database.Transactor
	importRepo     imports.ImportRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	shiftRepo      shift.ShiftRepository
	fileService    file.FileService
	normalizer     *Normalizer
}

func NewImportService(
	db database.Transactor,
	importRepo imports.ImportRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	shiftRepo shift.ShiftRepository,
	fileService file.FileService,
	normalizer *Normalizer,
) imports.ImportService {
	if normalizer == nil {
		normalizer = NewNormalizer()
	}
	return &ImportServiceImpl{
		db:             db,
		importRepo:     importRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		shiftRepo:      shiftRepo,
		fileService:    fileService,
		normalizer:     normalizer,
	}
}

// Import implements imports.ImportService.
func (s *ImportServiceImpl) Import(ctx context.Context, req imports.ImportRequest) (imports.ImportResponse, error) {
	if err := req.Validate(); err != nil {
		return imports.ImportResponse{}, err
	}

	maxSize := req.MaxSize
	if maxSize <= 0 {
		maxSize = imports.DefaultMaxUploadSize
	}
	data, err := io.ReadAll(io.LimitReader(req.File, maxSize+1))
	if err != nil {
		return imports.ImportResponse{}, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > maxSize {
		return imports.ImportResponse{}, imports.ErrFileTooLarge
	}

	filename := req.FileHeader.Filename
	contentType := req.FileHeader.Header.Get("Content-Type")

	rows, err := spreadsheet.Read(data, filename, contentType)
	if err != nil {
		slog.Warn("failed to parse spreadsheet", "filename", filename, "error", err)
		return imports.ImportResponse{}, fmt.Errorf("%w: %v", imports.ErrInvalidSpreadsheet, err)
	}
	if len(rows) == 0 {
		return imports.ImportResponse{}, imports.ErrEmptySpreadsheet
	}

	batch := s.normalizer.Normalize(rows)

	stats := imports.Stats{
		TotalRows:     len(rows),
		ImportedRows:  len(batch.Employees),
		Errors:        len(rows) - len(batch.Employees),
		InvalidRows:   batch.InvalidRows,
		DuplicateRows: batch.DuplicateRows,
	}

	archivePath, err := s.fileService.ArchiveSpreadsheet(ctx, batch.ImportID, batch.StartedAt, bytes.NewReader(data), filename, contentType)
	if err != nil {
		return imports.ImportResponse{}, err
	}

	record := imports.ImportRecord{
		ImportID:    batch.ImportID,
		Filename:    filename,
		UploadedAt:  batch.StartedAt,
		Stats:       stats,
		Status:      imports.StatusCompleted,
		ArchivePath: &archivePath,
	}

	if err := s.persist(ctx, record, batch); err != nil {
		return imports.ImportResponse{}, err
	}

	slog.Info("spreadsheet imported",
		"import_id", batch.ImportID,
		"filename", filename,
		"total_rows", stats.TotalRows,
		"employees", len(batch.Employees),
		"attendance_events", len(batch.AttendanceEvents),
		"shifts", len(batch.Shifts),
	)

	return imports.ImportResponse{
		OK:       true,
		ImportID: batch.ImportID,
		Stats:    stats,
	}, nil
}

func (s *ImportServiceImpl) persist(ctx context.Context, record imports.ImportRecord, batch Batch) error {
	if s.db.Transactional() {
		err := s.db.WithinTransaction(ctx, func(ctx context.Context) error {
			for _, insert := range s.inserts(record, batch) {
				if err := insert(ctx); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			s.discardArchive(context.WithoutCancel(ctx), record)
			return fmt.Errorf("failed to store import: %w", err)
		}
		return nil
	}

	// Plain errgroup.Group: a failing insert must not cancel the others, they are
	// all undone below.
	var g errgroup.Group
	for _, insert := range s.inserts(record, batch) {
		insert := insert
		g.Go(func() error { return insert(ctx) })
	}
	if err := g.Wait(); err != nil {
		s.compensate(context.WithoutCancel(ctx), record)
		return fmt.Errorf("failed to store import: %w", err)
	}
	return nil
}

// inserts returns one write per collection, leaving out empty record sets.
func (s *ImportServiceImpl) inserts(record imports.ImportRecord, batch Batch) []func(ctx context.Context) error {
	writes := []func(ctx context.Context) error{
		func(ctx context.Context) error { return s.importRepo.Create(ctx, record) },
	}
	if len(batch.Employees) > 0 {
		writes = append(writes, func(ctx context.Context) error {
			return s.employeeRepo.CreateMany(ctx, batch.Employees)
		})
	}
	if len(batch.AttendanceEvents) > 0 {
		writes = append(writes, func(ctx context.Context) error {
			return s.attendanceRepo.CreateMany(ctx, batch.AttendanceEvents)
		})
	}
	if len(batch.Shifts) > 0 {
		writes = append(writes, func(ctx context.Context) error {
			return s.shiftRepo.CreateMany(ctx, batch.Shifts)
		})
	}
	return writes
}

// compensate removes whatever part of an import made it to the store.
func (s *ImportServiceImpl) compensate(ctx context.Context, record imports.ImportRecord) {
	err := errors.Join(
		s.importRepo.DeleteByImportID(ctx, record.ImportID),
		s.employeeRepo.DeleteByImportID(ctx, record.ImportID),
		s.attendanceRepo.DeleteByImportID(ctx, record.ImportID),
		s.shiftRepo.DeleteByImportID(ctx, record.ImportID),
	)
	if err != nil {
		slog.Error("failed to roll back partial import", "import_id", record.ImportID, "error", err)
	}
	s.discardArchive(ctx, record)
}

func (s *ImportServiceImpl) discardArchive(ctx context.Context, record imports.ImportRecord) {
	if record.ArchivePath == nil {
		return
	}
	if err := s.fileService.DeleteFile(ctx, *record.ArchivePath); err != nil {
		slog.Error("failed to delete archived upload", "import_id", record.ImportID, "path", *record.ArchivePath, "error", err)
	}
}
