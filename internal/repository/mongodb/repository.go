package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/xls-import-go/internal/domain/attendance"
	"github.com/cmlabs-hris/xls-import-go/internal/domain/employee"
	"github.com/cmlabs-hris/xls-import-go/internal/domain/imports"
	"github.com/cmlabs-hris/xls-import-go/internal/domain/shift"
	"github.com/cmlabs-hris/xls-import-go/internal/pkg/database"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// listCreatedBetween decodes every document of coll created in [start, end], in
// insertion order, and maps it to an entity.
func listCreatedBetween[D any, E any](ctx context.Context, coll *mongo.Collection, start, end time.Time, toEntity func(D) E) ([]E, error) {
	cursor, err := coll.Find(ctx, createdBetween(start, end), options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}

	var docs []D
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	entities := make([]E, 0, len(docs))
	for _, doc := range docs {
		entities = append(entities, toEntity(doc))
	}
	return entities, nil
}

type importRepository struct {
	coll *mongo.Collection
}

func NewImportRepository(db *database.MongoDB) imports.ImportRepository {
	return &importRepository{coll: db.Collection(database.CollectionImports)}
}

// Create implements imports.ImportRepository.
func (r *importRepository) Create(ctx context.Context, record imports.ImportRecord) error {
	if _, err := r.coll.InsertOne(ctx, newImportDocument(record)); err != nil {
		return fmt.Errorf("failed to create import record: %w", err)
	}
	return nil
}

// DeleteByImportID implements imports.ImportRepository.
func (r *importRepository) DeleteByImportID(ctx context.Context, importID string) error {
	if _, err := r.coll.DeleteMany(ctx, byImportID(importID)); err != nil {
		return fmt.Errorf("failed to delete import record: %w", err)
	}
	return nil
}

type employeeRepository struct {
	coll *mongo.Collection
}

func NewEmployeeRepository(db *database.MongoDB) employee.EmployeeRepository {
	return &employeeRepository{coll: db.Collection(database.CollectionEmployees)}
}

// CreateMany implements employee.EmployeeRepository.
func (r *employeeRepository) CreateMany(ctx context.Context, employees []employee.Employee) error {
	docs := make([]employeeDocument, 0, len(employees))
	for _, emp := range employees {
		docs = append(docs, newEmployeeDocument(emp))
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to create employees: %w", err)
	}
	return nil
}

// ListCreatedBetween implements employee.EmployeeRepository.
func (r *employeeRepository) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]employee.Employee, error) {
	employees, err := listCreatedBetween(ctx, r.coll, start, end, employeeDocument.entity)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// DeleteByImportID implements employee.EmployeeRepository.
func (r *employeeRepository) DeleteByImportID(ctx context.Context, importID string) error {
	if _, err := r.coll.DeleteMany(ctx, byImportID(importID)); err != nil {
		return fmt.Errorf("failed to delete employees: %w", err)
	}
	return nil
}

type attendanceRepository struct {
	coll *mongo.Collection
}

func NewAttendanceRepository(db *database.MongoDB) attendance.AttendanceRepository {
	return &attendanceRepository{coll: db.Collection(database.CollectionAttendanceEvents)}
}

// CreateMany implements attendance.AttendanceRepository.
func (r *attendanceRepository) CreateMany(ctx context.Context, events []attendance.Event) error {
	docs := make([]attendanceDocument, 0, len(events))
	for _, ev := range events {
		docs = append(docs, newAttendanceDocument(ev))
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to create attendance events: %w", err)
	}
	return nil
}

// ListCreatedBetween implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]attendance.Event, error) {
	events, err := listCreatedBetween(ctx, r.coll, start, end, attendanceDocument.entity)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance events: %w", err)
	}
	return events, nil
}

// DeleteByImportID implements attendance.AttendanceRepository.
func (r *attendanceRepository) DeleteByImportID(ctx context.Context, importID string) error {
	if _, err := r.coll.DeleteMany(ctx, byImportID(importID)); err != nil {
		return fmt.Errorf("failed to delete attendance events: %w", err)
	}
	return nil
}

type shiftRepository struct {
	coll *mongo.Collection
}

func NewShiftRepository(db *database.MongoDB) shift.ShiftRepository {
	return &shiftRepository{coll: db.Collection(database.CollectionShifts)}
}

// CreateMany implements shift.ShiftRepository.
func (r *shiftRepository) CreateMany(ctx context.Context, shifts []shift.Shift) error {
	docs := make([]shiftDocument, 0, len(shifts))
	for _, s := range shifts {
		docs = append(docs, newShiftDocument(s))
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to create shifts: %w", err)
	}
	return nil
}

// ListCreatedBetween implements shift.ShiftRepository.
func (r *shiftRepository) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]shift.Shift, error) {
	shifts, err := listCreatedBetween(ctx, r.coll, start, end, shiftDocument.entity)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	return shifts, nil
}

// DeleteByImportID implements shift.ShiftRepository.
func (r *shiftRepository) DeleteByImportID(ctx context.Context, importID string) error {
	if _, err := r.coll.DeleteMany(ctx, byImportID(importID)); err != nil {
		return fmt.Errorf("failed to delete shifts: %w", err)
	}
	return nil
}
