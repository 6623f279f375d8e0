// Package memory provides process-local repositories for development and tests.
package memory

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/cmlabs-hris/xls-import-go/internal/domain/attendance"
	"github.com/cmlabs-hris/xls-import-go/internal/domain/employee"
	"github.com/cmlabs-hris/xls-import-go/internal/domain/imports"
	"github.com/cmlabs-hris/xls-import-go/internal/domain/shift"
	"github.com/cmlabs-hris/xls-import-go/internal/pkg/database"
)

// ErrInjected is returned by a store operation armed with FailOn.
var ErrInjected = errors.New("injected failure")

// Store holds all collections behind a single mutex.
type Store struct {
	mu        sync.Mutex
	seq       int
	imports   []imports.ImportRecord
	employees []employee.Employee
	events    []attendance.Event
	shifts    []shift.Shift
	failures  map[string]error
}

func NewStore() *Store {
	return &Store{failures: make(map[string]error)}
}

// FailOn makes every CreateMany or Create call on the named collection return err.
func (s *Store) FailOn(collection string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, collection)
		return
	}
	s.failures[collection] = err
}

func (s *Store) nextID() string {
	s.seq++
	return strconv.Itoa(s.seq)
}

// Imports returns a copy of the stored import records.
func (s *Store) Imports() []imports.ImportRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.imports)
}

// Employees returns a copy of the stored employees.
func (s *Store) Employees() []employee.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.employees)
}

// AttendanceEvents returns a copy of the stored attendance events.
func (s *Store) AttendanceEvents() []attendance.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.events)
}

// Shifts returns a copy of the stored shifts.
func (s *Store) Shifts() []shift.Shift {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.shifts)
}

func within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

type importRepository struct{ s *Store }

func NewImportRepository(s *Store) imports.ImportRepository {
	return &importRepository{s: s}
}

func (r *importRepository) Create(ctx context.Context, record imports.ImportRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failures[database.CollectionImports]; err != nil {
		return err
	}
	record.ID = r.s.nextID()
	r.s.imports = append(r.s.imports, record)
	return nil
}

func (r *importRepository) DeleteByImportID(ctx context.Context, importID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.imports = slices.DeleteFunc(r.s.imports, func(rec imports.ImportRecord) bool {
		return rec.ImportID == importID
	})
	return nil
}

type employeeRepository struct{ s *Store }

func NewEmployeeRepository(s *Store) employee.EmployeeRepository {
	return &employeeRepository{s: s}
}

func (r *employeeRepository) CreateMany(ctx context.Context, employees []employee.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failures[database.CollectionEmployees]; err != nil {
		return err
	}
	for _, emp := range employees {
		emp.ID = r.s.nextID()
		r.s.employees = append(r.s.employees, emp)
	}
	return nil
}

func (r *employeeRepository) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []employee.Employee
	for _, emp := range r.s.employees {
		if within(emp.CreatedAt, start, end) {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (r *employeeRepository) DeleteByImportID(ctx context.Context, importID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.employees = slices.DeleteFunc(r.s.employees, func(emp employee.Employee) bool {
		return emp.ImportID == importID
	})
	return nil
}

type attendanceRepository struct{ s *Store }

func NewAttendanceRepository(s *Store) attendance.AttendanceRepository {
	return &attendanceRepository{s: s}
}

func (r *attendanceRepository) CreateMany(ctx context.Context, events []attendance.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failures[database.CollectionAttendanceEvents]; err != nil {
		return err
	}
	for _, ev := range events {
		ev.ID = r.s.nextID()
		r.s.events = append(r.s.events, ev)
	}
	return nil
}

func (r *attendanceRepository) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]attendance.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []attendance.Event
	for _, ev := range r.s.events {
		if within(ev.CreatedAt, start, end) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (r *attendanceRepository) DeleteByImportID(ctx context.Context, importID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.events = slices.DeleteFunc(r.s.events, func(ev attendance.Event) bool {
		return ev.ImportID == importID
	})
	return nil
}

type shiftRepository struct{ s *Store }

func NewShiftRepository(s *Store) shift.ShiftRepository {
	return &shiftRepository{s: s}
}

func (r *shiftRepository) CreateMany(ctx context.Context, shifts []shift.Shift) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failures[database.CollectionShifts]; err != nil {
		return err
	}
	for _, sh := range shifts {
		sh.ID = r.s.nextID()
		r.s.shifts = append(r.s.shifts, sh)
	}
	return nil
}

func (r *shiftRepository) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]shift.Shift, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []shift.Shift
	for _, sh := range r.s.shifts {
		if within(sh.CreatedAt, start, end) {
			out = append(out, sh)
		}
	}
	return out, nil
}

func (r *shiftRepository) DeleteByImportID(ctx context.Context, importID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.shifts = slices.DeleteFunc(r.s.shifts, func(sh shift.Shift) bool {
		return sh.ImportID == importID
	})
	return nil
}

type transactor struct{}

// NewTransactor returns a non-transactional transactor.
func NewTransactor() database.Transactor {
	return transactor{}
}

func (transactor) Transactional() bool { return false }

func (transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
