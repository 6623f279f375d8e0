package importing

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/cmlabs-hris/xls-import-go/internal/domain/attendance"
	"github.com/cmlabs-hris/xls-import-go/internal/domain/employee"
	"github.com/cmlabs-hris/xls-import-go/internal/domain/shift"
	"github.com/cmlabs-hris/xls-import-go/internal/pkg/spreadsheet"
	"github.com/google/uuid"
)

// Batch is the output of one normalization pass. Every record carries ImportID.
type Batch struct {
	ImportID         string
	StartedAt        time.Time
	Employees        []employee.Employee
	AttendanceEvents []attendance.Event
	Shifts           []shift.Shift
	InvalidRows      int
	DuplicateRows    int
}

// sourceRow is a spreadsheet row after column resolution and parsing.
type sourceRow struct {
	employeeID  string
	name        string
	department  *string
	position    *string
	email       *string
	date        time.Time
	checkIn     *time.Time
	checkOut    *time.Time
	hasCheckIn  bool
	hasCheckOut bool
	shiftType   shift.Type
	startTime   string
	endTime     string
	duration    int
}

type Normalizer struct {
	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

type Option func(*Normalizer)

// WithClock sets the source of the pass start timestamp.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) { n.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(n *Normalizer) { n.newID = newID }
}

func WithLogger(logger *slog.Logger) Option {
	return func(n *Normalizer) { n.logger = logger }
}

func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{
		now:    time.Now,
		newID:  uuid.NewString,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize converts rows into employees, attendance events and shifts under a fresh
// import id. Every row yields an employee (unless duplicated) and a shift. Cells that do
// not parse are logged and fall back: the date to the pass start, check-in/out to an event
// without a timestamp, an unreadable hour to a zero duration.
func (n *Normalizer) Normalize(rows []spreadsheet.Row) Batch {
	now := n.now().UTC()
	batch := Batch{
		ImportID:         n.newID(),
		StartedAt:        now,
		Employees:        make([]employee.Employee, 0, len(rows)),
		AttendanceEvents: make([]attendance.Event, 0, len(rows)*2),
		Shifts:           make([]shift.Shift, 0, len(rows)),
	}
	seen := make(map[string]struct{}, len(rows))

	for index, row := range rows {
		src, err := resolveRow(row, index, now)
		if err != nil {
			n.logger.Warn("spreadsheet row has invalid values", "row", index, "employee_id", src.employeeID, "error", err)
			batch.InvalidRows++
		}

		if _, ok := seen[src.employeeID]; ok {
			batch.DuplicateRows++
		} else {
			seen[src.employeeID] = struct{}{}
			batch.Employees = append(batch.Employees, employee.Employee{
				ImportID:   batch.ImportID,
				EmployeeID: src.employeeID,
				Name:       src.name,
				Department: src.department,
				Position:   src.position,
				Email:      src.email,
				CreatedAt:  now,
			})
		}

		if src.hasCheckIn {
			batch.AttendanceEvents = append(batch.AttendanceEvents, attendance.Event{
				ImportID:   batch.ImportID,
				EmployeeID: src.employeeID,
				Date:       src.date,
				CheckIn:    src.checkIn,
				EventType:  attendance.EventTypeCheckIn,
				CreatedAt:  now,
			})
		}
		if src.hasCheckOut {
			batch.AttendanceEvents = append(batch.AttendanceEvents, attendance.Event{
				ImportID:   batch.ImportID,
				EmployeeID: src.employeeID,
				Date:       src.date,
				CheckOut:   src.checkOut,
				EventType:  attendance.EventTypeCheckOut,
				CreatedAt:  now,
			})
		}

		batch.Shifts = append(batch.Shifts, shift.Shift{
			ImportID:   batch.ImportID,
			EmployeeID: src.employeeID,
			Date:       src.date,
			ShiftType:  src.shiftType,
			StartTime:  src.startTime,
			EndTime:    src.endTime,
			Duration:   src.duration,
			CreatedAt:  now,
		})
	}

	return batch
}

// resolveRow always returns a usable row. The error joins every cell that fell back to
// its default.
func resolveRow(row spreadsheet.Row, index int, now time.Time) (sourceRow, error) {
	var (
		src  sourceRow
		errs []error
	)

	src.employeeID, _ = lookup(row, fieldEmployeeID)
	if src.employeeID == "" {
		src.employeeID = strconv.Itoa(index)
	}

	src.name, _ = lookup(row, fieldName)
	if src.name == "" {
		src.name = employee.DefaultName(src.employeeID)
	}

	src.department = lookupOptional(row, fieldDepartment)
	src.position = lookupOptional(row, fieldPosition)
	src.email = lookupOptional(row, fieldEmail)

	src.date = now
	if value, ok := lookup(row, fieldDate); ok {
		date, err := parseDate(value)
		if err != nil {
			errs = append(errs, fmt.Errorf("date: %w", err))
		} else {
			src.date = date
		}
	}

	if value, ok := lookup(row, fieldCheckIn); ok {
		src.hasCheckIn = true
		if t, err := parseTimestamp(value, src.date); err != nil {
			errs = append(errs, fmt.Errorf("check in: %w", err))
		} else {
			src.checkIn = &t
		}
	}
	if value, ok := lookup(row, fieldCheckOut); ok {
		src.hasCheckOut = true
		if t, err := parseTimestamp(value, src.date); err != nil {
			errs = append(errs, fmt.Errorf("check out: %w", err))
		} else {
			src.checkOut = &t
		}
	}

	src.shiftType = shift.TypeCustom
	if value, ok := lookup(row, fieldShiftType); ok {
		src.shiftType = shift.Type(value)
	}

	src.startTime = shift.DefaultStartTime
	if value, ok := lookup(row, fieldStartTime); ok {
		src.startTime = clockText(value)
	}
	src.endTime = shift.DefaultEndTime
	if value, ok := lookup(row, fieldEndTime); ok {
		src.endTime = clockText(value)
	}

	duration, err := shift.Duration(src.startTime, src.endTime)
	if err != nil {
		errs = append(errs, err)
	} else {
		src.duration = duration
	}

	return src, errors.Join(errs...)
}
