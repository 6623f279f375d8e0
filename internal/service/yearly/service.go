package yearly

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/xls-import-go/internal/domain/attendance"
	"github.com/cmlabs-hris/xls-import-go/internal/domain/employee"
	"github.com/cmlabs-hris/xls-import-go/internal/domain/shift"
	"github.com/cmlabs-hris/xls-import-go/internal/domain/yearly"
	"golang.org/x/sync/errgroup"
)

type YearServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	shiftRepo      shift.ShiftRepository
	now            func() time.Time
}

func NewYearService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	shiftRepo shift.ShiftRepository,
) yearly.YearService {
	return &YearServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		shiftRepo:      shiftRepo,
		now:            time.Now,
	}
}

// snapshot loads the three collections for the year in parallel. Records are
// selected by createdAt, the time they were imported.
func (s *YearServiceImpl) snapshot(ctx context.Context, req yearly.YearRequest) (yearly.Snapshot, error) {
	start, end := req.Bounds()

	var snap yearly.Snapshot
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		employees, err := s.employeeRepo.ListCreatedBetween(gCtx, start, end)
		if err != nil {
			return err
		}
		snap.Employees = employees
		return nil
	})

	g.Go(func() error {
		events, err := s.attendanceRepo.ListCreatedBetween(gCtx, start, end)
		if err != nil {
			return err
		}
		snap.AttendanceEvents = events
		return nil
	})

	g.Go(func() error {
		shifts, err := s.shiftRepo.ListCreatedBetween(gCtx, start, end)
		if err != nil {
			return err
		}
		snap.Shifts = shifts
		return nil
	})

	if err := g.Wait(); err != nil {
		return yearly.Snapshot{}, fmt.Errorf("failed to load year %d: %w", req.Year, err)
	}
	return snap, nil
}

// GetYear implements yearly.YearService.
func (s *YearServiceImpl) GetYear(ctx context.Context, req yearly.YearRequest) (yearly.YearResponse, error) {
	if err := req.Validate(); err != nil {
		return yearly.YearResponse{}, err
	}

	snap, err := s.snapshot(ctx, req)
	if err != nil {
		return yearly.YearResponse{}, err
	}

	return yearly.YearResponse{
		OK:                    true,
		Year:                  req.Year,
		TotalEmployees:        len(snap.Employees),
		TotalAttendanceEvents: len(snap.AttendanceEvents),
		TotalShifts:           len(snap.Shifts),
		Employees:             joinEmployees(snap),
		Summary:               summarize(snap),
	}, nil
}

// joinEmployees nests events and shifts under their employee. Employees keep the
// position of their first record; a later record with the same employeeId overwrites
// the fields. Events and shifts without an employee are dropped.
func joinEmployees(snap yearly.Snapshot) []yearly.EmployeeView {
	views := make([]yearly.EmployeeView, 0, len(snap.Employees))
	index := make(map[string]int, len(snap.Employees))

	for _, emp := range snap.Employees {
		view := yearly.EmployeeView{
			EmployeeID:       emp.EmployeeID,
			Name:             emp.Name,
			Department:       emp.Department,
			Position:         emp.Position,
			Email:            emp.Email,
			AttendanceEvents: []yearly.AttendanceView{},
			Shifts:           []yearly.ShiftView{},
		}
		if i, ok := index[emp.EmployeeID]; ok {
			views[i] = view
			continue
		}
		index[emp.EmployeeID] = len(views)
		views = append(views, view)
	}

	for _, ev := range snap.AttendanceEvents {
		i, ok := index[ev.EmployeeID]
		if !ok {
			continue
		}
		views[i].AttendanceEvents = append(views[i].AttendanceEvents, yearly.AttendanceView{
			Date:      ev.Date,
			CheckIn:   ev.CheckIn,
			CheckOut:  ev.CheckOut,
			EventType: ev.EventType,
		})
	}

	for _, sh := range snap.Shifts {
		i, ok := index[sh.EmployeeID]
		if !ok {
			continue
		}
		views[i].Shifts = append(views[i].Shifts, yearly.ShiftView{
			Date:      sh.Date,
			ShiftType: sh.ShiftType,
			StartTime: sh.StartTime,
			EndTime:   sh.EndTime,
			Duration:  sh.Duration,
		})
	}

	return views
}

func summarize(snap yearly.Snapshot) yearly.Summary {
	summary := yearly.Summary{
		EmployeesByDepartment: make(map[string]int),
		ShiftsByType:          make(map[string]int),
	}

	for _, emp := range snap.Employees {
		dept := yearly.UnspecifiedDepartment
		if emp.Department != nil && *emp.Department != "" {
			dept = *emp.Department
		}
		summary.EmployeesByDepartment[dept]++
	}

	total := 0
	for _, sh := range snap.Shifts {
		summary.ShiftsByType[string(sh.ShiftType)]++
		total += sh.Duration
	}
	if len(snap.Shifts) > 0 {
		summary.AverageShiftDuration = float64(total) / float64(len(snap.Shifts))
	}

	return summary
}
