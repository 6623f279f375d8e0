package yearly

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/xls-import-go/internal/domain/attendance"
	"github.com/cmlabs-hris/xls-import-go/internal/domain/employee"
	"github.com/cmlabs-hris/xls-import-go/internal/domain/shift"
	"github.com/cmlabs-hris/xls-import-go/internal/pkg/validator"
)

// UnspecifiedDepartment buckets employees without a department.
const UnspecifiedDepartment = "Não especificado"

const (
	MinYear = 1970
	MaxYear = 9999
)

type YearRequest struct {
	Year int
}

func (r *YearRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < MinYear || r.Year > MaxYear {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between %d and %d", MinYear, MaxYear),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Bounds returns the UTC window [Jan 1 00:00:00.000, Dec 31 23:59:59.999] of r.Year.
func (r YearRequest) Bounds() (time.Time, time.Time) {
	start := time.Date(r.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(r.Year, time.December, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	return start, end
}

// Snapshot holds the raw records created within one year.
type Snapshot struct {
	Employees        []employee.Employee
	AttendanceEvents []attendance.Event
	Shifts           []shift.Shift
}

type YearResponse struct {
	OK                    bool           `json:"ok"`
	Year                  int            `json:"year"`
	TotalEmployees        int            `json:"totalEmployees"`
	TotalAttendanceEvents int            `json:"totalAttendanceEvents"`
	TotalShifts           int            `json:"totalShifts"`
	Employees             []EmployeeView `json:"employees"`
	Summary               Summary        `json:"summary"`
}

// EmployeeView is an employee with its attendance events and shifts nested.
type EmployeeView struct {
	EmployeeID       string           `json:"employeeId"`
	Name             string           `json:"name"`
	Department       *string          `json:"department,omitempty"`
	Position         *string          `json:"position,omitempty"`
	Email            *string          `json:"email,omitempty"`
	AttendanceEvents []AttendanceView `json:"attendanceEvents"`
	Shifts           []ShiftView      `json:"shifts"`
}

type AttendanceView struct {
	Date      time.Time            `json:"date"`
	CheckIn   *time.Time           `json:"checkIn,omitempty"`
	CheckOut  *time.Time           `json:"checkOut,omitempty"`
	EventType attendance.EventType `json:"eventType"`
}

type ShiftView struct {
	Date      time.Time  `json:"date"`
	ShiftType shift.Type `json:"shiftType"`
	StartTime string     `json:"startTime"`
	EndTime   string     `json:"endTime"`
	Duration  int        `json:"duration"`
}

type Summary struct {
	EmployeesByDepartment map[string]int `json:"employeesByDepartment"`
	ShiftsByType          map[string]int `json:"shiftsByType"`
	AverageShiftDuration  float64        `json:"averageShiftDuration"`
}

// ExportFile is a generated source file ready for download.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
