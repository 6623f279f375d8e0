package mongodb

import (
	"time"

	"github.com/cmlabs-hris/xls-import-go/internal/domain/attendance"
	"github.com/cmlabs-hris/xls-import-go/internal/domain/employee"
	"github.com/cmlabs-hris/xls-import-go/internal/domain/imports"
	"github.com/cmlabs-hris/xls-import-go/internal/domain/shift"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type importDocument struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	ImportID    string        `bson:"importId"`
	Filename    string        `bson:"filename"`
	UploadedAt  time.Time     `bson:"uploadedAt"`
	Stats       statsDocument `bson:"stats"`
	Status      string        `bson:"status"`
	Error       *string       `bson:"error,omitempty"`
	ArchivePath *string       `bson:"archivePath,omitempty"`
}

type statsDocument struct {
	TotalRows     int `bson:"totalRows"`
	ImportedRows  int `bson:"importedRows"`
	Errors        int `bson:"errors"`
	InvalidRows   int `bson:"invalidRows"`
	DuplicateRows int `bson:"duplicateRows"`
}

func newImportDocument(r imports.ImportRecord) importDocument {
	return importDocument{
		ImportID:   r.ImportID,
		Filename:   r.Filename,
		UploadedAt: r.UploadedAt,
		Stats: statsDocument{
			TotalRows:     r.Stats.TotalRows,
			ImportedRows:  r.Stats.ImportedRows,
			Errors:        r.Stats.Errors,
			InvalidRows:   r.Stats.InvalidRows,
			DuplicateRows: r.Stats.DuplicateRows,
		},
		Status:      string(r.Status),
		Error:       r.Error,
		ArchivePath: r.ArchivePath,
	}
}

type employeeDocument struct {
	ID         bson.ObjectID `bson:"_id,omitempty"`
	ImportID   string        `bson:"importId"`
	EmployeeID string        `bson:"employeeId"`
	Name       string        `bson:"name"`
	Department *string       `bson:"department,omitempty"`
	Position   *string       `bson:"position,omitempty"`
	Email      *string       `bson:"email,omitempty"`
	CreatedAt  time.Time     `bson:"createdAt"`
}

func newEmployeeDocument(e employee.Employee) employeeDocument {
	return employeeDocument{
		ImportID:   e.ImportID,
		EmployeeID: e.EmployeeID,
		Name:       e.Name,
		Department: e.Department,
		Position:   e.Position,
		Email:      e.Email,
		CreatedAt:  e.CreatedAt,
	}
}

func (d employeeDocument) entity() employee.Employee {
	return employee.Employee{
		ID:         d.ID.Hex(),
		ImportID:   d.ImportID,
		EmployeeID: d.EmployeeID,
		Name:       d.Name,
		Department: d.Department,
		Position:   d.Position,
		Email:      d.Email,
		CreatedAt:  d.CreatedAt,
	}
}

type attendanceDocument struct {
	ID            bson.ObjectID `bson:"_id,omitempty"`
	ImportID      string        `bson:"importId"`
	EmployeeID    string        `bson:"employeeId"`
	Date          time.Time     `bson:"date"`
	CheckIn       *time.Time    `bson:"checkIn,omitempty"`
	CheckOut      *time.Time    `bson:"checkOut,omitempty"`
	BreakDuration *int          `bson:"breakDuration,omitempty"`
	HoursWorked   *float64      `bson:"hoursWorked,omitempty"`
	EventType     string        `bson:"eventType"`
	CreatedAt     time.Time     `bson:"createdAt"`
}

func newAttendanceDocument(e attendance.Event) attendanceDocument {
	return attendanceDocument{
		ImportID:      e.ImportID,
		EmployeeID:    e.EmployeeID,
		Date:          e.Date,
		CheckIn:       e.CheckIn,
		CheckOut:      e.CheckOut,
		BreakDuration: e.BreakDuration,
		HoursWorked:   e.HoursWorked,
		EventType:     string(e.EventType),
		CreatedAt:     e.CreatedAt,
	}
}

func (d attendanceDocument) entity() attendance.Event {
	return attendance.Event{
		ID:            d.ID.Hex(),
		ImportID:      d.ImportID,
		EmployeeID:    d.EmployeeID,
		Date:          d.Date,
		CheckIn:       d.CheckIn,
		CheckOut:      d.CheckOut,
		BreakDuration: d.BreakDuration,
		HoursWorked:   d.HoursWorked,
		EventType:     attendance.EventType(d.EventType),
		CreatedAt:     d.CreatedAt,
	}
}

type shiftDocument struct {
	ID         bson.ObjectID `bson:"_id,omitempty"`
	ImportID   string        `bson:"importId"`
	EmployeeID string        `bson:"employeeId"`
	Date       time.Time     `bson:"date"`
	ShiftType  string        `bson:"shiftType"`
	StartTime  string        `bson:"startTime"`
	EndTime    string        `bson:"endTime"`
	Duration   int           `bson:"duration"`
	CreatedAt  time.Time     `bson:"createdAt"`
}

func newShiftDocument(s shift.Shift) shiftDocument {
	return shiftDocument{
		ImportID:   s.ImportID,
		EmployeeID: s.EmployeeID,
		Date:       s.Date,
		ShiftType:  string(s.ShiftType),
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
		Duration:   s.Duration,
		CreatedAt:  s.CreatedAt,
	}
}

func (d shiftDocument) entity() shift.Shift {
	return shift.Shift{
		ID:         d.ID.Hex(),
		ImportID:   d.ImportID,
		EmployeeID: d.EmployeeID,
		Date:       d.Date,
		ShiftType:  shift.Type(d.ShiftType),
		StartTime:  d.StartTime,
		EndTime:    d.EndTime,
		Duration:   d.Duration,
		CreatedAt:  d.CreatedAt,
	}
}

// createdBetween filters on ingestion time, not on the business date field.
func createdBetween(start, end time.Time) bson.M {
	return bson.M{"createdAt": bson.M{"$gte": start, "$lte": end}}
}

func byImportID(importID string) bson.M {
	return bson.M{"importId": importID}
}
