package shift

import "time"

// Type is the shift kind read from the spreadsheet. Values outside the known set are
// stored as given.
type Type string

const (
	TypeMorning   Type = "morning"
	TypeAfternoon Type = "afternoon"
	TypeNight     Type = "night"
	TypeCustom    Type = "custom"
)

const (
	DefaultStartTime = "08:00"
	DefaultEndTime   = "17:00"
)

type Shift struct {
	ID         string    `json:"_id,omitempty"`
	ImportID   string    `json:"importId"`
	EmployeeID string    `json:"employeeId"`
	Date       time.Time `json:"date"`
	ShiftType  Type      `json:"shiftType"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	Duration   int       `json:"duration"`
	CreatedAt  time.Time `json:"createdAt"`
}
