package attendance

import "time"

type EventType string

const (
	EventTypeCheckIn    EventType = "check_in"
	EventTypeCheckOut   EventType = "check_out"
	EventTypeBreakStart EventType = "break_start"
	EventTypeBreakEnd   EventType = "break_end"
)

// Event is a single timestamped attendance occurrence. A check-in and a check-out read
// from the same spreadsheet row are stored as two events.
type Event struct {
	ID            string     `json:"_id,omitempty"`
	ImportID      string     `json:"importId"`
	EmployeeID    string     `json:"employeeId"`
	Date          time.Time  `json:"date"`
	CheckIn       *time.Time `json:"checkIn,omitempty"`
	CheckOut      *time.Time `json:"checkOut,omitempty"`
	BreakDuration *int       `json:"breakDuration,omitempty"`
	HoursWorked   *float64   `json:"hoursWorked,omitempty"`
	EventType     EventType  `json:"eventType"`
	CreatedAt     time.Time  `json:"createdAt"`
}
