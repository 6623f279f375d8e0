package attendance

import (
	"context"
	"time"
)

// AttendanceRepository persists attendance events.
type AttendanceRepository interface {
	// CreateMany inserts all events of one import
	CreateMany(ctx context.Context, events []Event) error

	// ListCreatedBetween returns events with createdAt in [start, end]
	ListCreatedBetween(ctx context.Context, start, end time.Time) ([]Event, error)

	DeleteByImportID(ctx context.Context, importID string) error
}
