package shift

import (
	"context"
	"time"
)

// ShiftRepository persists shifts.
type ShiftRepository interface {
	CreateMany(ctx context.Context, shifts []Shift) error
	ListCreatedBetween(ctx context.Context, start, end time.Time) ([]Shift, error)
	DeleteByImportID(ctx context.Context, importID string) error
}
