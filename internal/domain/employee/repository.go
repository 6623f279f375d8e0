package employee

import (
	"context"
	"time"
)

// EmployeeRepository persists employees. Records are immutable once written;
// DeleteByImportID exists only to compensate a failed import.
type EmployeeRepository interface {
	// CreateMany inserts all employees of one import
	CreateMany(ctx context.Context, employees []Employee) error

	// ListCreatedBetween returns employees with createdAt in [start, end]
	ListCreatedBetween(ctx context.Context, start, end time.Time) ([]Employee, error)

	// DeleteByImportID removes every employee written under importID
	DeleteByImportID(ctx context.Context, importID string) error
}
