package database

import "context"

// Collection (or table) names shared by every store.
const (
	CollectionImports          = "imports"
	CollectionEmployees        = "employees"
	CollectionAttendanceEvents = "attendance_events"
	CollectionShifts           = "shifts"
)

// Transactor runs a unit of work. When Transactional reports false, fn runs without an
// envelope and writes made before a failure stay committed.
type Transactor interface {
	Transactional() bool
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
