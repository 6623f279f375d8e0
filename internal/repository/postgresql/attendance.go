package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/xls-import-go/internal/domain/attendance"
	"github.com/cmlabs-hris/xls-import-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// CreateMany implements attendance.AttendanceRepository.
func (a *attendanceRepository) CreateMany(ctx context.Context, events []attendance.Event) error {
	q := GetQuerier(ctx, a.db)

	rows := make([][]interface{}, 0, len(events))
	for _, ev := range events {
		rows = append(rows, []interface{}{
			ev.ImportID, ev.EmployeeID, ev.Date, ev.CheckIn, ev.CheckOut,
			ev.BreakDuration, ev.HoursWorked, string(ev.EventType), ev.CreatedAt,
		})
	}

	_, err := q.CopyFrom(ctx,
		pgx.Identifier{database.CollectionAttendanceEvents},
		[]string{
			"import_id", "employee_id", "event_date", "check_in", "check_out",
			"break_duration", "hours_worked", "event_type", "created_at",
		},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to create attendance events: %w", err)
	}
	return nil
}

// ListCreatedBetween implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]attendance.Event, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id::text, import_id, employee_id, event_date, check_in, check_out,
			   break_duration, hours_worked, event_type, created_at
		FROM attendance_events
		WHERE created_at >= $1 AND created_at <= $2
		ORDER BY id
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance events: %w", err)
	}
	defer rows.Close()

	events := []attendance.Event{}
	for rows.Next() {
		var ev attendance.Event
		var eventType string
		if err := rows.Scan(
			&ev.ID, &ev.ImportID, &ev.EmployeeID, &ev.Date, &ev.CheckIn, &ev.CheckOut,
			&ev.BreakDuration, &ev.HoursWorked, &eventType, &ev.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance event: %w", err)
		}
		ev.EventType = attendance.EventType(eventType)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance events: %w", err)
	}

	return events, nil
}

// DeleteByImportID implements attendance.AttendanceRepository.
func (a *attendanceRepository) DeleteByImportID(ctx context.Context, importID string) error {
	q := GetQuerier(ctx, a.db)

	if _, err := q.Exec(ctx, `DELETE FROM attendance_events WHERE import_id = $1`, importID); err != nil {
		return fmt.Errorf("failed to delete attendance events: %w", err)
	}
	return nil
}
