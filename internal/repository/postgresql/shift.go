package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/xls-import-go/internal/domain/shift"
	"github.com/cmlabs-hris/xls-import-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

// CreateMany implements shift.ShiftRepository.
func (r *shiftRepository) CreateMany(ctx context.Context, shifts []shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	rows := make([][]interface{}, 0, len(shifts))
	for _, s := range shifts {
		rows = append(rows, []interface{}{
			s.ImportID, s.EmployeeID, s.Date, string(s.ShiftType), s.StartTime, s.EndTime, s.Duration, s.CreatedAt,
		})
	}

	_, err := q.CopyFrom(ctx,
		pgx.Identifier{database.CollectionShifts},
		[]string{"import_id", "employee_id", "shift_date", "shift_type", "start_time", "end_time", "duration", "created_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to create shifts: %w", err)
	}
	return nil
}

// ListCreatedBetween implements shift.ShiftRepository.
func (r *shiftRepository) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id::text, import_id, employee_id, shift_date, shift_type, start_time, end_time, duration, created_at
		FROM shifts
		WHERE created_at >= $1 AND created_at <= $2
		ORDER BY id
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	shifts := []shift.Shift{}
	for rows.Next() {
		var s shift.Shift
		var shiftType string
		if err := rows.Scan(
			&s.ID, &s.ImportID, &s.EmployeeID, &s.Date, &shiftType,
			&s.StartTime, &s.EndTime, &s.Duration, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		s.ShiftType = shift.Type(shiftType)
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shifts: %w", err)
	}

	return shifts, nil
}

// DeleteByImportID implements shift.ShiftRepository.
func (r *shiftRepository) DeleteByImportID(ctx context.Context, importID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM shifts WHERE import_id = $1`, importID); err != nil {
		return fmt.Errorf("failed to delete shifts: %w", err)
	}
	return nil
}
