package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/xls-import-go/internal/domain/employee"
	"github.com/cmlabs-hris/xls-import-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// CreateMany implements employee.EmployeeRepository.
func (r *employeeRepository) CreateMany(ctx context.Context, employees []employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	rows := make([][]interface{}, 0, len(employees))
	for _, emp := range employees {
		rows = append(rows, []interface{}{
			emp.ImportID, emp.EmployeeID, emp.Name, emp.Department, emp.Position, emp.Email, emp.CreatedAt,
		})
	}

	_, err := q.CopyFrom(ctx,
		pgx.Identifier{database.CollectionEmployees},
		[]string{"import_id", "employee_id", "name", "department", "position", "email", "created_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to create employees: %w", err)
	}
	return nil
}

// ListCreatedBetween implements employee.EmployeeRepository.
func (r *employeeRepository) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id::text, import_id, employee_id, name, department, position, email, created_at
		FROM employees
		WHERE created_at >= $1 AND created_at <= $2
		ORDER BY id
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.ImportID, &emp.EmployeeID, &emp.Name,
			&emp.Department, &emp.Position, &emp.Email, &emp.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

// DeleteByImportID implements employee.EmployeeRepository.
func (r *employeeRepository) DeleteByImportID(ctx context.Context, importID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM employees WHERE import_id = $1`, importID); err != nil {
		return fmt.Errorf("failed to delete employees: %w", err)
	}
	return nil
}
