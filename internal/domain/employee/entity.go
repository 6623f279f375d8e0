package employee

import "time"

// Employee is one person as seen by a single import. The same employeeId may appear
// again under another import; records are never merged across imports.
type Employee struct {
	ID         string    `json:"_id,omitempty"`
	ImportID   string    `json:"importId"`
	EmployeeID string    `json:"employeeId"`
	Name       string    `json:"name"`
	Department *string   `json:"department,omitempty"`
	Position   *string   `json:"position,omitempty"`
	Email      *string   `json:"email,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// DefaultName is used when a row carries no name column.
func DefaultName(employeeID string) string {
	return "Funcionário " + employeeID
}
