package importing

import "github.com/cmlabs-hris/xls-import-go/internal/pkg/spreadsheet"

type field int

const (
	fieldEmployeeID field = iota
	fieldName
	fieldDepartment
	fieldPosition
	fieldEmail
	fieldDate
	fieldCheckIn
	fieldCheckOut
	fieldShiftType
	fieldStartTime
	fieldEndTime
)

// columnAliases lists the accepted header names per field, in precedence order.
// Portuguese headers come first, matching the spreadsheets exported by the HR tool.
var columnAliases = map[field][]string{
	fieldEmployeeID: {"ID", "employeeId", "Código"},
	fieldName:       {"Nome", "name", "Funcionário"},
	fieldDepartment: {"Departamento", "department"},
	fieldPosition:   {"Cargo", "position"},
	fieldEmail:      {"Email", "email"},
	fieldDate:       {"Data", "date"},
	fieldCheckIn:    {"Entrada", "checkIn"},
	fieldCheckOut:   {"Saída", "checkOut"},
	fieldShiftType:  {"Turno", "shift", "shiftType"},
	fieldStartTime:  {"Hora Início", "startTime"},
	fieldEndTime:    {"Hora Fim", "endTime"},
}

// lookup returns the first non-empty cell among the aliases of f.
func lookup(row spreadsheet.Row, f field) (string, bool) {
	for _, alias := range columnAliases[f] {
		if value, ok := row[alias]; ok && value != "" {
			return value, true
		}
	}
	return "", false
}

func lookupOptional(row spreadsheet.Row, f field) *string {
	value, ok := lookup(row, f)
	if !ok {
		return nil
	}
	return &value
}
