package yearly

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"text/template"
	"time"

	"github.com/cmlabs-hris/xls-import-go/internal/domain/yearly"
)

//go:embed templates/export.ts.tmpl
var exportSource string

var exportTemplate = template.Must(template.New("export").Parse(exportSource))

type exportData struct {
	Year                  int
	GeneratedAt           string
	TotalEmployees        int
	TotalAttendanceEvents int
	TotalShifts           int
	Employees             string
	AttendanceEvents      string
	Shifts                string
	UnspecifiedDepartment string
}

// Export implements yearly.YearService.
func (s *YearServiceImpl) Export(ctx context.Context, req yearly.YearRequest) (yearly.ExportFile, error) {
	if err := req.Validate(); err != nil {
		return yearly.ExportFile{}, err
	}

	snap, err := s.snapshot(ctx, req)
	if err != nil {
		return yearly.ExportFile{}, err
	}

	content, err := renderExport(req.Year, s.now().UTC(), snap)
	if err != nil {
		return yearly.ExportFile{}, err
	}

	return yearly.ExportFile{
		Filename:    fmt.Sprintf("year%d-data.ts", req.Year),
		ContentType: "text/plain; charset=utf-8",
		Content:     content,
	}, nil
}

func renderExport(year int, generatedAt time.Time, snap yearly.Snapshot) ([]byte, error) {
	data := exportData{
		Year:                  year,
		GeneratedAt:           generatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
		TotalEmployees:        len(snap.Employees),
		TotalAttendanceEvents: len(snap.AttendanceEvents),
		TotalShifts:           len(snap.Shifts),
		UnspecifiedDepartment: yearly.UnspecifiedDepartment,
	}

	var err error
	if data.Employees, err = jsonLiteral(snap.Employees); err != nil {
		return nil, err
	}
	if data.AttendanceEvents, err = jsonLiteral(snap.AttendanceEvents); err != nil {
		return nil, err
	}
	if data.Shifts, err = jsonLiteral(snap.Shifts); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := exportTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render export: %w", err)
	}
	return buf.Bytes(), nil
}

// jsonLiteral formats records as an indented JSON array; nil encodes as [].
func jsonLiteral[T any](records []T) (string, error) {
	if records == nil {
		records = []T{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return "", fmt.Errorf("failed to encode export data: %w", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
