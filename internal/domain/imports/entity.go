package imports

import "time"

type Status string

const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

// Stats summarises one upload. Errors keeps the historical approximation
// TotalRows - ImportedRows, which counts employees deduplicated inside the batch.
// InvalidRows counts rows kept with at least one unparseable cell.
type Stats struct {
	TotalRows     int `json:"totalRows"`
	ImportedRows  int `json:"importedRows"`
	Errors        int `json:"errors"`
	InvalidRows   int `json:"invalidRows"`
	DuplicateRows int `json:"duplicateRows"`
}

// ImportRecord is the audit entry written once per upload.
type ImportRecord struct {
	ID          string    `json:"_id,omitempty"`
	ImportID    string    `json:"importId"`
	Filename    string    `json:"filename"`
	UploadedAt  time.Time `json:"uploadedAt"`
	Stats       Stats     `json:"stats"`
	Status      Status    `json:"status"`
	Error       *string   `json:"error,omitempty"`
	ArchivePath *string   `json:"archivePath,omitempty"`
}
