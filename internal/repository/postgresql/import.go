package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/xls-import-go/internal/domain/imports"
	"github.com/cmlabs-hris/xls-import-go/internal/pkg/database"
)

type importRepository struct {
	db *database.DB
}

func NewImportRepository(db *database.DB) imports.ImportRepository {
	return &importRepository{db: db}
}

// Create implements imports.ImportRepository.
func (r *importRepository) Create(ctx context.Context, record imports.ImportRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO imports (
			import_id, filename, uploaded_at,
			total_rows, imported_rows, errors, invalid_rows, duplicate_rows,
			status, error, archive_path
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := q.Exec(ctx, query,
		record.ImportID,
		record.Filename,
		record.UploadedAt,
		record.Stats.TotalRows,
		record.Stats.ImportedRows,
		record.Stats.Errors,
		record.Stats.InvalidRows,
		record.Stats.DuplicateRows,
		string(record.Status),
		record.Error,
		record.ArchivePath,
	)
	if err != nil {
		return fmt.Errorf("failed to create import record: %w", err)
	}
	return nil
}

// DeleteByImportID implements imports.ImportRepository.
func (r *importRepository) DeleteByImportID(ctx context.Context, importID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM imports WHERE import_id = $1`, importID); err != nil {
		return fmt.Errorf("failed to delete import record: %w", err)
	}
	return nil
}
