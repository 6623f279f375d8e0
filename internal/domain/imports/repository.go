package imports

import "context"

// ImportRepository stores the per-upload audit record.
type ImportRepository interface {
	Create(ctx context.Context, record ImportRecord) error
	DeleteByImportID(ctx context.Context, importID string) error
}
