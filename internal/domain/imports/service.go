package imports

import "context"

// ImportService turns one uploaded spreadsheet into stored records
type ImportService interface {
	Import(ctx context.Context, req ImportRequest) (ImportResponse, error)
}
