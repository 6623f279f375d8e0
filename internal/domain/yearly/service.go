package yearly

import "context"

// YearService builds the per-year views over imported records
type YearService interface {
	// GetYear joins events and shifts onto their employee and summarises the year
	GetYear(ctx context.Context, req YearRequest) (YearResponse, error)

	// Export renders the raw records of the year as a TypeScript module
	Export(ctx context.Context, req YearRequest) (ExportFile, error)
}
