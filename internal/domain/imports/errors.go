package imports

import "errors"

var (
	ErrInvalidImportKey   = errors.New("invalid import key")
	ErrFileRequired       = errors.New("no file uploaded")
	ErrInvalidFileType    = errors.New("only .xls and .xlsx files are allowed")
	ErrFileTooLarge       = errors.New("file exceeds the upload size limit")
	ErrInvalidSpreadsheet = errors.New("spreadsheet could not be read")
	ErrEmptySpreadsheet   = errors.New("spreadsheet has no data rows")
)
