package imports

import (
	"mime/multipart"

	"github.com/cmlabs-hris/xls-import-go/internal/pkg/validator"
)

const DefaultMaxUploadSize int64 = 10 << 20

// AllowedContentTypes are the spreadsheet MIME types accepted on upload.
var AllowedContentTypes = []string{
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

type ImportRequest struct {
	File       multipart.File
	FileHeader *multipart.FileHeader
	MaxSize    int64
}

func (r *ImportRequest) Validate() error {
	if r.File == nil || r.FileHeader == nil {
		return ErrFileRequired
	}

	maxSize := r.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxUploadSize
	}
	if r.FileHeader.Size > maxSize {
		return ErrFileTooLarge
	}

	if !validator.IsInSlice(r.FileHeader.Header.Get("Content-Type"), AllowedContentTypes) {
		return ErrInvalidFileType
	}
	return nil
}

type ImportResponse struct {
	OK       bool   `json:"ok"`
	ImportID string `json:"importId"`
	Stats    Stats  `json:"stats"`
}
