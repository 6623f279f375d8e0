package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/cmlabs-hris/xls-import-go/internal/pkg/storage"
)

type FileService interface {
	// ArchiveSpreadsheet stores the raw upload of an import and returns its storage path
	ArchiveSpreadsheet(ctx context.Context, importID string, uploadedAt time.Time, file io.Reader, filename string, contentType string) (string, error)

	// DeleteFile deletes an archived file
	DeleteFile(ctx context.Context, path string) error
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// ArchiveSpreadsheet writes the upload to imports/{date}/{importId}{ext}.
func (s *fileServiceImpl) ArchiveSpreadsheet(ctx context.Context, importID string, uploadedAt time.Time, file io.Reader, filename string, contentType string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".xls" && ext != ".xlsx" {
		ext = ".xlsx"
		if contentType == "application/vnd.ms-excel" {
			ext = ".xls"
		}
	}

	dateStr := uploadedAt.UTC().Format("2006-01-02")
	path := filepath.Join("imports", dateStr, importID+ext)

	uploadedPath, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to archive spreadsheet: %w", err)
	}

	return uploadedPath, nil
}

// DeleteFile deletes a file
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}
