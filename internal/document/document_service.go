package document

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ali44ashhad/contractor/internal/shared/apperror"
)

const maxAttachmentSize = 25 << 20 // 25 MiB

//go:generate mockgen -source=document_service.go -destination=mock/document_service_mock.go -package=mock
type Service interface {
	Upload(ctx context.Context, uploadedBy, fileName, contentType string, size int64, data io.Reader) (Descriptor, error)
	Download(ctx context.Context, storagePath string) (io.ReadCloser, error)
}

type service struct {
	storage Storage
	logger  *zap.Logger
}

func NewService(storage Storage, logger ...*zap.Logger) Service {
	l := zap.L().Named("document.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.service")
	}
	return &service{storage: storage, logger: l}
}

func (s *service) Upload(ctx context.Context, uploadedBy, fileName, contentType string, size int64, data io.Reader) (Descriptor, error) {
	if fileName == "" {
		return Descriptor{}, apperror.New(apperror.CodeInvalidInput, "file name is required", http.StatusBadRequest)
	}
	if size <= 0 || size > maxAttachmentSize {
		return Descriptor{}, apperror.New(apperror.CodeInvalidInput, "file size must be between 1 byte and 25 MiB", http.StatusBadRequest)
	}

	id := uuid.New().String()
	day := time.Now().UTC().Format("2006/01/02")
	path := filepath.Join("attachments", day, id+filepath.Ext(fileName))

	written, err := s.storage.Write(path, io.LimitReader(data, maxAttachmentSize))
	if err != nil {
		s.logger.Error("write attachment failed",
			zap.String("path", path),
			zap.String("uploaded_by", uploadedBy),
			zap.Error(err),
		)
		return Descriptor{}, err
	}

	s.logger.Info("attachment stored",
		zap.String("document_id", id),
		zap.String("path", path),
		zap.Int64("size_bytes", written),
		zap.String("uploaded_by", uploadedBy),
	)

	return Descriptor{
		ID:          id,
		FileName:    fileName,
		ContentType: contentType,
		SizeBytes:   written,
		StoragePath: path,
		URL:         s.storage.URL(path),
	}, nil
}

func (s *service) Download(ctx context.Context, storagePath string) (io.ReadCloser, error) {
	// Path datang dari URL, bukan dari database
	clean := filepath.ToSlash(filepath.Clean(storagePath))
	if clean == "" || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return nil, apperror.New(apperror.CodeInvalidInput, "invalid document path", http.StatusBadRequest)
	}

	rc, err := s.storage.Read(clean)
	if err != nil {
		return nil, apperror.ErrNotFound
	}
	return rc, nil
}
