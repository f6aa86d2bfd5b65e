package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"worklog-service/internal/export"
	"worklog-service/internal/metrics"
)

// ErrExportUnavailable is returned when no object store is configured.
var ErrExportUnavailable = errors.New("object storage is not configured")

// ObjectUploader stores a finished export under a key.
type ObjectUploader interface {
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
}

// ExportService renders the work log as gzip-compressed CSV.
type ExportService struct {
	repo     WorkEntryStore
	uploader ObjectUploader
	metrics  *metrics.Metrics
	now      func() time.Time
}

// NewExportService creates an ExportService. uploader may be nil, in which
// case only direct downloads are possible.
func NewExportService(repo WorkEntryStore, uploader ObjectUploader, m *metrics.Metrics) *ExportService {
	return &ExportService{
		repo:     repo,
		uploader: uploader,
		metrics:  m,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CanUpload reports whether UploadExport has a destination.
func (s *ExportService) CanUpload() bool {
	return s.uploader != nil
}

// FileName is the suggested name for an export produced at t.
func FileName(t time.Time) string {
	return fmt.Sprintf("work_log-%s.csv.gz", t.UTC().Format("20060102T150405Z"))
}

// WriteExport writes every entry to w.
func (s *ExportService) WriteExport(ctx context.Context, w io.Writer) error {
	err := s.write(ctx, w)
	s.metrics.RecordExport("download", err)
	return err
}

// UploadExport renders the export and stores it in the object store,
// returning the object key.
func (s *ExportService) UploadExport(ctx context.Context) (string, error) {
	if s.uploader == nil {
		return "", ErrExportUnavailable
	}

	var buf bytes.Buffer
	if err := s.write(ctx, &buf); err != nil {
		s.metrics.RecordExport("object_store", err)
		return "", err
	}
	key := fmt.Sprintf("exports/%s/%s", uuid.NewString(), FileName(s.now()))
	err := s.uploader.Upload(ctx, key, &buf, int64(buf.Len()), export.ContentType)
	s.metrics.RecordExport("object_store", err)
	if err != nil {
		return "", errors.Wrapf(err, "uploading export %s", key)
	}
	return key, nil
}

func (s *ExportService) write(ctx context.Context, w io.Writer) error {
	started := time.Now()
	entries, err := s.repo.ListEntries(ctx)
	s.metrics.ObserveStore(metrics.OpList, started, err)
	if err != nil {
		return err
	}
	return export.WriteGzipCSV(ctx, w, entries)
}
