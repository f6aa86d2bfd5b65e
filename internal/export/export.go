package export

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/mholt/archives"
	"github.com/pkg/errors"

	"worklog-service/internal/models"
)

// ContentType of a compressed export.
const ContentType = "application/gzip"

// Header is the first CSV record of every export.
var Header = []string{"id", "project_number", "worker_name", "work_details", "work_time_hours", "timestamp"}

// WriteCSV writes entries as CSV, header first.
func WriteCSV(ctx context.Context, w io.Writer, entries []models.WorkEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for i, e := range entries {
		if i%500 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		details := ""
		if e.WorkDetails != nil {
			details = *e.WorkDetails
		}
		record := []string{
			strconv.FormatInt(e.ID, 10),
			e.ProjectNumber,
			e.WorkerName,
			details,
			strconv.FormatFloat(e.WorkTimeHours, 'f', -1, 64),
			e.Timestamp.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteGzipCSV writes entries as gzip-compressed CSV.
func WriteGzipCSV(ctx context.Context, w io.Writer, entries []models.WorkEntry) error {
	zw, err := archives.Gz{}.OpenWriter(w)
	if err != nil {
		return errors.Wrap(err, "opening gzip writer")
	}
	if err := WriteCSV(ctx, zw, entries); err != nil {
		zw.Close()
		return errors.Wrap(err, "writing export")
	}
	return errors.Wrap(zw.Close(), "finishing gzip stream")
}
