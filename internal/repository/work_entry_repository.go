package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"worklog-service/internal/models"
)

// WorkEntryRepository persists work entries. Each call holds one dedicated
// connection for its whole duration and releases it on every return path.
type WorkEntryRepository struct {
	db *gorm.DB
}

// NewWorkEntryRepository creates a new WorkEntryRepository instance with the provided GORM database connection.
func NewWorkEntryRepository(db *gorm.DB) *WorkEntryRepository {
	return &WorkEntryRepository{db: db}
}

func (r *WorkEntryRepository) withConn(ctx context.Context, fn func(conn *gorm.DB) error) error {
	return r.db.WithContext(ctx).Connection(fn)
}

// EnsureSchema creates the work_entries table when it does not exist yet. An
// existing table is left untouched.
func (r *WorkEntryRepository) EnsureSchema(ctx context.Context) error {
	err := r.withConn(ctx, func(conn *gorm.DB) error {
		migrator := conn.Migrator()
		if migrator.HasTable(&models.WorkEntry{}) {
			return nil
		}
		return migrator.CreateTable(&models.WorkEntry{})
	})
	return errors.Wrap(err, "ensuring work_entries schema")
}

// Insert stores a new entry in its own transaction and returns the id the
// store assigned. A failed insert is rolled back. The timestamp comes from the
// connection clock (UTC); the column default applies to rows written elsewhere.
func (r *WorkEntryRepository) Insert(ctx context.Context, in models.WorkEntryInput) (int64, error) {
	entry := in.Entry()
	err := r.withConn(ctx, func(conn *gorm.DB) error {
		entry.Timestamp = conn.NowFunc()
		return conn.Transaction(func(tx *gorm.DB) error {
			return tx.Clauses(clause.Returning{Columns: []clause.Column{{Name: "id"}}}).
				Create(entry).Error
		})
	})
	if err != nil {
		return 0, errors.Wrapf(err, "inserting work entry for project %q", in.ProjectNumber)
	}
	return entry.ID, nil
}

// SummarizeByProject sums hours per project, ordered by project number. An
// empty table yields an empty, non-nil slice.
func (r *WorkEntryRepository) SummarizeByProject(ctx context.Context) ([]models.ProjectSummary, error) {
	summaries := make([]models.ProjectSummary, 0)
	err := r.withConn(ctx, func(conn *gorm.DB) error {
		return conn.Model(&models.WorkEntry{}).
			Select("project_number, SUM(work_time_hours) AS total_hours").
			Group("project_number").
			Order("project_number ASC").
			Scan(&summaries).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "summarizing work entries by project")
	}
	if summaries == nil {
		summaries = make([]models.ProjectSummary, 0)
	}
	return summaries, nil
}

// ListEntries returns every entry in insertion order.
func (r *WorkEntryRepository) ListEntries(ctx context.Context) ([]models.WorkEntry, error) {
	var entries []models.WorkEntry
	err := r.withConn(ctx, func(conn *gorm.DB) error {
		return conn.Order("id ASC").Find(&entries).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "listing work entries")
	}
	return entries, nil
}
