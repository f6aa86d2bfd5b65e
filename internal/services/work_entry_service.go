package services

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"worklog-service/internal/logging"
	"worklog-service/internal/metrics"
	"worklog-service/internal/models"
)

// WorkEntryStore is the persistence contract the services depend on.
type WorkEntryStore interface {
	Insert(ctx context.Context, in models.WorkEntryInput) (int64, error)
	SummarizeByProject(ctx context.Context) ([]models.ProjectSummary, error)
	ListEntries(ctx context.Context) ([]models.WorkEntry, error)
}

// WorkEntryService validates submissions and forwards them to the store.
type WorkEntryService struct {
	repo    WorkEntryStore
	metrics *metrics.Metrics
}

func NewWorkEntryService(repo WorkEntryStore, m *metrics.Metrics) *WorkEntryService {
	return &WorkEntryService{
		repo:    repo,
		metrics: m,
	}
}

// LogWork validates a raw JSON submission and stores it. Rejections come back
// as *ValidationError; anything else is a store failure.
func (s *WorkEntryService) LogWork(ctx context.Context, body []byte) (int64, error) {
	in, err := ParseWorkEntry(body)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			s.metrics.RecordValidationFailure(verr.Reason)
		}
		return 0, err
	}

	started := time.Now()
	id, err := s.repo.Insert(ctx, in)
	s.metrics.ObserveStore(metrics.OpInsert, started, err)
	if err != nil {
		return 0, err
	}
	s.metrics.RecordEntryLogged(in.WorkTimeHours)
	logging.Debug("work entry added",
		"id", id,
		"project_number", in.ProjectNumber,
		"worker_name", in.WorkerName,
		"work_time_hours", in.WorkTimeHours)
	return id, nil
}

// Summary returns total hours per project, ordered by project number.
func (s *WorkEntryService) Summary(ctx context.Context) ([]models.ProjectSummary, error) {
	started := time.Now()
	summaries, err := s.repo.SummarizeByProject(ctx)
	s.metrics.ObserveStore(metrics.OpSummarize, started, err)
	if err != nil {
		return nil, err
	}
	logging.Debug("work summary retrieved", "projects", len(summaries))
	return summaries, nil
}
