package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worklog-service/internal/models"
	"worklog-service/internal/testutil"
)

func newTestRepo(t *testing.T) *WorkEntryRepository {
	t.Helper()
	repo := NewWorkEntryRepository(testutil.NewTestDB(t))
	require.NoError(t, repo.EnsureSchema(context.Background()))
	return repo
}

func input(project, worker string, hours float64) models.WorkEntryInput {
	return models.WorkEntryInput{ProjectNumber: project, WorkerName: worker, WorkTimeHours: hours}
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewWorkEntryRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.EnsureSchema(ctx))

	var tables int64
	require.NoError(t, db.Raw("SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'work_entries'").Scan(&tables).Error)
	assert.Equal(t, int64(1), tables)
}

func TestEnsureSchema_KeepsExistingRows(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, input("P1", "Alice", 2))
	require.NoError(t, err)
	require.NoError(t, repo.EnsureSchema(ctx))

	entries, err := repo.ListEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestEnsureSchema_TimestampDefaultsToNow(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewWorkEntryRepository(db)
	require.NoError(t, repo.EnsureSchema(context.Background()))

	var ddl string
	require.NoError(t, db.Raw("SELECT sql FROM sqlite_master WHERE type = 'table' AND name = 'work_entries'").Row().Scan(&ddl))
	assert.Contains(t, ddl, "DEFAULT CURRENT_TIMESTAMP")

	require.NoError(t, db.Exec(
		"INSERT INTO work_entries (project_number, worker_name, work_time_hours) VALUES (?, ?, ?)",
		"P9", "Dana", 1.25,
	).Error)

	var stamp string
	require.NoError(t, db.Raw("SELECT timestamp FROM work_entries WHERE project_number = ?", "P9").Row().Scan(&stamp))
	assert.NotEmpty(t, stamp)
}

func TestInsert_AssignsIDAndTimestamp(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	before := time.Now().UTC().Add(-time.Second)

	id1, err := repo.Insert(ctx, models.WorkEntryInput{
		ProjectNumber: "P1",
		WorkerName:    "Alice",
		WorkDetails:   testutil.StrPtr("Framing"),
		WorkTimeHours: 3.5,
	})
	require.NoError(t, err)
	id2, err := repo.Insert(ctx, input("P2", "Bob", 1))
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	entries, err := repo.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, id1, first.ID)
	assert.Equal(t, "P1", first.ProjectNumber)
	assert.Equal(t, "Alice", first.WorkerName)
	require.NotNil(t, first.WorkDetails)
	assert.Equal(t, "Framing", *first.WorkDetails)
	assert.Equal(t, 3.5, first.WorkTimeHours)
	assert.False(t, first.Timestamp.Before(before))

	assert.Nil(t, entries[1].WorkDetails)
}

func TestInsert_FailsWithoutSchema(t *testing.T) {
	repo := NewWorkEntryRepository(testutil.NewTestDB(t))

	_, err := repo.Insert(context.Background(), input("P1", "Alice", 1))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "inserting work entry")
}

func TestSummarizeByProject_Empty(t *testing.T) {
	repo := newTestRepo(t)

	summaries, err := repo.SummarizeByProject(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}

func TestSummarizeByProject_GroupsAndOrders(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, in := range []models.WorkEntryInput{
		input("P2", "Carol", 4.0),
		input("P1", "Alice", 2.0),
		input("P1", "Bob", 1.5),
	} {
		_, err := repo.Insert(ctx, in)
		require.NoError(t, err)
	}

	summaries, err := repo.SummarizeByProject(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.ProjectSummary{
		{ProjectNumber: "P1", TotalHours: 3.5},
		{ProjectNumber: "P2", TotalHours: 4.0},
	}, summaries)
}

func TestSummarizeByProject_FailsWithoutSchema(t *testing.T) {
	repo := NewWorkEntryRepository(testutil.NewTestDB(t))

	summaries, err := repo.SummarizeByProject(context.Background())
	assert.Error(t, err)
	assert.Nil(t, summaries)
}

func TestInsert_ConcurrentWritersSerialize(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Insert(ctx, input("P1", "Alice", 0.5))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	summaries, err := repo.SummarizeByProject(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.InDelta(t, 4.0, summaries[0].TotalHours, 1e-9)
}
