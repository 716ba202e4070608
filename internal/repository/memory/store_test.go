package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
)

func TestBatchLifecycle(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()

	batch := models.Batch{ID: "lote-01", Name: "Lote 01", BirdCount: 1000, Active: true}
	require.NoError(t, repos.Batches.Create(ctx, batch))

	_, err := repos.Batches.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, repos.Batches.SetActive(ctx, "lote-01", false))
	stored, err := repos.Batches.GetByID(ctx, "lote-01")
	require.NoError(t, err)
	assert.False(t, stored.Active)

	active, err := repos.Batches.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestWeighingRecordUpsertIsKeyedByBatchAndWeek(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()

	record := models.WeighingRecord{ID: "w1", BatchID: "lote-01", Week: 4, Status: models.StatusPending}
	require.NoError(t, repos.WeighingRecords.Upsert(ctx, record))

	weight := 310
	record.ActualWeightGrams = &weight
	record.Status = models.StatusDone
	require.NoError(t, repos.WeighingRecords.Upsert(ctx, record))

	stored, err := repos.WeighingRecords.GetByBatchWeek(ctx, "lote-01", 4)
	require.NoError(t, err)
	require.NotNil(t, stored.ActualWeightGrams)
	assert.Equal(t, 310, *stored.ActualWeightGrams)

	records, err := repos.WeighingRecords.ListByBatch(ctx, "lote-01")
	require.NoError(t, err)
	assert.Len(t, records, 1, "second upsert replaces the first")
}

func TestAlertReplaceForBatchIsolatesBatches(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()

	require.NoError(t, repos.Alerts.ReplaceForBatch(ctx, "lote-01", []models.Alert{
		{ID: "a1", BatchID: "lote-01", Priority: models.PriorityHigh},
	}))
	require.NoError(t, repos.Alerts.ReplaceForBatch(ctx, "lote-02", []models.Alert{
		{ID: "b1", BatchID: "lote-02", Priority: models.PriorityMedium},
	}))

	require.NoError(t, repos.Alerts.ReplaceForBatch(ctx, "lote-01", nil))

	remaining, err := repos.Alerts.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1, "replacing one batch leaves the other untouched")
	assert.Equal(t, "b1", remaining[0].ID)
}

func TestAcknowledgeUnknownAlert(t *testing.T) {
	repos := NewRepositories()
	err := repos.Alerts.Acknowledge(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestEggRecordsSortedByDate(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()

	day := func(d int) time.Time { return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC) }
	require.NoError(t, repos.EggRecords.Create(ctx, models.EggProductionRecord{ID: "e2", BatchID: "lote-01", Date: day(3), Quantity: 820}))
	require.NoError(t, repos.EggRecords.Create(ctx, models.EggProductionRecord{ID: "e1", BatchID: "lote-01", Date: day(1), Quantity: 800}))

	records, err := repos.EggRecords.ListByBatch(ctx, "lote-01")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "e1", records[0].ID)

	ranged, err := repos.EggRecords.ListByDateRange(ctx, day(2), day(4))
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, "e2", ranged[0].ID)
}
