package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/repository"
	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/repository/memory"
)

func setupService(t *testing.T, preserveAcks bool) (*Service, *repository.Repositories) {
	t.Helper()
	ctx := context.Background()
	repos := memory.NewRepositories()

	require.NoError(t, repos.Breeds.Upsert(ctx, testBreed()))
	require.NoError(t, repos.Batches.Create(ctx, testBatch()))
	for _, preset := range testVaccinePresets() {
		require.NoError(t, repos.VaccinePresets.Upsert(ctx, preset))
	}
	require.NoError(t, repos.WeighingPresets.ReplaceForBreed(ctx, "isa-brown", testCheckpoints()))

	return NewService(repos, preserveAcks, zap.NewNop()), repos
}

func TestGenerateScheduleSeedsWeighingRecordsOnce(t *testing.T) {
	ctx := context.Background()
	svc, repos := setupService(t, false)
	now := date(2024, time.January, 2)

	first, err := svc.GenerateSchedule(ctx, "lote-01", now)
	require.NoError(t, err)
	second, err := svc.GenerateSchedule(ctx, "lote-01", now)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	records, err := repos.WeighingRecords.ListByBatch(ctx, "lote-01")
	require.NoError(t, err)
	require.Len(t, records, 3, "one seeded record per checkpoint, no duplicates")
	for _, record := range records {
		assert.Equal(t, models.StatusPending, record.Status)
		assert.Nil(t, record.ActualWeightGrams)
	}
}

func TestGenerateScheduleUnknownBatch(t *testing.T) {
	svc, _ := setupService(t, false)

	_, err := svc.GenerateSchedule(context.Background(), "missing", date(2024, time.January, 2))
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestGenerateScheduleUnknownBreed(t *testing.T) {
	ctx := context.Background()
	svc, repos := setupService(t, false)

	orphan := testBatch()
	orphan.ID = "lote-02"
	orphan.BreedID = "desconhecida"
	require.NoError(t, repos.Batches.Create(ctx, orphan))

	events, err := svc.GenerateSchedule(ctx, "lote-02", date(2024, time.January, 2))
	var configErr *models.ConfigurationError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "breed", configErr.Entity)
	assert.Empty(t, events)
}

func TestCalendarClassifiesAgainstRecords(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t, false)
	now := date(2024, time.January, 10)

	_, err := svc.ApplyVaccine(ctx, ApplyVaccineInput{
		BatchID:         "lote-01",
		VaccineID:       "newcastle",
		ApplicationDate: date(2024, time.January, 10), // age 9, scheduled age 7
		BirdsVaccinated: 990,
		Responsible:     "Maria",
	}, now)
	require.NoError(t, err)

	classified, err := svc.Calendar(ctx, "lote-01", now)
	require.NoError(t, err)

	statuses := map[string]models.EventStatus{}
	for _, event := range classified {
		statuses[event.ID] = event.Status
	}
	assert.Equal(t, models.StatusApplied, statuses["lote-01:vacina:newcastle"])
	assert.Equal(t, models.StatusLate, statuses["lote-01:vacina:marek"])
	assert.Equal(t, models.StatusPending, statuses["lote-01:vacina:gumboro"])
	assert.Equal(t, models.StatusLate, statuses["lote-01:pesagem:1"])
}

func TestApplyVaccineUnknownPreset(t *testing.T) {
	svc, _ := setupService(t, false)

	_, err := svc.ApplyVaccine(context.Background(), ApplyVaccineInput{
		BatchID:         "lote-01",
		VaccineID:       "inexistente",
		ApplicationDate: date(2024, time.January, 10),
		BirdsVaccinated: 100,
	}, date(2024, time.January, 10))

	var configErr *models.ConfigurationError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "vaccine", configErr.Entity)
}

func TestRecordWeightComputesDeviation(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t, false)
	now := date(2024, time.February, 27)

	_, err := svc.GenerateSchedule(ctx, "lote-01", now)
	require.NoError(t, err)

	record, deviation, err := svc.RecordWeight(ctx, "lote-01", 8, 560, "João", now)
	require.NoError(t, err)
	require.NotNil(t, record.ActualWeightGrams)
	assert.Equal(t, 560, *record.ActualWeightGrams)
	assert.Equal(t, models.StatusDone, record.Status)
	assert.InDelta(t, 12.0, deviation.Percent, 0.001)
	assert.Equal(t, models.SeverityAttention, deviation.Severity)
}

func TestRecordWeightMissingRecord(t *testing.T) {
	svc, _ := setupService(t, false)

	_, _, err := svc.RecordWeight(context.Background(), "lote-01", 99, 500, "", date(2024, time.March, 1))
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRefreshAlertsReplacesSet(t *testing.T) {
	ctx := context.Background()
	svc, repos := setupService(t, false)
	now := date(2024, time.January, 20)

	alerts, err := svc.RefreshAlerts(ctx, "lote-01", now)
	require.NoError(t, err)
	require.NotEmpty(t, alerts)

	require.NoError(t, repos.Alerts.Acknowledge(ctx, alerts[0].ID))

	refreshed, err := svc.RefreshAlerts(ctx, "lote-01", now)
	require.NoError(t, err)
	for _, alert := range refreshed {
		assert.False(t, alert.Acknowledged, "replace policy drops acknowledgements")
	}
}

func TestRefreshAlertsPreservesAcksWhenConfigured(t *testing.T) {
	ctx := context.Background()
	svc, repos := setupService(t, true)
	now := date(2024, time.January, 20)

	alerts, err := svc.RefreshAlerts(ctx, "lote-01", now)
	require.NoError(t, err)
	require.NotEmpty(t, alerts)
	ackedID := alerts[0].ID

	require.NoError(t, repos.Alerts.Acknowledge(ctx, ackedID))

	refreshed, err := svc.RefreshAlerts(ctx, "lote-01", now)
	require.NoError(t, err)
	found := false
	for _, alert := range refreshed {
		if alert.ID == ackedID {
			found = true
			assert.True(t, alert.Acknowledged)
		}
	}
	assert.True(t, found)
}

func TestRefreshAlertsCountMatchesLateEvents(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t, false)

	// Day after the first weighing, before every other checkpoint: marek and
	// newcastle vaccines late (ages 1 and 7), weighing week 1 late.
	now := date(2024, time.January, 9)
	alerts, err := svc.RefreshAlerts(ctx, "lote-01", now)
	require.NoError(t, err)
	assert.Len(t, alerts, 3)
}
