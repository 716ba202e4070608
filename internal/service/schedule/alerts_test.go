package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
)

func TestDeriveAlertsCompleteness(t *testing.T) {
	batch, breed := testBatch(), testBreed()
	events, err := Generate(batch, breed, testVaccinePresets(), testCheckpoints())
	require.NoError(t, err)

	now := date(2024, time.January, 20)
	classified := ClassifyAll(events, nil, nil, now)
	alerts := DeriveAlerts(batch.ID, classified, nil, now)

	// Three late vaccines + one late weighing, no out-of-range weights.
	require.Len(t, alerts, 4)
	counts := map[models.AlertKind]int{}
	for _, alert := range alerts {
		counts[alert.Kind]++
		assert.Equal(t, batch.ID, alert.BatchID)
		assert.Equal(t, now, alert.CreatedAt)
		assert.False(t, alert.Acknowledged)
	}
	assert.Equal(t, 3, counts[models.AlertVaccineLate])
	assert.Equal(t, 1, counts[models.AlertWeighingLate])
}

func TestDeriveAlertsPriorities(t *testing.T) {
	batch := testBatch()
	now := date(2024, time.January, 20)

	lateVaccine := Classify(vaccineEvent(7), nil, nil, now)
	require.Equal(t, models.StatusLate, lateVaccine.Status)

	actual := 350
	weighings := []models.WeighingRecord{{
		BatchID:           batch.ID,
		Week:              8,
		IdealWeightGrams:  500,
		ActualWeightGrams: &actual,
	}}

	alerts := DeriveAlerts(batch.ID, []models.ClassifiedEvent{lateVaccine}, weighings, now)
	require.Len(t, alerts, 2)

	byKind := map[models.AlertKind]models.Alert{}
	for _, alert := range alerts {
		byKind[alert.Kind] = alert
	}
	assert.Equal(t, models.PriorityHigh, byKind[models.AlertVaccineLate].Priority)
	assert.Equal(t, models.PriorityCritical, byKind[models.AlertWeightOutOfRange].Priority,
		"a deviation of -30 percent is critical")
}

func TestDeriveAlertsAttentionBandIsHighPriority(t *testing.T) {
	batch := testBatch()
	now := date(2024, time.March, 1)

	actual := 560
	weighings := []models.WeighingRecord{{
		BatchID:           batch.ID,
		Week:              8,
		IdealWeightGrams:  500,
		ActualWeightGrams: &actual,
	}}

	alerts := DeriveAlerts(batch.ID, nil, weighings, now)
	require.Len(t, alerts, 1)
	assert.Equal(t, models.AlertWeightOutOfRange, alerts[0].Kind)
	assert.Equal(t, models.PriorityHigh, alerts[0].Priority)
}

func TestDeriveAlertsSkipsHealthyWeighings(t *testing.T) {
	batch := testBatch()
	actual := 505
	weighings := []models.WeighingRecord{{
		BatchID:           batch.ID,
		Week:              8,
		IdealWeightGrams:  500,
		ActualWeightGrams: &actual,
	}}

	alerts := DeriveAlerts(batch.ID, nil, weighings, date(2024, time.March, 1))
	assert.Empty(t, alerts)
}

func TestDeriveAlertsIgnoresOtherBatches(t *testing.T) {
	now := date(2024, time.January, 20)
	lateVaccine := Classify(vaccineEvent(7), nil, nil, now)

	alerts := DeriveAlerts("outro-lote", []models.ClassifiedEvent{lateVaccine}, nil, now)
	assert.Empty(t, alerts)
}

func TestMergeAcknowledgements(t *testing.T) {
	fresh := []models.Alert{
		{ID: "a", Acknowledged: false},
		{ID: "b", Acknowledged: false},
	}
	previous := []models.Alert{
		{ID: "a", Acknowledged: true},
		{ID: "c", Acknowledged: true},
	}

	merged := MergeAcknowledgements(fresh, previous)
	require.Len(t, merged, 2)
	assert.True(t, merged[0].Acknowledged, "ack on a surviving alert is preserved")
	assert.False(t, merged[1].Acknowledged)
	assert.False(t, fresh[0].Acknowledged, "input slice must not be mutated")
}
