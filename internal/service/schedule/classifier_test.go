package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
)

func vaccineEvent(ageInDays int) models.ScheduleEvent {
	batch := testBatch()
	return models.ScheduleEvent{
		ID:           models.VaccineEventID(batch.ID, "newcastle"),
		BatchID:      batch.ID,
		Kind:         models.EventVaccine,
		ExpectedDate: models.DateOnly(batch.EntryDate).AddDate(0, 0, ageInDays),
		Vaccine: &models.VaccinePayload{
			VaccineID: "newcastle",
			Name:      "Newcastle",
			AgeInDays: ageInDays,
			Route:     models.RouteOcular,
			DoseML:    0.03,
		},
	}
}

func TestClassifyVaccineTieBreak(t *testing.T) {
	event := vaccineEvent(7)

	onTheDay := Classify(event, nil, nil, event.ExpectedDate)
	assert.Equal(t, models.StatusPending, onTheDay.Status, "the expected date itself is not late")

	dayAfter := Classify(event, nil, nil, event.ExpectedDate.AddDate(0, 0, 1))
	assert.Equal(t, models.StatusLate, dayAfter.Status)
}

func TestClassifyVaccineLateScenario(t *testing.T) {
	// Preset at age 7, batch entered 2024-01-01: expected 2024-01-08.
	event := vaccineEvent(7)
	classified := Classify(event, nil, nil, date(2024, time.January, 10))
	assert.Equal(t, models.StatusLate, classified.Status)
}

func TestClassifyVaccineAppliedWithinTolerance(t *testing.T) {
	event := vaccineEvent(7)
	records := []models.VaccinationRecord{{
		BatchID:                "lote-01",
		VaccineID:              "newcastle",
		AgeInDaysAtApplication: 9,
	}}

	classified := Classify(event, records, nil, date(2024, time.February, 1))
	assert.Equal(t, models.StatusApplied, classified.Status, "age 9 vs scheduled 7 is inside the ±3 window")
}

func TestClassifyVaccineOutsideTolerance(t *testing.T) {
	event := vaccineEvent(7)
	records := []models.VaccinationRecord{{
		BatchID:                "lote-01",
		VaccineID:              "newcastle",
		AgeInDaysAtApplication: 11,
	}}

	classified := Classify(event, records, nil, date(2024, time.February, 1))
	assert.Equal(t, models.StatusLate, classified.Status, "a record 4 days off the scheduled age does not match")
}

func TestClassifyVaccineIgnoresOtherBatches(t *testing.T) {
	event := vaccineEvent(7)
	records := []models.VaccinationRecord{{
		BatchID:                "outro-lote",
		VaccineID:              "newcastle",
		AgeInDaysAtApplication: 7,
	}}

	classified := Classify(event, records, nil, event.ExpectedDate)
	assert.Equal(t, models.StatusPending, classified.Status)
}

func TestClassifyWeighing(t *testing.T) {
	batch := testBatch()
	event := models.ScheduleEvent{
		ID:           models.WeighingEventID(batch.ID, 4),
		BatchID:      batch.ID,
		Kind:         models.EventWeighing,
		ExpectedDate: date(2024, time.January, 29),
		Weighing:     &models.WeighingPayload{Week: 4, AgeInDays: 28, IdealWeightGrams: 280},
	}

	pending := Classify(event, nil, nil, event.ExpectedDate)
	assert.Equal(t, models.StatusPending, pending.Status)

	late := Classify(event, nil, nil, event.ExpectedDate.AddDate(0, 0, 2))
	assert.Equal(t, models.StatusLate, late.Status)

	actual := 290
	records := []models.WeighingRecord{{BatchID: batch.ID, Week: 4, ActualWeightGrams: &actual}}
	done := Classify(event, nil, records, event.ExpectedDate.AddDate(0, 0, 2))
	assert.Equal(t, models.StatusDone, done.Status)
}

func TestClassifyWeighingUnweighedRecordIsNotDone(t *testing.T) {
	batch := testBatch()
	event := models.ScheduleEvent{
		ID:           models.WeighingEventID(batch.ID, 1),
		BatchID:      batch.ID,
		Kind:         models.EventWeighing,
		ExpectedDate: date(2024, time.January, 8),
		Weighing:     &models.WeighingPayload{Week: 1, AgeInDays: 7, IdealWeightGrams: 70},
	}
	records := []models.WeighingRecord{{BatchID: batch.ID, Week: 1}}

	classified := Classify(event, nil, records, date(2024, time.January, 10))
	assert.Equal(t, models.StatusLate, classified.Status, "a seeded record without an actual weight stays late")
}

func TestClassifyPhaseNeverLate(t *testing.T) {
	event := models.ScheduleEvent{
		ID:              models.PhaseEventID("lote-01", 1),
		BatchID:         "lote-01",
		Kind:            models.EventPhase,
		ExpectedDate:    date(2024, time.January, 1),
		ExpectedEndDate: date(2024, time.January, 7),
		Phase:           &models.PhasePayload{PhaseName: "recria", Week: 1, WeekOfPhase: 1, FeedKg: 7},
	}

	during := Classify(event, nil, nil, date(2024, time.January, 5))
	assert.Equal(t, models.StatusPending, during.Status)

	lastDay := Classify(event, nil, nil, date(2024, time.January, 7))
	assert.Equal(t, models.StatusPending, lastDay.Status)

	after := Classify(event, nil, nil, date(2024, time.January, 8))
	assert.Equal(t, models.StatusFinished, after.Status)
}

func TestClassifyAllCountsStatuses(t *testing.T) {
	batch, breed := testBatch(), testBreed()
	events, err := Generate(batch, breed, testVaccinePresets(), testCheckpoints())
	require.NoError(t, err)

	// 2024-01-20: marek (day 1), newcastle (day 7) and gumboro (day 14) are
	// all past due; weighing weeks 1 is late too, week 4 and 8 still pending.
	now := date(2024, time.January, 20)
	classified := ClassifyAll(events, nil, nil, now)

	counts := map[models.EventStatus]int{}
	for _, event := range classified {
		if event.Kind != models.EventPhase {
			counts[event.Status]++
		}
	}
	assert.Equal(t, 4, counts[models.StatusLate], "three vaccines and one weighing past due")
	assert.Equal(t, 2, counts[models.StatusPending])
}
