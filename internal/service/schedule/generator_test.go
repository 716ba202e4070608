package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func testBreed() models.BreedParameters {
	return models.BreedParameters{
		ID:   "isa-brown",
		Name: "Isa Brown",
		Phases: []models.Phase{
			{Name: "recria", DurationWeeks: 18, WeeklyConsumptionGrams: 7},
			{Name: "crescimento", DurationWeeks: 4, WeeklyConsumptionGrams: 140},
			{Name: "producao", DurationWeeks: 54, WeeklyConsumptionGrams: 126},
		},
	}
}

func testBatch() models.Batch {
	return models.Batch{
		ID:        "lote-01",
		Name:      "Lote 01",
		BirdCount: 1000,
		BirthDate: date(2023, time.December, 31),
		EntryDate: date(2024, time.January, 1),
		BreedID:   "isa-brown",
		Active:    true,
	}
}

func testVaccinePresets() []models.VaccinePreset {
	return []models.VaccinePreset{
		{ID: "marek", Name: "Marek", Type: models.VaccineLive, ApplicationRoute: models.RouteSubcutaneous, AgeInDaysToApply: 1, DoseML: 0.2},
		{ID: "newcastle", Name: "Newcastle", Type: models.VaccineLive, ApplicationRoute: models.RouteOcular, AgeInDaysToApply: 7, DoseML: 0.03},
		{ID: "gumboro", Name: "Gumboro", Type: models.VaccineLive, ApplicationRoute: models.RouteOral, AgeInDaysToApply: 14, DoseML: 0.03, BoosterIntervalDays: 14},
	}
}

func testCheckpoints() []models.WeighingCheckpoint {
	return []models.WeighingCheckpoint{
		{BreedID: "isa-brown", Week: 1, AgeInDays: 7, IdealWeightGrams: 70},
		{BreedID: "isa-brown", Week: 4, AgeInDays: 28, IdealWeightGrams: 280},
		{BreedID: "isa-brown", Week: 8, AgeInDays: 56, IdealWeightGrams: 500},
	}
}

func TestGenerateFirstPhaseWeek(t *testing.T) {
	events, err := Generate(testBatch(), testBreed(), nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, events)

	first := events[0]
	require.Equal(t, models.EventPhase, first.Kind)
	assert.Equal(t, date(2024, time.January, 1), first.ExpectedDate)
	assert.Equal(t, date(2024, time.January, 7), first.ExpectedEndDate)
	require.NotNil(t, first.Phase)
	assert.Equal(t, "recria", first.Phase.PhaseName)
	assert.Equal(t, 1, first.Phase.Week)
	assert.Equal(t, 7, first.Phase.FeedKg)
}

func TestGeneratePhaseWeeksAreContiguous(t *testing.T) {
	batch := testBatch()
	breed := testBreed()
	events, err := Generate(batch, breed, nil, nil)
	require.NoError(t, err)
	require.Len(t, events, breed.TotalWeeks())

	for i := 1; i < len(events); i++ {
		prev, cur := events[i-1], events[i]
		assert.True(t, cur.ExpectedDate.After(prev.ExpectedDate))
		assert.Equal(t, prev.ExpectedEndDate.AddDate(0, 0, 1), cur.ExpectedDate,
			"week %d must start the day after week %d ends", i+1, i)
	}
}

func TestGeneratePhaseTransitionCarriesConsumption(t *testing.T) {
	events, err := Generate(testBatch(), testBreed(), nil, nil)
	require.NoError(t, err)

	// Week 19 is the first crescimento week: 140 g * 1000 birds = 140 kg.
	week19 := events[18]
	require.NotNil(t, week19.Phase)
	assert.Equal(t, "crescimento", week19.Phase.PhaseName)
	assert.Equal(t, 1, week19.Phase.WeekOfPhase)
	assert.Equal(t, 140, week19.Phase.FeedKg)
	assert.Equal(t, date(2024, time.January, 1).AddDate(0, 0, 18*7), week19.ExpectedDate)
}

func TestGenerateVaccineEvents(t *testing.T) {
	events, err := Generate(testBatch(), testBreed(), testVaccinePresets(), nil)
	require.NoError(t, err)

	var vaccines []models.ScheduleEvent
	for _, event := range events {
		if event.Kind == models.EventVaccine {
			vaccines = append(vaccines, event)
		}
	}
	require.Len(t, vaccines, 3, "one event per preset, boosters are not scheduled")

	byID := map[string]models.ScheduleEvent{}
	for _, event := range vaccines {
		byID[event.Vaccine.VaccineID] = event
	}
	assert.Equal(t, date(2024, time.January, 8), byID["newcastle"].ExpectedDate)
	assert.Equal(t, "lote-01:vacina:newcastle", byID["newcastle"].ID)
	assert.Equal(t, date(2024, time.January, 15), byID["gumboro"].ExpectedDate)
}

func TestGenerateWeighingEvents(t *testing.T) {
	events, err := Generate(testBatch(), testBreed(), nil, testCheckpoints())
	require.NoError(t, err)

	var weighings []models.ScheduleEvent
	for _, event := range events {
		if event.Kind == models.EventWeighing {
			weighings = append(weighings, event)
		}
	}
	require.Len(t, weighings, 3)
	assert.Equal(t, "lote-01:pesagem:1", weighings[0].ID)
	assert.Equal(t, date(2024, time.January, 8), weighings[0].ExpectedDate)
	assert.Equal(t, 70, weighings[0].Weighing.IdealWeightGrams)
}

func TestGenerateIsDeterministic(t *testing.T) {
	batch, breed := testBatch(), testBreed()
	presets, checkpoints := testVaccinePresets(), testCheckpoints()

	first, err := Generate(batch, breed, presets, checkpoints)
	require.NoError(t, err)
	second, err := Generate(batch, breed, presets, checkpoints)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateRejectsNonPositiveBirdCount(t *testing.T) {
	batch := testBatch()
	batch.BirdCount = 0

	_, err := Generate(batch, testBreed(), nil, nil)
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "bird_count", validationErr.Field)
}

func TestGenerateRejectsEmptyPhaseTable(t *testing.T) {
	breed := testBreed()
	breed.Phases = nil

	_, err := Generate(testBatch(), breed, nil, nil)
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestGenerateWithoutWeighingPresetsDegrades(t *testing.T) {
	events, err := Generate(testBatch(), testBreed(), testVaccinePresets(), nil)
	require.NoError(t, err)

	for _, event := range events {
		assert.NotEqual(t, models.EventWeighing, event.Kind)
	}
}

func TestPhaseWindows(t *testing.T) {
	windows := PhaseWindows(testBatch(), testBreed())
	require.Len(t, windows, 3)

	assert.Equal(t, date(2024, time.January, 1), windows[0].StartDate)
	assert.Equal(t, date(2024, time.January, 1).AddDate(0, 0, 18*7-1), windows[0].EndDate)
	assert.Equal(t, 126, windows[0].TotalFeedKg, "7 g/week * 18 weeks * 1000 birds")

	for i := 1; i < len(windows); i++ {
		assert.Equal(t, windows[i-1].EndDate.AddDate(0, 0, 1), windows[i].StartDate)
	}
}

func TestCurrentPhase(t *testing.T) {
	batch, breed := testBatch(), testBreed()

	current := CurrentPhase(batch, breed, date(2024, time.February, 1))
	require.NotNil(t, current)
	assert.Equal(t, "recria", current.PhaseName)

	current = CurrentPhase(batch, breed, date(2024, time.May, 20))
	require.NotNil(t, current)
	assert.Equal(t, "crescimento", current.PhaseName)

	assert.Nil(t, CurrentPhase(batch, breed, date(2023, time.June, 1)))
}

func TestAccumulatedConsumptionFallback(t *testing.T) {
	breed := models.BreedParameters{
		ID:   "caipira",
		Name: "Caipira",
		Phases: []models.Phase{
			{Name: "recria", DurationWeeks: 4, AccumulatedConsumptionGrams: 2800},
		},
	}

	events, err := Generate(testBatch(), breed, nil, nil)
	require.NoError(t, err)
	require.Len(t, events, 4)
	// 2800 g over 4 weeks = 700 g/week; 700 g * 1000 birds = 700 kg.
	assert.Equal(t, 700, events[0].Phase.FeedKg)
}
