// Package schedule implements the calendar engine: schedule generation from
// breed parameters and presets, status classification against an injected
// clock, weight deviation analysis and alert derivation. All computations are
// pure functions over already-loaded data; the Service façade owns the single
// side effect (seeding weighing records) and the per-day schedule cache.
package schedule

import (
	"math"
	"sort"
	"time"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
)

// Generate produces the full event list for a batch: one phase event per
// calendar week with the projected feed for the flock, one vaccine event per
// preset and one weighing event per breed checkpoint.
//
// Booster intervals on vaccine presets do not produce follow-up events.
// Generation is deterministic: the same inputs always yield the same events in
// the same order.
func Generate(batch models.Batch, breed models.BreedParameters, presets []models.VaccinePreset, checkpoints []models.WeighingCheckpoint) ([]models.ScheduleEvent, error) {
	if batch.BirdCount <= 0 {
		return nil, &models.ValidationError{Field: "bird_count", Reason: "must be positive"}
	}
	if err := breed.Validate(); err != nil {
		return nil, err
	}

	events := BuildPhaseEvents(batch, breed)
	events = append(events, BuildVaccineEvents(batch, presets)...)
	events = append(events, BuildWeighingEvents(batch, checkpoints)...)

	sortEvents(events)
	return events, nil
}

// BuildPhaseEvents walks the breed's ordered phase list emitting one event per
// week. Weekly windows are contiguous: each week starts the day after the
// previous one ends.
func BuildPhaseEvents(batch models.Batch, breed models.BreedParameters) []models.ScheduleEvent {
	var events []models.ScheduleEvent

	week := 0
	start := models.DateOnly(batch.EntryDate)
	for _, phase := range breed.Phases {
		weekly := phase.WeeklyConsumptionGrams
		if weekly == 0 && phase.DurationWeeks > 0 {
			weekly = phase.TotalConsumptionGrams() / float64(phase.DurationWeeks)
		}
		feedKg := int(math.Round(weekly * float64(batch.BirdCount) / 1000))

		for weekOfPhase := 1; weekOfPhase <= phase.DurationWeeks; weekOfPhase++ {
			week++
			end := start.AddDate(0, 0, 6)
			events = append(events, models.ScheduleEvent{
				ID:              models.PhaseEventID(batch.ID, week),
				BatchID:         batch.ID,
				Kind:            models.EventPhase,
				ExpectedDate:    start,
				ExpectedEndDate: end,
				Phase: &models.PhasePayload{
					PhaseName:   phase.Name,
					Week:        week,
					WeekOfPhase: weekOfPhase,
					FeedKg:      feedKg,
				},
			})
			start = end.AddDate(0, 0, 1)
		}
	}

	return events
}

// BuildVaccineEvents derives one event per preset at entry date plus the
// preset's application age.
func BuildVaccineEvents(batch models.Batch, presets []models.VaccinePreset) []models.ScheduleEvent {
	var events []models.ScheduleEvent
	entry := models.DateOnly(batch.EntryDate)

	for _, preset := range presets {
		events = append(events, models.ScheduleEvent{
			ID:           models.VaccineEventID(batch.ID, preset.ID),
			BatchID:      batch.ID,
			Kind:         models.EventVaccine,
			ExpectedDate: entry.AddDate(0, 0, preset.AgeInDaysToApply),
			Vaccine: &models.VaccinePayload{
				VaccineID: preset.ID,
				Name:      preset.Name,
				AgeInDays: preset.AgeInDaysToApply,
				Route:     preset.ApplicationRoute,
				DoseML:    preset.DoseML,
			},
		})
	}

	return events
}

// BuildWeighingEvents derives one event per breed weighing checkpoint.
func BuildWeighingEvents(batch models.Batch, checkpoints []models.WeighingCheckpoint) []models.ScheduleEvent {
	var events []models.ScheduleEvent
	entry := models.DateOnly(batch.EntryDate)

	for _, checkpoint := range checkpoints {
		events = append(events, models.ScheduleEvent{
			ID:           models.WeighingEventID(batch.ID, checkpoint.Week),
			BatchID:      batch.ID,
			Kind:         models.EventWeighing,
			ExpectedDate: entry.AddDate(0, 0, checkpoint.AgeInDays),
			Weighing: &models.WeighingPayload{
				Week:             checkpoint.Week,
				AgeInDays:        checkpoint.AgeInDays,
				IdealWeightGrams: checkpoint.IdealWeightGrams,
			},
		})
	}

	return events
}

// PhaseWindows returns the full calendar span of each phase with the total
// projected feed for the batch, for dashboard use.
func PhaseWindows(batch models.Batch, breed models.BreedParameters) []models.PhaseWindow {
	windows := make([]models.PhaseWindow, 0, len(breed.Phases))

	start := models.DateOnly(batch.EntryDate)
	for _, phase := range breed.Phases {
		end := start.AddDate(0, 0, phase.DurationWeeks*7-1)
		windows = append(windows, models.PhaseWindow{
			PhaseName:   phase.Name,
			StartDate:   start,
			EndDate:     end,
			TotalFeedKg: int(math.Round(phase.TotalConsumptionGrams() * float64(batch.BirdCount) / 1000)),
		})
		start = end.AddDate(0, 0, 1)
	}

	return windows
}

// CurrentPhase resolves the phase window covering the reference date, or nil
// when the batch is outside its production cycle.
func CurrentPhase(batch models.Batch, breed models.BreedParameters, now time.Time) *models.PhaseWindow {
	day := models.DateOnly(now)
	for _, window := range PhaseWindows(batch, breed) {
		if !day.Before(window.StartDate) && !day.After(window.EndDate) {
			w := window
			return &w
		}
	}
	return nil
}

var kindRank = map[models.EventKind]int{
	models.EventPhase:    0,
	models.EventVaccine:  1,
	models.EventWeighing: 2,
}

func sortEvents(events []models.ScheduleEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].ExpectedDate.Equal(events[j].ExpectedDate) {
			return events[i].ExpectedDate.Before(events[j].ExpectedDate)
		}
		if kindRank[events[i].Kind] != kindRank[events[j].Kind] {
			return kindRank[events[i].Kind] < kindRank[events[j].Kind]
		}
		return events[i].ID < events[j].ID
	})
}
