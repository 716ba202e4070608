package schedule

import (
	"time"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
)

// VaccineAgeToleranceDays is the matching window between a vaccination record
// and its schedule event: a vaccine applied within this many days of the
// scheduled age still counts as applied.
const VaccineAgeToleranceDays = 3

// Classify derives the status of a single event from the expected date, the
// reference clock and the batch's records. An event expected exactly today is
// still pending; late requires strictly after.
func Classify(event models.ScheduleEvent, vaccinations []models.VaccinationRecord, weighings []models.WeighingRecord, now time.Time) models.ClassifiedEvent {
	today := models.DateOnly(now)

	status := models.StatusPending
	switch event.Kind {
	case models.EventVaccine:
		if vaccineApplied(event, vaccinations) {
			status = models.StatusApplied
		} else if today.After(models.DateOnly(event.ExpectedDate)) {
			status = models.StatusLate
		}
	case models.EventWeighing:
		if weighingDone(event, weighings) {
			status = models.StatusDone
		} else if today.After(models.DateOnly(event.ExpectedDate)) {
			status = models.StatusLate
		}
	case models.EventPhase:
		// Phase windows are informational; they can finish but never run late.
		if !event.ExpectedEndDate.IsZero() && today.After(models.DateOnly(event.ExpectedEndDate)) {
			status = models.StatusFinished
		}
	}

	return models.ClassifiedEvent{ScheduleEvent: event, Status: status}
}

// ClassifyAll classifies every event against the same records and clock.
func ClassifyAll(events []models.ScheduleEvent, vaccinations []models.VaccinationRecord, weighings []models.WeighingRecord, now time.Time) []models.ClassifiedEvent {
	out := make([]models.ClassifiedEvent, 0, len(events))
	for _, event := range events {
		out = append(out, Classify(event, vaccinations, weighings, now))
	}
	return out
}

func vaccineApplied(event models.ScheduleEvent, records []models.VaccinationRecord) bool {
	if event.Vaccine == nil {
		return false
	}
	for _, record := range records {
		if record.BatchID != event.BatchID || record.VaccineID != event.Vaccine.VaccineID {
			continue
		}
		diff := record.AgeInDaysAtApplication - event.Vaccine.AgeInDays
		if diff < 0 {
			diff = -diff
		}
		if diff <= VaccineAgeToleranceDays {
			return true
		}
	}
	return false
}

func weighingDone(event models.ScheduleEvent, records []models.WeighingRecord) bool {
	if event.Weighing == nil {
		return false
	}
	for _, record := range records {
		if record.BatchID == event.BatchID && record.Week == event.Weighing.Week && record.Weighed() {
			return true
		}
	}
	return false
}
