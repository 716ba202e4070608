package schedule

import (
	"fmt"
	"time"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
)

const dateLayout = "2006-01-02"

// DeriveAlerts scans classified events and weighing results producing the full
// alert set for a batch: one per late vaccine (high), one per late weighing
// (medium) and one per weighing whose deviation left the acceptable band
// (high on attention, critical beyond). The result carries no defined order;
// consumers sort for display.
//
// The function is pure; storing the set (and deciding whether acknowledgement
// flags survive the swap) is the caller's concern.
func DeriveAlerts(batchID string, events []models.ClassifiedEvent, weighings []models.WeighingRecord, now time.Time) []models.Alert {
	var alerts []models.Alert

	for _, event := range events {
		if event.BatchID != batchID || event.Status != models.StatusLate {
			continue
		}
		switch event.Kind {
		case models.EventVaccine:
			alerts = append(alerts, models.Alert{
				ID:       models.AlertID(event.ID, models.AlertVaccineLate),
				BatchID:  batchID,
				EventID:  event.ID,
				Kind:     models.AlertVaccineLate,
				Priority: models.PriorityHigh,
				Title:    fmt.Sprintf("Vacinação atrasada: %s", event.Vaccine.Name),
				Description: fmt.Sprintf("A vacina %s estava prevista para %s e ainda não foi aplicada.",
					event.Vaccine.Name, event.ExpectedDate.Format(dateLayout)),
				CreatedAt: now,
			})
		case models.EventWeighing:
			alerts = append(alerts, models.Alert{
				ID:       models.AlertID(event.ID, models.AlertWeighingLate),
				BatchID:  batchID,
				EventID:  event.ID,
				Kind:     models.AlertWeighingLate,
				Priority: models.PriorityMedium,
				Title:    fmt.Sprintf("Pesagem atrasada: semana %d", event.Weighing.Week),
				Description: fmt.Sprintf("A pesagem da semana %d estava prevista para %s e não foi registrada.",
					event.Weighing.Week, event.ExpectedDate.Format(dateLayout)),
				CreatedAt: now,
			})
		}
	}

	for _, record := range weighings {
		if record.BatchID != batchID || !record.Weighed() {
			continue
		}
		deviation, err := AnalyzeDeviation(*record.ActualWeightGrams, record.IdealWeightGrams)
		if err != nil {
			// Broken ideal weight in the parameter table; surfaced elsewhere.
			continue
		}
		if deviation.Severity == models.SeverityWithinRange {
			continue
		}

		priority := models.PriorityHigh
		if deviation.Severity == models.SeverityCritical {
			priority = models.PriorityCritical
		}

		eventID := models.WeighingEventID(batchID, record.Week)
		alerts = append(alerts, models.Alert{
			ID:       models.AlertID(eventID, models.AlertWeightOutOfRange),
			BatchID:  batchID,
			EventID:  eventID,
			Kind:     models.AlertWeightOutOfRange,
			Priority: priority,
			Title:    fmt.Sprintf("Peso fora da faixa: semana %d", record.Week),
			Description: fmt.Sprintf("Peso registrado %dg desvia %.1f%% do ideal de %dg.",
				*record.ActualWeightGrams, deviation.Percent, record.IdealWeightGrams),
			CreatedAt: now,
		})
	}

	return alerts
}

// MergeAcknowledgements copies acknowledgement flags from a previous alert set
// onto freshly derived alerts matched by id. Used when the preserve-acks
// regeneration policy is enabled.
func MergeAcknowledgements(fresh, previous []models.Alert) []models.Alert {
	acked := make(map[string]bool, len(previous))
	for _, alert := range previous {
		if alert.Acknowledged {
			acked[alert.ID] = true
		}
	}

	out := make([]models.Alert, len(fresh))
	copy(out, fresh)
	for i := range out {
		if acked[out[i].ID] {
			out[i].Acknowledged = true
		}
	}
	return out
}
