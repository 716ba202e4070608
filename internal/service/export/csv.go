// Package export turns engine output into external formats: the calendar CSV
// download and the Google Sheets daily report.
package export

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
)

const csvDateLayout = "2006-01-02"

// calendarHeader is the fixed export contract consumed by the spreadsheet
// templates the farm already uses.
var calendarHeader = []string{"Data", "Tipo", "Título", "Descrição", "Status", "Lote"}

// CalendarCSV renders a batch's classified events as CSV, one row per event.
func CalendarCSV(batch models.Batch, events []models.ClassifiedEvent) (string, error) {
	var buf strings.Builder
	writer := csv.NewWriter(&buf)

	if err := writer.Write(calendarHeader); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}

	for _, event := range events {
		title, description := describeEvent(event)
		row := []string{
			event.ExpectedDate.Format(csvDateLayout),
			string(event.Kind),
			title,
			description,
			string(event.Status),
			batch.Name,
		}
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return buf.String(), nil
}

func describeEvent(event models.ClassifiedEvent) (title, description string) {
	switch event.Kind {
	case models.EventPhase:
		if event.Phase != nil {
			title = fmt.Sprintf("Semana %d - %s", event.Phase.Week, event.Phase.PhaseName)
			description = fmt.Sprintf("Consumo previsto de %d kg de ração.", event.Phase.FeedKg)
		}
	case models.EventVaccine:
		if event.Vaccine != nil {
			title = fmt.Sprintf("Vacina %s", event.Vaccine.Name)
			description = fmt.Sprintf("Aplicação via %s, dose %.2f ml, idade %d dias.",
				event.Vaccine.Route, event.Vaccine.DoseML, event.Vaccine.AgeInDays)
		}
	case models.EventWeighing:
		if event.Weighing != nil {
			title = fmt.Sprintf("Pesagem semana %d", event.Weighing.Week)
			description = fmt.Sprintf("Peso ideal %d g.", event.Weighing.IdealWeightGrams)
		}
	}
	return title, description
}
