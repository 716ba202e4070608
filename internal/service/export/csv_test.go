package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCalendarCSV(t *testing.T) {
	batch := models.Batch{ID: "lote-01", Name: "Lote 01"}
	events := []models.ClassifiedEvent{
		{
			ScheduleEvent: models.ScheduleEvent{
				ID:           models.PhaseEventID("lote-01", 1),
				BatchID:      "lote-01",
				Kind:         models.EventPhase,
				ExpectedDate: date(2024, time.January, 1),
				Phase:        &models.PhasePayload{PhaseName: "recria", Week: 1, WeekOfPhase: 1, FeedKg: 7},
			},
			Status: models.StatusFinished,
		},
		{
			ScheduleEvent: models.ScheduleEvent{
				ID:           models.VaccineEventID("lote-01", "marek"),
				BatchID:      "lote-01",
				Kind:         models.EventVaccine,
				ExpectedDate: date(2024, time.January, 2),
				Vaccine:      &models.VaccinePayload{VaccineID: "marek", Name: "Marek", AgeInDays: 1, Route: models.RouteSubcutaneous, DoseML: 0.2},
			},
			Status: models.StatusLate,
		},
		{
			ScheduleEvent: models.ScheduleEvent{
				ID:           models.WeighingEventID("lote-01", 1),
				BatchID:      "lote-01",
				Kind:         models.EventWeighing,
				ExpectedDate: date(2024, time.January, 8),
				Weighing:     &models.WeighingPayload{Week: 1, AgeInDays: 7, IdealWeightGrams: 70},
			},
			Status: models.StatusPending,
		},
	}

	out, err := CalendarCSV(batch, events)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Data,Tipo,Título,Descrição,Status,Lote", lines[0])
	assert.Equal(t, "2024-01-01,fase,Semana 1 - recria,Consumo previsto de 7 kg de ração.,concluida,Lote 01", lines[1])
	assert.Equal(t, "2024-01-02,vacina,Vacina Marek,\"Aplicação via subcutaneous, dose 0.20 ml, idade 1 dias.\",atrasada,Lote 01", lines[2])
	assert.Equal(t, "2024-01-08,pesagem,Pesagem semana 1,Peso ideal 70 g.,pendente,Lote 01", lines[3])
}

func TestCalendarCSVEmptySchedule(t *testing.T) {
	out, err := CalendarCSV(models.Batch{ID: "lote-01", Name: "Lote 01"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Data,Tipo,Título,Descrição,Status,Lote\n", out)
}
