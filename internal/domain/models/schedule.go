package models

import (
	"fmt"
	"time"
)

// EventKind tags the variant carried by a ScheduleEvent.
type EventKind string

const (
	EventPhase    EventKind = "fase"
	EventVaccine  EventKind = "vacina"
	EventWeighing EventKind = "pesagem"
)

// EventStatus is the derived state of a schedule event. It is never persisted
// on its own; it is always recomputed from the expected date, the reference
// clock and the matching record.
type EventStatus string

const (
	StatusPending EventStatus = "pendente"
	StatusLate    EventStatus = "atrasada"
	// StatusApplied marks a vaccine event covered by a vaccination record.
	StatusApplied EventStatus = "aplicada"
	// StatusDone marks a weighing event whose record carries an actual weight.
	StatusDone EventStatus = "realizada"
	// StatusFinished marks a phase window that lies entirely in the past.
	StatusFinished EventStatus = "concluida"
)

// PhasePayload describes one calendar week of a production phase, with the
// projected feed consumption for the whole batch that week.
type PhasePayload struct {
	PhaseName   string `json:"phase_name"`
	Week        int    `json:"week"`
	WeekOfPhase int    `json:"week_of_phase"`
	FeedKg      int    `json:"feed_kg"`
}

// VaccinePayload describes a scheduled vaccine application.
type VaccinePayload struct {
	VaccineID string           `json:"vaccine_id"`
	Name      string           `json:"name"`
	AgeInDays int              `json:"age_in_days"`
	Route     ApplicationRoute `json:"route"`
	DoseML    float64          `json:"dose_ml"`
}

// WeighingPayload describes a scheduled weighing checkpoint.
type WeighingPayload struct {
	Week             int `json:"week"`
	AgeInDays        int `json:"age_in_days"`
	IdealWeightGrams int `json:"ideal_weight_grams"`
}

// ScheduleEvent is one generated calendar entry for a batch. Events are
// transient: they are recomputed on demand and never stored. Exactly one of
// the payload pointers matching Kind is non-nil.
type ScheduleEvent struct {
	ID              string           `json:"id"`
	BatchID         string           `json:"batch_id"`
	Kind            EventKind        `json:"kind"`
	ExpectedDate    time.Time        `json:"expected_date"`
	ExpectedEndDate time.Time        `json:"expected_end_date,omitempty"`
	Phase           *PhasePayload    `json:"phase,omitempty"`
	Vaccine         *VaccinePayload  `json:"vaccine,omitempty"`
	Weighing        *WeighingPayload `json:"weighing,omitempty"`
}

// ClassifiedEvent pairs a schedule event with its derived status.
type ClassifiedEvent struct {
	ScheduleEvent
	Status EventStatus `json:"status"`
}

// Event ids are deterministic functions of the batch and the payload key so
// regeneration is idempotent and stable across renders.

// PhaseEventID builds the id of the phase event for the given overall week.
func PhaseEventID(batchID string, week int) string {
	return fmt.Sprintf("%s:fase:%d", batchID, week)
}

// VaccineEventID builds the id of the vaccine event for the given preset.
func VaccineEventID(batchID, vaccineID string) string {
	return fmt.Sprintf("%s:vacina:%s", batchID, vaccineID)
}

// WeighingEventID builds the id of the weighing event for the given week.
func WeighingEventID(batchID string, week int) string {
	return fmt.Sprintf("%s:pesagem:%d", batchID, week)
}

// PhaseWindow is the full calendar span of one production phase, used by the
// dashboard rather than the day-by-day calendar.
type PhaseWindow struct {
	PhaseName   string    `json:"phase_name"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	TotalFeedKg int       `json:"total_feed_kg"`
}
