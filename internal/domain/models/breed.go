package models

import "fmt"

// Phase describes one production stage of a breed (recria, crescimento,
// produção) with its duration and per-bird feed consumption rate.
type Phase struct {
	Name                        string  `bson:"name" json:"name"`
	DurationWeeks               int     `bson:"duration_weeks" json:"duration_weeks"`
	WeeklyConsumptionGrams      float64 `bson:"weekly_consumption_grams" json:"weekly_consumption_grams"`
	AccumulatedConsumptionGrams float64 `bson:"accumulated_consumption_grams,omitempty" json:"accumulated_consumption_grams,omitempty"`
}

// TotalConsumptionGrams returns the per-bird feed consumption for the whole
// phase. The accumulated figure wins when the parameter table provides it.
func (p Phase) TotalConsumptionGrams() float64 {
	if p.AccumulatedConsumptionGrams > 0 {
		return p.AccumulatedConsumptionGrams
	}
	return p.WeeklyConsumptionGrams * float64(p.DurationWeeks)
}

// BreedParameters holds the per-breed phase table driving schedule generation.
// Phases are ordered and contiguous; durations are positive integers.
type BreedParameters struct {
	ID     string  `bson:"_id" json:"id"`
	Name   string  `bson:"name" json:"name"`
	Phases []Phase `bson:"phases" json:"phases"`
}

// Validate checks the phase table invariants.
func (b BreedParameters) Validate() error {
	if b.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if len(b.Phases) == 0 {
		return &ValidationError{Field: "phases", Reason: "at least one phase is required"}
	}
	for i, phase := range b.Phases {
		if phase.Name == "" {
			return &ValidationError{Field: "phases", Reason: fmt.Sprintf("phase %d has no name", i)}
		}
		if phase.DurationWeeks <= 0 {
			return &ValidationError{Field: "phases", Reason: fmt.Sprintf("phase %q duration must be positive", phase.Name)}
		}
		if phase.WeeklyConsumptionGrams < 0 || phase.AccumulatedConsumptionGrams < 0 {
			return &ValidationError{Field: "phases", Reason: fmt.Sprintf("phase %q consumption must not be negative", phase.Name)}
		}
	}
	return nil
}

// TotalWeeks returns the total length of the breed's production cycle.
func (b BreedParameters) TotalWeeks() int {
	total := 0
	for _, phase := range b.Phases {
		total += phase.DurationWeeks
	}
	return total
}

// WeighingCheckpoint is a static per-breed expected weighing point: at a given
// age the flock should average the ideal weight.
type WeighingCheckpoint struct {
	BreedID          string `bson:"breed_id" json:"breed_id"`
	Week             int    `bson:"week" json:"week"`
	AgeInDays        int    `bson:"age_in_days" json:"age_in_days"`
	IdealWeightGrams int    `bson:"ideal_weight_grams" json:"ideal_weight_grams"`
}
