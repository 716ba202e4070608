package models

import "time"

// Deviation severity bands for actual vs ideal weight, shared by the UI
// coloring and the alert deriver.
type DeviationSeverity string

const (
	SeverityWithinRange DeviationSeverity = "dentro_da_meta"
	SeverityAttention   DeviationSeverity = "atencao"
	SeverityCritical    DeviationSeverity = "critico"
)

// Deviation is the result of comparing an actual weight to the breed ideal.
type Deviation struct {
	Percent  float64           `json:"percent"`
	Severity DeviationSeverity `json:"severity"`
}

// WeighingRecord is the persisted weighing checkpoint of a batch. Records are
// auto-seeded at schedule generation and mutated when an actual weight is
// recorded.
type WeighingRecord struct {
	ID                string      `bson:"_id" json:"id"`
	BatchID           string      `bson:"batch_id" json:"batch_id"`
	Week              int         `bson:"week" json:"week"`
	ExpectedDate      time.Time   `bson:"expected_date" json:"expected_date"`
	IdealWeightGrams  int         `bson:"ideal_weight_grams" json:"ideal_weight_grams"`
	ActualWeightGrams *int        `bson:"actual_weight_grams,omitempty" json:"actual_weight_grams,omitempty"`
	Status            EventStatus `bson:"status" json:"status"`
	Responsible       string      `bson:"responsible,omitempty" json:"responsible,omitempty"`
	UpdatedAt         time.Time   `bson:"updated_at" json:"updated_at"`
}

// Weighed reports whether an actual weight has been recorded.
func (w WeighingRecord) Weighed() bool {
	return w.ActualWeightGrams != nil
}
