package models

import "time"

// EggProductionRecord captures daily egg output for a batch.
type EggProductionRecord struct {
	ID        string    `bson:"_id" json:"id"`
	BatchID   string    `bson:"batch_id" json:"batch_id"`
	Date      time.Time `bson:"date" json:"date"`
	Quantity  int       `bson:"quantity" json:"quantity"`
	Cracked   int       `bson:"cracked" json:"cracked"`
	Double    int       `bson:"double" json:"double"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Validate checks record invariants.
func (e EggProductionRecord) Validate() error {
	if e.BatchID == "" {
		return &ValidationError{Field: "batch_id", Reason: "must not be empty"}
	}
	if e.Date.IsZero() {
		return &ValidationError{Field: "date", Reason: "is required"}
	}
	if e.Quantity < 0 || e.Cracked < 0 || e.Double < 0 {
		return &ValidationError{Field: "quantity", Reason: "counts must not be negative"}
	}
	if e.Cracked > e.Quantity {
		return &ValidationError{Field: "cracked", Reason: "must not exceed total quantity"}
	}
	return nil
}
