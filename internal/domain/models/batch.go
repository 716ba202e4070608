package models

import "time"

// Batch represents a cohort of birds entered into production together. The
// entry date is the epoch for all schedule math and is immutable after
// registration.
type Batch struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	BirdCount int       `bson:"bird_count" json:"bird_count"`
	BirthDate time.Time `bson:"birth_date" json:"birth_date"`
	EntryDate time.Time `bson:"entry_date" json:"entry_date"`
	BreedID   string    `bson:"breed_id" json:"breed_id"`
	HouseID   string    `bson:"house_id,omitempty" json:"house_id,omitempty"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Validate checks registration invariants against the provided reference clock.
func (b Batch) Validate(now time.Time) error {
	if b.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if b.BirdCount <= 0 {
		return &ValidationError{Field: "bird_count", Reason: "must be positive"}
	}
	if b.BreedID == "" {
		return &ValidationError{Field: "breed_id", Reason: "must not be empty"}
	}
	if b.BirthDate.IsZero() || b.EntryDate.IsZero() {
		return &ValidationError{Field: "entry_date", Reason: "birth and entry dates are required"}
	}
	if b.EntryDate.Before(b.BirthDate) {
		return &ValidationError{Field: "entry_date", Reason: "must not precede birth date"}
	}
	if DateOnly(b.EntryDate).After(DateOnly(now)) {
		return &ValidationError{Field: "entry_date", Reason: "must not be in the future"}
	}
	return nil
}

// AgeInDays returns the batch age relative to the entry date.
func (b Batch) AgeInDays(now time.Time) int {
	return int(DateOnly(now).Sub(DateOnly(b.EntryDate)).Hours() / 24)
}

// DateOnly truncates a timestamp to its calendar day in UTC. All schedule
// arithmetic operates on whole days.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
