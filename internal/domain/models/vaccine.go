package models

import "time"

// VaccineType enumerates vaccine formulations.
type VaccineType string

const (
	VaccineLive        VaccineType = "live"
	VaccineInactivated VaccineType = "inactivated"
)

// ApplicationRoute enumerates supported administration routes.
type ApplicationRoute string

const (
	RouteOral          ApplicationRoute = "oral"
	RouteOcular        ApplicationRoute = "ocular"
	RouteNasal         ApplicationRoute = "nasal"
	RouteSubcutaneous  ApplicationRoute = "subcutaneous"
	RouteIntramuscular ApplicationRoute = "intramuscular"
	RouteSpray         ApplicationRoute = "spray"
)

// VaccinePreset is static reference data describing a vaccine and the flock
// age at which it should be applied.
//
// BoosterIntervalDays is carried through storage and the API but no follow-up
// event is scheduled from it.
type VaccinePreset struct {
	ID                  string           `bson:"_id" json:"id"`
	Name                string           `bson:"name" json:"name"`
	Manufacturer        string           `bson:"manufacturer" json:"manufacturer"`
	Type                VaccineType      `bson:"type" json:"type"`
	ApplicationRoute    ApplicationRoute `bson:"application_route" json:"application_route"`
	AgeInDaysToApply    int              `bson:"age_in_days_to_apply" json:"age_in_days_to_apply"`
	DoseML              float64          `bson:"dose_ml" json:"dose_ml"`
	BoosterIntervalDays int              `bson:"booster_interval_days,omitempty" json:"booster_interval_days,omitempty"`
	Notes               string           `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Validate checks preset invariants.
func (v VaccinePreset) Validate() error {
	if v.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if v.AgeInDaysToApply < 0 {
		return &ValidationError{Field: "age_in_days_to_apply", Reason: "must not be negative"}
	}
	if v.DoseML <= 0 {
		return &ValidationError{Field: "dose_ml", Reason: "must be positive"}
	}
	switch v.Type {
	case VaccineLive, VaccineInactivated:
	default:
		return &ValidationError{Field: "type", Reason: "must be live or inactivated"}
	}
	switch v.ApplicationRoute {
	case RouteOral, RouteOcular, RouteNasal, RouteSubcutaneous, RouteIntramuscular, RouteSpray:
	default:
		return &ValidationError{Field: "application_route", Reason: "unsupported route"}
	}
	return nil
}

// VaccinationRecord captures an actual vaccine application on a batch. It is
// matched back to its schedule event by (batch, vaccine) within an age
// tolerance window.
type VaccinationRecord struct {
	ID                     string    `bson:"_id" json:"id"`
	BatchID                string    `bson:"batch_id" json:"batch_id"`
	VaccineID              string    `bson:"vaccine_id" json:"vaccine_id"`
	ApplicationDate        time.Time `bson:"application_date" json:"application_date"`
	AgeInDaysAtApplication int       `bson:"age_in_days_at_application" json:"age_in_days_at_application"`
	BirdsVaccinated        int       `bson:"birds_vaccinated" json:"birds_vaccinated"`
	Responsible            string    `bson:"responsible" json:"responsible"`
	Notes                  string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt              time.Time `bson:"created_at" json:"created_at"`
}
