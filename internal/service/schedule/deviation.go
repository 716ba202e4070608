package schedule

import (
	"math"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
)

// Severity thresholds as absolute percentages of the ideal weight. Shared
// business rule with the alert deriver and the UI coloring.
const (
	deviationAttentionThreshold = 10.0
	deviationCriticalThreshold  = 20.0
)

// AnalyzeDeviation computes the signed percentage deviation of an actual
// weight from the breed ideal and classifies its severity. Ideal weights come
// from user-configurable parameter tables, so a non-positive ideal is rejected
// rather than trusted.
func AnalyzeDeviation(actualGrams, idealGrams int) (models.Deviation, error) {
	if idealGrams <= 0 {
		return models.Deviation{}, &models.InvalidInputError{Reason: "ideal weight must be positive"}
	}

	percent := (float64(actualGrams) - float64(idealGrams)) / float64(idealGrams) * 100

	severity := models.SeverityWithinRange
	switch abs := math.Abs(percent); {
	case abs > deviationCriticalThreshold:
		severity = models.SeverityCritical
	case abs > deviationAttentionThreshold:
		severity = models.SeverityAttention
	}

	return models.Deviation{Percent: percent, Severity: severity}, nil
}
