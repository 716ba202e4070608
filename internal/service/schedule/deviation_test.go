package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
)

func TestAnalyzeDeviationRoundTrip(t *testing.T) {
	for _, ideal := range []int{1, 70, 500, 1900} {
		deviation, err := AnalyzeDeviation(ideal, ideal)
		require.NoError(t, err)
		assert.Zero(t, deviation.Percent)
		assert.Equal(t, models.SeverityWithinRange, deviation.Severity)
	}
}

func TestAnalyzeDeviationBands(t *testing.T) {
	tests := []struct {
		name     string
		actual   int
		ideal    int
		percent  float64
		severity models.DeviationSeverity
	}{
		{"slightly over", 550, 500, 10.0, models.SeverityWithinRange},
		{"attention over", 560, 500, 12.0, models.SeverityAttention},
		{"attention boundary", 600, 500, 20.0, models.SeverityAttention},
		{"critical under", 350, 500, -30.0, models.SeverityCritical},
		{"critical over", 650, 500, 30.0, models.SeverityCritical},
		{"under within range", 460, 500, -8.0, models.SeverityWithinRange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			deviation, err := AnalyzeDeviation(tc.actual, tc.ideal)
			require.NoError(t, err)
			assert.InDelta(t, tc.percent, deviation.Percent, 0.001)
			assert.Equal(t, tc.severity, deviation.Severity)
		})
	}
}

func TestAnalyzeDeviationRejectsNonPositiveIdeal(t *testing.T) {
	for _, ideal := range []int{0, -10} {
		_, err := AnalyzeDeviation(500, ideal)
		var invalidErr *models.InvalidInputError
		require.ErrorAs(t, err, &invalidErr)
	}
}
