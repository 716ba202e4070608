// Package handlers adapts the application services to the gin HTTP API.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
)

const dateLayout = "2006-01-02"

// respondError maps domain errors onto HTTP statuses so forms and dashboards
// can render inline messages.
func respondError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	var invalidErr *models.InvalidInputError
	var configErr *models.ConfigurationError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.As(err, &invalidErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidErr.Error()})
	case errors.As(err, &configErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": configErr.Error()})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// refDate resolves the reference clock of a request. The optional date query
// parameter lets clients render the calendar as of any day; it defaults to
// the current day.
func refDate(c *gin.Context) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), nil
	}
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, &models.ValidationError{Field: "date", Reason: "must be formatted as YYYY-MM-DD"}
	}
	return parsed, nil
}

// parseDateField parses a required request date field.
func parseDateField(field, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, &models.ValidationError{Field: field, Reason: "is required"}
	}
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, &models.ValidationError{Field: field, Reason: "must be formatted as YYYY-MM-DD"}
	}
	return parsed, nil
}
