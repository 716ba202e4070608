package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/repository"
	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/service/export"
	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/service/schedule"
)

// CalendarHandler serves the schedule engine: calendar queries, vaccination
// and weighing actions, alerts and the CSV export.
type CalendarHandler struct {
	svc    *schedule.Service
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewCalendarHandler constructs the schedule HTTP adapter.
func NewCalendarHandler(svc *schedule.Service, repos *repository.Repositories, logger *zap.Logger) *CalendarHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalendarHandler{svc: svc, repos: repos, logger: logger}
}

// Calendar handles GET /batches/:id/calendar.
func (h *CalendarHandler) Calendar(c *gin.Context) {
	now, err := refDate(c)
	if err != nil {
		respondError(c, err)
		return
	}

	events, err := h.svc.Calendar(c.Request.Context(), c.Param("id"), now)
	if err != nil {
		h.logger.Warn("calendar generation failed", zap.String("batch_id", c.Param("id")), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// CalendarCSV handles GET /batches/:id/calendar/export, returning the event
// list as a CSV download.
func (h *CalendarHandler) CalendarCSV(c *gin.Context) {
	now, err := refDate(c)
	if err != nil {
		respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	batchID := c.Param("id")

	batch, err := h.repos.Batches.GetByID(ctx, batchID)
	if err != nil {
		respondError(c, err)
		return
	}
	events, err := h.svc.Calendar(ctx, batchID, now)
	if err != nil {
		respondError(c, err)
		return
	}

	body, err := export.CalendarCSV(batch, events)
	if err != nil {
		h.logger.Error("csv export failed", zap.Error(err))
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=cronograma-%s.csv", batchID))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(body))
}

type applyVaccineRequest struct {
	VaccineID       string `json:"vaccine_id" binding:"required"`
	ApplicationDate string `json:"application_date" binding:"required"`
	BirdsVaccinated int    `json:"birds_vaccinated" binding:"required"`
	Responsible     string `json:"responsible"`
	Notes           string `json:"notes"`
}

// ApplyVaccine handles POST /batches/:id/vaccinations.
func (h *CalendarHandler) ApplyVaccine(c *gin.Context) {
	var req applyVaccineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid vaccination payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	applicationDate, err := parseDateField("application_date", req.ApplicationDate)
	if err != nil {
		respondError(c, err)
		return
	}

	record, err := h.svc.ApplyVaccine(c.Request.Context(), schedule.ApplyVaccineInput{
		BatchID:         c.Param("id"),
		VaccineID:       req.VaccineID,
		ApplicationDate: applicationDate,
		BirdsVaccinated: req.BirdsVaccinated,
		Responsible:     req.Responsible,
		Notes:           req.Notes,
	}, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// ListVaccinations handles GET /batches/:id/vaccinations.
func (h *CalendarHandler) ListVaccinations(c *gin.Context) {
	records, err := h.repos.VaccinationRecords.ListByBatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

type recordWeightRequest struct {
	ActualWeightGrams int    `json:"actual_weight_grams" binding:"required"`
	Responsible       string `json:"responsible"`
}

// RecordWeight handles POST /batches/:id/weighings/:week.
func (h *CalendarHandler) RecordWeight(c *gin.Context) {
	week, err := strconv.Atoi(c.Param("week"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week must be a number"})
		return
	}

	var req recordWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid weighing payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, deviation, err := h.svc.RecordWeight(c.Request.Context(), c.Param("id"), week, req.ActualWeightGrams, req.Responsible, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"record": record, "deviation": deviation})
}

// ListWeighings handles GET /batches/:id/weighings.
func (h *CalendarHandler) ListWeighings(c *gin.Context) {
	records, err := h.repos.WeighingRecords.ListByBatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// RefreshAlerts handles POST /batches/:id/alerts/refresh.
func (h *CalendarHandler) RefreshAlerts(c *gin.Context) {
	now, err := refDate(c)
	if err != nil {
		respondError(c, err)
		return
	}

	alerts, err := h.svc.RefreshAlerts(c.Request.Context(), c.Param("id"), now)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// ListBatchAlerts handles GET /batches/:id/alerts.
func (h *CalendarHandler) ListBatchAlerts(c *gin.Context) {
	alerts, err := h.repos.Alerts.ListByBatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// ListAlerts handles GET /alerts.
func (h *CalendarHandler) ListAlerts(c *gin.Context) {
	alerts, err := h.repos.Alerts.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// AcknowledgeAlert handles POST /alerts/:id/ack.
func (h *CalendarHandler) AcknowledgeAlert(c *gin.Context) {
	if err := h.repos.Alerts.Acknowledge(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
