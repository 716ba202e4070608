package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/repository"
	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/service/production"
)

// ProductionHandler serves egg production, feed inventory, formula costing
// and the dashboard.
type ProductionHandler struct {
	svc    *production.Service
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewProductionHandler constructs the production HTTP adapter.
func NewProductionHandler(svc *production.Service, repos *repository.Repositories, logger *zap.Logger) *ProductionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductionHandler{svc: svc, repos: repos, logger: logger}
}

type recordEggsRequest struct {
	Date     string `json:"date" binding:"required"`
	Quantity int    `json:"quantity"`
	Cracked  int    `json:"cracked"`
	Double   int    `json:"double"`
	Notes    string `json:"notes"`
}

// RecordEggs handles POST /batches/:id/eggs.
func (h *ProductionHandler) RecordEggs(c *gin.Context) {
	var req recordEggsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid egg record payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	recordDate, err := parseDateField("date", req.Date)
	if err != nil {
		respondError(c, err)
		return
	}

	record, err := h.svc.RecordEggs(c.Request.Context(), production.EggRecordInput{
		BatchID:  c.Param("id"),
		Date:     recordDate,
		Quantity: req.Quantity,
		Cracked:  req.Cracked,
		Double:   req.Double,
		Notes:    req.Notes,
	}, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// ListEggs handles GET /batches/:id/eggs.
func (h *ProductionHandler) ListEggs(c *gin.Context) {
	records, err := h.repos.EggRecords.ListByBatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// EggSummary handles GET /batches/:id/eggs/summary?from=&to=.
func (h *ProductionHandler) EggSummary(c *gin.Context) {
	from, err := parseDateField("from", c.Query("from"))
	if err != nil {
		respondError(c, err)
		return
	}
	to, err := parseDateField("to", c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}

	summary, err := h.svc.SummarizeEggs(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// SaveFeedInput handles POST /feed-inputs.
func (h *ProductionHandler) SaveFeedInput(c *gin.Context) {
	var input models.FeedInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid feed input payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	saved, err := h.svc.SaveFeedInput(c.Request.Context(), input, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// ListFeedInputs handles GET /feed-inputs.
func (h *ProductionHandler) ListFeedInputs(c *gin.Context) {
	inputs, err := h.repos.FeedInputs.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inputs)
}

type adjustStockRequest struct {
	DeltaKg float64 `json:"delta_kg" binding:"required"`
}

// AdjustStock handles POST /feed-inputs/:id/adjust.
func (h *ProductionHandler) AdjustStock(c *gin.Context) {
	var req adjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid stock adjustment payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	input, err := h.svc.AdjustStock(c.Request.Context(), c.Param("id"), req.DeltaKg, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, input)
}

// CreateFormula handles POST /feed-formulas.
func (h *ProductionHandler) CreateFormula(c *gin.Context) {
	var formula models.FeedFormula
	if err := c.ShouldBindJSON(&formula); err != nil {
		h.logger.Warn("invalid formula payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.svc.CreateFormula(c.Request.Context(), formula, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListFormulas handles GET /feed-formulas.
func (h *ProductionHandler) ListFormulas(c *gin.Context) {
	formulas, err := h.repos.FeedFormulas.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, formulas)
}

// DeleteFormula handles DELETE /feed-formulas/:id.
func (h *ProductionHandler) DeleteFormula(c *gin.Context) {
	if err := h.repos.FeedFormulas.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// FormulaCost handles GET /feed-formulas/:id/cost.
func (h *ProductionHandler) FormulaCost(c *gin.Context) {
	cost, err := h.svc.FormulaCostPerKg(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"formula_id": c.Param("id"), "cost_per_kg": cost})
}

// BatchFeedCost handles GET /batches/:id/feed-cost?formula_id=.
func (h *ProductionHandler) BatchFeedCost(c *gin.Context) {
	formulaID := c.Query("formula_id")
	if formulaID == "" {
		respondError(c, &models.ValidationError{Field: "formula_id", Reason: "is required"})
		return
	}
	now, err := refDate(c)
	if err != nil {
		respondError(c, err)
		return
	}

	estimate, err := h.svc.EstimateBatchFeedCost(c.Request.Context(), c.Param("id"), formulaID, now)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, estimate)
}

// Dashboard handles GET /dashboard.
func (h *ProductionHandler) Dashboard(c *gin.Context) {
	now, err := refDate(c)
	if err != nil {
		respondError(c, err)
		return
	}

	summary, err := h.svc.Dashboard(c.Request.Context(), now)
	if err != nil {
		h.logger.Error("dashboard aggregation failed", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
