package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/repository"
	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/service/farm"
)

// FarmHandler serves master data: batches, breeds, vaccine presets and
// suppliers.
type FarmHandler struct {
	svc    *farm.Service
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewFarmHandler constructs the master data HTTP adapter.
func NewFarmHandler(svc *farm.Service, repos *repository.Repositories, logger *zap.Logger) *FarmHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FarmHandler{svc: svc, repos: repos, logger: logger}
}

type registerBatchRequest struct {
	Name      string `json:"name" binding:"required"`
	BirdCount int    `json:"bird_count" binding:"required"`
	BirthDate string `json:"birth_date" binding:"required"`
	EntryDate string `json:"entry_date" binding:"required"`
	BreedID   string `json:"breed_id" binding:"required"`
	HouseID   string `json:"house_id"`
}

// RegisterBatch handles POST /batches.
func (h *FarmHandler) RegisterBatch(c *gin.Context) {
	var req registerBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid batch payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	birthDate, err := parseDateField("birth_date", req.BirthDate)
	if err != nil {
		respondError(c, err)
		return
	}
	entryDate, err := parseDateField("entry_date", req.EntryDate)
	if err != nil {
		respondError(c, err)
		return
	}

	batch, err := h.svc.RegisterBatch(c.Request.Context(), farm.RegisterBatchInput{
		Name:      req.Name,
		BirdCount: req.BirdCount,
		BirthDate: birthDate,
		EntryDate: entryDate,
		BreedID:   req.BreedID,
		HouseID:   req.HouseID,
	}, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, batch)
}

// ListBatches handles GET /batches.
func (h *FarmHandler) ListBatches(c *gin.Context) {
	batches, err := h.repos.Batches.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing batches", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, batches)
}

// GetBatch handles GET /batches/:id.
func (h *FarmHandler) GetBatch(c *gin.Context) {
	batch, err := h.repos.Batches.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, batch)
}

// CloseBatch handles POST /batches/:id/close.
func (h *FarmHandler) CloseBatch(c *gin.Context) {
	if err := h.svc.CloseBatch(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type saveBreedRequest struct {
	models.BreedParameters
	Checkpoints []models.WeighingCheckpoint `json:"checkpoints"`
}

// SaveBreed handles POST /breeds.
func (h *FarmHandler) SaveBreed(c *gin.Context) {
	var req saveBreedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid breed payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	breed, err := h.svc.SaveBreed(c.Request.Context(), req.BreedParameters, req.Checkpoints)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, breed)
}

// ListBreeds handles GET /breeds.
func (h *FarmHandler) ListBreeds(c *gin.Context) {
	breeds, err := h.repos.Breeds.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, breeds)
}

// GetBreed handles GET /breeds/:id, returning the parameter table with its
// weighing checkpoints.
func (h *FarmHandler) GetBreed(c *gin.Context) {
	ctx := c.Request.Context()
	breed, err := h.repos.Breeds.GetByID(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	checkpoints, err := h.repos.WeighingPresets.ListByBreed(ctx, breed.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"breed": breed, "checkpoints": checkpoints})
}

// SaveVaccinePreset handles POST /vaccines.
func (h *FarmHandler) SaveVaccinePreset(c *gin.Context) {
	var preset models.VaccinePreset
	if err := c.ShouldBindJSON(&preset); err != nil {
		h.logger.Warn("invalid vaccine preset payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	saved, err := h.svc.SaveVaccinePreset(c.Request.Context(), preset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// ListVaccinePresets handles GET /vaccines.
func (h *FarmHandler) ListVaccinePresets(c *gin.Context) {
	presets, err := h.repos.VaccinePresets.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, presets)
}

// CreateSupplier handles POST /suppliers.
func (h *FarmHandler) CreateSupplier(c *gin.Context) {
	var supplier models.Supplier
	if err := c.ShouldBindJSON(&supplier); err != nil {
		h.logger.Warn("invalid supplier payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.svc.CreateSupplier(c.Request.Context(), supplier, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListSuppliers handles GET /suppliers.
func (h *FarmHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.repos.Suppliers.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

// DeleteSupplier handles DELETE /suppliers/:id.
func (h *FarmHandler) DeleteSupplier(c *gin.Context) {
	if err := h.repos.Suppliers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
