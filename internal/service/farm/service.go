// Package farm handles registration of the farm's master data: batches,
// breed parameter tables, vaccine presets, weighing checkpoints and suppliers.
package farm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/repository"
)

// ScheduleInvalidator drops derived schedule state when reference data
// changes. Implemented by the schedule service cache.
type ScheduleInvalidator interface {
	InvalidateCache()
}

// Service validates and stores master data.
type Service struct {
	repos     *repository.Repositories
	schedules ScheduleInvalidator
	logger    *zap.Logger
}

// NewService wires a farm registry service.
func NewService(repos *repository.Repositories, schedules ScheduleInvalidator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repos: repos, schedules: schedules, logger: logger}
}

// RegisterBatchInput is the payload of a batch registration.
type RegisterBatchInput struct {
	Name      string
	BirdCount int
	BirthDate time.Time
	EntryDate time.Time
	BreedID   string
	HouseID   string
}

// RegisterBatch validates and persists a new batch. The referenced breed must
// exist; entry data is immutable afterwards.
func (s *Service) RegisterBatch(ctx context.Context, input RegisterBatchInput, now time.Time) (models.Batch, error) {
	batch := models.Batch{
		ID:        uuid.NewString(),
		Name:      input.Name,
		BirdCount: input.BirdCount,
		BirthDate: models.DateOnly(input.BirthDate),
		EntryDate: models.DateOnly(input.EntryDate),
		BreedID:   input.BreedID,
		HouseID:   input.HouseID,
		Active:    true,
		CreatedAt: now,
	}

	if err := batch.Validate(now); err != nil {
		return models.Batch{}, err
	}

	if _, err := s.repos.Breeds.GetByID(ctx, batch.BreedID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.Batch{}, &models.ConfigurationError{Entity: "breed", ID: batch.BreedID}
		}
		return models.Batch{}, fmt.Errorf("load breed: %w", err)
	}

	if err := s.repos.Batches.Create(ctx, batch); err != nil {
		return models.Batch{}, fmt.Errorf("store batch: %w", err)
	}

	s.logger.Info("batch registered",
		zap.String("batch_id", batch.ID),
		zap.String("breed_id", batch.BreedID),
		zap.Int("bird_count", batch.BirdCount))
	return batch, nil
}

// CloseBatch deactivates a batch, removing it from schedule refresh passes.
func (s *Service) CloseBatch(ctx context.Context, batchID string) error {
	if err := s.repos.Batches.SetActive(ctx, batchID, false); err != nil {
		return fmt.Errorf("close batch: %w", err)
	}
	s.logger.Info("batch closed", zap.String("batch_id", batchID))
	return nil
}

// SaveBreed validates and upserts a breed parameter table together with its
// weighing checkpoints, then invalidates cached schedules built from the old
// table.
func (s *Service) SaveBreed(ctx context.Context, breed models.BreedParameters, checkpoints []models.WeighingCheckpoint) (models.BreedParameters, error) {
	if breed.ID == "" {
		breed.ID = uuid.NewString()
	}
	if err := breed.Validate(); err != nil {
		return models.BreedParameters{}, err
	}
	for _, checkpoint := range checkpoints {
		if checkpoint.Week <= 0 || checkpoint.AgeInDays < 0 {
			return models.BreedParameters{}, &models.ValidationError{Field: "checkpoints", Reason: "week must be positive and age not negative"}
		}
		if checkpoint.IdealWeightGrams <= 0 {
			return models.BreedParameters{}, &models.ValidationError{Field: "checkpoints", Reason: "ideal weight must be positive"}
		}
	}

	if err := s.repos.Breeds.Upsert(ctx, breed); err != nil {
		return models.BreedParameters{}, fmt.Errorf("store breed: %w", err)
	}
	if err := s.repos.WeighingPresets.ReplaceForBreed(ctx, breed.ID, checkpoints); err != nil {
		return models.BreedParameters{}, fmt.Errorf("store weighing checkpoints: %w", err)
	}

	if s.schedules != nil {
		s.schedules.InvalidateCache()
	}
	s.logger.Info("breed parameters saved", zap.String("breed_id", breed.ID))
	return breed, nil
}

// SaveVaccinePreset validates and upserts a vaccine preset, invalidating
// cached schedules.
func (s *Service) SaveVaccinePreset(ctx context.Context, preset models.VaccinePreset) (models.VaccinePreset, error) {
	if preset.ID == "" {
		preset.ID = uuid.NewString()
	}
	if err := preset.Validate(); err != nil {
		return models.VaccinePreset{}, err
	}

	if err := s.repos.VaccinePresets.Upsert(ctx, preset); err != nil {
		return models.VaccinePreset{}, fmt.Errorf("store vaccine preset: %w", err)
	}

	if s.schedules != nil {
		s.schedules.InvalidateCache()
	}
	return preset, nil
}

// CreateSupplier validates and stores a supplier.
func (s *Service) CreateSupplier(ctx context.Context, supplier models.Supplier, now time.Time) (models.Supplier, error) {
	supplier.ID = uuid.NewString()
	supplier.CreatedAt = now
	if err := supplier.Validate(); err != nil {
		return models.Supplier{}, err
	}

	if err := s.repos.Suppliers.Create(ctx, supplier); err != nil {
		return models.Supplier{}, fmt.Errorf("store supplier: %w", err)
	}
	return supplier, nil
}
