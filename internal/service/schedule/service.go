package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/repository"
)

// Service loads schedule inputs from the repositories, runs the pure engine
// and owns its two stateful concerns: the per-(batch, day) schedule cache and
// the weighing-record auto-seed.
type Service struct {
	repos        *repository.Repositories
	cache        *gocache.Cache
	preserveAcks bool
	logger       *zap.Logger
}

// NewService wires a schedule service. preserveAcks selects the alert
// regeneration policy: when true, acknowledgement flags survive a refresh for
// alerts that are derived again with the same id.
func NewService(repos *repository.Repositories, preserveAcks bool, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repos:        repos,
		cache:        gocache.New(15*time.Minute, 30*time.Minute),
		preserveAcks: preserveAcks,
		logger:       logger,
	}
}

// GenerateSchedule produces the event list for a batch. Results are cached
// per calendar day because generation is deterministic for a fixed day; the
// cache also bounds the weighing-seed writes to one pass per entry lifetime.
// Missing weighing presets degrade to a phases+vaccines schedule.
func (s *Service) GenerateSchedule(ctx context.Context, batchID string, now time.Time) ([]models.ScheduleEvent, error) {
	key := scheduleCacheKey(batchID, now)
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]models.ScheduleEvent), nil
	}

	batch, err := s.repos.Batches.GetByID(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("load batch: %w", err)
	}
	if batch.BirdCount <= 0 {
		return nil, &models.ValidationError{Field: "bird_count", Reason: "must be positive"}
	}

	breed, err := s.repos.Breeds.GetByID(ctx, batch.BreedID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &models.ConfigurationError{Entity: "breed", ID: batch.BreedID}
		}
		return nil, fmt.Errorf("load breed: %w", err)
	}

	presets, err := s.repos.VaccinePresets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load vaccine presets: %w", err)
	}

	checkpoints, err := s.repos.WeighingPresets.ListByBreed(ctx, batch.BreedID)
	if err != nil {
		return nil, fmt.Errorf("load weighing presets: %w", err)
	}

	events, err := Generate(batch, breed, presets, checkpoints)
	if err != nil {
		return nil, err
	}

	if err := s.seedWeighingRecords(ctx, events); err != nil {
		return nil, err
	}

	s.cache.SetDefault(key, events)
	return events, nil
}

// seedWeighingRecords persists a pending record for every weighing event that
// has none yet. Check-then-insert keyed on (batch, week) keeps repeated
// generation passes from duplicating records.
func (s *Service) seedWeighingRecords(ctx context.Context, events []models.ScheduleEvent) error {
	for _, event := range events {
		if event.Kind != models.EventWeighing {
			continue
		}
		_, err := s.repos.WeighingRecords.GetByBatchWeek(ctx, event.BatchID, event.Weighing.Week)
		if err == nil {
			continue
		}
		if !errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("check weighing record: %w", err)
		}

		record := models.WeighingRecord{
			ID:               uuid.NewString(),
			BatchID:          event.BatchID,
			Week:             event.Weighing.Week,
			ExpectedDate:     event.ExpectedDate,
			IdealWeightGrams: event.Weighing.IdealWeightGrams,
			Status:           models.StatusPending,
			UpdatedAt:        event.ExpectedDate,
		}
		if err := s.repos.WeighingRecords.Upsert(ctx, record); err != nil {
			return fmt.Errorf("seed weighing record: %w", err)
		}
		s.logger.Debug("weighing record seeded",
			zap.String("batch_id", event.BatchID),
			zap.Int("week", event.Weighing.Week))
	}
	return nil
}

// Calendar returns the batch's events classified against the reference clock
// and the recorded completions.
func (s *Service) Calendar(ctx context.Context, batchID string, now time.Time) ([]models.ClassifiedEvent, error) {
	events, err := s.GenerateSchedule(ctx, batchID, now)
	if err != nil {
		return nil, err
	}

	vaccinations, err := s.repos.VaccinationRecords.ListByBatch(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("load vaccination records: %w", err)
	}
	weighings, err := s.repos.WeighingRecords.ListByBatch(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("load weighing records: %w", err)
	}

	return ClassifyAll(events, vaccinations, weighings, now), nil
}

// RefreshAlerts derives the batch's alert set and swaps it into the store,
// applying the configured acknowledgement policy. Returns the stored set.
func (s *Service) RefreshAlerts(ctx context.Context, batchID string, now time.Time) ([]models.Alert, error) {
	classified, err := s.Calendar(ctx, batchID, now)
	if err != nil {
		return nil, err
	}

	weighings, err := s.repos.WeighingRecords.ListByBatch(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("load weighing records: %w", err)
	}

	alerts := DeriveAlerts(batchID, classified, weighings, now)

	if s.preserveAcks {
		previous, err := s.repos.Alerts.ListByBatch(ctx, batchID)
		if err != nil {
			return nil, fmt.Errorf("load previous alerts: %w", err)
		}
		alerts = MergeAcknowledgements(alerts, previous)
	}

	if err := s.repos.Alerts.ReplaceForBatch(ctx, batchID, alerts); err != nil {
		return nil, fmt.Errorf("store alerts: %w", err)
	}

	s.logger.Info("alerts refreshed",
		zap.String("batch_id", batchID),
		zap.Int("count", len(alerts)))
	return alerts, nil
}

// ApplyVaccineInput is the payload of a vaccine application action.
type ApplyVaccineInput struct {
	BatchID         string
	VaccineID       string
	ApplicationDate time.Time
	BirdsVaccinated int
	Responsible     string
	Notes           string
}

// ApplyVaccine records an actual vaccine application, deriving the flock age
// from the batch entry date.
func (s *Service) ApplyVaccine(ctx context.Context, input ApplyVaccineInput, now time.Time) (models.VaccinationRecord, error) {
	batch, err := s.repos.Batches.GetByID(ctx, input.BatchID)
	if err != nil {
		return models.VaccinationRecord{}, fmt.Errorf("load batch: %w", err)
	}

	if _, err := s.repos.VaccinePresets.GetByID(ctx, input.VaccineID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.VaccinationRecord{}, &models.ConfigurationError{Entity: "vaccine", ID: input.VaccineID}
		}
		return models.VaccinationRecord{}, fmt.Errorf("load vaccine preset: %w", err)
	}

	if input.ApplicationDate.IsZero() {
		return models.VaccinationRecord{}, &models.ValidationError{Field: "application_date", Reason: "is required"}
	}
	if input.BirdsVaccinated <= 0 {
		return models.VaccinationRecord{}, &models.ValidationError{Field: "birds_vaccinated", Reason: "must be positive"}
	}

	record := models.VaccinationRecord{
		ID:                     uuid.NewString(),
		BatchID:                input.BatchID,
		VaccineID:              input.VaccineID,
		ApplicationDate:        models.DateOnly(input.ApplicationDate),
		AgeInDaysAtApplication: batch.AgeInDays(input.ApplicationDate),
		BirdsVaccinated:        input.BirdsVaccinated,
		Responsible:            input.Responsible,
		Notes:                  input.Notes,
		CreatedAt:              now,
	}

	if err := s.repos.VaccinationRecords.Create(ctx, record); err != nil {
		return models.VaccinationRecord{}, fmt.Errorf("store vaccination record: %w", err)
	}
	return record, nil
}

// RecordWeight stores an actual weight on an existing weighing record and
// returns the record together with its deviation analysis.
func (s *Service) RecordWeight(ctx context.Context, batchID string, week, actualGrams int, responsible string, now time.Time) (models.WeighingRecord, models.Deviation, error) {
	if actualGrams <= 0 {
		return models.WeighingRecord{}, models.Deviation{}, &models.ValidationError{Field: "actual_weight_grams", Reason: "must be positive"}
	}

	record, err := s.repos.WeighingRecords.GetByBatchWeek(ctx, batchID, week)
	if err != nil {
		return models.WeighingRecord{}, models.Deviation{}, fmt.Errorf("load weighing record: %w", err)
	}

	deviation, err := AnalyzeDeviation(actualGrams, record.IdealWeightGrams)
	if err != nil {
		return models.WeighingRecord{}, models.Deviation{}, err
	}

	record.ActualWeightGrams = &actualGrams
	record.Status = models.StatusDone
	record.Responsible = responsible
	record.UpdatedAt = now

	if err := s.repos.WeighingRecords.Upsert(ctx, record); err != nil {
		return models.WeighingRecord{}, models.Deviation{}, fmt.Errorf("store weighing record: %w", err)
	}
	return record, deviation, nil
}

// InvalidateCache drops every cached schedule. Called when reference data
// (breed parameters, presets) changes.
func (s *Service) InvalidateCache() {
	s.cache.Flush()
}

func scheduleCacheKey(batchID string, now time.Time) string {
	return fmt.Sprintf("%s:%s", batchID, models.DateOnly(now).Format(dateLayout))
}
