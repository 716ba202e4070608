// Package production covers the day-to-day operational records around the
// schedule engine: egg output, feed-input inventory, feed-formula costing and
// the dashboard summary.
package production

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/repository"
	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/service/schedule"
)

// Service aggregates production records and inventory state.
type Service struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewService wires a production service instance.
func NewService(repos *repository.Repositories, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repos: repos, logger: logger}
}

// EggRecordInput is the payload of a daily egg entry.
type EggRecordInput struct {
	BatchID  string
	Date     time.Time
	Quantity int
	Cracked  int
	Double   int
	Notes    string
}

// RecordEggs validates and stores a daily egg production entry.
func (s *Service) RecordEggs(ctx context.Context, input EggRecordInput, now time.Time) (models.EggProductionRecord, error) {
	if _, err := s.repos.Batches.GetByID(ctx, input.BatchID); err != nil {
		return models.EggProductionRecord{}, fmt.Errorf("load batch: %w", err)
	}

	record := models.EggProductionRecord{
		ID:        uuid.NewString(),
		BatchID:   input.BatchID,
		Date:      models.DateOnly(input.Date),
		Quantity:  input.Quantity,
		Cracked:   input.Cracked,
		Double:    input.Double,
		Notes:     input.Notes,
		CreatedAt: now,
	}
	if err := record.Validate(); err != nil {
		return models.EggProductionRecord{}, err
	}

	if err := s.repos.EggRecords.Create(ctx, record); err != nil {
		return models.EggProductionRecord{}, fmt.Errorf("store egg record: %w", err)
	}
	return record, nil
}

// EggSummary aggregates egg production of a batch over a period.
type EggSummary struct {
	BatchID            string    `json:"batch_id"`
	From               time.Time `json:"from"`
	To                 time.Time `json:"to"`
	TotalEggs          int       `json:"total_eggs"`
	TotalCracked       int       `json:"total_cracked"`
	Entries            int       `json:"entries"`
	LayRatePercent     float64   `json:"lay_rate_percent"`
	CrackedRatePercent float64   `json:"cracked_rate_percent"`
}

// SummarizeEggs computes totals, lay rate (eggs per bird-day) and cracked rate
// for a batch over the inclusive period.
func (s *Service) SummarizeEggs(ctx context.Context, batchID string, from, to time.Time) (EggSummary, error) {
	batch, err := s.repos.Batches.GetByID(ctx, batchID)
	if err != nil {
		return EggSummary{}, fmt.Errorf("load batch: %w", err)
	}

	records, err := s.repos.EggRecords.ListByBatch(ctx, batchID)
	if err != nil {
		return EggSummary{}, fmt.Errorf("load egg records: %w", err)
	}

	fromDay, toDay := models.DateOnly(from), models.DateOnly(to)
	summary := EggSummary{BatchID: batchID, From: fromDay, To: toDay}
	for _, record := range records {
		day := models.DateOnly(record.Date)
		if day.Before(fromDay) || day.After(toDay) {
			continue
		}
		summary.TotalEggs += record.Quantity
		summary.TotalCracked += record.Cracked
		summary.Entries++
	}

	days := int(toDay.Sub(fromDay).Hours()/24) + 1
	if batch.BirdCount > 0 && days > 0 {
		summary.LayRatePercent = float64(summary.TotalEggs) / float64(batch.BirdCount*days) * 100
	}
	if summary.TotalEggs > 0 {
		summary.CrackedRatePercent = float64(summary.TotalCracked) / float64(summary.TotalEggs) * 100
	}
	return summary, nil
}

// SaveFeedInput validates and upserts a feed input. A supplier reference, if
// present, must resolve.
func (s *Service) SaveFeedInput(ctx context.Context, input models.FeedInput, now time.Time) (models.FeedInput, error) {
	if input.ID == "" {
		input.ID = uuid.NewString()
	}
	input.UpdatedAt = now
	if err := input.Validate(); err != nil {
		return models.FeedInput{}, err
	}

	if input.SupplierID != "" {
		if _, err := s.repos.Suppliers.GetByID(ctx, input.SupplierID); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return models.FeedInput{}, &models.ConfigurationError{Entity: "supplier", ID: input.SupplierID}
			}
			return models.FeedInput{}, fmt.Errorf("load supplier: %w", err)
		}
	}

	if err := s.repos.FeedInputs.Upsert(ctx, input); err != nil {
		return models.FeedInput{}, fmt.Errorf("store feed input: %w", err)
	}
	return input, nil
}

// AdjustStock applies a stock delta (positive on purchase, negative on
// consumption) to a feed input. Stock never goes negative.
func (s *Service) AdjustStock(ctx context.Context, inputID string, deltaKg float64, now time.Time) (models.FeedInput, error) {
	input, err := s.repos.FeedInputs.GetByID(ctx, inputID)
	if err != nil {
		return models.FeedInput{}, fmt.Errorf("load feed input: %w", err)
	}

	next := input.StockKg + deltaKg
	if next < 0 {
		return models.FeedInput{}, &models.ValidationError{Field: "stock_kg", Reason: "adjustment would make stock negative"}
	}
	input.StockKg = next
	input.UpdatedAt = now

	if err := s.repos.FeedInputs.Upsert(ctx, input); err != nil {
		return models.FeedInput{}, fmt.Errorf("store feed input: %w", err)
	}

	if input.LowStock() {
		s.logger.Warn("feed input below minimum stock",
			zap.String("input_id", input.ID),
			zap.String("name", input.Name),
			zap.Float64("stock_kg", input.StockKg))
	}
	return input, nil
}

// LowStockInputs lists inputs below their reorder threshold.
func (s *Service) LowStockInputs(ctx context.Context) ([]models.FeedInput, error) {
	inputs, err := s.repos.FeedInputs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load feed inputs: %w", err)
	}
	var out []models.FeedInput
	for _, input := range inputs {
		if input.LowStock() {
			out = append(out, input)
		}
	}
	return out, nil
}

// CreateFormula validates a feed formula, checks every ingredient reference
// and stores it.
func (s *Service) CreateFormula(ctx context.Context, formula models.FeedFormula, now time.Time) (models.FeedFormula, error) {
	formula.ID = uuid.NewString()
	formula.CreatedAt = now
	if err := formula.Validate(); err != nil {
		return models.FeedFormula{}, err
	}

	for _, ingredient := range formula.Ingredients {
		if _, err := s.repos.FeedInputs.GetByID(ctx, ingredient.FeedInputID); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return models.FeedFormula{}, &models.ConfigurationError{Entity: "feed input", ID: ingredient.FeedInputID}
			}
			return models.FeedFormula{}, fmt.Errorf("load feed input: %w", err)
		}
	}

	if err := s.repos.FeedFormulas.Create(ctx, formula); err != nil {
		return models.FeedFormula{}, fmt.Errorf("store feed formula: %w", err)
	}
	return formula, nil
}

// FormulaCostPerKg prices one kilogram of the mix from current ingredient
// unit costs.
func (s *Service) FormulaCostPerKg(ctx context.Context, formulaID string) (float64, error) {
	formula, err := s.repos.FeedFormulas.GetByID(ctx, formulaID)
	if err != nil {
		return 0, fmt.Errorf("load feed formula: %w", err)
	}

	var cost float64
	for _, ingredient := range formula.Ingredients {
		input, err := s.repos.FeedInputs.GetByID(ctx, ingredient.FeedInputID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return 0, &models.ConfigurationError{Entity: "feed input", ID: ingredient.FeedInputID}
			}
			return 0, fmt.Errorf("load feed input: %w", err)
		}
		cost += ingredient.Percent / 100 * input.UnitCostPerKg
	}
	return cost, nil
}

// FeedCostEstimate projects feed cost for a batch in its current phase.
type FeedCostEstimate struct {
	BatchID     string  `json:"batch_id"`
	FormulaID   string  `json:"formula_id"`
	PhaseName   string  `json:"phase_name"`
	CostPerKg   float64 `json:"cost_per_kg"`
	DailyFeedKg float64 `json:"daily_feed_kg"`
	DailyCost   float64 `json:"daily_cost"`
	WeeklyCost  float64 `json:"weekly_cost"`
}

// EstimateBatchFeedCost combines the batch's current phase consumption with a
// formula's price per kilogram.
func (s *Service) EstimateBatchFeedCost(ctx context.Context, batchID, formulaID string, now time.Time) (FeedCostEstimate, error) {
	batch, err := s.repos.Batches.GetByID(ctx, batchID)
	if err != nil {
		return FeedCostEstimate{}, fmt.Errorf("load batch: %w", err)
	}
	breed, err := s.repos.Breeds.GetByID(ctx, batch.BreedID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return FeedCostEstimate{}, &models.ConfigurationError{Entity: "breed", ID: batch.BreedID}
		}
		return FeedCostEstimate{}, fmt.Errorf("load breed: %w", err)
	}

	costPerKg, err := s.FormulaCostPerKg(ctx, formulaID)
	if err != nil {
		return FeedCostEstimate{}, err
	}

	estimate := FeedCostEstimate{BatchID: batchID, FormulaID: formulaID, CostPerKg: costPerKg}

	current := schedule.CurrentPhase(batch, breed, now)
	if current == nil {
		// Outside the production cycle there is no consumption to project.
		return estimate, nil
	}
	estimate.PhaseName = current.PhaseName

	var weeklyGrams float64
	for _, phase := range breed.Phases {
		if phase.Name == current.PhaseName {
			weeklyGrams = phase.TotalConsumptionGrams() / float64(phase.DurationWeeks)
			break
		}
	}

	weeklyKg := weeklyGrams * float64(batch.BirdCount) / 1000
	estimate.DailyFeedKg = weeklyKg / 7
	estimate.DailyCost = estimate.DailyFeedKg * costPerKg
	estimate.WeeklyCost = weeklyKg * costPerKg
	return estimate, nil
}

// DashboardSummary is the landing-page aggregate.
type DashboardSummary struct {
	ActiveBatches  int                          `json:"active_batches"`
	TotalBirds     int                          `json:"total_birds"`
	EggsToday      int                          `json:"eggs_today"`
	EggsLast7Days  int                          `json:"eggs_last_7_days"`
	OpenAlerts     map[models.AlertPriority]int `json:"open_alerts"`
	LowStockInputs []string                     `json:"low_stock_inputs"`
	CurrentPhases  map[string]string            `json:"current_phases"`
}

// Dashboard aggregates the farm state for the landing page.
func (s *Service) Dashboard(ctx context.Context, now time.Time) (DashboardSummary, error) {
	summary := DashboardSummary{
		OpenAlerts:    make(map[models.AlertPriority]int),
		CurrentPhases: make(map[string]string),
	}

	batches, err := s.repos.Batches.ListActive(ctx)
	if err != nil {
		return DashboardSummary{}, fmt.Errorf("load batches: %w", err)
	}
	summary.ActiveBatches = len(batches)
	for _, batch := range batches {
		summary.TotalBirds += batch.BirdCount

		breed, err := s.repos.Breeds.GetByID(ctx, batch.BreedID)
		if err != nil {
			// A batch with a broken breed reference must not take the
			// dashboard down; the calendar view surfaces the error.
			s.logger.Warn("dashboard: breed lookup failed",
				zap.String("batch_id", batch.ID),
				zap.String("breed_id", batch.BreedID),
				zap.Error(err))
			continue
		}
		if current := schedule.CurrentPhase(batch, breed, now); current != nil {
			summary.CurrentPhases[batch.ID] = current.PhaseName
		}
	}

	today := models.DateOnly(now)
	weekRecords, err := s.repos.EggRecords.ListByDateRange(ctx, today.AddDate(0, 0, -6), today)
	if err != nil {
		return DashboardSummary{}, fmt.Errorf("load egg records: %w", err)
	}
	for _, record := range weekRecords {
		summary.EggsLast7Days += record.Quantity
		if models.DateOnly(record.Date).Equal(today) {
			summary.EggsToday += record.Quantity
		}
	}

	alerts, err := s.repos.Alerts.List(ctx)
	if err != nil {
		return DashboardSummary{}, fmt.Errorf("load alerts: %w", err)
	}
	for _, alert := range alerts {
		if !alert.Acknowledged {
			summary.OpenAlerts[alert.Priority]++
		}
	}

	lowStock, err := s.LowStockInputs(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	for _, input := range lowStock {
		summary.LowStockInputs = append(summary.LowStockInputs, input.Name)
	}

	return summary, nil
}
