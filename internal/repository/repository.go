package repository

import (
	"context"
	"time"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
)

// Batches stores registered batches. Entry data is immutable after creation;
// only the active flag can be flipped when a batch is closed out.
type Batches interface {
	Create(ctx context.Context, batch models.Batch) error
	GetByID(ctx context.Context, id string) (models.Batch, error)
	List(ctx context.Context) ([]models.Batch, error)
	ListActive(ctx context.Context) ([]models.Batch, error)
	SetActive(ctx context.Context, id string, active bool) error
}

// Breeds stores per-breed parameter tables.
type Breeds interface {
	Upsert(ctx context.Context, breed models.BreedParameters) error
	GetByID(ctx context.Context, id string) (models.BreedParameters, error)
	List(ctx context.Context) ([]models.BreedParameters, error)
}

// VaccinePresets stores static vaccine reference data.
type VaccinePresets interface {
	Upsert(ctx context.Context, preset models.VaccinePreset) error
	GetByID(ctx context.Context, id string) (models.VaccinePreset, error)
	List(ctx context.Context) ([]models.VaccinePreset, error)
}

// VaccinationRecords stores actual vaccine applications.
type VaccinationRecords interface {
	Create(ctx context.Context, record models.VaccinationRecord) error
	ListByBatch(ctx context.Context, batchID string) ([]models.VaccinationRecord, error)
}

// WeighingPresets stores the per-breed expected weighing checkpoints.
type WeighingPresets interface {
	ReplaceForBreed(ctx context.Context, breedID string, checkpoints []models.WeighingCheckpoint) error
	ListByBreed(ctx context.Context, breedID string) ([]models.WeighingCheckpoint, error)
}

// WeighingRecords stores the mutable weighing checkpoints of each batch.
// Upsert must be idempotent on (batch, week) so schedule generation can seed
// missing records arbitrarily often without duplicating them.
type WeighingRecords interface {
	Upsert(ctx context.Context, record models.WeighingRecord) error
	GetByBatchWeek(ctx context.Context, batchID string, week int) (models.WeighingRecord, error)
	ListByBatch(ctx context.Context, batchID string) ([]models.WeighingRecord, error)
}

// EggRecords stores daily egg production entries.
type EggRecords interface {
	Create(ctx context.Context, record models.EggProductionRecord) error
	ListByBatch(ctx context.Context, batchID string) ([]models.EggProductionRecord, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]models.EggProductionRecord, error)
}

// FeedInputs stores feed ingredient inventory.
type FeedInputs interface {
	Upsert(ctx context.Context, input models.FeedInput) error
	GetByID(ctx context.Context, id string) (models.FeedInput, error)
	List(ctx context.Context) ([]models.FeedInput, error)
}

// FeedFormulas stores named feed mixes.
type FeedFormulas interface {
	Create(ctx context.Context, formula models.FeedFormula) error
	GetByID(ctx context.Context, id string) (models.FeedFormula, error)
	List(ctx context.Context) ([]models.FeedFormula, error)
	Delete(ctx context.Context, id string) error
}

// Suppliers stores the supplier registry.
type Suppliers interface {
	Create(ctx context.Context, supplier models.Supplier) error
	GetByID(ctx context.Context, id string) (models.Supplier, error)
	List(ctx context.Context) ([]models.Supplier, error)
	Delete(ctx context.Context, id string) error
}

// Alerts stores derived alerts. ReplaceForBatch swaps the whole alert set of
// a batch in one step; the regeneration policy (keep or drop acknowledgement
// flags) is decided by the caller before the swap.
type Alerts interface {
	ReplaceForBatch(ctx context.Context, batchID string, alerts []models.Alert) error
	ListByBatch(ctx context.Context, batchID string) ([]models.Alert, error)
	List(ctx context.Context) ([]models.Alert, error)
	Acknowledge(ctx context.Context, id string) error
}

// Repositories aggregates every store the application uses.
type Repositories struct {
	Batches            Batches
	Breeds             Breeds
	VaccinePresets     VaccinePresets
	VaccinationRecords VaccinationRecords
	WeighingPresets    WeighingPresets
	WeighingRecords    WeighingRecords
	EggRecords         EggRecords
	FeedInputs         FeedInputs
	FeedFormulas       FeedFormulas
	Suppliers          Suppliers
	Alerts             Alerts
}
