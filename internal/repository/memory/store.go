// Package memory provides a mutex-guarded in-memory implementation of the
// repository interfaces. It backs unit tests and the memory storage driver,
// the counterpart of the key-value store the farm app originally persisted to.
package memory

import (
	"sync"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/repository"
)

// Store holds every collection behind a single lock. Contention is a
// non-issue at this scale; simplicity wins.
type Store struct {
	mu sync.RWMutex

	batches            map[string]models.Batch
	breeds             map[string]models.BreedParameters
	vaccinePresets     map[string]models.VaccinePreset
	vaccinationRecords map[string][]models.VaccinationRecord  // by batch id
	weighingPresets    map[string][]models.WeighingCheckpoint // by breed id
	weighingRecords    map[string]models.WeighingRecord       // by record id
	eggRecords         map[string]models.EggProductionRecord
	feedInputs         map[string]models.FeedInput
	feedFormulas       map[string]models.FeedFormula
	suppliers          map[string]models.Supplier
	alerts             map[string]models.Alert
}

// NewStore builds an empty in-memory store.
func NewStore() *Store {
	return &Store{
		batches:            make(map[string]models.Batch),
		breeds:             make(map[string]models.BreedParameters),
		vaccinePresets:     make(map[string]models.VaccinePreset),
		vaccinationRecords: make(map[string][]models.VaccinationRecord),
		weighingPresets:    make(map[string][]models.WeighingCheckpoint),
		weighingRecords:    make(map[string]models.WeighingRecord),
		eggRecords:         make(map[string]models.EggProductionRecord),
		feedInputs:         make(map[string]models.FeedInput),
		feedFormulas:       make(map[string]models.FeedFormula),
		suppliers:          make(map[string]models.Supplier),
		alerts:             make(map[string]models.Alert),
	}
}

// NewRepositories wires a repository aggregate on top of a fresh store.
func NewRepositories() *repository.Repositories {
	s := NewStore()
	return &repository.Repositories{
		Batches:            &batchRepo{s},
		Breeds:             &breedRepo{s},
		VaccinePresets:     &vaccinePresetRepo{s},
		VaccinationRecords: &vaccinationRecordRepo{s},
		WeighingPresets:    &weighingPresetRepo{s},
		WeighingRecords:    &weighingRecordRepo{s},
		EggRecords:         &eggRecordRepo{s},
		FeedInputs:         &feedInputRepo{s},
		FeedFormulas:       &feedFormulaRepo{s},
		Suppliers:          &supplierRepo{s},
		Alerts:             &alertRepo{s},
	}
}
