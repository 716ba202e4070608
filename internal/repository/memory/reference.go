package memory

import (
	"context"
	"sort"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
)

type breedRepo struct{ s *Store }

func (r *breedRepo) Upsert(_ context.Context, breed models.BreedParameters) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.breeds[breed.ID] = breed
	return nil
}

func (r *breedRepo) GetByID(_ context.Context, id string) (models.BreedParameters, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	breed, ok := r.s.breeds[id]
	if !ok {
		return models.BreedParameters{}, models.ErrNotFound
	}
	return breed, nil
}

func (r *breedRepo) List(_ context.Context) ([]models.BreedParameters, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.BreedParameters, 0, len(r.s.breeds))
	for _, breed := range r.s.breeds {
		out = append(out, breed)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type vaccinePresetRepo struct{ s *Store }

func (r *vaccinePresetRepo) Upsert(_ context.Context, preset models.VaccinePreset) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.vaccinePresets[preset.ID] = preset
	return nil
}

func (r *vaccinePresetRepo) GetByID(_ context.Context, id string) (models.VaccinePreset, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	preset, ok := r.s.vaccinePresets[id]
	if !ok {
		return models.VaccinePreset{}, models.ErrNotFound
	}
	return preset, nil
}

func (r *vaccinePresetRepo) List(_ context.Context) ([]models.VaccinePreset, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.VaccinePreset, 0, len(r.s.vaccinePresets))
	for _, preset := range r.s.vaccinePresets {
		out = append(out, preset)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AgeInDaysToApply == out[j].AgeInDaysToApply {
			return out[i].ID < out[j].ID
		}
		return out[i].AgeInDaysToApply < out[j].AgeInDaysToApply
	})
	return out, nil
}

type weighingPresetRepo struct{ s *Store }

func (r *weighingPresetRepo) ReplaceForBreed(_ context.Context, breedID string, checkpoints []models.WeighingCheckpoint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	copied := make([]models.WeighingCheckpoint, len(checkpoints))
	copy(copied, checkpoints)
	sort.Slice(copied, func(i, j int) bool { return copied[i].Week < copied[j].Week })
	r.s.weighingPresets[breedID] = copied
	return nil
}

func (r *weighingPresetRepo) ListByBreed(_ context.Context, breedID string) ([]models.WeighingCheckpoint, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	stored := r.s.weighingPresets[breedID]
	out := make([]models.WeighingCheckpoint, len(stored))
	copy(out, stored)
	return out, nil
}

type supplierRepo struct{ s *Store }

func (r *supplierRepo) Create(_ context.Context, supplier models.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.suppliers[supplier.ID] = supplier
	return nil
}

func (r *supplierRepo) GetByID(_ context.Context, id string) (models.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	supplier, ok := r.s.suppliers[id]
	if !ok {
		return models.Supplier{}, models.ErrNotFound
	}
	return supplier, nil
}

func (r *supplierRepo) List(_ context.Context) ([]models.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.Supplier, 0, len(r.s.suppliers))
	for _, supplier := range r.s.suppliers {
		out = append(out, supplier)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *supplierRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.suppliers[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.s.suppliers, id)
	return nil
}
