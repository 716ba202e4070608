package memory

import (
	"context"
	"sort"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
)

type batchRepo struct{ s *Store }

func (r *batchRepo) Create(_ context.Context, batch models.Batch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.batches[batch.ID] = batch
	return nil
}

func (r *batchRepo) GetByID(_ context.Context, id string) (models.Batch, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	batch, ok := r.s.batches[id]
	if !ok {
		return models.Batch{}, models.ErrNotFound
	}
	return batch, nil
}

func (r *batchRepo) List(_ context.Context) ([]models.Batch, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.Batch, 0, len(r.s.batches))
	for _, batch := range r.s.batches {
		out = append(out, batch)
	}
	sortBatches(out)
	return out, nil
}

func (r *batchRepo) ListActive(_ context.Context) ([]models.Batch, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.Batch, 0, len(r.s.batches))
	for _, batch := range r.s.batches {
		if batch.Active {
			out = append(out, batch)
		}
	}
	sortBatches(out)
	return out, nil
}

func (r *batchRepo) SetActive(_ context.Context, id string, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	batch, ok := r.s.batches[id]
	if !ok {
		return models.ErrNotFound
	}
	batch.Active = active
	r.s.batches[id] = batch
	return nil
}

func sortBatches(batches []models.Batch) {
	sort.Slice(batches, func(i, j int) bool {
		if batches[i].EntryDate.Equal(batches[j].EntryDate) {
			return batches[i].ID < batches[j].ID
		}
		return batches[i].EntryDate.Before(batches[j].EntryDate)
	})
}
