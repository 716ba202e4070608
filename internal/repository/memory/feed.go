package memory

import (
	"context"
	"sort"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
)

type feedInputRepo struct{ s *Store }

func (r *feedInputRepo) Upsert(_ context.Context, input models.FeedInput) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.feedInputs[input.ID] = input
	return nil
}

func (r *feedInputRepo) GetByID(_ context.Context, id string) (models.FeedInput, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	input, ok := r.s.feedInputs[id]
	if !ok {
		return models.FeedInput{}, models.ErrNotFound
	}
	return input, nil
}

func (r *feedInputRepo) List(_ context.Context) ([]models.FeedInput, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.FeedInput, 0, len(r.s.feedInputs))
	for _, input := range r.s.feedInputs {
		out = append(out, input)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type feedFormulaRepo struct{ s *Store }

func (r *feedFormulaRepo) Create(_ context.Context, formula models.FeedFormula) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.feedFormulas[formula.ID] = formula
	return nil
}

func (r *feedFormulaRepo) GetByID(_ context.Context, id string) (models.FeedFormula, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	formula, ok := r.s.feedFormulas[id]
	if !ok {
		return models.FeedFormula{}, models.ErrNotFound
	}
	return formula, nil
}

func (r *feedFormulaRepo) List(_ context.Context) ([]models.FeedFormula, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.FeedFormula, 0, len(r.s.feedFormulas))
	for _, formula := range r.s.feedFormulas {
		out = append(out, formula)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *feedFormulaRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.feedFormulas[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.s.feedFormulas, id)
	return nil
}
