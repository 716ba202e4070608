package memory

import (
	"context"
	"sort"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
)

type alertRepo struct{ s *Store }

func (r *alertRepo) ReplaceForBatch(_ context.Context, batchID string, alerts []models.Alert) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, alert := range r.s.alerts {
		if alert.BatchID == batchID {
			delete(r.s.alerts, id)
		}
	}
	for _, alert := range alerts {
		r.s.alerts[alert.ID] = alert
	}
	return nil
}

func (r *alertRepo) ListByBatch(_ context.Context, batchID string) ([]models.Alert, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []models.Alert
	for _, alert := range r.s.alerts {
		if alert.BatchID == batchID {
			out = append(out, alert)
		}
	}
	sortAlerts(out)
	return out, nil
}

func (r *alertRepo) List(_ context.Context) ([]models.Alert, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.Alert, 0, len(r.s.alerts))
	for _, alert := range r.s.alerts {
		out = append(out, alert)
	}
	sortAlerts(out)
	return out, nil
}

func (r *alertRepo) Acknowledge(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	alert, ok := r.s.alerts[id]
	if !ok {
		return models.ErrNotFound
	}
	alert.Acknowledged = true
	r.s.alerts[id] = alert
	return nil
}

func sortAlerts(alerts []models.Alert) {
	sort.Slice(alerts, func(i, j int) bool { return alerts[i].ID < alerts[j].ID })
}
