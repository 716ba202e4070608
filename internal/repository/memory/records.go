package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
)

type vaccinationRecordRepo struct{ s *Store }

func (r *vaccinationRecordRepo) Create(_ context.Context, record models.VaccinationRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.vaccinationRecords[record.BatchID] = append(r.s.vaccinationRecords[record.BatchID], record)
	return nil
}

func (r *vaccinationRecordRepo) ListByBatch(_ context.Context, batchID string) ([]models.VaccinationRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	stored := r.s.vaccinationRecords[batchID]
	out := make([]models.VaccinationRecord, len(stored))
	copy(out, stored)
	return out, nil
}

type weighingRecordRepo struct{ s *Store }

func weighingKey(batchID string, week int) string {
	return fmt.Sprintf("%s:%d", batchID, week)
}

func (r *weighingRecordRepo) Upsert(_ context.Context, record models.WeighingRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.weighingRecords[weighingKey(record.BatchID, record.Week)] = record
	return nil
}

func (r *weighingRecordRepo) GetByBatchWeek(_ context.Context, batchID string, week int) (models.WeighingRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	record, ok := r.s.weighingRecords[weighingKey(batchID, week)]
	if !ok {
		return models.WeighingRecord{}, models.ErrNotFound
	}
	return record, nil
}

func (r *weighingRecordRepo) ListByBatch(_ context.Context, batchID string) ([]models.WeighingRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []models.WeighingRecord
	for _, record := range r.s.weighingRecords {
		if record.BatchID == batchID {
			out = append(out, record)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Week < out[j].Week })
	return out, nil
}

type eggRecordRepo struct{ s *Store }

func (r *eggRecordRepo) Create(_ context.Context, record models.EggProductionRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.eggRecords[record.ID] = record
	return nil
}

func (r *eggRecordRepo) ListByBatch(_ context.Context, batchID string) ([]models.EggProductionRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []models.EggProductionRecord
	for _, record := range r.s.eggRecords {
		if record.BatchID == batchID {
			out = append(out, record)
		}
	}
	sortEggRecords(out)
	return out, nil
}

func (r *eggRecordRepo) ListByDateRange(_ context.Context, from, to time.Time) ([]models.EggProductionRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []models.EggProductionRecord
	for _, record := range r.s.eggRecords {
		day := models.DateOnly(record.Date)
		if day.Before(models.DateOnly(from)) || day.After(models.DateOnly(to)) {
			continue
		}
		out = append(out, record)
	}
	sortEggRecords(out)
	return out, nil
}

func sortEggRecords(records []models.EggProductionRecord) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].Date.Equal(records[j].Date) {
			return records[i].ID < records[j].ID
		}
		return records[i].Date.Before(records[j].Date)
	})
}
