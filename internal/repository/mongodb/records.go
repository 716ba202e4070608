package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
)

type vaccinationRecordRepo struct{ c *Client }

func (r *vaccinationRecordRepo) Create(ctx context.Context, record models.VaccinationRecord) error {
	if _, err := r.c.collection(collVaccinationRecords).InsertOne(ctx, record); err != nil {
		return fmt.Errorf("insert vaccination record: %w", err)
	}
	return nil
}

func (r *vaccinationRecordRepo) ListByBatch(ctx context.Context, batchID string) ([]models.VaccinationRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "application_date", Value: 1}})
	cursor, err := r.c.collection(collVaccinationRecords).Find(ctx, bson.M{"batch_id": batchID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find vaccination records: %w", err)
	}
	var out []models.VaccinationRecord
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode vaccination records: %w", err)
	}
	return out, nil
}

type weighingRecordRepo struct{ c *Client }

func (r *weighingRecordRepo) Upsert(ctx context.Context, record models.WeighingRecord) error {
	// Keyed on (batch, week) so seeding stays idempotent regardless of the
	// record id the caller generated.
	_, err := r.c.collection(collWeighingRecords).ReplaceOne(ctx,
		bson.M{"batch_id": record.BatchID, "week": record.Week},
		record, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert weighing record: %w", err)
	}
	return nil
}

func (r *weighingRecordRepo) GetByBatchWeek(ctx context.Context, batchID string, week int) (models.WeighingRecord, error) {
	var record models.WeighingRecord
	err := r.c.collection(collWeighingRecords).
		FindOne(ctx, bson.M{"batch_id": batchID, "week": week}).Decode(&record)
	if err != nil {
		return models.WeighingRecord{}, mapErr(err)
	}
	return record, nil
}

func (r *weighingRecordRepo) ListByBatch(ctx context.Context, batchID string) ([]models.WeighingRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "week", Value: 1}})
	cursor, err := r.c.collection(collWeighingRecords).Find(ctx, bson.M{"batch_id": batchID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find weighing records: %w", err)
	}
	var out []models.WeighingRecord
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode weighing records: %w", err)
	}
	return out, nil
}

type eggRecordRepo struct{ c *Client }

func (r *eggRecordRepo) Create(ctx context.Context, record models.EggProductionRecord) error {
	if _, err := r.c.collection(collEggRecords).InsertOne(ctx, record); err != nil {
		return fmt.Errorf("insert egg record: %w", err)
	}
	return nil
}

func (r *eggRecordRepo) ListByBatch(ctx context.Context, batchID string) ([]models.EggProductionRecord, error) {
	return r.find(ctx, bson.M{"batch_id": batchID})
}

func (r *eggRecordRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]models.EggProductionRecord, error) {
	return r.find(ctx, bson.M{"date": bson.M{
		"$gte": models.DateOnly(from),
		"$lte": models.DateOnly(to),
	}})
}

func (r *eggRecordRepo) find(ctx context.Context, filter bson.M) ([]models.EggProductionRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.c.collection(collEggRecords).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find egg records: %w", err)
	}
	var out []models.EggProductionRecord
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode egg records: %w", err)
	}
	return out, nil
}
