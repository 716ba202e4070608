package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
)

type alertRepo struct{ c *Client }

func (r *alertRepo) ReplaceForBatch(ctx context.Context, batchID string, alerts []models.Alert) error {
	coll := r.c.collection(collAlerts)
	if _, err := coll.DeleteMany(ctx, bson.M{"batch_id": batchID}); err != nil {
		return fmt.Errorf("clear batch alerts: %w", err)
	}
	if len(alerts) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(alerts))
	for _, alert := range alerts {
		docs = append(docs, alert)
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert batch alerts: %w", err)
	}
	return nil
}

func (r *alertRepo) ListByBatch(ctx context.Context, batchID string) ([]models.Alert, error) {
	return r.find(ctx, bson.M{"batch_id": batchID})
}

func (r *alertRepo) List(ctx context.Context) ([]models.Alert, error) {
	return r.find(ctx, bson.M{})
}

func (r *alertRepo) Acknowledge(ctx context.Context, id string) error {
	res, err := r.c.collection(collAlerts).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"acknowledged": true}})
	if err != nil {
		return fmt.Errorf("acknowledge alert: %w", err)
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *alertRepo) find(ctx context.Context, filter bson.M) ([]models.Alert, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.c.collection(collAlerts).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find alerts: %w", err)
	}
	var out []models.Alert
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode alerts: %w", err)
	}
	return out, nil
}
