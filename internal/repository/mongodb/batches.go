package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
)

type batchRepo struct{ c *Client }

func (r *batchRepo) Create(ctx context.Context, batch models.Batch) error {
	if _, err := r.c.collection(collBatches).InsertOne(ctx, batch); err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

func (r *batchRepo) GetByID(ctx context.Context, id string) (models.Batch, error) {
	var batch models.Batch
	err := r.c.collection(collBatches).FindOne(ctx, bson.M{"_id": id}).Decode(&batch)
	if err != nil {
		return models.Batch{}, mapErr(err)
	}
	return batch, nil
}

func (r *batchRepo) List(ctx context.Context) ([]models.Batch, error) {
	return r.find(ctx, bson.M{})
}

func (r *batchRepo) ListActive(ctx context.Context) ([]models.Batch, error) {
	return r.find(ctx, bson.M{"active": true})
}

func (r *batchRepo) SetActive(ctx context.Context, id string, active bool) error {
	res, err := r.c.collection(collBatches).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"active": active}})
	if err != nil {
		return fmt.Errorf("update batch active flag: %w", err)
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *batchRepo) find(ctx context.Context, filter bson.M) ([]models.Batch, error) {
	opts := options.Find().SetSort(bson.D{{Key: "entry_date", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.c.collection(collBatches).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find batches: %w", err)
	}
	var out []models.Batch
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode batches: %w", err)
	}
	return out, nil
}
