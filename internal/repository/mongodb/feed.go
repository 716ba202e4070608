package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
)

type feedInputRepo struct{ c *Client }

func (r *feedInputRepo) Upsert(ctx context.Context, input models.FeedInput) error {
	_, err := r.c.collection(collFeedInputs).ReplaceOne(ctx,
		bson.M{"_id": input.ID}, input, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert feed input: %w", err)
	}
	return nil
}

func (r *feedInputRepo) GetByID(ctx context.Context, id string) (models.FeedInput, error) {
	var input models.FeedInput
	err := r.c.collection(collFeedInputs).FindOne(ctx, bson.M{"_id": id}).Decode(&input)
	if err != nil {
		return models.FeedInput{}, mapErr(err)
	}
	return input, nil
}

func (r *feedInputRepo) List(ctx context.Context) ([]models.FeedInput, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.c.collection(collFeedInputs).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find feed inputs: %w", err)
	}
	var out []models.FeedInput
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode feed inputs: %w", err)
	}
	return out, nil
}

type feedFormulaRepo struct{ c *Client }

func (r *feedFormulaRepo) Create(ctx context.Context, formula models.FeedFormula) error {
	if _, err := r.c.collection(collFeedFormulas).InsertOne(ctx, formula); err != nil {
		return fmt.Errorf("insert feed formula: %w", err)
	}
	return nil
}

func (r *feedFormulaRepo) GetByID(ctx context.Context, id string) (models.FeedFormula, error) {
	var formula models.FeedFormula
	err := r.c.collection(collFeedFormulas).FindOne(ctx, bson.M{"_id": id}).Decode(&formula)
	if err != nil {
		return models.FeedFormula{}, mapErr(err)
	}
	return formula, nil
}

func (r *feedFormulaRepo) List(ctx context.Context) ([]models.FeedFormula, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.c.collection(collFeedFormulas).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find feed formulas: %w", err)
	}
	var out []models.FeedFormula
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode feed formulas: %w", err)
	}
	return out, nil
}

func (r *feedFormulaRepo) Delete(ctx context.Context, id string) error {
	res, err := r.c.collection(collFeedFormulas).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete feed formula: %w", err)
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
