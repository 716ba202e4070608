package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
)

type breedRepo struct{ c *Client }

func (r *breedRepo) Upsert(ctx context.Context, breed models.BreedParameters) error {
	_, err := r.c.collection(collBreeds).ReplaceOne(ctx,
		bson.M{"_id": breed.ID}, breed, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert breed: %w", err)
	}
	return nil
}

func (r *breedRepo) GetByID(ctx context.Context, id string) (models.BreedParameters, error) {
	var breed models.BreedParameters
	err := r.c.collection(collBreeds).FindOne(ctx, bson.M{"_id": id}).Decode(&breed)
	if err != nil {
		return models.BreedParameters{}, mapErr(err)
	}
	return breed, nil
}

func (r *breedRepo) List(ctx context.Context) ([]models.BreedParameters, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.c.collection(collBreeds).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find breeds: %w", err)
	}
	var out []models.BreedParameters
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode breeds: %w", err)
	}
	return out, nil
}

type vaccinePresetRepo struct{ c *Client }

func (r *vaccinePresetRepo) Upsert(ctx context.Context, preset models.VaccinePreset) error {
	_, err := r.c.collection(collVaccinePresets).ReplaceOne(ctx,
		bson.M{"_id": preset.ID}, preset, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert vaccine preset: %w", err)
	}
	return nil
}

func (r *vaccinePresetRepo) GetByID(ctx context.Context, id string) (models.VaccinePreset, error) {
	var preset models.VaccinePreset
	err := r.c.collection(collVaccinePresets).FindOne(ctx, bson.M{"_id": id}).Decode(&preset)
	if err != nil {
		return models.VaccinePreset{}, mapErr(err)
	}
	return preset, nil
}

func (r *vaccinePresetRepo) List(ctx context.Context) ([]models.VaccinePreset, error) {
	opts := options.Find().SetSort(bson.D{{Key: "age_in_days_to_apply", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.c.collection(collVaccinePresets).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find vaccine presets: %w", err)
	}
	var out []models.VaccinePreset
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode vaccine presets: %w", err)
	}
	return out, nil
}

type weighingPresetRepo struct{ c *Client }

func (r *weighingPresetRepo) ReplaceForBreed(ctx context.Context, breedID string, checkpoints []models.WeighingCheckpoint) error {
	coll := r.c.collection(collWeighingPresets)
	if _, err := coll.DeleteMany(ctx, bson.M{"breed_id": breedID}); err != nil {
		return fmt.Errorf("clear weighing presets: %w", err)
	}
	if len(checkpoints) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(checkpoints))
	for _, cp := range checkpoints {
		cp.BreedID = breedID
		docs = append(docs, cp)
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert weighing presets: %w", err)
	}
	return nil
}

func (r *weighingPresetRepo) ListByBreed(ctx context.Context, breedID string) ([]models.WeighingCheckpoint, error) {
	opts := options.Find().SetSort(bson.D{{Key: "week", Value: 1}})
	cursor, err := r.c.collection(collWeighingPresets).Find(ctx, bson.M{"breed_id": breedID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find weighing presets: %w", err)
	}
	var out []models.WeighingCheckpoint
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode weighing presets: %w", err)
	}
	return out, nil
}

type supplierRepo struct{ c *Client }

func (r *supplierRepo) Create(ctx context.Context, supplier models.Supplier) error {
	if _, err := r.c.collection(collSuppliers).InsertOne(ctx, supplier); err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

func (r *supplierRepo) GetByID(ctx context.Context, id string) (models.Supplier, error) {
	var supplier models.Supplier
	err := r.c.collection(collSuppliers).FindOne(ctx, bson.M{"_id": id}).Decode(&supplier)
	if err != nil {
		return models.Supplier{}, mapErr(err)
	}
	return supplier, nil
}

func (r *supplierRepo) List(ctx context.Context) ([]models.Supplier, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.c.collection(collSuppliers).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find suppliers: %w", err)
	}
	var out []models.Supplier
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode suppliers: %w", err)
	}
	return out, nil
}

func (r *supplierRepo) Delete(ctx context.Context, id string) error {
	res, err := r.c.collection(collSuppliers).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
