// Package mongodb implements the repository interfaces on MongoDB, one
// collection per record kind.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/repository"
)

// Collection names.
const (
	collBatches            = "batches"
	collBreeds             = "breed_parameters"
	collVaccinePresets     = "vaccine_presets"
	collVaccinationRecords = "vaccination_records"
	collWeighingPresets    = "weighing_presets"
	collWeighingRecords    = "weighing_records"
	collEggRecords         = "egg_records"
	collFeedInputs         = "feed_inputs"
	collFeedFormulas       = "feed_formulas"
	collSuppliers          = "suppliers"
	collAlerts             = "alerts"
)

// Client wraps the MongoDB connection shared by all repositories.
type Client struct {
	client *mongo.Client
	dbName string
}

// New connects to MongoDB and verifies the connection with a ping.
func New(ctx context.Context, uri, dbName string) (*Client, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Client{client: client, dbName: dbName}, nil
}

// Repositories builds the repository aggregate backed by this connection.
func (c *Client) Repositories() *repository.Repositories {
	return &repository.Repositories{
		Batches:            &batchRepo{c},
		Breeds:             &breedRepo{c},
		VaccinePresets:     &vaccinePresetRepo{c},
		VaccinationRecords: &vaccinationRecordRepo{c},
		WeighingPresets:    &weighingPresetRepo{c},
		WeighingRecords:    &weighingRecordRepo{c},
		EggRecords:         &eggRecordRepo{c},
		FeedInputs:         &feedInputRepo{c},
		FeedFormulas:       &feedFormulaRepo{c},
		Suppliers:          &supplierRepo{c},
		Alerts:             &alertRepo{c},
	}
}

// Close disconnects from MongoDB.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

func (c *Client) collection(name string) *mongo.Collection {
	return c.client.Database(c.dbName).Collection(name)
}

// mapErr converts driver not-found errors into the domain sentinel.
func mapErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.ErrNotFound
	}
	return err
}
