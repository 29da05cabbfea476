package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/civictwin/civictwin-api/schema"
)

// SaveCoefficient stores one calibrated set of stress weights.
func (m *mongoDB) SaveCoefficient(record schema.CoefficientRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CoefficientCollection)
	_, err := c.InsertOne(ctx, record)
	return err
}

// LatestCoefficient returns the most recently calibrated stress weights, or
// nil if the trainer has never run.
func (m *mongoDB) LatestCoefficient() (*schema.StressCoefficient, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CoefficientCollection)

	var record schema.CoefficientRecord
	err := c.FindOne(ctx, bson.M{}, options.FindOne().
		SetSort(bson.D{{Key: "ts", Value: -1}})).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &record.Coefficient, nil
}
