package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/civictwin/civictwin-api/schema"
)

// SaveSnapshot persists one accepted analysis and returns the new record id.
func (m *mongoDB) SaveSnapshot(metrics schema.CivicMetrics, assessment schema.StressAssessment, projection schema.TrendProjection) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	snapshot := schema.Snapshot{
		CivicMetrics: metrics,
		CivicStress:  assessment.CivicStress,
		AlertLevel:   assessment.AlertLevel,
		Predictions:  projection,
		Timestamp:    time.Now().Unix(),
	}

	c := m.client.Database(m.database).Collection(schema.CitySnapshotCollection)
	result, err := c.InsertOne(ctx, snapshot)
	if err != nil {
		return "", err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return "", nil
}

// ListSnapshots returns up to limit snapshots, newest first.
func (m *mongoDB) ListSnapshots(limit int64) ([]schema.Snapshot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CitySnapshotCollection)
	cur, err := c.Find(ctx, bson.M{}, options.Find().
		SetSort(bson.D{{Key: "ts", Value: -1}}).
		SetLimit(limit))
	if err != nil {
		return nil, err
	}

	snapshots := make([]schema.Snapshot, 0)
	for cur.Next(ctx) {
		var s schema.Snapshot
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}

	return snapshots, nil
}
