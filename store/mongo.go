package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/civictwin/civictwin-api/schema"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
)

// MongoStore - interface for mongodb operations
type MongoStore interface {
	SnapshotStore
	CoefficientStore
	Closer
	Pinger
}

// SnapshotStore - durable history of accepted analyses
type SnapshotStore interface {
	SaveSnapshot(metrics schema.CivicMetrics, assessment schema.StressAssessment, projection schema.TrendProjection) (string, error)
	ListSnapshots(limit int64) ([]schema.Snapshot, error)
}

// CoefficientStore - calibrated stress weights produced by the trainer
type CoefficientStore interface {
	SaveCoefficient(record schema.CoefficientRecord) error
	LatestCoefficient() (*schema.StressCoefficient, error)
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// Ping - ping mongo db
func (m *mongoDB) Ping() error {
	return m.client.Ping(context.Background(), nil)
}

// Close - close mongo db connections
func (m *mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// NewMongoStore - return mongo db operations
func NewMongoStore(client *mongo.Client, database string) MongoStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}
