package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/civictwin/civictwin-api/store"
)

// BackgroundManager runs the civictwin background jobs. The only registered
// task today is the offline stress-model trainer.
type BackgroundManager struct {
	store store.MongoStore

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(mongoClient *mongo.Client, taskServer *machinery.Server) *BackgroundManager {
	return &BackgroundManager{
		store: store.NewMongoStore(
			mongoClient,
			viper.GetString("mongo.database")),
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("civictwin-worker", 5)
	return m.worker.Launch()
}
