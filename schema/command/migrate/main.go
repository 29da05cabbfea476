package main

import (
	"context"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/civictwin/civictwin-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("civictwin")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS civictwin`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO civictwin").Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.CitizenReport{},
	).Error; err != nil {
		panic(err)
	}

	if err := migrateMongo(); err != nil {
		panic(err)
	}
}

// migrateMongo indexes the snapshot collection on its timestamp, which every
// history query sorts by.
func migrateMongo() error {
	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(1)
	client, err := mongo.NewClient(opts)
	if err != nil {
		return err
	}
	if err := client.Connect(ctx); err != nil {
		return err
	}

	db := client.Database(viper.GetString("mongo.database"))

	if _, err := db.Collection(schema.CitySnapshotCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "ts", Value: -1}},
	}); err != nil {
		return err
	}

	_, err = db.Collection(schema.CoefficientCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "ts", Value: -1}},
	})
	return err
}
