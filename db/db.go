package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection         *mongo.Collection
	ProfilesCollection     *mongo.Collection
	PlantingsCollection    *mongo.Collection
	ActivitiesCollection   *mongo.Collection
	AchievementsCollection *mongo.Collection
	RemindersCollection    *mongo.Collection
	TipsCollection         *mongo.Collection

	Client *mongo.Client
)

// Connect dials MongoDB and wires up the package-level collections.
func Connect(ctx context.Context, uri string) error {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return err
	}
	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return err
	}

	Client = client
	database := client.Database("tanamdb")
	AchievementsCollection = database.Collection("achievements")
	ActivitiesCollection = database.Collection("activities")
	PlantingsCollection = database.Collection("plantings")
	ProfilesCollection = database.Collection("profiles")
	RemindersCollection = database.Collection("reminders")
	TipsCollection = database.Collection("tips")
	UserCollection = database.Collection("users")

	return EnsureIndexes(ctx)
}

// EnsureIndexes creates the indexes the engine relies on. The unique index on
// (userId, achievementType) is the final safety net against double-unlocks.
func EnsureIndexes(ctx context.Context) error {
	_, err := AchievementsCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "achievementType", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = ProfilesCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = UserCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	for _, coll := range []*mongo.Collection{ActivitiesCollection, PlantingsCollection, RemindersCollection} {
		if _, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "userId", Value: 1}},
		}); err != nil {
			return err
		}
	}
	return nil
}

func OptionsFindLatest(limit int64) *options.FindOptions {
	opts := options.Find()
	opts.SetSort(map[string]interface{}{"createdAt": -1})
	opts.SetLimit(limit)
	return opts
}
