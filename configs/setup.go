package configs

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DatabaseName = "old_phone_deals"

var (
	connectOnce sync.Once
	client      *mongo.Client
)

// DB returns the shared client, created on first use. The driver defers all
// I/O until the first operation; startup verifies connectivity through
// EnsureIndexes.
func DB() *mongo.Client {
	connectOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		c, err := mongo.Connect(ctx, options.Client().ApplyURI(EnvMongoURI()))
		if err != nil {
			log.Fatal(err)
		}
		client = c
	})
	return client
}

func GetCollection(collectionName string) *mongo.Collection {
	return DB().Database(DatabaseName).Collection(collectionName)
}

// EnsureIndexes creates the indexes the schemas rely on: the unique
// case-insensitive email constraint, the token lookup index, and the TTL
// index that expires verification tokens without any application reaper.
func EnsureIndexes(ctx context.Context) error {
	users := GetCollection("users")
	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetCollation(&options.Collation{Locale: "en", Strength: 2}),
	})
	if err != nil {
		return err
	}

	tokens := GetCollection("verification_tokens")
	_, err = tokens.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "token", Value: 1}}},
		{
			Keys:    bson.D{{Key: "expires", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	})
	return err
}
