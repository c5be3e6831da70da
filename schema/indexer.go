package schema

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const indexerLogPrefix = "mongo_indexer"

// MongoDBIndexer creates the indexes every collection relies on.
type MongoDBIndexer struct {
	connURI string
	dbName  string
}

func NewMongoDBIndexer(connURI, dbName string) *MongoDBIndexer {
	return &MongoDBIndexer{
		connURI: connURI,
		dbName:  dbName,
	}
}

func (m *MongoDBIndexer) IndexAll() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.connURI))
	if err != nil {
		return err
	}
	defer client.Disconnect(context.Background())

	db := client.Database(m.dbName)

	indexes := map[string][]mongo.IndexModel{
		LocationCollection: {
			{Keys: bson.D{{Key: "location", Value: "2dsphere"}}},
			{Keys: bson.D{{Key: "confirmed_amenities", Value: 1}}},
		},
		ReviewCollection: {
			{Keys: bson.D{{Key: "location_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
		},
		AmenityVoteCollection: {
			{Keys: bson.D{{Key: "_id.location_id", Value: 1}, {Key: "_id.amenity_id", Value: 1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			log.WithFields(log.Fields{
				"prefix":     indexerLogPrefix,
				"collection": collection,
				"error":      err,
			}).Error("create indexes")
			return err
		}
	}

	return nil
}
