package schema

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDBIndexer builds the indexes every deployment expects to exist.
type MongoDBIndexer struct {
	connURI  string
	database string
}

func NewMongoDBIndexer(connURI, database string) *MongoDBIndexer {
	return &MongoDBIndexer{
		connURI:  connURI,
		database: database,
	}
}

func (i *MongoDBIndexer) IndexAll() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.NewClient(options.Client().ApplyURI(i.connURI))
	if err != nil {
		return err
	}
	if err := client.Connect(ctx); err != nil {
		return err
	}
	defer client.Disconnect(ctx)

	return i.IndexFormCollection(ctx, client.Database(i.database))
}

func (i *MongoDBIndexer) IndexFormCollection(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(FormCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "is_template", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "recipients.email", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "recipients.token", Value: 1}},
		},
	})
	if err != nil {
		log.WithField("prefix", "mongo").WithError(err).Error("fail to create indexes for form collection")
		return err
	}

	return nil
}
