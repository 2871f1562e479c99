package store

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrFormNotFound       = fmt.Errorf("form not found")
	ErrRecipientNotFound  = fmt.Errorf("invalid token or email")
	ErrTokenAlreadyUsed   = fmt.Errorf("token already used")
	ErrInvalidAccessToken = fmt.Errorf("invalid access token")
	ErrEmptyRecipientList = fmt.Errorf("recipient list should not be empty")
	ErrInvalidFields      = fmt.Errorf("invalid form fields")
)

const defaultTimeout = 5 * time.Second

// MongoStore unions all collection-level operations of the service.
type MongoStore interface {
	Form
	Publish
	Submit
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// NewMongoStore returns a MongoStore backed by a mongoDB database
func NewMongoStore(client *mongo.Client, database string) MongoStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}

func wrapNotFound(err error) error {
	if err == mongo.ErrNoDocuments {
		return ErrFormNotFound
	}
	return err
}
