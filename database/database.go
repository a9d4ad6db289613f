// Package database manages the MongoDB connection and collection handles.
package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB bundles the client and the collections the application uses. It is
// constructed once in main and injected into the stores; there is no
// package-level connection state.
type DB struct {
	Client    *mongo.Client
	Database  *mongo.Database
	Users     *mongo.Collection
	Followers *mongo.Collection
	Messages  *mongo.Collection
}

// Connect dials MongoDB, verifies the connection with a ping and returns
// handles for the application's three collections.
func Connect(ctx context.Context, uri, name string) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(name)
	return &DB{
		Client:    client,
		Database:  db,
		Users:     db.Collection("users"),
		Followers: db.Collection("followers"),
		Messages:  db.Collection("messages"),
	}, nil
}

// EnsureIndexes creates the indexes the data model relies on: the unique
// username index that enforces global uniqueness, one follow-edge document
// per follower, and the reverse-chronological sort on messages.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	_, err := db.Users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Followers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "who_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Messages.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "author_id", Value: 1}, {Key: "pub_date", Value: -1}},
	})
	return err
}

// Disconnect closes the client connection.
func (db *DB) Disconnect(ctx context.Context) error {
	if db.Client == nil {
		return nil
	}
	return db.Client.Disconnect(ctx)
}
