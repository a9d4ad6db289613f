package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Follower holds the full followed-set of one user in a single document.
// The document is created lazily by an upsert on the first follow.
type Follower struct {
	ID      primitive.ObjectID   `bson:"_id,omitempty"`
	WhoID   primitive.ObjectID   `bson:"who_id"`
	WhomIDs []primitive.ObjectID `bson:"whom_id"`
}
