package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is a single post. Username and Email are snapshots of the author
// taken at write time, so old messages keep their attribution even if the
// account record changes later.
type Message struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	AuthorID primitive.ObjectID `bson:"author_id"`
	Username string             `bson:"username"`
	Email    string             `bson:"email"`
	Text     string             `bson:"text"`
	PubDate  time.Time          `bson:"pub_date"`
}
