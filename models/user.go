package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a registered account. Documents live in the "users" collection,
// which carries a unique index on username.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Email    string             `bson:"email"`
	PwHash   string             `bson:"pw_hash"`
}
