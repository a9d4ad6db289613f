// Package store implements persistence for users, follow edges and messages
// on top of MongoDB, plus the timeline composition over them.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"chirp/models"
)

// UserStore persists credentials and resolves identities.
type UserStore interface {
	// Register creates a new account. It validates the input, enforces
	// username uniqueness and stores a bcrypt hash, never the plaintext.
	Register(ctx context.Context, username, email, password string) (primitive.ObjectID, error)
	// Authenticate checks a username/password pair and returns the user.
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	ByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	ByUsername(ctx context.Context, username string) (*models.User, error)
}

// FollowStore persists the directed follow graph. One document per follower
// holds the whole followed-set; follow is an idempotent set add.
type FollowStore interface {
	Follow(ctx context.Context, who, whom primitive.ObjectID) error
	Unfollow(ctx context.Context, who, whom primitive.ObjectID) error
	IsFollowing(ctx context.Context, who, whom primitive.ObjectID) (bool, error)
	// FollowedIDs returns the followed-set, empty when no edge document exists.
	FollowedIDs(ctx context.Context, who primitive.ObjectID) ([]primitive.ObjectID, error)
}

// MessageStore persists posts. All reads are ordered descending by pub_date.
type MessageStore interface {
	// Post records a message, snapshotting the author's current username and
	// email onto the document.
	Post(ctx context.Context, author *models.User, text string) (primitive.ObjectID, error)
	ByAuthor(ctx context.Context, author primitive.ObjectID) ([]models.Message, error)
	ByAuthors(ctx context.Context, authors []primitive.ObjectID) ([]models.Message, error)
	All(ctx context.Context) ([]models.Message, error)
}
