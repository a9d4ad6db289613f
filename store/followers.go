package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"chirp/apperror"
	"chirp/database"
	"chirp/models"
)

// Followers is the MongoDB-backed FollowStore. The whole followed-set of a
// user lives in one document, updated in place. $addToSet keeps repeated
// follows idempotent. The read-modify-write is Mongo's single-document
// update, so a single follow/unfollow is atomic, but interleaved calls from
// the same follower are not linearized beyond that.
type Followers struct {
	coll *mongo.Collection
}

func NewFollowers(db *database.DB) *Followers {
	return &Followers{coll: db.Followers}
}

func (s *Followers) Follow(ctx context.Context, who, whom primitive.ObjectID) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"who_id": who},
		bson.M{"$addToSet": bson.M{"whom_id": whom}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return apperror.NewDatabase("follow update failed", err)
	}
	return nil
}

func (s *Followers) Unfollow(ctx context.Context, who, whom primitive.ObjectID) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"who_id": who},
		bson.M{"$pull": bson.M{"whom_id": whom}},
	)
	if err != nil {
		return apperror.NewDatabase("unfollow update failed", err)
	}
	return nil
}

func (s *Followers) IsFollowing(ctx context.Context, who, whom primitive.ObjectID) (bool, error) {
	err := s.coll.FindOne(ctx, bson.M{"who_id": who, "whom_id": whom}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, apperror.NewDatabase("follow lookup failed", err)
	}
	return true, nil
}

func (s *Followers) FollowedIDs(ctx context.Context, who primitive.ObjectID) ([]primitive.ObjectID, error) {
	var edge models.Follower
	err := s.coll.FindOne(ctx, bson.M{"who_id": who}).Decode(&edge)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.NewDatabase("follow lookup failed", err)
	}
	return edge.WhomIDs, nil
}
