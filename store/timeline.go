package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"chirp/models"
)

// Timeline composes feeds from the message store and the follow graph.
type Timeline struct {
	messages MessageStore
	follows  FollowStore
}

func NewTimeline(messages MessageStore, follows FollowStore) *Timeline {
	return &Timeline{messages: messages, follows: follows}
}

// Personal returns the viewer's own messages plus those of everyone the
// viewer follows, newest first. A viewer with no follow edge gets their own
// messages only.
func (t *Timeline) Personal(ctx context.Context, viewer primitive.ObjectID) ([]models.Message, error) {
	followed, err := t.follows.FollowedIDs(ctx, viewer)
	if err != nil {
		return nil, err
	}
	return t.messages.ByAuthors(ctx, append(followed, viewer))
}

// Public returns all messages across all authors, newest first.
func (t *Timeline) Public(ctx context.Context) ([]models.Message, error) {
	return t.messages.All(ctx)
}

// User returns the profile user's messages and whether the viewer follows
// them. The flag is false for anonymous viewers and for the profile itself.
func (t *Timeline) User(ctx context.Context, profile, viewer *models.User) ([]models.Message, bool, error) {
	msgs, err := t.messages.ByAuthor(ctx, profile.ID)
	if err != nil {
		return nil, false, err
	}

	followed := false
	if viewer != nil && viewer.ID != profile.ID {
		followed, err = t.follows.IsFollowing(ctx, viewer.ID, profile.ID)
		if err != nil {
			return nil, false, err
		}
	}
	return msgs, followed, nil
}
