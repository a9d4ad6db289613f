package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"chirp/apperror"
	"chirp/database"
	"chirp/models"
)

// Messages is the MongoDB-backed MessageStore.
type Messages struct {
	coll *mongo.Collection
}

func NewMessages(db *database.DB) *Messages {
	return &Messages{coll: db.Messages}
}

func (s *Messages) Post(ctx context.Context, author *models.User, text string) (primitive.ObjectID, error) {
	if err := ValidateMessageText(text); err != nil {
		return primitive.NilObjectID, err
	}

	msg := models.Message{
		ID:       primitive.NewObjectID(),
		AuthorID: author.ID,
		Username: author.Username,
		Email:    author.Email,
		Text:     text,
		PubDate:  time.Now().UTC(),
	}
	if _, err := s.coll.InsertOne(ctx, msg); err != nil {
		return primitive.NilObjectID, apperror.NewDatabase("message insert failed", err)
	}
	return msg.ID, nil
}

func (s *Messages) ByAuthor(ctx context.Context, author primitive.ObjectID) ([]models.Message, error) {
	return s.find(ctx, bson.M{"author_id": author})
}

func (s *Messages) ByAuthors(ctx context.Context, authors []primitive.ObjectID) ([]models.Message, error) {
	return s.find(ctx, bson.M{"author_id": bson.M{"$in": authors}})
}

func (s *Messages) All(ctx context.Context) ([]models.Message, error) {
	return s.find(ctx, bson.M{})
}

func (s *Messages) find(ctx context.Context, filter bson.M) ([]models.Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "pub_date", Value: -1}})
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperror.NewDatabase("message query failed", err)
	}
	defer cursor.Close(ctx)

	var msgs []models.Message
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, apperror.NewDatabase("message decode failed", err)
	}
	return msgs, nil
}
