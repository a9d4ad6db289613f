package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"chirp/apperror"
	"chirp/database"
	"chirp/models"
)

// Users is the MongoDB-backed UserStore.
type Users struct {
	coll *mongo.Collection
}

func NewUsers(db *database.DB) *Users {
	return &Users{coll: db.Users}
}

func (s *Users) Register(ctx context.Context, username, email, password string) (primitive.ObjectID, error) {
	if err := ValidateRegistration(username, email, password); err != nil {
		return primitive.NilObjectID, err
	}

	// Pre-check for a friendly message; the unique index is the backstop
	// against a concurrent insert slipping through.
	err := s.coll.FindOne(ctx, bson.M{"username": username}).Err()
	if err == nil {
		return primitive.NilObjectID, apperror.NewValidation("The username is already taken")
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return primitive.NilObjectID, apperror.NewDatabase("user lookup failed", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return primitive.NilObjectID, apperror.NewDatabase("password hash failed", err)
	}

	user := models.User{
		ID:       primitive.NewObjectID(),
		Username: username,
		Email:    email,
		PwHash:   string(hash),
	}
	if _, err := s.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, apperror.NewValidation("The username is already taken")
		}
		return primitive.NilObjectID, apperror.NewDatabase("user insert failed", err)
	}
	return user.ID, nil
}

func (s *Users) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.NewAuth("Invalid username")
	}
	if err != nil {
		return nil, apperror.NewDatabase("user lookup failed", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PwHash), []byte(password)); err != nil {
		return nil, apperror.NewAuth("Invalid password")
	}
	return &user, nil
}

func (s *Users) ByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *Users) ByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"username": username})
}

func (s *Users) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.NewNotFound("user not found")
	}
	if err != nil {
		return nil, apperror.NewDatabase("user lookup failed", err)
	}
	return &user, nil
}
