package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"campus-backend/apperror"
	"campus-backend/models"
)

type MongoUserStore struct {
	collection *mongo.Collection
}

func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{collection: db.Collection("users")}
}

func (s *MongoUserStore) Insert(ctx context.Context, user *models.User) error {
	res, err := s.collection.InsertOne(ctx, user)
	if err != nil {
		// The unique index on phone settles registration races; the losing
		// writer gets the same conflict as a plain duplicate.
		if mongo.IsDuplicateKeyError(err) {
			return apperror.Conflict(fmt.Sprintf("phone number %s is already registered", user.Phone))
		}
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return nil
}

func (s *MongoUserStore) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"phone": phone}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.NotFound(fmt.Sprintf("no user found with phone %s", phone))
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.NotFound("no user found with id " + id)
	}

	var user models.User
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.NotFound("no user found with id " + id)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) CountByRole(ctx context.Context, role string) (int64, error) {
	return s.collection.CountDocuments(ctx, bson.M{"role": role})
}
