package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"campus-backend/models"
)

type MongoImageStore struct {
	collection *mongo.Collection
}

func NewMongoImageStore(db *mongo.Database) *MongoImageStore {
	return &MongoImageStore{collection: db.Collection("images")}
}

func (s *MongoImageStore) Insert(ctx context.Context, img *models.Image) error {
	res, err := s.collection.InsertOne(ctx, img)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		img.ID = id
	}
	return nil
}

func (s *MongoImageStore) FindByOwner(ctx context.Context, owner string) ([]models.Image, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sentAt", Value: -1}})

	cursor, err := s.collection.Find(ctx, bson.M{"user": owner}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var images []models.Image
	if err := cursor.All(ctx, &images); err != nil {
		return nil, err
	}
	return images, nil
}
