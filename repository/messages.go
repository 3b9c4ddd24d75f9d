package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"campus-backend/models"
)

type MongoMessageStore struct {
	collection *mongo.Collection
}

func NewMongoMessageStore(db *mongo.Database) *MongoMessageStore {
	return &MongoMessageStore{collection: db.Collection("messages")}
}

func (s *MongoMessageStore) Insert(ctx context.Context, msg *models.Message) error {
	res, err := s.collection.InsertOne(ctx, msg)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		msg.ID = id
	}
	return nil
}

func (s *MongoMessageStore) FindConversation(ctx context.Context, participant string) ([]models.Message, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"sender": participant},
		bson.M{"receiver": participant},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
