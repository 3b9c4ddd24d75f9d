package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Image records one admin-distributed picture in the images collection.
// ImageName holds the target phone number the admin addressed, not a file
// name; URL points at the media host.
type Image struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user" json:"user"`
	ImageName string             `bson:"imageName" json:"imageName"`
	URL       string             `bson:"url" json:"url"`
	SentAt    time.Time          `bson:"sentAt" json:"sentAt"`
}
