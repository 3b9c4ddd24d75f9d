package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminReceiver is the literal receiver tag on every student message.
// The conversation is with "the administrator" as a singleton, not with a
// specific admin account, so the tag is not a resolvable user reference.
const AdminReceiver = "admin"

// SendMessageRequest is the body of POST /chat/send
type SendMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// Message is one entry in the messages collection. Append-only: messages
// are never edited or deleted.
type Message struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Sender    string             `bson:"sender" json:"sender"`
	Receiver  string             `bson:"receiver" json:"receiver"`
	Text      string             `bson:"text" json:"text"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

// MessageView is a Message with the sender's display name resolved,
// as returned by the conversation listing.
type MessageView struct {
	Message
	SenderName string `json:"senderName"`
}
