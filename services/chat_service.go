package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"campus-backend/apperror"
	"campus-backend/models"
	"campus-backend/repository"
)

type ChatService struct {
	messages repository.MessageStore
	users    repository.UserStore
	log      *logrus.Logger
}

func NewChatService(messages repository.MessageStore, users repository.UserStore, log *logrus.Logger) *ChatService {
	return &ChatService{messages: messages, users: users, log: log}
}

// Send appends a message from the caller to the administrator. The
// receiver is the literal "admin" tag, not a user reference, so there is
// no recipient existence check.
func (s *ChatService) Send(ctx context.Context, senderID, text string) (*models.Message, error) {
	msg := models.Message{
		Sender:    senderID,
		Receiver:  models.AdminReceiver,
		Text:      text,
		Timestamp: time.Now(),
	}

	if err := s.messages.Insert(ctx, &msg); err != nil {
		s.log.Error("Error saving message: ", err)
		return nil, err
	}

	return &msg, nil
}

// ListConversation returns the caller's conversation in chronological
// order, with each sender's display name resolved from the users
// collection.
//
// The receiver branch matches by literal comparison against the stored
// "admin" tag, so it only ever fires for a caller whose id equals that
// string. An admin's real ObjectID never does; admins only see messages
// they sent themselves.
func (s *ChatService) ListConversation(ctx context.Context, callerID string) ([]models.MessageView, error) {
	messages, err := s.messages.FindConversation(ctx, callerID)
	if err != nil {
		s.log.Error("Error fetching conversation: ", err)
		return nil, err
	}

	names := make(map[string]string)
	views := make([]models.MessageView, 0, len(messages))
	for _, msg := range messages {
		name, ok := names[msg.Sender]
		if !ok {
			sender, err := s.users.FindByID(ctx, msg.Sender)
			switch {
			case err == nil:
				name = sender.FullName
			case errors.Is(err, apperror.ErrNotFound):
				name = ""
			default:
				s.log.Error("Error resolving sender name: ", err)
				return nil, err
			}
			names[msg.Sender] = name
		}
		views = append(views, models.MessageView{Message: msg, SenderName: name})
	}

	return views, nil
}
