package services

import (
	"context"
	"errors"
	"io"
	"sort"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"campus-backend/apperror"
	"campus-backend/models"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeUserStore struct {
	users []*models.User
}

func (f *fakeUserStore) Insert(_ context.Context, user *models.User) error {
	for _, existing := range f.users {
		if existing.Phone == user.Phone {
			return apperror.Conflict("phone number " + user.Phone + " is already registered")
		}
	}
	user.ID = primitive.NewObjectID()
	stored := *user
	f.users = append(f.users, &stored)
	return nil
}

func (f *fakeUserStore) FindByPhone(_ context.Context, phone string) (*models.User, error) {
	for _, user := range f.users {
		if user.Phone == phone {
			found := *user
			return &found, nil
		}
	}
	return nil, apperror.NotFound("no user found with phone " + phone)
}

func (f *fakeUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	for _, user := range f.users {
		if user.ID.Hex() == id {
			found := *user
			return &found, nil
		}
	}
	return nil, apperror.NotFound("no user found with id " + id)
}

func (f *fakeUserStore) CountByRole(_ context.Context, role string) (int64, error) {
	var count int64
	for _, user := range f.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

type fakeMessageStore struct {
	messages []models.Message
}

func (f *fakeMessageStore) Insert(_ context.Context, msg *models.Message) error {
	msg.ID = primitive.NewObjectID()
	f.messages = append(f.messages, *msg)
	return nil
}

func (f *fakeMessageStore) FindConversation(_ context.Context, participant string) ([]models.Message, error) {
	var result []models.Message
	for _, msg := range f.messages {
		if msg.Sender == participant || msg.Receiver == participant {
			result = append(result, msg)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamp.Before(result[j].Timestamp)
	})
	return result, nil
}

type fakeImageStore struct {
	images []models.Image
}

func (f *fakeImageStore) Insert(_ context.Context, img *models.Image) error {
	img.ID = primitive.NewObjectID()
	f.images = append(f.images, *img)
	return nil
}

func (f *fakeImageStore) FindByOwner(_ context.Context, owner string) ([]models.Image, error) {
	var result []models.Image
	for _, img := range f.images {
		if img.UserID == owner {
			result = append(result, img)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].SentAt.After(result[j].SentAt)
	})
	return result, nil
}

type fakeUploader struct {
	keys         []string
	contentTypes []string
	failWith     error
}

func (f *fakeUploader) Upload(_ context.Context, key string, _ []byte, contentType string) (string, error) {
	if f.failWith != nil {
		return "", f.failWith
	}
	f.keys = append(f.keys, key)
	f.contentTypes = append(f.contentTypes, contentType)
	return "https://media.test/" + key, nil
}

var errUploadFailed = errors.New("media host unavailable")
