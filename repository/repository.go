// Package repository defines the store interfaces the services depend on,
// plus their MongoDB implementations. Services never touch collections
// directly; tests substitute in-memory fakes for these interfaces.
package repository

import (
	"context"

	"campus-backend/models"
)

type UserStore interface {
	// Insert persists a new user. A duplicate phone number surfaces as
	// apperror.ErrConflict, backed by the unique index on users.phone.
	Insert(ctx context.Context, user *models.User) error
	// FindByPhone returns apperror.ErrNotFound when no user has the phone.
	FindByPhone(ctx context.Context, phone string) (*models.User, error)
	// FindByID returns apperror.ErrNotFound when the id resolves to nothing.
	FindByID(ctx context.Context, id string) (*models.User, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}

type MessageStore interface {
	Insert(ctx context.Context, msg *models.Message) error
	// FindConversation returns every message where participant is the
	// sender or the receiver, oldest first.
	FindConversation(ctx context.Context, participant string) ([]models.Message, error)
}

type ImageStore interface {
	Insert(ctx context.Context, img *models.Image) error
	// FindByOwner returns the owner's images, most recent first.
	FindByOwner(ctx context.Context, owner string) ([]models.Image, error)
}
