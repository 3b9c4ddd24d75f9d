package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"campus-backend/models"
	"campus-backend/repository"
)

// Seed phone for the administrator account; the password comes from
// deployment configuration and must be rotated out-of-band.
const adminSeedPhone = "500000000"

// EnsureAdminAccount creates the administrator account on first start.
// Idempotent: when an admin already exists nothing is written.
func EnsureAdminAccount(ctx context.Context, users repository.UserStore, password string, log *logrus.Logger) error {
	count, err := users.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()
	admin := models.User{
		FullName:   "Administrator",
		Phone:      adminSeedPhone,
		University: "-",
		Major:      "-",
		Batch:      "-",
		Password:   string(hashed),
		Role:       models.RoleAdmin,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := users.Insert(ctx, &admin); err != nil {
		return err
	}

	log.WithField("phone", adminSeedPhone).Info("Administrator account seeded")
	return nil
}
