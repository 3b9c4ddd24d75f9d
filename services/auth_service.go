package services

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"campus-backend/apperror"
	"campus-backend/models"
	"campus-backend/repository"
)

// Saudi mobile format: digit 5 followed by exactly 8 digits
var phonePattern = regexp.MustCompile(`^5\d{8}$`)

type AuthService struct {
	users  repository.UserStore
	tokens *TokenService
	log    *logrus.Logger
}

func NewAuthService(users repository.UserStore, tokens *TokenService, log *logrus.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log}
}

// Register validates the form, hashes the password with bcrypt and
// persists a new student account. No token is issued here; the user logs
// in separately.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) error {
	if !phonePattern.MatchString(req.Phone) {
		return apperror.Validation("phone number must start with 5 and contain exactly 9 digits")
	}

	// The lookup gives a friendly conflict message; the unique index on
	// phone is what actually guarantees uniqueness under concurrency.
	_, err := s.users.FindByPhone(ctx, req.Phone)
	if err == nil {
		return apperror.Conflict("phone number " + req.Phone + " is already registered")
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		s.log.Error("Error looking up phone at registration: ", err)
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error("Error hashing password: ", err)
		return err
	}

	now := time.Now()
	user := models.User{
		FullName:   req.FullName,
		Phone:      req.Phone,
		University: req.University,
		Major:      req.Major,
		Batch:      req.Batch,
		Password:   string(hashed),
		Role:       models.RoleStudent,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.users.Insert(ctx, &user); err != nil {
		if !errors.Is(err, apperror.ErrConflict) {
			s.log.Error("Error creating user: ", err)
		}
		return err
	}

	return nil
}

// Login verifies the credentials and issues a token. Unknown phone and
// wrong password return the identical error so accounts cannot be
// enumerated.
func (s *AuthService) Login(ctx context.Context, phone, password string) (string, *models.User, error) {
	user, err := s.users.FindByPhone(ctx, phone)
	if errors.Is(err, apperror.ErrNotFound) {
		return "", nil, apperror.InvalidCredentials()
	}
	if err != nil {
		s.log.Error("Error fetching user at login: ", err)
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperror.InvalidCredentials()
	}

	token, err := s.tokens.Generate(user.ID.Hex(), user.Role)
	if err != nil {
		s.log.Error("Error generating token: ", err)
		return "", nil, err
	}

	return token, user, nil
}
