package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"

	"campus-backend/models"
	"campus-backend/repository"
)

// MediaUploader stores a binary on the external media host and returns a
// durable URL for it.
type MediaUploader interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

// S3Uploader uploads objects to the configured bucket and builds their
// public URL.
type S3Uploader struct {
	uploader *manager.Uploader
	bucket   string
	region   string
}

func NewS3Uploader(cfg aws.Config, bucket, region string) *S3Uploader {
	client := s3.NewFromConfig(cfg)
	return &S3Uploader{
		uploader: manager.NewUploader(client),
		bucket:   bucket,
		region:   region,
	}
}

func (u *S3Uploader) Upload(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	}

	_, err := u.uploader.Upload(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}

type ImageService struct {
	images   repository.ImageStore
	users    repository.UserStore
	uploader MediaUploader
	log      *logrus.Logger
}

func NewImageService(images repository.ImageStore, users repository.UserStore, uploader MediaUploader, log *logrus.Logger) *ImageService {
	return &ImageService{images: images, users: users, uploader: uploader, log: log}
}

// SendImage resolves the target phone to a user, pushes the binary to the
// media host as PNG, then records the Image. The record is only written
// after the upload succeeds, so a failed upload leaves nothing behind.
func (s *ImageService) SendImage(ctx context.Context, phone string, data []byte) (*models.Image, error) {
	user, err := s.users.FindByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("images/%s-%d.png", phone, time.Now().UnixMilli())
	url, err := s.uploader.Upload(ctx, key, data, "image/png")
	if err != nil {
		s.log.Error("Error uploading image to media host: ", err)
		return nil, err
	}

	img := models.Image{
		UserID:    user.ID.Hex(),
		ImageName: phone,
		URL:       url,
		SentAt:    time.Now(),
	}

	if err := s.images.Insert(ctx, &img); err != nil {
		s.log.Error("Error saving image record: ", err)
		return nil, err
	}

	return &img, nil
}

// ListOwned returns the caller's received images, most recent first
func (s *ImageService) ListOwned(ctx context.Context, ownerID string) ([]models.Image, error) {
	images, err := s.images.FindByOwner(ctx, ownerID)
	if err != nil {
		s.log.Error("Error fetching images: ", err)
		return nil, err
	}
	return images, nil
}
