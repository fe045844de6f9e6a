// internal/services/storage_service.go
package services

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"

	"github.com/digibay/digibay-backend/internal/apperrors"
	"github.com/digibay/digibay-backend/internal/config"
)

// StorageService stores uploaded assets and hands back stable path strings.
// With AWS credentials configured it writes to S3, otherwise to the local
// uploads directory served under the uploads prefix.
type StorageService struct {
	s3Client *s3.S3
	cfg      *config.Config
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	if cfg.AWS.AccessKeyID == "" {
		if err := os.MkdirAll(cfg.Uploads.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory: %w", err)
		}
		return &StorageService{cfg: cfg}, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWS.AccessKeyID,
			cfg.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &StorageService{
		s3Client: s3.New(sess),
		cfg:      cfg,
	}, nil
}

// Save persists one multipart file and returns the public path it will be
// served from.
func (s *StorageService) Save(header *multipart.FileHeader) (string, error) {
	if header == nil {
		return "", apperrors.Validationf("missing upload")
	}

	if s.cfg.Uploads.MaxSize > 0 && header.Size > s.cfg.Uploads.MaxSize {
		return "", apperrors.Validationf("file size %d exceeds maximum %d bytes", header.Size, s.cfg.Uploads.MaxSize)
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}

	filename := s.generateFileName(header.Filename)

	if s.s3Client != nil {
		return s.saveToS3(content, filename, header.Header.Get("Content-Type"))
	}

	return s.saveToLocal(content, filename)
}

func (s *StorageService) saveToLocal(content []byte, filename string) (string, error) {
	path := filepath.Join(s.cfg.Uploads.Dir, filename)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return s.cfg.Uploads.PublicURL + "/" + filename, nil
}

func (s *StorageService) saveToS3(content []byte, key, contentType string) (string, error) {
	_, err := s.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.AWS.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(content),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(content))),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
		s.cfg.AWS.S3Bucket, s.cfg.AWS.Region, key), nil
}

func (s *StorageService) generateFileName(originalName string) string {
	ext := filepath.Ext(originalName)
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s_%s%s", timestamp, uuid.New().String()[:8], ext)
}
