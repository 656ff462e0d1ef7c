package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/KlorPe000/kubenko-production-studio/internal/config"
)

// Storage - об'єктне сховище медіафайлів портфоліо
type Storage interface {
	UploadMedia(ctx context.Context, fileName, contentType string, data []byte) (string, error)
	DeleteMedia(ctx context.Context, objectName string) error
}

type MinIOClient struct {
	client *minio.Client
	cfg    config.MinIO
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("помилка ініціалізації MinIO: %w", err)
	}

	return &MinIOClient{client: client, cfg: cfg.MinIO}, nil
}

// UploadMedia кладе файл у бакет портфоліо та повертає публічний URL
func (m *MinIOClient) UploadMedia(ctx context.Context, fileName, contentType string, data []byte) (string, error) {
	fileExt := strings.ToLower(filepath.Ext(fileName))
	if fileExt == "" {
		fileExt = ".jpg"
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	now := time.Now()
	objectName := fmt.Sprintf("portfolio/%d/%02d/%s%s",
		now.Year(),
		now.Month(),
		uuid.New().String(),
		fileExt)

	_, err := m.client.PutObject(ctx, m.cfg.BucketName, objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", fmt.Errorf("помилка завантаження в MinIO: %w", err)
	}

	publicBase := m.cfg.PublicURL
	if publicBase == "" {
		scheme := "http"
		if m.cfg.UseSSL {
			scheme = "https"
		}
		publicBase = fmt.Sprintf("%s://%s", scheme, m.cfg.Endpoint)
	}

	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(publicBase, "/"), m.cfg.BucketName, objectName), nil
}

func (m *MinIOClient) DeleteMedia(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.cfg.BucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("помилка видалення з MinIO: %w", err)
	}
	return nil
}
