package service

import (
	"context"
	"errors"

	"github.com/gabriel-vasile/mimetype"

	"github.com/KlorPe000/kubenko-production-studio/internal/models"
	"github.com/KlorPe000/kubenko-production-studio/internal/storage"
)

// ErrStorageDisabled - об'єктне сховище не налаштоване
var ErrStorageDisabled = errors.New("об'єктне сховище не налаштоване")

// ErrNotImage - для портфоліо приймаються лише зображення
var ErrNotImage = errors.New("файл не є зображенням")

type MediaService interface {
	UploadImage(ctx context.Context, file models.UploadedFile) (string, error)
}

type mediaService struct {
	storage storage.Storage
}

// NewMediaService приймає nil storage: тоді завантаження вимкнене
func NewMediaService(store storage.Storage) MediaService {
	return &mediaService{storage: store}
}

// UploadImage кладе зображення у сховище та повертає публічний URL для
// використання у фото чи обкладинці портфоліо
func (s *mediaService) UploadImage(ctx context.Context, file models.UploadedFile) (string, error) {
	if s.storage == nil {
		return "", ErrStorageDisabled
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = mimetype.Detect(file.Data).String()
	}
	if !mimetype.EqualsAny(contentType,
		"image/jpeg", "image/png", "image/webp", "image/gif") {
		return "", ErrNotImage
	}

	return s.storage.UploadMedia(ctx, file.FileName, contentType, file.Data)
}
