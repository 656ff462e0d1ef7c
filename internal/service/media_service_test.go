package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KlorPe000/kubenko-production-studio/internal/models"
)

type fakeStorage struct {
	uploaded []string
}

func (s *fakeStorage) UploadMedia(ctx context.Context, fileName, contentType string, data []byte) (string, error) {
	s.uploaded = append(s.uploaded, fileName)
	return fmt.Sprintf("https://cdn.example.com/%s", fileName), nil
}

func (s *fakeStorage) DeleteMedia(ctx context.Context, objectName string) error {
	return nil
}

func pngBytes() []byte {
	return []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}
}

func TestMediaService_UploadImage(t *testing.T) {
	ctx := context.Background()

	t.Run("Зображення завантажується", func(t *testing.T) {
		store := &fakeStorage{}
		svc := NewMediaService(store)

		url, err := svc.UploadImage(ctx, models.UploadedFile{
			FileName:    "cover.png",
			ContentType: "image/png",
			Data:        pngBytes(),
		})
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/cover.png", url)
		assert.Equal(t, []string{"cover.png"}, store.uploaded)
	})

	t.Run("Тип визначається за вмістом, якщо не заявлений", func(t *testing.T) {
		store := &fakeStorage{}
		svc := NewMediaService(store)

		_, err := svc.UploadImage(ctx, models.UploadedFile{
			FileName: "cover",
			Data:     pngBytes(),
		})
		assert.NoError(t, err)
	})

	t.Run("Не-зображення відхиляється", func(t *testing.T) {
		store := &fakeStorage{}
		svc := NewMediaService(store)

		_, err := svc.UploadImage(ctx, models.UploadedFile{
			FileName:    "contract.pdf",
			ContentType: "application/pdf",
			Data:        []byte("%PDF-1.4"),
		})
		assert.ErrorIs(t, err, ErrNotImage)
		assert.Empty(t, store.uploaded)
	})

	t.Run("Без сховища - ErrStorageDisabled", func(t *testing.T) {
		svc := NewMediaService(nil)

		_, err := svc.UploadImage(ctx, models.UploadedFile{
			FileName:    "cover.png",
			ContentType: "image/png",
			Data:        pngBytes(),
		})
		assert.ErrorIs(t, err, ErrStorageDisabled)
	})
}
