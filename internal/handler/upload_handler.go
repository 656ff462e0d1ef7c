package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/KlorPe000/kubenko-production-studio/internal/models"
	"github.com/KlorPe000/kubenko-production-studio/internal/service"
)

type UploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}

// UploadMedia приймає зображення для портфоліо полем "file" і повертає
// публічний URL з об'єктного сховища
func (h *Handlers) UploadMedia(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Файл занадто великий. Максимальний розмір файлу: 10МБ", http.StatusBadRequest)
		return
	}

	part, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, "Файл не передано", http.StatusBadRequest)
		return
	}
	defer part.Close()

	data, err := io.ReadAll(part)
	if err != nil {
		log.Printf("Помилка при читанні файлу %q: %v", header.Filename, err)
		WriteError(w, "Помилка сервера", http.StatusInternalServerError)
		return
	}

	url, err := h.MediaService.UploadImage(r.Context(), models.UploadedFile{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		if errors.Is(err, service.ErrStorageDisabled) {
			WriteError(w, "Сховище файлів не налаштоване", http.StatusServiceUnavailable)
			return
		}
		if errors.Is(err, service.ErrNotImage) {
			WriteError(w, "Дозволені лише зображення (JPEG, PNG, WebP, GIF)", http.StatusBadRequest)
			return
		}
		log.Printf("Помилка при завантаженні файлу %q: %v", header.Filename, err)
		WriteError(w, "Помилка сервера", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, UploadResponse{Success: true, URL: url}, http.StatusOK)
}
