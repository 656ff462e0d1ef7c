package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/KlorPe000/kubenko-production-studio/internal/models"
	"github.com/KlorPe000/kubenko-production-studio/internal/repository"
	"github.com/KlorPe000/kubenko-production-studio/internal/validation"
)

type SubmitContactResponse struct {
	Success bool `json:"success"`
	ID      int  `json:"id"`
}

// SubmitContact приймає заявку з форми зв'язку: multipart з файлами або чистий JSON
func (h *Handlers) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req repository.CreateSubmissionRequest
	var files []models.UploadedFile
	totalPrice := 0

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		// обмежуємо розмір тіла, файли читаються в пам'ять
		r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
		if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
			WriteError(w, "Файл занадто великий. Максимальний розмір файлу: 10МБ", http.StatusBadRequest)
			return
		}

		// services приходить JSON-рядком всередині форми
		services, err := validation.ParseServicesField(r.FormValue("services"))
		if err != nil {
			var vErr *validation.ValidationError
			if errors.As(err, &vErr) {
				WriteValidationError(w, "Невірні дані форми", vErr)
				return
			}
			WriteError(w, "Невірний формат запиту", http.StatusBadRequest)
			return
		}

		// ціна з клієнта довіряється як є: лише для показу в повідомленні
		totalPrice, _ = strconv.Atoi(r.FormValue("totalPrice"))

		files = readUploadedFiles(r)
		attachments := make([]string, 0, len(files))
		for _, file := range files {
			attachments = append(attachments, file.FileName)
		}

		req = repository.CreateSubmissionRequest{
			BrideName:      r.FormValue("brideName"),
			GroomName:      r.FormValue("groomName"),
			Phone:          r.FormValue("phone"),
			Email:          r.FormValue("email"),
			WeddingDate:    r.FormValue("weddingDate"),
			Location:       r.FormValue("location"),
			Services:       services,
			AdditionalInfo: r.FormValue("additionalInfo"),
			Attachments:    attachments,
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, "Невірний формат запиту", http.StatusBadRequest)
			return
		}
	}

	submission, err := h.ContactService.SubmitContact(r.Context(), req, files, totalPrice)
	if err != nil {
		var vErr *validation.ValidationError
		if errors.As(err, &vErr) {
			WriteValidationError(w, "Невірні дані форми", vErr)
			return
		}
		log.Printf("Помилка при створенні заявки: %v", err)
		WriteError(w, "Помилка сервера. Спробуйте пізніше.", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, SubmitContactResponse{Success: true, ID: submission.ID}, http.StatusOK)
}

// readUploadedFiles читає всі файли форми в пам'ять незалежно від імені поля
func readUploadedFiles(r *http.Request) []models.UploadedFile {
	if r.MultipartForm == nil {
		return nil
	}

	var files []models.UploadedFile
	for _, headers := range r.MultipartForm.File {
		for _, header := range headers {
			part, err := header.Open()
			if err != nil {
				log.Printf("Увага: не вдалося відкрити вкладення %q: %v", header.Filename, err)
				continue
			}

			data, err := io.ReadAll(part)
			part.Close()
			if err != nil {
				log.Printf("Увага: не вдалося прочитати вкладення %q: %v", header.Filename, err)
				continue
			}

			fileName := header.Filename
			if fileName == "" {
				fileName = "unnamed-file"
			}

			files = append(files, models.UploadedFile{
				FileName:    fileName,
				ContentType: header.Header.Get("Content-Type"),
				Data:        data,
			})
		}
	}

	return files
}

// GetSubmissions віддає всі заявки, найновіші першими
func (h *Handlers) GetSubmissions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	submissions, err := h.ContactService.GetSubmissions(r.Context())
	if err != nil {
		log.Printf("Помилка при отриманні заявок: %v", err)
		WriteError(w, "Помилка сервера", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, submissions, http.StatusOK)
}
