package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/KlorPe000/kubenko-production-studio/internal/validation"
)

// ErrorResponse - стандартна відповідь з помилкою
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ValidationErrorResponse - відповідь з переліком порушень по полях
type ValidationErrorResponse struct {
	Success bool                        `json:"success"`
	Message string                      `json:"message"`
	Errors  []validation.FieldViolation `json:"errors"`
}

// WriteError - універсальна функція для відправки помилок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Success: false, Message: message})
}

// WriteValidationError віддає 400 з повним переліком порушень
func WriteValidationError(w http.ResponseWriter, message string, vErr *validation.ValidationError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(ValidationErrorResponse{
		Success: false,
		Message: message,
		Errors:  vErr.Violations,
	})
}

// WriteSuccess - функція для успішних відповідей
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}
