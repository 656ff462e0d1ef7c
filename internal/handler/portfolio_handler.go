package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/KlorPe000/kubenko-production-studio/internal/repository"
	"github.com/KlorPe000/kubenko-production-studio/internal/validation"
)

// GetPortfolio - публічний список: лише опубліковані роботи у заданому порядку
func (h *Handlers) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	items, err := h.PortfolioService.GetPublishedItems(r.Context())
	if err != nil {
		log.Printf("Помилка при отриманні портфоліо: %v", err)
		WriteError(w, "Помилка сервера", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, items, http.StatusOK)
}

// GetAdminPortfolio віддає всі роботи, включно з неопублікованими
func (h *Handlers) GetAdminPortfolio(w http.ResponseWriter, r *http.Request) {
	items, err := h.PortfolioService.GetItems(r.Context())
	if err != nil {
		log.Printf("Помилка при отриманні портфоліо для адміна: %v", err)
		WriteError(w, "Помилка сервера", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, items, http.StatusOK)
}

func (h *Handlers) CreatePortfolioItem(w http.ResponseWriter, r *http.Request) {
	var req repository.CreatePortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Невірний формат запиту", http.StatusBadRequest)
		return
	}

	item, err := h.PortfolioService.CreateItem(r.Context(), req)
	if err != nil {
		var vErr *validation.ValidationError
		if errors.As(err, &vErr) {
			WriteValidationError(w, "Невірні дані", vErr)
			return
		}
		log.Printf("Помилка при створенні елемента портфоліо: %v", err)
		WriteError(w, "Помилка сервера", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, item, http.StatusOK)
}

func (h *Handlers) UpdatePortfolioItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		WriteError(w, "Невірний ідентифікатор", http.StatusBadRequest)
		return
	}

	var req repository.UpdatePortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Невірний формат запиту", http.StatusBadRequest)
		return
	}

	item, err := h.PortfolioService.UpdateItem(r.Context(), id, req)
	if err != nil {
		var vErr *validation.ValidationError
		if errors.As(err, &vErr) {
			WriteValidationError(w, "Невірні дані", vErr)
			return
		}
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Елемент портфоліо не знайдено", http.StatusNotFound)
			return
		}
		log.Printf("Помилка при оновленні елемента портфоліо %d: %v", id, err)
		WriteError(w, "Помилка сервера", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, item, http.StatusOK)
}

func (h *Handlers) DeletePortfolioItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		WriteError(w, "Невірний ідентифікатор", http.StatusBadRequest)
		return
	}

	// видалення ідемпотентне: повторний виклик теж успішний
	if err := h.PortfolioService.DeleteItem(r.Context(), id); err != nil {
		log.Printf("Помилка при видаленні елемента портфоліо %d: %v", id, err)
		WriteError(w, "Помилка сервера", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, map[string]bool{"success": true}, http.StatusOK)
}
