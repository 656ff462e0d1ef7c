package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/KlorPe000/kubenko-production-studio/internal/models"
	"github.com/KlorPe000/kubenko-production-studio/internal/service"
	"github.com/KlorPe000/kubenko-production-studio/internal/validation"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool                `json:"success"`
	Admin   models.AdminSummary `json:"admin"`
}

type CheckResponse struct {
	Authenticated bool                 `json:"authenticated"`
	Admin         *models.AdminSummary `json:"admin,omitempty"`
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Невірний формат запиту", http.StatusBadRequest)
		return
	}

	if err := h.Validate.ValidateLogin(req.Username, req.Password); err != nil {
		var vErr *validation.ValidationError
		if errors.As(err, &vErr) {
			WriteValidationError(w, "Невірні дані", vErr)
			return
		}
		WriteError(w, "Невірні дані", http.StatusBadRequest)
		return
	}

	admin, sess, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			WriteError(w, "Невірні дані для входу", http.StatusUnauthorized)
			return
		}
		log.Printf("Помилка при вході адміністратора: %v", err)
		WriteError(w, "Помилка сервера", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.Cfg.Session.CookieID,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.Cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.Cfg.Session.TTL.Seconds()),
	})

	WriteSuccess(w, LoginResponse{Success: true, Admin: admin.Summary()}, http.StatusOK)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.Cfg.Session.CookieID); err == nil {
		if err := h.AuthService.Logout(r.Context(), cookie.Value); err != nil {
			log.Printf("Помилка при знищенні сесії: %v", err)
			WriteError(w, "Помилка виходу", http.StatusInternalServerError)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.Cfg.Session.CookieID,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	WriteSuccess(w, map[string]bool{"success": true}, http.StatusOK)
}

// Check повідомляє фронтенду, чи активна адмінська сесія. Назовні ніколи не
// віддає помилку - будь-який збій стає {authenticated:false}.
func (h *Handlers) Check(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(h.Cfg.Session.CookieID)
	if err != nil {
		WriteSuccess(w, CheckResponse{Authenticated: false}, http.StatusOK)
		return
	}

	admin, err := h.AuthService.Check(r.Context(), cookie.Value)
	if err != nil {
		log.Printf("Помилка при перевірці сесії: %v", err)
		WriteSuccess(w, CheckResponse{Authenticated: false}, http.StatusOK)
		return
	}
	if admin == nil {
		WriteSuccess(w, CheckResponse{Authenticated: false}, http.StatusOK)
		return
	}

	summary := admin.Summary()
	WriteSuccess(w, CheckResponse{Authenticated: true, Admin: &summary}, http.StatusOK)
}
