package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/KlorPe000/kubenko-production-studio/internal/models"
)

type contextKey string

const adminKey contextKey = "admin"

// RequireAdmin пускає далі лише запити з активною адмінською сесією
func (h *Handlers) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(h.Cfg.Session.CookieID)
		if err != nil {
			WriteError(w, "Потрібна авторизація", http.StatusUnauthorized)
			return
		}

		admin, err := h.AuthService.Check(r.Context(), cookie.Value)
		if err != nil {
			log.Printf("Помилка при перевірці сесії: %v", err)
			WriteError(w, "Потрібна авторизація", http.StatusUnauthorized)
			return
		}
		if admin == nil {
			WriteError(w, "Потрібна авторизація", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), adminKey, admin)
		next(w, r.WithContext(ctx))
	}
}

// AdminFromContext дістає адміністратора, покладеного RequireAdmin
func AdminFromContext(ctx context.Context) *models.AdminUser {
	admin, _ := ctx.Value(adminKey).(*models.AdminUser)
	return admin
}
