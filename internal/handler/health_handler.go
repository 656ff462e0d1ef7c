package handlers

import (
	"net/http"
	"time"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Uptime    string `json:"uptime"`
	Database  string `json:"database"`
}

// Health - перевірка стану сервісу; 503 якщо база недоступна
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startedAt).Round(time.Second).String(),
		Database:  "ok",
	}

	status := http.StatusOK
	// сховище в пам'яті не має бази, тому завжди здорове
	if h.DBHealth != nil {
		if err := h.DBHealth.HealthCheck(); err != nil {
			resp.Status = "degraded"
			resp.Database = "unavailable"
			status = http.StatusServiceUnavailable
		}
	}

	WriteSuccess(w, resp, status)
}
