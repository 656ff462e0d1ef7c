package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/KlorPe000/kubenko-production-studio/cmd/app"
	"github.com/KlorPe000/kubenko-production-studio/internal/config"
	handlers "github.com/KlorPe000/kubenko-production-studio/internal/handler"
	"github.com/KlorPe000/kubenko-production-studio/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	db, _, services := app.App(cfg)
	if db != nil {
		defer db.CloseDB()
	}

	var dbHealth handlers.HealthChecker
	if db != nil {
		dbHealth = db
	}
	handler := handlers.NewHandlers(services, cfg, dbHealth)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	router.HandleFunc("/api/contact", handler.SubmitContact).Methods(http.MethodPost)
	router.HandleFunc("/api/contact-submissions", handler.GetSubmissions).Methods(http.MethodGet)

	router.HandleFunc("/api/portfolio", handler.GetPortfolio).Methods(http.MethodGet)

	router.HandleFunc("/api/admin/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/admin/logout", handler.Logout).Methods(http.MethodPost)
	router.HandleFunc("/api/admin/check", handler.Check).Methods(http.MethodGet)

	router.HandleFunc("/api/admin/portfolio", handler.RequireAdmin(handler.GetAdminPortfolio)).Methods(http.MethodGet)
	router.HandleFunc("/api/admin/portfolio", handler.RequireAdmin(handler.CreatePortfolioItem)).Methods(http.MethodPost)
	router.HandleFunc("/api/admin/portfolio/{id}", handler.RequireAdmin(handler.UpdatePortfolioItem)).Methods(http.MethodPut)
	router.HandleFunc("/api/admin/portfolio/{id}", handler.RequireAdmin(handler.DeletePortfolioItem)).Methods(http.MethodDelete)
	router.HandleFunc("/api/admin/upload", handler.RequireAdmin(handler.UploadMedia)).Methods(http.MethodPost)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущено на %s\n", addr)
	fmt.Printf("Сховище: %s\n", cfg.StorageDriver)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Помилка запуску сервера: %v", err)
	}
}
