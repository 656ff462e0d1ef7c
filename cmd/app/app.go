package app

import (
	"context"
	"log"

	"github.com/KlorPe000/kubenko-production-studio/internal/config"
	"github.com/KlorPe000/kubenko-production-studio/internal/database"
	"github.com/KlorPe000/kubenko-production-studio/internal/repository"
	"github.com/KlorPe000/kubenko-production-studio/internal/service"
	"github.com/KlorPe000/kubenko-production-studio/internal/session"
	"github.com/KlorPe000/kubenko-production-studio/internal/storage"
	"github.com/KlorPe000/kubenko-production-studio/internal/telegram"
)

// App збирає залежності за конфігурацією. db буде nil при сховищі в пам'яті.
func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	var db *database.DB
	var repo *repository.Repository
	var sessions session.Store

	switch cfg.StorageDriver {
	case "postgres":
		var err error
		db, err = database.ConnectDB(cfg)
		if err != nil {
			log.Fatalf("Не вдалося підключитися до БД: %v", err)
		}

		repo = repository.NewRepository(db.DB)
		if err := EnsureAdmin(repo); err != nil {
			log.Fatalf("Не вдалося створити адміністратора: %v", err)
		}
	default:
		log.Println("Сховище в пам'яті: дані не переживуть перезапуск")
		repo = repository.NewMemoryRepository()
	}

	// сесії живуть поруч із даними, якщо явно не вказано інше
	if cfg.Session.Backend == "postgres" && db != nil {
		sessions = session.NewPostgresStore(db.DB)
	} else {
		sessions = session.NewMemoryStore()
	}

	sender := telegram.NewClient(cfg.Telegram)
	if !sender.Enabled() {
		log.Println("Telegram не налаштований: сповіщення вимкнені")
	}

	// об'єктне сховище необов'язкове - без нього завантаження медіа вимкнене
	var store storage.Storage
	if cfg.MinIO.Endpoint != "" {
		minioClient, err := storage.NewMinIOClient(cfg)
		if err != nil {
			log.Printf("Увага: не вдалося ініціалізувати MinIO: %v", err)
		} else {
			store = minioClient
		}
	}

	services := service.NewService(repo, cfg, sessions, sender, store)

	return db, repo, services
}

// EnsureAdmin створює стандартного адміністратора, якщо його ще немає
func EnsureAdmin(repo *repository.Repository) error {
	ctx := context.Background()

	admin, err := repo.Admin.GetByUsername(ctx, "admin")
	if err != nil {
		return err
	}
	if admin != nil {
		return nil
	}

	if _, err := repo.Admin.Create(ctx, "admin", "admin@kubenko.com", "admin123"); err != nil {
		return err
	}

	log.Println("Створено стандартного адміністратора admin (змініть пароль!)")
	return nil
}
