package service

import (
	"github.com/KlorPe000/kubenko-production-studio/internal/config"
	"github.com/KlorPe000/kubenko-production-studio/internal/repository"
	"github.com/KlorPe000/kubenko-production-studio/internal/session"
	"github.com/KlorPe000/kubenko-production-studio/internal/storage"
	"github.com/KlorPe000/kubenko-production-studio/internal/validation"
)

type Service struct {
	Contact   ContactService
	Portfolio PortfolioService
	Auth      AuthService
	Notify    NotificationService
	Media     MediaService
}

func NewService(repo *repository.Repository, cfg *config.Config, sessions session.Store, sender Sender, store storage.Storage) *Service {
	validator := validation.New()
	notify := NewNotificationService(sender)

	return &Service{
		Contact:   NewContactService(repo.Submission, notify, validator),
		Portfolio: NewPortfolioService(repo.Portfolio, validator),
		Auth:      NewAuthService(repo.Admin, sessions, cfg),
		Notify:    notify,
		Media:     NewMediaService(store),
	}
}
