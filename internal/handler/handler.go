package handlers

import (
	"time"

	"github.com/KlorPe000/kubenko-production-studio/internal/config"
	"github.com/KlorPe000/kubenko-production-studio/internal/service"
	"github.com/KlorPe000/kubenko-production-studio/internal/validation"
)

// HealthChecker - перевірка стану бази; nil для сховища в пам'яті
type HealthChecker interface {
	HealthCheck() error
}

type Handlers struct {
	ContactService   service.ContactService
	PortfolioService service.PortfolioService
	AuthService      service.AuthService
	MediaService     service.MediaService
	Cfg              *config.Config
	Validate         *validation.Validator
	DBHealth         HealthChecker

	startedAt time.Time
}

func NewHandlers(services *service.Service, cfg *config.Config, dbHealth HealthChecker) *Handlers {
	return &Handlers{
		ContactService:   services.Contact,
		PortfolioService: services.Portfolio,
		AuthService:      services.Auth,
		MediaService:     services.Media,
		Cfg:              cfg,
		Validate:         validation.New(),
		DBHealth:         dbHealth,
		startedAt:        time.Now(),
	}
}
