package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/KlorPe000/kubenko-production-studio/internal/config"
	"github.com/KlorPe000/kubenko-production-studio/internal/models"
	"github.com/KlorPe000/kubenko-production-studio/internal/repository"
	"github.com/KlorPe000/kubenko-production-studio/internal/session"
)

// ErrInvalidCredentials - невірна пара логін/пароль або неактивний адміністратор
var ErrInvalidCredentials = errors.New("невірні дані для входу")

type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.AdminUser, *session.Session, error)
	Logout(ctx context.Context, sid string) error
	// Check повертає (nil, nil) для відсутньої чи простроченої сесії
	Check(ctx context.Context, sid string) (*models.AdminUser, error)
}

type authService struct {
	adminRepo repository.AdminRepository
	sessions  session.Store
	cfg       *config.Config
}

func NewAuthService(adminRepo repository.AdminRepository, sessions session.Store, cfg *config.Config) AuthService {
	return &authService{
		adminRepo: adminRepo,
		sessions:  sessions,
		cfg:       cfg,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.AdminUser, *session.Session, error) {
	admin, err := s.adminRepo.VerifyPassword(ctx, username, password)
	if err != nil {
		return nil, nil, fmt.Errorf("помилка перевірки пароля: %w", err)
	}
	if admin == nil {
		return nil, nil, ErrInvalidCredentials
	}

	sess := session.New(admin.ID, admin.Username, s.cfg.Session.TTL)
	if err := s.sessions.Set(ctx, sess); err != nil {
		return nil, nil, fmt.Errorf("помилка створення сесії: %w", err)
	}

	return admin, sess, nil
}

func (s *authService) Logout(ctx context.Context, sid string) error {
	return s.sessions.Destroy(ctx, sid)
}

func (s *authService) Check(ctx context.Context, sid string) (*models.AdminUser, error) {
	if sid == "" {
		return nil, nil
	}

	sess, err := s.sessions.Get(ctx, sid)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}

	admin, err := s.adminRepo.GetByUsername(ctx, sess.Username)
	if err != nil {
		return nil, err
	}
	// активність перевіряється на кожному зверненні, а не лише при вході
	if admin == nil || !admin.IsActive {
		return nil, nil
	}

	return admin, nil
}
