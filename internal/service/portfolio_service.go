package service

import (
	"context"

	"github.com/KlorPe000/kubenko-production-studio/internal/models"
	"github.com/KlorPe000/kubenko-production-studio/internal/repository"
	"github.com/KlorPe000/kubenko-production-studio/internal/validation"
)

type PortfolioService interface {
	CreateItem(ctx context.Context, req repository.CreatePortfolioRequest) (*models.PortfolioItem, error)
	UpdateItem(ctx context.Context, id int, req repository.UpdatePortfolioRequest) (*models.PortfolioItem, error)
	DeleteItem(ctx context.Context, id int) error
	GetItems(ctx context.Context) ([]models.PortfolioItem, error)
	GetPublishedItems(ctx context.Context) ([]models.PortfolioItem, error)
}

type portfolioService struct {
	portfolioRepo repository.PortfolioRepository
	validator     *validation.Validator
}

func NewPortfolioService(portfolioRepo repository.PortfolioRepository, validator *validation.Validator) PortfolioService {
	return &portfolioService{
		portfolioRepo: portfolioRepo,
		validator:     validator,
	}
}

func (s *portfolioService) CreateItem(ctx context.Context, req repository.CreatePortfolioRequest) (*models.PortfolioItem, error) {
	if err := s.validator.ValidatePortfolio(&req); err != nil {
		return nil, err
	}

	return s.portfolioRepo.Create(ctx, req)
}

func (s *portfolioService) UpdateItem(ctx context.Context, id int, req repository.UpdatePortfolioRequest) (*models.PortfolioItem, error) {
	if err := s.validator.ValidatePortfolioUpdate(&req); err != nil {
		return nil, err
	}

	return s.portfolioRepo.Update(ctx, id, req)
}

func (s *portfolioService) DeleteItem(ctx context.Context, id int) error {
	return s.portfolioRepo.Delete(ctx, id)
}

func (s *portfolioService) GetItems(ctx context.Context) ([]models.PortfolioItem, error) {
	return s.portfolioRepo.GetAll(ctx)
}

func (s *portfolioService) GetPublishedItems(ctx context.Context) ([]models.PortfolioItem, error) {
	return s.portfolioRepo.GetPublished(ctx)
}
