package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/KlorPe000/kubenko-production-studio/internal/models"
)

// ErrNotFound - запис з таким id відсутній у сховищі
var ErrNotFound = errors.New("запис не знайдено")

type CreateSubmissionRequest struct {
	BrideName      string   `json:"brideName"`
	GroomName      string   `json:"groomName"`
	Phone          string   `json:"phone"`
	Email          string   `json:"email"`
	WeddingDate    string   `json:"weddingDate"`
	Location       string   `json:"location"`
	Services       []string `json:"services"`
	AdditionalInfo string   `json:"additionalInfo"`
	Attachments    []string `json:"attachments"`
}

type CreatePortfolioRequest struct {
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	Couple      string   `json:"couple"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	VideoURL    string   `json:"videoUrl"`
	Thumbnail   string   `json:"thumbnail"`
	Photos      []string `json:"photos"`
	IsPublished *bool    `json:"isPublished"`
	OrderIndex  *int     `json:"orderIndex"`
}

// UpdatePortfolioRequest - часткове оновлення: nil-поля не змінюються
type UpdatePortfolioRequest struct {
	Type        *string   `json:"type"`
	Category    *string   `json:"category"`
	Couple      *string   `json:"couple"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	VideoURL    *string   `json:"videoUrl"`
	Thumbnail   *string   `json:"thumbnail"`
	Photos      *[]string `json:"photos"`
	IsPublished *bool     `json:"isPublished"`
	OrderIndex  *int      `json:"orderIndex"`
}

type SubmissionRepository interface {
	Create(ctx context.Context, req CreateSubmissionRequest) (*models.ContactSubmission, error)
	GetAll(ctx context.Context) ([]models.ContactSubmission, error)
}

type PortfolioRepository interface {
	Create(ctx context.Context, req CreatePortfolioRequest) (*models.PortfolioItem, error)
	Update(ctx context.Context, id int, req UpdatePortfolioRequest) (*models.PortfolioItem, error)
	Delete(ctx context.Context, id int) error
	GetByID(ctx context.Context, id int) (*models.PortfolioItem, error)
	GetAll(ctx context.Context) ([]models.PortfolioItem, error)
	GetPublished(ctx context.Context) ([]models.PortfolioItem, error)
}

type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	Create(ctx context.Context, username, email, password string) (*models.AdminUser, error)
	// VerifyPassword повертає (nil, nil) якщо користувача немає, він неактивний
	// або пароль не збігається - це не помилка
	VerifyPassword(ctx context.Context, username, password string) (*models.AdminUser, error)
}

type Repository struct {
	Submission SubmissionRepository
	Portfolio  PortfolioRepository
	Admin      AdminRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Submission: NewSubmissionRepository(db),
		Portfolio:  NewPortfolioRepository(db),
		Admin:      NewAdminRepository(db),
	}
}
