package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/KlorPe000/kubenko-production-studio/internal/models"
)

type portfolioRepository struct {
	db *sqlx.DB
}

func NewPortfolioRepository(db *sqlx.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

func (r *portfolioRepository) Create(ctx context.Context, req CreatePortfolioRequest) (*models.PortfolioItem, error) {
	// значення за замовчуванням: опубліковано, порядок 0
	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}
	orderIndex := 0
	if req.OrderIndex != nil {
		orderIndex = *req.OrderIndex
	}
	photos := req.Photos
	if photos == nil {
		photos = []string{}
	}

	query := `
		INSERT INTO portfolio_items
		(type, category, couple, title, description, video_url, thumbnail, photos, is_published, order_index)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING *
	`

	var item models.PortfolioItem
	err := r.db.GetContext(ctx, &item, query,
		req.Type,
		req.Category,
		req.Couple,
		req.Title,
		req.Description,
		req.VideoURL,
		req.Thumbnail,
		pq.Array(photos),
		isPublished,
		orderIndex,
	)
	if err != nil {
		return nil, fmt.Errorf("помилка при створенні елемента портфоліо: %w", err)
	}

	return &item, nil
}

func (r *portfolioRepository) Update(ctx context.Context, id int, req UpdatePortfolioRequest) (*models.PortfolioItem, error) {
	// збираємо SET лише з переданих полів; updated_at оновлюється завжди
	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argN := 1

	addSet := func(column string, value interface{}) {
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, argN))
		args = append(args, value)
		argN++
	}

	if req.Type != nil {
		addSet("type", *req.Type)
	}
	if req.Category != nil {
		addSet("category", *req.Category)
	}
	if req.Couple != nil {
		addSet("couple", *req.Couple)
	}
	if req.Title != nil {
		addSet("title", *req.Title)
	}
	if req.Description != nil {
		addSet("description", *req.Description)
	}
	if req.VideoURL != nil {
		addSet("video_url", *req.VideoURL)
	}
	if req.Thumbnail != nil {
		addSet("thumbnail", *req.Thumbnail)
	}
	if req.Photos != nil {
		addSet("photos", pq.Array(*req.Photos))
	}
	if req.IsPublished != nil {
		addSet("is_published", *req.IsPublished)
	}
	if req.OrderIndex != nil {
		addSet("order_index", *req.OrderIndex)
	}

	query := fmt.Sprintf(`
		UPDATE portfolio_items SET %s
		WHERE id = $%d
		RETURNING *
	`, strings.Join(setParts, ", "), argN)
	args = append(args, id)

	var item models.PortfolioItem
	err := r.db.GetContext(ctx, &item, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("помилка при оновленні елемента портфоліо: %w", err)
	}

	return &item, nil
}

func (r *portfolioRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM portfolio_items WHERE id = $1`

	// ідемпотентно: відсутній id не вважається помилкою
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("помилка при видаленні елемента портфоліо: %w", err)
	}

	return nil
}

func (r *portfolioRepository) GetByID(ctx context.Context, id int) (*models.PortfolioItem, error) {
	query := `SELECT * FROM portfolio_items WHERE id = $1`

	var item models.PortfolioItem
	err := r.db.GetContext(ctx, &item, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("помилка при отриманні елемента портфоліо: %w", err)
	}

	return &item, nil
}

func (r *portfolioRepository) GetAll(ctx context.Context) ([]models.PortfolioItem, error) {
	query := `
		SELECT * FROM portfolio_items
		ORDER BY order_index ASC, id ASC
	`

	items := []models.PortfolioItem{}
	err := r.db.SelectContext(ctx, &items, query)
	if err != nil {
		return nil, fmt.Errorf("помилка при отриманні портфоліо: %w", err)
	}

	return items, nil
}

func (r *portfolioRepository) GetPublished(ctx context.Context) ([]models.PortfolioItem, error) {
	query := `
		SELECT * FROM portfolio_items
		WHERE is_published = TRUE
		ORDER BY order_index ASC, id ASC
	`

	items := []models.PortfolioItem{}
	err := r.db.SelectContext(ctx, &items, query)
	if err != nil {
		return nil, fmt.Errorf("помилка при отриманні опублікованого портфоліо: %w", err)
	}

	return items, nil
}
