package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/KlorPe000/kubenko-production-studio/internal/models"
)

type adminRepository struct {
	db *sqlx.DB
}

func NewAdminRepository(db *sqlx.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	query := `SELECT * FROM admin_users WHERE username = $1`

	var admin models.AdminUser
	err := r.db.GetContext(ctx, &admin, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("помилка при отриманні адміністратора: %w", err)
	}

	return &admin, nil
}

func (r *adminRepository) Create(ctx context.Context, username, email, password string) (*models.AdminUser, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("помилка при хешуванні пароля: %w", err)
	}

	query := `
		INSERT INTO admin_users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING *
	`

	var admin models.AdminUser
	err = r.db.GetContext(ctx, &admin, query, username, email, string(hashedPassword))
	if err != nil {
		return nil, fmt.Errorf("помилка при створенні адміністратора: %w", err)
	}

	return &admin, nil
}

func (r *adminRepository) VerifyPassword(ctx context.Context, username, password string) (*models.AdminUser, error) {
	admin, err := r.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if admin == nil || !admin.IsActive {
		return nil, nil
	}

	// розбіжність пароля - звичайне "ні", а не помилка
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, nil
	}

	return admin, nil
}
