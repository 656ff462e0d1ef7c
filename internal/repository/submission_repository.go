package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/KlorPe000/kubenko-production-studio/internal/models"
)

type submissionRepository struct {
	db *sqlx.DB
}

func NewSubmissionRepository(db *sqlx.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(ctx context.Context, req CreateSubmissionRequest) (*models.ContactSubmission, error) {
	services := req.Services
	if services == nil {
		services = []string{}
	}
	attachments := req.Attachments
	if attachments == nil {
		attachments = []string{}
	}

	query := `
		INSERT INTO contact_submissions
		(bride_name, groom_name, phone, email, wedding_date, location, services, additional_info, attachments)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING *
	`

	var submission models.ContactSubmission
	err := r.db.GetContext(ctx, &submission, query,
		req.BrideName,
		req.GroomName,
		req.Phone,
		req.Email,
		req.WeddingDate,
		req.Location,
		pq.Array(services),
		req.AdditionalInfo,
		pq.Array(attachments),
	)
	if err != nil {
		return nil, fmt.Errorf("помилка при створенні заявки: %w", err)
	}

	return &submission, nil
}

func (r *submissionRepository) GetAll(ctx context.Context) ([]models.ContactSubmission, error) {
	query := `
		SELECT * FROM contact_submissions
		ORDER BY created_at DESC, id DESC
	`

	submissions := []models.ContactSubmission{}
	err := r.db.SelectContext(ctx, &submissions, query)
	if err != nil {
		return nil, fmt.Errorf("помилка при отриманні заявок: %w", err)
	}

	return submissions, nil
}
