package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var submissionColumns = []string{
	"id", "bride_name", "groom_name", "phone", "email", "wedding_date",
	"location", "services", "additional_info", "attachments", "created_at",
}

func TestSubmissionRepository_Create(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewSubmissionRepository(sqlxDB)
	ctx := context.Background()

	now := time.Now()

	t.Run("Успішне створення заявки", func(t *testing.T) {
		rows := sqlmock.NewRows(submissionColumns).AddRow(
			1, "Анна", "Олексій", "380972056022", "anna@example.com",
			"2026-09-12", "Київ", `{"Love Story","Фотопослуги"}`, "", "{}", now,
		)

		mock.ExpectQuery(`
			INSERT INTO contact_submissions
			(bride_name, groom_name, phone, email, wedding_date, location, services, additional_info, attachments)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING *
		`).
			WithArgs(
				"Анна", "Олексій", "380972056022", "anna@example.com",
				"2026-09-12", "Київ", sqlmock.AnyArg(), "", sqlmock.AnyArg(),
			).
			WillReturnRows(rows)

		submission, err := repo.Create(ctx, CreateSubmissionRequest{
			BrideName:   "Анна",
			GroomName:   "Олексій",
			Phone:       "380972056022",
			Email:       "anna@example.com",
			WeddingDate: "2026-09-12",
			Location:    "Київ",
			Services:    []string{"Love Story", "Фотопослуги"},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, submission.ID)
		assert.Equal(t, []string{"Love Story", "Фотопослуги"}, []string(submission.Services))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Помилка БД загортається з контекстом", func(t *testing.T) {
		mock.ExpectQuery(`
			INSERT INTO contact_submissions
			(bride_name, groom_name, phone, email, wedding_date, location, services, additional_info, attachments)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING *
		`).
			WillReturnError(errors.New("connection refused"))

		_, err := repo.Create(ctx, CreateSubmissionRequest{BrideName: "Анна"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "помилка при створенні заявки")
	})
}

func TestSubmissionRepository_GetAll(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewSubmissionRepository(sqlxDB)
	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.NewRows(submissionColumns).
		AddRow(2, "Марія", "Дмитро", "380501112233", "maria@example.com",
			"2026-10-01", "Львів", "{}", "", "{}", now).
		AddRow(1, "Анна", "Олексій", "380972056022", "anna@example.com",
			"2026-09-12", "Київ", "{}", "", "{}", now.Add(-time.Hour))

	mock.ExpectQuery(`
			SELECT * FROM contact_submissions
			ORDER BY created_at DESC, id DESC
		`).
		WillReturnRows(rows)

	submissions, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, submissions, 2)
	assert.Equal(t, 2, submissions[0].ID)
}
