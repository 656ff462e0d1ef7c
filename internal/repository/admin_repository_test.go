package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var adminColumns = []string{
	"id", "username", "email", "password_hash", "is_active", "created_at", "updated_at",
}

func TestAdminRepository_GetByUsername(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewAdminRepository(sqlxDB)
	ctx := context.Background()

	now := time.Now()

	t.Run("Наявний користувач", func(t *testing.T) {
		rows := sqlmock.NewRows(adminColumns).AddRow(
			1, "admin", "admin@kubenko.com", "hash", true, now, now,
		)

		mock.ExpectQuery(`SELECT * FROM admin_users WHERE username = $1`).
			WithArgs("admin").
			WillReturnRows(rows)

		admin, err := repo.GetByUsername(ctx, "admin")
		require.NoError(t, err)
		require.NotNil(t, admin)
		assert.Equal(t, "admin", admin.Username)
	})

	t.Run("Відсутній користувач - nil без помилки", func(t *testing.T) {
		mock.ExpectQuery(`SELECT * FROM admin_users WHERE username = $1`).
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows(adminColumns))

		admin, err := repo.GetByUsername(ctx, "ghost")
		require.NoError(t, err)
		assert.Nil(t, admin)
	})
}

func TestAdminRepository_VerifyPassword(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewAdminRepository(sqlxDB)
	ctx := context.Background()

	now := time.Now()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("Вірний пароль", func(t *testing.T) {
		rows := sqlmock.NewRows(adminColumns).AddRow(
			1, "admin", "admin@kubenko.com", string(hash), true, now, now,
		)

		mock.ExpectQuery(`SELECT * FROM admin_users WHERE username = $1`).
			WithArgs("admin").
			WillReturnRows(rows)

		admin, err := repo.VerifyPassword(ctx, "admin", "admin123")
		require.NoError(t, err)
		require.NotNil(t, admin)
	})

	t.Run("Невірний пароль - nil без помилки", func(t *testing.T) {
		rows := sqlmock.NewRows(adminColumns).AddRow(
			1, "admin", "admin@kubenko.com", string(hash), true, now, now,
		)

		mock.ExpectQuery(`SELECT * FROM admin_users WHERE username = $1`).
			WithArgs("admin").
			WillReturnRows(rows)

		admin, err := repo.VerifyPassword(ctx, "admin", "wrong")
		require.NoError(t, err)
		assert.Nil(t, admin)
	})

	t.Run("Неактивний адміністратор не входить", func(t *testing.T) {
		rows := sqlmock.NewRows(adminColumns).AddRow(
			2, "retired", "retired@kubenko.com", string(hash), false, now, now,
		)

		mock.ExpectQuery(`SELECT * FROM admin_users WHERE username = $1`).
			WithArgs("retired").
			WillReturnRows(rows)

		admin, err := repo.VerifyPassword(ctx, "retired", "admin123")
		require.NoError(t, err)
		assert.Nil(t, admin)
	})
}
