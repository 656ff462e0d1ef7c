package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// PostgresStore зберігає сесії в таблиці sessions (sid / sess / expire)
type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type sessionRow struct {
	Sid    string `db:"sid"`
	Sess   string `db:"sess"`
	Expire sql.NullTime `db:"expire"`
}

func (s *PostgresStore) Get(ctx context.Context, sid string) (*Session, error) {
	query := `SELECT sid, sess, expire FROM sessions WHERE sid = $1 AND expire > NOW()`

	var row sessionRow
	err := s.db.GetContext(ctx, &row, query, sid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("помилка при отриманні сесії: %w", err)
	}

	var session Session
	if err := json.Unmarshal([]byte(row.Sess), &session); err != nil {
		return nil, fmt.Errorf("пошкоджений запис сесії %s: %w", sid, err)
	}

	return &session, nil
}

func (s *PostgresStore) Set(ctx context.Context, session *Session) error {
	blob, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("помилка серіалізації сесії: %w", err)
	}

	query := `
		INSERT INTO sessions (sid, sess, expire)
		VALUES ($1, $2, $3)
		ON CONFLICT (sid) DO UPDATE SET sess = EXCLUDED.sess, expire = EXCLUDED.expire
	`

	_, err = s.db.ExecContext(ctx, query, session.ID, string(blob), session.ExpiresAt)
	if err != nil {
		return fmt.Errorf("помилка при збереженні сесії: %w", err)
	}

	return nil
}

func (s *PostgresStore) Destroy(ctx context.Context, sid string) error {
	query := `DELETE FROM sessions WHERE sid = $1`

	_, err := s.db.ExecContext(ctx, query, sid)
	if err != nil {
		return fmt.Errorf("помилка при видаленні сесії: %w", err)
	}

	return nil
}
