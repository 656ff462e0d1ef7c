package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Session - серверний запис сесії адміністратора
type Session struct {
	ID        string    `json:"id"`
	AdminID   int       `json:"adminId"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Store - інтерфейс сховища сесій; реалізації: пам'ять та PostgreSQL.
// Get повертає (nil, nil) для відсутньої або простроченої сесії.
type Store interface {
	Get(ctx context.Context, sid string) (*Session, error)
	Set(ctx context.Context, session *Session) error
	Destroy(ctx context.Context, sid string) error
}

// New створює сесію з випадковим ідентифікатором та заданим часом життя
func New(adminID int, username string, ttl time.Duration) *Session {
	return &Session{
		ID:        uuid.New().String(),
		AdminID:   adminID,
		Username:  username,
		ExpiresAt: time.Now().Add(ttl),
	}
}
